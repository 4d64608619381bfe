package bookofloan

import (
	"github.com/AntonStoeckl/relational-query-go/example/shared/core"
	"github.com/AntonStoeckl/relational-query-go/querydb"
)

// BookOfLoan is the query result: one loan joined with the book and reader
// it connects.
type BookOfLoan struct {
	Loan   core.Loan
	Book   core.Book
	Reader core.Reader
}

// BuildQuery constructs the pure query resolving the loan at the given
// position together with its book and reader. The loan lookup runs first;
// the dependent book and reader lookups run left to right, and the first
// missing entity fails the whole query with its cause.
func BuildQuery(loanIndex int) querydb.Query[core.Catalog, core.NotFound, BookOfLoan] {
	return querydb.AndThen(func(loan core.Loan) querydb.Query[core.Catalog, core.NotFound, BookOfLoan] {
		return querydb.Map2(func(book core.Book, reader core.Reader) BookOfLoan {
			return BookOfLoan{Loan: loan, Book: book, Reader: reader}
		}, core.BookByID(loan.BookID), core.ReaderByID(loan.ReaderID))
	}, core.LoanAt(loanIndex))
}
