package overdueloans

import (
	"time"

	"github.com/AntonStoeckl/relational-query-go/example/shared/core"
	"github.com/AntonStoeckl/relational-query-go/querydb"
	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

// OverdueLoan is one overdue loan joined with the book it concerns.
type OverdueLoan struct {
	Loan        core.Loan
	Book        core.Book
	DaysOverdue int
}

// OverdueLoans is the query result listing all overdue loans in lending
// order.
type OverdueLoans struct {
	Entries collection.Array[OverdueLoan]
	Count   int
}

// BuildQuery constructs the pure query selecting all loans overdue at asOf
// and joining each with its book. A loan referencing a book missing from
// the catalog fails the whole query; the loader guarantees that cannot
// happen for catalogs it built.
func BuildQuery(asOf time.Time) querydb.Query[core.Catalog, core.NotFound, OverdueLoans] {
	overdue := querydb.ArrayItemsWhere[core.Catalog, core.NotFound](core.Loans, func(loan core.Loan) bool {
		return loan.DueAt.Before(asOf)
	})

	joined := querydb.AndThen(func(loans collection.Array[core.Loan]) querydb.Query[core.Catalog, core.NotFound, collection.Array[OverdueLoan]] {
		return querydb.TraverseArray(func(loan core.Loan) querydb.Query[core.Catalog, core.NotFound, OverdueLoan] {
			return querydb.Map(func(book core.Book) OverdueLoan {
				return OverdueLoan{
					Loan:        loan,
					Book:        book,
					DaysOverdue: int(asOf.Sub(loan.DueAt).Hours() / 24),
				}
			}, core.BookByID(loan.BookID))
		}, loans)
	}, overdue)

	return querydb.Map(func(entries collection.Array[OverdueLoan]) OverdueLoans {
		return OverdueLoans{Entries: entries, Count: entries.Length()}
	}, joined)
}
