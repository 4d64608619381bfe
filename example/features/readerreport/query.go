package readerreport

import (
	"github.com/AntonStoeckl/relational-query-go/example/shared/core"
	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
	"github.com/AntonStoeckl/relational-query-go/querydb/simple"
)

// ReaderReport is the query result summarizing one reader's state.
type ReaderReport struct {
	Reader           core.Reader
	Loans            collection.Array[core.Loan]
	Titles           collection.Array[string]
	RecentlyReturned collection.List[string]
}

// BuildQuery constructs the report query for one reader. An unknown reader
// ID makes the whole report absent; a reader without loans still gets a
// report with empty collections.
func BuildQuery(readerID string) simple.Query[core.Catalog, ReaderReport] {
	reader := simple.FromExplicit(core.ReaderByID(readerID))

	loans := simple.ArrayItemsWhere(core.Loans, func(loan core.Loan) bool {
		return loan.ReaderID == readerID
	})

	titles := simple.AndThen(titlesOfLoans, loans)

	returned := simple.AndThen(recentReturnsAmong, loans)

	return simple.Map4(func(
		reader core.Reader,
		loans collection.Array[core.Loan],
		titles collection.Array[string],
		returned collection.List[string],
	) ReaderReport {
		return ReaderReport{
			Reader:           reader,
			Loans:            loans,
			Titles:           titles,
			RecentlyReturned: returned,
		}
	}, reader, loans, titles, returned)
}

// titlesOfLoans resolves the title of every lent book, in lending order.
func titlesOfLoans(loans collection.Array[core.Loan]) simple.Query[core.Catalog, collection.Array[string]] {
	return simple.TraverseArray(func(loan core.Loan) simple.Query[core.Catalog, string] {
		return simple.Map(func(book core.Book) string { return book.Title },
			simple.FromExplicit(core.BookByID(loan.BookID)))
	}, loans)
}

// recentReturnsAmong filters the catalog's recent returns down to the books
// of the given loans, preserving the newest-first order of the returns list.
func recentReturnsAmong(loans collection.Array[core.Loan]) simple.Query[core.Catalog, collection.List[string]] {
	owned := make(map[string]struct{}, loans.Length())
	for _, loan := range loans.All() {
		owned[loan.BookID] = struct{}{}
	}

	return simple.ItemsWhere(core.RecentReturns, func(bookID string) bool {
		_, ok := owned[bookID]
		return ok
	})
}
