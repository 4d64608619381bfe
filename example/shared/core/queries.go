package core

import (
	"strconv"

	"github.com/AntonStoeckl/relational-query-go/querydb"
)

// NotFound is the failure cause of catalog lookups. It names the kind of
// entity that was missing and the identifier that was asked for.
type NotFound struct {
	Kind string
	ID   string
}

// Error implements the error interface so handlers can surface a failed
// lookup directly.
func (e NotFound) Error() string {
	return e.Kind + " " + e.ID + " not found"
}

// BookByID resolves a book by its catalog ID.
func BookByID(id string) querydb.Query[Catalog, NotFound, Book] {
	return querydb.ByKey(NotFound{Kind: "book", ID: id}, Books, id)
}

// ReaderByID resolves a reader by their member ID.
func ReaderByID(id string) querydb.Query[Catalog, NotFound, Reader] {
	return querydb.ByKey(NotFound{Kind: "reader", ID: id}, Readers, id)
}

// LoanAt resolves the loan at the given position in lending order.
func LoanAt(index int) querydb.Query[Catalog, NotFound, Loan] {
	return querydb.ArrayByIndex(NotFound{Kind: "loan", ID: strconv.Itoa(index)}, Loans, index)
}
