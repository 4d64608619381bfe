package core

import (
	"time"

	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

// Book is a single title in the library's catalog.
type Book struct {
	ID     string
	Title  string
	Author string
	Shelf  string
}

// Reader is a registered library member.
type Reader struct {
	ID   string
	Name string
}

// Loan records one book copy being lent to one reader.
type Loan struct {
	ID       string
	BookID   string
	ReaderID string
	LentAt   time.Time
	DueAt    time.Time
}

// Catalog is the normalized, immutable state of the library. Books and
// readers are keyed by their IDs, loans are kept in lending order, and
// RecentReturns holds the book IDs of the latest returns, newest first.
type Catalog struct {
	Books         collection.Dict[string, Book]
	Readers       collection.Dict[string, Reader]
	Loans         collection.Array[Loan]
	RecentReturns collection.List[string]
}

// Books projects the catalog's book dictionary.
func Books(c Catalog) collection.Dict[string, Book] {
	return c.Books
}

// Readers projects the catalog's reader dictionary.
func Readers(c Catalog) collection.Dict[string, Reader] {
	return c.Readers
}

// Loans projects the catalog's loan array.
func Loans(c Catalog) collection.Array[Loan] {
	return c.Loans
}

// RecentReturns projects the catalog's list of recently returned book IDs.
func RecentReturns(c Catalog) collection.List[string] {
	return c.RecentReturns
}
