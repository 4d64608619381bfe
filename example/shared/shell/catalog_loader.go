package shell

import (
	"errors"
	"os"
	"slices"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/relational-query-go/example/shared/core"
	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

var (
	// ErrLoadingCatalogFailed is a sentinel error wrapping any failure while loading a catalog fixture.
	ErrLoadingCatalogFailed = errors.New("loading catalog failed")

	// ErrDuplicateBookID indicates two books in the fixture share an ID.
	ErrDuplicateBookID = errors.New("duplicate book id")

	// ErrDuplicateReaderID indicates two readers in the fixture share an ID.
	ErrDuplicateReaderID = errors.New("duplicate reader id")

	// ErrLoanReferencesUnknownBook indicates a loan points at a book ID the fixture does not define.
	ErrLoanReferencesUnknownBook = errors.New("loan references unknown book")

	// ErrLoanReferencesUnknownReader indicates a loan points at a reader ID the fixture does not define.
	ErrLoanReferencesUnknownReader = errors.New("loan references unknown reader")
)

var json = jsoniter.ConfigFastest

// catalogFixture mirrors the JSON layout of a catalog fixture file.
type catalogFixture struct {
	Books         []core.Book   `json:"books"`
	Readers       []core.Reader `json:"readers"`
	Loans         []core.Loan   `json:"loans"`
	RecentReturns []string      `json:"recentReturns"`
}

// LoadCatalog reads a fixture file and builds the immutable catalog the
// example queries run against. Books and readers are indexed by ID, loans
// are ordered by lending time, and loans without an ID are assigned a fresh
// one. Referential integrity is checked up front so queries never have to.
func LoadCatalog(path string) (core.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Catalog{}, errors.Join(ErrLoadingCatalogFailed, err)
	}

	return BuildCatalog(data)
}

// BuildCatalog decodes fixture JSON and assembles a validated catalog.
// Split from LoadCatalog so tests can feed fixture bytes directly.
func BuildCatalog(data []byte) (core.Catalog, error) {
	var fixture catalogFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return core.Catalog{}, errors.Join(ErrLoadingCatalogFailed, err)
	}

	books := make(map[string]core.Book, len(fixture.Books))
	for _, book := range fixture.Books {
		if _, exists := books[book.ID]; exists {
			return core.Catalog{}, errors.Join(ErrLoadingCatalogFailed, ErrDuplicateBookID)
		}

		books[book.ID] = book
	}

	readers := make(map[string]core.Reader, len(fixture.Readers))
	for _, reader := range fixture.Readers {
		if _, exists := readers[reader.ID]; exists {
			return core.Catalog{}, errors.Join(ErrLoadingCatalogFailed, ErrDuplicateReaderID)
		}

		readers[reader.ID] = reader
	}

	loans := slices.Clone(fixture.Loans)
	for i, loan := range loans {
		if _, known := books[loan.BookID]; !known {
			return core.Catalog{}, errors.Join(ErrLoadingCatalogFailed, ErrLoanReferencesUnknownBook)
		}

		if _, known := readers[loan.ReaderID]; !known {
			return core.Catalog{}, errors.Join(ErrLoadingCatalogFailed, ErrLoanReferencesUnknownReader)
		}

		if loan.ID == "" {
			loans[i].ID = uuid.NewString()
		}
	}

	slices.SortStableFunc(loans, func(a, b core.Loan) int {
		return a.LentAt.Compare(b.LentAt)
	})

	return core.Catalog{
		Books:         collection.NewDict(books),
		Readers:       collection.NewDict(readers),
		Loans:         collection.NewArray(loans...),
		RecentReturns: collection.NewList(fixture.RecentReturns...),
	}, nil
}
