package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/relational-query-go/example/shared/shell"
)

func Test_LoadCatalog_BuildsAValidatedCatalogFromAFixtureFile(t *testing.T) {
	catalog, err := shell.LoadCatalog("testdata/catalog.json")
	require.NoError(t, err)

	assert.Equal(t, 3, catalog.Books.Len())
	assert.Equal(t, 2, catalog.Readers.Len())
	assert.Equal(t, 2, catalog.Loans.Length())
	assert.Equal(t, []string{"book-3", "book-1"}, catalog.RecentReturns.ToSlice())

	book, found := catalog.Books.Get("book-2")
	require.True(t, found)
	assert.Equal(t, "Hyperion", book.Title)
}

func Test_LoadCatalog_FailsForAMissingFile(t *testing.T) {
	_, err := shell.LoadCatalog("testdata/does-not-exist.json")
	assert.ErrorIs(t, err, shell.ErrLoadingCatalogFailed)
}

func Test_BuildCatalog_SortsLoansByLendingTime(t *testing.T) {
	catalog, err := shell.LoadCatalog("testdata/catalog.json")
	require.NoError(t, err)

	first, ok := catalog.Loans.At(0)
	require.True(t, ok)
	second, ok := catalog.Loans.At(1)
	require.True(t, ok)

	assert.Equal(t, "book-1", first.BookID)
	assert.Equal(t, "book-2", second.BookID)
	assert.True(t, first.LentAt.Before(second.LentAt))
}

func Test_BuildCatalog_AssignsIDsToLoansWithoutOne(t *testing.T) {
	catalog, err := shell.LoadCatalog("testdata/catalog.json")
	require.NoError(t, err)

	for _, loan := range catalog.Loans.All() {
		assert.NotEmpty(t, loan.ID)
	}
}

func Test_BuildCatalog_RejectsInvalidJSON(t *testing.T) {
	_, err := shell.BuildCatalog([]byte(`{"books": [`))
	assert.ErrorIs(t, err, shell.ErrLoadingCatalogFailed)
}

func Test_BuildCatalog_RejectsDuplicateBookIDs(t *testing.T) {
	fixture := []byte(`{
		"books": [{"ID": "b"}, {"ID": "b"}],
		"readers": [],
		"loans": []
	}`)

	_, err := shell.BuildCatalog(fixture)
	assert.ErrorIs(t, err, shell.ErrDuplicateBookID)
}

func Test_BuildCatalog_RejectsDuplicateReaderIDs(t *testing.T) {
	fixture := []byte(`{
		"books": [],
		"readers": [{"ID": "r"}, {"ID": "r"}],
		"loans": []
	}`)

	_, err := shell.BuildCatalog(fixture)
	assert.ErrorIs(t, err, shell.ErrDuplicateReaderID)
}

func Test_BuildCatalog_RejectsLoansReferencingUnknownEntities(t *testing.T) {
	unknownBook := []byte(`{
		"books": [],
		"readers": [{"ID": "r"}],
		"loans": [{"BookID": "missing", "ReaderID": "r"}]
	}`)
	_, err := shell.BuildCatalog(unknownBook)
	assert.ErrorIs(t, err, shell.ErrLoanReferencesUnknownBook)

	unknownReader := []byte(`{
		"books": [{"ID": "b"}],
		"readers": [],
		"loans": [{"BookID": "b", "ReaderID": "missing"}]
	}`)
	_, err = shell.BuildCatalog(unknownReader)
	assert.ErrorIs(t, err, shell.ErrLoanReferencesUnknownReader)
}

func Test_BuildCatalog_EmptyFixtureIsAValidEmptyCatalog(t *testing.T) {
	catalog, err := shell.BuildCatalog([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, 0, catalog.Books.Len())
	assert.Equal(t, 0, catalog.Readers.Len())
	assert.Equal(t, 0, catalog.Loans.Length())
	assert.Equal(t, 0, catalog.RecentReturns.Length())
}
