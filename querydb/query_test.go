package querydb_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/relational-query-go/querydb"
)

func Test_Perform_OfSucceed_IgnoresDatabase(t *testing.T) {
	query := querydb.Succeed[heroDB, string](42)

	result := querydb.Perform(query, sampleDB())

	value, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, 42, value)
}

func Test_Perform_OfFail_IgnoresDatabase(t *testing.T) {
	query := querydb.Fail[heroDB, string, int]("broken")

	result := querydb.Perform(query, sampleDB())

	cause, failed := result.Cause()
	require.True(t, failed)
	assert.Equal(t, "broken", cause)
}

func Test_Perform_OfIdentity_YieldsTheDatabase(t *testing.T) {
	db := sampleDB()

	result := querydb.Perform(querydb.Identity[heroDB, string](), db)

	value, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, db.Heroes.ToSlice(), value.Heroes.ToSlice())
}

func Test_Perform_IsReferentiallyTransparent(t *testing.T) {
	db := sampleDB()
	query := querydb.ByKey("missing", projectUsers, 1)

	first := querydb.Perform(query, db)
	second := querydb.Perform(query, db)

	assert.Equal(t, first, second)
}

func Test_MapError_TransformsOnlyFailures(t *testing.T) {
	upper := func(e string) string { return strings.ToUpper(e) }

	failing := querydb.MapError(upper, querydb.Fail[heroDB, string, int]("missing"))
	cause, failed := querydb.Perform(failing, sampleDB()).Cause()
	require.True(t, failed)
	assert.Equal(t, "MISSING", cause)

	succeeding := querydb.MapError(upper, querydb.Succeed[heroDB, string](7))
	value, ok := querydb.Perform(succeeding, sampleDB()).Value()
	require.True(t, ok)
	assert.Equal(t, 7, value)
}

func Test_New_WrapsARawQueryFunction(t *testing.T) {
	query := querydb.New(func(db heroDB) querydb.Result[string, int] {
		return querydb.Ok[string](db.Users.Len())
	})

	value, ok := querydb.Perform(query, sampleDB()).Value()
	require.True(t, ok)
	assert.Equal(t, 2, value)
}

func Test_FunctorLaw_MapIdentity(t *testing.T) {
	db := sampleDB()
	identity := func(s string) string { return s }

	queries := map[string]querydb.Query[heroDB, string, string]{
		"succeeding": querydb.ByKey("missing", projectUsers, 1),
		"failing":    querydb.ByKey("missing", projectUsers, 99),
	}

	for name, query := range queries {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t,
				querydb.Perform(query, db),
				querydb.Perform(querydb.Map(identity, query), db),
			)
		})
	}
}

func Test_MonadLaw_LeftIdentity(t *testing.T) {
	db := sampleDB()
	f := func(id int) querydb.Query[heroDB, string, string] {
		return querydb.ByKey("missing", projectUsers, id)
	}

	assert.Equal(t,
		querydb.Perform(f(1), db),
		querydb.Perform(querydb.AndThen(f, querydb.Succeed[heroDB, string](1)), db),
	)
}

func Test_MonadLaw_RightIdentity(t *testing.T) {
	db := sampleDB()

	queries := map[string]querydb.Query[heroDB, string, string]{
		"succeeding": querydb.ByKey("missing", projectUsers, 2),
		"failing":    querydb.ByKey("missing", projectUsers, 99),
	}

	for name, query := range queries {
		t.Run(name, func(t *testing.T) {
			chained := querydb.AndThen(querydb.Succeed[heroDB, string, string], query)
			assert.Equal(t,
				querydb.Perform(query, db),
				querydb.Perform(chained, db),
			)
		})
	}
}

func Test_Result_Accessors(t *testing.T) {
	ok := querydb.Ok[string](1)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())

	_, failed := ok.Cause()
	assert.False(t, failed)

	err := querydb.Err[string, int]("nope")
	assert.True(t, err.IsErr())

	_, present := err.Value()
	assert.False(t, present)
}

func Test_Result_ToMaybe(t *testing.T) {
	some := querydb.Ok[string](5).ToMaybe()
	value, present := some.Get()
	require.True(t, present)
	assert.Equal(t, 5, value)

	none := querydb.Err[string, int]("nope").ToMaybe()
	assert.True(t, none.IsNone())
}

func Test_Maybe_WithDefault(t *testing.T) {
	assert.Equal(t, 3, querydb.Some(3).WithDefault(9))
	assert.Equal(t, 9, querydb.None[int]().WithDefault(9))
}

func Test_MapMaybe(t *testing.T) {
	double := func(n int) int { return n * 2 }

	value, present := querydb.MapMaybe(double, querydb.Some(4)).Get()
	require.True(t, present)
	assert.Equal(t, 8, value)

	assert.True(t, querydb.MapMaybe(double, querydb.None[int]()).IsNone())
}
