package querydb_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/relational-query-go/querydb"
	"github.com/AntonStoeckl/relational-query-go/testutil/querydoubles"
)

// recorded builds a query that notes its name in order when its underlying
// function runs, then yields value.
func recorded(order *[]string, name string, value int) querydb.Query[heroDB, string, int] {
	return querydb.New(func(heroDB) querydb.Result[string, int] {
		*order = append(*order, name)
		return querydb.Ok[string](value)
	})
}

func recordedFailure(order *[]string, name string, cause string) querydb.Query[heroDB, string, int] {
	return querydb.New(func(heroDB) querydb.Result[string, int] {
		*order = append(*order, name)
		return querydb.Err[string, int](cause)
	})
}

func Test_Map_TransformsSuccessAndPropagatesFailure(t *testing.T) {
	db := sampleDB()
	double := func(n int) int { return n * 2 }

	value, ok := querydb.Perform(querydb.Map(double, querydb.Succeed[heroDB, string](21)), db).Value()
	require.True(t, ok)
	assert.Equal(t, 42, value)

	cause, failed := querydb.Perform(querydb.Map(double, querydb.Fail[heroDB, string, int]("nope")), db).Cause()
	require.True(t, failed)
	assert.Equal(t, "nope", cause)
}

func Test_Map2_CombinesLeftToRight(t *testing.T) {
	var order []string
	sum := querydb.Map2(func(a, b int) int { return a + b },
		recorded(&order, "first", 1),
		recorded(&order, "second", 2),
	)

	value, ok := querydb.Perform(sum, sampleDB()).Value()

	require.True(t, ok)
	assert.Equal(t, 3, value)
	assert.Equal(t, []string{"first", "second"}, order)
}

func Test_Map2_ShortCircuit_SecondQueryNeverRuns(t *testing.T) {
	var performs atomic.Int64
	second := querydoubles.CountPerforms(&performs, querydb.Succeed[heroDB, string](2))

	combined := querydb.Map2(func(a, b int) int { return a + b },
		querydb.Fail[heroDB, string, int]("first failed"),
		second,
	)

	cause, failed := querydb.Perform(combined, sampleDB()).Cause()

	require.True(t, failed)
	assert.Equal(t, "first failed", cause)
	assert.Equal(t, int64(0), performs.Load())
}

func Test_Map3ToMap7_EvaluateStrictlyInArgumentOrder(t *testing.T) {
	db := sampleDB()

	t.Run("map3", func(t *testing.T) {
		var order []string
		query := querydb.Map3(func(a, b, c int) int { return a + b + c },
			recorded(&order, "a", 1),
			recorded(&order, "b", 2),
			recorded(&order, "c", 3),
		)

		value, ok := querydb.Perform(query, db).Value()
		require.True(t, ok)
		assert.Equal(t, 6, value)
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("map5", func(t *testing.T) {
		var order []string
		query := querydb.Map5(func(a, b, c, d, e int) int { return a + b + c + d + e },
			recorded(&order, "a", 1),
			recorded(&order, "b", 2),
			recorded(&order, "c", 3),
			recorded(&order, "d", 4),
			recorded(&order, "e", 5),
		)

		value, ok := querydb.Perform(query, db).Value()
		require.True(t, ok)
		assert.Equal(t, 15, value)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, order)
	})

	t.Run("map7", func(t *testing.T) {
		var order []string
		query := querydb.Map7(func(a, b, c, d, e, f, g int) int { return a + b + c + d + e + f + g },
			recorded(&order, "a", 1),
			recorded(&order, "b", 2),
			recorded(&order, "c", 3),
			recorded(&order, "d", 4),
			recorded(&order, "e", 5),
			recorded(&order, "f", 6),
			recorded(&order, "g", 7),
		)

		value, ok := querydb.Perform(query, db).Value()
		require.True(t, ok)
		assert.Equal(t, 28, value)
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, order)
	})
}

func Test_Map4_StopsAtFirstFailure(t *testing.T) {
	var order []string
	query := querydb.Map4(func(a, b, c, d int) int { return a + b + c + d },
		recorded(&order, "a", 1),
		recordedFailure(&order, "b", "b broke"),
		recorded(&order, "c", 3),
		recorded(&order, "d", 4),
	)

	cause, failed := querydb.Perform(query, sampleDB()).Cause()

	require.True(t, failed)
	assert.Equal(t, "b broke", cause)
	assert.Equal(t, []string{"a", "b"}, order)
}

func Test_AndMap_EvaluatesFunctionQueryFirst(t *testing.T) {
	var order []string

	functionQuery := querydb.New(func(heroDB) querydb.Result[string, func(int) int] {
		order = append(order, "function")
		return querydb.Ok[string](func(n int) int { return n + 1 })
	})

	query := querydb.AndMap(recorded(&order, "value", 41), functionQuery)

	value, ok := querydb.Perform(query, sampleDB()).Value()

	require.True(t, ok)
	assert.Equal(t, 42, value)
	assert.Equal(t, []string{"function", "value"}, order)
}

func Test_AndThen_ChainsOnSuccess(t *testing.T) {
	db := sampleDB()

	userOfFirstHero := querydb.AndThen(func(hero string) querydb.Query[heroDB, string, int] {
		return querydb.KeyWhere("no such user", projectUsers, func(name string) bool {
			return name == hero
		})
	}, querydb.ByIndex("no such hero", projectHeroes, 0))

	value, ok := querydb.Perform(userOfFirstHero, db).Value()

	require.True(t, ok)
	assert.Equal(t, 1, value)
}

func Test_AndThen_PropagatesFailureWithoutBuildingNextQuery(t *testing.T) {
	built := false
	query := querydb.AndThen(func(int) querydb.Query[heroDB, string, int] {
		built = true
		return querydb.Succeed[heroDB, string](0)
	}, querydb.Fail[heroDB, string, int]("early"))

	cause, failed := querydb.Perform(query, sampleDB()).Cause()

	require.True(t, failed)
	assert.Equal(t, "early", cause)
	assert.False(t, built)
}

func Test_OrElse_RecoverySeesCauseAndDatabase(t *testing.T) {
	db := sampleDB()

	var seenCause string
	recovered := querydb.OrElse(func(cause string) querydb.Query[heroDB, string, string] {
		seenCause = cause
		return querydb.ByKey("still missing", projectUsers, 2)
	}, querydb.Fail[heroDB, string, string]("original cause"))

	value, ok := querydb.Perform(recovered, db).Value()

	require.True(t, ok)
	assert.Equal(t, "Spiderman", value)
	assert.Equal(t, "original cause", seenCause)
}

func Test_OrElse_SuccessPassesThroughUntouched(t *testing.T) {
	recoveryBuilt := false
	query := querydb.OrElse(func(string) querydb.Query[heroDB, string, int] {
		recoveryBuilt = true
		return querydb.Succeed[heroDB, string](0)
	}, querydb.Succeed[heroDB, string](7))

	value, ok := querydb.Perform(query, sampleDB()).Value()

	require.True(t, ok)
	assert.Equal(t, 7, value)
	assert.False(t, recoveryBuilt)
}

func Test_OrElse_CanChangeTheErrorType(t *testing.T) {
	query := querydb.OrElse(func(cause string) querydb.Query[heroDB, int, string] {
		return querydb.Fail[heroDB, int, string](len(cause))
	}, querydb.Fail[heroDB, string, string]("four"))

	cause, failed := querydb.Perform(query, sampleDB()).Cause()

	require.True(t, failed)
	assert.Equal(t, 4, cause)
}
