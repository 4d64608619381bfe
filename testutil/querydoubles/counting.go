package querydoubles

import (
	"sync/atomic"

	"github.com/AntonStoeckl/relational-query-go/querydb"
)

// CountPerforms wraps a query so that counter is incremented every time the
// query's underlying function actually runs. The wrapped query behaves
// exactly like the original otherwise.
//
// This makes the short-circuit contract observable: a query skipped by
// fail-fast combination leaves its counter untouched.
func CountPerforms[DB, E, A any](
	counter *atomic.Int64,
	query querydb.Query[DB, E, A],
) querydb.Query[DB, E, A] {

	return querydb.New(func(db DB) querydb.Result[E, A] {
		counter.Add(1)
		return querydb.Perform(query, db)
	})
}
