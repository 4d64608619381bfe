package querydb

import (
	"cmp"

	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

// Dict accessors. The projection function maps the database to the Dict being
// queried; the core never inspects the database shape directly.

// ByKey looks key up in the projected Dict, failing with missing if absent.
func ByKey[DB, E any, K cmp.Ordered, V any](
	missing E,
	project func(DB) collection.Dict[K, V],
	key K,
) Query[DB, E, V] {

	return AndThen(func(db DB) Query[DB, E, V] {
		if value, ok := project(db).Get(key); ok {
			return Succeed[DB, E](value)
		}

		return Fail[DB, E, V](missing)
	}, Identity[DB, E]())
}

// KeyWhere scans the projected Dict in ascending key order and succeeds with
// the first key whose value satisfies pred, failing with missing if none does.
//
// When several keys match, the lowest one wins. Callers rely on this
// tie-break, it is part of the contract.
func KeyWhere[DB, E any, K cmp.Ordered, V any](
	missing E,
	project func(DB) collection.Dict[K, V],
	pred func(V) bool,
) Query[DB, E, K] {

	return AndThen(func(db DB) Query[DB, E, K] {
		for key, value := range project(db).All() {
			if pred(value) {
				return Succeed[DB, E](key)
			}
		}

		return Fail[DB, E, K](missing)
	}, Identity[DB, E]())
}

// ValuesWhere succeeds with all values of the projected Dict satisfying pred,
// in ascending key order. An empty result is a valid success.
func ValuesWhere[DB, E any, K cmp.Ordered, V any](
	project func(DB) collection.Dict[K, V],
	pred func(V) bool,
) Query[DB, E, collection.List[V]] {

	return AndThen(func(db DB) Query[DB, E, collection.List[V]] {
		var matches []V
		for _, value := range project(db).All() {
			if pred(value) {
				matches = append(matches, value)
			}
		}

		return Succeed[DB, E](collection.NewList(matches...))
	}, Identity[DB, E]())
}
