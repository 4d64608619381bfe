package querydb

import (
	"cmp"

	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

// The combine family lifts a collection of queries into a query of a
// collection. All three shapes are folds of Map2, which fixes the shared
// contract: evaluation runs in the shape's canonical order (front to back,
// or ascending keys), the first failure encountered is returned, and no
// later query's underlying function is invoked after a failure.

// CombineList lifts a List of queries into a query of a List.
//
// On success the resulting List preserves the original order. On failure the
// result is the leftmost failing element's failure.
func CombineList[DB, E, A any](queries collection.List[Query[DB, E, A]]) Query[DB, E, collection.List[A]] {
	// Fold right so the first element ends up outermost and runs first.
	combined := Succeed[DB, E](collection.List[A]{})
	for _, query := range queries.Reverse().All() {
		rest := combined
		combined = Map2(func(head A, tail collection.List[A]) collection.List[A] {
			return tail.Cons(head)
		}, query, rest)
	}

	return combined
}

// CombineArray lifts an Array of queries into a query of an Array.
//
// Same order-preservation and fail-fast contract as CombineList.
func CombineArray[DB, E, A any](queries collection.Array[Query[DB, E, A]]) Query[DB, E, collection.Array[A]] {
	combined := Succeed[DB, E](collection.Array[A]{})
	for _, query := range queries.All() {
		combined = Map2(func(done collection.Array[A], item A) collection.Array[A] {
			return done.Push(item)
		}, combined, query)
	}

	return combined
}

// CombineDict lifts a Dict of queries into a query of a Dict with the same
// keys.
//
// Evaluation runs in ascending key order and fails fast on the lowest key
// whose query fails. Keys are preserved unchanged; only the values come from
// query results.
func CombineDict[DB, E any, K cmp.Ordered, V any](
	queries collection.Dict[K, Query[DB, E, V]],
) Query[DB, E, collection.Dict[K, V]] {

	// Fold from the highest key down so the lowest key ends up outermost
	// and runs first.
	combined := Succeed[DB, E](collection.Dict[K, V]{})
	keys := queries.Keys()
	for i := len(keys) - 1; i >= 0; i-- {
		key := keys[i]
		query, _ := queries.Get(key)
		rest := combined
		combined = Map2(func(value V, others collection.Dict[K, V]) collection.Dict[K, V] {
			return others.Insert(key, value)
		}, query, rest)
	}

	return combined
}

// TraverseList maps f over a List and combines the resulting queries.
// It is exactly equivalent to CombineList after a manual map.
func TraverseList[DB, E, A, B any](
	f func(A) Query[DB, E, B],
	items collection.List[A],
) Query[DB, E, collection.List[B]] {

	queries := make([]Query[DB, E, B], 0, items.Length())
	for _, item := range items.All() {
		queries = append(queries, f(item))
	}

	return CombineList(collection.NewList(queries...))
}

// TraverseArray maps f over an Array and combines the resulting queries.
// It is exactly equivalent to CombineArray after a manual map.
func TraverseArray[DB, E, A, B any](
	f func(A) Query[DB, E, B],
	items collection.Array[A],
) Query[DB, E, collection.Array[B]] {

	queries := make([]Query[DB, E, B], 0, items.Length())
	for _, item := range items.All() {
		queries = append(queries, f(item))
	}

	return CombineArray(collection.NewArray(queries...))
}

// TraverseDict maps f over a Dict's values and combines the resulting
// queries. It is exactly equivalent to CombineDict after a manual map.
func TraverseDict[DB, E any, K cmp.Ordered, V, W any](
	f func(V) Query[DB, E, W],
	items collection.Dict[K, V],
) Query[DB, E, collection.Dict[K, W]] {

	queries := collection.Dict[K, Query[DB, E, W]]{}
	for key, value := range items.All() {
		queries = queries.Insert(key, f(value))
	}

	return CombineDict(queries)
}
