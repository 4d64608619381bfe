package simple

import (
	"cmp"

	"github.com/AntonStoeckl/relational-query-go/querydb"
	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

// Combine/traverse, delegating to querydb after unwrapping the elements.
// Order and fail-fast behavior are identical to the explicit-error surface.

// CombineList lifts a List of queries into a query of a List.
func CombineList[DB, A any](queries collection.List[Query[DB, A]]) Query[DB, collection.List[A]] {
	explicit := make([]querydb.Query[DB, struct{}, A], 0, queries.Length())
	for _, query := range queries.All() {
		explicit = append(explicit, query.explicit)
	}

	return Query[DB, collection.List[A]]{
		explicit: querydb.CombineList(collection.NewList(explicit...)),
	}
}

// CombineArray lifts an Array of queries into a query of an Array.
func CombineArray[DB, A any](queries collection.Array[Query[DB, A]]) Query[DB, collection.Array[A]] {
	explicit := make([]querydb.Query[DB, struct{}, A], 0, queries.Length())
	for _, query := range queries.All() {
		explicit = append(explicit, query.explicit)
	}

	return Query[DB, collection.Array[A]]{
		explicit: querydb.CombineArray(collection.NewArray(explicit...)),
	}
}

// CombineDict lifts a Dict of queries into a query of a Dict with the same
// keys.
func CombineDict[DB any, K cmp.Ordered, V any](
	queries collection.Dict[K, Query[DB, V]],
) Query[DB, collection.Dict[K, V]] {

	explicit := collection.Dict[K, querydb.Query[DB, struct{}, V]]{}
	for key, query := range queries.All() {
		explicit = explicit.Insert(key, query.explicit)
	}

	return Query[DB, collection.Dict[K, V]]{explicit: querydb.CombineDict(explicit)}
}

// TraverseList maps f over a List and combines the resulting queries.
func TraverseList[DB, A, B any](
	f func(A) Query[DB, B],
	items collection.List[A],
) Query[DB, collection.List[B]] {

	queries := make([]Query[DB, B], 0, items.Length())
	for _, item := range items.All() {
		queries = append(queries, f(item))
	}

	return CombineList(collection.NewList(queries...))
}

// TraverseArray maps f over an Array and combines the resulting queries.
func TraverseArray[DB, A, B any](
	f func(A) Query[DB, B],
	items collection.Array[A],
) Query[DB, collection.Array[B]] {

	queries := make([]Query[DB, B], 0, items.Length())
	for _, item := range items.All() {
		queries = append(queries, f(item))
	}

	return CombineArray(collection.NewArray(queries...))
}

// TraverseDict maps f over a Dict's values and combines the resulting
// queries.
func TraverseDict[DB any, K cmp.Ordered, V, W any](
	f func(V) Query[DB, W],
	items collection.Dict[K, V],
) Query[DB, collection.Dict[K, W]] {

	queries := collection.Dict[K, Query[DB, W]]{}
	for key, value := range items.All() {
		queries = queries.Insert(key, f(value))
	}

	return CombineDict(queries)
}
