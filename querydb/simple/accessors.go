package simple

import (
	"cmp"

	"github.com/AntonStoeckl/relational-query-go/querydb"
	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

// Accessors, with the explicit-error parameter dropped.

var unit = struct{}{}

// ByKey looks key up in the projected Dict, yielding None if absent.
func ByKey[DB any, K cmp.Ordered, V any](
	project func(DB) collection.Dict[K, V],
	key K,
) Query[DB, V] {

	return Query[DB, V]{explicit: querydb.ByKey(unit, project, key)}
}

// KeyWhere yields the lowest key of the projected Dict whose value satisfies
// pred, or None if no value does.
func KeyWhere[DB any, K cmp.Ordered, V any](
	project func(DB) collection.Dict[K, V],
	pred func(V) bool,
) Query[DB, K] {

	return Query[DB, K]{explicit: querydb.KeyWhere(unit, project, pred)}
}

// ValuesWhere yields all values of the projected Dict satisfying pred, in
// ascending key order.
func ValuesWhere[DB any, K cmp.Ordered, V any](
	project func(DB) collection.Dict[K, V],
	pred func(V) bool,
) Query[DB, collection.List[V]] {

	return Query[DB, collection.List[V]]{explicit: querydb.ValuesWhere[DB, struct{}](project, pred)}
}

// ByIndex yields the item at the given index of the projected List, or None
// if the index is out of range.
func ByIndex[DB, A any](project func(DB) collection.List[A], index int) Query[DB, A] {
	return Query[DB, A]{explicit: querydb.ByIndex(unit, project, index)}
}

// ItemsWhere yields all items of the projected List satisfying pred, in
// their original order.
func ItemsWhere[DB, A any](
	project func(DB) collection.List[A],
	pred func(A) bool,
) Query[DB, collection.List[A]] {

	return Query[DB, collection.List[A]]{explicit: querydb.ItemsWhere[DB, struct{}](project, pred)}
}

// IndexWhere yields the index of the first item of the projected List
// satisfying pred, or None if no item does.
func IndexWhere[DB, A any](
	project func(DB) collection.List[A],
	pred func(A) bool,
) Query[DB, int] {

	return Query[DB, int]{explicit: querydb.IndexWhere(unit, project, pred)}
}

// ArrayByIndex yields the item at the given index of the projected Array, or
// None if the index is out of range.
func ArrayByIndex[DB, A any](project func(DB) collection.Array[A], index int) Query[DB, A] {
	return Query[DB, A]{explicit: querydb.ArrayByIndex(unit, project, index)}
}

// ArrayItemsWhere yields all items of the projected Array satisfying pred,
// in their original order.
func ArrayItemsWhere[DB, A any](
	project func(DB) collection.Array[A],
	pred func(A) bool,
) Query[DB, collection.Array[A]] {

	return Query[DB, collection.Array[A]]{explicit: querydb.ArrayItemsWhere[DB, struct{}](project, pred)}
}

// ArrayIndexWhere yields the index of the first item of the projected Array
// satisfying pred, or None if no item does.
func ArrayIndexWhere[DB, A any](
	project func(DB) collection.Array[A],
	pred func(A) bool,
) Query[DB, int] {

	return Query[DB, int]{explicit: querydb.ArrayIndexWhere(unit, project, pred)}
}
