package querydb

import (
	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

// Array accessors. Same operations and failure semantics as the List
// accessors; only the cost model differs, ArrayByIndex is O(1).

// ArrayByIndex succeeds with the item at the given zero-based index in the
// projected Array, failing with missing if the index is negative or past the
// end.
func ArrayByIndex[DB, E, A any](
	missing E,
	project func(DB) collection.Array[A],
	index int,
) Query[DB, E, A] {

	return AndThen(func(db DB) Query[DB, E, A] {
		if item, ok := project(db).At(index); ok {
			return Succeed[DB, E](item)
		}

		return Fail[DB, E, A](missing)
	}, Identity[DB, E]())
}

// ArrayItemsWhere succeeds with all items of the projected Array satisfying
// pred, preserving their original order. An empty result is a valid success.
func ArrayItemsWhere[DB, E, A any](
	project func(DB) collection.Array[A],
	pred func(A) bool,
) Query[DB, E, collection.Array[A]] {

	return AndThen(func(db DB) Query[DB, E, collection.Array[A]] {
		matches := filterInOrder(project(db).All(), pred)

		return Succeed[DB, E](collection.NewArray(matches...))
	}, Identity[DB, E]())
}

// ArrayIndexWhere succeeds with the zero-based index of the first item in the
// projected Array satisfying pred, scanning front to back, failing with
// missing if none does. It runs the same scan algorithm as IndexWhere over
// the Array's canonical iterator.
func ArrayIndexWhere[DB, E, A any](
	missing E,
	project func(DB) collection.Array[A],
	pred func(A) bool,
) Query[DB, E, int] {

	return AndThen(func(db DB) Query[DB, E, int] {
		if index, ok := firstIndexWhere(project(db).All(), pred); ok {
			return Succeed[DB, E](index)
		}

		return Fail[DB, E, int](missing)
	}, Identity[DB, E]())
}
