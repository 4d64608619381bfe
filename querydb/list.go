package querydb

import (
	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

// List (sequence) accessors. Index access walks the list, so ByIndex costs
// O(index).

// ByIndex succeeds with the item at the given zero-based index in the
// projected List, failing with missing if the index is negative or past the
// end.
func ByIndex[DB, E, A any](
	missing E,
	project func(DB) collection.List[A],
	index int,
) Query[DB, E, A] {

	return AndThen(func(db DB) Query[DB, E, A] {
		if item, ok := project(db).At(index); ok {
			return Succeed[DB, E](item)
		}

		return Fail[DB, E, A](missing)
	}, Identity[DB, E]())
}

// ItemsWhere succeeds with all items of the projected List satisfying pred,
// preserving their original order. An empty result is a valid success.
func ItemsWhere[DB, E, A any](
	project func(DB) collection.List[A],
	pred func(A) bool,
) Query[DB, E, collection.List[A]] {

	return AndThen(func(db DB) Query[DB, E, collection.List[A]] {
		matches := filterInOrder(project(db).All(), pred)

		return Succeed[DB, E](collection.NewList(matches...))
	}, Identity[DB, E]())
}

// IndexWhere succeeds with the zero-based index of the first item in the
// projected List satisfying pred, scanning front to back, failing with
// missing if none does.
func IndexWhere[DB, E, A any](
	missing E,
	project func(DB) collection.List[A],
	pred func(A) bool,
) Query[DB, E, int] {

	return AndThen(func(db DB) Query[DB, E, int] {
		if index, ok := firstIndexWhere(project(db).All(), pred); ok {
			return Succeed[DB, E](index)
		}

		return Fail[DB, E, int](missing)
	}, Identity[DB, E]())
}
