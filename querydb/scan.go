package querydb

import "iter"

// Shared scanning algorithms over the canonical iteration order of a shape.
// List and Array accessors instantiate these with their own iterators, so
// both shapes observe identical scan behavior.

// firstIndexWhere returns the index of the first item satisfying pred.
func firstIndexWhere[A any](items iter.Seq2[int, A], pred func(A) bool) (int, bool) {
	for index, item := range items {
		if pred(item) {
			return index, true
		}
	}

	return 0, false
}

// filterInOrder returns all items satisfying pred, preserving order.
func filterInOrder[A any](items iter.Seq2[int, A], pred func(A) bool) []A {
	var matches []A
	for _, item := range items {
		if pred(item) {
			matches = append(matches, item)
		}
	}

	return matches
}
