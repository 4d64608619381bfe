package collection

import "iter"

// Array is an immutable random-access container.
//
// The zero value is an empty Array and is ready to use.
// At is O(1); Push copies the backing slice so the receiver and the result
// never alias each other.
type Array[A any] struct {
	items []A
}

// NewArray creates an Array holding the given items in the given order.
// The input slice is copied.
func NewArray[A any](items ...A) Array[A] {
	if len(items) == 0 {
		return Array[A]{}
	}

	copied := make([]A, len(items))
	copy(copied, items)

	return Array[A]{items: copied}
}

// Push returns a new Array with item appended.
func (a Array[A]) Push(item A) Array[A] {
	copied := make([]A, len(a.items)+1)
	copy(copied, a.items)
	copied[len(a.items)] = item

	return Array[A]{items: copied}
}

// At returns the item at the given zero-based index and whether it exists.
func (a Array[A]) At(index int) (A, bool) {
	if index < 0 || index >= len(a.items) {
		var zero A
		return zero, false
	}

	return a.items[index], true
}

// Length returns the number of items.
func (a Array[A]) Length() int {
	return len(a.items)
}

// All iterates over all items with their indexes, in order.
func (a Array[A]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for index, item := range a.items {
			if !yield(index, item) {
				return
			}
		}
	}
}

// ToSlice returns the items as a slice.
// The returned slice is a copy, mutating it does not affect the Array.
func (a Array[A]) ToSlice() []A {
	copied := make([]A, len(a.items))
	copy(copied, a.items)

	return copied
}

// ToList returns the items as a List in the same order.
func (a Array[A]) ToList() List[A] {
	return NewList(a.items...)
}
