package collection

import "iter"

// List is a persistent singly linked list.
//
// The zero value is an empty List and is ready to use.
// Cons shares the tail with the receiver, so prepending is O(1) and never
// affects other Lists holding the same cells.
type List[A any] struct {
	front  *listNode[A]
	length int
}

type listNode[A any] struct {
	item A
	next *listNode[A]
}

// NewList creates a List holding the given items in the given order.
func NewList[A any](items ...A) List[A] {
	list := List[A]{}
	for i := len(items) - 1; i >= 0; i-- {
		list = list.Cons(items[i])
	}

	return list
}

// Cons returns a new List with item prepended.
func (l List[A]) Cons(item A) List[A] {
	return List[A]{
		front:  &listNode[A]{item: item, next: l.front},
		length: l.length + 1,
	}
}

// Head returns the first item and whether the List is non-empty.
func (l List[A]) Head() (A, bool) {
	if l.front == nil {
		var zero A
		return zero, false
	}

	return l.front.item, true
}

// Tail returns the List without its first item and whether the List
// was non-empty.
func (l List[A]) Tail() (List[A], bool) {
	if l.front == nil {
		return List[A]{}, false
	}

	return List[A]{front: l.front.next, length: l.length - 1}, true
}

// Length returns the number of items.
func (l List[A]) Length() int {
	return l.length
}

// At returns the item at the given zero-based index and whether it exists.
// Access cost is linear in the index.
func (l List[A]) At(index int) (A, bool) {
	if index < 0 || index >= l.length {
		var zero A
		return zero, false
	}

	node := l.front
	for i := 0; i < index; i++ {
		node = node.next
	}

	return node.item, true
}

// All iterates over all items with their indexes, front to back.
func (l List[A]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		index := 0
		for node := l.front; node != nil; node = node.next {
			if !yield(index, node.item) {
				return
			}
			index++
		}
	}
}

// Reverse returns a new List with the items in reverse order.
func (l List[A]) Reverse() List[A] {
	reversed := List[A]{}
	for node := l.front; node != nil; node = node.next {
		reversed = reversed.Cons(node.item)
	}

	return reversed
}

// ToSlice returns the items as a slice, front to back.
func (l List[A]) ToSlice() []A {
	items := make([]A, 0, l.length)
	for node := l.front; node != nil; node = node.next {
		items = append(items, node.item)
	}

	return items
}
