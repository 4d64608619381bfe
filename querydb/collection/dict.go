package collection

import (
	"cmp"
	"iter"
	"slices"
)

// Dict is an immutable associative container with unique, ordered keys.
//
// The zero value is an empty Dict and is ready to use.
// Keys are constrained to ordered types because ascending-key traversal is
// part of the Dict contract.
type Dict[K cmp.Ordered, V any] struct {
	entries map[K]V
}

// NewDict creates a Dict from the given entries map.
// The input map is copied, later mutation of it does not affect the Dict.
func NewDict[K cmp.Ordered, V any](entries map[K]V) Dict[K, V] {
	if len(entries) == 0 {
		return Dict[K, V]{}
	}

	copied := make(map[K]V, len(entries))
	for key, value := range entries {
		copied[key] = value
	}

	return Dict[K, V]{entries: copied}
}

// Get returns the value stored under key and whether it is present.
func (d Dict[K, V]) Get(key K) (V, bool) {
	value, ok := d.entries[key]
	return value, ok
}

// Insert returns a new Dict with value stored under key,
// replacing any existing entry for that key.
func (d Dict[K, V]) Insert(key K, value V) Dict[K, V] {
	copied := make(map[K]V, len(d.entries)+1)
	for k, v := range d.entries {
		copied[k] = v
	}
	copied[key] = value

	return Dict[K, V]{entries: copied}
}

// Remove returns a new Dict without an entry for key.
// Removing an absent key returns an equivalent Dict.
func (d Dict[K, V]) Remove(key K) Dict[K, V] {
	if _, ok := d.entries[key]; !ok {
		return d
	}

	copied := make(map[K]V, len(d.entries)-1)
	for k, v := range d.entries {
		if k != key {
			copied[k] = v
		}
	}

	return Dict[K, V]{entries: copied}
}

// Len returns the number of entries.
func (d Dict[K, V]) Len() int {
	return len(d.entries)
}

// Keys returns all keys in ascending order.
func (d Dict[K, V]) Keys() []K {
	keys := make([]K, 0, len(d.entries))
	for key := range d.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}

// All iterates over all entries in ascending key order.
func (d Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range d.Keys() {
			if !yield(key, d.entries[key]) {
				return
			}
		}
	}
}

// ToMap returns the entries as a plain map.
// The returned map is a copy, mutating it does not affect the Dict.
func (d Dict[K, V]) ToMap() map[K]V {
	copied := make(map[K]V, len(d.entries))
	for key, value := range d.entries {
		copied[key] = value
	}

	return copied
}
