// Package collection provides the immutable containers the query layer
// operates on: a key-ordered Dict, a persistent linked List, and a
// random-access Array.
//
// All three are value types with copy-on-write semantics: every "modifying"
// operation returns a new container and leaves the receiver untouched, so a
// container captured inside a query closure stays valid across repeated
// performs and across goroutines without coordination.
//
// Traversal contracts:
//   - Dict iterates in ascending key order. This order is observable through
//     the query layer (KeyWhere, ValuesWhere, CombineDict) and is a deliberate
//     contract, not an artifact of the backing map.
//   - List and Array iterate in insertion order. List index access is O(i),
//     Array index access is O(1).
package collection
