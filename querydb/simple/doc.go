// Package simple presents the querydb surface with the error type erased.
//
// Every explicit-error builder, combinator and accessor of querydb has
// exactly one counterpart here, obtained by fixing the error type to the unit
// value struct{} and projecting Result to Maybe at Perform. Failure carries
// no detail: a query either yields Some value or None.
//
// Use this package when callers only care whether a value is there:
//
//	title := simple.Map(
//		func(b Book) string { return b.Title },
//		simple.ByKey(func(c Catalog) collection.Dict[string, Book] {
//			return c.Books
//		}, bookID),
//	)
//
//	if name, ok := simple.Perform(title, catalog).Get(); ok {
//		fmt.Println(name)
//	}
//
// The package is a pure adapter layer over querydb and introduces no new
// algorithmic behavior. FromExplicit and the Explicit method convert between
// the two surfaces.
package simple
