// Package querydb provides a composable query abstraction for reading values
// out of an immutable, in-memory database value, typically an application's
// normalized state built from Dicts, Lists and Arrays.
//
// A Query[DB, E, A] is a pure, reusable description of how to extract or
// locate a value of type A inside a database of type DB, failing with an
// error value of type E. Building a query never touches a database; Perform
// is the single point where a concrete database is supplied and a Result
// materializes. Performing a query never mutates the database and never
// panics - failure is always an ordinary value.
//
// Queries compose: Map transforms a successful value, AndThen chains a query
// whose shape depends on an earlier result, OrElse recovers from failure, and
// the Map2..Map7 family combines independent queries. Combination always
// evaluates left to right and short-circuits on the first failure; a later
// query's function is never invoked once an earlier one has failed.
//
// Accessors look values up in the three container shapes of the collection
// package, mediated by caller-supplied projection functions:
//
//	bookTitle := querydb.Map(
//		func(b Book) string { return b.Title },
//		querydb.ByKey(ErrBookNotFound, func(c Catalog) collection.Dict[string, Book] {
//			return c.Books
//		}, bookID),
//	)
//
//	title := querydb.Perform(bookTitle, catalog)
//
// The Combine/Traverse family lifts a collection of queries into a query of a
// collection, preserving order and failing fast on the first (leftmost or
// lowest-key) failure.
//
// Because queries are immutable and referentially transparent, the same query
// value may be performed concurrently from any number of goroutines without
// coordination.
//
// The simple subpackage offers the same surface with the error type erased;
// the logadapters subpackage provides debug-probe sinks backed by log/slog
// and OpenTelemetry.
package querydb
