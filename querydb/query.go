package querydb

// Query describes how to read a value of type A out of a database value of
// type DB, failing with a value of type E. It wraps a single total function
// from database to Result and carries no other state.
//
// Queries are immutable: every combinator returns a new Query and leaves its
// inputs untouched, so a Query may be reused and performed concurrently.
type Query[DB, E, A any] struct {
	run func(DB) Result[E, A]
}

// New wraps a raw query function.
//
// The function must be total: always return a Result, for any database value.
// Most callers should build queries from Identity and the accessors instead.
func New[DB, E, A any](run func(DB) Result[E, A]) Query[DB, E, A] {
	return Query[DB, E, A]{run: run}
}

// Perform runs the query against a concrete database.
// This is the only place where a Result materializes.
func Perform[DB, E, A any](query Query[DB, E, A], db DB) Result[E, A] {
	return query.run(db)
}

// Succeed creates a query that ignores the database and always succeeds
// with value. It is the identity element for the combine family.
func Succeed[DB, E, A any](value A) Query[DB, E, A] {
	return New(func(DB) Result[E, A] {
		return Ok[E](value)
	})
}

// Fail creates a query that ignores the database and always fails with
// cause. It is absorbing for AndThen and the Map2 family.
func Fail[DB, E, A any](cause E) Query[DB, E, A] {
	return New(func(DB) Result[E, A] {
		return Err[E, A](cause)
	})
}

// Identity creates a query that succeeds with the database itself.
// Every accessor is built from Identity via AndThen.
func Identity[DB, E any]() Query[DB, E, DB] {
	return New(func(db DB) Result[E, DB] {
		return Ok[E](db)
	})
}

// MapError transforms the failure value of a query; a success passes through
// unchanged. No query work is re-run.
func MapError[DB, E, F, A any](f func(E) F, query Query[DB, E, A]) Query[DB, F, A] {
	return New(func(db DB) Result[F, A] {
		return MapResultError(f, query.run(db))
	})
}
