package simple

import (
	"github.com/AntonStoeckl/relational-query-go/querydb"
)

// Query describes how to read a value of type A out of a database value of
// type DB. It is an error-erased querydb.Query: failure carries no detail.
type Query[DB, A any] struct {
	explicit querydb.Query[DB, struct{}, A]
}

// FromExplicit erases the error type of an explicit-error query.
func FromExplicit[DB, E, A any](query querydb.Query[DB, E, A]) Query[DB, A] {
	return Query[DB, A]{
		explicit: querydb.MapError(func(E) struct{} {
			return struct{}{}
		}, query),
	}
}

// Explicit returns the underlying unit-error query for interop with querydb.
func (q Query[DB, A]) Explicit() querydb.Query[DB, struct{}, A] {
	return q.explicit
}

// New wraps a raw query function returning a Maybe.
func New[DB, A any](run func(DB) querydb.Maybe[A]) Query[DB, A] {
	return Query[DB, A]{
		explicit: querydb.New(func(db DB) querydb.Result[struct{}, A] {
			if value, ok := run(db).Get(); ok {
				return querydb.Ok[struct{}](value)
			}

			return querydb.Err[struct{}, A](struct{}{})
		}),
	}
}

// Perform runs the query against a concrete database, yielding Some value on
// success and None on failure.
func Perform[DB, A any](query Query[DB, A], db DB) querydb.Maybe[A] {
	return querydb.Perform(query.explicit, db).ToMaybe()
}

// Succeed creates a query that ignores the database and always yields value.
func Succeed[DB, A any](value A) Query[DB, A] {
	return Query[DB, A]{explicit: querydb.Succeed[DB, struct{}, A](value)}
}

// Fail creates a query that ignores the database and always yields None.
func Fail[DB, A any]() Query[DB, A] {
	return Query[DB, A]{explicit: querydb.Fail[DB, struct{}, A](struct{}{})}
}

// Identity creates a query that yields the database itself.
func Identity[DB any]() Query[DB, DB] {
	return Query[DB, DB]{explicit: querydb.Identity[DB, struct{}]()}
}

// FromMaybe lifts an optional value into a query.
func FromMaybe[DB, A any](m querydb.Maybe[A]) Query[DB, A] {
	return Query[DB, A]{explicit: querydb.FromMaybe[DB](struct{}{}, m)}
}

// FromResult lifts a Result into a query, erasing its failure detail.
func FromResult[DB, E, A any](r querydb.Result[E, A]) Query[DB, A] {
	return FromExplicit(querydb.FromResult[DB](r))
}

// Sink receives debug-probe observations of an error-erased query.
type Sink[A any] func(tag string, result querydb.Maybe[A])

// Debug threads an observation hook through a query without altering its
// outcome. The sink sees the Maybe view of the result.
func Debug[DB, A any](sink Sink[A], tag string, query Query[DB, A]) Query[DB, A] {
	var explicitSink querydb.Sink[struct{}, A]
	if sink != nil {
		explicitSink = func(tag string, result querydb.Result[struct{}, A]) {
			sink(tag, result.ToMaybe())
		}
	}

	return Query[DB, A]{explicit: querydb.Debug(explicitSink, tag, query.explicit)}
}
