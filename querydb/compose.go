package querydb

// The combinator family. Map2 and AndThen are the primitives that fix the
// evaluation-order and short-circuit contract; Map3..Map7 and AndMap are
// derived from them by repeated application so the contract holds uniformly
// across all arities.

// Map applies f to the query's success value; a failure propagates unchanged.
func Map[DB, E, A, R any](f func(A) R, query Query[DB, E, A]) Query[DB, E, R] {
	return New(func(db DB) Result[E, R] {
		return MapResult(f, query.run(db))
	})
}

// Map2 combines two queries with f.
//
// Evaluation is strictly left to right: qa runs first, and if it fails, its
// failure is returned without ever invoking qb's underlying function.
func Map2[DB, E, A, B, R any](f func(A, B) R, qa Query[DB, E, A], qb Query[DB, E, B]) Query[DB, E, R] {
	return New(func(db DB) Result[E, R] {
		ra := qa.run(db)
		a, ok := ra.Value()
		if !ok {
			cause, _ := ra.Cause()
			return Err[E, R](cause)
		}

		rb := qb.run(db)
		b, ok := rb.Value()
		if !ok {
			cause, _ := rb.Cause()
			return Err[E, R](cause)
		}

		return Ok[E](f(a, b))
	})
}

// Map3 combines three queries with f, evaluating them in the order listed
// and short-circuiting on the first failure.
func Map3[DB, E, A, B, C, R any](
	f func(A, B, C) R,
	qa Query[DB, E, A],
	qb Query[DB, E, B],
	qc Query[DB, E, C],
) Query[DB, E, R] {

	return AndMap(qc, Map2(func(a A, b B) func(C) R {
		return func(c C) R { return f(a, b, c) }
	}, qa, qb))
}

// Map4 combines four queries with f, evaluating them in the order listed
// and short-circuiting on the first failure.
func Map4[DB, E, A, B, C, D, R any](
	f func(A, B, C, D) R,
	qa Query[DB, E, A],
	qb Query[DB, E, B],
	qc Query[DB, E, C],
	qd Query[DB, E, D],
) Query[DB, E, R] {

	return AndMap(qd, Map3(func(a A, b B, c C) func(D) R {
		return func(d D) R { return f(a, b, c, d) }
	}, qa, qb, qc))
}

// Map5 combines five queries with f, evaluating them in the order listed
// and short-circuiting on the first failure.
func Map5[DB, E, A, B, C, D, F, R any](
	f func(A, B, C, D, F) R,
	qa Query[DB, E, A],
	qb Query[DB, E, B],
	qc Query[DB, E, C],
	qd Query[DB, E, D],
	qf Query[DB, E, F],
) Query[DB, E, R] {

	return AndMap(qf, Map4(func(a A, b B, c C, d D) func(F) R {
		return func(f5 F) R { return f(a, b, c, d, f5) }
	}, qa, qb, qc, qd))
}

// Map6 combines six queries with f, evaluating them in the order listed
// and short-circuiting on the first failure.
func Map6[DB, E, A, B, C, D, F, G, R any](
	f func(A, B, C, D, F, G) R,
	qa Query[DB, E, A],
	qb Query[DB, E, B],
	qc Query[DB, E, C],
	qd Query[DB, E, D],
	qf Query[DB, E, F],
	qg Query[DB, E, G],
) Query[DB, E, R] {

	return AndMap(qg, Map5(func(a A, b B, c C, d D, f5 F) func(G) R {
		return func(g G) R { return f(a, b, c, d, f5, g) }
	}, qa, qb, qc, qd, qf))
}

// Map7 combines seven queries with f, evaluating them in the order listed
// and short-circuiting on the first failure.
func Map7[DB, E, A, B, C, D, F, G, H, R any](
	f func(A, B, C, D, F, G, H) R,
	qa Query[DB, E, A],
	qb Query[DB, E, B],
	qc Query[DB, E, C],
	qd Query[DB, E, D],
	qf Query[DB, E, F],
	qg Query[DB, E, G],
	qh Query[DB, E, H],
) Query[DB, E, R] {

	return AndMap(qh, Map6(func(a A, b B, c C, d D, f5 F, g G) func(H) R {
		return func(h H) R { return f(a, b, c, d, f5, g, h) }
	}, qa, qb, qc, qd, qf, qg))
}

// AndMap applies a function-producing query to a value-producing query.
//
// The function-producing query qf runs first, keeping the left-to-right
// evaluation order intact when AndMap chains extend a Map pipeline.
func AndMap[DB, E, A, R any](qa Query[DB, E, A], qf Query[DB, E, func(A) R]) Query[DB, E, R] {
	return Map2(func(apply func(A) R, a A) R {
		return apply(a)
	}, qf, qa)
}

// AndThen chains a query whose shape depends on an earlier result: on success
// of query with value a, f(a) is built and performed against the same
// database; a failure propagates unchanged.
func AndThen[DB, E, A, R any](f func(A) Query[DB, E, R], query Query[DB, E, A]) Query[DB, E, R] {
	return New(func(db DB) Result[E, R] {
		r := query.run(db)
		a, ok := r.Value()
		if !ok {
			cause, _ := r.Cause()
			return Err[E, R](cause)
		}

		return f(a).run(db)
	})
}

// OrElse recovers from failure: on failure of query with cause e, f(e) is
// built and performed against the same database; a success passes through
// unchanged. The recovery query may use a different error type.
func OrElse[DB, E, F, A any](f func(E) Query[DB, F, A], query Query[DB, E, A]) Query[DB, F, A] {
	return New(func(db DB) Result[F, A] {
		r := query.run(db)
		if a, ok := r.Value(); ok {
			return Ok[F](a)
		}

		cause, _ := r.Cause()

		return f(cause).run(db)
	})
}
