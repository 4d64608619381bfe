package simple

import (
	"github.com/AntonStoeckl/relational-query-go/querydb"
)

// Combinators, delegating to their querydb counterparts. Evaluation order and
// short-circuit behavior are identical to the explicit-error surface.

// Map applies f to the query's value; None propagates unchanged.
func Map[DB, A, R any](f func(A) R, query Query[DB, A]) Query[DB, R] {
	return Query[DB, R]{explicit: querydb.Map(f, query.explicit)}
}

// Map2 combines two queries with f, evaluating left to right and
// short-circuiting on the first failure.
func Map2[DB, A, B, R any](f func(A, B) R, qa Query[DB, A], qb Query[DB, B]) Query[DB, R] {
	return Query[DB, R]{explicit: querydb.Map2(f, qa.explicit, qb.explicit)}
}

// Map3 combines three queries with f in the order listed.
func Map3[DB, A, B, C, R any](
	f func(A, B, C) R,
	qa Query[DB, A],
	qb Query[DB, B],
	qc Query[DB, C],
) Query[DB, R] {

	return Query[DB, R]{explicit: querydb.Map3(f, qa.explicit, qb.explicit, qc.explicit)}
}

// Map4 combines four queries with f in the order listed.
func Map4[DB, A, B, C, D, R any](
	f func(A, B, C, D) R,
	qa Query[DB, A],
	qb Query[DB, B],
	qc Query[DB, C],
	qd Query[DB, D],
) Query[DB, R] {

	return Query[DB, R]{explicit: querydb.Map4(f, qa.explicit, qb.explicit, qc.explicit, qd.explicit)}
}

// Map5 combines five queries with f in the order listed.
func Map5[DB, A, B, C, D, F, R any](
	f func(A, B, C, D, F) R,
	qa Query[DB, A],
	qb Query[DB, B],
	qc Query[DB, C],
	qd Query[DB, D],
	qf Query[DB, F],
) Query[DB, R] {

	return Query[DB, R]{
		explicit: querydb.Map5(f, qa.explicit, qb.explicit, qc.explicit, qd.explicit, qf.explicit),
	}
}

// Map6 combines six queries with f in the order listed.
func Map6[DB, A, B, C, D, F, G, R any](
	f func(A, B, C, D, F, G) R,
	qa Query[DB, A],
	qb Query[DB, B],
	qc Query[DB, C],
	qd Query[DB, D],
	qf Query[DB, F],
	qg Query[DB, G],
) Query[DB, R] {

	return Query[DB, R]{
		explicit: querydb.Map6(f, qa.explicit, qb.explicit, qc.explicit, qd.explicit, qf.explicit, qg.explicit),
	}
}

// Map7 combines seven queries with f in the order listed.
func Map7[DB, A, B, C, D, F, G, H, R any](
	f func(A, B, C, D, F, G, H) R,
	qa Query[DB, A],
	qb Query[DB, B],
	qc Query[DB, C],
	qd Query[DB, D],
	qf Query[DB, F],
	qg Query[DB, G],
	qh Query[DB, H],
) Query[DB, R] {

	return Query[DB, R]{
		explicit: querydb.Map7(
			f, qa.explicit, qb.explicit, qc.explicit, qd.explicit, qf.explicit, qg.explicit, qh.explicit,
		),
	}
}

// AndMap applies a function-producing query to a value-producing query.
func AndMap[DB, A, R any](qa Query[DB, A], qf Query[DB, func(A) R]) Query[DB, R] {
	return Query[DB, R]{explicit: querydb.AndMap(qa.explicit, qf.explicit)}
}

// AndThen chains a query whose shape depends on an earlier result.
func AndThen[DB, A, R any](f func(A) Query[DB, R], query Query[DB, A]) Query[DB, R] {
	return Query[DB, R]{
		explicit: querydb.AndThen(func(a A) querydb.Query[DB, struct{}, R] {
			return f(a).explicit
		}, query.explicit),
	}
}

// OrElse recovers from failure. The recovery builder receives no argument,
// an erased failure carries no information to recover from.
func OrElse[DB, A any](f func() Query[DB, A], query Query[DB, A]) Query[DB, A] {
	return Query[DB, A]{
		explicit: querydb.OrElse(func(struct{}) querydb.Query[DB, struct{}, A] {
			return f().explicit
		}, query.explicit),
	}
}
