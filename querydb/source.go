package querydb

// Source adapters lift external optional and fallible values into queries.

// FromMaybe lifts an optional value: Some becomes Succeed, None becomes
// Fail with the caller-supplied missing value.
func FromMaybe[DB, E, A any](missing E, m Maybe[A]) Query[DB, E, A] {
	if value, ok := m.Get(); ok {
		return Succeed[DB, E](value)
	}

	return Fail[DB, E, A](missing)
}

// FromResult lifts a Result: Ok becomes Succeed, Err becomes Fail carrying
// the Result's own failure value.
func FromResult[DB, E, A any](r Result[E, A]) Query[DB, E, A] {
	return New(func(DB) Result[E, A] {
		return r
	})
}
