package querydb

// Result is a tagged union holding either a success value of type A or a
// failure value of type E. It is the sole outcome representation of Perform.
//
// The zero value is Ok with the zero value of A; Results should be built
// with Ok and Err.
type Result[E, A any] struct {
	value A
	cause E
	fail  bool
}

// Ok creates a successful Result.
func Ok[E, A any](value A) Result[E, A] {
	return Result[E, A]{value: value}
}

// Err creates a failed Result.
func Err[E, A any](cause E) Result[E, A] {
	return Result[E, A]{cause: cause, fail: true}
}

// IsOk reports whether the Result holds a success value.
func (r Result[E, A]) IsOk() bool {
	return !r.fail
}

// IsErr reports whether the Result holds a failure value.
func (r Result[E, A]) IsErr() bool {
	return r.fail
}

// Value returns the success value and whether the Result is Ok.
func (r Result[E, A]) Value() (A, bool) {
	return r.value, !r.fail
}

// Cause returns the failure value and whether the Result is Err.
func (r Result[E, A]) Cause() (E, bool) {
	return r.cause, r.fail
}

// ToMaybe projects the Result to a Maybe, discarding the failure detail.
func (r Result[E, A]) ToMaybe() Maybe[A] {
	if r.fail {
		return None[A]()
	}

	return Some(r.value)
}

// MapResult applies f to the success value; a failure passes through unchanged.
func MapResult[E, A, B any](f func(A) B, r Result[E, A]) Result[E, B] {
	if r.fail {
		return Err[E, B](r.cause)
	}

	return Ok[E](f(r.value))
}

// MapResultError applies f to the failure value; a success passes through unchanged.
func MapResultError[E, F, A any](f func(E) F, r Result[E, A]) Result[F, A] {
	if r.fail {
		return Err[F, A](f(r.cause))
	}

	return Ok[F](r.value)
}
