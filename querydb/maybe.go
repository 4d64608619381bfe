package querydb

// Maybe is an optional value: either Some value of type A, or None.
//
// The zero value is None.
type Maybe[A any] struct {
	value   A
	present bool
}

// Some creates a Maybe holding value.
func Some[A any](value A) Maybe[A] {
	return Maybe[A]{value: value, present: true}
}

// None creates an absent Maybe.
func None[A any]() Maybe[A] {
	return Maybe[A]{}
}

// Get returns the value and whether it is present.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.present
}

// IsSome reports whether a value is present.
func (m Maybe[A]) IsSome() bool {
	return m.present
}

// IsNone reports whether the Maybe is absent.
func (m Maybe[A]) IsNone() bool {
	return !m.present
}

// WithDefault returns the value if present, otherwise fallback.
func (m Maybe[A]) WithDefault(fallback A) A {
	if m.present {
		return m.value
	}

	return fallback
}

// MapMaybe applies f to the value if present.
func MapMaybe[A, B any](f func(A) B, m Maybe[A]) Maybe[B] {
	if !m.present {
		return None[B]()
	}

	return Some(f(m.value))
}
