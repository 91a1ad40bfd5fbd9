// Package result contains the Of outcome type, which holds either a value or
// an error, never both. It is useful where a single type must represent the
// outcome of an operation, such as map values or channel elements.
package result

// Of is either a T value or an error.
type Of[T any] struct {
	v   T // valid only if err is nil
	err error
}

// Value returns a new result holding v, without an error.
func Value[T any](v T) Of[T] {
	return Of[T]{v: v}
}

// Error returns a new result holding err. If err is nil, the returned result
// is equivalent to calling Value with T's zero value.
func Error[T any](err error) Of[T] {
	return Of[T]{err: err}
}

// Get returns r's value and error.
func (r Of[T]) Get() (T, error) {
	return r.v, r.err
}

// Err returns r's error, if any. When Err returns nil it is safe to call
// MustValue without it panicking.
func (r Of[T]) Err() error {
	return r.err
}

// Ok reports whether r holds a value.
func (r Of[T]) Ok() bool {
	return r.err == nil
}

// MustValue returns r's value. It panics if r holds an error.
func (r Of[T]) MustValue() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.v
}
