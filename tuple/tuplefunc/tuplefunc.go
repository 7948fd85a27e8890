package tuplefunc

import "github.com/rogpeppe/reptuple/tuple"

// Slice converts a function taking a slice to a function
// taking any tuple whose elements are of the slice's element type,
// or a [tuple.Slice].
func Slice[E, R any](f func([]E) R) func(tuple.TupleOrSlice[E]) R {
	return func(t tuple.TupleOrSlice[E]) R {
		return f(t.AsSlice())
	}
}
