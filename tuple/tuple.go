package tuple

import "iter"

// Repeated is implemented by all the tuple types in this package.
type Repeated[E any] interface {
	// Len returns the number of elements in the tuple.
	Len() int

	// Slice returns a newly allocated slice holding the
	// elements of the tuple in order.
	Slice() []E

	// SliceReversed is like Slice except that the elements
	// are in reverse order.
	SliceReversed() []E
}

// TupleOrSlice is implemented by all the tuple types in this package
// and by [Slice]. It can be used as a type constraint by functions that
// want to accept either a tuple or a slice:
//
//	func join[L tuple.TupleOrSlice[string]](l L) string {
//		return strings.Join(l.AsSlice(), ",")
//	}
//
//	join(tuple.Of2("a", "b"))
//	join(tuple.Slice[string]{"a", "b"})
type TupleOrSlice[E any] interface {
	AsSlice() []E
}

// Slice is a slice type that implements [TupleOrSlice].
type Slice[E any] []E

// AsSlice returns s itself.
func (s Slice[E]) AsSlice() []E {
	return s
}

// ToSlice returns t as a slice. For a tuple, the
// result is always newly allocated.
func ToSlice[E any](t TupleOrSlice[E]) []E {
	return t.AsSlice()
}

// Values returns an iterator over the elements of t in order.
func Values[E any](t Repeated[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range t.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}
