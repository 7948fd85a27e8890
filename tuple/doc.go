// Package tuple provides generic struct types that hold a fixed
// number of values of a single type, and conversions from those
// types to slices.
//
// The type Tn holds n values of type E, in fields V0 to V(n-1).
// Types are defined for all arities from 1 to [MaxArity].
// Because every field shares the one type parameter, a tuple
// of mixed element types cannot be constructed:
//
//	tuple.Of3(0, 1, 2).Slice()  // []int{0, 1, 2}
//	tuple.Of2("a", "b").Slice() // []string{"a", "b"}
//	tuple.Of2(1, "a")           // compile error
//
// See the tuple/tuplefunc package for a way to convert between
// functions of several arguments and functions taking a tuple.
package tuple

//go:generate go run generate.go
