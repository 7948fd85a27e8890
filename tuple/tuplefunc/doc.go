// Package tuplefunc provides functions that convert between functions
// of several arguments of one type and functions taking a single tuple
// argument. This makes it trivial to pass such functions to generic
// operations that are designed to operate on single-argument functions.
//
// The names of most functions in this package match the regular expression:
//
//	(To|From)A_[0-9]+
//
// The number is the number of argument parameters. ToA_N converts
// from (for some types E and R)
//
//	func(E, E, ..., E) R
//
// to:
//
//	func(tuple.TN[E]) R
//
// and FromA_N converts in the other direction. So, for example, ToA_3
// converts
//
//	func(x, y, z float64) float64
//
// to
//
//	func(tuple.T3[float64]) float64
//
// The [Slice] function adapts a function taking a slice so that it
// accepts any tuple as well as a [tuple.Slice].
package tuplefunc

//go:generate go run generate.go
