package tuple_test

import (
	"fmt"
	"strings"

	"github.com/rogpeppe/reptuple/tuple"
)

func ExampleT3_Slice() {
	t := tuple.Of3(0, 1, 2)
	fmt.Println(t.Slice())
	fmt.Println(t.SliceReversed())
	// Output:
	// [0 1 2]
	// [2 1 0]
}

// join accepts either a tuple of strings or a tuple.Slice.
func join[L tuple.TupleOrSlice[string]](l L) string {
	return strings.Join(l.AsSlice(), ",")
}

func ExampleTupleOrSlice() {
	fmt.Println(join(tuple.Of2("a", "b")))
	fmt.Println(join(tuple.Slice[string]{"c", "d", "e"}))
	// Output:
	// a,b
	// c,d,e
}

func ExampleRepeated() {
	grid := tuple.Of3(
		tuple.Of3(1, 2, 3),
		tuple.Of3(4, 5, 6),
		tuple.Of3(7, 8, 9),
	)
	for row := range tuple.Values[tuple.T3[int]](grid) {
		fmt.Println(row.Slice())
	}
	// Output:
	// [1 2 3]
	// [4 5 6]
	// [7 8 9]
}
