package tuple_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/reptuple/tuple"
)

var (
	_ tuple.Repeated[int]     = tuple.T1[int]{}
	_ tuple.Repeated[string]  = tuple.T64[string]{}
	_ tuple.TupleOrSlice[int] = tuple.T2[int]{}
	_ tuple.TupleOrSlice[int] = tuple.Slice[int]{}
)

func TestSlice(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(tuple.Of3(0, 1, 2).Slice(), []int{0, 1, 2}))
	qt.Assert(t, qt.DeepEquals(tuple.Of2("a", "b").Slice(), []string{"a", "b"}))
	qt.Assert(t, qt.DeepEquals(tuple.Of1(7).Slice(), []int{7}))
	qt.Assert(t, qt.DeepEquals(tuple.T3[int]{1, 2, 3}.Slice(), []int{1, 2, 3}))
}

func TestSliceReversed(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(tuple.Of1(1).SliceReversed(), []int{1}))
	qt.Assert(t, qt.DeepEquals(tuple.Of3(1, 2, 3).SliceReversed(), []int{3, 2, 1}))
}

func TestArray(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.Of3(1, 2, 3).Array(), [3]int{1, 2, 3}))
	qt.Assert(t, qt.Equals(tuple.Of3(1, 2, 3).ArrayReversed(), [3]int{3, 2, 1}))
}

func TestSliceNoAliasing(t *testing.T) {
	tup := tuple.Of3("a", "b", "c")
	s := tup.Slice()
	s[0] = "x"
	qt.Assert(t, qt.Equals(tup, tuple.Of3("a", "b", "c")))

	// Each call allocates afresh.
	s0, s1 := tup.Slice(), tup.Slice()
	s0[1] = "y"
	qt.Assert(t, qt.DeepEquals(s1, []string{"a", "b", "c"}))
}

func TestSliceExactCapacity(t *testing.T) {
	s := tuple.Of4(1, 2, 3, 4).Slice()
	qt.Assert(t, qt.Equals(len(s), 4))
	qt.Assert(t, qt.Equals(cap(s), 4))
}

func TestEqualTuplesGiveEqualSlices(t *testing.T) {
	t0 := tuple.Of4(5, 6, 7, 8)
	t1 := tuple.T4[int]{V0: 5, V1: 6, V2: 7, V3: 8}
	qt.Assert(t, qt.DeepEquals(t0.Slice(), t1.Slice()))
}

func TestSliceNonComparable(t *testing.T) {
	tup := tuple.Of2([]int{1}, []int{2, 3})
	qt.Assert(t, qt.DeepEquals(tup.Slice(), [][]int{{1}, {2, 3}}))
}

func TestMaxArity(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.MaxArity, 64))
	qt.Assert(t, qt.Equals(reflect.TypeFor[tuple.T64[int]]().NumField(), tuple.MaxArity))

	var tup tuple.T64[string]
	v := reflect.ValueOf(&tup).Elem()
	for i := range v.NumField() {
		v.Field(i).SetString("x")
	}
	s := tup.Slice()
	qt.Assert(t, qt.HasLen(s, tuple.MaxArity))
	for i, x := range s {
		qt.Assert(t, qt.Equals(x, "x"), qt.Commentf("index %d", i))
	}
}

func TestLongTuple(t *testing.T) {
	s := longTuple.Slice()
	qt.Assert(t, qt.HasLen(s, 64))
	for i, x := range s {
		qt.Assert(t, qt.Equals(x, i+1))
	}
	r := longTuple.SliceReversed()
	slices.Reverse(r)
	qt.Assert(t, qt.DeepEquals(r, s))
	qt.Assert(t, qt.Equals(longTuple.Array()[63], 64))
	qt.Assert(t, qt.Equals(longTuple.ArrayReversed()[0], 64))
}

// allArities holds a zero value of every tuple type.
var allArities = []any{
	tuple.T1[int]{}, tuple.T2[int]{}, tuple.T3[int]{}, tuple.T4[int]{},
	tuple.T5[int]{}, tuple.T6[int]{}, tuple.T7[int]{}, tuple.T8[int]{},
	tuple.T9[int]{}, tuple.T10[int]{}, tuple.T11[int]{}, tuple.T12[int]{},
	tuple.T13[int]{}, tuple.T14[int]{}, tuple.T15[int]{}, tuple.T16[int]{},
	tuple.T17[int]{}, tuple.T18[int]{}, tuple.T19[int]{}, tuple.T20[int]{},
	tuple.T21[int]{}, tuple.T22[int]{}, tuple.T23[int]{}, tuple.T24[int]{},
	tuple.T25[int]{}, tuple.T26[int]{}, tuple.T27[int]{}, tuple.T28[int]{},
	tuple.T29[int]{}, tuple.T30[int]{}, tuple.T31[int]{}, tuple.T32[int]{},
	tuple.T33[int]{}, tuple.T34[int]{}, tuple.T35[int]{}, tuple.T36[int]{},
	tuple.T37[int]{}, tuple.T38[int]{}, tuple.T39[int]{}, tuple.T40[int]{},
	tuple.T41[int]{}, tuple.T42[int]{}, tuple.T43[int]{}, tuple.T44[int]{},
	tuple.T45[int]{}, tuple.T46[int]{}, tuple.T47[int]{}, tuple.T48[int]{},
	tuple.T49[int]{}, tuple.T50[int]{}, tuple.T51[int]{}, tuple.T52[int]{},
	tuple.T53[int]{}, tuple.T54[int]{}, tuple.T55[int]{}, tuple.T56[int]{},
	tuple.T57[int]{}, tuple.T58[int]{}, tuple.T59[int]{}, tuple.T60[int]{},
	tuple.T61[int]{}, tuple.T62[int]{}, tuple.T63[int]{}, tuple.T64[int]{},
}

func TestAllArities(t *testing.T) {
	qt.Assert(t, qt.HasLen(allArities, tuple.MaxArity))
	for i, zero := range allArities {
		k := i + 1
		// Set field j to j so that the order can be checked.
		v := reflect.New(reflect.TypeOf(zero)).Elem()
		qt.Assert(t, qt.Equals(v.NumField(), k))
		for j := range k {
			v.Field(j).SetInt(int64(j))
		}
		tup := v.Interface().(tuple.Repeated[int])
		want := make([]int, k)
		for j := range want {
			want[j] = j
		}
		qt.Assert(t, qt.Equals(tup.Len(), k))
		qt.Assert(t, qt.DeepEquals(tup.Slice(), want))
		qt.Assert(t, qt.DeepEquals(tup.(tuple.TupleOrSlice[int]).AsSlice(), want))
		slices.Reverse(want)
		qt.Assert(t, qt.DeepEquals(tup.SliceReversed(), want))
	}
}

func TestToSlice(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(tuple.ToSlice[int](tuple.Of2(1, 2)), []int{1, 2}))
	qt.Assert(t, qt.DeepEquals(tuple.ToSlice[int](tuple.Slice[int]{3, 4, 5}), []int{3, 4, 5}))
	qt.Assert(t, qt.IsNil(tuple.ToSlice[int](tuple.Slice[int](nil))))
}

func TestSliceAsSliceIsIdentity(t *testing.T) {
	s := tuple.Slice[int]{1, 2}
	got := s.AsSlice()
	got[0] = 99
	qt.Assert(t, qt.Equals(s[0], 99))
}

func TestValues(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(slices.Collect(tuple.Values[int](tuple.Of3(3, 1, 2))), []int{3, 1, 2}))

	var got []string
	for v := range tuple.Values[string](tuple.Of3("a", "b", "c")) {
		got = append(got, v)
		if v == "b" {
			break
		}
	}
	qt.Assert(t, qt.DeepEquals(got, []string{"a", "b"}))
}

var longTuple = tuple.T64[int]{
	1, 2, 3, 4, 5, 6, 7, 8,
	9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32,
	33, 34, 35, 36, 37, 38, 39, 40,
	41, 42, 43, 44, 45, 46, 47, 48,
	49, 50, 51, 52, 53, 54, 55, 56,
	57, 58, 59, 60, 61, 62, 63, 64,
}
