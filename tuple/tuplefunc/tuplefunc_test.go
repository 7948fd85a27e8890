package tuplefunc_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rogpeppe/reptuple/tuple"
	"github.com/rogpeppe/reptuple/tuple/tuplefunc"
)

func sum3(x, y, z int) int {
	return x + y + z
}

func TestToA(t *testing.T) {
	f := tuplefunc.ToA_3(sum3)
	qt.Assert(t, qt.Equals(f(tuple.Of3(1, 2, 3)), 6))

	order := tuplefunc.ToA_2(func(a, b string) string {
		return a + b
	})
	qt.Assert(t, qt.Equals(order(tuple.Of2("x", "y")), "xy"))

	ident := tuplefunc.ToA_1(func(a int) int { return a })
	qt.Assert(t, qt.Equals(ident(tuple.Of1(7)), 7))
}

func TestFromA(t *testing.T) {
	f := tuplefunc.FromA_3(func(t tuple.T3[string]) string {
		return strings.Join(t.Slice(), "-")
	})
	qt.Assert(t, qt.Equals(f("a", "b", "c"), "a-b-c"))
}

func TestRoundTrip(t *testing.T) {
	f := tuplefunc.FromA_3(tuplefunc.ToA_3(sum3))
	qt.Assert(t, qt.Equals(f(4, 5, 6), 15))
}

func TestMaxArity(t *testing.T) {
	f := tuplefunc.ToA_64(func(
		v0, v1, v2, v3, v4, v5, v6, v7,
		v8, v9, v10, v11, v12, v13, v14, v15,
		v16, v17, v18, v19, v20, v21, v22, v23,
		v24, v25, v26, v27, v28, v29, v30, v31,
		v32, v33, v34, v35, v36, v37, v38, v39,
		v40, v41, v42, v43, v44, v45, v46, v47,
		v48, v49, v50, v51, v52, v53, v54, v55,
		v56, v57, v58, v59, v60, v61, v62, v63 int,
	) []int {
		return []int{v0, v31, v63}
	})
	var tup tuple.T64[int]
	tup.V0, tup.V31, tup.V63 = 1, 2, 3
	qt.Assert(t, qt.DeepEquals(f(tup), []int{1, 2, 3}))
}

func TestSlice(t *testing.T) {
	collect := tuplefunc.Slice(func(s []int) []int {
		return s
	})
	qt.Assert(t, qt.DeepEquals(collect(tuple.Of3(1, 2, 3)), []int{1, 2, 3}))
	qt.Assert(t, qt.DeepEquals(collect(tuple.Slice[int]{4, 5}), []int{4, 5}))
	qt.Assert(t, qt.CmpEquals(collect(tuple.Slice[int](nil)), []int{}, cmpopts.EquateEmpty()))

	count := tuplefunc.Slice(func(s []string) int {
		return len(s)
	})
	qt.Assert(t, qt.Equals(count(tuple.Of4("a", "b", "c", "d")), 4))
}
