package tuple_test

import (
	"testing"

	"github.com/rogpeppe/reptuple/tuple"
)

var sink []int

func BenchmarkSliceSmall(b *testing.B) {
	t := tuple.Of2(1, 2)
	for range b.N {
		sink = t.Slice()
	}
}

func BenchmarkSliceBig(b *testing.B) {
	for range b.N {
		sink = longTuple.Slice()
	}
}

func BenchmarkSliceReversedSmall(b *testing.B) {
	t := tuple.Of2(1, 2)
	for range b.N {
		sink = t.SliceReversed()
	}
}

func BenchmarkSliceReversedBig(b *testing.B) {
	for range b.N {
		sink = longTuple.SliceReversed()
	}
}

func BenchmarkAppendLoopBig(b *testing.B) {
	for range b.N {
		var s []int
		for v := range tuple.Values[int](longTuple) {
			s = append(s, v)
		}
		sink = s
	}
}
