package tuple

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/go-quicktest/qt"
)

// typeCheckTests check that misuse of the tuple types is rejected
// when the program is built rather than when it runs.
var typeCheckTests = []struct {
	testName string
	src      string
	// expectError holds a regular expression matching the
	// type-checking error, or empty if there should be no error.
	expectError string
}{{
	testName: "SameType",
	src:      `var _ = Of3(0, 1, 2).Slice()`,
}, {
	testName: "MaxArity",
	src:      `var _ T64[string]`,
}, {
	testName: "MixedTypesConstructor",
	src: `
var a int
var b string
var _ = Of2(a, b)
`,
	expectError: `(?s)probe.go:.*`,
}, {
	testName:    "MixedTypesLiteral",
	src:         `var _ = T2[int]{1, "a"}`,
	expectError: `(?s)probe.go:.*`,
}, {
	testName:    "MixedTypesSlice",
	src:         `var _ []string = Of2(1, 2).Slice()`,
	expectError: `(?s)probe.go:.*`,
}, {
	testName:    "ArityTooLarge",
	src:         `var _ T65[int]`,
	expectError: `(?s)probe.go:.*undefined: T65`,
}, {
	testName:    "ArityTooLargeConstructor",
	src:         `var _ = Of65(1, 2)`,
	expectError: `(?s)probe.go:.*undefined: Of65`,
}}

func TestTypeCheck(t *testing.T) {
	fset := token.NewFileSet()
	gen, err := parser.ParseFile(fset, "tuple_gen.go", nil, 0)
	qt.Assert(t, qt.IsNil(err))
	for _, test := range typeCheckTests {
		t.Run(test.testName, func(t *testing.T) {
			probe, err := parser.ParseFile(fset, "probe.go", "package tuple\n"+test.src, 0)
			qt.Assert(t, qt.IsNil(err))
			var conf types.Config
			_, err = conf.Check("tuple", fset, []*ast.File{gen, probe}, nil)
			if test.expectError == "" {
				qt.Assert(t, qt.IsNil(err))
			} else {
				qt.Assert(t, qt.ErrorMatches(err, test.expectError))
			}
		})
	}
}
