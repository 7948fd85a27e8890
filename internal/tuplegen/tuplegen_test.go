package tuplegen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestArityLists(t *testing.T) {
	a := arity(3)
	qt.Check(t, qt.Equals(a.Fields(), "V0, V1, V2"))
	qt.Check(t, qt.Equals(a.Vars(), "v0, v1, v2"))
	qt.Check(t, qt.Equals(a.Elems(), "t.V0, t.V1, t.V2"))
	qt.Check(t, qt.Equals(a.ElemsReversed(), "t.V2, t.V1, t.V0"))
	qt.Check(t, qt.Equals(a.Types(), "E, E, E"))

	a = arity(1)
	qt.Check(t, qt.Equals(a.ElemsReversed(), "t.V0"))
	qt.Check(t, qt.Equals(a.Types(), "E"))
}

func TestInvalidArity(t *testing.T) {
	var buf bytes.Buffer
	qt.Assert(t, qt.ErrorMatches(Tuple(&buf, 0), `invalid maximum arity 0`))
	qt.Assert(t, qt.ErrorMatches(TupleFunc(&buf, -1), `invalid maximum arity -1`))
	qt.Assert(t, qt.Equals(buf.Len(), 0))
}

func TestTuple(t *testing.T) {
	pkg := checkTuple(t, 4)
	scope := pkg.Scope()
	for k := 1; k <= 4; k++ {
		qt.Check(t, qt.IsNotNil(scope.Lookup(fmt.Sprintf("T%d", k))))
		qt.Check(t, qt.IsNotNil(scope.Lookup(fmt.Sprintf("Of%d", k))))
	}
	qt.Check(t, qt.IsNil(scope.Lookup("T5")))

	maxArity, ok := scope.Lookup("MaxArity").(*types.Const)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(maxArity.Val().ExactString(), constant.MakeInt64(4).ExactString()))

	t3 := scope.Lookup("T3").Type().(*types.Named)
	qt.Assert(t, qt.Equals(t3.TypeParams().Len(), 1))
	qt.Assert(t, qt.Equals(t3.Underlying().(*types.Struct).NumFields(), 3))
	var methods []string
	for i := range t3.NumMethods() {
		methods = append(methods, t3.Method(i).Name())
	}
	qt.Assert(t, qt.DeepEquals(methods, []string{
		"Len",
		"Slice",
		"SliceReversed",
		"Array",
		"ArrayReversed",
		"AsSlice",
	}))
}

func TestTupleFunc(t *testing.T) {
	tuplePkg := checkTuple(t, 3)
	var buf bytes.Buffer
	err := TupleFunc(&buf, 3)
	qt.Assert(t, qt.IsNil(err))

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "tuplefunc_gen.go", buf.Bytes(), 0)
	qt.Assert(t, qt.IsNil(err))
	var names []string
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			names = append(names, fn.Name.Name)
		}
	}
	qt.Assert(t, qt.DeepEquals(names, []string{
		"ToA_1", "FromA_1",
		"ToA_2", "FromA_2",
		"ToA_3", "FromA_3",
	}))

	conf := types.Config{
		Importer: importerFunc(func(path string) (*types.Package, error) {
			if path != TuplePath {
				return nil, fmt.Errorf("unexpected import %q", path)
			}
			return tuplePkg, nil
		}),
	}
	_, err = conf.Check("tuplefunc", fset, []*ast.File{f}, nil)
	qt.Assert(t, qt.IsNil(err))
}

func TestGeneratedFilesUpToDate(t *testing.T) {
	for _, test := range []struct {
		file     string
		generate func(*bytes.Buffer) error
	}{{
		file: "../../tuple/tuple_gen.go",
		generate: func(buf *bytes.Buffer) error {
			return Tuple(buf, DefaultMaxArity)
		},
	}, {
		file: "../../tuple/tuplefunc/tuplefunc_gen.go",
		generate: func(buf *bytes.Buffer) error {
			return TupleFunc(buf, DefaultMaxArity)
		},
	}} {
		t.Run(test.file, func(t *testing.T) {
			want, err := os.ReadFile(test.file)
			qt.Assert(t, qt.IsNil(err))
			var buf bytes.Buffer
			err = test.generate(&buf)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(buf.String(), string(want)), qt.Commentf("generated file is stale; run go generate"))
		})
	}
}

// checkTuple generates the tuple package with the given
// maximum arity and type-checks it.
func checkTuple(t *testing.T, n int) *types.Package {
	var buf bytes.Buffer
	err := Tuple(&buf, n)
	qt.Assert(t, qt.IsNil(err))
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "tuple_gen.go", buf.Bytes(), 0)
	qt.Assert(t, qt.IsNil(err))
	var conf types.Config
	pkg, err := conf.Check(TuplePath, fset, []*ast.File{f}, nil)
	qt.Assert(t, qt.IsNil(err))
	return pkg
}

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) {
	return f(path)
}
