// Package tuplegen generates the per-arity source files of the
// tuple and tuplefunc packages.
//
// Go cannot abstract over the length of a struct type, so each
// arity gets its own type and its own straight-line conversion
// methods. This package writes all of them from one template so
// that the maximum arity can be changed in one place.
package tuplegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"
)

// DefaultMaxArity holds the largest arity generated by default.
const DefaultMaxArity = 64

// TuplePath holds the import path of the tuple package.
const TuplePath = "github.com/rogpeppe/reptuple/tuple"

// Tuple writes the source of the tuple package's generated file,
// defining tuple types of all arities from 1 to n inclusive.
func Tuple(w io.Writer, n int) error {
	return generate(w, tupleTemplate, n)
}

// TupleFunc writes the source of the tuplefunc package's generated
// file, defining function adaptors for all arities from 1 to n inclusive.
func TupleFunc(w io.Writer, n int) error {
	return generate(w, tupleFuncTemplate, n)
}

type params struct {
	N         int
	Arities   []arity
	TuplePath string
}

func generate(w io.Writer, tmpl *template.Template, n int) error {
	if n < 1 {
		return fmt.Errorf("invalid maximum arity %d", n)
	}
	p := params{
		N:         n,
		TuplePath: TuplePath,
	}
	for k := 1; k <= n; k++ {
		p.Arities = append(p.Arities, arity(k))
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return fmt.Errorf("cannot execute %s template: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("cannot format generated %s code: %w", tmpl.Name(), err)
	}
	_, err = w.Write(src)
	return err
}

// arity holds a tuple length. Its methods produce the
// comma-separated lists used by the templates.
type arity int

// Fields returns the struct field names, for example "V0, V1, V2".
func (a arity) Fields() string {
	return a.list("V%d", false)
}

// Vars returns the parameter names, for example "v0, v1, v2".
func (a arity) Vars() string {
	return a.list("v%d", false)
}

// Elems returns the field selectors in order, for example "t.V0, t.V1, t.V2".
func (a arity) Elems() string {
	return a.list("t.V%d", false)
}

// ElemsReversed is like Elems but in reverse order.
func (a arity) ElemsReversed() string {
	return a.list("t.V%d", true)
}

// Types returns the element type repeated, for example "E, E, E".
func (a arity) Types() string {
	return strings.TrimSuffix(strings.Repeat("E, ", int(a)), ", ")
}

func (a arity) list(pattern string, reverse bool) string {
	var b strings.Builder
	for i := range int(a) {
		if i > 0 {
			b.WriteString(", ")
		}
		if reverse {
			i = int(a) - 1 - i
		}
		fmt.Fprintf(&b, pattern, i)
	}
	return b.String()
}

var tupleTemplate = template.Must(template.New("tuple").Parse(`// Code generated by go generate; DO NOT EDIT.

package tuple

// MaxArity holds the largest arity of the tuple types
// defined in this package.
const MaxArity = {{.N}}
{{range .Arities}}
// T{{.}} holds {{.}} values of type E.
type T{{.}}[E any] struct {
	{{.Fields}} E
}

// Of{{.}} returns a T{{.}} holding the given values.
func Of{{.}}[E any]({{.Vars}} E) T{{.}}[E] {
	return T{{.}}[E]{ {{- .Vars -}} }
}

// Len returns {{.}}.
func (t T{{.}}[E]) Len() int {
	return {{.}}
}

// Slice returns a newly allocated slice holding the
// elements of t in order.
func (t T{{.}}[E]) Slice() []E {
	return []E{ {{- .Elems -}} }
}

// SliceReversed returns a newly allocated slice holding the
// elements of t in reverse order.
func (t T{{.}}[E]) SliceReversed() []E {
	return []E{ {{- .ElemsReversed -}} }
}

// Array returns the elements of t in order.
func (t T{{.}}[E]) Array() [{{.}}]E {
	return [{{.}}]E{ {{- .Elems -}} }
}

// ArrayReversed returns the elements of t in reverse order.
func (t T{{.}}[E]) ArrayReversed() [{{.}}]E {
	return [{{.}}]E{ {{- .ElemsReversed -}} }
}

// AsSlice implements [TupleOrSlice] by calling [T{{.}}.Slice].
func (t T{{.}}[E]) AsSlice() []E {
	return t.Slice()
}
{{end}}`))

var tupleFuncTemplate = template.Must(template.New("tuplefunc").Parse(`// Code generated by go generate; DO NOT EDIT.

package tuplefunc

import "{{.TuplePath}}"
{{range .Arities}}
// ToA_{{.}} converts a function taking {{.}} arguments of type E
// to a function taking a single tuple.T{{.}}.
func ToA_{{.}}[E, R any](f func({{.Types}}) R) func(tuple.T{{.}}[E]) R {
	return func(t tuple.T{{.}}[E]) R {
		return f({{.Elems}})
	}
}

// FromA_{{.}} is the inverse of [ToA_{{.}}].
func FromA_{{.}}[E, R any](f func(tuple.T{{.}}[E]) R) func({{.Types}}) R {
	return func({{.Vars}} E) R {
		return f(tuple.Of{{.}}({{.Vars}}))
	}
}
{{end}}`))
