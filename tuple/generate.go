//go:build ignore

package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/rogpeppe/reptuple/internal/tuplegen"
)

var (
	maxArity = flag.Int("n", tuplegen.DefaultMaxArity, "largest tuple arity to generate")
	output   = flag.String("o", "tuple_gen.go", "output file")
)

func main() {
	log.SetFlags(0)
	flag.Parse()
	var buf bytes.Buffer
	if err := tuplegen.Tuple(&buf, *maxArity); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o666); err != nil {
		log.Fatal(err)
	}
}
