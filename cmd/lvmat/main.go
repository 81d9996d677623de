// SPDX-License-Identifier: MIT

// Command lvmat decomposes a matrix literal from the command line.
//
// Usage:
//
//	lvmat -op inverse -m "4,7;2,6"
//	lvmat -op det     -m "1,2,3;4,5,6;7,8,10"
//	lvmat -op eigen   -m "6,2,1;2,5,2;1,2,4" -seed 42
//	lvmat -op svd     -m "3,1,1;-1,3,1" -seed 42
//
// Rows are separated by ';' and columns by ','. Every matrix is printed
// with four fixed decimals.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvmat: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run parses args and writes the result of the requested operation to w.
func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("lvmat", flag.ContinueOnError)
	op := fs.String("op", "det", "operation: inverse|det|eigen|svd")
	lit := fs.String("m", "", `matrix literal, e.g. "1,2;3,4"`)
	seed := fs.Uint64("seed", 1, "seed of the eigen/svd starting vectors")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *lit == "" {
		return fmt.Errorf("-m is required")
	}

	m, err := parseLiteral(*lit)
	if err != nil {
		return err
	}

	return execute(w, *op, m, *seed)
}
