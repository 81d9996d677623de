// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrix/solver"
	"github.com/katalvlaran/lvmat/random"
)

// errUnknownOp is returned for an -op value outside inverse|det|eigen|svd.
var errUnknownOp = errors.New("unknown operation")

// parseLiteral reads a literal such as "a,b;c,d" row by row. Blanks around numbers
// are ignored; ragged rows are rejected by matrix.FromRows.
func parseLiteral(s string) (*matrix.Dense, error) {
	lines := strings.Split(strings.TrimSpace(s), ";")
	rows := make([][]float64, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, ",")
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("parse [%d,%d]: %w", i, j, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return matrix.FromRows(rows)
}

// execute runs op on m and prints the labelled results.
func execute(w io.Writer, op string, m *matrix.Dense, seed uint64) error {
	opts := []solver.Option{solver.WithSource(random.New(seed))}
	switch op {
	case "inverse":
		inv, err := m.Inverse()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "inverse:\n%v\n", inv)
	case "det":
		d, err := m.Det()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "det: %.4f\n", d)
	case "eigen":
		e, err := solver.NewEigen(m, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "values:\n%v\nvectors (rows):\n%v\n", e.Values(), e.Vectors())
		fmt.Fprintf(w, "converged: %t after %d iterations\n", e.Converged(), e.Iterations())
	case "svd":
		d, err := solver.NewSVD(m, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "U:\n%v\nS:\n%v\nV:\n%v\n", d.U(), d.S(), d.V())
		fmt.Fprintf(w, "converged: %t\n", d.Converged())
	default:
		return fmt.Errorf("%q: %w", op, errUnknownOp)
	}

	return nil
}
