// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// GonumSolver cross-checks the in-house Simplex's primal objective
// value using gonum's own simplex implementation. It is not wired as
// the production Solver: lp.Simplex returns only the optimal objective
// and primal point, with no access to the equality-constraint dual
// multipliers the stage LP needs (see DESIGN.md). It is used only by
// the solver package's own tests, which compare its optimal objective
// with Simplex's on the same problems.
type GonumSolver struct{}

// NewGonumSolver returns a primal-only cross-check adapter
func NewGonumSolver() *GonumSolver { return &GonumSolver{} }

// SolvePrimal returns just the optimal objective value, reusing the
// same bound-shifting and <=-row folding buildStandardForm performs
// for the in-house solver so both backends see the same problem.
func (g *GonumSolver) SolvePrimal(p *Problem) (float64, error) {
	sf, err := buildStandardForm(p)
	if err != nil {
		return 0, err
	}
	width := sf.nVars + sf.nSlack
	A := mat.NewDense(sf.nRows, width, nil)
	b := make([]float64, sf.nRows)
	for i, row := range sf.rows {
		for k := 0; k < width; k++ {
			A.Set(i, k, row[k])
		}
		b[i] = row[width]
	}
	c := make([]float64, width)
	copy(c, sf.objCoefs)
	optF, _, err := lp.Simplex(c, A, b, tol, nil)
	if err != nil {
		return 0, Err("gonum simplex failed: %v", err)
	}
	return optF + sf.objOffset, nil
}
