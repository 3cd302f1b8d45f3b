// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// the in-house Simplex and the gonum cross-check must agree on the
// optimal objective value, even though only Simplex exposes duals.
func Test_gonum01_crosscheck_matches_simplex(tst *testing.T) {

	chk.PrintTitle("gonum01")

	p := tinyProblem()

	s := &Simplex{}
	sol, err := s.Solve(p)
	if err != nil {
		tst.Errorf("Simplex.Solve failed: %v", err)
		return
	}

	g := NewGonumSolver()
	objG, err := g.SolvePrimal(p)
	if err != nil {
		tst.Errorf("GonumSolver.SolvePrimal failed: %v", err)
		return
	}

	chk.Scalar(tst, "objective", 1e-7, objG, sol.Objective)
}

func Test_gonum02_crosscheck_bounded(tst *testing.T) {

	chk.PrintTitle("gonum02")

	p := &Problem{
		Vars: []Var{
			{Name: "x", Lower: 0, Upper: 4},
			{Name: "y", Lower: 0, Upper: 1e9},
		},
		Obj: Expr{{Var: 0, Coef: 2}, {Var: 1, Coef: 3}},
		Eq: []Eq{
			{Name: "balance", Expr: Expr{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}}, RHS: 10},
		},
	}

	s := &Simplex{}
	sol, err := s.Solve(p)
	if err != nil {
		tst.Errorf("Simplex.Solve failed: %v", err)
		return
	}

	g := NewGonumSolver()
	objG, err := g.SolvePrimal(p)
	if err != nil {
		tst.Errorf("GonumSolver.SolvePrimal failed: %v", err)
		return
	}

	chk.Scalar(tst, "objective", 1e-6, objG, sol.Objective)
}
