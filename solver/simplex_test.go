// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// a two-variable LP with a known optimum, used to pin both the primal
// point and the equality duals the stage LP relies on.
func tinyProblem() *Problem {
	return &Problem{
		Vars: []Var{
			{Name: "x", Lower: 0, Upper: math.Inf(1)},
			{Name: "y", Lower: 0, Upper: math.Inf(1)},
		},
		Obj: Expr{{Var: 0, Coef: 2}, {Var: 1, Coef: 3}},
		Eq: []Eq{
			{Name: "balance", Expr: Expr{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}}, RHS: 10},
		},
	}
}

func Test_simplex01(tst *testing.T) {

	chk.PrintTitle("simplex01")

	p := tinyProblem()
	s := &Simplex{}
	sol, err := s.Solve(p)
	if err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}
	if sol.Status != Optimal {
		tst.Errorf("status = %v, want Optimal", sol.Status)
		return
	}
	// cheapest way to meet x+y=10 with cost 2x+3y is all on x
	chk.Scalar(tst, "x", 1e-9, sol.Primal[0], 10)
	chk.Scalar(tst, "y", 1e-9, sol.Primal[1], 0)
	chk.Scalar(tst, "objective", 1e-9, sol.Objective, 20)
	chk.Scalar(tst, "dual(balance)", 1e-9, sol.EqDual[0], 2)
}

func Test_simplex02_bounds(tst *testing.T) {

	chk.PrintTitle("simplex02")

	// x is capped below the unconstrained optimum, forcing y to absorb
	// the remainder
	p := &Problem{
		Vars: []Var{
			{Name: "x", Lower: 0, Upper: 4},
			{Name: "y", Lower: 0, Upper: math.Inf(1)},
		},
		Obj: Expr{{Var: 0, Coef: 2}, {Var: 1, Coef: 3}},
		Eq: []Eq{
			{Name: "balance", Expr: Expr{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}}, RHS: 10},
		},
	}
	s := &Simplex{}
	sol, err := s.Solve(p)
	if err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}
	chk.Scalar(tst, "x", 1e-9, sol.Primal[0], 4)
	chk.Scalar(tst, "y", 1e-9, sol.Primal[1], 6)
	chk.Scalar(tst, "objective", 1e-9, sol.Objective, 26)
}

func Test_simplex03_infeasible(tst *testing.T) {

	chk.PrintTitle("simplex03")

	p := &Problem{
		Vars: []Var{{Name: "x", Lower: 0, Upper: 1}},
		Obj:  Expr{{Var: 0, Coef: 1}},
		Eq:   []Eq{{Name: "impossible", Expr: Expr{{Var: 0, Coef: 1}}, RHS: 5}},
	}
	s := &Simplex{}
	sol, err := s.Solve(p)
	if err != nil {
		tst.Errorf("solve should report Infeasible, not error: %v", err)
		return
	}
	if sol.Status != Infeasible {
		tst.Errorf("status = %v, want Infeasible", sol.Status)
	}
}

func Test_simplex04_unbounded(tst *testing.T) {

	chk.PrintTitle("simplex04")

	p := &Problem{
		Vars: []Var{{Name: "x", Lower: 0, Upper: math.Inf(1)}},
		Obj:  Expr{{Var: 0, Coef: -1}}, // minimize -x: unbounded below
	}
	s := &Simplex{}
	sol, err := s.Solve(p)
	if err != nil {
		tst.Errorf("solve should report Unbounded, not error: %v", err)
		return
	}
	if sol.Status != Unbounded {
		tst.Errorf("status = %v, want Unbounded", sol.Status)
	}
}

func Test_simplex05_rejects_unbounded_below(tst *testing.T) {

	chk.PrintTitle("simplex05")

	p := &Problem{
		Vars: []Var{{Name: "x", Lower: math.Inf(-1), Upper: math.Inf(1)}},
		Obj:  Expr{{Var: 0, Coef: 1}},
	}
	s := &Simplex{}
	if _, err := s.Solve(p); err == nil {
		tst.Errorf("expected an error for a variable with no finite lower bound")
	}
}
