// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_mock01_put_and_solve(tst *testing.T) {

	chk.PrintTitle("mock01")

	p := tinyProblem()
	m := NewMockSolver()
	canned := &Solution{Status: Optimal, Primal: []float64{10, 0}, EqDual: []float64{2}, Objective: 20}
	m.Put(p, canned)

	sol, err := m.Solve(p)
	if err != nil {
		tst.Errorf("Solve failed: %v", err)
		return
	}
	chk.Scalar(tst, "objective", 1e-12, sol.Objective, 20)
}

func Test_mock02_missing_answer(tst *testing.T) {

	chk.PrintTitle("mock02")

	p := tinyProblem()
	m := NewMockSolver()
	if _, err := m.Solve(p); err == nil {
		tst.Errorf("expected an error for an unregistered fingerprint")
	}
}

func Test_mock03_fingerprint_distinguishes_problems(tst *testing.T) {

	chk.PrintTitle("mock03")

	p1 := tinyProblem()
	p2 := tinyProblem()
	p2.Eq[0].RHS = 999
	if Fingerprint(p1) == Fingerprint(p2) {
		tst.Errorf("expected different fingerprints for structurally different problems")
	}
}
