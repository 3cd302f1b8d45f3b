// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/cpmech/gosl/io"

// Fingerprint builds a deterministic string key for a Problem, stable
// across calls that build structurally identical problems. It is used
// by MockSolver to look up canned answers in tests (design note §9).
func Fingerprint(p *Problem) string {
	s := io.Sf("v%d|", len(p.Vars))
	for _, v := range p.Vars {
		s += io.Sf("%s:%.6f:%.6f;", v.Name, v.Lower, v.Upper)
	}
	s += "o:" + exprKey(p.Obj) + "|"
	for _, e := range p.Eq {
		s += "e:" + e.Name + ":" + exprKey(e.Expr) + io.Sf(":%.6f;", e.RHS)
	}
	for _, ineq := range p.Ineq {
		s += "i:" + ineq.Name + ":" + exprKey(ineq.Expr) + io.Sf(":%.6f;", ineq.RHS)
	}
	return s
}

func exprKey(e Expr) string {
	s := ""
	for _, t := range e {
		s += io.Sf("%d*%.6f+", t.Var, t.Coef)
	}
	return s
}

// MockSolver is a deterministic stand-in for Solver: canned Solutions
// are looked up by the fingerprint of the problem presented to Solve.
// It never runs a real simplex; tests use it to pin expected primal
// and dual values for a Stage LP without depending on the numeric
// backend's internals.
type MockSolver struct {
	Answers map[string]*Solution
}

// NewMockSolver returns an empty MockSolver ready to be populated
func NewMockSolver() *MockSolver { return &MockSolver{Answers: map[string]*Solution{}} }

// Put registers the canned Solution for the problem's fingerprint
func (m *MockSolver) Put(p *Problem, sol *Solution) { m.Answers[Fingerprint(p)] = sol }

// Solve implements Solver
func (m *MockSolver) Solve(p *Problem) (*Solution, error) {
	key := Fingerprint(p)
	sol, ok := m.Answers[key]
	if !ok {
		return nil, Err("mock solver has no canned answer for problem fingerprint %q", key)
	}
	return sol, nil
}
