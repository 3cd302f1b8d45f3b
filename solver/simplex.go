// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "math"

// tol is the numerical tolerance used throughout the tableau simplex:
// pivot eligibility, optimality and feasibility checks.
const tol = 1e-9

// Simplex is a dense, two-phase, tableau-based primal simplex solver.
// It exists because no pure-Go LP package in the reachable ecosystem
// exposes equality-constraint dual multipliers as part of its public
// result (see DESIGN.md); the water-value and marginal-operating-cost
// computations in the stage LP need exactly those multipliers, so they
// are read directly off the optimal tableau here, the same way
// fem/s_implicit.go reads its own intermediate factorisation state
// instead of treating the linear solve as a black box.
type Simplex struct{}

// NewSimplex returns the default LP Solver Adapter backend
func NewSimplex() *Simplex { return &Simplex{} }

// standardForm is the problem translated into the textbook shape the
// tableau operates on: shifted variables x' = x - lower (x' >= 0),
// upper bounds and original inequalities folded into <= rows with
// slacks, and every row padded with one artificial variable.
type standardForm struct {
	nVars     int // shifted original variables
	nSlack    int // one per <= row (original Ineq + upper-bound rows)
	nRows     int // len(Eq) + nSlack
	nEqRows   int // == len(p.Eq); these occupy rows [0, nEqRows)
	rows      [][]float64
	flipped   []bool // whether row j was sign-flipped to make its rhs >= 0
	objCoefs  []float64
	objOffset float64 // constant term from shifting the objective by lower bounds
	lower     []float64
}

func denseRow(e Expr, n int) []float64 {
	row := make([]float64, n)
	for _, t := range e {
		row[t.Var] += t.Coef
	}
	return row
}

func buildStandardForm(p *Problem) (*standardForm, error) {
	n := p.NVars()
	lower := make([]float64, n)
	upper := make([]float64, n)
	for i, v := range p.Vars {
		if math.IsInf(v.Lower, -1) {
			return nil, Err("variable %q has no finite lower bound; unsupported by this adapter", v.Name)
		}
		lower[i] = v.Lower
		upper[i] = v.Upper
	}

	// equality rows (kept first and in order: callers address duals positionally)
	type rawRow struct {
		coefs []float64
		rhs   float64
	}
	eqRows := make([]rawRow, len(p.Eq))
	for j, eq := range p.Eq {
		coefs := denseRow(eq.Expr, n)
		shift := 0.0
		for i, c := range coefs {
			shift += c * lower[i]
		}
		eqRows[j] = rawRow{coefs: coefs, rhs: eq.RHS - shift}
	}

	// <= rows: original inequalities, then one per finite upper bound
	var leRows []rawRow
	for _, ineq := range p.Ineq {
		coefs := denseRow(ineq.Expr, n)
		shift := 0.0
		for i, c := range coefs {
			shift += c * lower[i]
		}
		leRows = append(leRows, rawRow{coefs: coefs, rhs: ineq.RHS - shift})
	}
	for i := 0; i < n; i++ {
		if !math.IsInf(upper[i], 1) {
			coefs := make([]float64, n)
			coefs[i] = 1
			leRows = append(leRows, rawRow{coefs: coefs, rhs: upper[i] - lower[i]})
		}
	}

	nSlack := len(leRows)
	nRows := len(eqRows) + nSlack
	width := n + nSlack // before artificials
	rows := make([][]float64, nRows)
	flipped := make([]bool, nRows)

	addRow := func(idx int, coefs []float64, rhs float64, slackCol int) {
		row := make([]float64, width+1) // +1 rhs
		copy(row, coefs)
		if slackCol >= 0 {
			row[n+slackCol] = 1
		}
		row[width] = rhs
		if row[width] < 0 {
			for k := range row {
				row[k] = -row[k]
			}
			flipped[idx] = true
		}
		rows[idx] = row
	}
	for j, r := range eqRows {
		addRow(j, r.coefs, r.rhs, -1)
	}
	for k, r := range leRows {
		addRow(len(eqRows)+k, r.coefs, r.rhs, k)
	}

	objCoefs := denseRow(p.Obj, n)
	objOffset := 0.0
	for i, c := range objCoefs {
		objOffset += c * lower[i]
	}

	return &standardForm{
		nVars: n, nSlack: nSlack, nRows: nRows, nEqRows: len(eqRows),
		rows: rows, flipped: flipped,
		objCoefs: objCoefs, objOffset: objOffset, lower: lower,
	}, nil
}

// tableau is the live simplex working state: nRows+1 rows (row 0 is the
// reduced-cost row), width+1 columns (last is the rhs / current value).
type tableau struct {
	t     [][]float64
	basis []int
	width int // number of structural+slack+artificial columns (excludes rhs)
}

func newTableau(sf *standardForm) *tableau {
	width := sf.nVars + sf.nSlack + sf.nRows
	t := make([][]float64, sf.nRows+1)
	basis := make([]int, sf.nRows)
	structWidth := sf.nVars + sf.nSlack
	for i := 0; i < sf.nRows; i++ {
		row := make([]float64, width+1)
		copy(row[:structWidth], sf.rows[i][:structWidth])
		row[width] = sf.rows[i][structWidth] // rhs, stored last in both layouts
		artCol := structWidth + i
		row[artCol] = 1
		t[i+1] = row
		basis[i] = artCol
	}
	t[0] = make([]float64, width+1)
	return &tableau{t: t, basis: basis, width: width}
}

// setObjRow sets row 0 to the reduced-cost row c - z for the given cost
// vector (indexed 0..width-1) given the current basis.
func (tb *tableau) setObjRow(cost []float64) {
	row0 := make([]float64, tb.width+1)
	copy(row0, cost)
	for i, bcol := range tb.basis {
		cb := cost[bcol]
		if cb == 0 {
			continue
		}
		r := tb.t[i+1]
		for k := range row0 {
			row0[k] -= cb * r[k]
		}
	}
	tb.t[0] = row0
}

// pivot performs a Gauss-Jordan elimination around (row, col), 1-indexed rows
func (tb *tableau) pivot(row, col int) {
	pr := tb.t[row]
	piv := pr[col]
	for k := range pr {
		pr[k] /= piv
	}
	for i := range tb.t {
		if i == row {
			continue
		}
		r := tb.t[i]
		factor := r[col]
		if factor == 0 {
			continue
		}
		for k := range r {
			r[k] -= factor * pr[k]
		}
	}
	tb.basis[row-1] = col
}

// run drives one simplex phase to optimality using Bland's rule
// (smallest-index entering/leaving variable) to guarantee termination
// on degenerate problems. excluded columns (artificials in phase 2)
// are never chosen to enter.
func (tb *tableau) run(excluded map[int]bool) (unbounded bool) {
	for {
		enter := -1
		for k := 0; k < tb.width; k++ {
			if excluded[k] {
				continue
			}
			if tb.t[0][k] < -tol {
				enter = k
				break
			}
		}
		if enter == -1 {
			return false
		}
		leave := -1
		best := math.Inf(1)
		for i := 1; i < len(tb.t); i++ {
			a := tb.t[i][enter]
			if a > tol {
				ratio := tb.t[i][tb.width] / a
				if ratio < best-tol || (ratio < best+tol && (leave == -1 || tb.basis[i-1] < tb.basis[leave-1])) {
					best = ratio
					leave = i
				}
			}
		}
		if leave == -1 {
			return true
		}
		tb.pivot(leave, enter)
	}
}

// Solve implements Solver
func (s *Simplex) Solve(p *Problem) (*Solution, error) {
	sf, err := buildStandardForm(p)
	if err != nil {
		return nil, err
	}
	tb := newTableau(sf)

	// phase 1: drive the artificial variables to zero
	phase1Cost := make([]float64, tb.width)
	for i := 0; i < sf.nRows; i++ {
		phase1Cost[sf.nVars+sf.nSlack+i] = 1
	}
	tb.setObjRow(phase1Cost)
	if unbounded := tb.run(nil); unbounded {
		return nil, Err("phase 1 of simplex reported unbounded; malformed problem")
	}
	if -tb.t[0][tb.width] > tol {
		return &Solution{Status: Infeasible}, nil
	}

	// pivot out any artificial left basic at zero level, if possible
	for i, bcol := range tb.basis {
		if bcol < sf.nVars+sf.nSlack {
			continue
		}
		for k := 0; k < sf.nVars+sf.nSlack; k++ {
			if math.Abs(tb.t[i+1][k]) > tol {
				tb.pivot(i+1, k)
				break
			}
		}
	}

	// phase 2: optimize the real objective, artificial columns excluded
	excluded := make(map[int]bool, sf.nRows)
	for i := 0; i < sf.nRows; i++ {
		excluded[sf.nVars+sf.nSlack+i] = true
	}
	phase2Cost := make([]float64, tb.width)
	copy(phase2Cost, sf.objCoefs)
	tb.setObjRow(phase2Cost)
	if unbounded := tb.run(excluded); unbounded {
		return &Solution{Status: Unbounded}, nil
	}

	primal := make([]float64, sf.nVars)
	for i, bcol := range tb.basis {
		if bcol < sf.nVars {
			primal[bcol] = tb.t[i+1][tb.width]
		}
	}
	x := make([]float64, sf.nVars)
	for i := range x {
		x[i] = sf.lower[i] + primal[i]
	}

	eqDual := make([]float64, sf.nEqRows)
	for j := 0; j < sf.nEqRows; j++ {
		artCol := sf.nVars + sf.nSlack + j
		reduced := tb.t[0][artCol]
		if sf.flipped[j] {
			eqDual[j] = reduced
		} else {
			eqDual[j] = -reduced
		}
	}

	objective := -tb.t[0][tb.width] + sf.objOffset
	return &Solution{Status: Optimal, Primal: x, EqDual: eqDual, Objective: objective}, nil
}
