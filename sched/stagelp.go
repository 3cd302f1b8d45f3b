// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"math"

	"github.com/rjmalves/hydrosched/inp"
	"github.com/cpmech/gosl/la"
	"github.com/rjmalves/hydrosched/solver"
)

// numerical constants that are part of the contract (§6)
const (
	spillPenalty      = 0.01 // tie-breaker against unnecessary spillage
	futureCostWeight  = 1.0  // weight of alpha in the stage objective
)

// StageContext parameterizes one instantiation of the stage LP
// template (§4.2): the Stage LP Builder is shared by all three
// engines, which differ only in where vi, inflow and cuts come from
// (design note §9, "a small builder interface parameterized by
// (vi_source, inflow_source, cut_source)").
type StageContext struct {
	Hydros       []inp.Hydro
	Thermals     []inp.Thermal
	Demand       float64
	DeficitCost  float64
	VI           []float64 // incoming storage per hydro
	Inflow       []float64 // this stage/node inflow per hydro
	Cuts         []Cut     // FCF-approximating cuts at this position; nil for Single-LP or a last-stage node
	IncludeAlpha bool      // false only for Single-LP
}

// variable layout: vf[0..H) vt[H..2H) vv[2H..3H) gt[3H..3H+T) deficit [alpha]
func (c *StageContext) idxVF(h int) int { return h }
func (c *StageContext) idxVT(h int) int { return len(c.Hydros) + h }
func (c *StageContext) idxVV(h int) int { return 2*len(c.Hydros) + h }
func (c *StageContext) idxGT(t int) int { return 3*len(c.Hydros) + t }
func (c *StageContext) idxDeficit() int { return 3*len(c.Hydros) + len(c.Thermals) }
func (c *StageContext) idxAlpha() int   { return 3*len(c.Hydros) + len(c.Thermals) + 1 }
func (c *StageContext) nVars() int {
	n := 3*len(c.Hydros) + len(c.Thermals) + 1
	if c.IncludeAlpha {
		n++
	}
	return n
}

// eqLoadBalance returns the row index of the load-balance equality
// within Problem.Eq: hydro h's balance row is row h, and the
// load-balance row always follows immediately after the last hydro
// (§4.2: "order is normative").
func (c *StageContext) eqLoadBalance() int { return len(c.Hydros) }

// BuildStageLP assembles the stage LP described in §4.2
func (c *StageContext) BuildStageLP() *solver.Problem {
	p := &solver.Problem{Vars: make([]solver.Var, c.nVars())}

	for h, hy := range c.Hydros {
		p.Vars[c.idxVF(h)] = solver.Var{Name: "vf_" + hy.Name, Lower: hy.MinStorage, Upper: hy.MaxStorage}
		p.Vars[c.idxVT(h)] = solver.Var{Name: "vt_" + hy.Name, Lower: 0, Upper: hy.MaxTurbine}
		p.Vars[c.idxVV(h)] = solver.Var{Name: "vv_" + hy.Name, Lower: 0, Upper: math.Inf(1)}
	}
	for t, th := range c.Thermals {
		p.Vars[c.idxGT(t)] = solver.Var{Name: "gt_" + th.Name, Lower: 0, Upper: th.Capacity}
	}
	p.Vars[c.idxDeficit()] = solver.Var{Name: "deficit", Lower: 0, Upper: math.Inf(1)}
	if c.IncludeAlpha {
		p.Vars[c.idxAlpha()] = solver.Var{Name: "alpha", Lower: 0, Upper: math.Inf(1)}
	}

	// objective: sum cost_t*gt[t] + deficitCost*deficit + 0.01*sum vv[h] + 1.0*alpha
	var obj solver.Expr
	for t, th := range c.Thermals {
		obj = append(obj, solver.Term{Var: c.idxGT(t), Coef: th.MarginalCost})
	}
	obj = append(obj, solver.Term{Var: c.idxDeficit(), Coef: c.DeficitCost})
	for h := range c.Hydros {
		obj = append(obj, solver.Term{Var: c.idxVV(h), Coef: spillPenalty})
	}
	if c.IncludeAlpha {
		obj = append(obj, solver.Term{Var: c.idxAlpha(), Coef: futureCostWeight})
	}
	p.Obj = obj

	// equalities, ordered: hydro balance (one per hydro, declaration order), then load balance
	for h, hy := range c.Hydros {
		p.Eq = append(p.Eq, solver.Eq{
			Name: "balance_" + hy.Name,
			Expr: solver.Expr{
				{Var: c.idxVF(h), Coef: 1},
				{Var: c.idxVT(h), Coef: 1},
				{Var: c.idxVV(h), Coef: 1},
			},
			RHS: c.VI[h] + c.Inflow[h],
		})
	}
	var loadExpr solver.Expr
	for h, hy := range c.Hydros {
		loadExpr = append(loadExpr, solver.Term{Var: c.idxVT(h), Coef: hy.Productivity})
	}
	for t := range c.Thermals {
		loadExpr = append(loadExpr, solver.Term{Var: c.idxGT(t), Coef: 1})
	}
	loadExpr = append(loadExpr, solver.Term{Var: c.idxDeficit(), Coef: 1})
	p.Eq = append(p.Eq, solver.Eq{Name: "load_balance", Expr: loadExpr, RHS: c.Demand})

	// cut rows: alpha >= slope·vf + intercept  <=>  slope·vf - alpha <= -intercept
	if c.IncludeAlpha {
		for i, cut := range c.Cuts {
			var expr solver.Expr
			for h := range c.Hydros {
				expr = append(expr, solver.Term{Var: c.idxVF(h), Coef: cut.Slope[h]})
			}
			expr = append(expr, solver.Term{Var: c.idxAlpha(), Coef: -1})
			p.Ineq = append(p.Ineq, solver.Ineq{Name: cutName(i), Expr: expr, RHS: -cut.Intercept})
		}
	}
	return p
}

func cutName(i int) string { return "cut_" + itoa(i) }

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// ExtractNodeValues reads a solved Solution back into NodeValues, using
// the same StageContext the Problem was built from for variable layout
// and dual-row positions (§4.2: "marginal value of water at hydro h is
// -dual(eq 1 for h); marginal operating cost is |dual(eq 2)|").
func (c *StageContext) ExtractNodeValues(sol *solver.Solution) NodeValues {
	H, T := len(c.Hydros), len(c.Thermals)
	nv := NodeValues{
		VF: make([]float64, H), VT: make([]float64, H), VV: make([]float64, H),
		GT: make([]float64, T), WaterValue: make([]float64, H),
	}
	for h := 0; h < H; h++ {
		nv.VF[h] = sol.Primal[c.idxVF(h)]
		nv.VT[h] = sol.Primal[c.idxVT(h)]
		nv.VV[h] = sol.Primal[c.idxVV(h)]
		nv.WaterValue[h] = -sol.EqDual[h]
	}
	for t := 0; t < T; t++ {
		nv.GT[t] = sol.Primal[c.idxGT(t)]
	}
	nv.Deficit = sol.Primal[c.idxDeficit()]
	if c.IncludeAlpha {
		nv.Alpha = sol.Primal[c.idxAlpha()]
	}
	nv.CMO = math.Abs(sol.EqDual[c.eqLoadBalance()])
	nv.Total = sol.Objective
	nv.Future = nv.Alpha
	nv.Immediate = nv.Total - nv.Future
	return nv
}

// NewCut builds the Benders cut generated at a solved node (§4.6):
// slope[h] = -water_value[h], intercept = total_cost - vi·slope.
func NewCut(values NodeValues, vi []float64) Cut {
	slope := make([]float64, len(values.WaterValue))
	for h := range slope {
		slope[h] = -values.WaterValue[h]
	}
	intercept := values.Total - la.VecDot(vi, slope)
	return Cut{Slope: slope, Intercept: intercept, Provenance: values.Total}
}
