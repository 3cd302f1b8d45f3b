// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rjmalves/hydrosched/inp"
	"github.com/rjmalves/hydrosched/solver"
)

func oneHydroOneThermalCtx(includeAlpha bool) *StageContext {
	return &StageContext{
		Hydros:   []inp.Hydro{{Name: "h1", MinStorage: 0, MaxStorage: 100, Productivity: 1, MaxTurbine: 50}},
		Thermals: []inp.Thermal{{Name: "t1", Capacity: 50, MarginalCost: 10}},
		Demand:   30, DeficitCost: 1000,
		VI: []float64{50}, Inflow: []float64{0},
		IncludeAlpha: includeAlpha,
	}
}

// the variable layout is part of the contract other engines rely on
// positionally: vf, vt, vv, gt, deficit[, alpha]
func Test_stagelp01_layout(tst *testing.T) {

	chk.PrintTitle("stagelp01")

	c := oneHydroOneThermalCtx(false)
	chk.IntAssert(c.idxVF(0), 0)
	chk.IntAssert(c.idxVT(0), 1)
	chk.IntAssert(c.idxVV(0), 2)
	chk.IntAssert(c.idxGT(0), 3)
	chk.IntAssert(c.idxDeficit(), 4)
	chk.IntAssert(c.nVars(), 5)

	withAlpha := oneHydroOneThermalCtx(true)
	chk.IntAssert(withAlpha.idxAlpha(), 5)
	chk.IntAssert(withAlpha.nVars(), 6)
}

func Test_stagelp02_build(tst *testing.T) {

	chk.PrintTitle("stagelp02")

	c := oneHydroOneThermalCtx(false)
	p := c.BuildStageLP()
	chk.IntAssert(len(p.Vars), 5)
	chk.IntAssert(len(p.Eq), 2) // one hydro balance + one load balance
	chk.IntAssert(len(p.Ineq), 0)

	// hydro balance row: vf+vt+vv = VI+Inflow
	chk.Scalar(tst, "balance RHS", 1e-12, p.Eq[0].RHS, 50)
	// load balance row: Productivity*vt + gt + deficit = Demand
	chk.Scalar(tst, "load RHS", 1e-12, p.Eq[1].RHS, 30)
}

func Test_stagelp03_cutsAsInequalities(tst *testing.T) {

	chk.PrintTitle("stagelp03")

	c := oneHydroOneThermalCtx(true)
	c.Cuts = []Cut{{Slope: []float64{-2}, Intercept: 100}}
	p := c.BuildStageLP()
	chk.IntAssert(len(p.Ineq), 1)
	// slope*vf - alpha <= -intercept
	chk.Scalar(tst, "cut RHS", 1e-12, p.Ineq[0].RHS, -100)
}

func Test_stagelp04_extractAndCut(tst *testing.T) {

	chk.PrintTitle("stagelp04")

	c := oneHydroOneThermalCtx(false)
	sol := &solver.Solution{
		Status:    solver.Optimal,
		Primal:    []float64{20, 30, 0, 0, 0},
		EqDual:    []float64{-5, 10},
		Objective: 0,
	}
	values := c.ExtractNodeValues(sol)
	chk.Vector(tst, "VF", 1e-12, values.VF, []float64{20})
	chk.Vector(tst, "VT", 1e-12, values.VT, []float64{30})
	chk.Vector(tst, "WaterValue", 1e-12, values.WaterValue, []float64{5})
	chk.Scalar(tst, "CMO", 1e-12, values.CMO, 10)
	chk.Scalar(tst, "Immediate", 1e-12, values.Immediate, 0)

	cut := NewCut(values, c.VI)
	// slope = -water_value
	chk.Vector(tst, "cut slope", 1e-12, cut.Slope, []float64{-5})
	// intercept = total - vi·slope = 0 - 50*(-5) = 250
	chk.Scalar(tst, "cut intercept", 1e-12, cut.Intercept, 250)
}

// scenario 1: demand is fully covered by turbining, no thermal dispatch
// needed and no deficit.
func Test_stagelp05_scenario_single_hydro_covers_demand(tst *testing.T) {

	chk.PrintTitle("stagelp05")

	c := &StageContext{
		Hydros:   []inp.Hydro{{Name: "h1", MinStorage: 0, MaxStorage: 100, Productivity: 1, MaxTurbine: 50}},
		Thermals: []inp.Thermal{{Name: "t1", Capacity: 100, MarginalCost: 10}},
		Demand:   30, DeficitCost: 1000,
		VI: []float64{20}, Inflow: []float64{10},
	}
	p := c.BuildStageLP()
	s := &solver.Simplex{}
	sol, err := s.Solve(p)
	if err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}
	if sol.Status != solver.Optimal {
		tst.Errorf("status = %v, want Optimal", sol.Status)
		return
	}
	values := c.ExtractNodeValues(sol)
	chk.Vector(tst, "VF", 1e-7, values.VF, []float64{0})
	chk.Vector(tst, "VT", 1e-7, values.VT, []float64{30})
	chk.Vector(tst, "VV", 1e-7, values.VV, []float64{0})
	chk.Vector(tst, "GT", 1e-7, values.GT, []float64{0})
	chk.Scalar(tst, "deficit", 1e-7, values.Deficit, 0)
	chk.Scalar(tst, "objective", 1e-7, values.Total, 0)
}

// scenario 2: turbine capacity falls short of demand once the hydro
// balance is respected, forcing thermal dispatch to cover the gap.
func Test_stagelp06_scenario_forced_thermal(tst *testing.T) {

	chk.PrintTitle("stagelp06")

	c := &StageContext{
		Hydros:   []inp.Hydro{{Name: "h1", MinStorage: 0, MaxStorage: 100, Productivity: 1, MaxTurbine: 40}},
		Thermals: []inp.Thermal{{Name: "t1", Capacity: 100, MarginalCost: 10}},
		Demand:   60, DeficitCost: 1000,
		VI: []float64{20}, Inflow: []float64{10},
	}
	p := c.BuildStageLP()
	s := &solver.Simplex{}
	sol, err := s.Solve(p)
	if err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}
	if sol.Status != solver.Optimal {
		tst.Errorf("status = %v, want Optimal", sol.Status)
		return
	}
	values := c.ExtractNodeValues(sol)
	chk.Vector(tst, "VF", 1e-7, values.VF, []float64{0})
	chk.Vector(tst, "VT", 1e-7, values.VT, []float64{30})
	chk.Vector(tst, "GT", 1e-7, values.GT, []float64{30})
	chk.Scalar(tst, "deficit", 1e-7, values.Deficit, 0)
	chk.Scalar(tst, "objective", 1e-7, values.Total, 300)
}
