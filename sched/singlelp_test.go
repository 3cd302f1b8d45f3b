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

func smallFleet() (*inp.Config, *inp.Fleet) {
	cfg := &inp.Config{
		StageCount: 2, BranchCount: 2, TrajectoryCount: 3,
		MinIter: 1, MaxIter: 10, DeficitCost: 1000,
	}
	fleet := &inp.Fleet{
		Hydros:   []inp.Hydro{{Name: "h1", InitialStorage: 50, MinStorage: 0, MaxStorage: 100, Productivity: 1, MaxTurbine: 50}},
		Thermals: []inp.Thermal{{Name: "t1", Capacity: 100, MarginalCost: 10}},
		Demand:   []float64{30, 30},
		Inflows: inp.InflowTable{Values: [][][]float64{
			{{10}, {5, 15}},
		}},
	}
	return cfg, fleet
}

func Test_singlelp01_ample_water_no_deficit(tst *testing.T) {

	chk.PrintTitle("singlelp01")

	cfg, fleet := smallFleet()
	eng := &SingleLPEngine{}
	res, err := eng.Run(cfg, fleet, &solver.Simplex{})
	if err != nil {
		tst.Errorf("Run failed: %v", err)
		return
	}
	if !res.Converged {
		tst.Errorf("single-LP result should always report Converged=true")
	}
	chk.IntAssert(len(res.Scenarios), cfg.BranchCount)
	chk.IntAssert(len(res.CutsByNode), 0)

	for _, s := range res.Scenarios {
		chk.Scalar(tst, "total cost (ample hydro, no thermal/deficit needed)", 1e-6, s.TotalCost, 0)
		for _, d := range s.Deficit {
			chk.Scalar(tst, "deficit", 1e-6, d, 0)
		}
	}
}

func Test_singlelp02_degenerate_series_flag(tst *testing.T) {

	chk.PrintTitle("singlelp02")

	cfg, fleet := smallFleet()
	cfg.EmitSingleLPDegenerateSeries = true
	eng := &SingleLPEngine{}
	res, err := eng.Run(cfg, fleet, &solver.Simplex{})
	if err != nil {
		tst.Errorf("Run failed: %v", err)
		return
	}
	chk.IntAssert(len(res.ZSup), 1)
	chk.IntAssert(len(res.ZInf), 1)
}

// §8: "Single-LP optimum ≤ DDP z_inf at convergence" — both engines
// solve the same deterministic tree, so DDP's converged lower bound
// must not undercut the exact tree-wide optimum.
func Test_singlelp03_optimum_bounds_ddp_zinf(tst *testing.T) {

	chk.PrintTitle("singlelp03")

	lpCfg, lpFleet := smallFleet()
	lpCfg.EmitSingleLPDegenerateSeries = true
	lpRes, err := (&SingleLPEngine{}).Run(lpCfg, lpFleet, &solver.Simplex{})
	if err != nil {
		tst.Errorf("SingleLPEngine.Run failed: %v", err)
		return
	}
	singleLPOptimum := lpRes.ZSup[0]

	ddpCfg, ddpFleet := smallFleet()
	ddpRes, err := (&DDPEngine{}).Run(ddpCfg, ddpFleet, &solver.Simplex{})
	if err != nil {
		tst.Errorf("DDPEngine.Run failed: %v", err)
		return
	}
	ddpZInf := ddpRes.ZInf[len(ddpRes.ZInf)-1]

	const tol = 1e-3
	if singleLPOptimum > ddpZInf+tol {
		tst.Errorf("single-LP optimum %g exceeds converged DDP z_inf %g by more than %g", singleLPOptimum, ddpZInf, tol)
	}
}
