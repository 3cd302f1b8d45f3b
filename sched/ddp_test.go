// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rjmalves/hydrosched/solver"
)

func Test_ddp01_converges(tst *testing.T) {

	chk.PrintTitle("ddp01")

	cfg, fleet := smallFleet()
	eng := &DDPEngine{}
	res, err := eng.Run(cfg, fleet, &solver.Simplex{})
	if err != nil {
		tst.Errorf("Run failed: %v", err)
		return
	}
	if !res.Converged {
		tst.Errorf("DDP should converge within %d iterations on this small fleet", cfg.MaxIter)
	}
	if len(res.ZSup) < 2 || len(res.ZInf) < 2 {
		tst.Errorf("expected at least one forward iteration plus the final simulation row")
	}
	last := len(res.ZSup) - 1
	chk.Scalar(tst, "|z_sup - z_inf| at the final simulation row", ddpConvergenceTol+1e-6, math.Abs(res.ZSup[last]-res.ZInf[last]), 0)

	// the backward pass sweeps down to stage 0, so the root carries its
	// own cut even though no forward solve consumes it
	if _, ok := res.CutsByNode[NodeKey{Stage: 0, Node: 0}]; !ok {
		tst.Errorf("expected root to accumulate at least one cut from the backward pass")
	}
}

func Test_ddp02_every_stage_accumulates_cuts(tst *testing.T) {

	chk.PrintTitle("ddp02")

	cfg, fleet := smallFleet()
	eng := &DDPEngine{}
	res, err := eng.Run(cfg, fleet, &solver.Simplex{})
	if err != nil {
		tst.Errorf("Run failed: %v", err)
		return
	}
	lastStage := cfg.StageCount - 1
	for s := 0; s <= lastStage; s++ {
		if _, ok := res.CutsByNode[NodeKey{Stage: s, Node: 0}]; !ok {
			tst.Errorf("stage %d node 0 should carry at least one backward-pass cut", s)
		}
	}
}
