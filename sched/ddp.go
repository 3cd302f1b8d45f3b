// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"math"

	"github.com/rjmalves/hydrosched/inp"
	"github.com/rjmalves/hydrosched/solver"
)

// ddpConvergenceTol is the DDP convergence tolerance of §6
const ddpConvergenceTol = 1e-3

// DDPEngine implements nested Benders / Dual Dynamic Programming over
// the deterministic inflow tree (§4.6): forward/backward passes,
// cuts averaged over sibling nodes, convergence by upper/lower bound
// matching.
type DDPEngine struct{}

func (e *DDPEngine) buildCtx(tree *Tree, fleet *inp.Fleet, cfg *inp.Config, s, n int, cuts []Cut) *StageContext {
	return &StageContext{
		Hydros: fleet.Hydros, Thermals: fleet.Thermals,
		Demand: fleet.Demand[s], DeficitCost: cfg.DeficitCost,
		VI: tree.VI(fleet.Hydros, s, n), Inflow: tree.Stages[s][n].Inflow,
		Cuts: cuts, IncludeAlpha: true,
	}
}

func (e *DDPEngine) solveNode(sv solver.Solver, ctx *StageContext, s, n, iteration int) (NodeValues, error) {
	sol, err := sv.Solve(ctx.BuildStageLP())
	if err != nil {
		return NodeValues{}, newSolverError(s, n, iteration, "%v", err)
	}
	if sol.Status != solver.Optimal {
		return NodeValues{}, newSolverError(s, n, iteration, "stage LP returned status %v", sol.Status)
	}
	return ctx.ExtractNodeValues(sol), nil
}

// Run implements Engine
func (e *DDPEngine) Run(cfg *inp.Config, fleet *inp.Fleet, sv solver.Solver) (*Result, error) {
	tree, err := BuildTree(cfg, fleet.Hydros, fleet.Inflows)
	if err != nil {
		return nil, err
	}

	lastStage := cfg.StageCount - 1
	var zsupSeries, zinfSeries []float64
	fwdCount := 0
	converged := false

	for {
		for s := 0; s < cfg.StageCount; s++ {
			if fwdCount > 0 && s == 0 {
				continue // the single stage-0 node is unchanged since the last backward pass
			}
			isLast := s == lastStage
			for n := range tree.Stages[s] {
				var cuts []Cut
				if !isLast {
					lo, hi := tree.Children(n)
					cuts = aggregateChildCuts(tree.Stages[s+1][lo:hi])
				}
				ctx := e.buildCtx(tree, fleet, cfg, s, n, cuts)
				values, err := e.solveNode(sv, ctx, s, n, fwdCount)
				if err != nil {
					return nil, err
				}
				tree.Stages[s][n].Values = values
			}
		}
		fwdCount++

		zsup := 0.0
		for s := range tree.Stages {
			w := 1.0 / float64(len(tree.Stages[s]))
			sum := 0.0
			for n := range tree.Stages[s] {
				sum += tree.Stages[s][n].Values.Immediate
			}
			zsup += w * sum
		}
		zinf := tree.Stages[0][0].Values.Total
		zsupSeries = append(zsupSeries, zsup)
		zinfSeries = append(zinfSeries, zinf)

		converged = math.Abs(zsup-zinf) <= ddpConvergenceTol && fwdCount >= cfg.MinIter
		if converged || fwdCount >= cfg.MaxIter {
			break
		}

		for s := lastStage; s >= 0; s-- {
			isLast := s == lastStage
			nodes := tree.Stages[s]
			for n := len(nodes) - 1; n >= 0; n-- {
				if !isLast {
					lo, hi := tree.Children(n)
					cuts := aggregateChildCuts(tree.Stages[s+1][lo:hi])
					ctx := e.buildCtx(tree, fleet, cfg, s, n, cuts)
					values, err := e.solveNode(sv, ctx, s, n, fwdCount)
					if err != nil {
						return nil, err
					}
					tree.Stages[s][n].Values = values
				}
				vi := tree.VI(fleet.Hydros, s, n)
				cut := NewCut(tree.Stages[s][n].Values, vi)
				tree.Stages[s][n].Cuts = appendUnique(tree.Stages[s][n].Cuts, cut)
			}
		}
	}

	res := &Result{Config: cfg, Hydros: fleet.Hydros, Thermals: fleet.Thermals, Converged: converged}
	res.CutsByNode = map[NodeKey][]Cut{}
	for s, nodes := range tree.Stages {
		for n, nd := range nodes {
			if len(nd.Cuts) > 0 {
				res.CutsByNode[NodeKey{Stage: s, Node: n}] = nd.Cuts
			}
		}
	}
	res.Scenarios = singleLPScenarios(tree)

	finalSup, finalInf, err := simulateTreeFinal(cfg, fleet, sv, tree)
	if err != nil {
		return nil, err
	}
	res.ZSup = append(zsupSeries, finalSup)
	res.ZInf = append(zinfSeries, finalInf)
	return res, nil
}
