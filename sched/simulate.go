// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"github.com/rjmalves/hydrosched/inp"
	"github.com/rjmalves/hydrosched/solver"
)

// simulateTreeFinal implements the final simulation pass of §4.8 for an
// engine that already holds a fully-built deterministic Tree (DDP): the
// converged cuts sitting at stage 1 are aggregated and copied into the
// root so z_inf reflects the trained value function, and a plain
// physical forward pass (no alpha, no cuts) down the rest of the tree
// produces z_sup as the weighted-average realized cost.
func simulateTreeFinal(cfg *inp.Config, fleet *inp.Fleet, sv solver.Solver, tree *Tree) (zsup, zinf float64, err error) {
	var rootCuts []Cut
	if cfg.StageCount > 1 {
		rootCuts = aggregateChildCuts(tree.Stages[1])
	}
	return simulateOpeningTree(cfg, fleet, sv, tree, rootCuts)
}

// simulateCombFinal implements §4.8 for SDDP: it builds the exhaustive
// product tree over the comb's per-stage opening sets (every combination
// of sampled openings, not just the sampled teeth), copies the
// converged stage-1 cuts shared by every tooth into the tree's root, and
// runs the same final forward pass as simulateTreeFinal.
func simulateCombFinal(cfg *inp.Config, fleet *inp.Fleet, sv solver.Solver, comb *Comb) (zsup, zinf float64, err error) {
	tree, err := buildOpeningTree(cfg, fleet.Hydros, fleet.Inflows, comb.Openings)
	if err != nil {
		return 0, 0, err
	}
	var rootCuts []Cut
	if cfg.StageCount > 1 {
		rootCuts = comb.Teeth[0][1].Cuts
	}
	return simulateOpeningTree(cfg, fleet, sv, tree, rootCuts)
}

// buildOpeningTree lays out a full BranchCount-ary tree exactly like
// BuildTree, except that the candidate picked for branch k of stage s is
// table.Values[h][s][openings[s][k]] rather than the k-th truncated
// candidate: the tree is built over the specific openings the comb
// sampled, not over the first BranchCount candidates.
func buildOpeningTree(cfg *inp.Config, hydros []inp.Hydro, table inp.InflowTable, openings [][]int) (*Tree, error) {
	t := &Tree{Stages: make([][]TreeNode, cfg.StageCount), BranchCount: cfg.BranchCount}

	root := TreeNode{Stage: 0, Parent: -1, Inflow: make([]float64, len(hydros))}
	for h := range hydros {
		root.Inflow[h] = table.Values[h][0][openings[0][0]]
	}
	t.Stages[0] = []TreeNode{root}

	for s := 1; s < cfg.StageCount; s++ {
		nNodes := pow(cfg.BranchCount, s)
		nodes := make([]TreeNode, nNodes)
		for k := 0; k < nNodes; k++ {
			parent := k / cfg.BranchCount
			branch := k % cfg.BranchCount
			inflow := make([]float64, len(hydros))
			for h := range hydros {
				inflow[h] = table.Values[h][s][openings[s][branch]]
			}
			nodes[k] = TreeNode{Stage: s, Parent: parent, Inflow: inflow}
		}
		t.Stages[s] = nodes
	}
	return t, nil
}

// simulateOpeningTree solves the root with rootCuts (IncludeAlpha=true)
// for z_inf, then solves every deeper node as a plain physical LP
// (IncludeAlpha=false) and returns the stage-weighted average of
// immediate costs across the whole tree as z_sup.
func simulateOpeningTree(cfg *inp.Config, fleet *inp.Fleet, sv solver.Solver, tree *Tree, rootCuts []Cut) (zsup, zinf float64, err error) {
	rootCtx := &StageContext{
		Hydros: fleet.Hydros, Thermals: fleet.Thermals,
		Demand: fleet.Demand[0], DeficitCost: cfg.DeficitCost,
		VI: tree.VI(fleet.Hydros, 0, 0), Inflow: tree.Stages[0][0].Inflow,
		Cuts: rootCuts, IncludeAlpha: true,
	}
	sol, err := sv.Solve(rootCtx.BuildStageLP())
	if err != nil {
		return 0, 0, newSolverError(0, 0, -1, "%v", err)
	}
	if sol.Status != solver.Optimal {
		return 0, 0, newSolverError(0, 0, -1, "final simulation root returned status %v", sol.Status)
	}
	values := rootCtx.ExtractNodeValues(sol)
	tree.Stages[0][0].Values = values
	zinf = values.Total

	for s := 1; s < cfg.StageCount; s++ {
		for n := range tree.Stages[s] {
			ctx := &StageContext{
				Hydros: fleet.Hydros, Thermals: fleet.Thermals,
				Demand: fleet.Demand[s], DeficitCost: cfg.DeficitCost,
				VI: tree.VI(fleet.Hydros, s, n), Inflow: tree.Stages[s][n].Inflow,
				IncludeAlpha: false,
			}
			sol, err := sv.Solve(ctx.BuildStageLP())
			if err != nil {
				return 0, 0, newSolverError(s, n, -1, "%v", err)
			}
			if sol.Status != solver.Optimal {
				return 0, 0, newSolverError(s, n, -1, "final simulation returned status %v", sol.Status)
			}
			v := ctx.ExtractNodeValues(sol)
			v.Total = nodeImmediateCost(ctx, v)
			v.Future = 0
			v.Immediate = v.Total
			tree.Stages[s][n].Values = v
		}
	}

	for s := range tree.Stages {
		w := 1.0 / float64(len(tree.Stages[s]))
		sum := 0.0
		for n := range tree.Stages[s] {
			sum += tree.Stages[s][n].Values.Immediate
		}
		zsup += w * sum
	}
	return zsup, zinf, nil
}
