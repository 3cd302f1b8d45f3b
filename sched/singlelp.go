// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"github.com/rjmalves/hydrosched/inp"
	"github.com/rjmalves/hydrosched/solver"
)

// SingleLPEngine builds and solves the deterministic-equivalent LP
// over the entire inflow tree in one shot (§4.5): no iteration, no
// cuts.
type SingleLPEngine struct{}

type nodeBlock struct {
	stage, node int
	ctx         *StageContext
	varOffset   int
	eqOffset    int
}

// Run implements Engine
func (e *SingleLPEngine) Run(cfg *inp.Config, fleet *inp.Fleet, sv solver.Solver) (*Result, error) {
	tree, err := BuildTree(cfg, fleet.Hydros, fleet.Inflows)
	if err != nil {
		return nil, err
	}

	big := &solver.Problem{}
	var blocks []nodeBlock
	varOffsets := make([][]int, cfg.StageCount)
	for s := 0; s < cfg.StageCount; s++ {
		weight := 1.0 / float64(len(tree.Stages[s]))
		varOffsets[s] = make([]int, len(tree.Stages[s]))
		for n := range tree.Stages[s] {
			// below the root, the parent's vf enters the balance row as a
			// variable (added below), so the block's own VI is zero
			vi := make([]float64, len(fleet.Hydros))
			if s == 0 {
				vi = tree.VI(fleet.Hydros, 0, 0)
			}
			ctx := &StageContext{
				Hydros: fleet.Hydros, Thermals: fleet.Thermals,
				Demand: fleet.Demand[s], DeficitCost: cfg.DeficitCost,
				VI: vi, Inflow: tree.Stages[s][n].Inflow,
				IncludeAlpha: false,
			}
			sub := ctx.BuildStageLP()
			varOffset := len(big.Vars)
			varOffsets[s][n] = varOffset
			eqOffset := len(big.Eq)
			for _, v := range sub.Vars {
				big.Vars = append(big.Vars, v)
			}
			for _, term := range sub.Obj {
				big.Obj = append(big.Obj, solver.Term{Var: varOffset + term.Var, Coef: weight * term.Coef})
			}
			for j, eq := range sub.Eq {
				shifted := make(solver.Expr, len(eq.Expr))
				for i, t := range eq.Expr {
					shifted[i] = solver.Term{Var: varOffset + t.Var, Coef: t.Coef}
				}
				if s > 0 && j < len(fleet.Hydros) {
					parentOffset := varOffsets[s-1][tree.Stages[s][n].Parent]
					shifted = append(shifted, solver.Term{Var: parentOffset + ctx.idxVF(j), Coef: -1})
				}
				big.Eq = append(big.Eq, solver.Eq{Name: eq.Name, Expr: shifted, RHS: eq.RHS})
			}
			blocks = append(blocks, nodeBlock{stage: s, node: n, ctx: ctx, varOffset: varOffset, eqOffset: eqOffset})
		}
	}

	sol, err := sv.Solve(big)
	if err != nil {
		return nil, newSolverError(-1, -1, 0, "single-LP solve failed: %v", err)
	}
	if sol.Status != solver.Optimal {
		return nil, newSolverError(-1, -1, 0, "single-LP solve returned status %v", sol.Status)
	}

	for _, b := range blocks {
		localSol := &solver.Solution{
			Status:    sol.Status,
			Primal:    sol.Primal[b.varOffset : b.varOffset+b.ctx.nVars()],
			EqDual:    sol.EqDual[b.eqOffset : b.eqOffset+len(b.ctx.Hydros)+1],
			Objective: 0, // per-node total cost is computed below from the node's own terms
		}
		values := b.ctx.ExtractNodeValues(localSol)
		values.Total = nodeImmediateCost(b.ctx, values)
		values.Future = 0
		values.Immediate = values.Total
		tree.Stages[b.stage][b.node].Values = values
	}

	res := &Result{Config: cfg, Hydros: fleet.Hydros, Thermals: fleet.Thermals, CutsByNode: map[NodeKey][]Cut{}}
	if cfg.EmitSingleLPDegenerateSeries {
		res.ZSup = []float64{sol.Objective}
		res.ZInf = []float64{sol.Objective}
	}
	res.Scenarios = singleLPScenarios(tree)
	res.Converged = true
	return res, nil
}

// nodeImmediateCost recomputes a node's own contribution to the
// objective (thermal cost + deficit penalty + spillage penalty), since
// the Single-LP Problem's Objective is the tree-wide weighted total,
// not any one node's.
func nodeImmediateCost(ctx *StageContext, v NodeValues) float64 {
	cost := ctx.DeficitCost * v.Deficit
	for t, th := range ctx.Thermals {
		cost += th.MarginalCost * v.GT[t]
	}
	for h := range ctx.Hydros {
		cost += spillPenalty * v.VV[h]
	}
	return cost
}

func singleLPScenarios(tree *Tree) []ScenarioSummary {
	lastStage := len(tree.Stages) - 1
	scenarios := make([]ScenarioSummary, len(tree.Stages[lastStage]))
	for leaf := range tree.Stages[lastStage] {
		var s ScenarioSummary
		s.Trajectory = leaf
		s.Deficit = make([]float64, len(tree.Stages))
		s.Spillage = make([]float64, len(tree.Stages))
		s.CMO = make([]float64, len(tree.Stages))
		node := leaf
		for stage := lastStage; stage >= 0; stage-- {
			v := tree.Stages[stage][node].Values
			s.Deficit[stage] = v.Deficit
			for _, vv := range v.VV {
				s.Spillage[stage] += vv
			}
			s.CMO[stage] = v.CMO
			s.TotalCost += v.Immediate
			node = tree.Stages[stage][node].Parent
		}
		scenarios[leaf] = s
	}
	return scenarios
}
