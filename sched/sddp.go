// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"math"
	"sort"

	"github.com/rjmalves/hydrosched/inp"
	"github.com/rjmalves/hydrosched/solver"
	"gonum.org/v1/gonum/stat"
)

// sddpConvergenceTol is the floor of the confidence interval's lower
// bound and the risk-averse stability tolerance over the last three
// z_inf values (§6)
const sddpConvergenceTol = 1e-3

// ciSlack pads the confidence interval so that rounding in the forward
// pass never makes a converged run report z_inf outside its own bound
const ciSlack = 1e-8

// SDDPEngine implements Sampled Dual Dynamic Programming over the comb
// (§4.7): forward pass over sampled trajectories, statistical
// convergence via the sampled mean and standard deviation of realized
// costs, and a backward pass that enumerates every opening at each
// stage before aggregating cuts, optionally blending in a risk-averse
// tail.
type SDDPEngine struct{}

func (e *SDDPEngine) solveNode(sv solver.Solver, ctx *StageContext, d, s, iteration int) (NodeValues, error) {
	sol, err := sv.Solve(ctx.BuildStageLP())
	if err != nil {
		return NodeValues{}, newSolverError(s, d, iteration, "%v", err)
	}
	if sol.Status != solver.Optimal {
		return NodeValues{}, newSolverError(s, d, iteration, "stage LP returned status %v", sol.Status)
	}
	return ctx.ExtractNodeValues(sol), nil
}

// Run implements Engine
func (e *SDDPEngine) Run(cfg *inp.Config, fleet *inp.Fleet, sv solver.Solver) (*Result, error) {
	comb, err := BuildComb(cfg, fleet.Hydros, fleet.Inflows)
	if err != nil {
		return nil, err
	}

	lastStage := cfg.StageCount - 1
	var zsupSeries, zinfSeries, ciLower, ciUpper []float64
	iteration := 0
	converged := false

	for {
		if cfg.ResampleOpenings && iteration > 0 {
			comb.Resample(fleet.Hydros, fleet.Inflows)
		}

		for d := range comb.Teeth {
			for s := 0; s <= lastStage; s++ {
				var cuts []Cut
				if s < lastStage {
					cuts = comb.Teeth[d][s+1].Cuts
				}
				ctx := &StageContext{
					Hydros: fleet.Hydros, Thermals: fleet.Thermals,
					Demand: fleet.Demand[s], DeficitCost: cfg.DeficitCost,
					VI: comb.VI(fleet.Hydros, d, s), Inflow: comb.Teeth[d][s].Inflow,
					Cuts: cuts, IncludeAlpha: true,
				}
				values, err := e.solveNode(sv, ctx, d, s, iteration)
				if err != nil {
					return nil, err
				}
				comb.Teeth[d][s].Values = values
			}
		}
		iteration++

		trajTotal := make([]float64, len(comb.Teeth))
		for d := range comb.Teeth {
			sum := 0.0
			for s := 0; s <= lastStage; s++ {
				sum += comb.Teeth[d][s].Values.Immediate
			}
			trajTotal[d] = sum
		}
		zinf := comb.Teeth[0][0].Values.Total
		zsup := stat.Mean(trajTotal, nil)
		sigma := stat.PopStdDev(trajTotal, nil)
		lower := zsup - cfg.ConfidenceZ*sigma - ciSlack
		if lower < sddpConvergenceTol {
			lower = sddpConvergenceTol
		}
		upper := zsup + cfg.ConfidenceZ*sigma + ciSlack

		zsupSeries = append(zsupSeries, zsup)
		zinfSeries = append(zinfSeries, zinf)
		ciLower = append(ciLower, lower)
		ciUpper = append(ciUpper, upper)

		if cfg.RiskAverse() {
			converged = false
			if k := len(zinfSeries); k >= 3 {
				lo := math.Min(zinfSeries[k-3], math.Min(zinfSeries[k-2], zinfSeries[k-1]))
				hi := math.Max(zinfSeries[k-3], math.Max(zinfSeries[k-2], zinfSeries[k-1]))
				converged = hi-lo < sddpConvergenceTol && iteration >= cfg.MinIter
			}
		} else {
			converged = zinf >= lower && zinf <= upper && iteration >= cfg.MinIter
		}
		if converged || iteration >= cfg.MaxIter {
			break
		}

		for s := lastStage; s >= 0; s-- {
			toothCuts := make([]Cut, len(comb.Teeth))
			for d := range comb.Teeth {
				var childCuts []Cut
				if s < lastStage {
					childCuts = comb.Teeth[d][s+1].Cuts
				}
				vi := comb.VI(fleet.Hydros, d, s)
				openings := comb.Openings[s]
				raw := make([]Cut, len(openings))
				for oi, openIdx := range openings {
					inflow := make([]float64, len(fleet.Hydros))
					for h := range fleet.Hydros {
						inflow[h] = fleet.Inflows.Values[h][s][openIdx]
					}
					ctx := &StageContext{
						Hydros: fleet.Hydros, Thermals: fleet.Thermals,
						Demand: fleet.Demand[s], DeficitCost: cfg.DeficitCost,
						VI: vi, Inflow: inflow,
						Cuts: childCuts, IncludeAlpha: true,
					}
					values, err := e.solveNode(sv, ctx, d, s, iteration)
					if err != nil {
						return nil, err
					}
					raw[oi] = NewCut(values, vi)
				}
				if cfg.RiskAverse() {
					toothCuts[d] = riskAverseCut(raw, cfg.TailFraction, cfg.TailWeight)
				} else {
					toothCuts[d] = averageCut(raw)
				}
			}

			for _, tc := range toothCuts {
				for d2 := range comb.Teeth {
					comb.Teeth[d2][s].Cuts = appendUnique(comb.Teeth[d2][s].Cuts, tc)
				}
			}
		}
	}

	res := &Result{Config: cfg, Hydros: fleet.Hydros, Thermals: fleet.Thermals, Converged: converged}
	res.CutsByNode = map[NodeKey][]Cut{}
	for s := 0; s <= lastStage; s++ {
		if len(comb.Teeth[0][s].Cuts) > 0 {
			res.CutsByNode[NodeKey{Stage: s, Node: 0}] = comb.Teeth[0][s].Cuts
		}
	}
	res.Scenarios = combScenarios(comb)

	finalSup, finalInf, err := simulateCombFinal(cfg, fleet, sv, comb)
	if err != nil {
		return nil, err
	}
	res.ZSup = append(zsupSeries, finalSup)
	res.ZInf = append(zinfSeries, finalInf)
	res.ConfidenceLower = append(ciLower, finalInf)
	res.ConfidenceUpper = append(ciUpper, finalSup)
	return res, nil
}

// riskAverseCut blends the mean of the raw opening cuts within one tooth
// with the mean of the worst tail_fraction share of those openings,
// ranked by Provenance (realized cost at that opening): a higher-cost
// opening is a worse tail outcome, so sorting descending and taking the
// head selects the tail (§4.7 step 2: ⌊tail_fraction·branch_count⌋).
func riskAverseCut(cuts []Cut, tailFraction, tailWeight float64) Cut {
	mean := averageCut(cuts)
	n := int(math.Floor(tailFraction * float64(len(cuts))))
	if n < 1 {
		n = 1
	}
	if n > len(cuts) {
		n = len(cuts)
	}
	ranked := make([]Cut, len(cuts))
	copy(ranked, cuts)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Provenance > ranked[j].Provenance })
	tail := averageCut(ranked[:n])
	return combineCut(mean, tail, tailWeight)
}

func combScenarios(comb *Comb) []ScenarioSummary {
	scenarios := make([]ScenarioSummary, len(comb.Teeth))
	for d, tooth := range comb.Teeth {
		s := ScenarioSummary{Trajectory: d}
		s.Deficit = make([]float64, len(tooth))
		s.Spillage = make([]float64, len(tooth))
		s.CMO = make([]float64, len(tooth))
		for stage, node := range tooth {
			v := node.Values
			s.Deficit[stage] = v.Deficit
			for _, vv := range v.VV {
				s.Spillage[stage] += vv
			}
			s.CMO[stage] = v.CMO
			s.TotalCost += v.Immediate
		}
		scenarios[d] = s
	}
	return scenarios
}
