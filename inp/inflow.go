// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// InflowTable holds, for each hydro and each stage, an ordered sequence
// of candidate inflow values (§3). Values[h][s] is that sequence.
type InflowTable struct {
	Values [][][]float64 `json:"values"`
}

// NumHydros returns the number of hydro plants the table covers
func (t InflowTable) NumHydros() int { return len(t.Values) }

// NumStages returns the number of stages the table covers, as seen by
// the first hydro (Validate guarantees uniformity across hydros)
func (t InflowTable) NumStages() int {
	if len(t.Values) == 0 {
		return 0
	}
	return len(t.Values[0])
}

// Candidates returns the candidate inflow sequence for hydro h at stage s
func (t InflowTable) Candidates(h, s int) []float64 { return t.Values[h][s] }

// Validate checks the §3 invariants: the per-stage candidate count is
// uniform across hydros, stage 0 is deterministic (at least one value),
// and every later stage exposes at least branchCount candidates
func (t InflowTable) Validate(numHydros, stageCount, branchCount int) error {
	if len(t.Values) != numHydros {
		return chk.Err("inflow table declares %d hydros, fleet has %d", len(t.Values), numHydros)
	}
	if len(t.Values) == 0 {
		return chk.Err("inflow table is empty")
	}
	refCounts := make([]int, stageCount)
	for h, perStage := range t.Values {
		if len(perStage) < stageCount {
			return chk.Err("hydro index %d: inflow table has %d stages, need %d", h, len(perStage), stageCount)
		}
		for s := 0; s < stageCount; s++ {
			n := len(perStage[s])
			if h == 0 {
				refCounts[s] = n
			} else if n != refCounts[s] {
				return chk.Err("hydro index %d: stage %d has %d candidates, hydro 0 has %d (must be uniform)", h, s, n, refCounts[s])
			}
			if s == 0 {
				if n < 1 {
					return chk.Err("hydro index %d: stage 0 must expose at least one (deterministic) candidate", h)
				}
			} else if n < branchCount {
				return chk.Err("hydro index %d: stage %d exposes %d candidates, need >= branch_count (%d)", h, s, n, branchCount)
			}
		}
	}
	return nil
}

// Truncate returns a copy of the table restricted to the first
// stageCount stages, keeping only the first value at stage 0 and only
// the first branchCount values at every later stage, per §4.3
func (t InflowTable) Truncate(stageCount, branchCount int) InflowTable {
	out := InflowTable{Values: make([][][]float64, len(t.Values))}
	for h, perStage := range t.Values {
		stages := make([][]float64, stageCount)
		for s := 0; s < stageCount; s++ {
			if s == 0 {
				stages[s] = []float64{perStage[0][0]}
				continue
			}
			n := branchCount
			if n > len(perStage[s]) {
				n = len(perStage[s])
			}
			cand := make([]float64, n)
			copy(cand, perStage[s][:n])
			stages[s] = cand
		}
		out.Values[h] = stages
	}
	return out
}
