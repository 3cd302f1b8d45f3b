// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/rjmalves/hydrosched/inp"
)

// maxSampleAttempts is the comb sampling attempt cap (§6)
const maxSampleAttempts = 10000

// Comb is the sampled forward-trajectory structure SDDP uses (§4.4):
// a set of independently sampled teeth plus a distinguished per-stage
// opening set used by the backward pass. The whole structure is
// deterministic given Config.Seed: the only source of randomness
// anywhere in the system is the *rand.Rand threaded through here
// (§5, design note §9).
type Comb struct {
	Teeth       [][]CombNode // Teeth[tooth][stage]
	Openings    [][]int      // Openings[stage] = candidate indices chosen as that stage's opening set
	branchCount int
	rng         *rand.Rand
}

// BuildComb performs the two-phase seeded sampling of §4.4
func BuildComb(cfg *inp.Config, hydros []inp.Hydro, table inp.InflowTable) (*Comb, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	numStages := cfg.StageCount
	numHydros := len(hydros)

	openings := make([][]int, numStages)
	openings[0] = []int{0}
	for s := 1; s < numStages; s++ {
		n := len(table.Values[0][s])
		if n < cfg.BranchCount {
			return nil, inp.NewFatalError(inp.KindInput, s, -1, -1, "only %d inflow candidates, need >= branch_count (%d)", n, cfg.BranchCount)
		}
		openings[s] = sampleDistinct(rng, n, cfg.BranchCount)
	}

	seen := map[string]bool{}
	sequences := make([][]int, 0, cfg.TrajectoryCount)
	attempts := 0
	for len(sequences) < cfg.TrajectoryCount {
		attempts++
		if attempts > maxSampleAttempts {
			return nil, inp.NewFatalError(inp.KindSampling, -1, -1, -1, "could not draw %d distinct trajectories within %d attempts", cfg.TrajectoryCount, maxSampleAttempts)
		}
		seq := make([]int, numStages)
		for s := 1; s < numStages; s++ {
			seq[s] = rng.Intn(cfg.BranchCount)
		}
		key := seqKey(seq)
		if seen[key] {
			continue
		}
		seen[key] = true
		sequences = append(sequences, seq)
	}

	teeth := make([][]CombNode, len(sequences))
	for d, seq := range sequences {
		nodes := make([]CombNode, numStages)
		for s := 0; s < numStages; s++ {
			openingIdx := openings[s][seq[s]]
			inflow := make([]float64, numHydros)
			for h := 0; h < numHydros; h++ {
				inflow[h] = table.Values[h][s][openingIdx]
			}
			nodes[s] = CombNode{Stage: s, Inflow: inflow}
		}
		teeth[d] = nodes
	}

	return &Comb{Teeth: teeth, Openings: openings, branchCount: cfg.BranchCount, rng: rng}, nil
}

func sampleDistinct(rng *rand.Rand, n, k int) []int {
	perm := rng.Perm(n)
	idx := make([]int, k)
	copy(idx, perm[:k])
	return idx
}

func seqKey(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Resample replaces, for every node in every tooth, its inflow by a
// uniformly random draw from its stage's opening set, per the optional
// per-iteration resampling of §4.4. Stage 0 is left untouched: its
// opening set has a single, deterministic member.
func (c *Comb) Resample(hydros []inp.Hydro, table inp.InflowTable) {
	for d := range c.Teeth {
		for s := 1; s < len(c.Teeth[d]); s++ {
			pick := c.Openings[s][c.rng.Intn(len(c.Openings[s]))]
			inflow := make([]float64, len(hydros))
			for h := range hydros {
				inflow[h] = table.Values[h][s][pick]
			}
			c.Teeth[d][s].Inflow = inflow
		}
	}
}

// VI returns the incoming storage vector for tooth d at stage s
func (c *Comb) VI(hydros []inp.Hydro, d, s int) []float64 {
	if s == 0 {
		vi := make([]float64, len(hydros))
		for h, hy := range hydros {
			vi[h] = hy.InitialStorage
		}
		return vi
	}
	return c.Teeth[d][s-1].Values.VF
}
