// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"github.com/rjmalves/hydrosched/inp"
)

// Tree is the deterministic inflow tree used by Single-LP and DDP
// (§4.3): stage 0 is a single deterministic node, and every node in a
// later stage has BranchCount children. Nodes are stored in a
// stage-major arena indexed by integer position rather than owned by
// pointer, per design note §9.
type Tree struct {
	Stages      [][]TreeNode // Stages[s][n]
	BranchCount int
}

// BuildTree truncates the inflow table per §4.3 and lays out the tree:
// child k in stage s>0 has parent k/BranchCount in stage s-1 and
// inflow equal to the (k mod BranchCount)-th candidate of that stage.
func BuildTree(cfg *inp.Config, hydros []inp.Hydro, table inp.InflowTable) (*Tree, error) {
	truncated := table.Truncate(cfg.StageCount, cfg.BranchCount)
	t := &Tree{Stages: make([][]TreeNode, cfg.StageCount), BranchCount: cfg.BranchCount}

	// stage 0: single deterministic node
	root := TreeNode{Stage: 0, Parent: -1, Inflow: make([]float64, len(hydros))}
	for h := range hydros {
		root.Inflow[h] = truncated.Values[h][0][0]
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
				inflow[h] = truncated.Values[h][s][branch]
			}
			nodes[k] = TreeNode{Stage: s, Parent: parent, Inflow: inflow}
		}
		t.Stages[s] = nodes
	}
	return t, nil
}

func pow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// Children returns the contiguous index range [lo, hi) of node n's
// children at stage s+1: possible_children(s, n) of §4.3.
func (t *Tree) Children(n int) (lo, hi int) {
	return t.BranchCount * n, t.BranchCount*n + t.BranchCount
}

// VI returns the incoming-storage vector feeding node n at stage s:
// the plant's initial storage at the root, or the parent's solved vf
// at every later stage.
func (t *Tree) VI(hydros []inp.Hydro, s, n int) []float64 {
	if s == 0 {
		vi := make([]float64, len(hydros))
		for h, hy := range hydros {
			vi[h] = hy.InitialStorage
		}
		return vi
	}
	parent := t.Stages[s][n].Parent
	return t.Stages[s-1][parent].Values.VF
}
