// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"strconv"

	"github.com/katalvlaran/lvlath/core"
	"github.com/rjmalves/hydrosched/sched"
)

func nodeID(stage, n int) string {
	return "s" + strconv.Itoa(stage) + "n" + strconv.Itoa(n)
}

// ExportTreeTopology builds a directed lvlath graph of parent-child
// lineage in a deterministic Tree (Single-LP/DDP), one vertex per
// (stage, node) and one edge from each parent to every one of its
// children, weighted by the child's branch index among its siblings.
func ExportTreeTopology(tree *sched.Tree) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))
	if err := g.AddVertex(nodeID(0, 0)); err != nil {
		return nil, err
	}
	for s := 1; s < len(tree.Stages); s++ {
		for n := range tree.Stages[s] {
			id := nodeID(s, n)
			if err := g.AddVertex(id); err != nil {
				return nil, err
			}
			parentID := nodeID(s-1, tree.Stages[s][n].Parent)
			branch := int64(n % tree.BranchCount)
			if _, err := g.AddEdge(parentID, id, branch); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// ExportCombTopology builds a directed lvlath graph of every sampled
// tooth's stage-by-stage lineage: one vertex per (tooth, stage) and one
// edge linking consecutive stages within a tooth.
func ExportCombTopology(comb *sched.Comb) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))
	for d, tooth := range comb.Teeth {
		prev := ""
		for s := range tooth {
			id := "t" + strconv.Itoa(d) + "s" + strconv.Itoa(s)
			if err := g.AddVertex(id); err != nil {
				return nil, err
			}
			if prev != "" {
				if _, err := g.AddEdge(prev, id, 0); err != nil {
					return nil, err
				}
			}
			prev = id
		}
	}
	return g, nil
}
