// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rjmalves/hydrosched/sched"
)

func Test_topology01_tree(tst *testing.T) {

	chk.PrintTitle("topology01")

	tree := &sched.Tree{
		BranchCount: 2,
		Stages: [][]sched.TreeNode{
			{{Stage: 0, Parent: -1}},
			{{Stage: 1, Parent: 0}, {Stage: 1, Parent: 0}},
		},
	}
	g, err := ExportTreeTopology(tree)
	if err != nil {
		tst.Errorf("ExportTreeTopology failed: %v", err)
		return
	}
	chk.IntAssert(g.VertexCount(), 3)
	chk.IntAssert(g.EdgeCount(), 2)
}

func Test_topology02_comb(tst *testing.T) {

	chk.PrintTitle("topology02")

	comb := &sched.Comb{
		Teeth: [][]sched.CombNode{
			{{Stage: 0}, {Stage: 1}},
			{{Stage: 0}, {Stage: 1}},
		},
	}
	g, err := ExportCombTopology(comb)
	if err != nil {
		tst.Errorf("ExportCombTopology failed: %v", err)
		return
	}
	chk.IntAssert(g.VertexCount(), 4)
	chk.IntAssert(g.EdgeCount(), 2)
}
