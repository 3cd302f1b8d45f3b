// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

// NodeValues holds everything a solved stage LP produces at one
// (tree-position) or (trajectory, stage) position: primal values,
// duals, and the derived cost breakdown (§3, TreeNode/CombNode).
type NodeValues struct {
	VF         []float64 // final storage per hydro
	VT         []float64 // turbined volume per hydro
	VV         []float64 // spilled volume per hydro
	GT         []float64 // thermal dispatch per unit
	Deficit    float64
	Alpha      float64
	WaterValue []float64 // -dual(hydro balance h); marginal value of water
	CMO        float64   // |dual(load balance)|; marginal operating cost
	Immediate  float64   // total - alpha
	Future     float64   // alpha
	Total      float64   // LP objective value
}

// TreeNode is one position in the deterministic inflow tree used by
// Single-LP and DDP (§3).
type TreeNode struct {
	Stage  int
	Inflow []float64 // one value per hydro
	Parent int        // -1 for the root
	Values NodeValues
	Cuts   []Cut
}

// CombNode is one (trajectory, stage) position in the SDDP comb (§3).
type CombNode struct {
	Stage  int
	Inflow []float64
	Values NodeValues
	Cuts   []Cut
}
