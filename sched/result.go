// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import "github.com/rjmalves/hydrosched/inp"

// NodeKey identifies one (stage, node) position for Result.CutsByNode
type NodeKey struct {
	Stage int
	Node  int
}

// ScenarioSummary is the per-trajectory (tooth, or final-simulation
// fan member) summary reported in a Result (§3).
type ScenarioSummary struct {
	Trajectory int
	TotalCost  float64
	Deficit    []float64 // per stage
	Spillage   []float64 // per stage, summed across hydros
	CMO        []float64 // per stage
}

// Result is the read-only artifact handed to reporting collaborators
// after a run (§3). For DDP and SDDP, len(ZSup) == len(ZInf) ==
// iterations_executed+1. Single-LP leaves both empty, or holds the one
// optimal objective in each when Config.EmitSingleLPDegenerateSeries is
// set.
type Result struct {
	Config     *inp.Config
	Hydros     []inp.Hydro
	Thermals   []inp.Thermal
	Scenarios  []ScenarioSummary
	ZSup       []float64
	ZInf       []float64
	// ConfidenceLower/Upper are populated by SDDP only; nil otherwise.
	ConfidenceLower []float64
	ConfidenceUpper []float64
	Converged       bool
	CutsByNode      map[NodeKey][]Cut
}
