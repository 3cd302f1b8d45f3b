// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_inflow01_validate_uniform_candidate_counts(tst *testing.T) {

	chk.PrintTitle("inflow01")

	t := InflowTable{Values: [][][]float64{
		{{10}, {5, 15}},
		{{20}, {6, 16}},
	}}
	if err := t.Validate(2, 2, 2); err != nil {
		tst.Errorf("expected valid table, got: %v", err)
	}
}

func Test_inflow02_rejects_nonuniform_candidate_counts(tst *testing.T) {

	chk.PrintTitle("inflow02")

	t := InflowTable{Values: [][][]float64{
		{{10}, {5, 15}},
		{{20}, {6, 16, 26}},
	}}
	if err := t.Validate(2, 2, 2); err == nil {
		tst.Errorf("expected an error: hydro 1 stage 1 has 3 candidates, hydro 0 has 2")
	}
}

func Test_inflow03_rejects_insufficient_branch_candidates(tst *testing.T) {

	chk.PrintTitle("inflow03")

	t := InflowTable{Values: [][][]float64{
		{{10}, {5}},
	}}
	if err := t.Validate(1, 2, 2); err == nil {
		tst.Errorf("expected an error: stage 1 needs >= branch_count(2) candidates, has 1")
	}
}

func Test_inflow04_truncate(tst *testing.T) {

	chk.PrintTitle("inflow04")

	t := InflowTable{Values: [][][]float64{
		{{10, 99}, {5, 15, 25}, {1, 2, 3, 4}},
	}}
	out := t.Truncate(2, 2)
	chk.IntAssert(len(out.Values[0]), 2)
	chk.Vector(tst, "stage 0 kept only the first candidate", 1e-12, out.Values[0][0], []float64{10})
	chk.Vector(tst, "stage 1 kept only the first branch_count candidates", 1e-12, out.Values[0][1], []float64{5, 15})
}

func Test_inflow05_numHydros_numStages(tst *testing.T) {

	chk.PrintTitle("inflow05")

	t := InflowTable{Values: [][][]float64{
		{{10}, {5, 15}},
		{{20}, {6, 16}},
	}}
	chk.IntAssert(t.NumHydros(), 2)
	chk.IntAssert(t.NumStages(), 2)
	chk.Vector(tst, "candidates(0,1)", 1e-12, t.Candidates(0, 1), []float64{5, 15})
}
