// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cut01_equal(tst *testing.T) {

	chk.PrintTitle("cut01")

	a := Cut{Slope: []float64{1, 2}, Intercept: 3}
	b := Cut{Slope: []float64{1 + 1e-19, 2}, Intercept: 3}
	c := Cut{Slope: []float64{1, 2.1}, Intercept: 3}
	if !a.Equal(b) {
		tst.Errorf("a and b should be equal within tolerance")
	}
	if a.Equal(c) {
		tst.Errorf("a and c should not be equal")
	}
}

func Test_cut02_appendUnique(tst *testing.T) {

	chk.PrintTitle("cut02")

	cuts := []Cut{{Slope: []float64{1}, Intercept: 1}}
	cuts = appendUnique(cuts, Cut{Slope: []float64{1}, Intercept: 1})
	chk.IntAssert(len(cuts), 1)
	cuts = appendUnique(cuts, Cut{Slope: []float64{2}, Intercept: 1})
	chk.IntAssert(len(cuts), 2)
}

func Test_cut03_averageCut(tst *testing.T) {

	chk.PrintTitle("cut03")

	cuts := []Cut{
		{Slope: []float64{1, 2}, Intercept: 10, Provenance: 100},
		{Slope: []float64{3, 4}, Intercept: 20, Provenance: 200},
	}
	avg := averageCut(cuts)
	chk.Vector(tst, "slope", 1e-12, avg.Slope, []float64{2, 3})
	chk.Scalar(tst, "intercept", 1e-12, avg.Intercept, 15)
	chk.Scalar(tst, "provenance", 1e-12, avg.Provenance, 150)
}

func Test_cut04_aggregateChildCuts(tst *testing.T) {

	chk.PrintTitle("cut04")

	children := []TreeNode{
		{Cuts: []Cut{{Slope: []float64{1}, Intercept: 1}, {Slope: []float64{5}, Intercept: 5}}},
		{Cuts: []Cut{{Slope: []float64{3}, Intercept: 3}, {Slope: []float64{7}, Intercept: 7}}},
	}
	out := aggregateChildCuts(children)
	chk.IntAssert(len(out), 2)
	chk.Scalar(tst, "slope[0][0]", 1e-12, out[0].Slope[0], 2)
	chk.Scalar(tst, "slope[1][0]", 1e-12, out[1].Slope[0], 6)

	if aggregateChildCuts(nil) != nil {
		tst.Errorf("aggregateChildCuts(nil) should be nil")
	}
}

func Test_cut05_combineCut(tst *testing.T) {

	chk.PrintTitle("cut05")

	a := Cut{Slope: []float64{0}, Intercept: 0, Provenance: 0}
	b := Cut{Slope: []float64{10}, Intercept: 20, Provenance: 30}
	out := combineCut(a, b, 0.25)
	chk.Scalar(tst, "slope", 1e-12, out.Slope[0], 2.5)
	chk.Scalar(tst, "intercept", 1e-12, out.Intercept, 5)
	chk.Scalar(tst, "provenance", 1e-12, out.Provenance, 7.5)
}
