// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sched implements the hard core shared by all three solution
// engines: the inflow tree/comb, the stage LP template, the cut data
// structure, and the Single-LP/DDP/SDDP engines themselves.
package sched

import "math"

// cutTolerance is the per-component tolerance used for cut equality
// (§6): two cuts within this tolerance on every slope
// component and on the intercept are the same cut.
const cutTolerance = 1e-18

// Cut is a linear lower bound of the future-cost function:
// alpha >= slope·vf + intercept. Provenance is the total cost of the
// node the cut was generated at; it is used only to order cuts (the
// risk-averse tail selection in SDDP) and plays no role in equality.
type Cut struct {
	Slope      []float64
	Intercept  float64
	Provenance float64
}

// Equal reports tolerance-based equality on (slope, intercept)
func (c Cut) Equal(o Cut) bool {
	if len(c.Slope) != len(o.Slope) {
		return false
	}
	if math.Abs(c.Intercept-o.Intercept) > cutTolerance {
		return false
	}
	for i := range c.Slope {
		if math.Abs(c.Slope[i]-o.Slope[i]) > cutTolerance {
			return false
		}
	}
	return true
}

// appendUnique appends c to cuts unless a tolerance-duplicate is
// already present, preventing pathological growth of the cut pool
// (design note §9).
func appendUnique(cuts []Cut, c Cut) []Cut {
	for _, e := range cuts {
		if e.Equal(c) {
			return cuts
		}
	}
	return append(cuts, c)
}

// averageCut returns the arithmetic mean of a non-empty slice of cuts,
// one slope component at a time, as used for DDP's sibling-cut
// aggregation (§4.6) and as the first step of SDDP's opening-cut
// aggregation (§4.7).
func averageCut(cuts []Cut) Cut {
	h := len(cuts[0].Slope)
	avg := Cut{Slope: make([]float64, h)}
	for _, c := range cuts {
		for i, s := range c.Slope {
			avg.Slope[i] += s
		}
		avg.Intercept += c.Intercept
		avg.Provenance += c.Provenance
	}
	n := float64(len(cuts))
	for i := range avg.Slope {
		avg.Slope[i] /= n
	}
	avg.Intercept /= n
	avg.Provenance /= n
	return avg
}

// aggregateChildCuts averages a node's children's cuts position by
// position: the cut at index k of the result is the arithmetic mean of
// the cut at index k across every child (§4.6). It assumes every child
// carries the same number of cuts in the same order, which holds by
// construction since siblings are built and resolved together. Returns
// nil for a childless slice (a last-stage node).
func aggregateChildCuts(children []TreeNode) []Cut {
	if len(children) == 0 {
		return nil
	}
	nCuts := len(children[0].Cuts)
	out := make([]Cut, nCuts)
	group := make([]Cut, len(children))
	for k := 0; k < nCuts; k++ {
		for i, child := range children {
			group[i] = child.Cuts[k]
		}
		out[k] = averageCut(group)
	}
	return out
}

// combineCut returns (1-weight)*a + weight*b, component-wise, the
// convex combination SDDP's risk-averse aggregation (§4.7 step 3) uses
// to blend the mean cut with the tail-mean cut.
func combineCut(a, b Cut, weight float64) Cut {
	h := len(a.Slope)
	out := Cut{Slope: make([]float64, h)}
	for i := range out.Slope {
		out.Slope[i] = (1-weight)*a.Slope[i] + weight*b.Slope[i]
	}
	out.Intercept = (1-weight)*a.Intercept + weight*b.Intercept
	out.Provenance = (1-weight)*a.Provenance + weight*b.Provenance
	return out
}
