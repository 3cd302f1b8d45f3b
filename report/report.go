// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package report writes the text reports handed to a user at the end of
// a study: the convergence table and the per-scenario detail tables,
// grounded in the teacher's out package's table-writing conventions but
// without any mesh/result-point machinery, since there is none here.
package report

import (
	"io"

	gio "github.com/cpmech/gosl/io"
	"github.com/rjmalves/hydrosched/sched"
)

// WriteConvergence writes the iteration-by-iteration z_sup/z_inf (and,
// for SDDP, confidence bound) table, one row per series entry. The last
// row is labeled "final": for DDP and SDDP it is the final simulation
// pair; for a Single-LP degenerate series it is the single LP optimum.
func WriteConvergence(w io.Writer, res *sched.Result) {
	if res.ConfidenceLower != nil {
		gio.Ff(w, "%6s%18s%18s%18s%18s\n", "iter", "z_sup", "z_inf", "ci_lower", "ci_upper")
		for i := range res.ZSup {
			label := itoa(i)
			if i == len(res.ZSup)-1 {
				label = "final"
			}
			gio.Ff(w, "%6s%18.6f%18.6f%18.6f%18.6f\n", label, res.ZSup[i], res.ZInf[i], res.ConfidenceLower[i], res.ConfidenceUpper[i])
		}
		return
	}
	gio.Ff(w, "%6s%18s%18s\n", "iter", "z_sup", "z_inf")
	for i := range res.ZSup {
		label := itoa(i)
		if i == len(res.ZSup)-1 {
			label = "final"
		}
		gio.Ff(w, "%6s%18.6f%18.6f\n", label, res.ZSup[i], res.ZInf[i])
	}
}

// WriteScenarios writes one detail table per scenario: total cost and
// per-stage deficit, spillage and CMO.
func WriteScenarios(w io.Writer, res *sched.Result) {
	for _, s := range res.Scenarios {
		gio.Ff(w, "\nscenario %d  total_cost=%.6f\n", s.Trajectory, s.TotalCost)
		gio.Ff(w, "%8s%18s%18s%18s\n", "stage", "deficit", "spillage", "cmo")
		for stage := range s.Deficit {
			gio.Ff(w, "%8d%18.6f%18.6f%18.6f\n", stage, s.Deficit[stage], s.Spillage[stage], s.CMO[stage])
		}
	}
}

// WriteSummary writes the converged/not-converged banner, mirroring the
// teacher's io.PfWhite/io.Pf header style in main.go
func WriteSummary(w io.Writer, res *sched.Result) {
	gio.Ff(w, "study: %s\n", res.Config.StudyName)
	gio.Ff(w, "method: %s\n", res.Config.Method)
	gio.Ff(w, "converged: %v\n", res.Converged)
	gio.Ff(w, "iterations: %d\n", len(res.ZSup)-1)
}

func itoa(i int) string { return gio.Sf("%d", i) }
