// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"github.com/cpmech/gosl/plt"
	"github.com/rjmalves/hydrosched/sched"
)

// PlotConvergence draws z_sup and z_inf against iteration number and
// saves the figure, following the teacher's plt.Plot/Gll/SaveD sequence
// (mreten/plot.go, out/plotting.go).
func PlotConvergence(dirout, fname string, res *sched.Result) {
	n := len(res.ZSup)
	iters := make([]float64, n)
	for i := range iters {
		iters[i] = float64(i)
	}
	plt.Plot(iters, res.ZSup, (&plt.Fmt{C: "r", Ls: "-", M: "o", L: "z_sup"}).GetArgs(""))
	plt.Plot(iters, res.ZInf, (&plt.Fmt{C: "b", Ls: "-", M: "s", L: "z_inf"}).GetArgs(""))
	if res.ConfidenceLower != nil {
		plt.Plot(iters, res.ConfidenceLower, (&plt.Fmt{C: "gray", Ls: "--", L: "ci_lower"}).GetArgs(""))
		plt.Plot(iters, res.ConfidenceUpper, (&plt.Fmt{C: "gray", Ls: "--", L: "ci_upper"}).GetArgs(""))
	}
	plt.Gll("iteration", "cost", "")
	plt.Title(res.Config.StudyName+" convergence", "")
	if fname != "" {
		plt.SaveD(dirout, fname)
	}
}

// PlotScenarioCosts draws total cost per scenario, one point per
// trajectory.
func PlotScenarioCosts(dirout, fname string, res *sched.Result) {
	x := make([]float64, len(res.Scenarios))
	y := make([]float64, len(res.Scenarios))
	for i, s := range res.Scenarios {
		x[i] = float64(s.Trajectory)
		y[i] = s.TotalCost
	}
	plt.Plot(x, y, (&plt.Fmt{C: "g", Ls: "None", M: ".", L: "total_cost"}).GetArgs(""))
	plt.Gll("trajectory", "total cost", "")
	plt.Title(res.Config.StudyName+" scenario costs", "")
	if fname != "" {
		plt.SaveD(dirout, fname)
	}
}
