// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package viz exports a Result as CSV tables, gosl/plt figures, and an
// lvlath graph of the inflow tree/comb topology, the analogue of the
// teacher's out/plotting.go and out/topology.go for this domain.
package viz

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rjmalves/hydrosched/sched"
)

// WriteConvergenceCSV writes one row per convergence-series entry:
// iteration, z_sup, z_inf
func WriteConvergenceCSV(w io.Writer, res *sched.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"iteration", "z_sup", "z_inf"}); err != nil {
		return err
	}
	for i := range res.ZSup {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(res.ZSup[i], 'f', 6, 64),
			strconv.FormatFloat(res.ZInf[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteScenarioCSV writes one row per (scenario, stage) pair
func WriteScenarioCSV(w io.Writer, res *sched.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"trajectory", "stage", "deficit", "spillage", "cmo"}); err != nil {
		return err
	}
	for _, s := range res.Scenarios {
		for stage := range s.Deficit {
			row := []string{
				strconv.Itoa(s.Trajectory),
				strconv.Itoa(stage),
				strconv.FormatFloat(s.Deficit[stage], 'f', 6, 64),
				strconv.FormatFloat(s.Spillage[stage], 'f', 6, 64),
				strconv.FormatFloat(s.CMO[stage], 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
