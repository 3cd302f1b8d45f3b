// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// command hydrosched-multi runs every study configuration in a
// directory against a common fleet and writes one report per study plus
// a final comparison table, for comparing Single-LP/DDP/SDDP results
// side by side.
package main

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/rjmalves/hydrosched/inp"
	"github.com/rjmalves/hydrosched/report"
	"github.com/rjmalves/hydrosched/sched"
	"github.com/rjmalves/hydrosched/solver"
	"github.com/rjmalves/hydrosched/viz"
)

func main() {
	exitCode := 0
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			exitCode = 1
		}
		os.Exit(exitCode)
	}()

	studiesDir := io.ArgToString(0, ".")
	datadir := io.ArgToString(1, ".")
	outdir := io.ArgToString(2, "output")
	verbose := io.ArgToBool(3, true)

	if verbose {
		io.PfWhite("\nhydrosched-multi -- compare Single-LP/DDP/SDDP studies\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"studies directory", "studiesDir", studiesDir,
			"fleet data directory", "datadir", datadir,
			"output directory", "outdir", outdir,
			"show messages", "verbose", verbose,
		))
	}

	studyFiles, err := filepath.Glob(filepath.Join(studiesDir, "*.json"))
	if err != nil {
		chk.Panic("cannot list study files in %q: %v", studiesDir, err)
	}
	if len(studyFiles) == 0 {
		chk.Panic("no study configuration files (*.json) found in %q", studiesDir)
	}

	fleet, err := inp.ReadFleetTables(datadir)
	if err != nil {
		chk.Panic("%v", err)
	}

	multiDir := filepath.Join(outdir, "multi", strconv.FormatInt(time.Now().Unix(), 10))
	if err := os.MkdirAll(multiDir, 0755); err != nil {
		chk.Panic("cannot create output directory %q: %v", multiDir, err)
	}

	summaryPath := filepath.Join(multiDir, "summary.txt")
	summary, err := os.Create(summaryPath)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer summary.Close()
	io.Ff(summary, "%24s%12s%18s%18s%12s\n", "study", "method", "z_sup", "z_inf", "converged")

	sv := &solver.Simplex{}
	for _, studyfn := range studyFiles {
		cfg, err := inp.LoadConfig(studyfn)
		if err != nil {
			chk.Panic("%q: %v", studyfn, err)
		}
		if err := fleet.Validate(cfg); err != nil {
			chk.Panic("%q: %v", studyfn, err)
		}

		if verbose {
			io.Pf("running study %q (%s)\n", cfg.StudyName, cfg.Method)
		}

		engine := sched.NewEngine(cfg)
		res, err := engine.Run(cfg, fleet, sv)
		if err != nil {
			chk.Panic("%q: %v", studyfn, err)
		}

		studyDir := filepath.Join(multiDir, cfg.StudyName)
		if err := os.MkdirAll(studyDir, 0755); err != nil {
			chk.Panic("%v", err)
		}
		writeStudyOutputs(studyDir, res)

		// a Single-LP study without the degenerate series has no entries
		zsup, zinf := math.NaN(), math.NaN()
		if last := len(res.ZSup) - 1; last >= 0 {
			zsup, zinf = res.ZSup[last], res.ZInf[last]
		}
		io.Ff(summary, "%24s%12s%18.6f%18.6f%12v\n", cfg.StudyName, cfg.Method, zsup, zinf, res.Converged)
	}

	if verbose {
		io.Pf("\nwrote comparison summary to %q\n", summaryPath)
	}
}

func writeStudyOutputs(dir string, res *sched.Result) {
	convFile, err := os.Create(filepath.Join(dir, "convergence.txt"))
	if err != nil {
		chk.Panic("%v", err)
	}
	defer convFile.Close()
	report.WriteConvergence(convFile, res)

	convCSV, err := os.Create(filepath.Join(dir, "convergence.csv"))
	if err != nil {
		chk.Panic("%v", err)
	}
	defer convCSV.Close()
	if err := viz.WriteConvergenceCSV(convCSV, res); err != nil {
		chk.Panic("%v", err)
	}

	viz.PlotConvergence(dir, "convergence.png", res)
}
