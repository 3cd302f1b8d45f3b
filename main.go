// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
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

	// catch errors
	exitCode := 0
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			exitCode = 1
		}
		os.Exit(exitCode)
	}()

	// read input parameters
	studyfn, _ := io.ArgToFilename(0, "study.json", ".json", true)
	datadir := io.ArgToString(1, ".")
	outdir := io.ArgToString(2, "output")
	verbose := io.ArgToBool(3, true)

	if verbose {
		io.PfWhite("\nhydrosched -- stochastic hydrothermal scheduling\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"study configuration", "studyfn", studyfn,
			"fleet data directory", "datadir", datadir,
			"output directory", "outdir", outdir,
			"show messages", "verbose", verbose,
		))
	}

	// load study
	cfg, err := inp.LoadConfig(studyfn)
	if err != nil {
		chk.Panic("%v", err)
	}
	fleet, err := inp.ReadFleetTables(datadir)
	if err != nil {
		chk.Panic("%v", err)
	}
	if err := fleet.Validate(cfg); err != nil {
		chk.Panic("%v", err)
	}

	// run
	engine := sched.NewEngine(cfg)
	sv := &solver.Simplex{}
	res, err := engine.Run(cfg, fleet, sv)
	if err != nil {
		chk.Panic("%v", err)
	}

	// report
	studyOutdir := filepath.Join(outdir, cfg.StudyName, strconv.FormatInt(time.Now().Unix(), 10))
	if err := os.MkdirAll(studyOutdir, 0755); err != nil {
		chk.Panic("cannot create output directory %q: %v", studyOutdir, err)
	}
	writeOutputs(studyOutdir, res)

	if verbose {
		report.WriteSummary(os.Stdout, res)
	}
}

func writeOutputs(dir string, res *sched.Result) {
	convFile, err := os.Create(filepath.Join(dir, "convergence.txt"))
	if err != nil {
		chk.Panic("%v", err)
	}
	defer convFile.Close()
	report.WriteConvergence(convFile, res)

	scenFile, err := os.Create(filepath.Join(dir, "scenarios.txt"))
	if err != nil {
		chk.Panic("%v", err)
	}
	defer scenFile.Close()
	report.WriteScenarios(scenFile, res)

	convCSV, err := os.Create(filepath.Join(dir, "convergence.csv"))
	if err != nil {
		chk.Panic("%v", err)
	}
	defer convCSV.Close()
	if err := viz.WriteConvergenceCSV(convCSV, res); err != nil {
		chk.Panic("%v", err)
	}

	scenCSV, err := os.Create(filepath.Join(dir, "scenarios.csv"))
	if err != nil {
		chk.Panic("%v", err)
	}
	defer scenCSV.Close()
	if err := viz.WriteScenarioCSV(scenCSV, res); err != nil {
		chk.Panic("%v", err)
	}

	viz.PlotConvergence(dir, "convergence.png", res)
	viz.PlotScenarioCosts(dir, "scenario_costs.png", res)
}
