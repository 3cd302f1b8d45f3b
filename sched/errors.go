// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import "github.com/rjmalves/hydrosched/inp"

// newSolverError wraps a stage-LP failure as an inp.FatalError with
// Kind: inp.KindSolver (§7), tagged with the stage/node/iteration where
// the solve was attempted.
func newSolverError(stage, node, iteration int, format string, args ...interface{}) *inp.FatalError {
	return inp.NewFatalError(inp.KindSolver, stage, node, iteration, format, args...)
}
