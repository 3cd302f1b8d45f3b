// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"github.com/rjmalves/hydrosched/inp"
	"github.com/rjmalves/hydrosched/solver"
)

// Engine is the common entry point of all three solution engines,
// dispatched on a tagged variant (Config.Method) rather than a class
// hierarchy, per design note §9.
type Engine interface {
	Run(cfg *inp.Config, fleet *inp.Fleet, sv solver.Solver) (*Result, error)
}

// NewEngine returns the engine selected by cfg.Method
func NewEngine(cfg *inp.Config) Engine {
	switch cfg.Method {
	case inp.SingleLP:
		return &SingleLPEngine{}
	case inp.DDP:
		return &DDPEngine{}
	case inp.SDDP:
		return &SDDPEngine{}
	}
	return nil
}
