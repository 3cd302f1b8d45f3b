// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/io"

// ErrorKind classifies a fatal error per §7
type ErrorKind int

// error kinds
const (
	KindInput ErrorKind = iota
	KindSampling
	KindSolver
)

func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindSampling:
		return "sampling"
	case KindSolver:
		return "solver"
	}
	return "unknown"
}

// FatalError surfaces the originating stage/node/iteration of an
// unrecoverable error, per §7: "Every fatal error surfaces the
// originating stage/node/iteration for diagnosability." A field set to
// -1 means the kind of error has no such coordinate.
type FatalError struct {
	Kind      ErrorKind
	Stage     int
	Node      int
	Iteration int
	Message   string
}

func (e *FatalError) Error() string {
	return io.Sf("%s error at stage=%d node=%d iteration=%d: %s", e.Kind, e.Stage, e.Node, e.Iteration, e.Message)
}

// NewFatalError builds a FatalError with a message formatted by io.Sf;
// LoadConfig/ReadFleetTables build their plain errors with chk.Err
func NewFatalError(kind ErrorKind, stage, node, iteration int, format string, args ...interface{}) *FatalError {
	return &FatalError{Kind: kind, Stage: stage, Node: node, Iteration: iteration, Message: io.Sf(format, args...)}
}
