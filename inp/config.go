// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a study (.json) file:
// the run configuration, the generator fleet and the inflow scenarios.
package inp

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cpmech/gosl/chk"
)

// Method selects one of the three solution engines
type Method int

// methods
const (
	SingleLP Method = iota
	DDP
	SDDP
)

func (m Method) String() string {
	switch m {
	case SingleLP:
		return "singlelp"
	case DDP:
		return "ddp"
	case SDDP:
		return "sddp"
	}
	return "unknown"
}

func parseMethod(s string) (Method, error) {
	switch s {
	case "singlelp", "single-lp", "single_lp":
		return SingleLP, nil
	case "ddp":
		return DDP, nil
	case "sddp":
		return SDDP, nil
	}
	return 0, NewFatalError(KindInput, -1, -1, -1, "unknown method %q; must be one of singlelp, ddp, sddp", s)
}

// Config holds the run configuration for a study
type Config struct {

	// identification
	StudyName  string `json:"study_name"`
	MethodName string `json:"method"`

	// tree / comb shape
	StageCount      int `json:"stage_count"`
	BranchCount     int `json:"branch_count"`
	TrajectoryCount int `json:"trajectory_count"`

	// risk-averse cut aggregation (SDDP)
	TailFraction float64 `json:"tail_fraction"`
	TailWeight   float64 `json:"tail_weight"`
	ConfidenceZ  float64 `json:"confidence_z"`

	// randomness and repetition
	Seed             int64 `json:"seed"`
	PostStudyRepeats int   `json:"post_study_repeats"`
	ResampleOpenings bool  `json:"resample_openings"`

	// iteration control
	MinIter int `json:"min_iter"`
	MaxIter int `json:"max_iter"`

	// cost
	DeficitCost float64 `json:"deficit_cost"`

	// open-question flag (SPEC_FULL.md §9): emit a degenerate one-entry
	// convergence series for Single-LP instead of an empty one
	EmitSingleLPDegenerateSeries bool `json:"emit_singlelp_degenerate_series"`

	// derived
	Method Method `json:"-"`
}

// SetDefault sets default values for fields the study file may omit
func (c *Config) SetDefault() {
	if c.MinIter == 0 {
		c.MinIter = 1
	}
	if c.MaxIter == 0 {
		c.MaxIter = 50
	}
	if c.DeficitCost == 0 {
		c.DeficitCost = 1000
	}
	if c.ConfidenceZ == 0 {
		c.ConfidenceZ = 1.96
	}
}

// RiskAverse reports whether the SDDP tail-weighting cut aggregation is
// active, per the invariant risk_averse ⇔ tail_fraction>0 ∧ tail_weight>0
func (c *Config) RiskAverse() bool {
	return c.TailFraction > 0 && c.TailWeight > 0
}

// PostProcess resolves and validates fields computed from the raw JSON;
// it must be called once after decoding and before the config is used
func (c *Config) PostProcess() error {
	m, err := parseMethod(c.MethodName)
	if err != nil {
		return err
	}
	c.Method = m
	if c.StageCount < 1 {
		return NewFatalError(KindInput, -1, -1, -1, "stage_count must be >= 1, got %d", c.StageCount)
	}
	if c.BranchCount < 1 {
		return NewFatalError(KindInput, -1, -1, -1, "branch_count must be >= 1, got %d", c.BranchCount)
	}
	if c.TrajectoryCount < 1 {
		return NewFatalError(KindInput, -1, -1, -1, "trajectory_count must be >= 1, got %d", c.TrajectoryCount)
	}
	if c.TailFraction < 0 || c.TailFraction > 1 {
		return NewFatalError(KindInput, -1, -1, -1, "tail_fraction must be in [0,1], got %g", c.TailFraction)
	}
	if c.TailWeight < 0 || c.TailWeight > 1 {
		return NewFatalError(KindInput, -1, -1, -1, "tail_weight must be in [0,1], got %g", c.TailWeight)
	}
	if c.ConfidenceZ < 0 {
		return NewFatalError(KindInput, -1, -1, -1, "confidence_z must be >= 0, got %g", c.ConfidenceZ)
	}
	if c.MinIter < 1 || c.MinIter > c.MaxIter {
		return NewFatalError(KindInput, -1, -1, -1, "require 1 <= min_iter (%d) <= max_iter (%d)", c.MinIter, c.MaxIter)
	}
	if c.DeficitCost <= 0 {
		return NewFatalError(KindInput, -1, -1, -1, "deficit_cost must be > 0, got %g", c.DeficitCost)
	}
	if c.StudyName == "" {
		c.StudyName = "study"
	}
	return nil
}

// LoadConfig reads a study configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("cannot open config file %q: %v", path, err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// DecodeConfig reads a study configuration from r, applies defaults and
// validates it
func DecodeConfig(r io.Reader) (*Config, error) {
	c := new(Config)
	if err := json.NewDecoder(r).Decode(c); err != nil {
		return nil, chk.Err("cannot decode config: %v", err)
	}
	c.SetDefault()
	if err := c.PostProcess(); err != nil {
		return nil, err
	}
	return c, nil
}
