// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// Hydro holds the static data of one hydro plant
type Hydro struct {
	Id             int     `json:"id"`
	Name           string  `json:"name"`
	InitialStorage float64 `json:"initial_storage"`
	MinStorage     float64 `json:"min_storage"`
	MaxStorage     float64 `json:"max_storage"`
	Productivity   float64 `json:"productivity"`
	MaxTurbine     float64 `json:"max_turbine"`
}

// Thermal holds the static data of one thermal unit
type Thermal struct {
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	Capacity     float64 `json:"capacity"`
	MarginalCost float64 `json:"marginal_cost"`
}

// Fleet holds the full static input: generators, demand and inflows
type Fleet struct {
	Hydros   []Hydro     `json:"hydros"`
	Thermals []Thermal   `json:"thermals"`
	Demand   []float64   `json:"demand"`
	Inflows  InflowTable `json:"inflows"`
}

// Validate checks the data-model invariants of §3: the per-hydro and
// per-thermal bounds, the demand vector's length and sign, and the
// inflow table's shape (the table reader checks none of these)
func (f *Fleet) Validate(cfg *Config) error {
	if len(f.Hydros) == 0 {
		return chk.Err("fleet must declare at least one hydro plant")
	}
	for _, h := range f.Hydros {
		if h.MaxStorage < h.MinStorage {
			return chk.Err("hydro %q: max_storage (%g) < min_storage (%g)", h.Name, h.MaxStorage, h.MinStorage)
		}
		if h.Productivity <= 0 {
			return chk.Err("hydro %q: productivity must be > 0, got %g", h.Name, h.Productivity)
		}
		if h.MaxTurbine <= 0 {
			return chk.Err("hydro %q: max_turbine must be > 0, got %g", h.Name, h.MaxTurbine)
		}
		if h.InitialStorage < h.MinStorage || h.InitialStorage > h.MaxStorage {
			return chk.Err("hydro %q: initial_storage (%g) outside [min_storage,max_storage]=[%g,%g]", h.Name, h.InitialStorage, h.MinStorage, h.MaxStorage)
		}
	}
	for _, t := range f.Thermals {
		if t.Capacity < 0 {
			return chk.Err("thermal %q: capacity must be >= 0, got %g", t.Name, t.Capacity)
		}
		if t.MarginalCost < 0 {
			return chk.Err("thermal %q: marginal_cost must be >= 0, got %g", t.Name, t.MarginalCost)
		}
	}
	if len(f.Demand) < cfg.StageCount {
		return chk.Err("demand vector has %d stages, need %d", len(f.Demand), cfg.StageCount)
	}
	for s, d := range f.Demand {
		if d < 0 {
			return chk.Err("demand at stage %d is negative (%g)", s, d)
		}
	}
	return f.Inflows.Validate(len(f.Hydros), cfg.StageCount, cfg.BranchCount)
}
