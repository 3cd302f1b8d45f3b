// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// ReadFleetTables reads a fleet from a directory of fixed-width text
// tables (§6: "fixed-width text tables are acceptable but not
// normative"). It expects four files: hydros.dat, thermals.dat,
// demand.dat and inflows.dat, one whitespace-delimited record per line,
// '#' starting a comment line.
func ReadFleetTables(dir string) (*Fleet, error) {
	hydros, err := readHydros(dir + "/hydros.dat")
	if err != nil {
		return nil, err
	}
	thermals, err := readThermals(dir + "/thermals.dat")
	if err != nil {
		return nil, err
	}
	demand, err := readDemand(dir + "/demand.dat")
	if err != nil {
		return nil, err
	}
	inflows, err := readInflows(dir+"/inflows.dat", len(hydros))
	if err != nil {
		return nil, err
	}
	return &Fleet{Hydros: hydros, Thermals: thermals, Demand: demand, Inflows: inflows}, nil
}

func tableLines(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("cannot open table %q: %v", path, err)
	}
	defer f.Close()
	var rows [][]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, strings.Fields(line))
	}
	if err := sc.Err(); err != nil {
		return nil, chk.Err("error reading table %q: %v", path, err)
	}
	return rows, nil
}

func atoi(path string, row int, field string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, chk.Err("%s: row %d: cannot parse int %q", path, row, field)
	}
	return v, nil
}

func atof(path string, row int, field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, chk.Err("%s: row %d: cannot parse float %q", path, row, field)
	}
	return v, nil
}

// readHydros reads "id name initial_storage min_storage max_storage productivity max_turbine"
func readHydros(path string) ([]Hydro, error) {
	rows, err := tableLines(path)
	if err != nil {
		return nil, err
	}
	out := make([]Hydro, 0, len(rows))
	for i, r := range rows {
		if len(r) != 7 {
			return nil, chk.Err("%s: row %d: expected 7 fields, got %d", path, i, len(r))
		}
		id, err := atoi(path, i, r[0])
		if err != nil {
			return nil, err
		}
		vals := make([]float64, 5)
		for k, f := range r[2:] {
			v, err := atof(path, i, f)
			if err != nil {
				return nil, err
			}
			vals[k] = v
		}
		out = append(out, Hydro{Id: id, Name: r[1], InitialStorage: vals[0], MinStorage: vals[1], MaxStorage: vals[2], Productivity: vals[3], MaxTurbine: vals[4]})
	}
	return out, nil
}

// readThermals reads "id name capacity marginal_cost"
func readThermals(path string) ([]Thermal, error) {
	rows, err := tableLines(path)
	if err != nil {
		return nil, err
	}
	out := make([]Thermal, 0, len(rows))
	for i, r := range rows {
		if len(r) != 4 {
			return nil, chk.Err("%s: row %d: expected 4 fields, got %d", path, i, len(r))
		}
		id, err := atoi(path, i, r[0])
		if err != nil {
			return nil, err
		}
		cap, err := atof(path, i, r[2])
		if err != nil {
			return nil, err
		}
		cost, err := atof(path, i, r[3])
		if err != nil {
			return nil, err
		}
		out = append(out, Thermal{Id: id, Name: r[1], Capacity: cap, MarginalCost: cost})
	}
	return out, nil
}

// readDemand reads one value per line: "stage demand"
func readDemand(path string) ([]float64, error) {
	rows, err := tableLines(path)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, r := range rows {
		if len(r) != 2 {
			return nil, chk.Err("%s: row %d: expected 2 fields, got %d", path, i, len(r))
		}
		v, err := atof(path, i, r[1])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// readInflows reads "hydro_id stage candidate_0 candidate_1 ..."
func readInflows(path string, numHydros int) (InflowTable, error) {
	rows, err := tableLines(path)
	if err != nil {
		return InflowTable{}, err
	}
	table := InflowTable{Values: make([][][]float64, numHydros)}
	for i, r := range rows {
		if len(r) < 3 {
			return InflowTable{}, chk.Err("%s: row %d: expected at least 3 fields, got %d", path, i, len(r))
		}
		h, err := atoi(path, i, r[0])
		if err != nil {
			return InflowTable{}, err
		}
		s, err := atoi(path, i, r[1])
		if err != nil {
			return InflowTable{}, err
		}
		if h < 0 || h >= numHydros {
			return InflowTable{}, chk.Err("%s: row %d: hydro index %d out of range", path, i, h)
		}
		cand := make([]float64, len(r)-2)
		for k, f := range r[2:] {
			v, err := atof(path, i, f)
			if err != nil {
				return InflowTable{}, err
			}
			cand[k] = v
		}
		for len(table.Values[h]) <= s {
			table.Values[h] = append(table.Values[h], nil)
		}
		table.Values[h][s] = cand
	}
	return table, nil
}
