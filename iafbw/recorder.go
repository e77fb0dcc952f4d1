// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// Recorder records a trace of neuron variables over time into an etable,
// one row per Record call, with a Time column (msec) followed by one
// column per variable.
type Recorder struct {

	// neuron variables recorded, from NeuronVars
	Vars []string

	// the trace table
	Table *etable.Table `view:"no-inline"`
}

// NewRecorder returns a recorder for given neuron variables,
// or all NeuronVars if none are given.
func NewRecorder(name string, vars ...string) (*Recorder, error) {
	if len(vars) == 0 {
		vars = NeuronVars
	}
	var tst Neuron
	for _, vn := range vars {
		if _, err := tst.VarByName(vn); err != nil {
			return nil, err
		}
	}
	rc := &Recorder{Vars: append([]string(nil), vars...)}
	rc.Table = &etable.Table{}
	rc.ConfigTable(name)
	return rc, nil
}

// ConfigTable configures the table columns
func (rc *Recorder) ConfigTable(name string) {
	dt := rc.Table
	dt.SetMetaData("name", name)
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{"Time", etensor.FLOAT64, nil, nil},
	}
	for _, vn := range rc.Vars {
		sch = append(sch, etable.Column{vn, etensor.FLOAT64, nil, nil})
	}
	dt.SetFromSchema(sch, 0)
}

// Record adds a row with the current state of nrn at time t (msec)
func (rc *Recorder) Record(t float32, nrn *Neuron) error {
	dt := rc.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Time", row, float64(t))
	for _, vn := range rc.Vars {
		v, err := nrn.VarByName(vn)
		if err != nil {
			return err
		}
		dt.SetCellFloat(vn, row, float64(v))
	}
	return nil
}

// Rows returns the number of recorded rows
func (rc *Recorder) Rows() int {
	return rc.Table.Rows
}

// Value returns the recorded value of variable varNm at given row
func (rc *Recorder) Value(varNm string, row int) float32 {
	return float32(rc.Table.CellFloat(varNm, row))
}

// Reset removes all recorded rows
func (rc *Recorder) Reset() {
	rc.Table.SetNumRows(0)
}

// VarRange returns the min and max recorded values of given variable
func (rc *Recorder) VarRange(varNm string) (minmax.F32, error) {
	rng := minmax.F32{}
	if varNm != "Time" && !rc.hasVar(varNm) {
		return rng, fmt.Errorf("iafbw.Recorder: variable named: %s not recorded", varNm)
	}
	if rc.Table.Rows == 0 {
		return rng, nil
	}
	rng.SetInfinity()
	for row := 0; row < rc.Table.Rows; row++ {
		rng.FitValInRange(rc.Value(varNm, row))
	}
	return rng, nil
}

func (rc *Recorder) hasVar(varNm string) bool {
	for _, vn := range rc.Vars {
		if vn == varNm {
			return true
		}
	}
	return false
}

// WriteCSV writes the trace as comma-separated values with a header row
func (rc *Recorder) WriteCSV(w io.Writer) error {
	return rc.Table.WriteCSV(w, etable.Comma, etable.Headers)
}
