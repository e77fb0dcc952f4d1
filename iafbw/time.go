// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

// iafbw.Time contains the timing state for running a simulation
type Time struct {

	// accumulated amount of time the simulation has been running,
	// in simulation time (not real world time), in msec.
	Time float32

	// step counter: number of Cycle updates since the last Reset
	Cycle int

	// amount of time to increment per cycle, in msec -- must match Params.Dt
	Dt float32 `def:"0.1"`
}

// NewTime returns a new Time struct for given step size dt (msec)
func NewTime(dt float32) *Time {
	tm := &Time{}
	tm.Defaults()
	tm.Dt = dt
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Dt = 0.1
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Cycle = 0
	if tm.Dt == 0 {
		tm.Defaults()
	}
}

// CycleInc increments at the cycle level.
// Time is computed from Cycle rather than accumulated.
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.Time = float32(tm.Cycle) * tm.Dt
}
