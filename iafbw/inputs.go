// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import (
	"fmt"

	"github.com/emer/iafbw/chans"
)

// Drive is the synaptic and current input for one step, as drained from Inputs
type Drive struct {

	// summed weights of the synaptic events on each channel, in nS,
	// added onto the gating variables after integration
	Syn chans.Chans

	// injected current, in pA, added to Params.Ie for this step
	Inj float32
}

// Inputs accumulates the synaptic events and injected current arriving
// during one step, and is drained by Params.Cycle.
// Events on the same channel within a step sum together.
// The zero value is empty and ready to use.
type Inputs struct {
	drv Drive
}

// Add adds the weight wt (nS, >= 0) of a synaptic event on channel ch
func (in *Inputs) Add(ch chans.Channel, wt float32) error {
	if !(wt >= 0) {
		return fmt.Errorf("%w: %g on channel %v", ErrNegativeWeight, wt, ch)
	}
	if !in.drv.Syn.Add(ch, wt) {
		return fmt.Errorf("%w: %v", ErrInvalidChannel, ch)
	}
	return nil
}

// AddCurrent adds injected current (pA, either sign)
func (in *Inputs) AddCurrent(val float32) {
	in.drv.Inj += val
}

// Pending returns the input accumulated so far without draining it
func (in *Inputs) Pending() Drive {
	return in.drv
}

// Drain returns the accumulated input and resets to empty
func (in *Inputs) Drain() Drive {
	drv := in.drv
	in.drv = Drive{}
	return drv
}

// Reset discards any accumulated input
func (in *Inputs) Reset() {
	in.drv = Drive{}
}
