// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import "fmt"

// Cycle advances the neuron by one step of size dt (msec), which must equal
// the Dt the params were updated for, consuming all of the input accumulated
// in in.  Returns true if the neuron spiked on this step.
//
// The order within a step is: drain in, integrate the continuous state,
// apply the refractory rules to Vm (clamp and spike decision), bound S,
// then add the drained synaptic totals onto the gating variables.
// Synaptic events thus affect Vm starting on the following step.
// If dt is rejected the neuron and in are left untouched.
func (np *Params) Cycle(nrn *Neuron, in *Inputs, dt float32) (bool, error) {
	if !(dt > 0) || dt != np.Dt {
		return false, fmt.Errorf("%w: dt = %g msec, params built for Dt = %g", ErrInvalidStepSize, dt, np.Dt)
	}
	drv := in.Drain()
	sb := nrn.SBound()
	nrn.Inet = np.Inet(&nrn.State, &drv)
	if err := np.Integrate(&nrn.State, &drv, dt); err != nil {
		return false, err
	}
	spiked := np.Spike.Refract(&nrn.Refr, &nrn.Vm)
	nrn.S = nrn.SBound()
	nrn.Syn.AddChans(drv.Syn)
	np.SpikeFmState(nrn, spiked, sb)
	return spiked, nil
}

// SpikeFmState sets the spike observables of the neuron after the
// refractory decision, given the pre-step bounded S value sb
func (np *Params) SpikeFmState(nrn *Neuron, spiked bool, sb float32) {
	if !spiked {
		nrn.Spike = 0
		nrn.SpikeWt = 0
		if nrn.ISI >= 0 {
			nrn.ISI += 1
		}
		return
	}
	nrn.Spike = 1
	nrn.SpikeWt = 1
	if np.Spike.ScaleWt {
		nrn.SpikeWt = sb
	}
	if nrn.ISI >= 0 {
		nrn.LastISI = nrn.ISI + 1
	}
	nrn.ISI = 0
}
