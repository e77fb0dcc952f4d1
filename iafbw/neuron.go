// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import (
	"fmt"

	"github.com/emer/iafbw/chans"
)

// State is the continuous state of one neuron: the membrane potential,
// the synaptic resource variable and the four synaptic gating variables.
// Derivs returns a State holding rates of change, in units per msec.
type State struct {

	// membrane potential, in mV
	Vm float32

	// synaptic resource variable -- only its value bounded to [0,1] (SBound) is used
	S float32

	// synaptic gating conductances for each channel, in nS -- always >= 0,
	// decaying toward 0 and increased only by synaptic input
	Syn chans.Chans
}

// SBound returns S clamped to [0,1]
func (st *State) SBound() float32 {
	switch {
	case st.S < 0:
		return 0
	case st.S > 1:
		return 1
	}
	return st.S
}

// addScaled returns st + h * d
func (st State) addScaled(d *State, h float32) State {
	st.Vm += h * d.Vm
	st.S += h * d.S
	st.Syn.AddScaled(d.Syn, h)
	return st
}

// iafbw.Neuron holds all of the state for one neuron: the continuous
// State, the refractory state machine, and observables from the last step.
// A Neuron is updated only by Params.Cycle, from one goroutine at a time.
type Neuron struct {
	State

	// refractory state machine
	Refr RefractState

	// 1 if the neuron spiked on the last step, else 0
	Spike float32

	// weight of the last emitted spike: 1, or the pre-spike SBound if Spike.ScaleWt
	SpikeWt float32

	// net current at the start of the last step, in pA -- drives Vm
	Inet float32

	// number of steps since the last spike, -1 before the first spike
	ISI float32

	// number of steps between the last two spikes, -1 until there have been two spikes
	LastISI float32
}

// NeuronVars are the names of the recordable Neuron variables
var NeuronVars = []string{"Vm", "S", "SBound", "AMPAExt", "AMPARec", "NMDA", "GABA", "Refr", "Spike", "SpikeWt", "Inet", "ISI", "LastISI"}

// VarByName returns the value of given neuron variable, from NeuronVars
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	switch varNm {
	case "Vm":
		return nrn.Vm, nil
	case "S":
		return nrn.S, nil
	case "SBound":
		return nrn.SBound(), nil
	case "AMPAExt":
		return nrn.Syn.AMPAExt, nil
	case "AMPARec":
		return nrn.Syn.AMPARec, nil
	case "NMDA":
		return nrn.Syn.NMDA, nil
	case "GABA":
		return nrn.Syn.GABA, nil
	case "Refr":
		return float32(nrn.Refr.Count), nil
	case "Spike":
		return nrn.Spike, nil
	case "SpikeWt":
		return nrn.SpikeWt, nil
	case "Inet":
		return nrn.Inet, nil
	case "ISI":
		return nrn.ISI, nil
	case "LastISI":
		return nrn.LastISI, nil
	}
	return 0, fmt.Errorf("iafbw.Neuron: variable named: %s not found", varNm)
}

// InitState initializes the neuron to rest: Vm = Erev.L, all synaptic
// variables at 0, and not refractory.
func (np *Params) InitState(nrn *Neuron) {
	*nrn = Neuron{}
	nrn.Vm = np.Erev.L
	nrn.Refr.Init()
	nrn.ISI = -1
	nrn.LastISI = -1
}
