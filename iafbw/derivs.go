// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

// Currents are the individual membrane currents, in pA,
// with positive values flowing out of the cell
type Currents struct {
	Leak    float32
	AMPAExt float32
	AMPARec float32
	NMDA    float32
	GABA    float32
}

// Currents returns the individual membrane currents for given state
func (np *Params) Currents(st *State) Currents {
	vm := st.Vm
	vex := vm - np.Erev.Ex
	return Currents{
		Leak:    np.Gm * (vm - np.Erev.L),
		AMPAExt: np.Gbar.AMPAExt * vex * st.Syn.AMPAExt,
		AMPARec: np.Gbar.AMPARec * vex * st.Syn.AMPARec,
		NMDA:    np.Gbar.NMDA * np.NMDA.Gate(vm) * vex * st.Syn.NMDA,
		GABA:    np.Gbar.GABA * (vm - np.Erev.In) * st.Syn.GABA,
	}
}

// Inet returns the net current into the cell, in pA, including
// the constant Ie and the injected current in drv
func (np *Params) Inet(st *State, drv *Drive) float32 {
	ic := np.Currents(st)
	return -ic.Leak - ic.AMPAExt - ic.AMPARec - ic.NMDA - ic.GABA + np.Ie + drv.Inj
}

// Derivs returns the rates of change (per msec) of all continuous variables
// in st, given the input in drv.  The synaptic input totals in drv are not
// used here: they are applied as step increments by Cycle.
//
// The S equation is driven by an indicator of Vm >= Spike.Thr on st itself,
// which is separate from the spike decision taken after integration.
func (np *Params) Derivs(st *State, drv *Drive) State {
	var d State
	spk := float32(0)
	if st.Vm >= np.Spike.Thr {
		spk = 1
	}
	d.S = -st.SBound()/np.Tau.Syn + spk
	rt := &np.Tau.Rate
	d.Syn.AMPAExt = -st.Syn.AMPAExt * rt.AMPAExt
	d.Syn.AMPARec = -st.Syn.AMPARec * rt.AMPARec
	d.Syn.NMDA = -st.Syn.NMDA * rt.NMDA
	d.Syn.GABA = -st.Syn.GABA * rt.GABA
	d.Vm = np.Inet(st, drv) / np.Cm
	return d
}
