// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import (
	"fmt"

	"github.com/emer/emergent/v2/params"
	"github.com/emer/iafbw/chans"
	"github.com/goki/mat32"
)

///////////////////////////////////////////////////////////////////////
//  params.go contains the neuron-type parameters for iafbw

// iafbw.Params contains all the physical constants for one type of neuron,
// plus values derived from them and the simulation step size Dt.
// A single Params is shared (by pointer) by all neurons of the same type,
// and is read-only while neurons are being updated.
// Call Update after any changes, and Validate before use.
type Params struct {
	Nm    string           `view:"-" desc:"name of this neuron type, used for #Name params selectors"`
	Cls   string           `desc:"space-separated list of class names, used for .Class params selectors"`
	Dt    float32          `def:"0.1" min:"0" desc:"simulation step size in msec -- shared by all neurons in the simulation, and used to compute the number of refractory steps and the synaptic decay factors"`
	Spike SpikeParams      `view:"inline" desc:"spiking threshold, reset and refractory parameters"`
	Erev  ErevParams       `view:"inline" desc:"[Defaults: -70, 0, -70] reversal potentials for leak, excitatory and inhibitory channels"`
	Cm    float32          `def:"500" min:"0" desc:"membrane capacitance C_m, in pF"`
	Gm    float32          `def:"25" min:"0" desc:"membrane leak conductance g_m, in nS"`
	Gbar  chans.Chans      `view:"inline" desc:"[Defaults: 2.08, 0.104, 0.327, 1.25] maximal conductance for each synaptic channel, in nS"`
	Tau   TauParams        `view:"inline" desc:"time constants for the synaptic variables"`
	NMDA  chans.NMDAParams `view:"inline" desc:"voltage dependence of the NMDA magnesium block"`
	Ie    float32          `def:"0" desc:"constant external current injected every step, in pA"`
	Integ IntegParams      `view:"inline" desc:"numerical integration method"`
}

// NewParams returns default Params for given simulation step size dt (msec),
// or an error if dt is not valid.
func NewParams(dt float32) (*Params, error) {
	np := &Params{}
	np.Defaults()
	np.Dt = dt
	np.Update()
	if err := np.Validate(); err != nil {
		return nil, err
	}
	return np, nil
}

func (np *Params) Defaults() {
	np.Dt = 0.1
	np.Spike.Defaults()
	np.Erev.Defaults()
	np.Cm = 500
	np.Gm = 25
	np.Gbar.SetAll(2.08, 0.104, 0.327, 1.25)
	np.Tau.Defaults()
	np.NMDA.Defaults()
	np.Ie = 0
	np.Integ.Defaults()
	np.Update()
}

// Update must be called after any changes to parameters
func (np *Params) Update() {
	np.Spike.Update(np.Dt)
	np.Tau.Update(np.Dt)
	np.NMDA.Update()
}

// Validate returns an error wrapping ErrInvalidParam if Dt or any time
// constant, conductance or the capacitance is not > 0.  An invalid Dt also
// wraps ErrInvalidStepSize.
func (np *Params) Validate() error {
	if !(np.Dt > 0) {
		return fmt.Errorf("%w: %w: Dt = %g msec, must be > 0", ErrInvalidParam, ErrInvalidStepSize, np.Dt)
	}
	pos := []struct {
		nm  string
		val float32
	}{
		{"Spike.Tr", np.Spike.Tr},
		{"Tau.Syn", np.Tau.Syn},
		{"Tau.AMPA", np.Tau.AMPA},
		{"Tau.NMDARise", np.Tau.NMDARise},
		{"Tau.NMDADecay", np.Tau.NMDADecay},
		{"Tau.GABA", np.Tau.GABA},
		{"Cm", np.Cm},
		{"Gm", np.Gm},
		{"Gbar.AMPAExt", np.Gbar.AMPAExt},
		{"Gbar.AMPARec", np.Gbar.AMPARec},
		{"Gbar.NMDA", np.Gbar.NMDA},
		{"Gbar.GABA", np.Gbar.GABA},
	}
	for _, p := range pos {
		if !(p.val > 0) {
			return fmt.Errorf("%w: %s = %g, must be > 0", ErrInvalidParam, p.nm, p.val)
		}
	}
	if !(np.NMDA.Lamda >= 0) || !(np.NMDA.Beta >= 0) || !(np.NMDA.MaxExp > 0) {
		return fmt.Errorf("%w: NMDA = %+v, Lamda and Beta must be >= 0 and MaxExp > 0", ErrInvalidParam, np.NMDA)
	}
	if !np.Integ.Method.IsValid() {
		return fmt.Errorf("%w: Integ.Method = %v", ErrInvalidParam, np.Integ.Method)
	}
	return nil
}

// ApplyParams applies given parameter style Sheet to these params.
// The sheet is applied to a copy which is then updated and validated,
// so the params are left unchanged if anything fails.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// returns true if any params were set, and error if there were any errors.
func (np *Params) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	cp := *np
	app, err := pars.Apply(&cp, setMsg)
	if err != nil {
		return false, err
	}
	if !app {
		return false, nil
	}
	cp.Update()
	if err := cp.Validate(); err != nil {
		return false, err
	}
	*np = cp
	return true, nil
}

// params styling: Params are selected by "Neuron", ".Class" and "#Name"

func (np *Params) TypeName() string   { return "Neuron" }
func (np *Params) Class() string      { return np.Cls }
func (np *Params) Name() string       { return np.Nm }
func (np *Params) StyleType() string  { return np.TypeName() }
func (np *Params) StyleClass() string { return np.Cls }
func (np *Params) StyleName() string  { return np.Nm }

///////////////////////////////////////////////////////////////////////
//  SpikeParams

// SpikeParams contains the spiking threshold, reset and absolute refractory period
type SpikeParams struct {
	Thr     float32 `def:"-50" desc:"spiking threshold V_th, in mV -- a spike is emitted when Vm reaches this value while not refractory"`
	VmR     float32 `def:"-55" desc:"post-spiking membrane potential V_reset, in mV -- Vm is held here throughout the refractory period"`
	Tr      float32 `def:"2" min:"0" desc:"absolute refractory period t_ref, in msec"`
	ScaleWt bool    `def:"false" desc:"scale the weight of emitted spike events by the pre-spike bounded synaptic resource S -- otherwise events have weight 1"`

	RefractoryCounts int32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"number of simulation steps in the refractory period = round(Tr / Dt)"`
}

func (sp *SpikeParams) Defaults() {
	sp.Thr = -50
	sp.VmR = -55
	sp.Tr = 2
	sp.ScaleWt = false
}

// Update computes RefractoryCounts for given step size
func (sp *SpikeParams) Update(dt float32) {
	if dt > 0 {
		sp.RefractoryCounts = int32(mat32.Round(sp.Tr / dt))
	}
	if sp.RefractoryCounts < 0 {
		sp.RefractoryCounts = 0
	}
}

///////////////////////////////////////////////////////////////////////
//  ErevParams

// ErevParams are the reversal potentials for the channels, in mV
type ErevParams struct {
	L  float32 `def:"-70" desc:"leak reversal potential E_L -- the resting potential"`
	Ex float32 `def:"0" desc:"excitatory (AMPA, NMDA) reversal potential E_ex"`
	In float32 `def:"-70" desc:"inhibitory (GABA) reversal potential E_in"`
}

func (ep *ErevParams) Defaults() {
	ep.L = -70
	ep.Ex = 0
	ep.In = -70
}

///////////////////////////////////////////////////////////////////////
//  TauParams

// TauParams are the time constants for the synaptic variables, in msec
type TauParams struct {
	Syn       float32 `def:"100" min:"0" desc:"decay time constant of the synaptic resource variable S"`
	AMPA      float32 `def:"2" min:"0" desc:"decay time constant of AMPA gating, for both external and recurrent inputs"`
	NMDARise  float32 `def:"2" min:"0" desc:"rise time constant of NMDA gating -- the NMDA gating variable is integrated as a single exponential with NMDADecay, so this only needs to be valid"`
	NMDADecay float32 `def:"100" min:"0" desc:"decay time constant of NMDA gating"`
	GABA      float32 `def:"5" min:"0" desc:"decay time constant of GABA gating"`

	Rate  chans.Chans `view:"-" json:"-" xml:"-" desc:"1 / tau for each channel"`
	Decay chans.Chans `view:"-" json:"-" xml:"-" desc:"exact decay factor exp(-Dt / tau) over one step for each channel"`
}

func (tp *TauParams) Defaults() {
	tp.Syn = 100
	tp.AMPA = 2
	tp.NMDARise = 2
	tp.NMDADecay = 100
	tp.GABA = 5
}

// Update computes the rates and decay factors for given step size
func (tp *TauParams) Update(dt float32) {
	tp.Rate.SetAll(1/tp.AMPA, 1/tp.AMPA, 1/tp.NMDADecay, 1/tp.GABA)
	tp.Decay = tp.DecayFor(dt)
}

// DecayFor returns the exact one-step decay factors for step size dt
func (tp *TauParams) DecayFor(dt float32) chans.Chans {
	return chans.Chans{
		AMPAExt: mat32.Exp(-dt / tp.AMPA),
		AMPARec: mat32.Exp(-dt / tp.AMPA),
		NMDA:    mat32.Exp(-dt / tp.NMDADecay),
		GABA:    mat32.Exp(-dt / tp.GABA),
	}
}
