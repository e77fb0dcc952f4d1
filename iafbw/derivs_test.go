// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import (
	"math"
	"testing"

	"github.com/emer/iafbw/chans"
	"github.com/goki/mat32"
)

func TestDerivsRest(t *testing.T) {
	np, _ := NewParams(0.1)
	nrn := &Neuron{}
	np.InitState(nrn)
	d := np.Derivs(&nrn.State, &Drive{})
	if d != (State{}) {
		t.Errorf("rest derivs not zero: %+v\n", d)
	}
}

func TestDerivsValues(t *testing.T) {
	np, _ := NewParams(0.1)
	st := State{Vm: -60, S: 0.5, Syn: chans.Chans{AMPAExt: 1, AMPARec: 2, NMDA: 3, GABA: 4}}
	drv := Drive{Syn: chans.Chans{AMPAExt: 100}, Inj: 10}
	d := np.Derivs(&st, &drv)

	vm := -60.0
	gate := 1 / (1 + math.Exp(0.062*60)/3.57)
	ileak := 25 * (vm + 70)
	iampa := 2.08*vm*1 + 0.104*vm*2
	inmda := 0.327 * gate * vm * 3
	igaba := 1.25 * (vm + 70) * 4
	cordvm := float32((-ileak - iampa - inmda - igaba + 10) / 500)
	if dif := mat32.Abs(d.Vm - cordvm); dif > 1.0e-5 {
		t.Errorf("dVm err: %v, cor: %v, dif: %v\n", d.Vm, cordvm, dif)
	}
	cords := float32(-0.005)
	if dif := mat32.Abs(d.S - cords); dif > difTol {
		t.Errorf("dS err: %v, cor: %v, dif: %v\n", d.S, cords, dif)
	}
	corsyn := []float32{-0.5, -1, -0.03, -0.8}
	for c := chans.AMPAExt; c < chans.ChannelN; c++ {
		v, _ := d.Syn.Get(c)
		if dif := mat32.Abs(v - corsyn[c]); dif > difTol {
			t.Errorf("dSyn err: channel: %v, val: %v, cor: %v, dif: %v\n", c, v, corsyn[c], dif)
		}
	}
	inet := np.Inet(&st, &drv)
	if dif := mat32.Abs(inet/np.Cm - d.Vm); dif > difTol {
		t.Errorf("Inet err: %v, dVm: %v\n", inet, d.Vm)
	}
}

// the forcing term in dS depends only on Vm of the state passed in
func TestDerivsSpikeIndicator(t *testing.T) {
	np, _ := NewParams(0.1)
	st := State{Vm: -50, S: 0.2}
	d := np.Derivs(&st, &Drive{})
	cor := float32(1 - 0.2/100.0)
	if dif := mat32.Abs(d.S - cor); dif > difTol {
		t.Errorf("dS at threshold err: %v, cor: %v\n", d.S, cor)
	}
	st.Vm = -50.01
	d = np.Derivs(&st, &Drive{})
	cor = float32(-0.2 / 100.0)
	if dif := mat32.Abs(d.S - cor); dif > difTol {
		t.Errorf("dS below threshold err: %v, cor: %v\n", d.S, cor)
	}
	st.S = 3
	d = np.Derivs(&st, &Drive{})
	if dif := mat32.Abs(d.S + 0.01); dif > difTol {
		t.Errorf("dS not bounded: %v, cor: -0.01\n", d.S)
	}
}

func TestCurrentsSign(t *testing.T) {
	np, _ := NewParams(0.1)
	st := State{Vm: -60, Syn: chans.Chans{AMPAExt: 1, GABA: 1}}
	ic := np.Currents(&st)
	if ic.Leak <= 0 || ic.AMPAExt >= 0 || ic.GABA <= 0 {
		t.Errorf("current signs err: %+v\n", ic)
	}
	st.Vm = -70
	ic = np.Currents(&st)
	if ic.Leak != 0 || ic.GABA != 0 {
		t.Errorf("currents at reversal not zero: %+v\n", ic)
	}
}
