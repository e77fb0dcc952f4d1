// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import (
	"errors"
	"testing"

	"github.com/emer/iafbw/chans"
	"github.com/goki/mat32"
)

func TestIntegDecayMonotonic(t *testing.T) {
	for meth := ExpEuler; meth < IntegMethodsN; meth++ {
		np, _ := NewParams(0.1)
		np.Integ.Method = meth
		st := State{Vm: -70}
		st.Syn.SetAll(1, 1, 1, 1)
		drv := Drive{}
		for i := 0; i < 1000; i++ {
			prv := st.Syn
			if err := np.Integrate(&st, &drv, np.Dt); err != nil {
				t.Fatal(err)
			}
			for c := chans.AMPAExt; c < chans.ChannelN; c++ {
				pv, _ := prv.Get(c)
				v, _ := st.Syn.Get(c)
				if !(v < pv) || v < 0 {
					t.Errorf("decay err: method: %v, step: %v, channel: %v, prv: %v, val: %v\n", meth, i, c, pv, v)
				}
			}
		}
	}
}

func TestIntegExpDecay(t *testing.T) {
	np, _ := NewParams(0.1)
	st := State{Vm: -70, Syn: chans.Chans{AMPAExt: 1, AMPARec: 2, NMDA: 3, GABA: 4}}
	np.Integrate(&st, &Drive{}, np.Dt)
	cor := chans.Chans{AMPAExt: np.Tau.Decay.AMPAExt, AMPARec: 2 * np.Tau.Decay.AMPARec, NMDA: 3 * np.Tau.Decay.NMDA, GABA: 4 * np.Tau.Decay.GABA}
	if st.Syn != cor {
		t.Errorf("ExpEuler decay err: got: %+v, cor: %+v\n", st.Syn, cor)
	}
	// other step sizes use exact factors for that step
	st = State{Vm: -70, Syn: chans.Chans{GABA: 1}}
	np.Integrate(&st, &Drive{}, 0.5)
	corg := mat32.Exp(-0.5 / 5)
	if dif := mat32.Abs(st.Syn.GABA - corg); dif > difTol {
		t.Errorf("ExpEuler dt decay err: %v, cor: %v\n", st.Syn.GABA, corg)
	}
	// decay stays positive even for huge steps
	st = State{Vm: -70, Syn: chans.Chans{AMPAExt: 1}}
	np.Integrate(&st, &Drive{}, 50)
	if st.Syn.AMPAExt < 0 {
		t.Errorf("ExpEuler large dt went negative: %v\n", st.Syn.AMPAExt)
	}
	np.Integ.Method = Euler
	st = State{Vm: -70, Syn: chans.Chans{AMPAExt: 1}}
	np.Integrate(&st, &Drive{}, 50)
	if st.Syn.AMPAExt < 0 {
		t.Errorf("Euler large dt went negative: %v\n", st.Syn.AMPAExt)
	}
}

// leak relaxation from -60 mV: Vm(t) = E_L + 10 exp(-t / 20 msec)
func TestIntegLeakAccuracy(t *testing.T) {
	tol := []float32{0.05, 0.05, 2.0e-3} // ExpEuler, Euler, RK4
	cor := -70 + 10*mat32.Exp(-10.0/20.0)
	for meth := ExpEuler; meth < IntegMethodsN; meth++ {
		np, _ := NewParams(0.1)
		np.Integ.Method = meth
		st := State{Vm: -60}
		for i := 0; i < 100; i++ {
			np.Integrate(&st, &Drive{}, np.Dt)
		}
		if dif := mat32.Abs(st.Vm - cor); dif > tol[meth] {
			t.Errorf("leak accuracy err: method: %v, vm: %v, cor: %v, dif: %v\n", meth, st.Vm, cor, dif)
		}
	}
}

func TestIntegStepSize(t *testing.T) {
	np, _ := NewParams(0.1)
	st := State{Vm: -60}
	for _, dt := range []float32{0, -0.1, mat32.NaN()} {
		err := np.Integrate(&st, &Drive{}, dt)
		if !errors.Is(err, ErrInvalidStepSize) {
			t.Errorf("Integrate err: dt: %v, err: %v\n", dt, err)
		}
	}
	if st.Vm != -60 {
		t.Errorf("rejected step changed state: %+v\n", st)
	}
}

func TestIntegDeterministic(t *testing.T) {
	for meth := ExpEuler; meth < IntegMethodsN; meth++ {
		np, _ := NewParams(0.1)
		np.Integ.Method = meth
		st1 := State{Vm: -52, S: 0.3, Syn: chans.Chans{AMPAExt: 2, AMPARec: 1, NMDA: 0.5, GABA: 3}}
		st2 := st1
		drv := Drive{Inj: 150}
		for i := 0; i < 200; i++ {
			np.Integrate(&st1, &drv, np.Dt)
			np.Integrate(&st2, &drv, np.Dt)
		}
		if st1 != st2 {
			t.Errorf("not deterministic: method: %v, %+v != %+v\n", meth, st1, st2)
		}
	}
}

func TestIntegMethodsString(t *testing.T) {
	for meth := ExpEuler; meth < IntegMethodsN; meth++ {
		var fm IntegMethods
		if err := fm.FromString(meth.String()); err != nil || fm != meth {
			t.Errorf("FromString err: %v, got: %v, err: %v\n", meth, fm, err)
		}
	}
	var fm IntegMethods
	if err := fm.FromString("Midpoint"); err == nil {
		t.Errorf("FromString accepted unknown method\n")
	}
	if err := fm.SetString("RK4"); err != nil || fm != RK4 {
		t.Errorf("SetString err: %v, %v\n", fm, err)
	}
	if err := fm.SetString("4"); err == nil || fm != RK4 {
		t.Errorf("SetString accepted a number: %v\n", fm)
	}
}
