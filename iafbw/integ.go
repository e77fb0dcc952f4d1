// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// IntegMethods are the numerical methods for integrating the neuron state
type IntegMethods int32

//go:generate stringer -type=IntegMethods

var KiT_IntegMethods = kit.Enums.AddEnum(IntegMethodsN, kit.NotBitFlag, nil)

func (ev IntegMethods) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *IntegMethods) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// ExpEuler integrates the linear synaptic decay exactly, as x * exp(-dt / tau),
	// and Vm and S with forward Euler from the start-of-step values.
	ExpEuler IntegMethods = iota

	// Euler is forward Euler for all variables
	Euler

	// RK4 is classical 4th order Runge-Kutta over the full state
	RK4

	IntegMethodsN
)

// IsValid returns true if this is one of the defined methods
func (ev IntegMethods) IsValid() bool {
	return ev >= ExpEuler && ev < IntegMethodsN
}

// IntegParams select the numerical integration method
type IntegParams struct {
	Method IntegMethods `def:"ExpEuler" desc:"numerical integration method -- ExpEuler is exact for the synaptic decay, and is stable for any step size"`
}

func (ip *IntegParams) Defaults() {
	ip.Method = ExpEuler
}

// Integrate advances the continuous state st in place by one step of size
// dt (msec) given input drv, without any refractory clamping.
// Returns an error wrapping ErrInvalidStepSize if dt is not > 0.
func (np *Params) Integrate(st *State, drv *Drive, dt float32) error {
	if !(dt > 0) {
		return fmt.Errorf("%w: dt = %g msec, must be > 0", ErrInvalidStepSize, dt)
	}
	switch np.Integ.Method {
	case Euler:
		d := np.Derivs(st, drv)
		*st = st.addScaled(&d, dt)
		st.Syn.ClampPos()
	case RK4:
		np.stepRK4(st, drv, dt)
	default:
		np.stepExpEuler(st, drv, dt)
	}
	return nil
}

func (np *Params) stepExpEuler(st *State, drv *Drive, dt float32) {
	d := np.Derivs(st, drv)
	st.Vm += dt * d.Vm
	st.S += dt * d.S
	decay := &np.Tau.Decay
	if dt != np.Dt {
		dc := np.Tau.DecayFor(dt)
		decay = &dc
	}
	st.Syn.MulChans(*decay)
}

func (np *Params) stepRK4(st *State, drv *Drive, dt float32) {
	hdt := 0.5 * dt
	k1 := np.Derivs(st, drv)
	s2 := st.addScaled(&k1, hdt)
	k2 := np.Derivs(&s2, drv)
	s3 := st.addScaled(&k2, hdt)
	k3 := np.Derivs(&s3, drv)
	s4 := st.addScaled(&k3, dt)
	k4 := np.Derivs(&s4, drv)
	dt6 := dt / 6
	nst := st.addScaled(&k1, dt6)
	nst = nst.addScaled(&k2, 2*dt6)
	nst = nst.addScaled(&k3, 2*dt6)
	nst = nst.addScaled(&k4, dt6)
	nst.Syn.ClampPos()
	*st = nst
}
