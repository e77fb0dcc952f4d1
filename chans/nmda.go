// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/goki/mat32"

// NMDAParams control the voltage dependence of the NMDA channel, which is blocked
// by extracellular magnesium at hyperpolarized potentials, based on Jahr & Stevens (1990)
// as used in Brunel & Wang (2001):
//
//	g(V) = 1 / (1 + Lamda * exp(-Beta * V))
//
// with V in mV.
type NMDAParams struct {
	Beta   float32 `def:"0.062" min:"0" desc:"voltage sensitivity of the magnesium block, in 1/mV"`
	Lamda  float32 `def:"0.28" min:"0" desc:"strength of the magnesium block = [Mg2+] / 3.57 mM -- 0.28 for [Mg2+] = 1 mM, 0 removes the block entirely"`
	MaxExp float32 `def:"80" min:"1" desc:"limit on the magnitude of the exponent argument -- keeps exp within float32 range for extreme membrane potentials"`
}

func (np *NMDAParams) Defaults() {
	np.Beta = 0.062
	np.Lamda = 1.0 / 3.57
	np.MaxExp = 80
}

func (np *NMDAParams) Update() {
}

// Gate returns the fraction of NMDA conductance that is unblocked at membrane
// potential v (mV), in (0, 1].
func (np *NMDAParams) Gate(v float32) float32 {
	x := -np.Beta * v
	if x > np.MaxExp {
		x = np.MaxExp
	} else if x < -np.MaxExp {
		x = -np.MaxExp
	}
	return 1 / (1 + np.Lamda*mat32.Exp(x))
}
