// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the synaptic conductance channels of a
conductance-based point neuron in the style of Brunel & Wang (2001):
fast AMPA receptors driven separately by external (background) and
recurrent inputs, slow voltage-gated NMDA receptors, and inhibitory
GABA-A receptors.

Each channel carries its own gating variable and maximal conductance,
and Chans is used to hold one float32 value per channel wherever a
per-channel quantity is needed (conductances, gating state, input totals,
decay factors).
*/
package chans

import "github.com/goki/mat32"

// Chans holds one value for each synaptic channel
type Chans struct {
	AMPAExt float32 `desc:"fast excitatory AMPA receptors driven by external (background) inputs"`
	AMPARec float32 `desc:"fast excitatory AMPA receptors driven by recurrent inputs from within the network"`
	NMDA    float32 `desc:"slow excitatory NMDA receptors, subject to voltage-dependent magnesium block"`
	GABA    float32 `desc:"inhibitory chloride (Cl-) GABA-A receptors"`
}

// SetAll sets all the values
func (ch *Chans) SetAll(ampaExt, ampaRec, nmda, gaba float32) {
	ch.AMPAExt, ch.AMPARec, ch.NMDA, ch.GABA = ampaExt, ampaRec, nmda, gaba
}

// Zero sets all the values to 0
func (ch *Chans) Zero() {
	*ch = Chans{}
}

// Get returns the value for given channel, and false if the
// channel is not valid.
func (ch *Chans) Get(c Channel) (float32, bool) {
	switch c {
	case AMPAExt:
		return ch.AMPAExt, true
	case AMPARec:
		return ch.AMPARec, true
	case NMDA:
		return ch.NMDA, true
	case GABA:
		return ch.GABA, true
	}
	return 0, false
}

// Set sets the value for given channel, returning false if the
// channel is not valid.
func (ch *Chans) Set(c Channel, val float32) bool {
	switch c {
	case AMPAExt:
		ch.AMPAExt = val
	case AMPARec:
		ch.AMPARec = val
	case NMDA:
		ch.NMDA = val
	case GABA:
		ch.GABA = val
	default:
		return false
	}
	return true
}

// Add adds val to the given channel, returning false if the
// channel is not valid.
func (ch *Chans) Add(c Channel, val float32) bool {
	switch c {
	case AMPAExt:
		ch.AMPAExt += val
	case AMPARec:
		ch.AMPARec += val
	case NMDA:
		ch.NMDA += val
	case GABA:
		ch.GABA += val
	default:
		return false
	}
	return true
}

// AddChans adds the values from other Chans to these
func (ch *Chans) AddChans(oth Chans) {
	ch.AMPAExt += oth.AMPAExt
	ch.AMPARec += oth.AMPARec
	ch.NMDA += oth.NMDA
	ch.GABA += oth.GABA
}

// MulChans multiplies each value by the corresponding other value
func (ch *Chans) MulChans(oth Chans) {
	ch.AMPAExt *= oth.AMPAExt
	ch.AMPARec *= oth.AMPARec
	ch.NMDA *= oth.NMDA
	ch.GABA *= oth.GABA
}

// SetFmOtherScaled sets all the values from other Chans times given factor
func (ch *Chans) SetFmOtherScaled(oth Chans, scale float32) {
	ch.AMPAExt, ch.AMPARec, ch.NMDA, ch.GABA = oth.AMPAExt*scale, oth.AMPARec*scale, oth.NMDA*scale, oth.GABA*scale
}

// AddScaled adds the other Chans times given factor
func (ch *Chans) AddScaled(oth Chans, scale float32) {
	ch.AMPAExt += oth.AMPAExt * scale
	ch.AMPARec += oth.AMPARec * scale
	ch.NMDA += oth.NMDA * scale
	ch.GABA += oth.GABA * scale
}

// ClampPos sets any negative values to 0
func (ch *Chans) ClampPos() {
	ch.AMPAExt = mat32.Max(ch.AMPAExt, 0)
	ch.AMPARec = mat32.Max(ch.AMPARec, 0)
	ch.NMDA = mat32.Max(ch.NMDA, 0)
	ch.GABA = mat32.Max(ch.GABA, 0)
}
