// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import "github.com/emer/iafbw/chans"

// SpikeEvent is an emitted spike, to be routed to downstream synapses
// by the caller, no earlier than the following step.
type SpikeEvent struct {

	// emission time, in msec
	Time float32

	// weight of the event: 1, or the pre-spike bounded S if Spike.ScaleWt
	Wt float32
}

// SpikeEvent returns the event for a spike emitted by nrn on the last
// Cycle, at time t (msec)
func (np *Params) SpikeEvent(nrn *Neuron, t float32) SpikeEvent {
	return SpikeEvent{Time: t, Wt: nrn.SpikeWt}
}

// Deliver adds this event onto channel ch of in, scaled by the synaptic weight wt (nS)
func (ev *SpikeEvent) Deliver(in *Inputs, ch chans.Channel, wt float32) error {
	return in.Add(ch, ev.Wt*wt)
}
