// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package iafbw implements the single-neuron update for a conductance-based
leaky integrate-and-fire neuron with four synaptic channels and an absolute
refractory period, following Brunel & Wang (2001).

State per neuron (Neuron) holds the membrane potential Vm (mV), the synaptic
resource variable S, and the four synaptic gating variables (chans.Chans, nS),
plus the refractory countdown.  All neurons of a given type share one *Params,
which holds the physical constants and values derived from the simulation
step size Dt (ms), such as the number of refractory steps.

Each simulation step, incoming synaptic events are summed into an Inputs
accumulator (one total per channel, plus an injected current), and then
Params.Cycle:

  - drains the Inputs into a Drive,
  - integrates the membrane and synaptic equations by Dt (Integrate, using Derivs),
  - applies the refractory / threshold state machine (SpikeParams.Refract),
  - clamps S to [0,1],
  - adds the drained channel totals onto the gating variables.

Synaptic input arriving in a step therefore first affects Vm on the following
step.  The threshold indicator that drives S in Derivs is evaluated on the
state passed to Derivs, independently of the spike decision made by Refract
after integration.

Units are ms, mV, nS, pF and pA throughout.
*/
package iafbw
