// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package iafbw is the overall repository for a conductance-based
integrate-and-fire point neuron as used in the decision-making and working
memory networks of Brunel & Wang (2001), implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* chans: the four synaptic channels (external and recurrent AMPA, voltage-gated NMDA,
and GABA-A), a struct holding one value per channel, and the NMDA magnesium block.

* iafbw: the single-neuron update kernel: parameters, the synaptic input accumulator,
the derivatives of the continuous state, numerical integration, the refractory
state machine, and the per-step Cycle that ties them together.  Also a serial Group
of neurons sharing one set of parameters, and an etable Recorder of state traces.

* poisson: external Poisson spike input, as the background drive of each neuron.

* examples: these compile into runnable programs.  examples/neuron runs a group of
neurons with Poisson drive and saves traces and plots, and examples/eqplot saves
the NMDA voltage dependence and synaptic time courses as tables.
*/
package iafbw
