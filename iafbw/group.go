// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/minmax"
)

// iafbw.Group is a set of neurons of one type, sharing a single Params,
// each with its own input accumulator.  Neurons are updated serially,
// so spikes emitted on one Cycle must be delivered to Inputs for the next.
type Group struct {

	// name of the group
	Nm string

	// parameters shared by all neurons in the group
	Params *Params

	// the neurons
	Neurons []Neuron

	// input accumulators, one per neuron
	Inputs []Inputs

	// indexes of the neurons that spiked on the last Cycle
	Spiked []int

	// average and max Vm over the group, from the last CalcVmStats
	VmStats minmax.AvgMax32 `inactive:"+" view:"inline"`
}

// NewGroup returns a new group of n neurons at rest, sharing np
func NewGroup(name string, np *Params, n int) *Group {
	gp := &Group{Nm: name, Params: np}
	gp.Neurons = make([]Neuron, n)
	gp.Inputs = make([]Inputs, n)
	gp.Spiked = make([]int, 0, n)
	gp.InitState()
	return gp
}

// Name returns the group name
func (gp *Group) Name() string {
	return gp.Nm
}

// InitState returns all neurons to rest and discards any pending input
func (gp *Group) InitState() {
	for ni := range gp.Neurons {
		gp.Params.InitState(&gp.Neurons[ni])
		gp.Inputs[ni].Reset()
	}
	gp.Spiked = gp.Spiked[:0]
	gp.VmStats.Init()
}

// Cycle updates all neurons for one step of size dt (msec), and returns
// the indexes of those that spiked, valid until the next Cycle.
// If dt is rejected no neuron is updated.
func (gp *Group) Cycle(dt float32) ([]int, error) {
	np := gp.Params
	if !(dt > 0) || dt != np.Dt {
		return nil, fmt.Errorf("%w: group %s: dt = %g msec, params built for Dt = %g", ErrInvalidStepSize, gp.Nm, dt, np.Dt)
	}
	gp.Spiked = gp.Spiked[:0]
	for ni := range gp.Neurons {
		spk, err := np.Cycle(&gp.Neurons[ni], &gp.Inputs[ni], dt)
		if err != nil {
			return nil, err
		}
		if spk {
			gp.Spiked = append(gp.Spiked, ni)
		}
	}
	return gp.Spiked, nil
}

// CalcVmStats computes the average and max Vm over the group into VmStats
func (gp *Group) CalcVmStats() {
	gp.VmStats.Init()
	for ni := range gp.Neurons {
		gp.VmStats.UpdateValue(gp.Neurons[ni].Vm, int32(ni))
	}
	gp.VmStats.CalcAvg()
}

// SizeReport returns a string reporting the memory used by the group:
// the per-neuron state and inputs, and the single shared Params.
func (gp *Group) SizeReport() string {
	var b strings.Builder
	nn := len(gp.Neurons)
	nmem := nn * int(unsafe.Sizeof(Neuron{}))
	imem := len(gp.Inputs) * int(unsafe.Sizeof(Inputs{}))
	pmem := int(unsafe.Sizeof(Params{}))
	fmt.Fprintf(&b, "%14s:\t Neurons: %d\t NeurMem: %v \t InputMem: %v \t ParamsMem: %v (shared)\n", gp.Nm, nn, (datasize.ByteSize)(nmem).HumanReadable(), (datasize.ByteSize)(imem).HumanReadable(), (datasize.ByteSize)(pmem).HumanReadable())
	return b.String()
}
