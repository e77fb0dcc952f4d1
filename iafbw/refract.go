// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import "github.com/goki/ki/kit"

// RefractoryPhase is the phase of the refractory state machine
type RefractoryPhase int32

//go:generate stringer -type=RefractoryPhase

var KiT_RefractoryPhase = kit.Enums.AddEnum(RefractoryPhaseN, kit.NotBitFlag, nil)

func (ev RefractoryPhase) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *RefractoryPhase) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Free means Vm runs freely and a spike fires when it reaches threshold
	Free RefractoryPhase = iota

	// Refractory means Vm is held at reset and no spike can fire
	Refractory

	RefractoryPhaseN
)

// RefractState is the refractory state of one neuron.
// Phase is Refractory if and only if Count > 0.
type RefractState struct {
	Phase RefractoryPhase `desc:"current phase"`
	Count int32           `desc:"number of steps remaining in the refractory period"`
}

// Init sets to Free, with no steps remaining
func (rf *RefractState) Init() {
	rf.Phase = Free
	rf.Count = 0
}

// IsRefractory returns true if in the refractory period
func (rf *RefractState) IsRefractory() bool {
	return rf.Phase == Refractory
}

// Refract applies the refractory rules to the integrated membrane potential
// vm, once per step, and returns true if a spike is emitted:
// while refractory, Count is decremented and vm held at VmR, returning to Free
// once Count reaches 0.  While free, a vm at or above Thr emits a spike,
// sets vm to VmR and starts a refractory period of RefractoryCounts steps.
func (sp *SpikeParams) Refract(rf *RefractState, vm *float32) bool {
	if rf.Phase == Refractory {
		rf.Count--
		*vm = sp.VmR
		if rf.Count <= 0 {
			rf.Init()
		}
		return false
	}
	if *vm < sp.Thr {
		return false
	}
	*vm = sp.VmR
	rf.Count = sp.RefractoryCounts
	if rf.Count > 0 {
		rf.Phase = Refractory
	}
	return true
}
