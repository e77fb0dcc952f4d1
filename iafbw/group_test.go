// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import (
	"errors"
	"strings"
	"testing"

	"github.com/emer/iafbw/chans"
)

func TestGroupCycle(t *testing.T) {
	np, _ := NewParams(0.1)
	gp := NewGroup("Exc", np, 10)
	if len(gp.Neurons) != 10 || len(gp.Inputs) != 10 {
		t.Fatalf("group size err: %v %v\n", len(gp.Neurons), len(gp.Inputs))
	}
	gp.Inputs[3].Add(chans.AMPAExt, 1000)
	gp.Inputs[7].Add(chans.AMPAExt, 1000)
	spk, err := gp.Cycle(0.1)
	if err != nil || len(spk) != 0 {
		t.Errorf("step 0 err: spiked: %v, err: %v\n", spk, err)
	}
	spk, err = gp.Cycle(0.1)
	if err != nil || len(spk) != 2 || spk[0] != 3 || spk[1] != 7 {
		t.Errorf("step 1 err: spiked: %v, err: %v\n", spk, err)
	}
	spk, _ = gp.Cycle(0.1)
	if len(spk) != 0 {
		t.Errorf("step 2 err: spiked: %v\n", spk)
	}
	for ni := range gp.Neurons {
		nrn := &gp.Neurons[ni]
		cor := float32(-70)
		if ni == 3 || ni == 7 {
			cor = -55
		}
		if nrn.Vm != cor {
			t.Errorf("vm err: neuron: %v, vm: %v, cor: %v\n", ni, nrn.Vm, cor)
		}
	}
	gp.InitState()
	gp.CalcVmStats()
	if gp.VmStats.Avg != -70 || gp.VmStats.Max != -70 {
		t.Errorf("VmStats err: %+v\n", gp.VmStats)
	}
}

func TestGroupStepSize(t *testing.T) {
	np, _ := NewParams(0.1)
	gp := NewGroup("Exc", np, 3)
	gp.Inputs[0].Add(chans.GABA, 1)
	if _, err := gp.Cycle(1); !errors.Is(err, ErrInvalidStepSize) {
		t.Errorf("Cycle err: %v\n", err)
	}
	if gp.Inputs[0].Pending().Syn.GABA != 1 {
		t.Errorf("rejected step drained inputs\n")
	}
}

func TestGroupSizeReport(t *testing.T) {
	np, _ := NewParams(0.1)
	gp := NewGroup("Exc", np, 1600)
	rep := gp.SizeReport()
	if !strings.Contains(rep, "Exc") || !strings.Contains(rep, "Neurons: 1600") {
		t.Errorf("SizeReport err: %s\n", rep)
	}
}

func TestTime(t *testing.T) {
	tm := NewTime(0.1)
	for i := 0; i < 10; i++ {
		tm.CycleInc()
	}
	if tm.Cycle != 10 {
		t.Errorf("Cycle err: %v\n", tm.Cycle)
	}
	if dif := tm.Time - 1; dif > difTol || dif < -difTol {
		t.Errorf("Time err: %v, cor: 1\n", tm.Time)
	}
	tm.Reset()
	if tm.Cycle != 0 || tm.Time != 0 || tm.Dt != 0.1 {
		t.Errorf("Reset err: %+v\n", tm)
	}
}
