// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package poisson provides external Poisson spike input for iafbw neurons,
as in the background drive of Brunel & Wang (2001): each neuron receives
N independent Poisson spike trains at Rate Hz, each event adding Wt onto
one synaptic channel.

The number of events per step is sampled with the counter-based slrand
generator, so a given Source (key + counter) always produces the same
sequence of counts, independent of the order in which sources are updated.
*/
package poisson

import (
	"fmt"

	"github.com/emer/iafbw/chans"
	"github.com/emer/iafbw/iafbw"
	"github.com/goki/gosl/slrand"
	"github.com/goki/mat32"
)

// Params are the parameters of the Poisson input to each neuron
type Params struct {
	Chan chans.Channel `def:"AMPAExt" desc:"synaptic channel that receives the input events"`
	N    int           `def:"800" min:"0" desc:"number of independent input sources per neuron"`
	Rate float32       `def:"3" min:"0" desc:"firing rate of each source, in Hz"`
	Wt   float32       `def:"1" min:"0" desc:"weight of each input event, in nS"`

	NormMax float32 `def:"30" min:"0" desc:"above this expected number of events per step, counts are drawn from the normal approximation"`
	Lambda  float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"expected number of events per step = N * Rate * Dt"`
	ExpL    float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"exp(-Lambda)"`
}

func (pp *Params) Defaults() {
	pp.Chan = chans.AMPAExt
	pp.N = 800
	pp.Rate = 3
	pp.Wt = 1
	pp.NormMax = 30
}

// Update computes the expected events per step for step size dt (msec)
func (pp *Params) Update(dt float32) {
	pp.Lambda = float32(pp.N) * pp.Rate * dt / 1000
	pp.ExpL = mat32.Exp(-pp.Lambda)
}

// Validate returns an error if any parameter is out of range
func (pp *Params) Validate() error {
	if !pp.Chan.IsValid() {
		return fmt.Errorf("%w: poisson Chan = %v", iafbw.ErrInvalidChannel, pp.Chan)
	}
	if pp.N < 0 || !(pp.Rate >= 0) || !(pp.Wt >= 0) {
		return fmt.Errorf("%w: poisson N = %d, Rate = %g, Wt = %g, must be >= 0", iafbw.ErrInvalidParam, pp.N, pp.Rate, pp.Wt)
	}
	return nil
}

// Source is the random number state for the input to one neuron
type Source struct {
	Key     uint32       `desc:"unique key for this source, typically the neuron index"`
	Counter slrand.Uint2 `desc:"counter, incremented for each random number drawn"`
}

// NewSources returns n sources with keys 0..n-1, whose counters start
// from the given seed
func NewSources(n int, seed uint32) []Source {
	srcs := make([]Source, n)
	for i := range srcs {
		srcs[i].Key = uint32(i)
		srcs[i].Counter.Y = seed
	}
	return srcs
}

// float returns the next uniform random number in [0,1) from src
func (src *Source) float() float32 {
	r := slrand.RandFloat(src.Counter, src.Key)
	slrand.CounterIncr(&src.Counter)
	return r
}

// norm returns the next standard normal random number from src
func (src *Source) norm() float32 {
	r := slrand.RandNormFloat(src.Counter, src.Key)
	slrand.CounterIncr(&src.Counter)
	return r
}

// Count returns the number of input events for one step from src
func (pp *Params) Count(src *Source) int {
	if pp.Lambda <= 0 {
		return 0
	}
	if pp.Lambda > pp.NormMax {
		n := mat32.Round(pp.Lambda + mat32.Sqrt(pp.Lambda)*src.norm())
		if n < 0 {
			return 0
		}
		return int(n)
	}
	// Knuth's multiplication method
	k := 0
	p := src.float()
	for p > pp.ExpL {
		k++
		p *= src.float()
	}
	return k
}

// Gen generates the input events for one step from src into in,
// returning the number of events.
func (pp *Params) Gen(src *Source, in *iafbw.Inputs) (int, error) {
	n := pp.Count(src)
	if n == 0 {
		return 0, nil
	}
	return n, in.Add(pp.Chan, float32(n)*pp.Wt)
}

// GenGroup generates input events for one step into each neuron of gp,
// using one source per neuron, and returns the total number of events.
func (pp *Params) GenGroup(srcs []Source, gp *iafbw.Group) (int, error) {
	if len(srcs) != len(gp.Inputs) {
		return 0, fmt.Errorf("poisson.GenGroup: %d sources for %d neurons in group %s", len(srcs), len(gp.Inputs), gp.Nm)
	}
	tot := 0
	for ni := range srcs {
		n, err := pp.Gen(&srcs[ni], &gp.Inputs[ni])
		if err != nil {
			return tot, err
		}
		tot += n
	}
	return tot, nil
}
