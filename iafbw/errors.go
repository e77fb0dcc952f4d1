// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iafbw

import "errors"

var (
	// ErrInvalidParam is returned when the step size Dt, a time constant,
	// a conductance or the capacitance is not strictly positive.
	ErrInvalidParam = errors.New("iafbw: invalid parameter")

	// ErrInvalidStepSize is returned for a step size that is not strictly
	// positive, or that does not match the Dt that Params were built for.
	ErrInvalidStepSize = errors.New("iafbw: invalid step size")

	// ErrNegativeWeight is returned when adding a negative (or NaN)
	// weight to a synaptic channel.
	ErrNegativeWeight = errors.New("iafbw: negative synaptic weight")

	// ErrInvalidChannel is returned for an unknown synaptic channel.
	ErrInvalidChannel = errors.New("iafbw: invalid synaptic channel")
)
