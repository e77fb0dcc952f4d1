// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/goki/ki/kit"

// Channel names one of the synaptic channels, used to route
// incoming synaptic events to the corresponding gating variable.
type Channel int32

//go:generate stringer -type=Channel

var KiT_Channel = kit.Enums.AddEnum(ChannelN, kit.NotBitFlag, nil)

func (ev Channel) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Channel) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// AMPAExt is AMPA from external (background) inputs
	AMPAExt Channel = iota

	// AMPARec is AMPA from recurrent inputs
	AMPARec

	// NMDA is voltage-gated NMDA
	NMDA

	// GABA is GABA-A inhibition
	GABA

	ChannelN
)

// IsValid returns true if this is one of the defined channels
func (ev Channel) IsValid() bool {
	return ev >= AMPAExt && ev < ChannelN
}
