// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// BC6H shares its two-subset shape table with BPTC: the format's block
// header only ever selects a partition in [0,32), so bc7Partition2 and
// bc7Anchor2 (restricted to that range) serve both formats without
// duplication.

// bc6hChannelWidths describes one channel's endpoint field widths within a
// mode: w is the base width (or, for an untransformed mode, the width of
// every directly-stored endpoint); d holds the signed delta widths of the
// non-base endpoints (one entry for a one-subset mode's second endpoint,
// three for a two-subset mode's other three endpoints). d is unused when
// the mode is untransformed.
type bc6hChannelWidths struct {
	w uint
	d [3]uint
}

// bc6hModeInfo describes one of BC6H's 14 block modes: the width of the
// mode-selector field (2 bits for modes 1-2, 5 bits for modes 3-14), the
// partition count, whether endpoints are base+delta or stored directly,
// and the per-channel bit layout.
type bc6hModeInfo struct {
	selectorBits uint
	subsetCount  int
	transformed  bool
	channel      [3]bc6hChannelWidths
}

// bc6hModes is indexed directly by the raw 5-bit mode-selector field read
// from bit 0 of the block: values 0 and 1 are two-bit selectors (the other
// three bits belong to the next field), values 2-13 are five-bit selectors,
// and values 14-31 select no mode. Each mode's per-channel widths are sized
// so the fixed 128-bit block exactly accounts for: selector bits, a 5-bit
// partition for two-subset modes, the endpoint fields, and the index
// planes (46 index bits for two-subset modes, 63 for one-subset modes).
var bc6hModes = [14]bc6hModeInfo{
	0: { // mode 1: NS=2, 10-bit bases, 5-bit signed deltas
		selectorBits: 2, subsetCount: 2, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 10, d: [3]uint{5, 5, 5}},
			{w: 10, d: [3]uint{5, 5, 5}},
			{w: 10, d: [3]uint{5, 5, 5}},
		},
	},
	1: { // mode 2: NS=2, 7-bit bases, 6-bit signed deltas
		selectorBits: 2, subsetCount: 2, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 7, d: [3]uint{6, 6, 6}},
			{w: 7, d: [3]uint{6, 6, 6}},
			{w: 7, d: [3]uint{6, 6, 6}},
		},
	},
	2: { // mode 3: NS=2, red channel carries the extra precision bit
		selectorBits: 5, subsetCount: 2, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 10, d: [3]uint{5, 5, 4}},
			{w: 9, d: [3]uint{5, 5, 5}},
			{w: 9, d: [3]uint{5, 5, 5}},
		},
	},
	3: { // mode 4: NS=2, green channel carries the extra precision bit
		selectorBits: 5, subsetCount: 2, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 9, d: [3]uint{5, 5, 5}},
			{w: 10, d: [3]uint{5, 5, 4}},
			{w: 9, d: [3]uint{5, 5, 5}},
		},
	},
	4: { // mode 5: NS=2, blue channel carries the extra precision bit
		selectorBits: 5, subsetCount: 2, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 9, d: [3]uint{5, 5, 5}},
			{w: 9, d: [3]uint{5, 5, 5}},
			{w: 10, d: [3]uint{5, 5, 4}},
		},
	},
	5: { // mode 6: NS=2, uniform 9-bit bases, 5-bit signed deltas
		selectorBits: 5, subsetCount: 2, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 9, d: [3]uint{5, 5, 5}},
			{w: 9, d: [3]uint{5, 5, 5}},
			{w: 9, d: [3]uint{5, 5, 5}},
		},
	},
	6: { // mode 7: NS=2, red bonus, reduced delta on a different endpoint
		selectorBits: 5, subsetCount: 2, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 10, d: [3]uint{4, 5, 5}},
			{w: 9, d: [3]uint{5, 5, 5}},
			{w: 9, d: [3]uint{5, 5, 5}},
		},
	},
	7: { // mode 8: NS=2, green bonus, reduced delta on a different endpoint
		selectorBits: 5, subsetCount: 2, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 9, d: [3]uint{5, 5, 5}},
			{w: 10, d: [3]uint{4, 5, 5}},
			{w: 9, d: [3]uint{5, 5, 5}},
		},
	},
	8: { // mode 9: NS=2, blue bonus, reduced delta on a different endpoint
		selectorBits: 5, subsetCount: 2, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 9, d: [3]uint{5, 5, 5}},
			{w: 9, d: [3]uint{5, 5, 5}},
			{w: 10, d: [3]uint{4, 5, 5}},
		},
	},
	9: { // mode 10: NS=2, untransformed, uniform 6-bit direct endpoints
		selectorBits: 5, subsetCount: 2, transformed: false,
		channel: [3]bc6hChannelWidths{
			{w: 6, d: [3]uint{6, 6, 6}},
			{w: 6, d: [3]uint{6, 6, 6}},
			{w: 6, d: [3]uint{6, 6, 6}},
		},
	},
	10: { // mode 11: NS=1, untransformed, direct 10-bit endpoints
		selectorBits: 5, subsetCount: 1, transformed: false,
		channel: [3]bc6hChannelWidths{{w: 10}, {w: 10}, {w: 10}},
	},
	11: { // mode 12: NS=1, 11-bit base, 9-bit signed delta
		selectorBits: 5, subsetCount: 1, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 11, d: [3]uint{9}}, {w: 11, d: [3]uint{9}}, {w: 11, d: [3]uint{9}},
		},
	},
	12: { // mode 13: NS=1, 12-bit base, 8-bit signed delta
		selectorBits: 5, subsetCount: 1, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 12, d: [3]uint{8}}, {w: 12, d: [3]uint{8}}, {w: 12, d: [3]uint{8}},
		},
	},
	13: { // mode 14: NS=1, 13-bit base, 7-bit signed delta
		selectorBits: 5, subsetCount: 1, transformed: true,
		channel: [3]bc6hChannelWidths{
			{w: 13, d: [3]uint{7}}, {w: 13, d: [3]uint{7}}, {w: 13, d: [3]uint{7}},
		},
	},
}
