// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// decodeInterpolatedChannel decodes one 64-bit interpolated single-channel
// block shared by BC3's alpha plane and RGTC1/RGTC2: a two-byte endpoint
// pair followed by sixteen 3-bit indices (48 bits), all little-endian, in
// row-major (top-to-bottom, left-to-right) pixel order.
//
// unsignedRange selects [0, 255] codewords (BC3 alpha, unsigned RGTC) versus
// signed, two's-complement codewords clamped to [-127, 127] (signed RGTC),
// per the S3TC/RGTC convention that -128 is not a valid endpoint value.
func decodeInterpolatedChannel(block []byte, unsignedRange bool) (values [16]int32) {
	v := load64LE(block)
	var a0, a1 int32
	if unsignedRange {
		a0, a1 = int32(v&0xFF), int32((v>>8)&0xFF)
	} else {
		a0 = int32(clampSignedEndpoint(int8(v & 0xFF)))
		a1 = int32(clampSignedEndpoint(int8((v >> 8) & 0xFF)))
	}

	var table [8]int32
	table[0], table[1] = a0, a1
	if a0 > a1 {
		for k := int32(2); k <= 7; k++ {
			table[k] = ((7-k+1)*a0 + (k-1)*a1) / 7
		}
	} else {
		for k := int32(2); k <= 5; k++ {
			table[k] = ((5-k+1)*a0 + (k-1)*a1) / 5
		}
		if unsignedRange {
			table[6], table[7] = 0, 255
		} else {
			table[6], table[7] = -127, 127
		}
	}

	for i := 0; i < 16; i++ {
		idx := extractBits(v, 16+uint(i)*3, 3)
		values[i] = table[idx]
	}
	return values
}

func clampSignedEndpoint(v int8) int8 {
	if v == -128 {
		return -127
	}
	return v
}
