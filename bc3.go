// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// DecompressBlockBC3 decodes a 128-bit BC3 (DXT5) block: a 64-bit
// interpolated alpha plane (the same shape as BC4/RGTC1) followed by a
// 64-bit S3TC color block always read in four-color mode.
func DecompressBlockBC3(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	alpha := decodeInterpolatedChannel(bitstring[0:8], true)
	cv := load64LE(bitstring[8:16])
	colors, _ := bc1ColorBlockMode(cv, true)

	for i := 0; i < 16; i++ {
		idx := extractBits(cv, 32+uint(i)*2, 2)
		c := colors[idx]
		out := i * 4
		pixelBuffer[out+0] = c[0]
		pixelBuffer[out+1] = c[1]
		pixelBuffer[out+2] = c[2]
		pixelBuffer[out+3] = uint8(alpha[i])
	}
	return true
}
