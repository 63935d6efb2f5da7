// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// DecompressBlockBC2 decodes a 128-bit BC2 (DXT3) block: a 64-bit explicit
// 4-bit-per-pixel alpha plane followed by a 64-bit S3TC color block always
// read in four-color mode. BC2's color block never reserves a transparent
// index; alpha is carried entirely by the explicit plane.
func DecompressBlockBC2(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	av := load64LE(bitstring[0:8])
	cv := load64LE(bitstring[8:16])
	colors, _ := bc1ColorBlockMode(cv, true)

	for i := 0; i < 16; i++ {
		idx := extractBits(cv, 32+uint(i)*2, 2)
		c := colors[idx]
		nibble := extractBits(av, uint(i)*4, 4)
		out := i * 4
		pixelBuffer[out+0] = c[0]
		pixelBuffer[out+1] = c[1]
		pixelBuffer[out+2] = c[2]
		pixelBuffer[out+3] = uint8((nibble << 4) | nibble)
	}
	return true
}
