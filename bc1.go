// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

func unpackRGB565(c uint16) (r, g, b uint8) {
	v := uint64(c)
	r = expand5to8(v >> 11)
	g = expand6to8(v >> 5)
	b = expand5to8(v)
	return r, g, b
}

// bc1ColorBlock decodes the shared 64-bit S3TC color block into four
// candidate colors and reports whether it is in four-color (opaque) mode
// (color0 > color1) or three-color mode, where BC1 reconstructs color index
// 3 as opaque black and BC1A as transparent black.
func bc1ColorBlock(v uint64) (colors [4][3]uint8, fourColorMode bool) {
	return bc1ColorBlockMode(v, false)
}

// bc1ColorBlockMode is bc1ColorBlock generalized for BC2/BC3, whose color
// block always interpolates in four-color mode regardless of how color0
// and color1 compare: forceFourColor overrides the comparison.
func bc1ColorBlockMode(v uint64, forceFourColor bool) (colors [4][3]uint8, fourColorMode bool) {
	color0 := uint16(v & 0xFFFF)
	color1 := uint16((v >> 16) & 0xFFFF)
	r0, g0, b0 := unpackRGB565(color0)
	r1, g1, b1 := unpackRGB565(color1)
	colors[0] = [3]uint8{r0, g0, b0}
	colors[1] = [3]uint8{r1, g1, b1}

	fourColorMode = forceFourColor || color0 > color1
	if fourColorMode {
		colors[2] = [3]uint8{
			uint8((2*int32(r0) + int32(r1) + 1) / 3),
			uint8((2*int32(g0) + int32(g1) + 1) / 3),
			uint8((2*int32(b0) + int32(b1) + 1) / 3),
		}
		colors[3] = [3]uint8{
			uint8((int32(r0) + 2*int32(r1) + 1) / 3),
			uint8((int32(g0) + 2*int32(g1) + 1) / 3),
			uint8((int32(b0) + 2*int32(b1) + 1) / 3),
		}
	} else {
		colors[2] = [3]uint8{
			uint8((int32(r0) + int32(r1)) / 2),
			uint8((int32(g0) + int32(g1)) / 2),
			uint8((int32(b0) + int32(b1)) / 2),
		}
		colors[3] = [3]uint8{0, 0, 0}
	}
	return colors, fourColorMode
}

func decodeBC1Family(bitstring []byte, flags DecompressFlags, transparentIndex3 bool, pixelBuffer []byte) bool {
	v := load64LE(bitstring)
	colors, fourColorMode := bc1ColorBlock(v)

	if flags&DecompressFlagOpaqueOnly != 0 && !fourColorMode && transparentIndex3 {
		return false
	}
	if flags&DecompressFlagNonOpaqueOnly != 0 && (fourColorMode || !transparentIndex3) {
		return false
	}

	for i := 0; i < 16; i++ {
		idx := extractBits(v, 32+uint(i)*2, 2)
		c := colors[idx]
		out := i * 4
		pixelBuffer[out+0] = c[0]
		pixelBuffer[out+1] = c[1]
		pixelBuffer[out+2] = c[2]
		if idx == 3 && !fourColorMode && transparentIndex3 {
			pixelBuffer[out+3] = 0
		} else {
			pixelBuffer[out+3] = 0xFF
		}
	}
	return true
}

// DecompressBlockBC1 decodes a 64-bit BC1 (DXT1, no alpha) block into
// sixteen RGBA8 pixels, always opaque: the reserved three-color index
// decodes to opaque black rather than transparent.
func DecompressBlockBC1(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	return decodeBC1Family(bitstring, flags, false, pixelBuffer)
}

// DecompressBlockBC1A decodes a 64-bit BC1A (DXT1 with 1-bit alpha) block
// into sixteen RGBA8 pixels; the reserved three-color index decodes to
// fully transparent black.
func DecompressBlockBC1A(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	return decodeBC1Family(bitstring, flags, true, pixelBuffer)
}
