// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// ETC2_PUNCHTHROUGH always uses the differential (5-bit + delta) base-color
// layout, never the 4-bit individual layout: ModeMaskAllModesETC2Punchthrough
// excludes ModeMaskETCIndividual. Bit 33 (the "diff" bit in plain ETC2)
// becomes an opaque flag instead: 1 means every pixel is opaque, 0 means a
// pixel whose 2-bit index equals 2 is fully transparent instead of taking
// its usual color.

func etc2ClassifyDifferential(v uint64) etc2SubMode {
	_, _, overR, overG, overB := etcIndividualOrDifferentialBase(v, true)
	switch {
	case overR:
		return etc2SubModeT
	case overG:
		return etc2SubModeH
	case overB:
		return etc2SubModePlanar
	}
	return etc2SubModeDifferential
}

// GetModeETC2Punchthrough returns the ModeMaskETC* bit describing
// bitstring's internal sub-mode (never ModeMaskETCIndividual).
func GetModeETC2Punchthrough(bitstring []byte) uint32 {
	v := etcBigEndian64(bitstring)
	switch etc2ClassifyDifferential(v) {
	case etc2SubModeT:
		return ModeMaskETCT
	case etc2SubModeH:
		return ModeMaskETCH
	case etc2SubModePlanar:
		return ModeMaskETCPlanar
	default:
		return ModeMaskETCDifferential
	}
}

// DecompressBlockETC2Punchthrough decodes a 64-bit ETC2 punchthrough-alpha
// block into sixteen RGBA8 pixels, each either opaque or fully transparent.
func DecompressBlockETC2Punchthrough(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	v := etcBigEndian64(bitstring)
	opaque := (v>>33)&1 != 0

	if flags&DecompressFlagOpaqueOnly != 0 && !opaque {
		return false
	}
	if flags&DecompressFlagNonOpaqueOnly != 0 && opaque {
		return false
	}

	sub := etc2ClassifyDifferential(v)
	var subMask uint32
	switch sub {
	case etc2SubModeT:
		subMask = ModeMaskETCT
	case etc2SubModeH:
		subMask = ModeMaskETCH
	case etc2SubModePlanar:
		subMask = ModeMaskETCPlanar
	default:
		subMask = ModeMaskETCDifferential
	}
	if modeMask&subMask == 0 {
		return false
	}

	switch sub {
	case etc2SubModePlanar:
		c0, c1, c2 := decodeETC2PlanarCorners(v)
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				out := (y*4 + x) * 4
				for ch := 0; ch < 3; ch++ {
					val := (int32(x)*(c1[ch]-c0[ch]) + int32(y)*(c2[ch]-c0[ch]) + 4*c0[ch] + 2) >> 2
					pixelBuffer[out+ch] = clamp0to255(val)
				}
				pixelBuffer[out+3] = 0xFF
			}
		}
		return true

	case etc2SubModeT:
		colors := decodeETC2TMode(v)
		writePunchthroughIndexedPixels(v, colors, opaque, pixelBuffer)
		return true

	case etc2SubModeH:
		colors := decodeETC2HMode(v)
		writePunchthroughIndexedPixels(v, colors, opaque, pixelBuffer)
		return true

	default: // differential
		base0, base1, _, _, _ := etcIndividualOrDifferentialBase(v, true)
		flip := (v >> 32) & 1
		table0 := etcModifierTable[(v>>37)&0x7]
		table1 := etcModifierTable[(v>>34)&0x7]
		bases := [2][3]uint8{base0, base1}
		tables := [2][4]int32{table0, table1}
		blockOf := etcFlipTable[flip]

		for i := 0; i < 16; i++ {
			x, y := i/4, i%4
			half := blockOf[i]
			idx := ((v >> uint(i)) & 1) | ((v >> uint(15+i)) & 2)
			out := (y*4 + x) * 4
			if idx == 2 && !opaque {
				pixelBuffer[out+0] = 0
				pixelBuffer[out+1] = 0
				pixelBuffer[out+2] = 0
				pixelBuffer[out+3] = 0
				continue
			}
			base := bases[half]
			mod := tables[half][idx]
			pixelBuffer[out+0] = clamp0to255(int32(base[0]) + mod)
			pixelBuffer[out+1] = clamp0to255(int32(base[1]) + mod)
			pixelBuffer[out+2] = clamp0to255(int32(base[2]) + mod)
			pixelBuffer[out+3] = 0xFF
		}
		return true
	}
}

func writePunchthroughIndexedPixels(v uint64, colors [4][3]uint8, opaque bool, pixelBuffer []byte) {
	for i := 0; i < 16; i++ {
		x, y := i/4, i%4
		idx := ((v >> uint(i)) & 1) | ((v >> uint(15+i)) & 2)
		out := (y*4 + x) * 4
		if idx == 2 && !opaque {
			pixelBuffer[out+0] = 0
			pixelBuffer[out+1] = 0
			pixelBuffer[out+2] = 0
			pixelBuffer[out+3] = 0
			continue
		}
		c := colors[idx]
		pixelBuffer[out+0] = c[0]
		pixelBuffer[out+1] = c[1]
		pixelBuffer[out+2] = c[2]
		pixelBuffer[out+3] = 0xFF
	}
}
