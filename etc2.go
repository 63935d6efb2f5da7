// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// etcHModeIntensityTable holds the eight H-mode intensity modifiers, distinct
// from ETC1/T-mode's etcModifierTable.
var etcHModeIntensityTable = [8]int32{3, 6, 11, 16, 23, 32, 41, 64}

func expand6to8(v uint64) uint8 {
	x := uint8(v & 0x3F)
	return (x << 2) | (x >> 4)
}

func expand7to8(v uint64) uint8 {
	x := uint8(v & 0x7F)
	return (x << 1) | (x >> 6)
}

// etc2SubMode classifies a diff=1 ETC2 block's reinterpretation, following
// the same first-overflowing-channel priority (red, then green, then blue)
// as GetModeETC1's differential overflow check.
type etc2SubMode int

const (
	etc2SubModeDifferential etc2SubMode = iota
	etc2SubModeT
	etc2SubModeH
	etc2SubModePlanar
)

func etc2Classify(v uint64) etc2SubMode {
	if (v>>33)&1 == 0 {
		return etc2SubModeDifferential
	}
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

// GetModeETC2 returns the ModeMaskETC* bit describing bitstring's internal
// sub-mode.
func GetModeETC2(bitstring []byte) uint32 {
	v := etcBigEndian64(bitstring)
	if (v>>33)&1 == 0 {
		return ModeMaskETCIndividual
	}
	switch etc2Classify(v) {
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

func decodeETC2TMode(v uint64) (colors [4][3]uint8) {
	c0R := expand4to8(((v >> 57) & 0xC) | ((v >> 56) & 0x3))
	c0G := expand4to8(v >> 52)
	c0B := expand4to8(v >> 48)
	c2R := expand4to8(v >> 44)
	c2G := expand4to8(v >> 40)
	c2B := expand4to8(v >> 36)

	modIdx := ((v >> 33) & 0x6) | ((v >> 32) & 0x1)
	mod := etcHModeIntensityTable[modIdx]

	colors[0] = [3]uint8{c0R, c0G, c0B}
	colors[2] = [3]uint8{c2R, c2G, c2B}
	for i := 0; i < 3; i++ {
		colors[1][i] = clamp0to255(int32(colors[2][i]) + mod)
		colors[3][i] = clamp0to255(int32(colors[2][i]) - mod)
	}
	return colors
}

func decodeETC2HMode(v uint64) (colors [4][3]uint8) {
	c0R := expand4to8(v >> 59)
	c0G := expand4to8(((v >> 55) & 0xE) | ((v >> 52) & 0x1))
	c0B := expand4to8(((v >> 48) & 0x8) | ((v >> 47) & 0x7))
	c2R := expand4to8(v >> 43)
	c2G := expand4to8(v >> 39)
	c2B := expand4to8(v >> 35)

	modIdx := ((v >> 32) & 0x4) | ((v >> 31) & 0x2)
	if (int(c0R)<<16)+(int(c0G)<<8)+int(c0B) >= (int(c2R)<<16)+(int(c2G)<<8)+int(c2B) {
		modIdx++
	}
	mod := etcHModeIntensityTable[modIdx]

	c0 := [3]uint8{c0R, c0G, c0B}
	c2 := [3]uint8{c2R, c2G, c2B}
	for i := 0; i < 3; i++ {
		colors[0][i] = clamp0to255(int32(c0[i]) + mod)
		colors[1][i] = clamp0to255(int32(c0[i]) - mod)
		colors[2][i] = clamp0to255(int32(c2[i]) + mod)
		colors[3][i] = clamp0to255(int32(c2[i]) - mod)
	}
	return colors
}

func decodeETC2PlanarCorners(v uint64) (c0, c1, c2 [3]int32) {
	c0[0] = int32(expand6to8(v >> 57))
	c0[1] = int32(expand7to8(((v >> 50) & 0x40) | ((v >> 49) & 0x3F)))
	c0[2] = int32(expand6to8(((v >> 43) & 0x20) | ((v >> 40) & 0x18) | ((v >> 39) & 0x7)))

	c1[0] = int32(expand6to8(((v >> 33) & 0x3E) | ((v >> 32) & 0x1)))
	c1[1] = int32(expand7to8(v >> 25))
	c1[2] = int32(expand6to8(v >> 19))

	c2[0] = int32(expand6to8(v >> 13))
	c2[1] = int32(expand7to8(v >> 6))
	c2[2] = int32(expand6to8(v))
	return c0, c1, c2
}

// DecompressBlockETC2 decodes a 64-bit ETC2 RGB block into sixteen RGBA8
// pixels (always opaque). It reinterprets a diff=1 block whose delta
// overflows as T-mode, H-mode or PLANAR mode, per the first-overflowing-
// channel priority documented on etc2Classify.
func DecompressBlockETC2(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	if flags&DecompressFlagNonOpaqueOnly != 0 {
		return false
	}

	v := etcBigEndian64(bitstring)
	diff := (v>>33)&1 != 0

	if !diff {
		if modeMask&ModeMaskETCIndividual == 0 {
			return false
		}
		return decompressETC1Style(v, pixelBuffer)
	}

	switch etc2Classify(v) {
	case etc2SubModeDifferential:
		if modeMask&ModeMaskETCDifferential == 0 {
			return false
		}
		return decompressETC1Style(v, pixelBuffer)

	case etc2SubModeT:
		if modeMask&ModeMaskETCT == 0 {
			return false
		}
		colors := decodeETC2TMode(v)
		writeETC2IndexedPixels(v, colors, pixelBuffer)
		return true

	case etc2SubModeH:
		if modeMask&ModeMaskETCH == 0 {
			return false
		}
		colors := decodeETC2HMode(v)
		writeETC2IndexedPixels(v, colors, pixelBuffer)
		return true

	case etc2SubModePlanar:
		if modeMask&ModeMaskETCPlanar == 0 {
			return false
		}
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
	}
	return false
}

// decompressETC1Style decodes an individual (diff=0) or in-range
// differential (diff=1) block; T/H/PLANAR never reach here.
func decompressETC1Style(v uint64, pixelBuffer []byte) bool {
	diff := (v>>33)&1 != 0
	base0, base1, _, _, _ := etcIndividualOrDifferentialBase(v, diff)
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
		base := bases[half]
		mod := tables[half][idx]
		out := (y*4 + x) * 4
		pixelBuffer[out+0] = clamp0to255(int32(base[0]) + mod)
		pixelBuffer[out+1] = clamp0to255(int32(base[1]) + mod)
		pixelBuffer[out+2] = clamp0to255(int32(base[2]) + mod)
		pixelBuffer[out+3] = 0xFF
	}
	return true
}

// writeETC2IndexedPixels writes T/H-mode pixels, each of the sixteen pixels
// selecting one of the four colors via its 2-bit index.
func writeETC2IndexedPixels(v uint64, colors [4][3]uint8, pixelBuffer []byte) {
	for i := 0; i < 16; i++ {
		x, y := i/4, i%4
		idx := ((v >> uint(i)) & 1) | ((v >> uint(15+i)) & 2)
		c := colors[idx]
		out := (y*4 + x) * 4
		pixelBuffer[out+0] = c[0]
		pixelBuffer[out+1] = c[1]
		pixelBuffer[out+2] = c[2]
		pixelBuffer[out+3] = 0xFF
	}
}
