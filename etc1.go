// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// ETC1/ETC2's mode, base-color and table-index fields are byte-aligned, and
// the Khronos data format spec numbers their bits with the block's first
// byte holding the most significant bits of a conceptual 64-bit word. That's
// the opposite convention from the little-endian bitio helpers used by BC7
// and BC6H, so ETC decoding works from its own big-endian assembly instead.
func etcBigEndian64(block []byte) uint64 {
	_ = block[7]
	return uint64(block[0])<<56 |
		uint64(block[1])<<48 |
		uint64(block[2])<<40 |
		uint64(block[3])<<32 |
		uint64(block[4])<<24 |
		uint64(block[5])<<16 |
		uint64(block[6])<<8 |
		uint64(block[7])
}

func etcStoreBigEndian64(block []byte, v uint64) {
	_ = block[7]
	block[0] = byte(v >> 56)
	block[1] = byte(v >> 48)
	block[2] = byte(v >> 40)
	block[3] = byte(v >> 32)
	block[4] = byte(v >> 24)
	block[5] = byte(v >> 16)
	block[6] = byte(v >> 8)
	block[7] = byte(v)
}

// etcModifierTable holds ETC1/ETC2's eight intensity modifier rows, indexed
// [table][2-bit per-pixel index].
var etcModifierTable = [8][4]int32{
	{2, 8, -2, -8},
	{5, 17, -5, -17},
	{9, 29, -9, -29},
	{13, 42, -13, -42},
	{18, 60, -18, -60},
	{24, 80, -24, -80},
	{33, 106, -33, -106},
	{47, 183, -47, -183},
}

// etcFlipTable[flip][i] gives the half (0 or 1) that scan-order pixel i (x =
// i/4, y = i%4) belongs to.
var etcFlipTable = [2][16]uint8{
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1},
}

func expand4to8(v uint64) uint8 {
	x := uint8(v & 0xF)
	return (x << 4) | x
}

func expand5to8(v uint64) uint8 {
	x := uint8(v & 0x1F)
	return (x << 3) | (x >> 2)
}

// etcIndividualOrDifferentialBase decodes the two (non-T/H/PLANAR) base
// colors and reports, per channel, whether a differential (diff=1) delta
// carried the second base color outside the 5-bit range 0..31, in the
// priority order ETC2's
// reinterpretation check uses: red, green, blue.
func etcIndividualOrDifferentialBase(v uint64, diff bool) (base0, base1 [3]uint8, overflowR, overflowG, overflowB bool) {
	// byteShift is the bit position of byte0 (R), byte1 (G) and byte2 (B)
	// within v, each byte holding that channel's two base-color fields.
	byteShifts := [3]uint{56, 48, 40}
	diffTable := [8]int32{0, 1, 2, 3, -4, -3, -2, -1}
	overflow := [3]bool{}
	for i, shift := range byteShifts {
		if !diff {
			a := (v >> (shift + 4)) & 0xF
			b := (v >> shift) & 0xF
			base0[i] = expand4to8(a)
			base1[i] = expand4to8(b)
			continue
		}
		a := (v >> (shift + 3)) & 0x1F
		d := (v >> shift) & 0x7
		b := int32(a) + diffTable[d]
		if b < 0 || b > 31 {
			overflow[i] = true
			continue
		}
		base0[i] = expand5to8(a)
		base1[i] = expand5to8(uint64(b))
	}
	return base0, base1, overflow[0], overflow[1], overflow[2]
}

// GetModeETC1 returns the single internal mode bit (ModeMaskETCIndividual or
// ModeMaskETCDifferential) of an ETC1 block, or 0 if the block is not valid
// ETC1 (a differential delta overflow, which only ETC2 can reinterpret).
func GetModeETC1(bitstring []byte) uint32 {
	v := etcBigEndian64(bitstring)
	if (v>>33)&1 == 0 {
		return ModeMaskETCIndividual
	}
	_, _, overR, overG, overB := etcIndividualOrDifferentialBase(v, true)
	if overR || overG || overB {
		return 0
	}
	return ModeMaskETCDifferential
}

// DecompressBlockETC1 decodes a 64-bit ETC1 block into sixteen RGBA8 pixels
// (opaque, alpha always 0xFF). It returns false if the block's internal mode
// is not permitted by modeMask, or if diff=1 and any channel's delta
// overflows 5-bit unsigned range (only ETC2 can reinterpret that as T/H/
// PLANAR).
func DecompressBlockETC1(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	v := etcBigEndian64(bitstring)
	diff := (v>>33)&1 != 0
	flip := (v >> 32) & 1

	base0, base1, overR, overG, overB := etcIndividualOrDifferentialBase(v, diff)
	if diff && (overR || overG || overB) {
		return false
	}

	mode := uint32(ModeMaskETCIndividual)
	if diff {
		mode = ModeMaskETCDifferential
	}
	if modeMask&mode == 0 {
		return false
	}
	if flags&DecompressFlagOpaqueOnly != 0 {
		// ETC1 RGB is always opaque; NON_OPAQUE_ONLY can never be satisfied.
	}
	if flags&DecompressFlagNonOpaqueOnly != 0 {
		return false
	}

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

// SetModeETC1 rewrites bitstring's base-color fields and diff bit so that
// re-decoding it with DecompressBlockETC1 yields the given sixteen
// already-decoded RGBA8 pixel colors, while leaving the sixteen 2-bit
// modifier indices (and hence the flip bit) untouched. The two
// intensity-table fields are also kept as they are: no other table is
// tried when searching for base colors. mode must be
// ModeMaskETCIndividual or ModeMaskETCDifferential. flags' MAX_TWO_COLORS
// bit is accepted as a hint that colors contains at most two distinct
// values; it does not change the result.
//
// If colors cannot be expressed in the requested mode (together with the
// existing intensity tables and modifier indices), bitstring is left unchanged, per the open
// question in the design notes.
func SetModeETC1(bitstring []byte, mode uint32, flags SetModeFlags, colors [16]uint32) {
	v := etcBigEndian64(bitstring)
	flip := (v >> 32) & 1
	blockOf := etcFlipTable[flip]
	table0 := etcModifierTable[(v>>37)&0x7]
	table1 := etcModifierTable[(v>>34)&0x7]
	tables := [2][4]int32{table0, table1}

	// Recover each half's base color from one representative pixel (its
	// modifier offset is known from the existing, unchanged index bits),
	// then verify every pixel in that half agrees.
	var base [2][3]int32
	var haveBase [2]bool
	for i := 0; i < 16; i++ {
		half := blockOf[i]
		if haveBase[half] {
			continue
		}
		idx := ((v >> uint(i)) & 1) | ((v >> uint(15+i)) & 2)
		mod := tables[half][idx]
		x, y := i/4, i%4
		c := colors[(y*4+x)]
		r, g, b := unpackRGBA8(c)
		base[half][0] = int32(r) - mod
		base[half][1] = int32(g) - mod
		base[half][2] = int32(b) - mod
		haveBase[half] = true
	}

	for i := 0; i < 16; i++ {
		half := blockOf[i]
		idx := ((v >> uint(i)) & 1) | ((v >> uint(15+i)) & 2)
		mod := tables[half][idx]
		x, y := i/4, i%4
		c := colors[(y*4+x)]
		r, g, b := unpackRGBA8(c)
		if clamp0to255(base[half][0]+mod) != r ||
			clamp0to255(base[half][1]+mod) != g ||
			clamp0to255(base[half][2]+mod) != b {
			return // Not expressible with a shared per-half base; leave unchanged.
		}
	}

	var packed0, packed1 [3]uint64
	var diffBit uint64
	switch mode {
	case ModeMaskETCIndividual:
		for c := 0; c < 3; c++ {
			v0, ok0 := reduce8to4(base[0][c])
			v1, ok1 := reduce8to4(base[1][c])
			if !ok0 || !ok1 {
				return
			}
			packed0[c], packed1[c] = uint64(v0), uint64(v1)
		}
		diffBit = 0

	case ModeMaskETCDifferential:
		for c := 0; c < 3; c++ {
			v0, ok0 := reduce8to5(base[0][c])
			v1, ok1 := reduce8to5(base[1][c])
			if !ok0 || !ok1 {
				return
			}
			delta := int32(v1) - int32(v0)
			if delta < -4 || delta > 3 {
				return
			}
			packed0[c] = uint64(v0)
			packed1[c] = uint64(delta) & 0x7
		}
		diffBit = 1

	default:
		return
	}

	tableBits := v & (uint64(0x3F) << 34) // preserve the existing table0/table1 fields

	byteShifts := [3]uint{56, 48, 40}
	const colorFieldsMask = uint64(0xFFFFFFFF) << 32 // bytes 0-3
	v &^= colorFieldsMask
	for c, shift := range byteShifts {
		if diffBit == 0 {
			v |= packed0[c] << (shift + 4)
			v |= packed1[c] << shift
		} else {
			v |= packed0[c] << (shift + 3)
			v |= packed1[c] << shift
		}
	}
	v |= tableBits
	v |= diffBit << 33
	v |= flip << 32

	etcStoreBigEndian64(bitstring, v)
}

func unpackRGBA8(c uint32) (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

func reduce8to4(v int32) (uint8, bool) {
	if v < 0 || v > 255 {
		return 0, false
	}
	n := uint8(v)
	if n&0xF != n>>4 {
		return 0, false
	}
	return n >> 4, true
}

func reduce8to5(v int32) (uint8, bool) {
	if v < 0 || v > 255 {
		return 0, false
	}
	n := uint8(v)
	hi := n >> 3
	if (hi<<3)|(hi>>2) != n {
		return 0, false
	}
	return hi, true
}
