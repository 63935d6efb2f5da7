// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// eacModifierTable holds the sixteen EAC modifier rows shared by the alpha
// channel of ETC2_EAC and by the R11/RG11 single- and dual-channel formats.
var eacModifierTable = [16][8]int32{
	{-3, -6, -9, -15, 2, 5, 8, 14},
	{-3, -7, -10, -13, 2, 6, 9, 12},
	{-2, -5, -8, -13, 1, 4, 7, 12},
	{-2, -4, -6, -13, 1, 3, 5, 12},
	{-3, -6, -8, -12, 2, 5, 7, 11},
	{-3, -7, -9, -11, 2, 6, 8, 10},
	{-4, -7, -8, -11, 3, 6, 7, 10},
	{-3, -5, -8, -11, 2, 4, 7, 10},
	{-2, -6, -8, -10, 1, 5, 7, 9},
	{-2, -5, -8, -10, 1, 4, 7, 9},
	{-2, -4, -8, -10, 1, 3, 7, 9},
	{-2, -5, -7, -10, 1, 4, 6, 9},
	{-3, -4, -7, -10, 2, 3, 6, 9},
	{-1, -2, -3, -10, 0, 1, 2, 9},
	{-4, -6, -8, -9, 3, 5, 7, 8},
	{-3, -5, -7, -9, 2, 4, 6, 8},
}

// eacDecodeValues decodes one 64-bit EAC block (shared layout for alpha-in-
// ETC2_EAC, R11 and each channel of RG11) into sixteen values in scan order
// (x outer, y inner, matching etcFlipTable's index convention). base is
// sign-extended by the caller when decoding a signed variant.
func eacDecodeValues(v uint64, base int32, unsigned bool) (values [16]int32) {
	multiplier := int32((v >> 52) & 0xF)
	table := eacModifierTable[(v>>48)&0xF]
	for i := 0; i < 16; i++ {
		mod := table[(v>>(uint(i)*3))&0x7]
		val := base*8 + 4 + mod*multiplier*8
		if unsigned {
			if val < 0 {
				val = 0
			} else if val > 2047 {
				val = 2047
			}
		} else {
			if val < -1023 {
				val = -1023
			} else if val > 1023 {
				val = 1023
			}
		}
		values[15-i] = val
	}
	return values
}

func expand11to16(v int32) uint16 {
	if v < 0 {
		v = 0
	}
	if v > 2047 {
		v = 2047
	}
	u := uint32(v)
	return uint16((u << 5) | (u >> 6))
}

func expandSigned11to16(v int32) int16 {
	if v < -1023 {
		v = -1023
	}
	if v > 1023 {
		v = 1023
	}
	return int16(v * 32)
}

func storeU16LE(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func storeS16LE(b []byte, v int16) {
	storeU16LE(b, uint16(v))
}

// eacAlphaBytes decodes the 64-bit EAC alpha prefix of an ETC2_EAC block
// into sixteen 8-bit alpha values in row-major (top-to-bottom, left-to-
// right) order, as consumed directly by DecompressBlockETC2EAC. Unlike
// eacDecodeValues (used by the 11-bit R11/RG11 formats), alpha stays at
// 8-bit precision: base and modifier combine directly, with no *8/+4
// rescaling.
func eacAlphaBytes(v uint64) (alpha [16]uint8) {
	base := int32((v >> 56) & 0xFF)
	multiplier := int32((v >> 52) & 0xF)
	table := eacModifierTable[(v>>48)&0xF]
	for i := 0; i < 16; i++ {
		mod := table[(v>>(uint(i)*3))&0x7]
		x, y := (15-i)/4, (15-i)%4
		alpha[y*4+x] = clamp0to255(base + mod*multiplier)
	}
	return alpha
}

// DecompressBlockEACR11 decodes a 64-bit unsigned EAC R11 block into sixteen
// R16 pixels.
func DecompressBlockEACR11(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	v := etcBigEndian64(bitstring)
	base := int32((v >> 56) & 0xFF)
	values := eacDecodeValues(v, base, true)
	for i := 0; i < 16; i++ {
		x, y := i/4, i%4
		storeU16LE(pixelBuffer[(y*4+x)*2:], expand11to16(values[i]))
	}
	return true
}

// DecompressBlockEACSignedR11 decodes a 64-bit signed EAC R11 block into
// sixteen signed R16 pixels.
func DecompressBlockEACSignedR11(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	v := etcBigEndian64(bitstring)
	base := int32(int8(uint8((v >> 56) & 0xFF)))
	values := eacDecodeValues(v, base, false)
	for i := 0; i < 16; i++ {
		x, y := i/4, i%4
		storeS16LE(pixelBuffer[(y*4+x)*2:], expandSigned11to16(values[i]))
	}
	return true
}

// DecompressBlockEACRG11 decodes a 128-bit unsigned EAC RG11 block (two
// consecutive 64-bit EAC blocks) into sixteen RG16 pixels.
func DecompressBlockEACRG11(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	vr := etcBigEndian64(bitstring[0:8])
	vg := etcBigEndian64(bitstring[8:16])
	baseR := int32((vr >> 56) & 0xFF)
	baseG := int32((vg >> 56) & 0xFF)
	valuesR := eacDecodeValues(vr, baseR, true)
	valuesG := eacDecodeValues(vg, baseG, true)
	for i := 0; i < 16; i++ {
		x, y := i/4, i%4
		out := pixelBuffer[(y*4+x)*4:]
		storeU16LE(out[0:], expand11to16(valuesR[i]))
		storeU16LE(out[2:], expand11to16(valuesG[i]))
	}
	return true
}

// DecompressBlockEACSignedRG11 decodes a 128-bit signed EAC RG11 block into
// sixteen signed RG16 pixels.
func DecompressBlockEACSignedRG11(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	vr := etcBigEndian64(bitstring[0:8])
	vg := etcBigEndian64(bitstring[8:16])
	baseR := int32(int8(uint8((vr >> 56) & 0xFF)))
	baseG := int32(int8(uint8((vg >> 56) & 0xFF)))
	valuesR := eacDecodeValues(vr, baseR, false)
	valuesG := eacDecodeValues(vg, baseG, false)
	for i := 0; i < 16; i++ {
		x, y := i/4, i%4
		out := pixelBuffer[(y*4+x)*4:]
		storeS16LE(out[0:], expandSigned11to16(valuesR[i]))
		storeS16LE(out[2:], expandSigned11to16(valuesG[i]))
	}
	return true
}
