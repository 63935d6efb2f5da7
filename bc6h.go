// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// signExtend interprets the low n bits of v as a two's-complement integer.
func signExtend(v uint64, n uint) int32 {
	shift := 32 - n
	return int32(uint32(v)<<shift) >> shift
}

// unquantizeUnsigned expands an n-bit unsigned endpoint component (n < 16)
// to BC6H's 16-bit unsigned intermediate domain: 0 maps to 0, the maximum
// n-bit value maps to 0xFFFF, and every other value c maps to
// (2c+1) << (15-n), the middle of its evenly spaced step.
func unquantizeUnsigned(comp int32, bits uint) int32 {
	if bits >= 16 {
		return comp
	}
	if comp == 0 {
		return 0
	}
	maxVal := int32(1)<<bits - 1
	if comp >= maxVal {
		return 0xFFFF
	}
	return ((comp << 1) + 1) << (15 - bits)
}

// unquantizeSigned is unquantizeUnsigned for BC6H's signed profile: the
// sign bit is split off first, the magnitude is unquantized against an
// (n-1)-bit range, and the sign is reapplied.
func unquantizeSigned(comp int32, bits uint) int32 {
	if bits >= 16 {
		return comp
	}
	sign := comp < 0
	if sign {
		comp = -comp
	}
	maxVal := int32(1)<<(bits-1) - 1
	var unq int32
	switch {
	case comp == 0:
		unq = 0
	case comp >= maxVal:
		unq = 0xFFFF
	default:
		unq = ((comp << 1) + 1) << (15 - (bits - 1))
	}
	if sign {
		unq = -unq
	}
	return unq
}

// bc6hFinishToHalf applies BC6H's final 31/32 scale-down to an interpolated
// 16-bit intermediate component and reinterprets the result's bit pattern
// as an IEEE 754 binary16 value (not a numeric conversion: the integer bits
// become the half's sign/exponent/mantissa bits directly).
func bc6hFinishToHalf(v int32, signed bool) uint16 {
	scaled := (v * 31) / 32
	if !signed {
		return uint16(scaled)
	}
	sign := uint16(0)
	if scaled < 0 {
		sign = 0x8000
		scaled = -scaled
	}
	return sign | uint16(scaled)
}

// DecompressBlockBPTCFloat decodes a 128-bit BC6H block of unsigned HDR RGB
// data into sixteen half-float RGBX16 pixels (X left zero), recognizing all
// 14 of the format's block modes (1-2 with a 2-bit mode selector and 10-
// and 7-bit base endpoints; 3-14 with a 5-bit selector; 10 and 11 storing
// endpoints directly rather than as a base plus signed delta).
func DecompressBlockBPTCFloat(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	return decompressBC6H(bitstring, modeMask, pixelBuffer, false)
}

// DecompressBlockBPTCSignedFloat is DecompressBlockBPTCFloat for BC6H's
// signed HDR profile, whose endpoint and delta fields are two's-complement
// and whose output halves carry a sign bit.
func DecompressBlockBPTCSignedFloat(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	return decompressBC6H(bitstring, modeMask, pixelBuffer, true)
}

func decompressBC6H(bitstring []byte, modeMask uint32, pixelBuffer []byte, signed bool) bool {
	b := load128LE(bitstring)
	sel := b.extract(0, 5)
	if sel > 13 {
		return false
	}
	modeIndex := uint(sel)
	if modeMask&(uint32(1)<<modeIndex) == 0 {
		return false
	}
	info := bc6hModes[modeIndex]
	pos := info.selectorBits

	var partition uint64
	if info.subsetCount == 2 {
		partition = b.extract(pos, 5)
		pos += 5
	}

	var endpoints [4][3]int32
	if info.transformed {
		var base [3]int32
		for c := 0; c < 3; c++ {
			width := info.channel[c].w
			raw := b.extract(pos, width)
			pos += width
			if signed {
				base[c] = signExtend(raw, width)
			} else {
				base[c] = int32(raw)
			}
		}

		numDeltas := 1
		if info.subsetCount == 2 {
			numDeltas = 3
		}
		var delta [3][3]int32
		for c := 0; c < 3; c++ {
			for i := 0; i < numDeltas; i++ {
				width := info.channel[c].d[i]
				delta[c][i] = signExtend(b.extract(pos, width), width)
				pos += width
			}
		}

		endpoints[0] = base
		for i := 0; i < numDeltas; i++ {
			for c := 0; c < 3; c++ {
				maxVal := int32(1)<<info.channel[c].w - 1
				endpoints[i+1][c] = clampDelta(base[c]+delta[c][i], signed, maxVal)
			}
		}
	} else {
		numEndpoints := 2
		if info.subsetCount == 2 {
			numEndpoints = 4
		}
		for e := 0; e < numEndpoints; e++ {
			for c := 0; c < 3; c++ {
				width := info.channel[c].w
				raw := b.extract(pos, width)
				pos += width
				if signed {
					endpoints[e][c] = signExtend(raw, width)
				} else {
					endpoints[e][c] = int32(raw)
				}
			}
		}
	}

	domain := [3]uint{info.channel[0].w, info.channel[1].w, info.channel[2].w}

	if info.subsetCount == 1 {
		var idx [16]uint64
		for i := 0; i < 16; i++ {
			bits := uint(4)
			if i == 0 {
				bits = 3
			}
			idx[i] = b.extract(pos, bits)
			pos += bits
		}
		weights := bc7Weights4
		for i := 0; i < 16; i++ {
			w := weights[idx[i]]
			writeBC6HPixel(pixelBuffer, i, endpoints[0], endpoints[1], w, domain, signed)
		}
		return true
	}

	anchor1, _ := bc7Anchors(2, partition)
	var idx [16]uint64
	for i := 0; i < 16; i++ {
		bits := uint(3)
		if i == 0 || i == anchor1 {
			bits = 2
		}
		idx[i] = b.extract(pos, bits)
		pos += bits
	}
	weights := bc7Weights3
	for i := 0; i < 16; i++ {
		subset := bc7Subset(2, partition, i)
		e0, e1 := endpoints[subset*2], endpoints[subset*2+1]
		w := weights[idx[i]]
		writeBC6HPixel(pixelBuffer, i, e0, e1, w, domain, signed)
	}
	return true
}

func clampDelta(v int32, signed bool, maxVal int32) int32 {
	lo := int32(0)
	if signed {
		lo = -maxVal
	}
	if v < lo {
		return lo
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// writeBC6HPixel unquantizes each endpoint component from its mode-specific
// bit width to BC6H's 16-bit intermediate domain, linearly interpolates in
// that domain, then finishes the result into a half-float bit pattern.
func writeBC6HPixel(pixelBuffer []byte, texel int, e0, e1 [3]int32, w int32, domain [3]uint, signed bool) {
	out := texel * 8
	for c := 0; c < 3; c++ {
		var u0, u1 int32
		if signed {
			u0 = unquantizeSigned(e0[c], domain[c])
			u1 = unquantizeSigned(e1[c], domain[c])
		} else {
			u0 = unquantizeUnsigned(e0[c], domain[c])
			u1 = unquantizeUnsigned(e1[c], domain[c])
		}
		v := ((64-w)*u0 + w*u1 + 32) >> 6
		storeU16LE(pixelBuffer[out+c*2:], bc6hFinishToHalf(v, signed))
	}
	storeU16LE(pixelBuffer[out+6:], 0)
}
