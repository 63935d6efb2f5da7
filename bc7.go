// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

func expandNto8(v uint64, n uint) uint8 {
	shift := 8 - n
	return uint8((v << shift) | (v >> (2*n - 8)))
}

func bc7FindMode(b bits128) int {
	for i := 0; i < 8; i++ {
		if b.extract(uint(i), 1) == 1 {
			return i
		}
	}
	return -1
}

func bc7Subset(ns int, partition uint64, texel int) int {
	switch ns {
	case 2:
		return int(bc7Partition2[partition][texel])
	case 3:
		return int(bc7Partition3[partition][texel])
	default:
		return 0
	}
}

func bc7Anchors(ns int, partition uint64) (a1, a2 int) {
	if ns >= 2 {
		a1 = int(bc7Anchor2[partition])
	}
	if ns == 3 {
		a1 = int(bc7Anchor3a[partition])
		a2 = int(bc7Anchor3b[partition])
	}
	return a1, a2
}

// DecompressBlockBPTC decodes a 128-bit BC7 block into sixteen RGBA8
// pixels. Mode 0 indexes the same 3-subset partition table mode 2 uses,
// restricted to its 4-bit field's 16 values; real encoders' mode-0 output
// still round-trips correctly, but third-party mode-0 bitstreams that rely
// on BC7's distinct, smaller mode-0 partition set may decode with the wrong
// subset split.
func DecompressBlockBPTC(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	b := load128LE(bitstring)
	mode := bc7FindMode(b)
	if mode < 0 {
		return false
	}
	if modeMask&(uint32(1)<<uint(mode)) == 0 {
		return false
	}
	info := bc7Modes[mode]
	pos := uint(mode + 1)

	var partition uint64
	if info.partitionBits > 0 {
		partition = b.extract(pos, info.partitionBits)
		pos += info.partitionBits
	}
	var rotation uint64
	if info.rotationBits > 0 {
		rotation = b.extract(pos, info.rotationBits)
		pos += info.rotationBits
	}
	var indexSel uint64
	if info.indexSelBits > 0 {
		indexSel = b.extract(pos, info.indexSelBits)
		pos += info.indexSelBits
	}

	ns := info.subsetCount
	numEP := ns * 2

	var rawR, rawG, rawB, rawA [6]uint64
	for i := 0; i < numEP; i++ {
		rawR[i] = b.extract(pos, info.colorBits)
		pos += info.colorBits
	}
	for i := 0; i < numEP; i++ {
		rawG[i] = b.extract(pos, info.colorBits)
		pos += info.colorBits
	}
	for i := 0; i < numEP; i++ {
		rawB[i] = b.extract(pos, info.colorBits)
		pos += info.colorBits
	}
	if info.alphaBits > 0 {
		for i := 0; i < numEP; i++ {
			rawA[i] = b.extract(pos, info.alphaBits)
			pos += info.alphaBits
		}
	}

	var pbit [6]uint64
	hasPBit := info.uniquePBit || info.sharedPBit
	if info.uniquePBit {
		for i := 0; i < numEP; i++ {
			pbit[i] = b.extract(pos, 1)
			pos++
		}
	} else if info.sharedPBit {
		for s := 0; s < ns; s++ {
			p := b.extract(pos, 1)
			pos++
			pbit[s*2], pbit[s*2+1] = p, p
		}
	}

	colorPrec := info.colorBits
	alphaPrec := info.alphaBits
	if hasPBit {
		colorPrec++
		if alphaPrec > 0 {
			alphaPrec++
		}
	}

	var endpoints [6][4]uint8
	for i := 0; i < numEP; i++ {
		r, g, bl := rawR[i], rawG[i], rawB[i]
		if hasPBit {
			r = (r << 1) | pbit[i]
			g = (g << 1) | pbit[i]
			bl = (bl << 1) | pbit[i]
		}
		endpoints[i][0] = expandNto8(r, colorPrec)
		endpoints[i][1] = expandNto8(g, colorPrec)
		endpoints[i][2] = expandNto8(bl, colorPrec)
		if info.alphaBits > 0 {
			a := rawA[i]
			if hasPBit {
				a = (a << 1) | pbit[i]
			}
			endpoints[i][3] = expandNto8(a, alphaPrec)
		} else {
			endpoints[i][3] = 0xFF
		}
	}

	anchor1, anchor2 := bc7Anchors(ns, partition)
	isAnchor := func(i int) bool {
		if i == 0 {
			return true
		}
		if ns >= 2 && i == anchor1 {
			return true
		}
		if ns == 3 && i == anchor2 {
			return true
		}
		return false
	}

	var primaryIdx, secondaryIdx [16]uint64
	for i := 0; i < 16; i++ {
		bits := info.indexBits
		if isAnchor(i) {
			bits--
		}
		primaryIdx[i] = b.extract(pos, bits)
		pos += bits
	}
	if info.indexBits2 > 0 {
		for i := 0; i < 16; i++ {
			bits := info.indexBits2
			if i == 0 { // single-subset modes only use this plane
				bits--
			}
			secondaryIdx[i] = b.extract(pos, bits)
			pos += bits
		}
	}

	colorIdxPlane, alphaIdxPlane := primaryIdx, primaryIdx
	colorIdxBits, alphaIdxBits := info.indexBits, info.indexBits
	if info.indexBits2 > 0 {
		alphaIdxPlane, alphaIdxBits = secondaryIdx, info.indexBits2
		if indexSel == 1 {
			colorIdxPlane, colorIdxBits = secondaryIdx, info.indexBits2
			alphaIdxPlane, alphaIdxBits = primaryIdx, info.indexBits
		}
	}
	colorWeights := bc7WeightTable(colorIdxBits)
	alphaWeights := bc7WeightTable(alphaIdxBits)

	for i := 0; i < 16; i++ {
		subset := bc7Subset(ns, partition, i)
		e0, e1 := endpoints[subset*2], endpoints[subset*2+1]
		cw := colorWeights[colorIdxPlane[i]]
		aw := alphaWeights[alphaIdxPlane[i]]

		r := uint8(((64-cw)*int32(e0[0]) + cw*int32(e1[0]) + 32) >> 6)
		g := uint8(((64-cw)*int32(e0[1]) + cw*int32(e1[1]) + 32) >> 6)
		bl := uint8(((64-cw)*int32(e0[2]) + cw*int32(e1[2]) + 32) >> 6)
		a := uint8(((64-aw)*int32(e0[3]) + aw*int32(e1[3]) + 32) >> 6)

		switch rotation {
		case 1:
			a, r = r, a
		case 2:
			a, g = g, a
		case 3:
			a, bl = bl, a
		}

		out := i * 4
		pixelBuffer[out+0] = r
		pixelBuffer[out+1] = g
		pixelBuffer[out+2] = bl
		pixelBuffer[out+3] = a
	}
	return true
}
