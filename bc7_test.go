// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

import "testing"

// setBitsLE writes the low n bits of value into block (treated as a
// little-endian bit string, bit 0 = LSB of block[0]) starting at bit
// position pos, matching bits128.extract's bit numbering.
func setBitsLE(block []byte, pos uint, n uint, value uint64) {
	for i := uint(0); i < n; i++ {
		bit := (value >> i) & 1
		p := pos + i
		byteIdx, bitIdx := p/8, p%8
		if bit != 0 {
			block[byteIdx] |= 1 << bitIdx
		} else {
			block[byteIdx] &^= 1 << bitIdx
		}
	}
}

// TestDecompressBlockBPTCMode0SingleColor is the BC7 mode 0 worked example:
// every endpoint (all three subsets) packs the same raw color, so the
// decoded block is a single flat color regardless of partition or index
// bits.
func TestDecompressBlockBPTCMode0SingleColor(t *testing.T) {
	var block [16]byte
	setBitsLE(block[:], 0, 1, 1) // mode 0

	pos := uint(1)
	setBitsLE(block[:], pos, 4, 0) // partition = 0
	pos += 4

	for i := 0; i < 6; i++ {
		setBitsLE(block[:], pos, 4, 0x5) // R
		pos += 4
	}
	for i := 0; i < 6; i++ {
		setBitsLE(block[:], pos, 4, 0x9) // G
		pos += 4
	}
	for i := 0; i < 6; i++ {
		setBitsLE(block[:], pos, 4, 0x3) // B
		pos += 4
	}
	for i := 0; i < 6; i++ {
		setBitsLE(block[:], pos, 1, 1) // p-bit
		pos++
	}
	// Index bits left at zero; anchors steal one bit each but all indices
	// decode to 0 regardless, since e0 == e1 for every subset.

	var pixels [64]byte
	if !DecompressBlockBPTC(block[:], ModeMaskAll, 0, pixels[:]) {
		t.Fatal("DecompressBlockBPTC returned false")
	}
	want := pixels[0:4]
	for i := 1; i < 16; i++ {
		got := pixels[i*4 : i*4+4]
		if got[0] != want[0] || got[1] != want[1] || got[2] != want[2] || got[3] != want[3] {
			t.Errorf("pixel %d = %v, want %v (uniform across the block)", i, got, want)
		}
	}
	if want[3] != 0xFF {
		t.Errorf("alpha = %d, want 255 (mode 0 has no alpha channel)", want[3])
	}
}

func TestDecompressBlockBPTCModeMaskRejection(t *testing.T) {
	var block [16]byte
	setBitsLE(block[:], 0, 1, 1) // mode 0
	var pixels [64]byte
	if DecompressBlockBPTC(block[:], ModeMaskAll&^(uint32(1)<<0), 0, pixels[:]) {
		t.Error("DecompressBlockBPTC with mode 0 excluded from the mask returned true")
	}
}

func TestBC7FindMode(t *testing.T) {
	var block [16]byte
	setBitsLE(block[:], 3, 1, 1) // mode 3
	b := load128LE(block[:])
	if got := bc7FindMode(b); got != 3 {
		t.Errorf("bc7FindMode = %d, want 3", got)
	}
}

// TestDecompressBlockBPTCMode5RotationSwapsAlpha builds a mode 5 block with
// rotation=1 (swap alpha and red post-interpolation) and both index planes
// entirely zero, so every texel's color equals endpoint 0 exactly. The
// decoded red and alpha channels must come out swapped relative to their
// raw endpoint values. With every index zero, swapping before or after
// interpolation gives the same pixels, so only the swap itself is checked.
func TestDecompressBlockBPTCMode5RotationSwapsAlpha(t *testing.T) {
	var block [16]byte
	setBitsLE(block[:], 5, 1, 1) // mode 5
	pos := uint(6)

	setBitsLE(block[:], pos, 2, 1) // rotation = 1 (swap A, R)
	pos += 2

	setBitsLE(block[:], pos, 7, 0x7F) // rawR[0]
	pos += 7
	setBitsLE(block[:], pos, 7, 0) // rawR[1]
	pos += 7
	setBitsLE(block[:], pos, 7, 0) // rawG[0]
	pos += 7
	setBitsLE(block[:], pos, 7, 0) // rawG[1]
	pos += 7
	setBitsLE(block[:], pos, 7, 0x40) // rawB[0]
	pos += 7
	setBitsLE(block[:], pos, 7, 0) // rawB[1]
	pos += 7
	setBitsLE(block[:], pos, 8, 0x55) // rawA[0]
	pos += 8
	setBitsLE(block[:], pos, 8, 0) // rawA[1]
	pos += 8
	// Index bits left at zero: every texel selects endpoint 0 on both planes.

	var pixels [64]byte
	if !DecompressBlockBPTC(block[:], ModeMaskAll, 0, pixels[:]) {
		t.Fatal("DecompressBlockBPTC returned false")
	}

	wantR := expandNto8(0x55, 8) // pre-rotation alpha, swapped into red
	wantG := uint8(0)
	wantB := expandNto8(0x40, 7)
	wantA := expandNto8(0x7F, 7) // pre-rotation red, swapped into alpha

	for i := 0; i < 16; i++ {
		p := pixels[i*4 : i*4+4]
		if p[0] != wantR || p[1] != wantG || p[2] != wantB || p[3] != wantA {
			t.Errorf("pixel %d = %v, want {%d %d %d %d}", i, p, wantR, wantG, wantB, wantA)
		}
	}
}
