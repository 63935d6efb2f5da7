// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

import "testing"

// TestDecompressBlockETC1Uniform is the ETC1 INDIVIDUAL worked example: both
// base colors (8,8,8), intensity table 0 for both halves, and every 2-bit
// modifier index 0, so every pixel shares one base color plus one modifier
// table entry.
func TestDecompressBlockETC1Uniform(t *testing.T) {
	block := []byte{0x88, 0x88, 0x88, 0x00, 0x00, 0x00, 0x00, 0x00}
	var pixels [64]byte
	if !DecompressBlockETC1(block, ModeMaskAll, 0, pixels[:]) {
		t.Fatal("DecompressBlockETC1 returned false")
	}
	base := expand4to8(8)
	mod := etcModifierTable[0][0]
	want := clamp0to255(int32(base) + mod)
	for i := 0; i < 16; i++ {
		p := pixels[i*4 : i*4+4]
		if p[0] != want || p[1] != want || p[2] != want || p[3] != 0xFF {
			t.Errorf("pixel %d = %v, want {%d %d %d 255}", i, p, want, want, want)
		}
	}
}

func TestGetModeETC1(t *testing.T) {
	individual := []byte{0x88, 0x88, 0x88, 0x00, 0x00, 0x00, 0x00, 0x00}
	if got := GetModeETC1(individual); got != ModeMaskETCIndividual {
		t.Errorf("GetModeETC1(individual) = %#x, want ModeMaskETCIndividual", got)
	}

	differential := []byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00}
	if got := GetModeETC1(differential); got != ModeMaskETCDifferential {
		t.Errorf("GetModeETC1(differential) = %#x, want ModeMaskETCDifferential", got)
	}
}

func TestDecompressBlockETC1ModeMaskRejection(t *testing.T) {
	block := []byte{0x88, 0x88, 0x88, 0x00, 0x00, 0x00, 0x00, 0x00}
	var pixels [64]byte
	if DecompressBlockETC1(block, ModeMaskETCDifferential, 0, pixels[:]) {
		t.Error("DecompressBlockETC1 with a mode mask excluding INDIVIDUAL returned true")
	}
}

// TestSetModeETC1RoundTrip decodes an INDIVIDUAL-mode block, feeds its own
// decoded colors back into SetModeETC1 requesting DIFFERENTIAL mode, and
// checks the re-encoded block decodes to the identical sixteen pixels. Both
// base colors are 0xFF, which the 4-bit and the 5-bit base encodings both
// represent exactly, and every modifier index selects -2 from table 0, so
// the block is expressible in DIFFERENTIAL mode with its own indices and
// intensity tables.
func TestSetModeETC1RoundTrip(t *testing.T) {
	block := []byte{0xFF, 0xFF, 0xFF, 0x00, 0xFF, 0xFF, 0x00, 0x00}
	var want [64]byte
	if !DecompressBlockETC1(block, ModeMaskAll, 0, want[:]) {
		t.Fatal("DecompressBlockETC1 returned false")
	}

	var colors [16]uint32
	for i := 0; i < 16; i++ {
		p := want[i*4 : i*4+4]
		colors[i] = uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
	}

	mutated := append([]byte(nil), block...)
	SetModeETC1(mutated, ModeMaskETCDifferential, 0, colors)
	if GetModeETC1(mutated) != ModeMaskETCDifferential {
		t.Fatal("SetModeETC1 did not switch the block to DIFFERENTIAL mode")
	}

	var got [64]byte
	if !DecompressBlockETC1(mutated, ModeMaskAll, 0, got[:]) {
		t.Fatal("DecompressBlockETC1 on the re-encoded block returned false")
	}
	if got != want {
		t.Errorf("round-tripped pixels = %v, want %v", got, want)
	}
}

// TestSetModeETC1UnexpressibleLeavesBitstringUnchanged covers the documented
// failure policy: if colors cannot share one base color per half alongside
// the block's existing modifier indices, SetModeETC1 must leave bitstring
// untouched.
func TestSetModeETC1UnexpressibleLeavesBitstringUnchanged(t *testing.T) {
	block := []byte{0x88, 0x88, 0x88, 0x00, 0x00, 0x00, 0x00, 0x00}
	original := append([]byte(nil), block...)

	var colors [16]uint32
	for i := range colors {
		colors[i] = uint32(i) // sixteen distinct colors: no shared per-half base can fit.
	}

	mutated := append([]byte(nil), block...)
	SetModeETC1(mutated, ModeMaskETCIndividual, 0, colors)
	for i := range mutated {
		if mutated[i] != original[i] {
			t.Fatalf("SetModeETC1 modified bitstring at byte %d: got %#x, want unchanged %#x", i, mutated[i], original[i])
		}
	}
}
