// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detteximg

import (
	"bytes"
	"testing"

	"github.com/blockcodec/detex"
)

// TestEncodeGoldenBC1AllWhite is a byte-for-byte golden comparison in the
// teacher's pkm_test.go style: decode a known block, encode it, and compare
// against the expected bytes directly, reporting the first differing
// offset on mismatch.
func TestEncodeGoldenBC1AllWhite(t *testing.T) {
	block := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}
	img, err := Decode(block, detex.TextureFormatBC1, 1, 1, LayoutLinear)
	if err != nil {
		t.Fatalf("Decode returned %v", err)
	}

	got := encodeGolden(img)
	want := bytes.Repeat([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 16)
	if !bytes.Equal(got, want) {
		for i := range got {
			if i >= len(want) || got[i] != want[i] {
				t.Fatalf("encodeGolden mismatch at offset %d: got %#x, want %#x", i, got[i], want[i])
			}
		}
		t.Fatalf("encodeGolden length mismatch: got %d bytes, want %d", len(got), len(want))
	}
}

func TestEncodeGoldenGray(t *testing.T) {
	block := make([]byte, 8) // RGTC1: both endpoints and every index zero, so every pixel is 0
	img, err := Decode(block, detex.TextureFormatRGTC1, 1, 1, LayoutLinear)
	if err != nil {
		t.Fatalf("Decode returned %v", err)
	}
	got := encodeGolden(img)
	if len(got) != 16*8 {
		t.Fatalf("encodeGolden length = %d, want %d", len(got), 16*8)
	}
	for i := 0; i < 16; i++ {
		px := got[i*8 : i*8+8]
		if px[6] != 0xFF || px[7] != 0xFF {
			t.Errorf("pixel %d alpha bytes = %v, want {0xFF 0xFF}", i, px[6:8])
		}
	}
}
