// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

import "testing"

func TestDecompressBlockNativeFormat(t *testing.T) {
	block := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00} // BC1 all-white
	var pixels [64]byte
	if !DecompressBlock(block, TextureFormatBC1, ModeMaskAll, 0, pixels[:], PixelFormatRGBA8) {
		t.Fatal("DecompressBlock returned false")
	}
	if pixels[0] != 0xFF || pixels[3] != 0xFF {
		t.Errorf("pixel 0 = %v, want opaque white", pixels[0:4])
	}
}

func TestDecompressBlockConvertedFormat(t *testing.T) {
	block := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00} // BC1 all-white
	var pixels [64]byte                                             // 16 * 4 bytes (BGRA8)
	if !DecompressBlock(block, TextureFormatBC1, ModeMaskAll, 0, pixels[:], PixelFormatBGRA8) {
		t.Fatal("DecompressBlock returned false")
	}
	for i := 0; i < 16; i++ {
		p := pixels[i*4 : i*4+4]
		if p[0] != 0xFF || p[1] != 0xFF || p[2] != 0xFF || p[3] != 0xFF {
			t.Errorf("pixel %d = %v, want opaque white", i, p)
		}
	}
}

func TestDecompressBlockInvalidFormat(t *testing.T) {
	var pixels [64]byte
	if DecompressBlock(make([]byte, 8), TextureFormat(-1), ModeMaskAll, 0, pixels[:], PixelFormatRGBA8) {
		t.Error("DecompressBlock with an invalid format returned true")
	}
	if DecompressBlock(make([]byte, 8), numTextureFormats, ModeMaskAll, 0, pixels[:], PixelFormatRGBA8) {
		t.Error("DecompressBlock with numTextureFormats returned true")
	}
}

// TestBlockDecodeTableCoversEveryFormat guards against a new TextureFormat
// constant being added without a matching dispatch table entry.
func TestBlockDecodeTableCoversEveryFormat(t *testing.T) {
	for f := TextureFormat(0); f < numTextureFormats; f++ {
		if blockDecodeTable[f] == nil {
			t.Errorf("blockDecodeTable has no entry for %v", f)
		}
	}
}
