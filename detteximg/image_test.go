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
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/blockcodec/detex"
)

func TestDecodeBC1AllWhiteToNRGBA(t *testing.T) {
	block := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}
	img, err := Decode(block, detex.TextureFormatBC1, 1, 1, LayoutLinear)
	if err != nil {
		t.Fatalf("Decode returned %v", err)
	}
	m, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("Decode returned %T, want *image.NRGBA", img)
	}
	if m.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("bounds = %v, want (0,0)-(4,4)", m.Bounds())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := m.NRGBAAt(x, y); got != (color.NRGBA{255, 255, 255, 255}) {
				t.Errorf("pixel (%d,%d) = %v, want opaque white", x, y, got)
			}
		}
	}
}

func TestDecodeUnsupportedNativeFormat(t *testing.T) {
	// EAC RG11 natively decodes to RG16, which has no safe stdlib image
	// mapping.
	block := make([]byte, 16)
	_, err := Decode(block, detex.TextureFormatEACRG11, 1, 1, LayoutLinear)
	if err != ErrUnsupportedFormat {
		t.Errorf("Decode = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeBadDimensions(t *testing.T) {
	_, err := Decode(nil, detex.TextureFormatBC1, 0, 1, LayoutLinear)
	if err != ErrBadArgument {
		t.Errorf("Decode with widthInBlocks=0 = %v, want ErrBadArgument", err)
	}
}

func TestNewImageRGBA8IsNRGBA(t *testing.T) {
	img, err := NewImage(detex.PixelFormatRGBA8, 2, 3)
	if err != nil {
		t.Fatalf("NewImage returned %v", err)
	}
	if _, ok := img.(*image.NRGBA); !ok {
		t.Errorf("NewImage(RGBA8) = %T, want *image.NRGBA", img)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 12) {
		t.Errorf("bounds = %v, want (0,0)-(8,12)", img.Bounds())
	}
}

// TestDecodeAndEncodePNGAndBMPAgree decodes the same BC1 block to PNG and
// BMP and checks that re-decoding both containers yields identical pixels.
func TestDecodeAndEncodePNGAndBMPAgree(t *testing.T) {
	block := []byte{0x1F, 0x00, 0xE0, 0xFF, 0x00, 0x55, 0xAA, 0xFF} // BC1 gradient
	img, err := Decode(block, detex.TextureFormatBC1, 1, 1, LayoutLinear)
	if err != nil {
		t.Fatalf("Decode returned %v", err)
	}

	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatalf("png.Encode returned %v", err)
	}
	if err := EncodeBMP(&bmpBuf, img); err != nil {
		t.Fatalf("EncodeBMP returned %v", err)
	}

	pngImg, err := png.Decode(&pngBuf)
	if err != nil {
		t.Fatalf("png.Decode returned %v", err)
	}
	bmpImg, err := bmp.Decode(&bmpBuf)
	if err != nil {
		t.Fatalf("bmp.Decode returned %v", err)
	}

	b := pngImg.Bounds()
	if b != bmpImg.Bounds() {
		t.Fatalf("bounds differ: png %v, bmp %v", b, bmpImg.Bounds())
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pr, pg, pb, pa := pngImg.At(x, y).RGBA()
			br, bg, bb, ba := bmpImg.At(x, y).RGBA()
			if pr != br || pg != bg || pb != bb || pa != ba {
				t.Errorf("pixel (%d,%d): png=%v bmp=%v", x, y, []uint32{pr, pg, pb, pa}, []uint32{br, bg, bb, ba})
			}
		}
	}
}
