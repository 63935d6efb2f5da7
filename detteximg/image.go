// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// Package detteximg adapts decoded block-compressed texture data into the
// standard library's image.Image interface, the way github.com/nigeltao/etc2's
// lib/pkm package wraps ETC decode output in image.NewRGBA, image.NewNRGBA
// and friends. It does not parse any compressed texture container format
// (KTX, DDS, PVR); callers supply the format, block dimensions and raw
// compressed bytes directly.
//
// Only textures whose native output is RGBA8 or R8 (every format except
// RGTC2, the signed RGTC1/RGTC2 variants, the signed/unsigned R11/RG11 EAC
// channel formats and BC6H) convert straight into a stdlib image type; the
// others return ErrUnsupportedFormat.
package detteximg

import (
	"errors"
	"image"
	"image/color"

	"github.com/blockcodec/detex"
)

var (
	ErrBadArgument       = errors.New("detteximg: bad argument")
	ErrUnsupportedFormat = errors.New("detteximg: unsupported pixel format")
)

// Layout selects the texture walker Decode uses: LayoutLinear decodes with
// detex.DecompressTextureLinear, LayoutTiled with detex.DecompressTextureTiled.
// Both walkers read the source blocks in the same row-major order, and
// Decode returns the same image for either layout.
type Layout int

const (
	LayoutLinear Layout = iota
	LayoutTiled
)

// NewImage returns a standard-library image.Image, with a concrete type
// chosen by pixelFormat the same way etc2.Format.NewImage picks a type by
// ETC format, sized to widthInBlocks*4 x heightInBlocks*4 pixels.
func NewImage(pixelFormat detex.PixelFormat, widthInBlocks, heightInBlocks int) (image.Image, error) {
	if widthInBlocks <= 0 || heightInBlocks <= 0 {
		return nil, ErrBadArgument
	}
	r := image.Rect(0, 0, widthInBlocks*4, heightInBlocks*4)

	switch pixelFormat {
	case detex.PixelFormatRGBA8, detex.PixelFormatBGRA8, detex.PixelFormatRGBX8, detex.PixelFormatBGRX8:
		return image.NewNRGBA(r), nil
	case detex.PixelFormatR8:
		return image.NewGray(r), nil
	}
	return nil, ErrUnsupportedFormat
}

// Decode decompresses data (widthInBlocks x heightInBlocks compressed
// blocks of format, decoded by the walker layout selects) into a native scratch
// buffer and then converts each pixel into a freshly allocated
// image.Image.
func Decode(data []byte, format detex.TextureFormat, widthInBlocks, heightInBlocks int, layout Layout) (image.Image, error) {
	if !format.Valid() {
		return nil, ErrBadArgument
	}
	native := format.PixelFormat()
	img, err := NewImage(native, widthInBlocks, heightInBlocks)
	if err != nil {
		return nil, err
	}

	pixelSize := native.PixelSize()
	scratch := make([]byte, widthInBlocks*4*heightInBlocks*4*pixelSize)

	var ok bool
	switch layout {
	case LayoutTiled:
		ok = detex.DecompressTextureTiled(data, format, widthInBlocks, heightInBlocks, scratch, native)
	default:
		ok = detex.DecompressTextureLinear(data, format, widthInBlocks, heightInBlocks, scratch, native)
	}
	if !ok {
		return nil, detex.ErrInvalidBlock
	}

	width := widthInBlocks * 4
	rowStride := width * pixelSize
	// offset locates pixel (x, y) in scratch: row-major for the linear
	// walker, one 16-pixel tile per block for the tiled walker.
	offset := func(x, y int) int {
		if layout == LayoutTiled {
			tile := (y/4)*widthInBlocks + x/4
			return (tile*16 + (y%4)*4 + x%4) * pixelSize
		}
		return y*rowStride + x*pixelSize
	}
	switch m := img.(type) {
	case *image.NRGBA:
		for y := 0; y < heightInBlocks*4; y++ {
			for x := 0; x < width; x++ {
				p := scratch[offset(x, y):]
				m.SetNRGBA(x, y, color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]})
			}
		}
	case *image.Gray:
		for y := 0; y < heightInBlocks*4; y++ {
			for x := 0; x < width; x++ {
				p := scratch[offset(x, y):]
				m.SetGray(x, y, color.Gray{Y: p[0]})
			}
		}
	default:
		return nil, ErrUnsupportedFormat
	}
	return img, nil
}
