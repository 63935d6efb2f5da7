// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// DecompressTextureLinear decodes widthInBlocks x heightInBlocks compressed
// blocks, stored and read in simple row-major order, into a single
// contiguous row-major pixels buffer of dimensions (widthInBlocks*4) x
// (heightInBlocks*4) in pixelFormat.
func DecompressTextureLinear(data []byte, format TextureFormat, widthInBlocks, heightInBlocks int, pixels []byte, pixelFormat PixelFormat) bool {
	if !format.Valid() || widthInBlocks <= 0 || heightInBlocks <= 0 {
		return false
	}
	blockSize := format.CompressedBlockSize()
	pixelSize := pixelFormat.PixelSize()
	if blockSize == 0 || pixelSize == 0 {
		return false
	}

	widthInPixels := widthInBlocks * 4
	rowStride := widthInPixels * pixelSize
	blockRowStride := 4 * pixelSize
	var scratch [maxNativePixelBlockSize]byte

	for by := 0; by < heightInBlocks; by++ {
		for bx := 0; bx < widthInBlocks; bx++ {
			blockIndex := by*widthInBlocks + bx
			off := blockIndex * blockSize
			if off+blockSize > len(data) {
				return false
			}
			if !DecompressBlock(data[off:off+blockSize], format, ModeMaskAll, 0, scratch[:16*pixelSize], pixelFormat) {
				return false
			}
			base := by*4*rowStride + bx*blockRowStride
			for row := 0; row < 4; row++ {
				dst := pixels[base+row*rowStride : base+row*rowStride+blockRowStride]
				src := scratch[row*blockRowStride : (row+1)*blockRowStride]
				copy(dst, src)
			}
		}
	}
	return true
}

// DecompressTextureTiled decodes widthInBlocks x heightInBlocks compressed
// blocks, read in the same row-major input order as DecompressTextureLinear,
// into pixels laid out as an array of image buffer tiles: the decoded 4x4
// block at grid position (bx, by) is written as 16 contiguous pixels at
// tile index by*widthInBlocks+bx, i.e. byte offset
// (by*widthInBlocks+bx)*16*pixelFormat.PixelSize(). This is the per-tile
// buffer layout a GPU reads as one independent image per compressed block,
// as opposed to DecompressTextureLinear's single interleaved image.
func DecompressTextureTiled(data []byte, format TextureFormat, widthInBlocks, heightInBlocks int, pixels []byte, pixelFormat PixelFormat) bool {
	if !format.Valid() || widthInBlocks <= 0 || heightInBlocks <= 0 {
		return false
	}
	blockSize := format.CompressedBlockSize()
	pixelSize := pixelFormat.PixelSize()
	if blockSize == 0 || pixelSize == 0 {
		return false
	}

	tileSize := 16 * pixelSize

	for by := 0; by < heightInBlocks; by++ {
		for bx := 0; bx < widthInBlocks; bx++ {
			blockIndex := by*widthInBlocks + bx
			off := blockIndex * blockSize
			if off+blockSize > len(data) {
				return false
			}
			dst := pixels[blockIndex*tileSize : (blockIndex+1)*tileSize]
			if !DecompressBlock(data[off:off+blockSize], format, ModeMaskAll, 0, dst, pixelFormat) {
				return false
			}
		}
	}
	return true
}
