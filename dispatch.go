// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

type blockDecodeFunc func(block []byte, modeMask uint32, flags DecompressFlags, pixels []byte) bool

var blockDecodeTable = [numTextureFormats]blockDecodeFunc{
	TextureFormatBC1:             DecompressBlockBC1,
	TextureFormatBC1A:            DecompressBlockBC1A,
	TextureFormatBC2:             DecompressBlockBC2,
	TextureFormatBC3:             DecompressBlockBC3,
	TextureFormatRGTC1:           DecompressBlockRGTC1,
	TextureFormatSignedRGTC1:     DecompressBlockSignedRGTC1,
	TextureFormatRGTC2:           DecompressBlockRGTC2,
	TextureFormatSignedRGTC2:     DecompressBlockSignedRGTC2,
	TextureFormatBPTCFloat:       DecompressBlockBPTCFloat,
	TextureFormatBPTCSignedFloat: DecompressBlockBPTCSignedFloat,
	TextureFormatBPTC:            DecompressBlockBPTC,
	TextureFormatETC1:            DecompressBlockETC1,
	TextureFormatETC2:            DecompressBlockETC2,
	TextureFormatETC2Punchthrough: DecompressBlockETC2Punchthrough,
	TextureFormatETC2EAC:         DecompressBlockETC2EAC,
	TextureFormatEACR11:          DecompressBlockEACR11,
	TextureFormatEACSignedR11:    DecompressBlockEACSignedR11,
	TextureFormatEACRG11:         DecompressBlockEACRG11,
	TextureFormatEACSignedRG11:   DecompressBlockEACSignedRG11,
}

// maxNativePixelBlockSize is large enough to hold a 4x4 block in any family
// decoder's native output format (FloatRGBX16, 8 bytes/pixel, is the
// widest).
const maxNativePixelBlockSize = 16 * 8

// DecompressBlock decodes one compressed block of the given texture format
// into pixels, in pixelFormat. When pixelFormat differs from format's
// native output format, the block is first decoded into a scratch buffer
// and then converted with ConvertPixels.
func DecompressBlock(block []byte, format TextureFormat, modeMask uint32, flags DecompressFlags, pixels []byte, pixelFormat PixelFormat) bool {
	if !format.Valid() {
		return false
	}
	decode := blockDecodeTable[format]
	native := format.PixelFormat()
	if pixelFormat == native {
		return decode(block, modeMask, flags, pixels)
	}

	var scratch [maxNativePixelBlockSize]byte
	buf := scratch[:16*native.PixelSize()]
	if !decode(block, modeMask, flags, buf) {
		return false
	}
	return ConvertPixels(buf, 16, native, pixels, pixelFormat)
}
