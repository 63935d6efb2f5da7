// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

func signedByteToR16(v int32) uint16 {
	return uint16(int16(v * 258))
}

// DecompressBlockRGTC1 decodes a 64-bit unsigned RGTC1 (BC4) block into
// sixteen R8 pixels.
func DecompressBlockRGTC1(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	values := decodeInterpolatedChannel(bitstring, true)
	for i := 0; i < 16; i++ {
		pixelBuffer[i] = uint8(values[i])
	}
	return true
}

// DecompressBlockSignedRGTC1 decodes a 64-bit signed RGTC1 block into
// sixteen signed R16 pixels.
func DecompressBlockSignedRGTC1(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	values := decodeInterpolatedChannel(bitstring, false)
	for i := 0; i < 16; i++ {
		storeU16LE(pixelBuffer[i*2:], signedByteToR16(values[i]))
	}
	return true
}

// DecompressBlockRGTC2 decodes a 128-bit unsigned RGTC2 (BC5) block — two
// independent unsigned RGTC1 channels — into sixteen RG8 pixels.
func DecompressBlockRGTC2(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	r := decodeInterpolatedChannel(bitstring[0:8], true)
	g := decodeInterpolatedChannel(bitstring[8:16], true)
	for i := 0; i < 16; i++ {
		pixelBuffer[i*2+0] = uint8(r[i])
		pixelBuffer[i*2+1] = uint8(g[i])
	}
	return true
}

// DecompressBlockSignedRGTC2 decodes a 128-bit signed RGTC2 block into
// sixteen signed RG16 pixels.
func DecompressBlockSignedRGTC2(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	r := decodeInterpolatedChannel(bitstring[0:8], false)
	g := decodeInterpolatedChannel(bitstring[8:16], false)
	for i := 0; i < 16; i++ {
		storeU16LE(pixelBuffer[i*4+0:], signedByteToR16(r[i]))
		storeU16LE(pixelBuffer[i*4+2:], signedByteToR16(g[i]))
	}
	return true
}
