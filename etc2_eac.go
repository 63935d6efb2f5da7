// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

// DecompressBlockETC2EAC decodes a 128-bit ETC2_EAC block: a 64-bit EAC
// alpha prefix followed by a 64-bit ETC2 RGB block, into sixteen RGBA8
// pixels. Alpha has no block-wide opaque/non-opaque sub-mode of its own, so
// DecompressFlagOpaqueOnly/NonOpaqueOnly are not meaningful here and are
// ignored.
func DecompressBlockETC2EAC(bitstring []byte, modeMask uint32, flags DecompressFlags, pixelBuffer []byte) bool {
	alphaV := etcBigEndian64(bitstring[0:8])
	if !DecompressBlockETC2(bitstring[8:16], modeMask, flags&^(DecompressFlagOpaqueOnly|DecompressFlagNonOpaqueOnly), pixelBuffer) {
		return false
	}
	alpha := eacAlphaBytes(alphaV)
	for i := 0; i < 16; i++ {
		pixelBuffer[i*4+3] = alpha[i]
	}
	return true
}

// GetModeETC2EAC returns the ModeMaskETC* bit of bitstring's RGB half.
func GetModeETC2EAC(bitstring []byte) uint32 {
	return GetModeETC2(bitstring[8:16])
}
