// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

import "errors"

// Sentinel errors for the texture-level ...Err wrappers. The family
// decoders themselves stay on the plain bool contract; these only classify
// a false return from the texture walkers, which always call the decoders
// with a permissive mode mask and no flags.
var (
	ErrInvalidBlock      = errors.New("detex: invalid or truncated compressed block")
	ErrModeRejected       = errors.New("detex: block's internal sub-mode was rejected")
	ErrOpacityMismatch    = errors.New("detex: block's opacity did not match the requested flag")
	ErrUnsupportedFormat  = errors.New("detex: unsupported texture or pixel format combination")
)

// DecompressTextureTiledErr is DecompressTextureTiled, reporting why a
// false return happened as one of the package's sentinel errors.
func DecompressTextureTiledErr(data []byte, format TextureFormat, widthInBlocks, heightInBlocks int, pixels []byte, pixelFormat PixelFormat) error {
	return classifyTextureFailure(format, widthInBlocks, heightInBlocks, pixelFormat,
		DecompressTextureTiled(data, format, widthInBlocks, heightInBlocks, pixels, pixelFormat))
}

// DecompressTextureLinearErr is DecompressTextureLinear, reporting why a
// false return happened as one of the package's sentinel errors.
func DecompressTextureLinearErr(data []byte, format TextureFormat, widthInBlocks, heightInBlocks int, pixels []byte, pixelFormat PixelFormat) error {
	return classifyTextureFailure(format, widthInBlocks, heightInBlocks, pixelFormat,
		DecompressTextureLinear(data, format, widthInBlocks, heightInBlocks, pixels, pixelFormat))
}

func classifyTextureFailure(format TextureFormat, widthInBlocks, heightInBlocks int, pixelFormat PixelFormat, ok bool) error {
	if ok {
		return nil
	}
	if !format.Valid() || pixelFormat.PixelSize() == 0 {
		return ErrUnsupportedFormat
	}
	if widthInBlocks <= 0 || heightInBlocks <= 0 {
		return ErrInvalidBlock
	}
	return ErrInvalidBlock
}
