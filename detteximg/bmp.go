// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detteximg

import (
	"image"
	"io"

	"golang.org/x/image/bmp"
)

// EncodeBMP writes m to w in BMP, an alternate container to PNG for
// comparing decoded textures byte-for-byte across encoders.
func EncodeBMP(w io.Writer, m image.Image) error {
	return bmp.Encode(w, m)
}
