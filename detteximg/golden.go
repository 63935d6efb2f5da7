// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detteximg

import "image"

// encodeGolden serializes m into a simple deterministic byte sequence (8
// bytes per pixel, BGRA order, each channel replicated to 16 bits) for
// byte-for-byte golden comparison in tests, the same shape as the NIE BN8
// encoding it is modeled on but without a file header.
func encodeGolden(m image.Image) []byte {
	b := m.Bounds()
	ret := make([]byte, 0, b.Dx()*b.Dy()*8)

	switch m := m.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				at := m.NRGBAAt(x, y)
				ret = append(ret, at.B, at.B, at.G, at.G, at.R, at.R, at.A, at.A)
			}
		}
	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				at := m.GrayAt(x, y)
				ret = append(ret, at.Y, at.Y, at.Y, at.Y, at.Y, at.Y, 0xFF, 0xFF)
			}
		}
	}
	return ret
}
