// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

import "testing"

func TestClamp0to255(t *testing.T) {
	testCases := []struct {
		in   int32
		want uint8
	}{
		{-255, 0},
		{-1, 0},
		{0, 0},
		{1, 1},
		{128, 128},
		{255, 255},
		{256, 255},
		{511, 255},
	}
	for _, tc := range testCases {
		if got := clamp0to255(tc.in); got != tc.want {
			t.Errorf("clamp0to255(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
