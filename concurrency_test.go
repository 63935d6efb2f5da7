// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package detex

import (
	"bytes"
	"sync"
	"testing"
)

// TestConcurrentDecodeSameBlockDisjointBuffers decodes the same source block
// from many goroutines into disjoint output buffers and checks every result
// is bit-identical, since decode functions take no package-level state and
// must be safe to call concurrently on read-only input.
func TestConcurrentDecodeSameBlockDisjointBuffers(t *testing.T) {
	block := []byte{0x1F, 0x00, 0xE0, 0xFF, 0x00, 0x55, 0xAA, 0xFF} // BC1 gradient

	const n = 64
	results := make([][]byte, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			pixels := make([]byte, 16*4)
			if !DecompressBlockBC1(block, ModeMaskAll, 0, pixels) {
				return
			}
			results[i] = pixels
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if results[i] == nil || results[0] == nil {
			t.Fatalf("goroutine %d produced no result", i)
		}
		if !bytes.Equal(results[i], results[0]) {
			t.Errorf("goroutine %d produced %v, want %v (identical to goroutine 0)", i, results[i], results[0])
		}
	}
}
