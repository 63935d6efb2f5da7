// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package detex decodes GPU block-compressed texture data (ETC1, ETC2 and
// its EAC/punchthrough variants, plus the S3TC/BPTC family BC1 through BC7
// and BC6H) into uncompressed pixel buffers.
//
// Every decode function accepts one compressed 4x4 pixel block (8 or 16
// bytes, depending on format) and writes sixteen decoded pixels into a
// caller-supplied buffer. There is no encoder (aside from SetModeETC1, which
// transcodes an already-decoded ETC1 block between its INDIVIDUAL and
// DIFFERENTIAL modes) and no container format support; callers supply raw
// compressed bytes, as extracted from a KTX, DDS or PVR file by some other
// package.
//
// Pixel format bitfields, texture format numbering and mode-mask values
// follow the detex C library (https://github.com/hglm/detex) so that
// callers migrating constants from that library behave identically here.
package detex
