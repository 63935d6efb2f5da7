// Copyright 2025 The Detex Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// texdecode decodes a raw block-compressed texture into a PNG or BMP image.
//
// It does not understand any texture container format (KTX, DDS, PVR);
// width, height and the texture format are supplied as flags, and the
// compressed bytes are read from a file or stdin.
package main

import (
	"flag"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/blockcodec/detex"
	"github.com/blockcodec/detex/detteximg"
)

var (
	formatFlag = flag.String("format", "bc1", "texture format: bc1, bc1a, bc2, bc3, rgtc1, signed-rgtc1, rgtc2, signed-rgtc2, bptc-float, signed-bptc-float, bptc, etc1, etc2, etc2-punchthrough, etc2-eac, eac-r11, signed-eac-r11, eac-rg11, signed-eac-rg11")
	widthFlag  = flag.Int("width", 1, "texture width, in 4x4 blocks")
	heightFlag = flag.Int("height", 1, "texture height, in 4x4 blocks")
	layoutFlag = flag.String("layout", "linear", "block layout: linear or tiled")
	outputFlag = flag.String("output", "png", "output format: png or bmp")
)

const usageStr = `texdecode decodes a raw block-compressed texture into a PNG or BMP image.

Usage:

    texdecode -format=bc1 -width=4 -height=4 [path]

The path to the raw compressed texture bytes is optional; if omitted, stdin
is read. texdecode does not parse KTX, DDS or PVR containers: width, height
and format describe the raw bytes directly.
`

var formatsByName = map[string]detex.TextureFormat{
	"bc1":               detex.TextureFormatBC1,
	"bc1a":              detex.TextureFormatBC1A,
	"bc2":               detex.TextureFormatBC2,
	"bc3":               detex.TextureFormatBC3,
	"rgtc1":             detex.TextureFormatRGTC1,
	"signed-rgtc1":      detex.TextureFormatSignedRGTC1,
	"rgtc2":             detex.TextureFormatRGTC2,
	"signed-rgtc2":      detex.TextureFormatSignedRGTC2,
	"bptc-float":        detex.TextureFormatBPTCFloat,
	"signed-bptc-float": detex.TextureFormatBPTCSignedFloat,
	"bptc":              detex.TextureFormatBPTC,
	"etc1":              detex.TextureFormatETC1,
	"etc2":              detex.TextureFormatETC2,
	"etc2-punchthrough": detex.TextureFormatETC2Punchthrough,
	"etc2-eac":          detex.TextureFormatETC2EAC,
	"eac-r11":           detex.TextureFormatEACR11,
	"signed-eac-r11":    detex.TextureFormatEACSignedR11,
	"eac-rg11":          detex.TextureFormatEACRG11,
	"signed-eac-rg11":   detex.TextureFormatEACSignedRG11,
}

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	format, ok := formatsByName[*formatFlag]
	if !ok {
		return errors.Errorf("unrecognized -format %q", *formatFlag)
	}

	var layout detteximg.Layout
	switch *layoutFlag {
	case "linear":
		layout = detteximg.LayoutLinear
	case "tiled":
		layout = detteximg.LayoutTiled
	default:
		return errors.Errorf("unrecognized -layout %q", *layoutFlag)
	}

	inFile := os.Stdin
	switch flag.NArg() {
	case 0:
		// No-op; read from stdin.
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return errors.Wrap(err, "open input file")
		}
		defer f.Close()
		inFile = f
	default:
		return errors.New("too many filenames; the maximum is one")
	}

	data, err := io.ReadAll(inFile)
	if err != nil {
		return errors.Wrap(err, "read compressed texture bytes")
	}

	img, err := detteximg.Decode(data, format, *widthFlag, *heightFlag, layout)
	if err != nil {
		return errors.Wrap(err, "decode texture")
	}

	switch *outputFlag {
	case "png":
		if err := png.Encode(os.Stdout, img); err != nil {
			return errors.Wrap(err, "encode png")
		}
	case "bmp":
		if err := detteximg.EncodeBMP(os.Stdout, img); err != nil {
			return errors.Wrap(err, "encode bmp")
		}
	default:
		return errors.Errorf("unrecognized -output %q", *outputFlag)
	}
	return nil
}
