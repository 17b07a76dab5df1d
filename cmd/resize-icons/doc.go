// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Resize-icons resizes an image into a set of square PNG icons.

# Usage

	$ resize-icons [flags] <input_image> <output_dir>

This tool resizes the provided input image to 16×16, 48×48 and 128×128
pixels using Lanczos resampling and saves the results as icon16.png,
icon48.png and icon128.png in output_dir, which must already exist.
Existing icons are overwritten. The image is stretched to a square,
its aspect ratio is not preserved.

A line is printed for every saved icon. If something goes wrong, the
error is printed and the remaining icons are skipped.

Flags must come before the paths. To pass a path that starts with a
dash, put -- in front of it:

	$ resize-icons -- -logo.png icons

With -watch, the icons are regenerated every time the input image
changes, until the tool is interrupted.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
