// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icons resizes a single image into a fixed set of square PNG icons.

# Output

For an output directory D, Resize writes:

	D/icon16.png    16×16 pixels
	D/icon48.png    48×48 pixels
	D/icon128.png   128×128 pixels

The source image is forced to a square, so non-square images get distorted.
Existing files are overwritten. If writing one of the sizes fails, the files
written before it are left in place and the remaining sizes are skipped.

# Input Formats

PNG, JPEG, GIF, BMP, TIFF and WebP images can be decoded.
*/
package icons

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	// Image formats understood by Resize.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.astrophena.name/icons/internal/logger"

	"github.com/disintegration/imaging"
)

// sizes are the dimensions of produced icons, in the order they are written.
var sizes = [...]int{16, 48, 128}

// Config represents a resize configuration.
type Config struct {
	// Input is the path of the source image.
	Input string
	// Dir is the directory where icons are written. It must already exist.
	Dir string
	// Resizer scales the source image. If nil, the Lanczos resizer from
	// "github.com/disintegration/imaging" is used.
	Resizer Resizer
	// Logf receives a line for every written icon. If nil, log.Printf is
	// used.
	Logf logger.Logf
}

func (c *Config) setDefaults() {
	if c.Resizer == nil {
		c.Resizer = defaultResizer
	}
	if c.Logf == nil {
		c.Logf = logger.Logf(log.Printf)
	}
}

// Path returns the path of the icon of the given size inside dir.
func Path(dir string, size int) string {
	return filepath.Join(dir, fmt.Sprintf("icon%d.png", size))
}

// Resize decodes the input image and writes an icon for each size based on
// the provided [Config].
func Resize(ctx context.Context, c *Config) error {
	c.setDefaults()

	img, err := decode(c.Input)
	if err != nil {
		return err
	}

	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return err
		}

		resized, err := c.Resizer.Resize(img, image.Pt(size, size))
		if err != nil {
			return fmt.Errorf("resizing to %dx%d: %w", size, size, err)
		}

		path := Path(c.Dir, size)
		if err := save(path, resized); err != nil {
			return err
		}
		c.Logf("Saved %s", path)
	}

	return nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
