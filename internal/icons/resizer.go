// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/bamiaux/rez"
	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resizer scales an image to exactly size, ignoring its aspect ratio.
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// DefaultResizer is the name of the resizer used when none is configured.
const DefaultResizer = "imaging"

var defaultResizer = resizers[DefaultResizer]

var resizers = map[string]Resizer{
	"imaging":    imagingResizer{},
	"gift":       giftResizer{},
	"nfnt":       nfntResizer{},
	"bild":       bildResizer{},
	"rez":        rezResizer{},
	"catmullrom": xdrawResizer{scaler: draw.CatmullRom},
}

// Resizers returns the sorted names of available resizers.
func Resizers() []string {
	names := make([]string, 0, len(resizers))
	for name := range resizers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupResizer returns the resizer registered under name.
func LookupResizer(name string) (Resizer, error) {
	r, ok := resizers[name]
	if !ok {
		return nil, fmt.Errorf("unknown resizer %q (available: %s)", name, strings.Join(Resizers(), ", "))
	}
	return r, nil
}

// imagingResizer uses "github.com/disintegration/imaging".
type imagingResizer struct{}

func (imagingResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return imaging.Resize(img, size.X, size.Y, imaging.Lanczos), nil
}

// giftResizer uses "github.com/disintegration/gift".
type giftResizer struct{}

func (giftResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	g := gift.New(gift.Resize(size.X, size.Y, gift.LanczosResampling))
	m := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(m, img)
	return m, nil
}

// nfntResizer uses "github.com/nfnt/resize".
type nfntResizer struct{}

func (nfntResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3), nil
}

// bildResizer uses "github.com/anthonynsimon/bild/transform".
type bildResizer struct{}

func (bildResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return transform.Resize(img, size.X, size.Y, transform.Lanczos), nil
}

// rezResizer uses "github.com/bamiaux/rez". It only converts between images
// of the same type and rejects sources narrower or shorter than 2 pixels, so
// the source is copied to NRGBA of at least 2×2 first.
type rezResizer struct{}

func (rezResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	var src *image.NRGBA
	if b := img.Bounds(); b.Dx() < 2 || b.Dy() < 2 {
		src = imaging.Resize(img, max(b.Dx(), 2), max(b.Dy(), 2), imaging.NearestNeighbor)
	} else {
		src = imaging.Clone(img)
	}
	m := image.NewNRGBA(image.Rectangle{Max: size})
	if err := rez.Convert(m, src, rez.NewLanczosFilter(3)); err != nil {
		return nil, err
	}
	return m, nil
}

// xdrawResizer uses "golang.org/x/image/draw", which has no Lanczos kernel.
type xdrawResizer struct {
	scaler draw.Scaler
}

func (r xdrawResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := image.NewNRGBA(image.Rectangle{Max: size})
	r.scaler.Scale(m, m.Bounds(), img, img.Bounds(), draw.Src, nil)
	return m, nil
}
