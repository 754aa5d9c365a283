// SPDX-License-Identifier: MIT
// Package: tessella/render
//
// raster.go — raster output via golang.org/x/image/vector.
//
// Contract:
//   - Fills every face onto a white background; outlines are an SVG concern
//     and are not rasterized.
//   - Pixel dimensions derive from the tiling bounding box, Options.Side and
//     Options.Margin (rounded up, minimum 1×1).
//   - Deterministic: identical (tiling, options) produce identical pixels.
//
// Complexity: O(Σ face sizes + W×H pixels) time, O(W×H) memory.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/katalvlaran/tessella/core"
)

// Rasterize renders the tiling into a new RGBA image.
// Returns ErrNilTiling for a nil tiling and ErrBadColor for unparseable
// fill colors.
func Rasterize(t *core.Tiling, opts Options) (*image.RGBA, error) {
	if t == nil {
		return nil, fmt.Errorf("Rasterize: %w", ErrNilTiling)
	}
	opts = opts.resolve()

	hexFill, err := parseHexColor(opts.HexFill)
	if err != nil {
		return nil, fmt.Errorf("Rasterize: hex fill %q: %w", opts.HexFill, err)
	}
	rosetteFill, err := parseHexColor(opts.RosetteFill)
	if err != nil {
		return nil, fmt.Errorf("Rasterize: rosette fill %q: %w", opts.RosetteFill, err)
	}

	proj, vw, vh := newProjector(t, opts)
	width := int(math.Ceil(vw))
	height := int(math.Ceil(vh))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := vector.NewRasterizer(width, height)
	for _, f := range t.Faces {
		fill := hexFill
		if f.Sides() != 6 {
			fill = rosetteFill
		}
		for k, vi := range f.Verts {
			x, y := proj.apply(t.Vertices[vi].Pos())
			if k == 0 {
				r.MoveTo(float32(x), float32(y))
			} else {
				r.LineTo(float32(x), float32(y))
			}
		}
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{})
		r.Reset(width, height)
	}

	return img, nil
}

// parseHexColor parses "#rgb" or "#rrggbb" CSS colors.
func parseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	c.A = 0xff
	switch len(s) {
	case 4: // #rgb
		if s[0] != '#' {
			return c, ErrBadColor
		}
		for k, dst := range []*uint8{&c.R, &c.G, &c.B} {
			n, ok := hexNibble(s[1+k])
			if !ok {
				return c, ErrBadColor
			}
			*dst = n*16 + n
		}
	case 7: // #rrggbb
		if s[0] != '#' {
			return c, ErrBadColor
		}
		for k, dst := range []*uint8{&c.R, &c.G, &c.B} {
			hi, ok1 := hexNibble(s[1+2*k])
			lo, ok2 := hexNibble(s[2+2*k])
			if !ok1 || !ok2 {
				return c, ErrBadColor
			}
			*dst = hi*16 + lo
		}
	default:
		return c, ErrBadColor
	}

	return c, nil
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
