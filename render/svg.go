// SPDX-License-Identifier: MIT
// Package: tessella/render
//
// svg.go — SVG vector markup emission.
//
// Contract:
//   - One <polygon> per face, in face order (deterministic bytes).
//   - Faces are classed "hexagon"/"rosette" by motif and filled accordingly.
//   - Coordinates are scaled by Options.Side, offset by Options.Margin,
//     y-flipped into SVG's y-down space and rounded to Options.Precision
//     decimal places.
//   - With Options.Animate, each polygon carries a SMIL fill-opacity
//     animation whose phase is staggered by face index (still deterministic).
//
// Complexity: O(Σ face sizes) time, O(1) extra space.

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tessella/core"
)

// Animation timing (seconds). Phase staggering cycles every animPhases faces.
const (
	animDur    = 3.0
	animPhases = 6
)

// svgWriter emits markup to an io.Writer, capturing the first write error so
// emission code stays branch-free.
type svgWriter struct {
	w   io.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// projector maps tiling plane coordinates into the pixel viewport:
// scale by side, pad by margin, flip y (SVG and image space grow downward).
type projector struct {
	minX, maxY   float64
	side, margin float64
}

func newProjector(t *core.Tiling, opts Options) (p projector, width, height float64) {
	min, max := t.BoundingBox()
	p = projector{minX: min.X, maxY: max.Y, side: opts.Side, margin: opts.Margin}
	width = (max.X-min.X)*opts.Side + 2*opts.Margin
	height = (max.Y-min.Y)*opts.Side + 2*opts.Margin

	return p, width, height
}

func (p projector) apply(q core.Point) (x, y float64) {
	return (q.X-p.minX)*p.side + p.margin, (p.maxY-q.Y)*p.side + p.margin
}

// SVG writes the tiling as a standalone SVG document.
// Returns ErrNilTiling for a nil tiling; otherwise only I/O errors from w.
func SVG(w io.Writer, t *core.Tiling, opts Options) error {
	if t == nil {
		return fmt.Errorf("SVG: %w", ErrNilTiling)
	}
	opts = opts.resolve()
	proj, vw, vh := newProjector(t, opts)

	s := &svgWriter{w: w}
	s.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	s.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %s %s\">\n",
		fmtCoord(vw, opts.Precision), fmtCoord(vh, opts.Precision))

	for fi, f := range t.Faces {
		class, fill := "hexagon", opts.HexFill
		if f.Sides() != 6 {
			class, fill = "rosette", opts.RosetteFill
		}
		s.printf("<polygon class=\"%s\" points=\"", class)
		for k, vi := range f.Verts {
			x, y := proj.apply(t.Vertices[vi].Pos())
			if k > 0 {
				s.printf(" ")
			}
			s.printf("%s,%s", fmtCoord(x, opts.Precision), fmtCoord(y, opts.Precision))
		}
		s.printf("\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\"", fill, opts.Stroke,
			fmtCoord(opts.StrokeWidth, opts.Precision))
		if !opts.Animate {
			s.printf("/>\n")

			continue
		}
		s.printf(">\n")
		begin := float64(fi%animPhases) * animDur / animPhases
		s.printf("<animate attributeName=\"fill-opacity\" values=\"1;0.35;1\" dur=\"%ss\" begin=\"%ss\" repeatCount=\"indefinite\"/>\n",
			fmtCoord(animDur, opts.Precision), fmtCoord(begin, opts.Precision))
		s.printf("</polygon>\n")
	}

	s.printf("</svg>\n")

	return s.err
}

// fmtCoord renders a coordinate with fixed decimal precision.
func fmtCoord(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
