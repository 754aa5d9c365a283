// SPDX-License-Identifier: MIT
// Package: tessella/render
//
// html.go — a minimal HTML5 document wrapper around the SVG output.

package render

import (
	"fmt"
	"html"
	"io"

	"github.com/katalvlaran/tessella/core"
)

// HTML writes an HTML5 document with the tiling's SVG embedded inline.
// The title is HTML-escaped. Returns ErrNilTiling for a nil tiling.
// Complexity: O(Σ face sizes).
func HTML(w io.Writer, t *core.Tiling, title string, opts Options) error {
	if t == nil {
		return fmt.Errorf("HTML: %w", ErrNilTiling)
	}

	s := &svgWriter{w: w}
	s.printf("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	s.printf("<meta charset=\"utf-8\">\n<title>%s</title>\n", html.EscapeString(title))
	s.printf("<style>body{margin:0;display:grid;place-items:center;min-height:100vh;background:#fafafa}</style>\n")
	s.printf("</head>\n<body>\n")
	if s.err != nil {
		return s.err
	}
	if err := SVG(w, t, opts); err != nil {
		return err
	}
	s.printf("</body>\n</html>\n")

	return s.err
}
