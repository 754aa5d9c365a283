// Package render turns a validated core.Tiling into presentation output:
// SVG vector markup, a minimal HTML document, or a raster image.
//
// What:
//
//   - SVG: one <polygon> per face, classed by motif, with fixed-precision
//     coordinate rounding and optional SMIL opacity animation.
//   - HTML: an HTML5 document embedding the SVG inline.
//   - Rasterize: fills every face into an *image.RGBA using
//     golang.org/x/image/vector (PNG encoding is left to callers).
//
// Why:
//
//   - Rendering is pure presentation — no combinatorial content. All
//     geometry decisions were made (and validated) upstream; this package
//     only scales, rounds and emits.
//
// Guarantees:
//
//   - Renderers never mutate the tiling.
//   - Output is deterministic: identical (tiling, options) produce identical
//     bytes/pixels.
//   - Invalid arguments surface as sentinel errors (ErrNilTiling,
//     ErrBadColor); no panics.
//
// Options:
//
//   - Options.Side: pixels per polygon side.
//   - Options.Margin: pixels of padding around the bounding box.
//   - Options.Precision: decimal places for SVG coordinates.
//   - Options.HexFill / RosetteFill / Stroke: CSS hex colors.
//   - Options.Animate: emit SMIL fill-opacity animation per polygon.
//
// Complexity: O(Σ face sizes) for SVG/HTML; O(Σ face sizes + pixels) for
// Rasterize.
package render
