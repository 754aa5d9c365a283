// SPDX-License-Identifier: MIT
// Package: tessella/render
//
// options.go — presentation parameters: one plain struct with deterministic
// defaults, passed by value to every renderer.

package render

// Options contains tunable presentation parameters. Zero or negative numeric
// fields fall back to their defaults at render time, so Options{} is usable.
type Options struct {
	// Side is the rendered length of one polygon side, in pixels.
	Side float64
	// Margin is the padding around the tiling bounding box, in pixels.
	Margin float64
	// Precision is the number of decimal places for SVG coordinates.
	Precision int
	// Stroke is the polygon outline color (CSS hex).
	Stroke string
	// StrokeWidth is the outline width in pixels.
	StrokeWidth float64
	// HexFill is the fill color for whole-hexagon faces (CSS hex).
	HexFill string
	// RosetteFill is the fill color for rosette triangles (CSS hex).
	RosetteFill string
	// Animate emits a SMIL fill-opacity animation per polygon when set.
	Animate bool
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultSide        = 40.0
	defaultMargin      = 8.0
	defaultPrecision   = 2
	defaultStroke      = "#2b2b2b"
	defaultStrokeWidth = 1.0
	defaultHexFill     = "#ffd166"
	defaultRosetteFill = "#8ecae6"
)

// DefaultOptions returns an Options with default settings:
// 40px sides, 8px margin, 2-decimal coordinates, dark outline, warm hexagons
// and cool rosette triangles, no animation.
func DefaultOptions() Options {
	return Options{
		Side:        defaultSide,
		Margin:      defaultMargin,
		Precision:   defaultPrecision,
		Stroke:      defaultStroke,
		StrokeWidth: defaultStrokeWidth,
		HexFill:     defaultHexFill,
		RosetteFill: defaultRosetteFill,
	}
}

// resolve fills unset numeric/string fields with defaults (last-write-wins
// for caller-provided values, deterministic fallback otherwise).
func (o Options) resolve() Options {
	if o.Side <= 0 {
		o.Side = defaultSide
	}
	if o.Margin < 0 {
		o.Margin = defaultMargin
	}
	if o.Precision < 0 {
		o.Precision = defaultPrecision
	}
	if o.Stroke == "" {
		o.Stroke = defaultStroke
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = defaultStrokeWidth
	}
	if o.HexFill == "" {
		o.HexFill = defaultHexFill
	}
	if o.RosetteFill == "" {
		o.RosetteFill = defaultRosetteFill
	}

	return o
}
