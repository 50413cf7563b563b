// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strconv"
)

// ftoa formats a coordinate or style value the way it appears in the
// compiled script: shortest decimal that round-trips float64.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// A Color selects the color of a plot element. The zero value means
// "unset": the element keeps gnuplot's default color and the script
// carries no lc/lt color fragment for it.
type Color struct {
	gp string
}

// RGB returns a custom color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{gp: fmt.Sprintf("#%02x%02x%02x", r, g, b)}
}

// Named colors, matching gnuplot's predefined color names.
var (
	Black       = Color{gp: "black"}
	Blue        = Color{gp: "blue"}
	Cyan        = Color{gp: "cyan"}
	DarkViolet  = Color{gp: "dark-violet"}
	ForestGreen = Color{gp: "forest-green"}
	Gold        = Color{gp: "gold"}
	Gray        = Color{gp: "gray"}
	Green       = Color{gp: "green"}
	Magenta     = Color{gp: "magenta"}
	Red         = Color{gp: "red"}
	White       = Color{gp: "white"}
	Yellow      = Color{gp: "yellow"}
)

func (c Color) isSet() bool { return c.gp != "" }

// String returns the color as it appears in the script.
func (c Color) String() string { return c.gp }

// LineType selects the dash pattern of lines. Dash patterns only
// take effect on terminals configured for dashed output.
type LineType int

const (
	Solid      LineType = 1
	Dash       LineType = 2
	Dot        LineType = 3
	DotDash    LineType = 4
	DotDotDash LineType = 5
	// SmallDot is a line drawn as minimally sized dots.
	SmallDot LineType = 0
)

// PointType selects the glyph used to mark data points.
type PointType int

const (
	PlusSign PointType = 1 + iota
	XSign
	Star
	Square
	FilledSquare
	Circle
	FilledCircle
	Triangle
	FilledTriangle
)

// Terminal selects the output format gnuplot renders to.
type Terminal int

const (
	// SVG produces scalable vector graphics.
	SVG Terminal = iota
	// PNG produces bitmaps via the pngcairo terminal.
	PNG
)

func (t Terminal) String() string {
	switch t {
	case SVG:
		return "svg"
	case PNG:
		return "pngcairo"
	}
	panic(fmt.Sprintf("plot: unknown terminal %d", int(t)))
}

// Size is a canvas size in terminal units (pixels for the built-in
// terminals).
type Size struct {
	Width, Height int
}
