// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"
)

// GridLayer selects the sorting layer the grid is rendered on.
type GridLayer int

const (
	// LayerDefault leaves gnuplot's layer choice in effect.
	LayerDefault GridLayer = iota
	// Front renders the grid in front of the plot.
	Front
	// Back renders the grid behind the plot.
	Back
)

func (l GridLayer) String() string {
	switch l {
	case LayerDefault:
		return "layerdefault"
	case Front:
		return "front"
	case Back:
		return "back"
	}
	panic(fmt.Sprintf("plot: unknown grid layer %d", int(l)))
}

// GridStyle is the appearance of the major or the minor grid.
// Unset fields are omitted from the script.
type GridStyle struct {
	lineWidth float64
	color     Color
	lineType  LineType
	hasType   bool
}

// LineWidth sets the width of the grid lines. Width must be positive.
func (s *GridStyle) LineWidth(width float64) *GridStyle {
	if width <= 0 {
		panic("plot: line width must be positive")
	}
	s.lineWidth = width
	return s
}

// Color sets the color of the grid lines.
func (s *GridStyle) Color(c Color) *GridStyle {
	s.color = c
	return s
}

// LineType sets the dash pattern of the grid lines.
func (s *GridStyle) LineType(lt LineType) *GridStyle {
	s.lineType = lt
	s.hasType = true
	return s
}

func (s *GridStyle) fragment() string {
	var sb strings.Builder
	if s.lineWidth > 0 {
		fmt.Fprintf(&sb, "lw %s ", ftoa(s.lineWidth))
	}
	if s.color.isSet() {
		fmt.Fprintf(&sb, "lc rgb '%s' ", s.color)
	}
	if s.hasType {
		fmt.Fprintf(&sb, "lt %d ", int(s.lineType))
	}
	return sb.String()
}

// GridOptions is the figure-wide grid configuration: a render layer
// plus the styles of the major and minor grids. Modified through
// Figure.ConfigureGrid.
type GridOptions struct {
	layer    GridLayer
	hasLayer bool
	major    GridStyle
	minor    GridStyle
}

// Layer sets the sorting layer of both the major and minor grids.
func (g *GridOptions) Layer(layer GridLayer) *GridOptions {
	g.layer = layer
	g.hasLayer = true
	return g
}

// ConfigureMajor configures the style of the major grid.
func (g *GridOptions) ConfigureMajor(configure func(*GridStyle)) *GridOptions {
	configure(&g.major)
	return g
}

// ConfigureMinor configures the style of the minor grid.
func (g *GridOptions) ConfigureMinor(configure func(*GridStyle)) *GridOptions {
	configure(&g.minor)
	return g
}

// fragment renders the grid directive: layer, then the major style,
// a comma, the minor style, and a newline.
func (g *GridOptions) fragment() string {
	var sb strings.Builder
	sb.WriteString("set grid ")
	if g.hasLayer {
		fmt.Fprintf(&sb, "%s ", g.layer)
	}
	sb.WriteString(g.major.fragment())
	sb.WriteByte(',')
	sb.WriteString(g.minor.fragment())
	sb.WriteByte('\n')
	return sb.String()
}
