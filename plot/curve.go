// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"
)

// Curve is a simple two-column series: lines, points, impulses, steps
// or dots. Constructed by Lines, Points, LinesPoints, Impulses, Steps
// or Dots.
type Curve struct {
	x, y      []float64
	kind      string
	axes      Axes
	hasAxes   bool
	color     Color
	label     string
	hasLabel  bool
	lineType  LineType
	lineWidth float64
	pointType PointType
	pointSize float64
}

func newCurve[X, Y Sample](kind string, x []X, y []Y) *Curve {
	return &Curve{x: floats(x), y: floats(y), kind: kind, lineType: Solid}
}

// Lines joins the data points with a line.
func Lines[X, Y Sample](x []X, y []Y) *Curve { return newCurve("lines", x, y) }

// Points marks each data point.
func Points[X, Y Sample](x []X, y []Y) *Curve { return newCurve("points", x, y) }

// LinesPoints joins the data points with a line and marks each one.
func LinesPoints[X, Y Sample](x []X, y []Y) *Curve { return newCurve("linespoints", x, y) }

// Impulses draws a vertical line from the x axis to each data point.
func Impulses[X, Y Sample](x []X, y []Y) *Curve { return newCurve("impulses", x, y) }

// Steps draws a step between consecutive data points.
func Steps[X, Y Sample](x []X, y []Y) *Curve { return newCurve("steps", x, y) }

// Dots draws a minimally sized dot on each data point.
func Dots[X, Y Sample](x []X, y []Y) *Curve { return newCurve("dots", x, y) }

// Axes selects the axis pair to plot against. The default is
// BottomXLeftY.
func (c *Curve) Axes(axes Axes) *Curve {
	c.axes = axes
	c.hasAxes = true
	return c
}

// Color sets the line color.
func (c *Curve) Color(color Color) *Curve {
	c.color = color
	return c
}

// Label sets the legend label. Without a label the series gets no
// legend entry.
func (c *Curve) Label(label string) *Curve {
	c.label = label
	c.hasLabel = true
	return c
}

// LineType changes the dash pattern. Lines are solid by default.
func (c *Curve) LineType(lt LineType) *Curve {
	c.lineType = lt
	return c
}

// LineWidth changes the width of the line. Width must be positive.
func (c *Curve) LineWidth(width float64) *Curve {
	if width <= 0 {
		panic("plot: line width must be positive")
	}
	c.lineWidth = width
	return c
}

// PointType changes the glyph drawn at each data point.
func (c *Curve) PointType(pt PointType) *Curve {
	c.pointType = pt
	return c
}

// PointSize changes the size of the points. Size must be positive.
func (c *Curve) PointSize(size float64) *Curve {
	if size <= 0 {
		panic("plot: point size must be positive")
	}
	c.pointSize = size
	return c
}

func (c *Curve) fragment() string {
	var sb strings.Builder
	if c.hasAxes {
		fmt.Fprintf(&sb, "axes %s ", c.axes)
	}
	fmt.Fprintf(&sb, "with %s ", c.kind)
	fmt.Fprintf(&sb, "lt %d ", int(c.lineType))
	if c.lineWidth > 0 {
		fmt.Fprintf(&sb, "lw %s ", ftoa(c.lineWidth))
	}
	if c.color.isSet() {
		fmt.Fprintf(&sb, "lc rgb '%s' ", c.color)
	}
	if c.pointType != 0 {
		fmt.Fprintf(&sb, "pt %d ", int(c.pointType))
	}
	if c.pointSize > 0 {
		fmt.Fprintf(&sb, "ps %s ", ftoa(c.pointSize))
	}
	if c.hasLabel {
		fmt.Fprintf(&sb, "title '%s'", c.label)
	} else {
		sb.WriteString("notitle")
	}
	return sb.String()
}

func (c *Curve) register(f *Figure) {
	axes := BottomXLeftY
	if c.hasAxes {
		axes = c.axes
	}
	xf, yf := f.scaleFactors(axes)
	data := newMatrix([][]float64{c.x, c.y}, []float64{xf, yf})
	f.series = append(f.series, seriesPlot{data: data, style: c.fragment()})
}
