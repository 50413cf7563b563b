// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"
)

// ErrorBar is an asymmetric error bar series: a two-column primary
// curve plus a (low, high) pair of absolute error coordinates on one
// of the two axes. Constructed by XErrorBars, XErrorLines, YErrorBars
// or YErrorLines. Error bar series always plot against BottomXLeftY.
type ErrorBar struct {
	x, y      []float64
	low, high []float64
	kind      string
	vertical  bool
	color     Color
	label     string
	hasLabel  bool
	lineType  LineType
	lineWidth float64
	pointType PointType
	pointSize float64
}

func newErrorBar[X, Y, L, H Sample](kind string, vertical bool, x []X, y []Y, low []L, high []H) *ErrorBar {
	return &ErrorBar{
		x: floats(x), y: floats(y),
		low: floats(low), high: floats(high),
		kind: kind, vertical: vertical, lineType: Solid,
	}
}

// XErrorBars draws a horizontal error bar through each data point.
// xLow and xHigh are the absolute x coordinates of the bar ends.
func XErrorBars[X, Y, L, H Sample](x []X, y []Y, xLow []L, xHigh []H) *ErrorBar {
	return newErrorBar("xerrorbars", false, x, y, xLow, xHigh)
}

// XErrorLines is XErrorBars with consecutive data points joined by a
// line.
func XErrorLines[X, Y, L, H Sample](x []X, y []Y, xLow []L, xHigh []H) *ErrorBar {
	return newErrorBar("xerrorlines", false, x, y, xLow, xHigh)
}

// YErrorBars draws a vertical error bar through each data point.
// yLow and yHigh are the absolute y coordinates of the bar ends.
func YErrorBars[X, Y, L, H Sample](x []X, y []Y, yLow []L, yHigh []H) *ErrorBar {
	return newErrorBar("yerrorbars", true, x, y, yLow, yHigh)
}

// YErrorLines is YErrorBars with consecutive data points joined by a
// line.
func YErrorLines[X, Y, L, H Sample](x []X, y []Y, yLow []L, yHigh []H) *ErrorBar {
	return newErrorBar("yerrorlines", true, x, y, yLow, yHigh)
}

// Color sets the color of the error bars.
func (e *ErrorBar) Color(color Color) *ErrorBar {
	e.color = color
	return e
}

// Label sets the legend label.
func (e *ErrorBar) Label(label string) *ErrorBar {
	e.label = label
	e.hasLabel = true
	return e
}

// LineType changes the dash pattern. Lines are solid by default.
func (e *ErrorBar) LineType(lt LineType) *ErrorBar {
	e.lineType = lt
	return e
}

// LineWidth changes the width of the line. Width must be positive.
func (e *ErrorBar) LineWidth(width float64) *ErrorBar {
	if width <= 0 {
		panic("plot: line width must be positive")
	}
	e.lineWidth = width
	return e
}

// PointType changes the glyph drawn at each data point.
func (e *ErrorBar) PointType(pt PointType) *ErrorBar {
	e.pointType = pt
	return e
}

// PointSize changes the size of the points. Size must be positive.
func (e *ErrorBar) PointSize(size float64) *ErrorBar {
	if size <= 0 {
		panic("plot: point size must be positive")
	}
	e.pointSize = size
	return e
}

func (e *ErrorBar) fragment() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "with %s ", e.kind)
	fmt.Fprintf(&sb, "lt %d ", int(e.lineType))
	if e.lineWidth > 0 {
		fmt.Fprintf(&sb, "lw %s ", ftoa(e.lineWidth))
	}
	if e.color.isSet() {
		fmt.Fprintf(&sb, "lc rgb '%s' ", e.color)
	}
	if e.pointType != 0 {
		fmt.Fprintf(&sb, "pt %d ", int(e.pointType))
	}
	if e.pointSize > 0 {
		fmt.Fprintf(&sb, "ps %s ", ftoa(e.pointSize))
	}
	if e.hasLabel {
		fmt.Fprintf(&sb, "title '%s'", e.label)
	} else {
		sb.WriteString("notitle")
	}
	return sb.String()
}

func (e *ErrorBar) register(f *Figure) {
	xf, yf := f.scaleFactors(BottomXLeftY)
	ef := xf
	if e.vertical {
		ef = yf
	}
	data := newMatrix(
		[][]float64{e.x, e.y, e.low, e.high},
		[]float64{xf, yf, ef, ef},
	)
	f.series = append(f.series, seriesPlot{data: data, style: e.fragment()})
}
