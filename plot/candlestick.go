// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"
)

// Candlestick is a box-and-whiskers series: at each x coordinate a
// box spanning [boxMin, boxHigh] with whiskers extending to
// [whiskerMin, whiskerHigh]. Constructed by Candlesticks. Candlestick
// series always plot against BottomXLeftY.
type Candlestick struct {
	x                    []float64
	whiskerMin, boxMin   []float64
	boxHigh, whiskerHigh []float64
	color                Color
	label                string
	hasLabel             bool
	lineType             LineType
	lineWidth            float64
}

// Candlesticks draws a candlestick at each x coordinate.
func Candlesticks[X, WM, BM, BH, WH Sample](x []X, whiskerMin []WM, boxMin []BM, boxHigh []BH, whiskerHigh []WH) *Candlestick {
	return &Candlestick{
		x:          floats(x),
		whiskerMin: floats(whiskerMin), boxMin: floats(boxMin),
		boxHigh: floats(boxHigh), whiskerHigh: floats(whiskerHigh),
		lineType: Solid,
	}
}

// Color sets the line color.
func (c *Candlestick) Color(color Color) *Candlestick {
	c.color = color
	return c
}

// Label sets the legend label.
func (c *Candlestick) Label(label string) *Candlestick {
	c.label = label
	c.hasLabel = true
	return c
}

// LineType changes the dash pattern. Lines are solid by default.
func (c *Candlestick) LineType(lt LineType) *Candlestick {
	c.lineType = lt
	return c
}

// LineWidth changes the width of the line. Width must be positive.
func (c *Candlestick) LineWidth(width float64) *Candlestick {
	if width <= 0 {
		panic("plot: line width must be positive")
	}
	c.lineWidth = width
	return c
}

func (c *Candlestick) fragment() string {
	var sb strings.Builder
	sb.WriteString("with candlesticks ")
	fmt.Fprintf(&sb, "lt %d ", int(c.lineType))
	if c.lineWidth > 0 {
		fmt.Fprintf(&sb, "lw %s ", ftoa(c.lineWidth))
	}
	if c.color.isSet() {
		fmt.Fprintf(&sb, "lc rgb '%s' ", c.color)
	}
	if c.hasLabel {
		fmt.Fprintf(&sb, "title '%s'", c.label)
	} else {
		sb.WriteString("notitle")
	}
	return sb.String()
}

func (c *Candlestick) register(f *Figure) {
	xf, yf := f.scaleFactors(BottomXLeftY)
	data := newMatrix(
		[][]float64{c.x, c.boxMin, c.whiskerMin, c.whiskerHigh, c.boxHigh},
		[]float64{xf, yf, yf, yf, yf},
	)
	f.series = append(f.series, seriesPlot{data: data, style: c.fragment()})
}
