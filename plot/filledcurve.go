// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"
)

// FilledCurve fills the area between two curves sharing their x
// coordinates. Constructed by FilledCurves. The border of the filled
// area is always suppressed.
type FilledCurve struct {
	x, y1, y2  []float64
	axes       Axes
	hasAxes    bool
	color      Color
	label      string
	hasLabel   bool
	opacity    float64
	hasOpacity bool
}

// FilledCurves fills the area between the curves (x, y1) and (x, y2).
func FilledCurves[X, Y1, Y2 Sample](x []X, y1 []Y1, y2 []Y2) *FilledCurve {
	return &FilledCurve{x: floats(x), y1: floats(y1), y2: floats(y2)}
}

// Axes selects the axis pair to plot against. The default is
// BottomXLeftY.
func (c *FilledCurve) Axes(axes Axes) *FilledCurve {
	c.axes = axes
	c.hasAxes = true
	return c
}

// Color sets the fill color.
func (c *FilledCurve) Color(color Color) *FilledCurve {
	c.color = color
	return c
}

// Label sets the legend label.
func (c *FilledCurve) Label(label string) *FilledCurve {
	c.label = label
	c.hasLabel = true
	return c
}

// Opacity changes the opacity of the fill color. The fill is totally
// opaque by default. Opacity must be in [0, 1].
func (c *FilledCurve) Opacity(opacity float64) *FilledCurve {
	if opacity < 0 || opacity > 1 {
		panic("plot: opacity must be in [0, 1]")
	}
	c.opacity = opacity
	c.hasOpacity = true
	return c
}

func (c *FilledCurve) fragment() string {
	var sb strings.Builder
	if c.hasAxes {
		fmt.Fprintf(&sb, "axes %s ", c.axes)
	}
	sb.WriteString("with filledcurves ")
	sb.WriteString("fillstyle ")
	if c.hasOpacity {
		fmt.Fprintf(&sb, "solid %s ", ftoa(c.opacity))
	}
	sb.WriteString("noborder ")
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

func (c *FilledCurve) register(f *Figure) {
	axes := BottomXLeftY
	if c.hasAxes {
		axes = c.axes
	}
	xf, yf := f.scaleFactors(axes)
	data := newMatrix(
		[][]float64{c.x, c.y1, c.y2},
		[]float64{xf, yf, yf},
	)
	f.series = append(f.series, seriesPlot{data: data, style: c.fragment()})
}
