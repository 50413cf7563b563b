// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"
)

// Axis identifies one of the four coordinate axes of a figure.
type Axis int

const (
	BottomX Axis = iota
	LeftY
	RightY
	TopX
)

// String returns the gnuplot name of the axis.
func (a Axis) String() string {
	switch a {
	case BottomX:
		return "x"
	case LeftY:
		return "y"
	case RightY:
		return "y2"
	case TopX:
		return "x2"
	}
	panic(fmt.Sprintf("plot: unknown axis %d", int(a)))
}

// Axes identifies the pair of axes a series is plotted against.
type Axes int

const (
	BottomXLeftY Axes = iota
	BottomXRightY
	TopXLeftY
	TopXRightY
)

// String returns the gnuplot name of the axis pair.
func (a Axes) String() string {
	switch a {
	case BottomXLeftY:
		return "x1y1"
	case BottomXRightY:
		return "x1y2"
	case TopXLeftY:
		return "x2y1"
	case TopXRightY:
		return "x2y2"
	}
	panic(fmt.Sprintf("plot: unknown axis pair %d", int(a)))
}

// split returns the two single axes that make up the pair.
func (a Axes) split() (x, y Axis) {
	switch a {
	case BottomXLeftY:
		return BottomX, LeftY
	case BottomXRightY:
		return BottomX, RightY
	case TopXLeftY:
		return TopX, LeftY
	case TopXRightY:
		return TopX, RightY
	}
	panic(fmt.Sprintf("plot: unknown axis pair %d", int(a)))
}

// Scale selects how an axis maps coordinates to positions.
type Scale int

const (
	Linear Scale = iota
	Logarithmic
)

// TicLabels places explicit labels at explicit positions on an axis,
// overriding the automatically chosen tic marks. Positions beyond the
// shorter of the two slices are dropped.
type TicLabels struct {
	positions []float64
	labels    []string
}

// Tics pairs tic positions with their labels.
func Tics[P Sample](positions []P, labels []string) TicLabels {
	return TicLabels{positions: floats(positions), labels: labels}
}

// pairs renders the tic list as it appears inside the tics directive,
// or "" if the list is empty.
func (t TicLabels) pairs() string {
	n := len(t.positions)
	if len(t.labels) < n {
		n = len(t.labels)
	}
	if n == 0 {
		return ""
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("'%s' %s", t.labels[i], ftoa(t.positions[i]))
	}
	return strings.Join(parts, ", ")
}

// Gridline configures the gridlines drawn from one axis's major or
// minor tic marks. Both are hidden by default.
type Gridline struct {
	hidden    bool
	lineWidth float64
	color     Color
	lineType  LineType
	hasType   bool
}

// Show makes the gridlines visible.
func (g *Gridline) Show() *Gridline {
	g.hidden = false
	return g
}

// Hide hides the gridlines.
func (g *Gridline) Hide() *Gridline {
	g.hidden = true
	return g
}

// LineWidth sets the width of the gridlines. Width must be positive.
func (g *Gridline) LineWidth(width float64) *Gridline {
	if width <= 0 {
		panic("plot: line width must be positive")
	}
	g.lineWidth = width
	return g
}

// Color sets the color of the gridlines.
func (g *Gridline) Color(c Color) *Gridline {
	g.color = c
	return g
}

// LineType sets the dash pattern of the gridlines.
func (g *Gridline) LineType(lt LineType) *Gridline {
	g.lineType = lt
	g.hasType = true
	return g
}

// fragment renders the gridline directive for axis a, or "" when the
// gridlines are hidden.
func (g *Gridline) fragment(a Axis, minor bool) string {
	if g.hidden {
		return ""
	}
	m := ""
	if minor {
		m = "m"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "set grid %s%stics", m, a)
	if g.lineWidth > 0 {
		fmt.Fprintf(&sb, " lw %s", ftoa(g.lineWidth))
	}
	if g.color.isSet() {
		fmt.Fprintf(&sb, " lc rgb '%s'", g.color)
	}
	if g.hasType {
		fmt.Fprintf(&sb, " lt %d", int(g.lineType))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// AxisProperties configures one axis of a figure. Records are created
// through Figure.ConfigureAxis; the zero value is not meaningful.
//
// BottomX and LeftY start visible; TopX and RightY start hidden and
// are implicitly shown by Range, AutoRange, Scale or TickLabels.
type AxisProperties struct {
	axis        Axis
	hidden      bool
	label       string
	hasLabel    bool
	lo, hi      float64
	hasRange    bool
	logarithmic bool
	factor      float64
	tics        string
	majorGrid   Gridline
	minorGrid   Gridline
}

func newAxisProperties(axis Axis) *AxisProperties {
	return &AxisProperties{
		axis:      axis,
		hidden:    axis == RightY || axis == TopX,
		factor:    1,
		majorGrid: Gridline{hidden: true},
		minorGrid: Gridline{hidden: true},
	}
}

// Show makes the axis visible.
func (p *AxisProperties) Show() *AxisProperties {
	p.hidden = false
	return p
}

// Hide hides the axis. A hidden axis contributes only an "unset tics"
// directive to the script; its other settings are suppressed.
func (p *AxisProperties) Hide() *AxisProperties {
	p.hidden = true
	return p
}

// Label attaches a label to the axis.
func (p *AxisProperties) Label(label string) *AxisProperties {
	p.label = label
	p.hasLabel = true
	return p
}

// Range sets the visible range of the axis. Axes auto-scale by
// default.
func (p *AxisProperties) Range(low, high float64) *AxisProperties {
	p.hidden = false
	p.lo, p.hi = low, high
	p.hasRange = true
	return p
}

// AutoRange restores the default auto-scaled range.
func (p *AxisProperties) AutoRange() *AxisProperties {
	p.hidden = false
	p.hasRange = false
	return p
}

// Scale sets the scale of the axis. Axes are linear by default.
func (p *AxisProperties) Scale(scale Scale) *AxisProperties {
	p.hidden = false
	p.logarithmic = scale == Logarithmic
	return p
}

// ScaleFactor sets the factor every coordinate plotted against this
// axis is multiplied by before plotting. The factor must be positive;
// the default is 1.
func (p *AxisProperties) ScaleFactor(factor float64) *AxisProperties {
	if factor <= 0 {
		panic("plot: scale factor must be positive")
	}
	p.factor = factor
	return p
}

// TickLabels overrides the automatically placed tic marks.
func (p *AxisProperties) TickLabels(tics TicLabels) *AxisProperties {
	p.hidden = false
	p.tics = tics.pairs()
	return p
}

// ConfigureMajorGrid configures the gridlines placed on the axis's
// major tic marks.
func (p *AxisProperties) ConfigureMajorGrid(configure func(*Gridline)) *AxisProperties {
	configure(&p.majorGrid)
	return p
}

// ConfigureMinorGrid configures the gridlines placed on the axis's
// minor tic marks.
func (p *AxisProperties) ConfigureMinorGrid(configure func(*Gridline)) *AxisProperties {
	configure(&p.minorGrid)
	return p
}

// fragment renders the axis's directives.
func (p *AxisProperties) fragment() string {
	a := p.axis
	if p.hidden {
		return fmt.Sprintf("unset %stics\n", a)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "set %stics nomirror ", a)
	if p.tics != "" {
		fmt.Fprintf(&sb, "(%s)", p.tics)
	}
	sb.WriteByte('\n')
	if p.hasLabel {
		fmt.Fprintf(&sb, "set %slabel '%s'\n", a, p.label)
	}
	if p.hasRange {
		fmt.Fprintf(&sb, "set %srange [%s:%s]\n", a, ftoa(p.lo), ftoa(p.hi))
	}
	if p.logarithmic {
		fmt.Fprintf(&sb, "set logscale %s\n", a)
	}
	sb.WriteString(p.majorGrid.fragment(a, false))
	sb.WriteString(p.minorGrid.fragment(a, true))
	return sb.String()
}
