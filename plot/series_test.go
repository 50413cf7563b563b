// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"reflect"
	"testing"
)

func TestCurveFragments(t *testing.T) {
	x, y := []int{1}, []int{2}
	tests := []struct {
		curve *Curve
		want  string
	}{
		{Lines(x, y), "with lines lt 1 notitle"},
		{Points(x, y), "with points lt 1 notitle"},
		{LinesPoints(x, y), "with linespoints lt 1 notitle"},
		{Impulses(x, y), "with impulses lt 1 notitle"},
		{Steps(x, y), "with steps lt 1 notitle"},
		{Dots(x, y), "with dots lt 1 notitle"},
		{Lines(x, y).LineType(SmallDot), "with lines lt 0 notitle"},
		{Lines(x, y).Label("l"), "with lines lt 1 title 'l'"},
		{
			Lines(x, y).
				Axes(BottomXRightY).
				LineType(Dash).
				LineWidth(3).
				Color(Red).
				PointType(Circle).
				PointSize(1.5).
				Label("styled"),
			"axes x1y2 with lines lt 2 lw 3 lc rgb 'red' pt 6 ps 1.5 title 'styled'",
		},
		{
			Points(x, y).Color(RGB(0, 158, 115)).PointType(FilledCircle),
			"with points lt 1 lc rgb '#009e73' pt 7 notitle",
		},
	}
	for i, test := range tests {
		if got := test.curve.fragment(); got != test.want {
			t.Errorf("#%d: fragment %q, want %q", i, got, test.want)
		}
	}
}

func TestErrorBarFragments(t *testing.T) {
	x, y, lo, hi := []int{1}, []int{2}, []int{0}, []int{3}
	tests := []struct {
		bar  *ErrorBar
		want string
	}{
		{XErrorBars(x, y, lo, hi), "with xerrorbars lt 1 notitle"},
		{XErrorLines(x, y, lo, hi), "with xerrorlines lt 1 notitle"},
		{YErrorBars(x, y, lo, hi), "with yerrorbars lt 1 notitle"},
		{YErrorLines(x, y, lo, hi), "with yerrorlines lt 1 notitle"},
		{
			YErrorBars(x, y, lo, hi).LineWidth(2).Color(Blue).PointType(PlusSign).Label("e"),
			"with yerrorbars lt 1 lw 2 lc rgb 'blue' pt 1 title 'e'",
		},
	}
	for i, test := range tests {
		if got := test.bar.fragment(); got != test.want {
			t.Errorf("#%d: fragment %q, want %q", i, got, test.want)
		}
	}
}

func TestFilledCurveFragments(t *testing.T) {
	x, y1, y2 := []int{1}, []int{2}, []int{3}
	tests := []struct {
		fc   *FilledCurve
		want string
	}{
		{FilledCurves(x, y1, y2), "with filledcurves fillstyle noborder notitle"},
		{
			FilledCurves(x, y1, y2).Opacity(0.5).Color(ForestGreen),
			"with filledcurves fillstyle solid 0.5 noborder lc rgb 'forest-green' notitle",
		},
		{
			FilledCurves(x, y1, y2).Axes(TopXLeftY).Label("band"),
			"axes x2y1 with filledcurves fillstyle noborder title 'band'",
		},
	}
	for i, test := range tests {
		if got := test.fc.fragment(); got != test.want {
			t.Errorf("#%d: fragment %q, want %q", i, got, test.want)
		}
	}
}

func TestCandlestickFragment(t *testing.T) {
	one := []int{1}
	c := Candlesticks(one, one, one, one, one)
	if got, want := c.fragment(), "with candlesticks lt 1 notitle"; got != want {
		t.Errorf("fragment %q, want %q", got, want)
	}
	c.LineWidth(2).Color(Black).Label("box")
	if got, want := c.fragment(), "with candlesticks lt 1 lw 2 lc rgb 'black' title 'box'"; got != want {
		t.Errorf("fragment %q, want %q", got, want)
	}
}

func TestCandlestickColumnOrder(t *testing.T) {
	fig := NewFigure().
		Plot(Candlesticks([]int{1}, []int{2}, []int{3}, []int{4}, []int{5}))
	got := fig.Script()
	rows := decodeFloats(got[len(got)-40:])
	// x, box min, whisker min, whisker high, box high.
	want := []float64{1, 3, 2, 5, 4}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("payload decodes to %v, want %v", rows, want)
	}
}

func TestErrorBarFactors(t *testing.T) {
	configure := func(f *Figure) *Figure {
		return f.
			ConfigureAxis(BottomX, func(a *AxisProperties) { a.ScaleFactor(10) }).
			ConfigureAxis(LeftY, func(a *AxisProperties) { a.ScaleFactor(2) })
	}

	// X error columns share the x axis factor.
	fig := configure(NewFigure()).
		Plot(XErrorBars([]int{1}, []int{2}, []float64{0.5}, []float64{1.5}))
	got := fig.Script()
	rows := decodeFloats(got[len(got)-32:])
	if want := []float64{10, 4, 5, 15}; !reflect.DeepEqual(rows, want) {
		t.Errorf("x error payload decodes to %v, want %v", rows, want)
	}

	// Y error columns share the y axis factor.
	fig = configure(NewFigure()).
		Plot(YErrorBars([]int{1}, []int{2}, []float64{0.5}, []float64{1.5}))
	got = fig.Script()
	rows = decodeFloats(got[len(got)-32:])
	if want := []float64{10, 4, 1, 3}; !reflect.DeepEqual(rows, want) {
		t.Errorf("y error payload decodes to %v, want %v", rows, want)
	}
}

func TestCurveAxesFactors(t *testing.T) {
	fig := NewFigure().
		ConfigureAxis(RightY, func(a *AxisProperties) { a.ScaleFactor(3) }).
		ConfigureAxis(LeftY, func(a *AxisProperties) { a.ScaleFactor(7) }).
		Plot(Lines([]int{1, 2}, []int{1, 1}).Axes(BottomXRightY))
	got := fig.Script()
	rows := decodeFloats(got[len(got)-32:])
	if want := []float64{1, 3, 2, 3}; !reflect.DeepEqual(rows, want) {
		t.Errorf("payload decodes to %v, want %v", rows, want)
	}
}

func TestDurationSamples(t *testing.T) {
	type ms int64
	fig := NewFigure().
		Plot(Lines([]ms{1000, 2000}, []float64{0.5, 1.5}))
	got := fig.Script()
	rows := decodeFloats(got[len(got)-32:])
	if want := []float64{1000, 0.5, 2000, 1.5}; !reflect.DeepEqual(rows, want) {
		t.Errorf("payload decodes to %v, want %v", rows, want)
	}
}
