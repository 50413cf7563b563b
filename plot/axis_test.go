// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "testing"

func TestAxisNames(t *testing.T) {
	tests := []struct {
		axis Axis
		want string
	}{
		{BottomX, "x"},
		{LeftY, "y"},
		{RightY, "y2"},
		{TopX, "x2"},
	}
	for _, test := range tests {
		if got := test.axis.String(); got != test.want {
			t.Errorf("%d.String() = %q, want %q", int(test.axis), got, test.want)
		}
	}
}

func TestAxesSplit(t *testing.T) {
	tests := []struct {
		axes Axes
		name string
		x, y Axis
	}{
		{BottomXLeftY, "x1y1", BottomX, LeftY},
		{BottomXRightY, "x1y2", BottomX, RightY},
		{TopXLeftY, "x2y1", TopX, LeftY},
		{TopXRightY, "x2y2", TopX, RightY},
	}
	for _, test := range tests {
		if got := test.axes.String(); got != test.name {
			t.Errorf("%d.String() = %q, want %q", int(test.axes), got, test.name)
		}
		x, y := test.axes.split()
		if x != test.x || y != test.y {
			t.Errorf("%s.split() = (%v, %v), want (%v, %v)", test.name, x, y, test.x, test.y)
		}
	}
}

func TestTicPairs(t *testing.T) {
	tests := []struct {
		tics TicLabels
		want string
	}{
		{Tics([]int{1, 2}, []string{"one", "two"}), "'one' 1, 'two' 2"},
		{Tics([]float64{0.5}, []string{"half"}), "'half' 0.5"},
		// Extra positions or labels are dropped.
		{Tics([]int{1, 2, 3}, []string{"one"}), "'one' 1"},
		{Tics([]int{1}, []string{"one", "two"}), "'one' 1"},
		{Tics([]int{}, []string{}), ""},
	}
	for i, test := range tests {
		if got := test.tics.pairs(); got != test.want {
			t.Errorf("#%d: pairs %q, want %q", i, got, test.want)
		}
	}
}

func TestAxisFragment(t *testing.T) {
	props := newAxisProperties(BottomX)
	props.Label("angle (rad)").
		Range(0, 6.28).
		Scale(Logarithmic).
		TickLabels(Tics([]int{0, 3}, []string{"zero", "pi"})).
		ConfigureMajorGrid(func(g *Gridline) { g.Show() }).
		ConfigureMinorGrid(func(g *Gridline) { g.Show().LineWidth(0.5).Color(Gray).LineType(Dot) })

	want := "set xtics nomirror ('zero' 0, 'pi' 3)\n" +
		"set xlabel 'angle (rad)'\n" +
		"set xrange [0:6.28]\n" +
		"set logscale x\n" +
		"set grid xtics\n" +
		"set grid mxtics lw 0.5 lc rgb 'gray' lt 3\n"
	if got := props.fragment(); got != want {
		t.Errorf("fragment:\n%q\nwant:\n%q", got, want)
	}

	if got, want := props.Hide().fragment(), "unset xtics\n"; got != want {
		t.Errorf("hidden fragment %q, want %q", got, want)
	}
}
