// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/ploteria/ploteria-go/plot"
)

// readTable parses CSV into a table. The first row names the
// columns. A column whose every value parses as an integer becomes
// []int, as a float []float64; anything else stays []string.
func readTable(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("need a header row and at least one data row")
	}
	header, data := rows[0], rows[1:]

	b := new(table.Builder)
	for j, name := range header {
		raw := make([]string, len(data))
		for i, row := range data {
			raw[i] = row[j]
		}
		b.Add(name, parseColumn(raw))
	}
	return b.Done(), nil
}

func parseColumn(raw []string) table.Slice {
	ints := make([]int, len(raw))
	isInt := true
	for i, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			isInt = false
			break
		}
		ints[i] = v
	}
	if isInt {
		return ints
	}

	fs := make([]float64, len(raw))
	isFloat := true
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			isFloat = false
			break
		}
		fs[i] = v
	}
	if isFloat {
		return fs
	}
	return raw
}

// numericColumn fetches col from t as []float64.
func numericColumn(t *table.Table, col string) ([]float64, error) {
	v := t.MustColumn(col)
	if _, ok := v.([]string); ok {
		return nil, fmt.Errorf("column %q is not numeric", col)
	}
	var out []float64
	slice.Convert(&out, v)
	return out, nil
}

// groupLabel is the group column's value within one group's subtable.
func groupLabel(t *table.Table, col string) string {
	v := reflect.ValueOf(t.MustColumn(col))
	if v.Len() == 0 {
		return ""
	}
	return fmt.Sprint(v.Index(0).Interface())
}

var seriesColors = []plot.Color{
	plot.DarkViolet, plot.ForestGreen, plot.Gold, plot.Blue,
	plot.Red, plot.Magenta, plot.Cyan, plot.Black,
}

func newCurve(style string, xs, ys []float64) (*plot.Curve, error) {
	switch style {
	case "lines":
		return plot.Lines(xs, ys), nil
	case "points":
		return plot.Points(xs, ys), nil
	case "linespoints":
		return plot.LinesPoints(xs, ys), nil
	case "dots":
		return plot.Dots(xs, ys), nil
	case "impulses":
		return plot.Impulses(xs, ys), nil
	case "steps":
		return plot.Steps(xs, ys), nil
	}
	return nil, fmt.Errorf("unknown style %q", style)
}

// buildFigure turns the table into a figure per the command flags.
func buildFigure(tab *table.Table) (*plot.Figure, error) {
	cols := tab.Columns()
	xCol, yCol := flagX, flagY
	if xCol == "" || yCol == "" {
		if len(cols) < 2 {
			return nil, fmt.Errorf("input has %d column(s); name both with -x and -y", len(cols))
		}
		if xCol == "" {
			xCol = cols[0]
		}
		if yCol == "" {
			yCol = cols[1]
		}
	}

	fig := plot.NewFigure().
		Output(flagOutput).
		Command(flagGnuplot)

	switch flagTerminal {
	case "svg":
		fig.Terminal(plot.SVG)
	case "png":
		fig.Terminal(plot.PNG)
	default:
		return nil, fmt.Errorf("unknown terminal %q", flagTerminal)
	}
	if flagTitle != "" {
		fig.Title(flagTitle)
	}
	if flagWidth > 0 && flagHeight > 0 {
		fig.FigureSize(flagWidth, flagHeight)
	}

	xLabel, yLabel := flagXLabel, flagYLabel
	if xLabel == "" {
		xLabel = xCol
	}
	if yLabel == "" {
		yLabel = yCol
	}
	fig.ConfigureAxis(plot.BottomX, func(a *plot.AxisProperties) {
		a.Label(xLabel)
		if flagLogX {
			a.Scale(plot.Logarithmic)
		}
	})
	fig.ConfigureAxis(plot.LeftY, func(a *plot.AxisProperties) {
		a.Label(yLabel)
		if flagLogY {
			a.Scale(plot.Logarithmic)
		}
	})

	var g table.Grouping = tab
	if flagGroup != "" {
		g = table.GroupBy(tab, flagGroup)
	}
	for i, gid := range g.Tables() {
		t := g.Table(gid)
		xs, err := numericColumn(t, xCol)
		if err != nil {
			return nil, err
		}
		ys, err := numericColumn(t, yCol)
		if err != nil {
			return nil, err
		}
		curve, err := newCurve(flagStyle, xs, ys)
		if err != nil {
			return nil, err
		}
		if flagGroup != "" {
			curve.Label(groupLabel(t, flagGroup)).
				Color(seriesColors[i%len(seriesColors)])
		}
		fig.Plot(curve)
	}
	return fig, nil
}
