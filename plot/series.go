// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// A Series is one plottable data set: a curve, an error bar plot, a
// filled curve or a candlestick plot. The set is closed; series values
// are created by this package's constructors, styled through their
// methods and handed to Figure.Plot.
type Series interface {
	// register resolves the series' axis pair against f, builds the
	// data matrix with the axes' scale factors applied and appends
	// the (matrix, style fragment) pair to f's series list.
	register(f *Figure)
}

// seriesPlot is one registered series: its sample data and the
// rendered style fragment of its plot clause. Immutable once built.
type seriesPlot struct {
	data  matrix
	style string
}
