// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot builds gnuplot figures.
//
// A Figure accumulates a declarative description of one 2-D plot:
// global settings, per-axis and key (legend) configuration, and any
// number of data series. Compiling the figure produces a single byte
// stream of gnuplot directives followed by the raw sample data of
// every series, encoded as little-endian float64 and announced by a
// "binary ... format='%float64'" clause. The stream can be written to
// a file with Save, to any sink with Dump, or piped straight into a
// gnuplot process with Draw.
//
// Series constructors are generic over the coordinate element type,
// so integer, float and duration samples all plot without manual
// conversion:
//
//	fig := plot.NewFigure().
//		Title("Frequency response").
//		ConfigureAxis(plot.BottomX, func(a *plot.AxisProperties) {
//			a.Label("Angular frequency (rad/s)").
//				Range(1.1, 90000).
//				Scale(plot.Logarithmic)
//		}).
//		Plot(plot.Lines(freqs, magnitude).
//			Color(plot.DarkViolet).
//			Label("Magnitude").
//			LineWidth(2)).
//		Plot(plot.Lines(freqs, phase).
//			Axes(plot.BottomXRightY).
//			Color(plot.RGB(0, 158, 115)).
//			Label("Phase").
//			LineWidth(2))
//	if err := fig.Draw(); err != nil {
//		log.Fatal(err)
//	}
//
// The package only compiles figures; all drawing is gnuplot's job.
package plot
