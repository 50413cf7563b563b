// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotcsv plots columns of a CSV file with gnuplot.
//
// The input's first row names the columns. Numeric columns can be
// plotted against each other, optionally grouped into one series per
// distinct value of a third column:
//
//	plotcsv -x time -y latency -g region -o latency.svg results.csv
//
// With no input file, plotcsv reads standard input. The compiled
// gnuplot script can be inspected with -script instead of rendering.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ploteria/ploteria-go/plot"
)

var (
	flagX      string
	flagY      string
	flagGroup  string
	flagStyle  string
	flagOutput string
	flagScript string

	flagTitle    string
	flagXLabel   string
	flagYLabel   string
	flagLogX     bool
	flagLogY     bool
	flagTerminal string
	flagWidth    int
	flagHeight   int
	flagGnuplot  string
)

func main() {
	log.SetPrefix("plotcsv: ")
	log.SetFlags(0)

	cmd := &cobra.Command{
		Use:           "plotcsv [flags] [input.csv]",
		Short:         "plot columns of a CSV file with gnuplot",
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	flags.StringVarP(&flagX, "x", "x", "", "`column` to plot on the x axis (default: first column)")
	flags.StringVarP(&flagY, "y", "y", "", "`column` to plot on the y axis (default: second column)")
	flags.StringVarP(&flagGroup, "group", "g", "", "plot one series per distinct value of `column`")
	flags.StringVar(&flagStyle, "style", "lines", "series `style`: lines, points, linespoints, dots, impulses or steps")
	flags.StringVarP(&flagOutput, "output", "o", "plot.svg", "write the rendered plot to `file`")
	flags.StringVar(&flagScript, "script", "", "write the gnuplot script to `file` instead of rendering")
	flags.StringVar(&flagTitle, "title", "", "plot title")
	flags.StringVar(&flagXLabel, "x-label", "", "x axis label (default: x column name)")
	flags.StringVar(&flagYLabel, "y-label", "", "y axis label (default: y column name)")
	flags.BoolVar(&flagLogX, "log-x", false, "use a logarithmic x axis")
	flags.BoolVar(&flagLogY, "log-y", false, "use a logarithmic y axis")
	flags.StringVar(&flagTerminal, "terminal", "svg", "output `terminal`: svg or png")
	flags.IntVar(&flagWidth, "width", 0, "canvas width in pixels")
	flags.IntVar(&flagHeight, "height", 0, "canvas height in pixels")
	flags.StringVar(&flagGnuplot, "gnuplot", "gnuplot", "gnuplot `command` to render with")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	tab, err := readTable(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fig, err := buildFigure(tab)
	if err != nil {
		return err
	}

	if flagScript != "" {
		return fig.Save(flagScript)
	}
	if _, err := plot.GnuplotVersion(flagGnuplot); err != nil {
		return err
	}
	return fig.Draw()
}
