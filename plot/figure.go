// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// Figure is a plot under construction: global settings, per-axis
// configuration, an optional key and grid, and the registered series.
// Configure the figure, then compile it with Script, Dump, Save or
// Draw. A Figure is not safe for concurrent use.
type Figure struct {
	alpha       float64
	hasAlpha    bool
	axes        axisMap[AxisProperties]
	boxWidth    float64
	hasBoxWidth bool
	command     string
	font        string
	fontSize    float64
	grid        *GridOptions
	key         *KeyProperties
	output      string
	series      []seriesPlot
	width       int
	height      int
	hasSize     bool
	terminal    Terminal
	tics        axisMap[string]
	title       string
	hasTitle    bool
}

// NewFigure creates an empty figure. Every setting has a default, so
// an empty figure compiles to a valid, series-free script.
func NewFigure() *Figure {
	return &Figure{
		command:  "gnuplot",
		output:   "output.plot",
		terminal: SVG,
	}
}

// Alpha sets the transparency of filled elements. Alpha must be in
// [0, 1]; 0 is fully transparent.
func (f *Figure) Alpha(alpha float64) *Figure {
	if alpha < 0 || alpha > 1 {
		panic("plot: alpha must be in [0, 1]")
	}
	f.alpha = alpha
	f.hasAlpha = true
	return f
}

// BoxWidth changes the box width of all box-like series (bars,
// candlesticks). Width must be non-negative; the default is 0, which
// lets the renderer choose.
func (f *Figure) BoxWidth(width float64) *Figure {
	if width < 0 {
		panic("plot: box width must be non-negative")
	}
	f.boxWidth = width
	f.hasBoxWidth = true
	return f
}

// Command changes the renderer command line used by Draw. The string
// is split with shell quoting rules; the default is "gnuplot".
func (f *Figure) Command(command string) *Figure {
	f.command = command
	return f
}

// Font changes the font.
func (f *Figure) Font(font string) *Figure {
	f.font = font
	return f
}

// FontSize changes the size of the font. Size must be positive.
func (f *Figure) FontSize(size float64) *Figure {
	if size <= 0 {
		panic("plot: font size must be positive")
	}
	f.fontSize = size
	return f
}

// Output changes the output file the rendered plot is written to.
// The default is "output.plot".
func (f *Figure) Output(path string) *Figure {
	f.output = path
	return f
}

// FigureSize changes the canvas size, in terminal units.
func (f *Figure) FigureSize(width, height int) *Figure {
	f.width, f.height = width, height
	f.hasSize = true
	return f
}

// Terminal changes the output terminal. The default is SVG.
func (f *Figure) Terminal(terminal Terminal) *Figure {
	f.terminal = terminal
	return f
}

// Title sets the title.
func (f *Figure) Title(title string) *Figure {
	f.title = title
	f.hasTitle = true
	return f
}

// ConfigureAxis configures one axis, creating its property record on
// first use.
func (f *Figure) ConfigureAxis(axis Axis, configure func(*AxisProperties)) *Figure {
	props := f.axes.get(axis)
	if props == nil {
		props = newAxisProperties(axis)
		f.axes.insert(axis, props)
	}
	configure(props)
	return f
}

// ConfigureKey configures the key (legend), creating its property
// record on first use.
func (f *Figure) ConfigureKey(configure func(*KeyProperties)) *Figure {
	if f.key == nil {
		f.key = new(KeyProperties)
	}
	configure(f.key)
	return f
}

// ConfigureGrid configures the major and the minor grid, creating the
// options record on first use.
func (f *Figure) ConfigureGrid(configure func(*GridOptions)) *Figure {
	if f.grid == nil {
		f.grid = new(GridOptions)
	}
	configure(f.grid)
	return f
}

// TickLabels overrides the tic marks of an axis. If the axis has a
// property record the labels become part of it; otherwise a
// standalone tics directive is emitted for the axis.
func (f *Figure) TickLabels(axis Axis, tics TicLabels) *Figure {
	if props := f.axes.get(axis); props != nil {
		props.TickLabels(tics)
		return f
	}
	pairs := tics.pairs()
	if pairs == "" {
		f.tics.insert(axis, nil)
		return f
	}
	directive := fmt.Sprintf("set %stics (%s)\n", axis, pairs)
	f.tics.insert(axis, &directive)
	return f
}

// Plot registers a series.
func (f *Figure) Plot(series Series) *Figure {
	series.register(f)
	return f
}

// scaleFactors resolves the scale factors of both axes of a pair,
// defaulting to 1 for axes without a property record.
func (f *Figure) scaleFactors(axes Axes) (xf, yf float64) {
	x, y := axes.split()
	xf, yf = 1, 1
	if props := f.axes.get(x); props != nil {
		xf = props.factor
	}
	if props := f.axes.get(y); props != nil {
		yf = props.factor
	}
	return xf, yf
}

// Script compiles the figure: the gnuplot directives, one plot clause
// per non-empty series, and after a single newline the concatenated
// binary payloads of those series. Compiling does not mutate the
// figure; compiling twice yields byte-identical output.
func (f *Figure) Script() []byte {
	var buf bytes.Buffer

	buf.WriteString("set encoding utf8\n")
	fmt.Fprintf(&buf, "set output '%s'\n", f.output)

	if f.hasBoxWidth {
		fmt.Fprintf(&buf, "set boxwidth %s\n", ftoa(f.boxWidth))
	}
	if f.hasTitle {
		fmt.Fprintf(&buf, "set title '%s'\n", f.title)
	}

	for _, props := range f.axes.all() {
		buf.WriteString(props.fragment())
	}
	for _, directive := range f.tics.all() {
		buf.WriteString(*directive)
	}

	if f.key != nil {
		buf.WriteString(f.key.fragment())
	}
	if f.grid != nil {
		buf.WriteString(f.grid.fragment())
	}
	if f.hasAlpha {
		fmt.Fprintf(&buf, "set style fill transparent solid %s\n", ftoa(f.alpha))
	}

	fmt.Fprintf(&buf, "set terminal %s dashed", f.terminal)
	if f.hasSize {
		fmt.Fprintf(&buf, " size %d, %d", f.width, f.height)
	}
	if f.font != "" {
		if f.fontSize > 0 {
			fmt.Fprintf(&buf, " font '%s,%s'", f.font, ftoa(f.fontSize))
		} else {
			fmt.Fprintf(&buf, " font '%s'", f.font)
		}
	}

	buf.WriteString("\nunset bars\n")

	first := true
	for _, p := range f.series {
		if p.data.rows == 0 {
			continue
		}
		if first {
			buf.WriteString("plot ")
			first = false
		} else {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "'-' binary endian=little record=%d format='%%float64' using ", p.data.rows)
		for col := 0; col < p.data.cols; col++ {
			if col > 0 {
				buf.WriteByte(':')
			}
			fmt.Fprintf(&buf, "%d", col+1)
		}
		buf.WriteByte(' ')
		buf.WriteString(p.style)
	}

	first = true
	for _, p := range f.series {
		if p.data.rows == 0 {
			continue
		}
		if first {
			buf.WriteByte('\n')
			first = false
		}
		buf.Write(p.data.bytes())
	}

	return buf.Bytes()
}

// Dump writes the compiled figure to sink.
func (f *Figure) Dump(sink io.Writer) error {
	_, err := sink.Write(f.Script())
	return err
}

// Save writes the compiled figure to path.
func (f *Figure) Save(path string) error {
	return os.WriteFile(path, f.Script(), 0666)
}

// Draw pipes the compiled figure into the renderer and waits for it
// to finish. The rendered plot lands in the figure's output file.
func (f *Figure) Draw() error {
	words, err := shellquote.Split(f.command)
	if err != nil {
		return fmt.Errorf("splitting command %q: %w", f.command, err)
	}
	if len(words) == 0 {
		return fmt.Errorf("empty renderer command")
	}
	cmd := exec.Command(words[0], words[1:]...)
	cmd.Stdin = bytes.NewReader(f.Script())
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%s: %w: %s", words[0], err, stderr.String())
		}
		return fmt.Errorf("%s: %w", words[0], err)
	}
	return nil
}
