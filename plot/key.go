// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"
)

// Horizontal is the horizontal anchor of the key.
type Horizontal int

const (
	Left Horizontal = iota
	Center
	Right
)

func (h Horizontal) String() string {
	switch h {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	panic(fmt.Sprintf("plot: unknown horizontal anchor %d", int(h)))
}

// Vertical is the vertical anchor of the key.
type Vertical int

const (
	Bottom Vertical = iota
	Middle
	Top
)

func (v Vertical) String() string {
	switch v {
	case Bottom:
		return "bottom"
	case Middle:
		return "center"
	case Top:
		return "top"
	}
	panic(fmt.Sprintf("plot: unknown vertical anchor %d", int(v)))
}

// Justification is the text justification of the key's entries.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyRight
)

func (j Justification) String() string {
	switch j {
	case JustifyLeft:
		return "Left"
	case JustifyRight:
		return "Right"
	}
	panic(fmt.Sprintf("plot: unknown justification %d", int(j)))
}

// Order selects how the text and the sample of each key entry are
// ordered.
type Order int

const (
	// TextSample puts the text before the sample.
	TextSample Order = iota
	// SampleText puts the sample before the text.
	SampleText
)

func (o Order) String() string {
	switch o {
	case TextSample:
		return "noreverse"
	case SampleText:
		return "reverse"
	}
	panic(fmt.Sprintf("plot: unknown key order %d", int(o)))
}

// Stacked selects how the entries of the key are stacked.
type Stacked int

const (
	Vertically Stacked = iota
	Horizontally
)

func (s Stacked) String() string {
	switch s {
	case Vertically:
		return "vertical"
	case Horizontally:
		return "horizontal"
	}
	panic(fmt.Sprintf("plot: unknown stacking %d", int(s)))
}

const (
	posUnset = iota
	posInside
	posOutside
)

// KeyProperties configures the key (legend) of a figure. Modified
// through Figure.ConfigureKey. The key starts visible, unboxed,
// inside the top-right corner.
type KeyProperties struct {
	hidden   bool
	boxed    bool
	pos      int
	vert     Vertical
	horiz    Horizontal
	stacked  Stacked
	hasStack bool
	justify  Justification
	hasJust  bool
	order    Order
	hasOrder bool
	title    string
	hasTitle bool
}

// Show makes the key visible. The key is shown by default.
func (k *KeyProperties) Show() *KeyProperties {
	k.hidden = false
	return k
}

// Hide hides the key.
func (k *KeyProperties) Hide() *KeyProperties {
	k.hidden = true
	return k
}

// Boxed surrounds the key with a box. The key is unboxed by default.
func (k *KeyProperties) Boxed(boxed bool) *KeyProperties {
	k.boxed = boxed
	return k
}

// Inside places the key inside the plot area, anchored at the given
// corner.
func (k *KeyProperties) Inside(v Vertical, h Horizontal) *KeyProperties {
	k.pos, k.vert, k.horiz = posInside, v, h
	return k
}

// Outside places the key outside the plot area, anchored at the given
// corner.
func (k *KeyProperties) Outside(v Vertical, h Horizontal) *KeyProperties {
	k.pos, k.vert, k.horiz = posOutside, v, h
	return k
}

// Stacked changes how the entries of the key are stacked.
func (k *KeyProperties) Stacked(s Stacked) *KeyProperties {
	k.stacked = s
	k.hasStack = true
	return k
}

// Justification changes the justification of the text of each entry.
func (k *KeyProperties) Justification(j Justification) *KeyProperties {
	k.justify = j
	k.hasJust = true
	return k
}

// Order changes how the text and sample of each entry are ordered.
func (k *KeyProperties) Order(o Order) *KeyProperties {
	k.order = o
	k.hasOrder = true
	return k
}

// Title sets the title of the key.
func (k *KeyProperties) Title(title string) *KeyProperties {
	k.title = title
	k.hasTitle = true
	return k
}

// fragment renders the key directive.
func (k *KeyProperties) fragment() string {
	if k.hidden {
		return "set key off\n"
	}
	var sb strings.Builder
	sb.WriteString("set key on ")
	switch k.pos {
	case posInside:
		fmt.Fprintf(&sb, "inside %s %s ", k.vert, k.horiz)
	case posOutside:
		fmt.Fprintf(&sb, "outside %s %s ", k.vert, k.horiz)
	}
	if k.hasStack {
		fmt.Fprintf(&sb, "%s ", k.stacked)
	}
	if k.hasJust {
		fmt.Fprintf(&sb, "%s ", k.justify)
	}
	if k.hasOrder {
		fmt.Fprintf(&sb, "%s ", k.order)
	}
	if k.hasTitle {
		fmt.Fprintf(&sb, "title '%s' ", k.title)
	}
	if k.boxed {
		sb.WriteString("box ")
	}
	sb.WriteByte('\n')
	return sb.String()
}
