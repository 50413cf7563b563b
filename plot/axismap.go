// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "iter"

const numAxes = 4

// axisMap is a fixed-capacity map keyed by the four axes. Traversal
// visits populated slots in the canonical order BottomX, LeftY,
// RightY, TopX regardless of insertion order; the compiled script
// depends on that order being stable.
type axisMap[T any] struct {
	slots [numAxes]*T
}

// insert stores value under key and returns the previous value, if
// any. A nil value clears the slot.
func (m *axisMap[T]) insert(key Axis, value *T) *T {
	old := m.slots[key]
	m.slots[key] = value
	return old
}

// get returns the value stored under key, or nil.
func (m *axisMap[T]) get(key Axis) *T {
	return m.slots[key]
}

// all yields the populated entries in canonical axis order. The
// sequence is restartable.
func (m *axisMap[T]) all() iter.Seq2[Axis, *T] {
	return func(yield func(Axis, *T) bool) {
		for a := BottomX; a <= TopX; a++ {
			if v := m.slots[a]; v != nil && !yield(a, v) {
				return
			}
		}
	}
}
