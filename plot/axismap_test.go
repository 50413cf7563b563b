// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"reflect"
	"testing"
)

func TestAxisMapOrder(t *testing.T) {
	insertions := [][]Axis{
		{BottomX, LeftY, RightY, TopX},
		{TopX, RightY, LeftY, BottomX},
		{RightY, BottomX, TopX, LeftY},
	}
	want := []Axis{BottomX, LeftY, RightY, TopX}
	for _, order := range insertions {
		var m axisMap[int]
		for i, a := range order {
			v := i
			m.insert(a, &v)
		}
		var got []Axis
		for a := range m.all() {
			got = append(got, a)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("inserted %v: traversal %v, want %v", order, got, want)
		}
	}
}

func TestAxisMapPartial(t *testing.T) {
	var m axisMap[string]
	v := "y2"
	m.insert(RightY, &v)
	var got []Axis
	for a, s := range m.all() {
		if *s != "y2" {
			t.Errorf("value for %v = %q, want %q", a, *s, "y2")
		}
		got = append(got, a)
	}
	if !reflect.DeepEqual(got, []Axis{RightY}) {
		t.Errorf("traversal %v, want [RightY]", got)
	}
	if m.get(BottomX) != nil {
		t.Error("get of unpopulated key is non-nil")
	}
}

func TestAxisMapUpsert(t *testing.T) {
	var m axisMap[int]
	a, b := 1, 2
	if old := m.insert(LeftY, &a); old != nil {
		t.Errorf("first insert returned %v, want nil", old)
	}
	if old := m.insert(LeftY, &b); old != &a {
		t.Error("second insert did not return the first value")
	}
	if got := m.get(LeftY); got != &b {
		t.Error("get did not return the latest value")
	}
}
