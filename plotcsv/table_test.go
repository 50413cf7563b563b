// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		raw  []string
		want interface{}
	}{
		{[]string{"1", "2", "3"}, []int{1, 2, 3}},
		{[]string{"1", "2.5"}, []float64{1, 2.5}},
		{[]string{"1e3"}, []float64{1000}},
		{[]string{"1", "two"}, []string{"1", "two"}},
		{[]string{"a", "b"}, []string{"a", "b"}},
	}
	for i, test := range tests {
		if got := parseColumn(test.raw); !reflect.DeepEqual(got, test.want) {
			t.Errorf("#%d: parseColumn(%v) = %#v, want %#v", i, test.raw, got, test.want)
		}
	}
}

func TestReadTable(t *testing.T) {
	in := strings.NewReader("time,latency,region\n1,0.5,us\n2,0.75,eu\n")
	tab, err := readTable(in)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tab.Columns(), []string{"time", "latency", "region"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("columns %v, want %v", got, want)
	}
	if got, want := tab.MustColumn("time"), []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("time column %#v, want %#v", got, want)
	}
	if got, want := tab.MustColumn("latency"), []float64{0.5, 0.75}; !reflect.DeepEqual(got, want) {
		t.Errorf("latency column %#v, want %#v", got, want)
	}
	if got, want := tab.MustColumn("region"), []string{"us", "eu"}; !reflect.DeepEqual(got, want) {
		t.Errorf("region column %#v, want %#v", got, want)
	}
}

func TestReadTableErrors(t *testing.T) {
	for _, in := range []string{"", "only,a,header\n", "a,b\n1\n"} {
		if _, err := readTable(strings.NewReader(in)); err == nil {
			t.Errorf("readTable(%q): no error", in)
		}
	}
}
