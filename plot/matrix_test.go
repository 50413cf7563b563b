// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"encoding/binary"
	"math"
	"reflect"
	"testing"
)

func decodeFloats(b []byte) []float64 {
	out := make([]float64, len(b)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return out
}

func TestMatrix(t *testing.T) {
	tests := []struct {
		cols    [][]float64
		factors []float64
		rows    int
		want    []float64
	}{
		{[][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{1, 1}, 3, []float64{1, 4, 2, 5, 3, 6}},
		{[][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{2, 1}, 3, []float64{2, 4, 4, 5, 6, 6}},
		{[][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{1, 0.5}, 3, []float64{1, 2, 2, 2.5, 3, 3}},
		{[][]float64{{1, 2}, {3, 4}, {5, 6}}, []float64{1, 2, 3}, 2, []float64{1, 6, 15, 2, 8, 18}},
		// Unequal columns truncate to the shortest.
		{[][]float64{{1, 2, 3}, {4, 5}}, []float64{1, 1}, 2, []float64{1, 4, 2, 5}},
		// No rows, no bytes.
		{[][]float64{{}, {}}, []float64{1, 1}, 0, []float64{}},
	}
	for i, test := range tests {
		m := newMatrix(test.cols, test.factors)
		if m.rows != test.rows || m.cols != len(test.cols) {
			t.Errorf("#%d: got %d×%d matrix, want %d×%d", i, m.rows, m.cols, test.rows, len(test.cols))
			continue
		}
		b := m.bytes()
		if len(b) != m.rows*m.cols*8 {
			t.Errorf("#%d: got %d bytes, want %d", i, len(b), m.rows*m.cols*8)
			continue
		}
		if got := decodeFloats(b); !reflect.DeepEqual(got, test.want) {
			t.Errorf("#%d: decoded %v, want %v", i, got, test.want)
		}
	}
}
