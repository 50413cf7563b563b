// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"encoding/binary"
	"math"
)

// matrix holds the sample data of one series: rows×cols float64
// values in row-major order. Cell (r, c) is input_c[r] * factor_c,
// where factor_c is the scale factor of the axis column c is plotted
// against. The factors are applied once, at construction.
type matrix struct {
	rows, cols int
	data       []float64
}

// newMatrix builds a matrix from parallel columns, scaling each by
// its factor. Columns of unequal length are truncated to the
// shortest one.
func newMatrix(cols [][]float64, factors []float64) matrix {
	if len(cols) == 0 || len(cols) != len(factors) {
		panic("plot: column/factor count mismatch")
	}
	rows := len(cols[0])
	for _, col := range cols[1:] {
		if len(col) < rows {
			rows = len(col)
		}
	}
	data := make([]float64, 0, rows*len(cols))
	for r := 0; r < rows; r++ {
		for c, col := range cols {
			data = append(data, col[r]*factors[c])
		}
	}
	return matrix{rows: rows, cols: len(cols), data: data}
}

// bytes encodes the matrix as little-endian float64 values in
// row-major order, with no header or padding. The result is always
// rows*cols*8 bytes; a zero-row matrix encodes to nothing.
func (m *matrix) bytes() []byte {
	buf := make([]byte, 8*len(m.data))
	for i, v := range m.data {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return buf
}
