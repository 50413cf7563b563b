// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Sample is the set of scalar types that can be used as plot
// coordinates. Conversion to float64 is total: every Sample value has
// a double-precision representation under Go's usual conversion
// rules. Types outside the set (strings, structs, ...) are rejected
// by the compiler rather than at run time.
//
// time.Duration satisfies Sample through ~int64.
type Sample interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// floats coerces one coordinate sequence to float64.
func floats[S Sample](xs []S) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
