// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/aclements/go-moremath/scale"

// LinearTics chooses up to max well-spaced tic positions covering
// [lo, hi] and labels each with its decimal value. Useful with
// AxisProperties.TickLabels when the automatic tic placement is not
// wanted but hand-picking positions is overkill.
func LinearTics(lo, hi float64, max int) TicLabels {
	ls := scale.Linear{Min: lo, Max: hi}
	major, _ := ls.Ticks(scale.TickOptions{Max: max})
	labels := make([]string, len(major))
	for i, v := range major {
		labels[i] = ftoa(v)
	}
	return TicLabels{positions: major, labels: labels}
}
