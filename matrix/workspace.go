// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/exactla/fraction"

// workspace is the only mutable matrix representation in the package.
// It is created from a *Dense inside a single Inverse call, mutated by the
// three elementary row operations below, and discarded once the result has
// been copied out with block. A workspace never escapes to callers.
//
// Rows are stored as independent slices so swapRows is O(1).
type workspace struct {
	rows [][]fraction.Fraction
	cols int
}

// newWorkspace deep-copies m into row slices.
func newWorkspace(m *Dense) *workspace {
	w := &workspace{rows: make([][]fraction.Fraction, m.r), cols: m.c}
	for i := range w.rows {
		w.rows[i] = make([]fraction.Fraction, m.c)
		copy(w.rows[i], m.data[i*m.c:(i+1)*m.c])
	}

	return w
}

// swapRows exchanges rows i and j.
func (w *workspace) swapRows(i, j int) {
	w.rows[i], w.rows[j] = w.rows[j], w.rows[i]
}

// scaleRow multiplies every entry of row i by s.
func (w *workspace) scaleRow(i int, s fraction.Fraction) {
	row := w.rows[i]
	for k := range row {
		row[k] = row[k].Mul(s)
	}
}

// addScaledRow is the transvection dst[k] += s * src[k] for every column k.
func (w *workspace) addScaledRow(src, dst int, s fraction.Fraction) {
	from, to := w.rows[src], w.rows[dst]
	for k := range to {
		to[k] = to[k].Add(from[k].Mul(s))
	}
}

// pivotRow returns the row in from..len(rows)-1 whose entry in column col has
// the greatest magnitude, together with that (signed) entry. Ties keep the
// lowest row index. A zero entry means no usable pivot exists in the column.
func (w *workspace) pivotRow(col, from int) (int, fraction.Fraction) {
	best := from
	bestAbs := w.rows[from][col].Abs()
	for i := from + 1; i < len(w.rows); i++ {
		if v := w.rows[i][col].Abs(); v.GreaterThan(bestAbs) { // strict: ties keep the lower row
			best, bestAbs = i, v
		}
	}

	return best, w.rows[best][col]
}

// block copies columns c0..c0+width-1 into a new immutable *Dense.
func (w *workspace) block(c0, width int) *Dense {
	res := newDense(len(w.rows), width)
	for i, row := range w.rows {
		copy(res.data[i*width:(i+1)*width], row[c0:c0+width])
	}

	return res
}
