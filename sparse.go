package glove

import "fmt"

// CoocEntry is a nonzero coordinate of the co-occurrence matrix. The
// weight itself lives in the matrix; entries only drive iteration
// order during training.
type CoocEntry struct {
	I int
	J int
}

// CooccurrenceMatrix is a symmetric sparse V×V matrix of distance
// weighted co-occurrence counts. Rows store their nonzero cells as
// parallel column/value slices. Only what building, training, and
// persistence need is implemented; this is not a general sparse
// matrix.
type CooccurrenceMatrix struct {
	cols [][]int
	vals [][]float64
	size int
}

// NewCooccurrenceMatrix returns an empty matrix over a vocabulary of
// size words.
func NewCooccurrenceMatrix(size int) *CooccurrenceMatrix {
	return &CooccurrenceMatrix{
		cols: make([][]int, size),
		vals: make([][]float64, size),
		size: size,
	}
}

// Size returns the vocabulary size V (the matrix is V×V).
func (m *CooccurrenceMatrix) Size() int {
	return m.size
}

// Add accumulates weight into cell (i, j). It does not touch (j, i);
// symmetry is the builder's responsibility.
func (m *CooccurrenceMatrix) Add(i, j int, weight float64) {
	for idx, col := range m.cols[i] {
		if col == j {
			m.vals[i][idx] += weight
			return
		}
	}
	m.cols[i] = append(m.cols[i], j)
	m.vals[i] = append(m.vals[i], weight)
}

// Weight returns the value of cell (i, j), zero when the cell is not
// stored.
func (m *CooccurrenceMatrix) Weight(i, j int) float64 {
	for idx, col := range m.cols[i] {
		if col == j {
			return m.vals[i][idx]
		}
	}
	return 0
}

// NonZeros returns the number of stored cells.
func (m *CooccurrenceMatrix) NonZeros() int {
	n := 0
	for _, cols := range m.cols {
		n += len(cols)
	}
	return n
}

// Entries returns the coordinates of every stored cell. The slice is
// freshly allocated; training shuffles it in place.
func (m *CooccurrenceMatrix) Entries() []CoocEntry {
	entries := make([]CoocEntry, 0, m.NonZeros())
	for i, cols := range m.cols {
		for _, j := range cols {
			entries = append(entries, CoocEntry{I: i, J: j})
		}
	}
	return entries
}

// accumulate adds every stored cell of other into m. Used to reduce
// the workers' partial matrices after a parallel build.
func (m *CooccurrenceMatrix) accumulate(other *CooccurrenceMatrix) {
	for i, cols := range other.cols {
		for idx, j := range cols {
			m.Add(i, j, other.vals[i][idx])
		}
	}
}

// denseRow writes row i into buf, which must have length Size().
// Unstored cells become zero.
func (m *CooccurrenceMatrix) denseRow(i int, buf []float64) {
	if len(buf) != m.size {
		panic(fmt.Sprintf("glove: dense row buffer has length %d, want %d", len(buf), m.size))
	}
	for k := range buf {
		buf[k] = 0
	}
	for idx, j := range m.cols[i] {
		buf[j] = m.vals[i][idx]
	}
}

// setRow replaces row i with the nonzero cells of a dense row. Zero
// cells are dropped so the training entry list never sees them.
func (m *CooccurrenceMatrix) setRow(i int, row []float64) {
	m.cols[i] = m.cols[i][:0]
	m.vals[i] = m.vals[i][:0]
	for j, v := range row {
		if v != 0 {
			m.cols[i] = append(m.cols[i], j)
			m.vals[i] = append(m.vals[i], v)
		}
	}
}
