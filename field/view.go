package field

import "iter"

// View is a read-only window onto a live Field. It reflects later changes to
// the field; use DeepCopy for a frozen snapshot.
type View struct {
	f *Field
}

// Rows returns the number of rows of the underlying field.
func (v View) Rows() int {
	return v.f.rows
}

// Columns returns the number of columns of the underlying field.
func (v View) Columns() int {
	return v.f.columns
}

// At returns the cell value at row, col. It panics when out of range.
func (v View) At(row, col int) int {
	return v.f.grid[row][col]
}

// Cells yields every cell in row-major order, keyed by its grid position.
func (v View) Cells() iter.Seq2[Position, int] {
	return func(yield func(Position, int) bool) {
		for i, row := range v.f.grid {
			for j, cell := range row {
				if !yield(Position{X: j, Y: i}, cell) {
					return
				}
			}
		}
	}
}

// Occupied counts the non-empty cells.
func (v View) Occupied() int {
	n := 0
	for _, cell := range v.Cells() {
		if cell > 0 {
			n++
		}
	}
	return n
}

// Heights returns, per column, the number of rows from the topmost occupied
// cell down to the floor. Empty columns report zero.
func (v View) Heights() []int {
	heights := make([]int, v.f.columns)
	for col := range heights {
		for row := 0; row < v.f.rows; row++ {
			if v.f.grid[row][col] > 0 {
				heights[col] = v.f.rows - row
				break
			}
		}
	}
	return heights
}
