// Package field models the playing field of a falling-block puzzle game.
//
// A Field is a fixed-size grid of integer cells. Zero means empty and any
// positive value marks a locked block, the value identifying its type. Pieces
// are passed in per call as a Shape and a Position; the Field answers whether
// the placement is legal (CanMove) and merges settled pieces (Update).
//
// A Field is not safe for concurrent mutation. Hand an independent instance
// to another goroutine with DeepCopy.
package field

import (
	"fmt"
	"strings"
)

const (
	DefaultRows    = 20
	DefaultColumns = 10
)

// Field holds the grid state of one play session or one lookahead computation.
type Field struct {
	grid    [][]int
	rows    int
	columns int
}

// New creates an empty field with DefaultRows x DefaultColumns cells.
func New() *Field {
	return NewSize(DefaultRows, DefaultColumns)
}

// NewSize creates an empty field with the given dimensions.
func NewSize(rows, columns int) *Field {
	if rows < 0 || columns < 0 {
		panic(fmt.Sprintf("field: negative size %dx%d", rows, columns))
	}

	grid := make([][]int, rows)
	for i := range grid {
		grid[i] = make([]int, columns)
	}

	return &Field{
		grid:    grid,
		rows:    rows,
		columns: columns,
	}
}

// Wrap creates a field that uses data as its grid storage directly. Nothing
// is copied, so later writes to data are visible through the field and vice
// versa. data must be rectangular; this is not checked (see FromData).
func Wrap(data [][]int) *Field {
	columns := 0
	if len(data) > 0 {
		columns = len(data[0])
	}

	return &Field{
		grid:    data,
		rows:    len(data),
		columns: columns,
	}
}

// FromData is Wrap with validation: data must be rectangular and hold no
// negative cells.
func FromData(data [][]int) (*Field, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	return Wrap(data), nil
}

func validate(data [][]int) error {
	if len(data) == 0 {
		return nil
	}

	columns := len(data[0])
	for i, row := range data {
		if len(row) != columns {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotRectangular, i, len(row), columns)
		}
		for j, cell := range row {
			if cell < 0 {
				return fmt.Errorf("%w: cell (%d,%d) is %d", ErrNegativeCell, i, j, cell)
			}
		}
	}
	return nil
}

// Rows returns the number of rows.
func (f *Field) Rows() int {
	return f.rows
}

// Columns returns the number of columns.
func (f *Field) Columns() int {
	return f.columns
}

// At returns the cell value at the given row and column.
func (f *Field) At(row, col int) int {
	return f.grid[row][col]
}

// BorrowGrid returns the live grid storage, not a copy. Writes through the
// returned slices change the field. Renderers should prefer View; use
// DeepCopy when an isolated grid is needed.
func (f *Field) BorrowGrid() [][]int {
	return f.grid
}

// View returns a read-only view of the live grid.
func (f *Field) View() View {
	return View{f: f}
}

// CanMove reports whether shape fits at pos without leaving the grid or
// overlapping a locked cell. Zero cells of the shape impose no constraint.
func (f *Field) CanMove(shape Shape, pos Position) bool {
	if pos.Y >= f.rows {
		return false
	}

	for i, cols := range shape {
		for j, block := range cols {
			if block <= 0 {
				continue
			}

			y := i + pos.Y
			x := j + pos.X

			if y > f.rows-1 || y < 0 || x < 0 || x > f.columns-1 {
				return false
			}

			if f.grid[y][x] > 0 {
				return false
			}
		}
	}

	return true
}

// Update stamps every occupied cell of shape into the grid at pos. Cells of
// the shape that are zero leave the grid untouched.
//
// Update does no bounds checking: the caller must have seen CanMove report
// true for the same shape and position. An out-of-range placement panics.
// TryUpdate is the checked variant.
func (f *Field) Update(shape Shape, pos Position) {
	for i, cols := range shape {
		for j, block := range cols {
			if block > 0 {
				f.grid[i+pos.Y][j+pos.X] = block
			}
		}
	}
}

// TryUpdate merges shape at pos if CanMove allows it, otherwise it returns
// ErrIllegalPlacement and leaves the grid unchanged.
func (f *Field) TryUpdate(shape Shape, pos Position) error {
	if !f.CanMove(shape, pos) {
		return fmt.Errorf("%w: %dx%d shape at (%d,%d)", ErrIllegalPlacement, shape.Height(), shape.Width(), pos.X, pos.Y)
	}
	f.Update(shape, pos)
	return nil
}

// DeepCopy returns a field whose grid shares no storage with f.
func DeepCopy(f *Field) *Field {
	grid := make([][]int, len(f.grid))
	for i, row := range f.grid {
		grid[i] = make([]int, len(row))
		copy(grid[i], row)
	}

	return &Field{
		grid:    grid,
		rows:    f.rows,
		columns: f.columns,
	}
}

// Clone is shorthand for DeepCopy(f).
func (f *Field) Clone() *Field {
	return DeepCopy(f)
}

// Drop returns the lowest position reachable by moving shape straight down
// from pos. If shape does not fit at pos, pos is returned unchanged.
func (f *Field) Drop(shape Shape, pos Position) Position {
	if !f.CanMove(shape, pos) {
		return pos
	}
	for f.CanMove(shape, Position{X: pos.X, Y: pos.Y + 1}) {
		pos.Y++
	}
	return pos
}

// ClearRows removes every completely filled row, moves the rows above it
// down and zeroes the rows freed at the top. It returns the number of rows
// removed. Grid dimensions and row storage are preserved.
func (f *Field) ClearRows() int {
	cleared := 0
	dst := f.rows - 1

	for src := f.rows - 1; src >= 0; src-- {
		if f.rowFull(src) {
			cleared++
			continue
		}
		if dst != src {
			copy(f.grid[dst], f.grid[src])
		}
		dst--
	}

	for ; dst >= 0; dst-- {
		clear(f.grid[dst])
	}

	return cleared
}

func (f *Field) rowFull(row int) bool {
	if f.columns == 0 {
		return false
	}
	for _, cell := range f.grid[row] {
		if cell <= 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both fields have the same dimensions and cell values.
func (f *Field) Equal(other *Field) bool {
	if other == nil || f.rows != other.rows || f.columns != other.columns {
		return false
	}
	for i := range f.grid {
		for j := range f.grid[i] {
			if f.grid[i][j] != other.grid[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the grid one row per line, '.' for empty cells and a base-36
// digit for occupied ones ('#' when the value does not fit in one digit).
func (f *Field) String() string {
	var b strings.Builder
	b.Grow(f.rows * (f.columns + 1))

	for i, row := range f.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteByte(cellRune(cell))
		}
	}
	return b.String()
}

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func cellRune(v int) byte {
	switch {
	case v == 0:
		return '.'
	case v > 0 && v < len(digits):
		return digits[v]
	default:
		return '#'
	}
}
