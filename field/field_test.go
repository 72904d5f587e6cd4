package field_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfield/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dot = field.Shape{{1}}

func TestNewDefaultSize(t *testing.T) {
	f := field.New()

	assert.Equal(t, 20, f.Rows())
	assert.Equal(t, 10, f.Columns())

	grid := f.BorrowGrid()
	require.Len(t, grid, 20)
	for i, row := range grid {
		require.Len(t, row, 10, "row %d", i)
		for j, cell := range row {
			assert.Zero(t, cell, "cell (%d,%d)", i, j)
		}
	}
}

func TestNewSizePanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { field.NewSize(-1, 10) })
	assert.Panics(t, func() { field.NewSize(10, -1) })
}

func TestWrapAliasesData(t *testing.T) {
	data := [][]int{
		{0, 0, 0},
		{0, 0, 0},
	}
	f := field.Wrap(data)

	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, 3, f.Columns())

	data[1][2] = 4
	assert.Equal(t, 4, f.At(1, 2))

	f.Update(dot, field.Position{X: 0, Y: 0})
	assert.Equal(t, 1, data[0][0])
}

func TestWrapEmpty(t *testing.T) {
	f := field.Wrap(nil)

	assert.Equal(t, 0, f.Rows())
	assert.Equal(t, 0, f.Columns())
	assert.False(t, f.CanMove(dot, field.Position{}))
}

func TestFromData(t *testing.T) {
	tests := []struct {
		name string
		data [][]int
		want error
	}{
		{
			name: "rectangular",
			data: [][]int{{0, 1}, {2, 0}},
			want: nil,
		},
		{
			name: "empty",
			data: [][]int{},
			want: nil,
		},
		{
			name: "ragged",
			data: [][]int{{0, 1}, {2}},
			want: field.ErrNotRectangular,
		},
		{
			name: "negative cell",
			data: [][]int{{0, 1}, {-2, 0}},
			want: field.ErrNegativeCell,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := field.FromData(tt.data)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), f.Rows())
		})
	}
}

func TestCanMoveBottomBoundary(t *testing.T) {
	f := field.New()

	assert.False(t, f.CanMove(dot, field.Position{X: 0, Y: 20}))
	assert.False(t, f.CanMove(dot, field.Position{X: 0, Y: 25}))
	assert.True(t, f.CanMove(dot, field.Position{X: 0, Y: 19}))

	tall := field.Shape{{1}, {1}}
	assert.False(t, f.CanMove(tall, field.Position{X: 0, Y: 19}))
	assert.True(t, f.CanMove(tall, field.Position{X: 0, Y: 18}))
}

func TestCanMoveSideBoundaries(t *testing.T) {
	f := field.New()

	tests := []struct {
		pos  field.Position
		want bool
	}{
		{field.Position{X: -1, Y: 0}, false},
		{field.Position{X: 10, Y: 0}, false},
		{field.Position{X: 9, Y: 0}, true},
		{field.Position{X: 0, Y: 0}, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("x=%d,y=%d", tt.pos.X, tt.pos.Y), func(t *testing.T) {
			assert.Equal(t, tt.want, f.CanMove(dot, tt.pos))
		})
	}
}

func TestCanMoveCollision(t *testing.T) {
	f := field.New()
	f.BorrowGrid()[5][5] = 2

	assert.False(t, f.CanMove(dot, field.Position{X: 5, Y: 5}))
	assert.True(t, f.CanMove(dot, field.Position{X: 5, Y: 4}))
}

func TestCanMoveIgnoresZeroCells(t *testing.T) {
	f := field.New()
	grid := f.BorrowGrid()
	grid[3][3] = 7
	grid[4][4] = 7

	shape := field.Shape{
		{0, 1},
		{1, 0},
	}

	// Zero cells land on (3,3) and (4,4); occupied cells land on (3,4) and (4,3).
	assert.True(t, f.CanMove(shape, field.Position{X: 3, Y: 3}))

	// Shifted so that an occupied cell hits (4,4).
	assert.False(t, f.CanMove(shape, field.Position{X: 4, Y: 3}))

	// Transparent columns may hang over the wall.
	padded := field.Shape{{0, 1}}
	assert.True(t, f.CanMove(padded, field.Position{X: -1, Y: 0}))
}

func TestCanMoveRejectsCellsAboveTop(t *testing.T) {
	f := field.New()

	assert.False(t, f.CanMove(dot, field.Position{X: 0, Y: -1}))

	// Only the bottom row of the bounding box is occupied, so it fits.
	lowered := field.Shape{{0, 0}, {1, 1}}
	assert.True(t, f.CanMove(lowered, field.Position{X: 0, Y: -1}))
}

func TestCanMoveIsPure(t *testing.T) {
	f := field.New()
	f.BorrowGrid()[10][4] = 3
	before := f.Clone()

	shape := field.Shape{{1, 1}, {1, 1}}
	positions := []field.Position{{X: 3, Y: 9}, {X: 0, Y: 0}, {X: 9, Y: 0}, {X: 4, Y: 18}}

	for _, pos := range positions {
		first := f.CanMove(shape, pos)
		for range 5 {
			assert.Equal(t, first, f.CanMove(shape, pos))
		}
	}
	assert.True(t, before.Equal(f))
}

func TestUpdateMerge(t *testing.T) {
	f := field.New()
	f.Update(field.Shape{{1, 1}, {1, 1}}, field.Position{X: 3, Y: 2})

	filled := map[[2]int]bool{
		{2, 3}: true,
		{2, 4}: true,
		{3, 3}: true,
		{3, 4}: true,
	}

	for pos, cell := range f.View().Cells() {
		if filled[[2]int{pos.Y, pos.X}] {
			assert.Equal(t, 1, cell, "cell (%d,%d)", pos.Y, pos.X)
		} else {
			assert.Zero(t, cell, "cell (%d,%d)", pos.Y, pos.X)
		}
	}
}

func TestUpdateLeavesZeroCellsUntouched(t *testing.T) {
	f := field.New()
	f.BorrowGrid()[2][3] = 5

	f.Update(field.Shape{{0, 1}}, field.Position{X: 3, Y: 2})

	assert.Equal(t, 5, f.At(2, 3))
	assert.Equal(t, 1, f.At(2, 4))
}

func TestUpdatePreservesBlockType(t *testing.T) {
	f := field.New()
	f.Update(field.Shape{{6, 0}, {6, 6}}, field.Position{X: 0, Y: 18})

	assert.Equal(t, 6, f.At(18, 0))
	assert.Zero(t, f.At(18, 1))
	assert.Equal(t, 6, f.At(19, 0))
	assert.Equal(t, 6, f.At(19, 1))
}

func TestUpdateOutOfRangePanics(t *testing.T) {
	f := field.New()
	assert.Panics(t, func() {
		f.Update(dot, field.Position{X: 10, Y: 0})
	})
}

func TestTryUpdate(t *testing.T) {
	f := field.New()
	f.BorrowGrid()[0][0] = 2
	before := f.Clone()

	err := f.TryUpdate(dot, field.Position{X: 0, Y: 0})
	assert.ErrorIs(t, err, field.ErrIllegalPlacement)
	assert.True(t, before.Equal(f))

	err = f.TryUpdate(field.Shape{{3}}, field.Position{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, f.At(0, 1))
}

func TestDeepCopyIsolation(t *testing.T) {
	f := field.New()
	f.Update(field.Shape{{4, 4}}, field.Position{X: 0, Y: 19})

	g := field.DeepCopy(f)
	assert.Equal(t, f.BorrowGrid(), g.BorrowGrid())
	assert.Equal(t, f.Rows(), g.Rows())
	assert.Equal(t, f.Columns(), g.Columns())

	g.Update(dot, field.Position{X: 5, Y: 5})
	assert.Equal(t, 1, g.At(5, 5))
	assert.Zero(t, f.At(5, 5))

	f.Update(field.Shape{{2}}, field.Position{X: 7, Y: 7})
	assert.Equal(t, 2, f.At(7, 7))
	assert.Zero(t, g.At(7, 7))

	for i := range f.BorrowGrid() {
		assert.NotSame(t, &f.BorrowGrid()[i][0], &g.BorrowGrid()[i][0], "row %d aliased", i)
	}
}

func TestDeepCopyOfWrappedData(t *testing.T) {
	data := [][]int{{1, 0}, {0, 2}}
	g := field.Wrap(data).Clone()

	data[0][1] = 9
	assert.Zero(t, g.At(0, 1))
	assert.Equal(t, 2, g.At(1, 1))
}

func TestDrop(t *testing.T) {
	f := field.New()
	f.BorrowGrid()[15][4] = 1

	shape := field.Shape{{1, 1}}

	assert.Equal(t, field.Position{X: 4, Y: 14}, f.Drop(shape, field.Position{X: 4, Y: 0}))
	assert.Equal(t, field.Position{X: 0, Y: 19}, f.Drop(shape, field.Position{X: 0, Y: 0}))

	blocked := field.Position{X: 4, Y: 15}
	assert.Equal(t, blocked, f.Drop(shape, blocked))
}

func TestClearRows(t *testing.T) {
	f, err := field.FromData([][]int{
		{0, 0, 0},
		{0, 3, 0},
		{1, 1, 1},
		{2, 0, 2},
		{4, 4, 4},
	})
	require.NoError(t, err)

	cleared := f.ClearRows()

	assert.Equal(t, 2, cleared)
	assert.Equal(t, 5, f.Rows())
	assert.Equal(t, 3, f.Columns())
	assert.Equal(t, [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
		{0, 3, 0},
		{2, 0, 2},
	}, f.BorrowGrid())
}

func TestClearRowsKeepsRowStorage(t *testing.T) {
	f := field.NewSize(4, 2)
	rows := append([][]int(nil), f.BorrowGrid()...)

	f.Update(field.Shape{{1, 1}}, field.Position{X: 0, Y: 3})
	assert.Equal(t, 1, f.ClearRows())

	for i := range rows {
		assert.Same(t, &rows[i][0], &f.BorrowGrid()[i][0])
	}
	assert.Zero(t, f.View().Occupied())
}

func TestClearRowsNothingFull(t *testing.T) {
	f := field.New()
	f.Update(field.Shape{{1, 1, 1}}, field.Position{X: 0, Y: 19})
	before := f.Clone()

	assert.Zero(t, f.ClearRows())
	assert.True(t, before.Equal(f))
}

func TestEqual(t *testing.T) {
	a := field.NewSize(2, 2)
	b := field.NewSize(2, 2)

	assert.True(t, a.Equal(b))
	b.Update(dot, field.Position{})
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(field.NewSize(2, 3)))
	assert.False(t, a.Equal(nil))
}

func TestString(t *testing.T) {
	f := field.Wrap([][]int{
		{0, 1, 0},
		{12, 0, 40},
	})

	assert.Equal(t, ".1.\nc.#", f.String())
}
