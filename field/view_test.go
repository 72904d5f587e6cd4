package field_test

import (
	"testing"

	"github.com/plus3/blockfield/field"
	"github.com/stretchr/testify/assert"
)

func TestViewReflectsLiveField(t *testing.T) {
	f := field.NewSize(3, 3)
	v := f.View()

	assert.Equal(t, 3, v.Rows())
	assert.Equal(t, 3, v.Columns())
	assert.Zero(t, v.Occupied())

	f.Update(field.Shape{{2, 2}}, field.Position{X: 1, Y: 2})

	assert.Equal(t, 2, v.At(2, 1))
	assert.Equal(t, 2, v.Occupied())
}

func TestViewCellsOrder(t *testing.T) {
	f := field.Wrap([][]int{
		{1, 2},
		{3, 4},
	})

	var got []int
	var positions []field.Position
	for pos, cell := range f.View().Cells() {
		positions = append(positions, pos)
		got = append(got, cell)
	}

	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, []field.Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, positions)
}

func TestViewCellsStopsEarly(t *testing.T) {
	f := field.New()

	n := 0
	for range f.View().Cells() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestViewHeights(t *testing.T) {
	f := field.Wrap([][]int{
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 1},
		{1, 1, 0, 1},
	})

	assert.Equal(t, []int{1, 3, 0, 2}, f.View().Heights())
}

func TestShapeDimensions(t *testing.T) {
	s := field.Shape{
		{0, 1, 0},
		{1, 1, 1},
	}

	assert.Equal(t, 2, s.Height())
	assert.Equal(t, 3, s.Width())

	var cells []field.Position
	for pos, v := range s.Cells() {
		assert.Equal(t, 1, v)
		cells = append(cells, pos)
	}
	assert.Equal(t, []field.Position{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, cells)
}

func TestShapeClone(t *testing.T) {
	s := field.Shape{{1, 0}, {1, 1}}
	c := s.Clone()

	c[0][1] = 5
	assert.Zero(t, s[0][1])
	assert.Equal(t, s.Height(), c.Height())
}
