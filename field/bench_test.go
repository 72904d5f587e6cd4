package field_test

import (
	"testing"

	"github.com/plus3/blockfield/field"
)

var benchShape = field.Shape{
	{0, 1, 0},
	{1, 1, 1},
}

func benchField() *field.Field {
	f := field.New()
	for row := 12; row < field.DefaultRows; row++ {
		for col := 0; col < field.DefaultColumns; col++ {
			if (row+col)%3 != 0 {
				f.BorrowGrid()[row][col] = 1
			}
		}
	}
	return f
}

func BenchmarkCanMove(b *testing.B) {
	f := benchField()
	pos := field.Position{X: 3, Y: 8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.CanMove(benchShape, pos)
	}
}

func BenchmarkDrop(b *testing.B) {
	f := benchField()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Drop(benchShape, field.Position{X: i % 8, Y: 0})
	}
}

func BenchmarkDeepCopy(b *testing.B) {
	f := benchField()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = field.DeepCopy(f)
	}
}

func BenchmarkSpeculativeMerge(b *testing.B) {
	f := benchField()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := field.DeepCopy(f)
		g.Update(benchShape, g.Drop(benchShape, field.Position{X: i % 8, Y: 0}))
		g.ClearRows()
	}
}
