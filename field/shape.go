package field

import "iter"

// Position locates the top-left origin of a shape in grid coordinates.
// Y grows downwards, X grows rightwards.
type Position struct {
	X, Y int
}

// Shape is the footprint of a piece inside its bounding box. Zero cells are
// transparent; positive cells are occupied and carry the block type.
type Shape [][]int

// Height returns the number of rows in the bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the widest row of the bounding box.
func (s Shape) Width() int {
	w := 0
	for _, row := range s {
		w = max(w, len(row))
	}
	return w
}

// Cells yields the local offset and value of every occupied cell.
func (s Shape) Cells() iter.Seq2[Position, int] {
	return func(yield func(Position, int) bool) {
		for i, row := range s {
			for j, v := range row {
				if v <= 0 {
					continue
				}
				if !yield(Position{X: j, Y: i}, v) {
					return
				}
			}
		}
	}
}

// Clone returns a copy of s that shares no storage with it.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]int(nil), row...)
	}
	return out
}
