package field

import "errors"

var (
	// ErrNotRectangular is returned by FromData when rows differ in length.
	ErrNotRectangular = errors.New("field: grid rows differ in length")
	// ErrNegativeCell is returned by FromData when a cell holds a negative value.
	ErrNegativeCell = errors.New("field: negative cell value")
	// ErrIllegalPlacement is returned by TryUpdate when CanMove rejects the placement.
	ErrIllegalPlacement = errors.New("field: illegal placement")
)
