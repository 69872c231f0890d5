package center

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is matched by every [*ShapeError].
	ErrShape = errors.New("center: invalid field shape")
	// ErrRange is matched by every [*RangeError].
	ErrRange = errors.New("center: value out of range")
)

// ShapeError reports a field whose shape cannot be centered on the grid.
type ShapeError struct {
	Got  []int
	Want []int
}

func (e *ShapeError) Error() string {
	if len(e.Got) != 2 {
		return fmt.Sprintf("center: field must be 2-dimensional, got shape %v", e.Got)
	}
	return fmt.Sprintf("center: field shape %v does not match grid shape %v", e.Got, e.Want)
}

// Is makes errors.Is(err, ErrShape) succeed.
func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// RangeError reports a center coordinate or twist angle outside its bounds.
type RangeError struct {
	Name     string
	Value    float64
	Min, Max float64
	Hint     string
}

func (e *RangeError) Error() string {
	hint := e.Hint
	if hint == "" {
		hint = fmt.Sprintf("[%g,%g]", e.Min, e.Max)
	}
	return fmt.Sprintf("center: %s = %g, but %s must be in the range %s", e.Name, e.Value, e.Name, hint)
}

// Is makes errors.Is(err, ErrRange) succeed.
func (e *RangeError) Is(target error) bool { return target == ErrRange }
