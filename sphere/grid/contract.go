package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMismatch is matched by every [*MismatchError].
	ErrMismatch = errors.New("grid: axis does not match transform grid")

	// ErrEmptyAxis is returned by [New] when either axis has no points.
	ErrEmptyAxis = errors.New("grid: empty axis")
	// ErrNotMonotonic is returned for a latitude axis that is not strictly
	// monotonic or a longitude axis that is not strictly increasing.
	ErrNotMonotonic = errors.New("grid: axis is not monotonic")
	// ErrUnknownType is returned for a [Type] other than Regular or Gaussian.
	ErrUnknownType = errors.New("grid: unknown grid type")
	// ErrInvalidTruncation is returned for a truncation of zero or less.
	ErrInvalidTruncation = errors.New("grid: truncation must be > 0")
)

// Tolerances used when comparing axes, the same as numpy.allclose.
const (
	RelTol = 1e-5
	AbsTol = 1e-8
)

// MismatchError reports a claimed axis that differs from the axis realised by
// the spectral transform. Both sequences are kept for diagnosis.
type MismatchError struct {
	Axis    string // "latitude" or "longitude"
	Type    Type
	Claimed []float64
	Engine  []float64
}

func (e *MismatchError) Error() string {
	if len(e.Claimed) == 0 {
		return fmt.Sprintf("grid: empty %s axis", e.Axis)
	}
	if len(e.Claimed) != len(e.Engine) {
		return fmt.Sprintf("grid: %s axis has %d points, transform has %d (grid type %v)",
			e.Axis, len(e.Claimed), len(e.Engine), e.Type)
	}

	i, diff := worstPoint(e.Claimed, e.Engine)
	return fmt.Sprintf("grid: %s axis does not match %v transform grid: index %d claimed %g, transform %g (diff %g); check the grid type",
		e.Axis, e.Type, i, e.Claimed[i], e.Engine[i], diff)
}

// Is makes errors.Is(err, ErrMismatch) succeed.
func (e *MismatchError) Is(target error) bool { return target == ErrMismatch }

// Validate checks the claimed latitude axis against the latitudes produced by
// an initialised transform. The transform may traverse latitudes in the
// opposite order to the caller, so both orderings are accepted.
func Validate(claimed []float64, typ Type, engine []float64) error {
	_, err := Orientation(claimed, typ, engine)
	return err
}

// Orientation is [Validate] that also reports whether the claimed axis runs in
// the reverse order of the engine axis. Engines list latitudes north first, so
// an ascending caller axis reports reversed = true.
func Orientation(claimed []float64, typ Type, engine []float64) (reversed bool, err error) {
	if len(claimed) == len(engine) && len(claimed) > 0 {
		if allClose(claimed, reverse(engine)) {
			return true, nil
		}
		if allClose(claimed, engine) {
			return false, nil
		}
	}

	return false, &MismatchError{
		Axis:    "latitude",
		Type:    typ,
		Claimed: append([]float64(nil), claimed...),
		Engine:  reverse(engine),
	}
}

// ValidateLongitudes checks that the claimed longitudes are the transform's
// sample longitudes k*360/n, n = len(claimed).
func ValidateLongitudes(claimed []float64) error {
	want := Longitudes(len(claimed))
	if len(claimed) > 0 && allClose(claimed, want) {
		return nil
	}
	return &MismatchError{
		Axis:    "longitude",
		Claimed: append([]float64(nil), claimed...),
		Engine:  want,
	}
}

func allClose(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= AbsTol+RelTol*math.Abs(b[i])) {
			return false
		}
	}
	return true
}

func reverse(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}
	return out
}

func worstPoint(a, b []float64) (int, float64) {
	idx, worst := 0, -1.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			return i, d
		}
		if d > worst {
			idx, worst = i, d
		}
	}
	return idx, worst
}
