package grid

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-sphere/internal/quadrature"
)

// Type identifies a latitude sampling scheme.
type Type int

const (
	// Regular is an equiangular grid that excludes the poles:
	// colatitudes (j + 1/2) * 180 / nlat degrees.
	Regular Type = iota
	// Gaussian places latitudes at the Gauss-Legendre nodes.
	Gaussian
)

// String returns the lower-case name of the grid type.
func (t Type) String() string {
	switch t {
	case Regular:
		return "regular"
	case Gaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType converts "regular" or "gaussian" (case-insensitive) to a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular":
		return Regular, nil
	case "gaussian":
		return Gaussian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Grid is an immutable latitude/longitude grid with a spectral truncation.
// Accessors return copies so a Grid can be shared freely after construction.
type Grid struct {
	lat        []float64
	lon        []float64
	typ        Type
	truncation int
}

// New builds a Grid from caller-owned axes. The axes are copied. Only shape and
// monotonicity are checked here; consistency with a transform is checked by
// [Validate] and [ValidateLongitudes].
func New(lat, lon []float64, typ Type, truncation int) (Grid, error) {
	if len(lat) == 0 || len(lon) == 0 {
		return Grid{}, ErrEmptyAxis
	}
	if truncation <= 0 {
		return Grid{}, fmt.Errorf("%w: %d", ErrInvalidTruncation, truncation)
	}
	if typ != Regular && typ != Gaussian {
		return Grid{}, fmt.Errorf("%w: %v", ErrUnknownType, typ)
	}
	if !monotonic(lat) {
		return Grid{}, fmt.Errorf("%w: latitude", ErrNotMonotonic)
	}
	if !increasing(lon) {
		return Grid{}, fmt.Errorf("%w: longitude", ErrNotMonotonic)
	}

	return Grid{
		lat:        append([]float64(nil), lat...),
		lon:        append([]float64(nil), lon...),
		typ:        typ,
		truncation: truncation,
	}, nil
}

// Lat returns a copy of the latitude axis in degrees.
func (g Grid) Lat() []float64 { return append([]float64(nil), g.lat...) }

// Lon returns a copy of the longitude axis in degrees.
func (g Grid) Lon() []float64 { return append([]float64(nil), g.lon...) }

// NLat returns the number of latitudes.
func (g Grid) NLat() int { return len(g.lat) }

// NLon returns the number of longitudes.
func (g Grid) NLon() int { return len(g.lon) }

// Type returns the latitude sampling scheme.
func (g Grid) Type() Type { return g.typ }

// Truncation returns the spectral truncation degree.
func (g Grid) Truncation() int { return g.truncation }

// Shape returns (nlat, nlon).
func (g Grid) Shape() (int, int) { return len(g.lat), len(g.lon) }

// RegularLatitudes returns the n latitudes of a [Regular] grid in ascending
// order (south to north), in degrees. Poles are excluded.
func RegularLatitudes(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := 180 / float64(n)
	for i := range out {
		out[i] = -90 + (float64(i)+0.5)*step
	}
	return out
}

// GaussianLatitudes returns the n latitudes of a [Gaussian] grid in ascending
// order, in degrees.
func GaussianLatitudes(n int) ([]float64, error) {
	rule, err := quadrature.GaussLegendre(n)
	if err != nil {
		return nil, err
	}

	// Rule nodes run north to south; flip into ascending latitude.
	out := make([]float64, n)
	for i, c := range rule.CosTheta {
		out[n-1-i] = math.Asin(c) * 180 / math.Pi
	}
	return out, nil
}

// Latitudes returns the ascending latitude axis for the given type.
func Latitudes(typ Type, n int) ([]float64, error) {
	switch typ {
	case Regular:
		if n <= 0 {
			return nil, fmt.Errorf("%w: %d", quadrature.ErrInvalidSize, n)
		}
		return RegularLatitudes(n), nil
	case Gaussian:
		return GaussianLatitudes(n)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, typ)
	}
}

// Longitudes returns n equally spaced longitudes covering [0, 360).
func Longitudes(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := 360 / float64(n)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

func monotonic(x []float64) bool {
	return increasing(x) || decreasing(x)
}

func increasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return false
		}
	}
	return true
}

func decreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if !(x[i] < x[i-1]) {
			return false
		}
	}
	return true
}
