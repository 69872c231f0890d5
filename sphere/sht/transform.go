package sht

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sphere/internal/quadrature"
	"github.com/cwbudde/algo-sphere/sphere/grid"
)

var (
	// ErrInvalidTruncation is returned for a truncation degree below 1.
	ErrInvalidTruncation = errors.New("sht: truncation must be >= 1")
	// ErrGridTooSmall is returned when nlat or nlon cannot resolve the
	// truncation without aliasing.
	ErrGridTooSmall = errors.New("sht: grid too small for truncation")
	// ErrLengthMismatch is returned when grid data is not nlat*nlon long.
	ErrLengthMismatch = errors.New("sht: data length does not match grid")
	// ErrCoeffsMismatch is returned for coefficients of another truncation.
	ErrCoeffsMismatch = errors.New("sht: coefficient truncation does not match")
)

// Transform performs spherical-harmonic analysis and synthesis of real
// fields on one latitude/longitude grid, with lmax = mmax.
//
// Grid data is row-major with rows in the transform's latitude order, north
// first, and longitudes 2*pi*k/nlon starting at 0.
//
// A Transform keeps scratch buffers and is not safe for concurrent use.
type Transform struct {
	lmax int
	nlat int
	nlon int
	typ  grid.Type
	rule quadrature.Rule

	// Legendre tables, row per (l,m) in Coeffs order, nlat values each.
	// analysis includes quadrature weights and the 2*pi/nlon zonal factor.
	synthesis []float64
	analysis  []float64

	zonal  *zonal
	rowIn  []complex128
	rowOut []complex128
	re, im []float64 // per (m, lat) Fourier coefficients
}

// NewTransform prepares a transform of truncation lmax for an nlat x nlon
// grid of the given type. Regular grids need nlat > 2*lmax, Gaussian grids
// nlat > lmax, and both need nlon > 2*lmax.
func NewTransform(lmax int, typ grid.Type, nlat, nlon int) (*Transform, error) {
	if lmax < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTruncation, lmax)
	}
	if nlon <= 2*lmax {
		return nil, fmt.Errorf("%w: nlon %d must be > %d", ErrGridTooSmall, nlon, 2*lmax)
	}

	var (
		rule quadrature.Rule
		err  error
	)

	switch typ {
	case grid.Regular:
		if nlat <= 2*lmax {
			return nil, fmt.Errorf("%w: regular nlat %d must be > %d", ErrGridTooSmall, nlat, 2*lmax)
		}
		rule, err = quadrature.Fejer1(nlat)
	case grid.Gaussian:
		if nlat <= lmax {
			return nil, fmt.Errorf("%w: gaussian nlat %d must be > %d", ErrGridTooSmall, nlat, lmax)
		}
		rule, err = quadrature.GaussLegendre(nlat)
	default:
		return nil, fmt.Errorf("%w: %v", grid.ErrUnknownType, typ)
	}
	if err != nil {
		return nil, fmt.Errorf("sht: latitude quadrature: %w", err)
	}

	t := &Transform{
		lmax:   lmax,
		nlat:   nlat,
		nlon:   nlon,
		typ:    typ,
		rule:   rule,
		zonal:  newZonal(nlon),
		rowIn:  make([]complex128, nlon),
		rowOut: make([]complex128, nlon),
		re:     make([]float64, (lmax+1)*nlat),
		im:     make([]float64, (lmax+1)*nlat),
	}
	t.buildTables()
	return t, nil
}

func (t *Transform) buildTables() {
	ncoef := NumCoeffs(t.lmax)
	t.synthesis = make([]float64, ncoef*t.nlat)
	t.analysis = make([]float64, ncoef*t.nlat)

	rec := newLegendreRecurrence(t.lmax)
	p := make([]float64, ncoef)
	for j := 0; j < t.nlat; j++ {
		rec.eval(t.rule.CosTheta[j], t.rule.SinTheta[j], p)
		for i, v := range p {
			t.synthesis[i*t.nlat+j] = v
		}
	}

	weights := make([]float64, t.nlat)
	zonalScale := 2 * math.Pi / float64(t.nlon)
	for j, w := range t.rule.Weights {
		weights[j] = w * zonalScale
	}

	copy(t.analysis, t.synthesis)
	for i := 0; i < ncoef; i++ {
		vecmath.MulBlockInPlace(t.analysis[i*t.nlat:(i+1)*t.nlat], weights)
	}
}

// LMax returns the truncation degree.
func (t *Transform) LMax() int { return t.lmax }

// NLat returns the number of latitudes.
func (t *Transform) NLat() int { return t.nlat }

// NLon returns the number of longitudes.
func (t *Transform) NLon() int { return t.nlon }

// Type returns the grid type.
func (t *Transform) Type() grid.Type { return t.typ }

// Latitudes returns the transform's latitudes in degrees, in its own row
// order (north first), derived as asin(cos(theta)).
func (t *Transform) Latitudes() []float64 {
	out := make([]float64, t.nlat)
	for j, c := range t.rule.CosTheta {
		out[j] = math.Asin(c) * 180 / math.Pi
	}
	return out
}

// Analyze computes the coefficients of data (nlat*nlon values, transform row
// order).
func (t *Transform) Analyze(data []float64) (Coeffs, error) {
	c := NewCoeffs(t.lmax)
	if err := t.AnalyzeInto(c, data); err != nil {
		return Coeffs{}, err
	}
	return c, nil
}

// AnalyzeInto is [Transform.Analyze] writing into existing coefficients.
func (t *Transform) AnalyzeInto(dst Coeffs, data []float64) error {
	if len(data) != t.nlat*t.nlon {
		return fmt.Errorf("%w: got %d values, want %dx%d", ErrLengthMismatch, len(data), t.nlat, t.nlon)
	}
	if err := t.checkCoeffs(dst); err != nil {
		return err
	}

	for j := 0; j < t.nlat; j++ {
		row := data[j*t.nlon : (j+1)*t.nlon]
		for k, v := range row {
			t.rowIn[k] = complex(v, 0)
		}
		if err := t.zonal.forward(t.rowOut, t.rowIn); err != nil {
			return fmt.Errorf("sht: forward FFT failed: %w", err)
		}
		for m := 0; m <= t.lmax; m++ {
			t.re[m*t.nlat+j] = real(t.rowOut[m])
			t.im[m*t.nlat+j] = imag(t.rowOut[m])
		}
	}

	for m := 0; m <= t.lmax; m++ {
		re := t.re[m*t.nlat : (m+1)*t.nlat]
		im := t.im[m*t.nlat : (m+1)*t.nlat]
		for l := m; l <= t.lmax; l++ {
			i := Index(t.lmax, l, m)
			p := t.analysis[i*t.nlat : (i+1)*t.nlat]
			var sr, si float64
			for j, w := range p {
				sr += w * re[j]
				si += w * im[j]
			}
			if m == 0 {
				si = 0
			}
			dst.c[i] = complex(sr, si)
		}
	}
	return nil
}

// Synthesize evaluates c on the grid into dst (nlat*nlon values, transform
// row order).
func (t *Transform) Synthesize(dst []float64, c Coeffs) error {
	if len(dst) != t.nlat*t.nlon {
		return fmt.Errorf("%w: got %d values, want %dx%d", ErrLengthMismatch, len(dst), t.nlat, t.nlon)
	}
	if err := t.checkCoeffs(c); err != nil {
		return err
	}

	for i := range t.re {
		t.re[i] = 0
		t.im[i] = 0
	}

	for m := 0; m <= t.lmax; m++ {
		re := t.re[m*t.nlat : (m+1)*t.nlat]
		im := t.im[m*t.nlat : (m+1)*t.nlat]
		for l := m; l <= t.lmax; l++ {
			i := Index(t.lmax, l, m)
			cr, ci := real(c.c[i]), imag(c.c[i])
			if cr == 0 && ci == 0 {
				continue
			}
			p := t.synthesis[i*t.nlat : (i+1)*t.nlat]
			for j, v := range p {
				re[j] += cr * v
				im[j] += ci * v
			}
		}
	}

	scale := float64(t.nlon)
	for j := 0; j < t.nlat; j++ {
		for k := range t.rowIn {
			t.rowIn[k] = 0
		}
		t.rowIn[0] = complex(t.re[j], 0)
		for m := 1; m <= t.lmax; m++ {
			v := complex(t.re[m*t.nlat+j], t.im[m*t.nlat+j])
			t.rowIn[m] = v
			t.rowIn[t.nlon-m] = complex(real(v), -imag(v))
		}
		if err := t.zonal.inverse(t.rowOut, t.rowIn); err != nil {
			return fmt.Errorf("sht: inverse FFT failed: %w", err)
		}
		row := dst[j*t.nlon : (j+1)*t.nlon]
		for k := range row {
			row[k] = real(t.rowOut[k]) * scale
		}
	}
	return nil
}

func (t *Transform) checkCoeffs(c Coeffs) error {
	if c.lmax != t.lmax || len(c.c) != NumCoeffs(t.lmax) {
		return fmt.Errorf("%w: got lmax %d, want %d", ErrCoeffsMismatch, c.lmax, t.lmax)
	}
	return nil
}
