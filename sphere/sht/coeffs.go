package sht

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Coeffs holds the spherical-harmonic coefficients of a real field.
//
// Only orders m >= 0 are stored; the m < 0 coefficients of a real field are
// the complex conjugates. Storage is m-major: all degrees l = m..LMax for
// m = 0, then for m = 1, and so on.
//
// Coeffs is a small header around a slice, so copies share storage. Use
// [Coeffs.Clone] for an independent copy.
type Coeffs struct {
	lmax int
	c    []complex128
}

// NumCoeffs returns the number of stored coefficients for truncation lmax.
func NumCoeffs(lmax int) int {
	return (lmax + 1) * (lmax + 2) / 2
}

// Index returns the storage index of (l, m) for truncation lmax.
func Index(lmax, l, m int) int {
	return m*(2*lmax+3-m)/2 + l - m
}

// NewCoeffs returns zeroed coefficients for truncation lmax.
func NewCoeffs(lmax int) Coeffs {
	return Coeffs{lmax: lmax, c: make([]complex128, NumCoeffs(lmax))}
}

// LMax returns the truncation degree.
func (c Coeffs) LMax() int { return c.lmax }

// Len returns the number of stored coefficients.
func (c Coeffs) Len() int { return len(c.c) }

// Data returns the backing slice in storage order.
func (c Coeffs) Data() []complex128 { return c.c }

// At returns the (l, m) coefficient. Negative m returns the conjugate of
// (l, -m).
func (c Coeffs) At(l, m int) complex128 {
	if m < 0 {
		v := c.c[c.index(l, -m)]
		return complex(real(v), -imag(v))
	}
	return c.c[c.index(l, m)]
}

// Set assigns the (l, m) coefficient, m >= 0.
func (c Coeffs) Set(l, m int, v complex128) {
	c.c[c.index(l, m)] = v
}

// Clone returns a deep copy.
func (c Coeffs) Clone() Coeffs {
	return Coeffs{lmax: c.lmax, c: append([]complex128(nil), c.c...)}
}

// DegreePower returns the power of each degree l,
// |c(l,0)|^2 + 2*sum_{m>0} |c(l,m)|^2, which is the mean square of the
// degree-l part of the field times 4*pi. It is invariant under rotation.
func (c Coeffs) DegreePower() []float64 {
	n := len(c.c)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, v := range c.c {
		re[i] = real(v)
		im[i] = imag(v)
	}
	pow := make([]float64, n)
	vecmath.Power(pow, re, im)

	out := make([]float64, c.lmax+1)
	for m := 0; m <= c.lmax; m++ {
		w := 2.0
		if m == 0 {
			w = 1
		}
		for l := m; l <= c.lmax; l++ {
			out[l] += w * pow[Index(c.lmax, l, m)]
		}
	}
	return out
}

func (c Coeffs) index(l, m int) int {
	if l < 0 || l > c.lmax || m < 0 || m > l {
		panic(fmt.Sprintf("sht: coefficient (%d, %d) out of range for lmax %d", l, m, c.lmax))
	}
	return Index(c.lmax, l, m)
}
