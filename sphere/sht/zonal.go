package sht

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// zonal transforms one latitude row between longitude samples and Fourier
// orders. Forward is unnormalised, inverse is scaled by 1/n, matching the
// FFT plan convention.
type zonal struct {
	n    int
	plan *algofft.Plan[complex128]

	// Twiddles for the direct DFT used when no FFT plan is available for n.
	cos, sin []float64
}

func newZonal(n int) *zonal {
	z := &zonal{n: n}

	plan, err := algofft.NewPlan64(n)
	if err == nil {
		z.plan = plan
		return z
	}

	z.cos = make([]float64, n)
	z.sin = make([]float64, n)
	for k := 0; k < n; k++ {
		z.sin[k], z.cos[k] = math.Sincos(2 * math.Pi * float64(k) / float64(n))
	}
	return z
}

func (z *zonal) forward(dst, src []complex128) error {
	if z.plan != nil {
		return z.plan.Forward(dst, src)
	}
	z.dft(dst, src, -1, 1)
	return nil
}

func (z *zonal) inverse(dst, src []complex128) error {
	if z.plan != nil {
		return z.plan.Inverse(dst, src)
	}
	z.dft(dst, src, 1, 1/float64(z.n))
	return nil
}

func (z *zonal) dft(dst, src []complex128, sign, scale float64) {
	n := z.n
	for m := 0; m < n; m++ {
		var re, im float64
		idx := 0
		for k := 0; k < n; k++ {
			c, s := z.cos[idx], sign*z.sin[idx]
			x := src[k]
			re += real(x)*c - imag(x)*s
			im += real(x)*s + imag(x)*c
			idx += m
			if idx >= n {
				idx -= n
			}
		}
		dst[m] = complex(re*scale, im*scale)
	}
}
