package sht

import "math"

// legendreRecurrence holds the degree recurrence factors for orthonormal
// associated Legendre functions,
//
//	P(l,m) = a(l,m) * (x*P(l-1,m) - b(l,m)*P(l-2,m)),
//
// indexed like [Coeffs].
type legendreRecurrence struct {
	lmax int
	a, b []float64
}

func newLegendreRecurrence(lmax int) *legendreRecurrence {
	r := &legendreRecurrence{
		lmax: lmax,
		a:    make([]float64, NumCoeffs(lmax)),
		b:    make([]float64, NumCoeffs(lmax)),
	}
	for m := 0; m <= lmax; m++ {
		fm := float64(m)
		for l := m + 2; l <= lmax; l++ {
			fl := float64(l)
			i := Index(lmax, l, m)
			r.a[i] = math.Sqrt((4*fl*fl - 1) / (fl*fl - fm*fm))
			r.b[i] = math.Sqrt(((fl-1)*(fl-1) - fm*fm) / (4*(fl-1)*(fl-1) - 1))
		}
	}
	return r
}

// eval fills out (length NumCoeffs(lmax)) with the orthonormal functions
// at cos(theta) = x, sin(theta) = s, without the Condon-Shortley phase. They
// are normalised so that P(l,m)(cos theta) * exp(i*m*phi) has unit L2 norm on
// the sphere.
func (r *legendreRecurrence) eval(x, s float64, out []float64) {
	lmax := r.lmax
	pmm := 1 / math.Sqrt(4*math.Pi)

	for m := 0; m <= lmax; m++ {
		if m > 0 {
			fm := float64(m)
			pmm *= math.Sqrt((2*fm+1)/(2*fm)) * s
		}
		out[Index(lmax, m, m)] = pmm
		if m == lmax {
			break
		}

		p2 := pmm
		p1 := math.Sqrt(2*float64(m)+3) * x * pmm
		out[Index(lmax, m+1, m)] = p1

		for l := m + 2; l <= lmax; l++ {
			i := Index(lmax, l, m)
			p := r.a[i] * (x*p1 - r.b[i]*p2)
			out[i] = p
			p2, p1 = p1, p
		}
	}
}
