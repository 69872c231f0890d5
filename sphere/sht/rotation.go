package sht

import (
	"fmt"
	"math"
)

// Rotation rotates real-field coefficients rigidly on the sphere.
//
// Angles are set with [Rotation.SetAnglesZYZ] and stay in effect for every
// following Apply call. With angles (z1, y, z2) a feature at position r moves
// to R*r with
//
//	R = Rz(z2) * Ry(y) * Rz(z1),
//
// that is: first z1 about the polar axis, then y about the y axis (which
// turns the north pole towards longitude 0), then z2 about the polar axis.
// Positive angles are right-handed.
//
// The Wigner matrices for the two most recent y angles are kept, so
// alternating between two configurations does not recompute them. A Rotation
// is not safe for concurrent use.
type Rotation struct {
	lmax      int
	z1, y, z2 float64

	cache [2]*wignerD
	next  int

	scratch Coeffs
	phase   []complex128
}

// NewRotation returns a rotation operator for truncation lmax, initialised to
// the identity.
func NewRotation(lmax int) (*Rotation, error) {
	if lmax < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTruncation, lmax)
	}
	return &Rotation{
		lmax:    lmax,
		scratch: NewCoeffs(lmax),
		phase:   make([]complex128, lmax+1),
	}, nil
}

// LMax returns the truncation degree.
func (r *Rotation) LMax() int { return r.lmax }

// SetAnglesZYZ sets the Euler angles in radians.
func (r *Rotation) SetAnglesZYZ(z1, y, z2 float64) {
	r.z1, r.y, r.z2 = z1, y, z2
}

// Angles returns the current Euler angles.
func (r *Rotation) Angles() (z1, y, z2 float64) {
	return r.z1, r.y, r.z2
}

// ApplyReal returns the rotated copy of c.
func (r *Rotation) ApplyReal(c Coeffs) (Coeffs, error) {
	out := NewCoeffs(r.lmax)
	if err := r.ApplyRealInto(out, c); err != nil {
		return Coeffs{}, err
	}
	return out, nil
}

// ApplyRealInto writes the rotated src into dst. dst and src may share
// storage.
func (r *Rotation) ApplyRealInto(dst, src Coeffs) error {
	for _, c := range []Coeffs{dst, src} {
		if c.lmax != r.lmax || len(c.c) != NumCoeffs(r.lmax) {
			return fmt.Errorf("%w: got lmax %d, want %d", ErrCoeffsMismatch, c.lmax, r.lmax)
		}
	}

	tmp := r.scratch
	copy(tmp.c, src.c)
	r.rotateZ(tmp, r.z1)

	if r.y == 0 {
		copy(dst.c, tmp.c)
	} else {
		r.rotateY(dst, tmp, r.wigner(r.y))
	}

	r.rotateZ(dst, r.z2)
	return nil
}

// rotateZ multiplies c(l,m) by exp(-i*m*alpha), which moves features east by
// alpha.
func (r *Rotation) rotateZ(c Coeffs, alpha float64) {
	if alpha == 0 {
		return
	}
	for m := 0; m <= r.lmax; m++ {
		s, co := math.Sincos(-float64(m) * alpha)
		r.phase[m] = complex(co, s)
	}
	for m := 1; m <= r.lmax; m++ {
		p := r.phase[m]
		for l := m; l <= r.lmax; l++ {
			i := Index(r.lmax, l, m)
			c.c[i] *= p
		}
	}
}

// rotateY applies the y rotation with the matrices in w. The harmonics used
// here carry no Condon-Shortley phase, so the Wigner elements pick up a sign
// (-1)^m for every positive order.
func (r *Rotation) rotateY(dst, src Coeffs, w *wignerD) {
	lmax := r.lmax
	for l := 0; l <= lmax; l++ {
		for mp := 0; mp <= l; mp++ {
			var acc complex128
			for m := -l; m <= l; m++ {
				d := w.at(l, mp, m)
				if d == 0 {
					continue
				}
				var v complex128
				if m >= 0 {
					v = src.c[Index(lmax, l, m)]
					if m%2 == 1 {
						d = -d
					}
				} else {
					u := src.c[Index(lmax, l, -m)]
					v = complex(real(u), -imag(u))
				}
				acc += complex(d, 0) * v
			}
			if mp%2 == 1 {
				acc = -acc
			}
			if mp == 0 {
				acc = complex(real(acc), 0)
			}
			dst.c[Index(lmax, l, mp)] = acc
		}
	}
}

func (r *Rotation) wigner(beta float64) *wignerD {
	for _, w := range r.cache {
		if w != nil && w.beta == beta {
			return w
		}
	}
	w := r.cache[r.next]
	if w == nil {
		w = newWignerD(r.lmax)
		r.cache[r.next] = w
	}
	w.compute(beta)
	r.next = (r.next + 1) % len(r.cache)
	return w
}
