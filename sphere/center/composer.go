package center

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sphere/sphere/sht"
)

// EulerTriple is a rigid rotation of the sphere in radians: Z1 about the
// polar axis, then Y about the y axis, then Z2 about the polar axis.
type EulerTriple struct {
	Z1, Y, Z2 float64
}

// PoleToEquator carries the north pole down to latitude 0, longitude 180.
var PoleToEquator = EulerTriple{Z1: 0, Y: -math.Pi / 2, Z2: 0}

// ToPole returns the rotation that brings the request's center point to the
// north pole and then spins the sphere about the pole by the twist angle.
//
// Z1 = 180 - lon lines the point up with the 180 degree meridian, Y = 90 - lat
// tilts it onto the pole, and Z2 = twist is the spin about the new pole.
func ToPole(req Request) EulerTriple {
	return EulerTriple{
		Z1: deg2rad(180 - req.Lon),
		Y:  deg2rad(90 - req.Lat),
		Z2: deg2rad(req.Twist),
	}
}

// Inverse returns the rotation that undoes e.
func (e EulerTriple) Inverse() EulerTriple {
	return EulerTriple{Z1: -e.Z2, Y: -e.Y, Z2: -e.Z1}
}

// Rotator is a configurable rotation operator on spectral coefficients.
// Configured angles persist until the next SetAnglesZYZ.
type Rotator interface {
	SetAnglesZYZ(z1, y, z2 float64)
	ApplyReal(c sht.Coeffs) (sht.Coeffs, error)
}

// Composer turns a centering request into rotations of spectral coefficients.
// It reconfigures its Rotator on every call and is not safe for concurrent
// use.
type Composer struct {
	rot Rotator
}

// NewComposer returns a Composer driving rot.
func NewComposer(rot Rotator) *Composer {
	return &Composer{rot: rot}
}

// Apply rotates coeffs so the request's center point lands at latitude 0,
// longitude 180, twisted about that point by the request's twist.
func (c *Composer) Apply(coeffs sht.Coeffs, req Request) (sht.Coeffs, error) {
	return c.rotate(coeffs, ToPole(req), PoleToEquator)
}

// Restore undoes [Composer.Apply] for the same request.
func (c *Composer) Restore(coeffs sht.Coeffs, req Request) (sht.Coeffs, error) {
	return c.rotate(coeffs, PoleToEquator.Inverse(), ToPole(req).Inverse())
}

func (c *Composer) rotate(coeffs sht.Coeffs, steps ...EulerTriple) (sht.Coeffs, error) {
	out := coeffs
	for i, e := range steps {
		c.rot.SetAnglesZYZ(e.Z1, e.Y, e.Z2)

		var err error
		out, err = c.rot.ApplyReal(out)
		if err != nil {
			return sht.Coeffs{}, fmt.Errorf("center: rotation %d: %w", i+1, err)
		}
	}
	return out, nil
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
