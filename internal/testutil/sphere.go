package testutil

import "math"

// Vec3 is a point in 3-D Cartesian space.
type Vec3 [3]float64

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// RotZ returns the right-handed rotation by a radians about the z axis.
func RotZ(a float64) Mat3 {
	s, c := math.Sincos(a)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// RotY returns the right-handed rotation by b radians about the y axis.
func RotY(b float64) Mat3 {
	s, c := math.Sincos(b)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// Mul returns m*n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

// T returns the transpose, which is the inverse of a rotation.
func (m Mat3) T() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Apply returns m*v.
func (m Mat3) Apply(v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// EulerZYZ returns Rz(z2)*Ry(y)*Rz(z1): z1 is applied first.
func EulerZYZ(z1, y, z2 float64) Mat3 {
	return RotZ(z2).Mul(RotY(y)).Mul(RotZ(z1))
}

// UnitVector returns the point at latitude/longitude in degrees.
func UnitVector(latDeg, lonDeg float64) Vec3 {
	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	return Vec3{math.Cos(lat) * math.Cos(lon), math.Cos(lat) * math.Sin(lon), math.Sin(lat)}
}

// LatLon returns latitude and longitude in degrees of v, longitude in [0, 360).
func LatLon(v Vec3) (lat, lon float64) {
	lat = math.Atan2(v[2], math.Hypot(v[0], v[1])) * 180 / math.Pi
	lon = math.Atan2(v[1], v[0]) * 180 / math.Pi
	if lon < 0 {
		lon += 360
	}
	return lat, lon
}

// Cubic is a fixed polynomial of degree 3 in x, y, z. Restricted to the
// sphere it only contains harmonics of degree <= 3, so any transform with
// truncation >= 3 represents it exactly.
func Cubic(v Vec3) float64 {
	x, y, z := v[0], v[1], v[2]
	return 0.7 + 1.3*x - 0.4*y + 0.9*z + 0.8*x*y - 0.6*y*z + 0.5*z*z + 0.3*x*x*z - 0.45*y*y*y
}

// Bump is a Gaussian in great-circle distance from center, with width sigma
// in degrees and unit peak.
func Bump(v, center Vec3, sigmaDeg float64) float64 {
	dot := v[0]*center[0] + v[1]*center[1] + v[2]*center[2]
	dot = math.Max(-1, math.Min(1, dot))
	d := math.Acos(dot) * 180 / math.Pi
	return math.Exp(-d * d / (2 * sigmaDeg * sigmaDeg))
}

// Sample evaluates fn on the lat x lon grid (degrees) into a row-major slice.
func Sample(lat, lon []float64, fn func(Vec3) float64) []float64 {
	out := make([]float64, len(lat)*len(lon))
	for i, la := range lat {
		for j, lo := range lon {
			out[i*len(lon)+j] = fn(UnitVector(la, lo))
		}
	}
	return out
}
