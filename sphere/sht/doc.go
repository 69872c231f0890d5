// Package sht implements spherical-harmonic transforms of real scalar fields
// on latitude/longitude grids, and rigid rotations of their coefficients.
//
// Harmonics are orthonormal on the unit sphere and carry no Condon-Shortley
// phase. Truncation is triangular with lmax = mmax.
//
// # Usage
//
// A [Transform] is built once per grid and truncation and reused:
//
//	t, err := sht.NewTransform(85, grid.Regular, 180, 360)
//	c, err := t.Analyze(data)        // data: 180*360 values, north row first
//	err = t.Synthesize(out, c)
//
// A [Rotation] is configured with Euler angles, then applied:
//
//	rot, err := sht.NewRotation(t.LMax())
//	rot.SetAnglesZYZ(z1, y, z2)
//	rotated, err := rot.ApplyReal(c)
//
// # Grids
//
// Regular grids use colatitudes (j + 1/2)*pi/nlat, without pole points, and
// Fejér's first quadrature rule; they need nlat > 2*lmax. Gaussian grids use
// Gauss-Legendre nodes and need nlat > lmax. Longitudes are 2*pi*k/nlon and
// need nlon > 2*lmax. Zonal transforms run on FFT plans from algo-fft.
package sht
