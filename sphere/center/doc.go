// Package center re-centers scalar lat/lon fields on a feature point, for
// building storm-centered composites and similar feature-relative patches.
//
// Centering moves a point P to latitude 0, longitude 180 of the grid and can
// twist the field about P by an azimuthal angle. It is done with two rigid
// rotations of the field's spherical-harmonic coefficients:
//
//  1. [ToPole]: rotate by 180 - lon about the polar axis, tilt by 90 - lat
//     so P reaches the north pole, then spin by the twist about the pole.
//  2. [PoleToEquator]: carry the pole down to the equator at longitude 180,
//     away from the coordinate singularity of the lat/lon grid.
//
// # Usage
//
//	lat := grid.RegularLatitudes(180)
//	lon := grid.Longitudes(360)
//	p, err := center.New(lat, lon, center.WithTruncation(85))
//	out, err := p.CenterAndRotate(f, 30, 200, 0)
//
// All argument checks run before any spectral work, so a rejected
// CenterAndRotateInPlace call leaves its field untouched. Errors match
// [ErrShape], [ErrRange] or [grid.ErrMismatch] with errors.Is.
//
// A Preprocessor is not safe for concurrent use. Wrap it in [Synchronized]
// or give each goroutine its own instance.
package center
