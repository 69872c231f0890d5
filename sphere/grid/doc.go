// Package grid describes latitude/longitude grids used by the spectral
// transform and checks that a caller's axes agree with the grid a transform
// actually samples.
//
// # Usage
//
// Build axes for a grid type and size:
//
//	lat := grid.RegularLatitudes(180)   // -89.5 ... 89.5
//	lon := grid.Longitudes(360)         // 0 ... 359
//	g, err := grid.New(lat, lon, grid.Regular, 85)
//
// Validate a claimed latitude axis against transform latitudes:
//
//	if err := grid.Validate(lat, grid.Regular, transform.Latitudes()); err != nil {
//		var mm *grid.MismatchError
//		if errors.As(err, &mm) {
//			// mm.Claimed and mm.Engine hold both axes
//		}
//	}
//
// Regular grids follow the DCT-style equiangular layout without pole points.
// Gaussian grids place latitudes on the Gauss-Legendre nodes. Passing one
// grid's latitudes with the other type fails validation.
package grid
