package center

import "math"

// Request is a validated centering request, all values in degrees.
type Request struct {
	Lat   float64 // [-90, 90]
	Lon   float64 // [0, 360)
	Twist float64 // [0, 360]
}

// NewRequest validates and normalizes a center point and twist angle.
//
// Longitudes below 0 are shifted by +360, so [-180, 0) maps onto [180, 360);
// anything still outside [0, 360] is rejected, and 360 itself is folded onto
// 0. NaN is rejected for every value.
func NewRequest(lat, lon, twist float64) (Request, error) {
	if lon < 0 {
		lon += 360
	}
	if math.IsNaN(lon) || lon < 0 || lon > 360 {
		return Request{}, &RangeError{Name: "lon", Value: lon, Min: 0, Max: 360, Hint: "[-180,180] or [0,360]"}
	}
	if lon == 360 {
		lon = 0
	}

	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return Request{}, &RangeError{Name: "lat", Value: lat, Min: -90, Max: 90}
	}

	if math.IsNaN(twist) || twist < 0 || twist > 360 {
		return Request{}, &RangeError{Name: "twist", Value: twist, Min: 0, Max: 360}
	}

	return Request{Lat: lat, Lon: lon, Twist: twist}, nil
}
