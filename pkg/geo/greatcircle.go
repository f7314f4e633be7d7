// Package geo provides great-circle helpers for geographic edge rendering.
//
// Interpolation is delegated to the S2 geometry library: coordinates are
// lifted onto the unit sphere, interpolated along the great circle, and
// projected back to longitude/latitude degrees.
package geo

import (
	"github.com/golang/geo/s2"
)

// LonLat is a geographic coordinate in degrees.
// Longitude is positive east, latitude positive north.
type LonLat struct {
	Lon float64
	Lat float64
}

// Interpolate returns the point the fraction f of the way from a to b along
// the great circle between them. f=0 yields a, f=1 yields b.
func Interpolate(f float64, a, b LonLat) LonLat {
	pa := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	pb := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))
	ll := s2.LatLngFromPoint(s2.Interpolate(f, pa, pb))
	return LonLat{Lon: ll.Lng.Degrees(), Lat: ll.Lat.Degrees()}
}

// Midpoint returns the great-circle midpoint of a and b.
func Midpoint(a, b LonLat) LonLat {
	return Interpolate(0.5, a, b)
}
