// Package geo provides the spherical-earth calculations used by the
// navigation and assistant services: great-circle distance, initial
// bearing, compass labels and coordinate midpoints.
package geo

import "math"

// earthRadiusM is the mean earth radius in meters.
const earthRadiusM = 6371000.0

// compassLabels are the 8 compass octants, clockwise from north.
var compassLabels = [8]string{
	"north", "northeast", "east", "southeast",
	"south", "southwest", "west", "northwest",
}

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance returns the great-circle distance between p1 and p2 in meters
// using the Haversine formula. Inputs are not validated; NaN propagates.
func Distance(p1, p2 Point) float64 {
	lat1 := degreesToRadians(p1.Lat)
	lat2 := degreesToRadians(p2.Lat)
	dLat := degreesToRadians(p2.Lat - p1.Lat)
	dLng := degreesToRadians(p2.Lng - p1.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// Bearing returns the initial forward azimuth from p1 to p2 in degrees,
// normalized to [0, 360).
func Bearing(p1, p2 Point) float64 {
	lat1 := degreesToRadians(p1.Lat)
	lat2 := degreesToRadians(p2.Lat)
	dLng := degreesToRadians(p2.Lng - p1.Lng)

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)

	deg := radiansToDegrees(math.Atan2(y, x))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DirectionLabel maps a bearing to one of the 8 compass octants.
// Boundary values round to the nearer octant, ties upward (22.5 ->
// northeast).
func DirectionLabel(bearing float64) string {
	idx := int(math.Round(bearing/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return compassLabels[idx]
}

// Midpoint returns the arithmetic mean of the two coordinates. Good
// enough at campus scale; not a geodesic midpoint.
func Midpoint(p1, p2 Point) Point {
	return Point{
		Lat: (p1.Lat + p2.Lat) / 2,
		Lng: (p1.Lng + p2.Lng) / 2,
	}
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func radiansToDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
