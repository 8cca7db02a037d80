package domain

import "math"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the pair lies inside the WGS84 ranges.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// DistanceMeters returns the great-circle distance to other.
func (c Coordinates) DistanceMeters(other Coordinates) float64 {
	const earthRadiusMeters = 6371000.0

	dLat := (other.Latitude - c.Latitude) * math.Pi / 180
	dLon := (other.Longitude - c.Longitude) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(c.Latitude*math.Pi/180)*math.Cos(other.Latitude*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// A place a job happens at or a salesman travels from.
// At least one representation must be usable: either coordinates are set,
// or the address must be resolved to coordinates by a geocoder before the
// location participates in travel-time arithmetic.
type Location struct {
	Coordinates *Coordinates
	Address     string
}

// Resolved reports whether the location carries usable coordinates.
func (l Location) Resolved() bool {
	return l.Coordinates != nil && l.Coordinates.Valid()
}

// SamePlace reports whether two locations refer to the same place:
// a shared non-empty address, or identical coordinates.
func (l Location) SamePlace(other Location) bool {
	if l.Address != "" && l.Address == other.Address {
		return true
	}
	if l.Coordinates != nil && other.Coordinates != nil {
		return *l.Coordinates == *other.Coordinates
	}
	return false
}
