package valueobject

import (
	"errors"
	"fmt"
	"math"
)

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate creates a Coordinate, rejecting values off the globe
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return Coordinate{}, errors.New("coordinate cannot be NaN")
	}
	if latitude < -90 || latitude > 90 {
		return Coordinate{}, fmt.Errorf("latitude %v out of range [-90, 90]", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return Coordinate{}, fmt.Errorf("longitude %v out of range [-180, 180]", longitude)
	}
	return Coordinate{Latitude: latitude, Longitude: longitude}, nil
}

// Equals reports whether two coordinates are identical
func (c Coordinate) Equals(other Coordinate) bool {
	return c.Latitude == other.Latitude && c.Longitude == other.Longitude
}

// String returns "lat,lon"
func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Latitude, c.Longitude)
}
