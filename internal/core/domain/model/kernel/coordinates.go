package kernel

import "courierapp/internal/pkg/errs"

// Latitude and longitude bounds in decimal degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinates is a geographic point attached to an order's delivery address.
// It is optional on orders; when present it backs the map links the detail
// view offers.
type Coordinates struct {
	lat float64
	lon float64
}

// NewCoordinates creates a validated coordinate pair.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if lat < MinLatitude || lat > MaxLatitude {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}
	if lon < MinLongitude || lon > MaxLongitude {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("lon", lon, MinLongitude, MaxLongitude)
	}
	return Coordinates{lat: lat, lon: lon}, nil
}

// Lat returns the latitude in decimal degrees.
func (c Coordinates) Lat() float64 {
	return c.lat
}

// Lon returns the longitude in decimal degrees.
func (c Coordinates) Lon() float64 {
	return c.lon
}

// IsEqual compares two coordinate pairs.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.lat == other.lat && c.lon == other.lon
}
