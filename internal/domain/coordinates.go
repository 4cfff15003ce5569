package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Singapore bounding box used to decide whether a raw numeric pair is a
// plausible local coordinate input.
const (
	MinLat = 1.1
	MaxLat = 1.5
	MinLng = 103.6
	MaxLng = 104.1
)

// Report whether the point falls inside the Singapore bounding box.
func (c Coordinates) InSingapore() bool {
	return c.Lat >= MinLat && c.Lat <= MaxLat && c.Lng >= MinLng && c.Lng <= MaxLng
}

// Return the "lat,lng" form expected by external API query parameters.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}
