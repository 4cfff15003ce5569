package domain

// BuildingType buckets a resolved address into a wait-time category.
type BuildingType string

const (
	BuildingHDB        BuildingType = "hdb"
	BuildingCondo      BuildingType = "condo"
	BuildingOffice     BuildingType = "office"
	BuildingMall       BuildingType = "mall"
	BuildingIndustrial BuildingType = "industrial"
	BuildingLanded     BuildingType = "landed"
	BuildingUnknown    BuildingType = "unknown"
)

// Location is a fully resolved stop. Produced once by the geocoder per input
// string and never mutated afterwards.
type Location struct {
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	FormattedAddress string       `json:"formatted_address"`
	PostalCode       string       `json:"postal_code,omitempty"`
	BuildingType     BuildingType `json:"building_type"`
	BuildingName     string       `json:"building_name,omitempty"`
}

// Coords returns the point of the location for distance math and routing calls.
func (l Location) Coords() Coordinates {
	return Coordinates{Lat: l.Latitude, Lng: l.Longitude}
}
