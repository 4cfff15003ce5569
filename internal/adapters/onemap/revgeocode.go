package onemap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/platform/obs"
	"courier-profit-service/internal/ports"
)

type revGeocodeResponse struct {
	GeocodeInfo []struct {
		BuildingName string `json:"BUILDINGNAME"`
		Block        string `json:"BLOCK"`
		Road         string `json:"ROAD"`
		PostalCode   string `json:"POSTALCODE"`
	} `json:"GeocodeInfo"`
}

// ReverseGeocode resolves a point back to building/road/postal attributes.
// Used only when the raw input was itself a coordinate pair; callers degrade
// gracefully on failure, so errors here are informational.
func (c *Client) ReverseGeocode(ctx context.Context, point domain.Coordinates) (_ ports.ReverseResult, err error) {
	defer obs.Time(ctx, "onemap.ReverseGeocode")(&err)

	q := url.Values{}
	q.Set("location", point.String())
	q.Set("buffer", "40")
	q.Set("addressType", "All")

	endpoint := c.baseURL + "/api/public/revgeocode?" + q.Encode()

	token := ""
	if c.tokens != nil {
		token = c.tokens.Token(ctx)
	}

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, token)
	if err != nil {
		return ports.ReverseResult{}, fmt.Errorf("reverse geocode: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return ports.ReverseResult{}, fmt.Errorf("reverse geocode %s: %w", point, classify(err))
	}
	defer resp.Body.Close()

	var decoded revGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.ReverseResult{}, fmt.Errorf("reverse geocode %s: decode response: %w", point, classify(err))
	}

	if len(decoded.GeocodeInfo) == 0 {
		return ports.ReverseResult{}, fmt.Errorf("reverse geocode %s: no attributes: %w", point, domain.ErrNotFound)
	}

	first := decoded.GeocodeInfo[0]
	return ports.ReverseResult{
		BuildingName: nilToEmpty(first.BuildingName),
		BlockNumber:  nilToEmpty(first.Block),
		RoadName:     nilToEmpty(first.Road),
		PostalCode:   nilToEmpty(first.PostalCode),
	}, nil
}
