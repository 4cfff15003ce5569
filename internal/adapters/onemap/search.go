package onemap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"courier-profit-service/internal/platform/obs"
	"courier-profit-service/internal/ports"
)

type searchResponse struct {
	Found   int `json:"found"`
	Results []struct {
		SearchVal string `json:"SEARCHVAL"`
		BlkNo     string `json:"BLK_NO"`
		RoadName  string `json:"ROAD_NAME"`
		Building  string `json:"BUILDING"`
		Address   string `json:"ADDRESS"`
		Postal    string `json:"POSTAL"`
		Latitude  string `json:"LATITUDE"`
		Longitude string `json:"LONGITUDE"`
	} `json:"results"`
}

// Search performs a forward address lookup. The endpoint is unauthenticated.
// Zero results is a valid response, returned as an empty slice.
func (c *Client) Search(ctx context.Context, text string) (_ []ports.SearchResult, err error) {
	defer obs.Time(ctx, "onemap.Search")(&err)

	q := url.Values{}
	q.Set("searchVal", text)
	q.Set("returnGeom", "Y")
	q.Set("getAddrDetails", "Y")
	q.Set("pageNum", "1")

	endpoint := c.baseURL + "/api/common/elastic/search?" + q.Encode()

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, "")
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", text, classify(err))
	}
	defer resp.Body.Close()

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("search %q: decode response: %w", text, classify(err))
	}

	out := make([]ports.SearchResult, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		lat, errLat := strconv.ParseFloat(r.Latitude, 64)
		lng, errLng := strconv.ParseFloat(r.Longitude, 64)
		if errLat != nil || errLng != nil {
			// Results without usable geometry cannot feed the router.
			continue
		}

		out = append(out, ports.SearchResult{
			SearchValue:  nilToEmpty(r.SearchVal),
			BlockNumber:  nilToEmpty(r.BlkNo),
			RoadName:     nilToEmpty(r.RoadName),
			BuildingName: nilToEmpty(r.Building),
			Address:      nilToEmpty(r.Address),
			PostalCode:   nilToEmpty(r.Postal),
			Latitude:     lat,
			Longitude:    lng,
		})
	}

	return out, nil
}

// OneMap reports absent attributes as the literal string "NIL".
func nilToEmpty(s string) string {
	if s == "NIL" {
		return ""
	}
	return s
}
