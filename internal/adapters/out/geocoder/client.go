// Package geocoder provides the outbound geocoding adapter: an HTTP client
// for a Yandex-compatible geocoding API and a caching resolver that wraps it
// with the persistent location cache.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

var (
	ErrBaseURLIsRequired = errors.New("geocoder base URL is required")
	ErrAPIKeyIsRequired  = errors.New("geocoder API key is required")
)

// Client calls a Yandex-compatible geocoding HTTP API.
// It implements ports.GeocodeGateway: an empty result set maps to
// ports.ErrAddressNotFound, everything else that goes wrong (network,
// non-2xx status, malformed payload) is a transport error.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a geocoding API client.
// A non-positive timeout falls back to the default of 5 seconds.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, ErrBaseURLIsRequired
	}
	if apiKey == "" {
		return nil, ErrAPIKeyIsRequired
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// geocodeResponse mirrors the parts of the API payload the client reads.
// Point.Pos carries coordinates as "longitude latitude".
type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocode resolves an address to coordinates through the external API.
// Returns ports.ErrAddressNotFound when the geocoder answered successfully
// but found no match; the caller may cache that verdict. Any other failure
// must not be cached.
func (c *Client) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	requestURL := fmt.Sprintf("%s?%s", c.baseURL, url.Values{
		"geocode": []string{address},
		"apikey":  []string{c.apiKey},
		"format":  []string{"json"},
	}.Encode())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("build geocode request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return kernel.GeoPoint{}, fmt.Errorf("geocoder returned status %d", response.StatusCode)
	}

	var payload geocodeResponse
	if err = json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("decode geocoder response: %w", err)
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return kernel.GeoPoint{}, ports.ErrAddressNotFound
	}

	return parsePos(members[0].GeoObject.Point.Pos)
}

// parsePos parses the "longitude latitude" position string of the first
// match and normalizes it to a latitude/longitude GeoPoint.
func parsePos(pos string) (kernel.GeoPoint, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return kernel.GeoPoint{}, fmt.Errorf("malformed position %q in geocoder response", pos)
	}

	longitude, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("malformed longitude in geocoder response: %w", err)
	}

	latitude, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("malformed latitude in geocoder response: %w", err)
	}

	return kernel.NewGeoPoint(latitude, longitude)
}
