package gateways

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MapsClient resolves the driving route between two free-text addresses
// through the distance-matrix proxy.
type MapsClient struct {
	ProxyURL string
	HTTP     *http.Client
}

func NewMapsClient(proxyURL string) *MapsClient {
	return &MapsClient{
		ProxyURL: proxyURL,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

type RouteDetails struct {
	DistanceMeters  int64 `json:"distanceMeters"`
	DurationSeconds int64 `json:"durationSeconds"`
}

func (d RouteDetails) DistanceKm() float64 {
	return float64(d.DistanceMeters) / 1000.0
}

func (c *MapsClient) RouteDetails(origin, destination string) (*RouteDetails, error) {
	if c.ProxyURL == "" {
		return nil, fmt.Errorf("maps gateway no configurado")
	}

	body, err := json.Marshal(map[string]string{
		"origin":      origin,
		"destination": destination,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Post(c.ProxyURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("maps gateway: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("maps gateway: status %d", resp.StatusCode)
	}

	var out RouteDetails
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
