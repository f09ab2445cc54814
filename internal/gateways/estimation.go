package gateways

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fletapp/internal/domain"
)

// EstimationClient talks to the AI estimation gateway: one endpoint, an
// {action, payload} envelope, three actions. The gateway is best-effort by
// contract; callers decide per call site whether a failure blocks the flow.
type EstimationClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewEstimationClient(baseURL string) *EstimationClient {
	return &EstimationClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type TripEstimate struct {
	DistanceKm             float64 `json:"distanceKm"`
	EstimatedDriveTimeMin  float64 `json:"estimatedDriveTimeMin"`
	EstimatedLoadTimeMin   float64 `json:"estimatedLoadTimeMin"`
	EstimatedUnloadTimeMin float64 `json:"estimatedUnloadTimeMin"`
}

type estimationRequest struct {
	Action  string `json:"action"`
	Payload any    `json:"payload"`
}

func (c *EstimationClient) call(action string, payload, out any) error {
	if c.BaseURL == "" {
		return fmt.Errorf("estimation gateway no configurado")
	}

	body, err := json.Marshal(estimationRequest{Action: action, Payload: payload})
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Post(c.BaseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("estimation gateway: %s", apiErr.Error)
		}
		return fmt.Errorf("estimation gateway: status %d", resp.StatusCode)
	}
	return json.Unmarshal(raw, out)
}

// TripEstimates asks for the duration breakdown and distance of a trip.
func (c *EstimationClient) TripEstimates(origin, destination, cargoDetails string) (*TripEstimate, error) {
	var out TripEstimate
	err := c.call("getTripEstimates", map[string]string{
		"origin":       origin,
		"destination":  destination,
		"cargoDetails": cargoDetails,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DriverEta asks how long a driver needs to reach the pickup point.
// A response without etaMinutes yields (nil, nil).
func (c *EstimationClient) DriverEta(driverLocation, tripOrigin string) (*int, error) {
	var out struct {
		EtaMinutes *float64 `json:"etaMinutes"`
	}
	err := c.call("getDriverEta", map[string]string{
		"driverLocation": driverLocation,
		"tripOrigin":     tripOrigin,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.EtaMinutes == nil {
		return nil, nil
	}
	eta := int(*out.EtaMinutes)
	return &eta, nil
}

// SuitableVehicleTypes classifies cargo into eligible fleet categories.
// Unknown labels in the response are dropped.
func (c *EstimationClient) SuitableVehicleTypes(cargoDetails string) ([]domain.VehicleType, error) {
	var out struct {
		SuitableVehicleTypes []string `json:"suitableVehicleTypes"`
	}
	err := c.call("getSuitableVehicleTypes", map[string]string{
		"cargoDetails": cargoDetails,
	}, &out)
	if err != nil {
		return nil, err
	}
	types := []domain.VehicleType{}
	for _, s := range out.SuitableVehicleTypes {
		v := domain.VehicleType(s)
		if domain.ValidVehicleType(v) {
			types = append(types, v)
		}
	}
	if len(types) == 0 {
		return nil, nil
	}
	return types, nil
}
