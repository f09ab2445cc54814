package gateways

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fletapp/internal/domain"
)

func estimationServer(t *testing.T, handler func(action string, payload map[string]string) (int, any)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Action  string            `json:"action"`
			Payload map[string]string `json:"payload"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		status, body := handler(req.Action, req.Payload)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
}

func TestTripEstimates(t *testing.T) {
	srv := estimationServer(t, func(action string, payload map[string]string) (int, any) {
		if action != "getTripEstimates" {
			t.Fatalf("action = %q", action)
		}
		if payload["origin"] != "Palermo" || payload["cargoDetails"] != "heladera" {
			t.Fatalf("payload = %v", payload)
		}
		return http.StatusOK, map[string]float64{
			"distanceKm":             12.4,
			"estimatedDriveTimeMin":  38,
			"estimatedLoadTimeMin":   15,
			"estimatedUnloadTimeMin": 15,
		}
	})
	defer srv.Close()

	client := NewEstimationClient(srv.URL)
	est, err := client.TripEstimates("Palermo", "Caballito", "heladera")
	if err != nil {
		t.Fatalf("TripEstimates error: %v", err)
	}
	if est.DistanceKm != 12.4 || est.EstimatedDriveTimeMin != 38 {
		t.Fatalf("estimate = %+v", est)
	}
}

func TestTripEstimatesGatewayError(t *testing.T) {
	srv := estimationServer(t, func(string, map[string]string) (int, any) {
		return http.StatusBadGateway, map[string]string{"error": "modelo no disponible"}
	})
	defer srv.Close()

	client := NewEstimationClient(srv.URL)
	if _, err := client.TripEstimates("a", "b", "c"); err == nil {
		t.Fatal("want error on non-200")
	}
}

func TestDriverEtaAbsentIsNil(t *testing.T) {
	srv := estimationServer(t, func(string, map[string]string) (int, any) {
		return http.StatusOK, map[string]any{}
	})
	defer srv.Close()

	client := NewEstimationClient(srv.URL)
	eta, err := client.DriverEta("Flores", "Palermo")
	if err != nil {
		t.Fatalf("DriverEta error: %v", err)
	}
	if eta != nil {
		t.Fatalf("eta = %v, want nil", *eta)
	}
}

func TestSuitableVehicleTypesDropsUnknownLabels(t *testing.T) {
	srv := estimationServer(t, func(string, map[string]string) (int, any) {
		return http.StatusOK, map[string]any{
			"suitableVehicleTypes": []string{"Furgoneta", "Triciclo", "Camión pesado"},
		}
	})
	defer srv.Close()

	client := NewEstimationClient(srv.URL)
	types, err := client.SuitableVehicleTypes("mudanza")
	if err != nil {
		t.Fatalf("SuitableVehicleTypes error: %v", err)
	}
	if len(types) != 2 || types[0] != domain.VehicleFurgoneta || types[1] != domain.VehicleCamionPes {
		t.Fatalf("types = %v", types)
	}
}

func TestUnconfiguredGatewayFails(t *testing.T) {
	client := NewEstimationClient("")
	if _, err := client.TripEstimates("a", "b", "c"); err == nil {
		t.Fatal("empty base URL should fail")
	}
}
