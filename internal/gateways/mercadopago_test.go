package gateways

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fletapp/internal/domain/models"
)

func TestCreatePreference(t *testing.T) {
	var got preferenceRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/checkout/preferences" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Fatalf("authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "pref-123"})
	}))
	defer srv.Close()

	client := NewMercadoPagoClient("test-token", "https://fletapp.example")
	client.APIBase = srv.URL

	finalPrice := int64(66000)
	trip := models.Trip{
		ID:           7,
		Origin:       "Palermo",
		Destination:  "Caballito",
		CargoDetails: "mudanza chica",
		FinalPrice:   &finalPrice,
	}

	id, err := client.CreatePreference(trip)
	if err != nil {
		t.Fatalf("CreatePreference error: %v", err)
	}
	if id != "pref-123" {
		t.Fatalf("preference id = %q", id)
	}

	if len(got.Items) != 1 {
		t.Fatalf("items = %v", got.Items)
	}
	item := got.Items[0]
	if item.CurrencyID != "ARS" || item.UnitPrice != 66000 || item.Quantity != 1 {
		t.Fatalf("item = %+v", item)
	}
	if !strings.Contains(got.BackURLs.Success, "payment_status=success") ||
		!strings.Contains(got.BackURLs.Success, "trip_id=7") {
		t.Fatalf("success back_url = %q", got.BackURLs.Success)
	}
	if got.AutoReturn != "approved" {
		t.Fatalf("auto_return = %q", got.AutoReturn)
	}
}

func TestCreatePreferenceRequiresFinalPrice(t *testing.T) {
	client := NewMercadoPagoClient("test-token", "https://fletapp.example")
	if _, err := client.CreatePreference(models.Trip{ID: 1}); err == nil {
		t.Fatal("trip without final price should fail")
	}
}
