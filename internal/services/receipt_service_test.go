package services

import (
	"strings"
	"testing"
)

func TestReceiptServiceGenerate(t *testing.T) {
	loader := func(id int64) (receiptData, error) {
		return receiptData{
			TripID:           id,
			CustomerName:     "Ana",
			DriverName:       "Beto",
			Origin:           "Palermo",
			Destination:      "Caballito",
			CargoDetails:     "mudanza chica",
			DistanceKm:       12.3,
			FinalDurationMin: 95,
			FinalPrice:       44000,
			PaidAt:           "2026-03-10 14:30",
		}, nil
	}

	svc := ReceiptService{Loader: loader}

	pdf, filename, err := svc.Generate("cust-1", 7)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("Generate returned empty data")
	}
	if !strings.Contains(filename, "FLT-7") {
		t.Fatalf("filename = %q", filename)
	}
}
