package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"fletapp/internal/domain"
	"fletapp/internal/repositories"
	"fletapp/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService generates the PDF receipt of a paid trip.
type ReceiptService struct {
	TripRepo    repositories.TripRepository
	ProfileRepo repositories.ProfileRepository
	RequestID   string
	Loader      func(int64) (receiptData, error)
}

type receiptData struct {
	TripID           int64
	CustomerName     string
	DriverName       string
	Origin           string
	Destination      string
	CargoDetails     string
	DistanceKm       float64
	FinalDurationMin int
	FinalPrice       int64
	PaidAt           string
}

// Generate builds the receipt for tripID. Only the trip's participants may
// download it, and only once the trip is paid.
func (s ReceiptService) Generate(userID string, tripID int64) ([]byte, string, error) {
	data, err := s.loadReceiptData(userID, tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipts", "generate", fmt.Sprintf("trip_id=%d user_id=%s", tripID, userID))
	return buildReceiptPDF(data)
}

func (s ReceiptService) loadReceiptData(userID string, tripID int64) (receiptData, error) {
	if s.Loader != nil {
		return s.Loader(tripID)
	}

	var out receiptData
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return out, err
	}
	if !trip.IsParticipant(userID) {
		return out, domain.UnauthorizedError{Msg: "no participás de este viaje"}
	}
	if trip.Status != domain.StatusPaid {
		return out, domain.ConflictError{Resource: "recibo", Msg: "el recibo está disponible cuando el viaje fue pagado"}
	}

	out.TripID = trip.ID
	out.Origin = trip.Origin
	out.Destination = trip.Destination
	out.CargoDetails = trip.CargoDetails
	if trip.DistanceKm != nil {
		out.DistanceKm = *trip.DistanceKm
	}
	if trip.FinalDurationMin != nil {
		out.FinalDurationMin = *trip.FinalDurationMin
	}
	if trip.FinalPrice != nil {
		out.FinalPrice = *trip.FinalPrice
	}
	out.PaidAt = utils.FormatDateTime(time.Now())

	if customer, err := s.ProfileRepo.GetByID(trip.CustomerID); err == nil {
		out.CustomerName = customer.FullName
	}
	if trip.DriverID != nil {
		if driver, err := s.ProfileRepo.GetByID(*trip.DriverID); err == nil {
			out.DriverName = driver.FullName
		}
	}
	return out, nil
}

func buildReceiptPDF(d receiptData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Recibo de flete", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RECIBO DE FLETE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Recibo N°  : FLT-%d", d.TripID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Emitido    : "+d.PaidAt)
	pdf.Ln(10)

	lines := []string{
		fmt.Sprintf("Cliente  : %s", orDash(d.CustomerName)),
		fmt.Sprintf("Fletero  : %s", orDash(d.DriverName)),
		fmt.Sprintf("Origen   : %s", orDash(d.Origin)),
		fmt.Sprintf("Destino  : %s", orDash(d.Destination)),
		fmt.Sprintf("Carga    : %s", orDash(d.CargoDetails)),
		fmt.Sprintf("Distancia: %.1f km", d.DistanceKm),
		fmt.Sprintf("Duración : %d min", d.FinalDurationMin),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Total pagado: "+utils.FormatPesos(d.FinalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Este recibo acredita el pago del servicio de flete a través de la plataforma.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("RECIBO_FLT-%d.pdf", d.TripID)
	return buf.Bytes(), filename, nil
}

func orDash(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}
