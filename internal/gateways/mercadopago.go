package gateways

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"fletapp/internal/domain/models"
)

const mercadoPagoAPIBase = "https://api.mercadopago.com"

// MercadoPagoClient creates hosted checkout preferences. The returned
// preference id is what the frontend renders the payment widget against.
type MercadoPagoClient struct {
	Token           string
	FrontendBaseURL string
	APIBase         string
	HTTP            *http.Client
}

func NewMercadoPagoClient(token, frontendBaseURL string) *MercadoPagoClient {
	return &MercadoPagoClient{
		Token:           token,
		FrontendBaseURL: frontendBaseURL,
		APIBase:         mercadoPagoAPIBase,
		HTTP:            &http.Client{Timeout: 15 * time.Second},
	}
}

type preferenceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	CurrencyID  string `json:"currency_id"`
	UnitPrice   int64  `json:"unit_price"`
}

type preferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceRequest struct {
	Items      []preferenceItem   `json:"items"`
	BackURLs   preferenceBackURLs `json:"back_urls"`
	AutoReturn string             `json:"auto_return"`
}

// CreatePreference builds a checkout preference for a completed trip and
// returns the preference id. The trip must carry its final price.
func (c *MercadoPagoClient) CreatePreference(trip models.Trip) (string, error) {
	if c.Token == "" {
		return "", fmt.Errorf("mercado pago no configurado")
	}
	if trip.FinalPrice == nil {
		return "", fmt.Errorf("el viaje no tiene precio final")
	}

	backURL := func(status string) string {
		return fmt.Sprintf("%s?payment_status=%s&trip_id=%d", c.FrontendBaseURL, status, trip.ID)
	}

	pref := preferenceRequest{
		Items: []preferenceItem{{
			ID:          strconv.FormatInt(trip.ID, 10),
			Title:       "Flete: " + trip.CargoDetails,
			Description: fmt.Sprintf("Servicio de flete desde %s a %s", trip.Origin, trip.Destination),
			Quantity:    1,
			CurrencyID:  "ARS",
			UnitPrice:   *trip.FinalPrice,
		}},
		BackURLs: preferenceBackURLs{
			Success: backURL("success"),
			Failure: backURL("failure"),
			Pending: backURL("pending"),
		},
		AutoReturn: "approved",
	}

	body, err := json.Marshal(pref)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.APIBase+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("mercado pago: status %d: %s", resp.StatusCode, string(raw))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("mercado pago: respuesta sin preference id")
	}
	return out.ID, nil
}
