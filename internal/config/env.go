package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	// External gateways. An empty URL means the gateway is unavailable and
	// every call to it fails; call sites carry their own fallback policy.
	EstimationURL string
	MapsProxyURL  string

	MercadoPagoToken string
	FrontendBaseURL  string
}

func LoadEnv() Env {
	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "fletapp"),

		JWTSecret: getenv("JWT_SECRET", "fletapp-dev-secret-change-me"),

		EstimationURL: strings.TrimSpace(os.Getenv("ESTIMATION_GATEWAY_URL")),
		MapsProxyURL:  strings.TrimSpace(os.Getenv("MAPS_PROXY_URL")),

		MercadoPagoToken: strings.TrimSpace(os.Getenv("MERCADO_PAGO_TOKEN")),
		FrontendBaseURL:  getenv("FRONTEND_BASE_URL", "https://fletapp.vercel.app"),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
