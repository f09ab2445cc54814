package handlers

import (
	intconfig "fletapp/internal/config"
	"fletapp/internal/gateways"
	"fletapp/internal/services"
	"fletapp/internal/ws"
)

// Shared wiring for the handler functions: the env, the gateway clients
// and the websocket hub are process-wide.
var (
	appEnv      intconfig.Env
	estimator   services.Estimator
	mapsClient  *gateways.MapsClient
	mercadoPago services.PreferenceCreator
	chatHub     *ws.Hub
)

// Configure builds the gateway clients and the chat hub from the env.
// Call once at startup, before mounting the routes.
func Configure(env intconfig.Env) {
	appEnv = env
	estimator = gateways.NewEstimationClient(env.EstimationURL)
	mapsClient = gateways.NewMapsClient(env.MapsProxyURL)
	mercadoPago = gateways.NewMercadoPagoClient(env.MercadoPagoToken, env.FrontendBaseURL)
	chatHub = ws.NewHub()
}
