package server

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Temutjin2k/solotrip-connect/docs"
)

func (a *API) setupRoutes() {
	a.mux.HandleFunc("GET /health", a.routes.health.HealthCheck)
	a.mux.Handle("GET /metrics", promhttp.Handler())
	a.mux.HandleFunc("GET /swagger/", httpSwagger.Handler(httpSwagger.InstanceName(docs.InstanceName)))

	a.mux.HandleFunc("POST /api/auth/login", a.routes.auth.Login)

	a.mux.Handle("GET /api/trips", a.m.RequireAuth(a.routes.trip.List))
	a.mux.Handle("GET /api/trips/search", a.m.RequireAuth(a.routes.trip.Search))
	a.mux.Handle("GET /api/trips/{id}", a.m.RequireAuth(a.routes.trip.Get))
	a.mux.Handle("POST /api/trips", a.m.RequireAuth(a.routes.trip.Create))
	a.mux.Handle("PUT /api/trips/{id}", a.m.RequireAuth(a.routes.trip.Update))
	a.mux.Handle("DELETE /api/trips/{id}", a.m.RequireAuth(a.routes.trip.Delete))
}
