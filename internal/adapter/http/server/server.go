package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Temutjin2k/solotrip-connect/config"
	"github.com/Temutjin2k/solotrip-connect/internal/adapter/http/handler"
	"github.com/Temutjin2k/solotrip-connect/internal/adapter/http/middleware"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
)

const (
	serverIPAddress = "%s:%s"
	serviceName     = "trip-api"
	version         = "1.0.0"
)

// AuthService is what the API needs from the auth domain.
type AuthService interface {
	handler.AuthService
	middleware.AuthService
}

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health *handler.Health
	auth   *handler.Auth
	trip   *handler.Trip
}

func New(cfg config.Config, tripService handler.TripService, authService AuthService, log logger.Logger) (*API, error) {
	if authService == nil {
		return nil, errors.New("auth service is required")
	}
	if tripService == nil {
		return nil, errors.New("trip service is required")
	}

	mid := middleware.NewMiddleware(authService, middleware.Options{
		RPS:            cfg.RateLimit.RPS,
		Burst:          cfg.RateLimit.Burst,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, log)

	api := &API{
		mux: http.NewServeMux(),
		routes: &handlers{
			health: handler.NewHealth(serviceName, version, log),
			auth:   handler.NewAuth(authService, log),
			trip:   handler.NewTrip(tripService, log),
		},
		m:    mid,
		addr: fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.API.Port),
		cfg:  cfg,
		log:  log,
	}

	api.setupRoutes()

	api.server = &http.Server{
		Addr:         api.addr,
		Handler:      api.Handler(),
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
		IdleTimeout:  cfg.API.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(log.GetSlogLogger().Handler(), slog.LevelError),
	}

	return api, nil
}

// Handler returns the mux wrapped in the middleware chain.
func (a *API) Handler() http.Handler {
	h := a.m.Auth(a.mux)
	h = a.m.Logging(h)
	h = a.m.RateLimit(serviceName)(h)
	h = a.m.Metrics(serviceName)(h)
	h = a.m.CORS(h)
	h = a.m.RequestID(h)
	return a.m.Recover(h)
}

func (a *API) Stop(ctx context.Context) error {
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr, "mode", string(types.TripAPI))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()
}
