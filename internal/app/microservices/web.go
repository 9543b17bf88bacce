package microservices

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/solotrip-connect/config"
	"github.com/Temutjin2k/solotrip-connect/internal/adapter/http/web"
	"github.com/Temutjin2k/solotrip-connect/internal/adapter/tripclient"
	"github.com/Temutjin2k/solotrip-connect/internal/session"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
)

// WebUIService serves the browser application. It owns the single session
// of the process and reaches the trip API through the trip client.
type WebUIService struct {
	httpServer *web.Server

	cfg config.Config
	log logger.Logger
}

func NewWebUI(ctx context.Context, cfg config.Config, log logger.Logger) (*WebUIService, error) {
	client, err := tripclient.NewClient(cfg.Web.APIBaseURL, &http.Client{Timeout: cfg.Web.ClientTimeout}, nil, log)
	if err != nil {
		log.Error(ctx, "Failed to setup trip api client", err)
		return nil, err
	}

	store := session.NewStore(client, log)
	client.SetTokenSource(store)

	web.SetMode(cfg.LogLevel)
	httpServer, err := web.New(cfg, store, client, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return &WebUIService{
		httpServer: httpServer,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (s *WebUIService) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "web ui closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "web ui has been started", "api_base_url", s.cfg.Web.APIBaseURL)

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

func (s *WebUIService) close(ctx context.Context) {
	ctx = wrap.WithAction(ctx, "web_ui_close")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.API.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Stop(shutdownCtx); err != nil {
		s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
	}
}
