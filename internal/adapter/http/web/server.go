package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/Temutjin2k/solotrip-connect/config"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/controller"
	"github.com/Temutjin2k/solotrip-connect/internal/ui/router"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/gin-gonic/gin"
)

const (
	serverIPAddress = "%s:%s"
	serviceName     = "web-ui"
	version         = "1.0.0"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Session is the process-wide session store as used by the pages.
type Session interface {
	controller.Authenticator
	controller.SessionReader
	router.AuthState
}

type Server struct {
	engine *gin.Engine
	server *http.Server

	session Session
	trips   controller.TripAPI
	guard   *router.Guard
	routes  *router.Router

	addr string
	log  logger.Logger
}

// SetMode switches gin to release mode unless debug logging is on.
func SetMode(logLevel string) {
	if logLevel == logger.LevelDebug {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}

func New(cfg config.Config, session Session, trips controller.TripAPI, log logger.Logger) (*Server, error) {
	if session == nil {
		return nil, errors.New("session store is required")
	}
	if trips == nil {
		return nil, errors.New("trip client is required")
	}

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	guard := router.NewGuard(session)
	s := &Server{
		engine:  gin.New(),
		session: session,
		trips:   trips,
		guard:   guard,
		routes:  router.New(guard),
		addr:    fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Web.Port),
		log:     log,
	}

	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(s.recovery(), s.requestID(), s.logging())
	s.engine.StaticFS("/static", http.FS(static))
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.engine,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(log.GetSlogLogger().Handler(), slog.LevelError),
	}

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		s.log.Info(ctx, "started http server", "address", s.addr, "mode", string(types.WebUI))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	ctx = wrap.WithAction(ctx, "http_server_stop")

	s.log.Debug(ctx, "shutting down HTTP server...", "address", s.addr)
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	s.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}
