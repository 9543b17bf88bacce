package middleware

import (
	"context"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	"golang.org/x/time/rate"
)

type (
	AuthService interface {
		Authenticate(ctx context.Context, token string) (*models.User, error)
	}

	Middleware struct {
		auth    AuthService
		limiter *rate.Limiter
		origins map[string]struct{}
		log     logger.Logger
	}
)

// Options configure the request limiter and the CORS allow list.
// A non-positive RPS disables rate limiting.
type Options struct {
	RPS            float64
	Burst          int
	AllowedOrigins []string
}

func NewMiddleware(auth AuthService, opts Options, log logger.Logger) *Middleware {
	m := &Middleware{
		auth:    auth,
		origins: make(map[string]struct{}, len(opts.AllowedOrigins)),
		log:     log,
	}
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		m.limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}
	for _, o := range opts.AllowedOrigins {
		m.origins[o] = struct{}{}
	}
	return m
}
