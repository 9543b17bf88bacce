package microservices

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Temutjin2k/solotrip-connect/config"
	"github.com/Temutjin2k/solotrip-connect/internal/adapter/http/server"
	"github.com/Temutjin2k/solotrip-connect/internal/adapter/memory"
	repo "github.com/Temutjin2k/solotrip-connect/internal/adapter/postgres"
	tripRabbit "github.com/Temutjin2k/solotrip-connect/internal/adapter/rabbit"
	tripRedis "github.com/Temutjin2k/solotrip-connect/internal/adapter/redis"
	"github.com/Temutjin2k/solotrip-connect/internal/service/auth"
	"github.com/Temutjin2k/solotrip-connect/internal/service/trip"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/Temutjin2k/solotrip-connect/pkg/postgres"
	"github.com/Temutjin2k/solotrip-connect/pkg/rabbit"
	"github.com/Temutjin2k/solotrip-connect/pkg/trm"
)

// Default account created at startup, matching the demo credentials shown on the login page.
const (
	defaultUsername = "admin"
	defaultEmail    = "admin@solotrip.local"
	defaultPassword = "password"
)

type TripAPIService struct {
	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ
	redis      *goredis.Client
	httpServer *server.API

	cfg config.Config
	log logger.Logger
}

type repositories struct {
	trips trip.TripRepo
	users interface {
		auth.UserRepo
		trip.UserRepo
	}
	tx trm.TxManager
}

func NewTripAPI(ctx context.Context, cfg config.Config, log logger.Logger) (*TripAPIService, error) {
	s := &TripAPIService{cfg: cfg, log: log}

	repos, err := s.setupStorage(ctx)
	if err != nil {
		s.close(ctx)
		return nil, err
	}

	var throttle auth.LoginThrottle
	if cfg.Redis.Enabled {
		s.redis, err = tripRedis.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Error(ctx, "Failed to connect to redis", err)
			s.close(ctx)
			return nil, err
		}
		throttle = tripRedis.NewLoginThrottle(s.redis, cfg.Auth.MaxFailedLogins, cfg.Auth.LockoutWindow)
	}

	var publisher trip.EventPublisher
	if cfg.RabbitMQ.Enabled {
		s.rabbitMQ, err = rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
		if err != nil {
			log.Error(ctx, "Failed to connect to rabbitmq", err)
			s.close(ctx)
			return nil, err
		}
		if err := s.rabbitMQ.DeclareExchange(tripRabbit.TripExchange, "topic"); err != nil {
			log.Error(ctx, "Failed to declare trip exchange", err)
			s.close(ctx)
			return nil, err
		}
		publisher = tripRabbit.NewTripProducer(s.rabbitMQ, log)
	}

	tokenSvc := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	authSvc := auth.NewAuthService(repos.users, tokenSvc, throttle, log)
	tripSvc := trip.NewService(repos.trips, repos.users, publisher, repos.tx, log)

	if _, err := authSvc.EnsureUser(ctx, defaultUsername, defaultEmail, defaultPassword); err != nil {
		log.Error(ctx, "Failed to ensure default user", err)
		s.close(ctx)
		return nil, err
	}

	s.httpServer, err = server.New(cfg, tripSvc, authSvc, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		s.close(ctx)
		return nil, err
	}

	return s, nil
}

func (s *TripAPIService) setupStorage(ctx context.Context) (*repositories, error) {
	if s.cfg.Database.Driver == config.DriverMemory {
		s.log.Warn(ctx, "using in-memory storage, data is lost on restart")
		users := memory.NewUserRepo()
		return &repositories{trips: memory.NewTripRepo(), users: users, tx: trm.Nop{}}, nil
	}

	db, err := postgres.New(ctx, s.cfg.Database, postgres.PoolOptions{
		MaxConns:        s.cfg.Database.MaxConns,
		MinConns:        s.cfg.Database.MinConns,
		MaxConnLifetime: s.cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: s.cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		s.log.Error(ctx, "Failed to setup database", err)
		return nil, err
	}
	s.postgresDB = db

	if err := repo.Migrate(ctx, db.Pool); err != nil {
		s.log.Error(ctx, "Failed to apply migrations", err)
		return nil, err
	}

	return &repositories{
		trips: repo.NewTripRepo(db.Pool),
		users: repo.NewUserRepo(db.Pool),
		tx:    trm.New(db.Pool),
	}, nil
}

func (s *TripAPIService) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "trip api closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "trip api has been started", "storage", s.cfg.Database.Driver,
		"rabbitmq", s.cfg.RabbitMQ.Enabled, "redis", s.cfg.Redis.Enabled)

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

func (s *TripAPIService) close(ctx context.Context) {
	ctx = wrap.WithAction(ctx, "trip_api_close")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.API.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Stop(shutdownCtx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if s.rabbitMQ != nil {
		if err := s.rabbitMQ.Close(shutdownCtx); err != nil {
			s.log.Warn(ctx, "Failed to close rabbitmq connection", "error", err.Error())
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.log.Warn(ctx, "Failed to close redis client", "error", err.Error())
		}
	}

	if s.postgresDB != nil {
		s.postgresDB.Close()
	}
}
