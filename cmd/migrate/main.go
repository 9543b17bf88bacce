// Command migrate applies the database schema and seeds a login account.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Temutjin2k/solotrip-connect/config"
	repo "github.com/Temutjin2k/solotrip-connect/internal/adapter/postgres"
	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/internal/service/auth"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/Temutjin2k/solotrip-connect/pkg/postgres"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
	username   = flag.String("username", "admin", "Username of the seeded account")
	email      = flag.String("email", "admin@solotrip.local", "Email of the seeded account")
	password   = flag.String("password", "password", "Password of the seeded account")
)

func main() {
	flag.Parse()
	if f := flag.Lookup("mode"); f != nil && f.Value.String() == "" {
		_ = flag.Set("mode", string(types.TripAPI))
	}

	log := logger.InitLogger("migrate", logger.LevelInfo)
	ctx := wrap.WithAction(context.Background(), "migrate")

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure migration", err)
		os.Exit(1)
	}

	// short timeout for migration operations
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, cfg.Database, postgres.PoolOptions{MaxConns: 2})
	if err != nil {
		log.Error(ctx, "failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repo.Migrate(ctx, db.Pool); err != nil {
		log.Error(ctx, "failed to apply migrations", err)
		os.Exit(1)
	}
	log.Info(ctx, "schema is up to date")

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	authSvc := auth.NewAuthService(repo.NewUserRepo(db.Pool), tokens, nil, log)
	if _, err := authSvc.EnsureUser(ctx, *username, *email, *password); err != nil {
		log.Error(ctx, "failed to seed user", err)
		os.Exit(1)
	}
	log.Info(ctx, "default user is ready", "username", *username)
}
