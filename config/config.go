package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/types"
	"github.com/Temutjin2k/solotrip-connect/pkg/configparser"
)

// Flags
var (
	modeFlag = flag.String("mode", "", "application mode: trip-api | web-ui")
)

// Errors
var (
	ErrModeNotProvided = errors.New("mode flag not provided")
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode     types.ServiceMode
		LogLevel string `env:"LOG_LEVEL" default:"INFO"`

		API       APIConfig
		Web       WebConfig
		Database  DatabaseConfig
		RabbitMQ  RabbitMQConfig
		Redis     RedisConfig
		Auth      Auth
		CORS      CORSConfig
		RateLimit RateLimitConfig
	}

	APIConfig struct {
		Port            string        `env:"API_PORT" default:"8080"`
		ReadTimeout     time.Duration `env:"API_READ_TIMEOUT" default:"10s"`
		WriteTimeout    time.Duration `env:"API_WRITE_TIMEOUT" default:"10s"`
		IdleTimeout     time.Duration `env:"API_IDLE_TIMEOUT" default:"60s"`
		ShutdownTimeout time.Duration `env:"API_SHUTDOWN_TIMEOUT" default:"10s"`
	}

	WebConfig struct {
		Port string `env:"WEB_PORT" default:"4200"`
		// Base URL of the trip API the web UI talks to.
		APIBaseURL    string        `env:"API_BASE_URL" default:"http://localhost:8080"`
		ClientTimeout time.Duration `env:"WEB_CLIENT_TIMEOUT" default:"10s"`
		ReadTimeout   time.Duration `env:"WEB_READ_TIMEOUT" default:"10s"`
		WriteTimeout  time.Duration `env:"WEB_WRITE_TIMEOUT" default:"20s"`
	}

	DatabaseConfig struct {
		Driver   string `env:"DATABASE_DRIVER" default:"postgres"`
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"solotrip_user"`
		Password string `env:"DATABASE_PASSWORD" default:"solotrip_pass"`
		Database string `env:"DATABASE_DATABASE" default:"solotrip_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"20"`
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"2"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`
	}

	RabbitMQConfig struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED" default:"false"`
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
	}

	RedisConfig struct {
		Enabled  bool   `env:"REDIS_ENABLED" default:"false"`
		Addr     string `env:"REDIS_ADDR" default:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" default:"0"`
	}

	Auth struct {
		JWTSecret       string        `env:"AUTH_JWT_SECRET" default:"solotripconnectsecretkeythatshouldbelongenoughforhs512algorithm"`
		TokenTTL        time.Duration `env:"AUTH_TOKEN_TTL" default:"24h"`
		MaxFailedLogins int           `env:"AUTH_MAX_FAILED_LOGINS" default:"5"`
		LockoutWindow   time.Duration `env:"AUTH_LOCKOUT_WINDOW" default:"15m"`
	}

	CORSConfig struct {
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" default:"http://localhost:4200,http://localhost:8081"`
	}

	RateLimitConfig struct {
		RPS   float64 `env:"RATE_LIMIT_RPS" default:"50"`
		Burst int     `env:"RATE_LIMIT_BURST" default:"100"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return ErrModeNotProvided
	}

	cfg.Mode = types.ServiceMode(*modeFlag)

	return nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}
	return nil
}
