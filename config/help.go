package config

import (
	"flag"
	"fmt"
	"strings"
)

const HelpMessage = `
SoloTrip Connect

Usage:
  solotrip --mode=<trip-api|web-ui> [--config-path=config.yaml]

Modes:
  trip-api   REST backend: authentication and trip storage
  web-ui     browser application talking to the trip API at API_BASE_URL

Options:
  --mode           service mode to run
  --config-path    path to a YAML config file (optional, env vars win)
  --help           show this message

Configuration is read from .env, the YAML file and the environment.
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig prints the effective configuration with secrets masked.
func PrintConfig(cfg *Config) {
	var b strings.Builder
	fmt.Fprintf(&b, "mode=%s log_level=%s\n", cfg.Mode, cfg.LogLevel)
	fmt.Fprintf(&b, "api: port=%s\n", cfg.API.Port)
	fmt.Fprintf(&b, "web: port=%s api_base_url=%s\n", cfg.Web.Port, cfg.Web.APIBaseURL)
	fmt.Fprintf(&b, "database: driver=%s host=%s port=%s user=%s password=%s db=%s\n",
		cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		mask(cfg.Database.Password), cfg.Database.Database)
	fmt.Fprintf(&b, "rabbitmq: enabled=%t host=%s port=%s user=%s password=%s\n",
		cfg.RabbitMQ.Enabled, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, mask(cfg.RabbitMQ.Password))
	fmt.Fprintf(&b, "redis: enabled=%t addr=%s password=%s db=%d\n",
		cfg.Redis.Enabled, cfg.Redis.Addr, mask(cfg.Redis.Password), cfg.Redis.DB)
	fmt.Fprintf(&b, "auth: jwt_secret=%s token_ttl=%s max_failed_logins=%d lockout_window=%s\n",
		mask(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL, cfg.Auth.MaxFailedLogins, cfg.Auth.LockoutWindow)
	fmt.Fprintf(&b, "cors: allowed_origins=%s\n", strings.Join(cfg.CORS.AllowedOrigins, ","))
	fmt.Fprintf(&b, "rate_limit: rps=%g burst=%d\n", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	fmt.Print(b.String())
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:2] + strings.Repeat("*", 6) + secret[len(secret)-2:]
}
