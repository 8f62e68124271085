package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Session signing secrets. Both are environment-derived; the admin
	// secret in particular must never fall back to a literal in code.
	AdminJWTSecret string `env:"ADMIN_JWT_SECRET, default=development-admin"`
	SiteLockSecret string `env:"SITE_LOCK_SECRET, default=development-app"`

	// Site-lock passcode gating the whole site while in development.
	SiteLockPasscode string `env:"SITE_LOCK_PASSCODE, default=development"`

	// LoginDelay is the fixed wait applied after a successful credential
	// check. Real throttling is handled by the Redis lockout; set to 0 to
	// disable the wait.
	LoginDelay time.Duration `env:"LOGIN_DELAY, default=2s"`

	// Domain allow-lists per site variant. Unlisted hosts fall back to the
	// customer site.
	AdminHosts    []string `env:"ADMIN_HOSTS,    default=admin.wheelhouse.ae"`
	CustomerHosts []string `env:"CUSTOMER_HOSTS, default=www.wheelhouse.ae,wheelhouse.ae"`
	DevHost       string   `env:"DEV_HOST,       default=localhost:8080"`

	// Logo assets served through the image passthrough endpoint.
	LogoURL      string `env:"LOGO_URL,       default=https://cdn.wheelhouse.ae/brand/logo.png"`
	LogoLightURL string `env:"LOGO_LIGHT_URL, default=https://cdn.wheelhouse.ae/brand/logo-light.png"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	// URI has no default on purpose: without credentials every action
	// dispatch fails instead of silently pointing at a local instance.
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=siteapi"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsDev reports whether the process runs in development mode, which bypasses
// host matching in the domain resolver.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
