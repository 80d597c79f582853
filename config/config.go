package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	Port        string   `validate:"required,numeric"`
	CorsOrigins []string `validate:"min=1,dive,required"`
	IDScheme    string   `validate:"oneof=objectid uuid"`
	StoreDriver string   `validate:"oneof=memory sqlite"`
	// SQLiteDSN must name an in-memory database; rooms are never written to disk.
	SQLiteDSN string `validate:"required_if=StoreDriver sqlite"`
	// StrictPayloads rejects create requests with missing fields.
	StrictPayloads bool
	// MinPriceAlone applies a minPrice filter sent without maxPrice.
	MinPriceAlone bool
	SeedRoomTypes bool
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        envOrDefault("PORT", "3000"),
		CorsOrigins: parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		IDScheme:    strings.ToLower(envOrDefault("ID_SCHEME", "objectid")),
		StoreDriver: strings.ToLower(envOrDefault("STORE_DRIVER", StoreMemory)),
		SQLiteDSN:   envOrDefault("SQLITE_DSN", DefaultSQLiteDSN),
	}

	var err error
	if cfg.StrictPayloads, err = envBool("STRICT_PAYLOADS", true); err != nil {
		return nil, err
	}
	if cfg.MinPriceAlone, err = envBool("FILTER_MIN_PRICE_ALONE", false); err != nil {
		return nil, err
	}
	if cfg.SeedRoomTypes, err = envBool("SEED_ROOM_TYPES", false); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	for _, origin := range cfg.CorsOrigins {
		if err := checkOrigin(origin); err != nil {
			return nil, fmt.Errorf("invalid config: CORS_ORIGINS: %w", err)
		}
	}
	if cfg.StoreDriver == StoreSQLite && !isMemoryDSN(cfg.SQLiteDSN) {
		return nil, fmt.Errorf("invalid config: SQLITE_DSN %q is not an in-memory database", cfg.SQLiteDSN)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// AllowCredentials is false when any origin is a wildcard.
func (c *Config) AllowCredentials() bool {
	for _, origin := range c.CorsOrigins {
		if origin == "*" {
			return false
		}
	}
	return true
}

// checkOrigin accepts what gin-contrib/cors accepts without AllowWildcard:
// a lone "*" or an http(s) origin.
func checkOrigin(origin string) error {
	if origin == "*" {
		return nil
	}
	if strings.Contains(origin, "*") {
		return fmt.Errorf("%q: wildcards are only allowed as a lone \"*\"", origin)
	}
	if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
		return fmt.Errorf("%q: origin must start with http:// or https://", origin)
	}
	return nil
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envBool(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, raw)
	}
	return v, nil
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
