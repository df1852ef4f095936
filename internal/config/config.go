package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"

	TokenStoreDatabase = "database"
	TokenStoreRedis    = "redis"
)

type Config struct {
	HTTPAddr string

	StorageDriver string
	DatabaseURL   string
	SQLitePath    string

	TokenStore string
	RedisAddr  string

	JWTSecret string
	TokenTTL  time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads the configuration from the environment and, when CONFIG_FILE
// is set, from that file. Environment variables win over the file.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("storage_driver", StorageSQLite)
	v.SetDefault("sqlite_path", "./noticeboard.db")
	v.SetDefault("token_store", TokenStoreDatabase)
	v.SetDefault("jwt_ttl", "30m")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.AutomaticEnv()

	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	ttl, err := time.ParseDuration(v.GetString("jwt_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	cfg := Config{
		HTTPAddr:      v.GetString("http_addr"),
		StorageDriver: strings.ToLower(v.GetString("storage_driver")),
		DatabaseURL:   v.GetString("database_url"),
		SQLitePath:    v.GetString("sqlite_path"),
		TokenStore:    strings.ToLower(v.GetString("token_store")),
		RedisAddr:     v.GetString("redis_addr"),
		JWTSecret:     v.GetString("jwt_secret"),
		TokenTTL:      ttl,
		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.TokenTTL)
	}

	switch c.StorageDriver {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s storage driver", StoragePostgres)
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s storage driver", StorageSQLite)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	switch c.TokenStore {
	case TokenStoreDatabase:
	case TokenStoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when TOKEN_STORE=%s", TokenStoreRedis)
		}
	default:
		return fmt.Errorf("unknown TOKEN_STORE %q", c.TokenStore)
	}

	return nil
}
