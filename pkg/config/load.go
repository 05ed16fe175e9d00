package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment after loading the first env
// file found among envFilePath (each searched upwards from the working
// directory). With no paths, or none found, it falls back to ./.env.
func Load(envFilePath ...string) (*App, error) {
	loadEnvFile(envFilePath...)
	return loadFromEnv()
}

// LoadAdmin reads the part of the configuration the admin console needs:
// the environment, logging, database and market settings. Unlike Load it
// does not require a JWT secret.
func LoadAdmin(envFilePath ...string) (*App, error) {
	loadEnvFile(envFilePath...)
	cfg := App{
		Env:    GetEnv("APP_ENV", "development"),
		Log:    &Log{},
		DB:     &DB{},
		Market: &Market{},
	}
	specs := []struct {
		prefix string
		spec   any
	}{
		{"LOG", cfg.Log},
		{"DATABASE", cfg.DB},
		{"MARKET", cfg.Market},
	}
	for _, s := range specs {
		if err := envconfig.Process(s.prefix, s.spec); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func loadEnvFile(envFilePath ...string) {
	logger := slog.Default()
	for _, path := range envFilePath {
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		logger.Info("Loaded environment file", "path", foundPath)
		return
	}
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system environment variables")
	}
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Auth.Strategy != "jwt" {
		return nil, fmt.Errorf("unsupported AUTH_STRATEGY %q", cfg.Auth.Strategy)
	}
	if cfg.Market.StartingBudget.IsNegative() {
		return nil, errors.New("MARKET_STARTING_BUDGET must not be negative")
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"auth_strategy", cfg.Auth.Strategy,
		"auth_jwt_expiry", cfg.Auth.Jwt.Expiry,
		"redis", maskValue(cfg.Redis.URL),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"starting_budget", cfg.Market.StartingBudget,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
