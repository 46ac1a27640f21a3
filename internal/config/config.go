package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/she110ff/metalcat-sub002/utils"
)

// Config holds the application configuration loaded from the environment.
type Config struct {
	Port         string
	LogLevel     string
	GinMode      string
	Locale       models.Locale
	SeedDemoData bool
}

// Load reads an optional .env file and returns the populated Config.
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil {
		utils.Debug("config: no .env file found, using process environment", map[string]any{"error": err.Error()})
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		GinMode:      getEnv("GIN_MODE", "release"),
		Locale:       models.ParseLocale(getEnv("LOCALE", string(models.LocaleKO))),
		SeedDemoData: getEnvBool("SEED_DEMO_DATA", true),
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
