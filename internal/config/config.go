package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds runtime configuration loaded from environment variables.
type Settings struct {
	Host            string
	Port            int
	AllowedOrigins  []string
	LogLevel        string
	LogDevelopment  bool
	MetricsEnabled  bool
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads an optional dotenv file and then the process environment.
// Variables already present in the environment win over the file. A missing
// file is fine; an unreadable or malformed one is an error.
func Load() (Settings, error) {
	path := envOr("ENV_FILE", ".env")
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("load env file %s: %w", path, err)
	}
	return FromEnv(), nil
}

func FromEnv() Settings {
	return Settings{
		Host:            envOr("HOST", "0.0.0.0"),
		Port:            envAsInt(firstNonEmpty(os.Getenv("APP_PORT"), os.Getenv("BACKEND_PORT"), os.Getenv("PORT")), 8001),
		AllowedOrigins:  loadAllowedOrigins(),
		LogLevel:        strings.ToLower(envOr("LOG_LEVEL", "info")),
		LogDevelopment:  envAsBool(os.Getenv("LOG_DEVELOPMENT"), false),
		MetricsEnabled:  envAsBool(os.Getenv("METRICS_ENABLED"), true),
		RequestTimeout:  time.Duration(envAsInt(os.Getenv("REQUEST_TIMEOUT_SECONDS"), 60)) * time.Second,
		ShutdownTimeout: time.Duration(envAsInt(os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"), 30)) * time.Second,
	}
}

// Address is the host:port pair the server binds to.
func (s Settings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// AllowsAnyOrigin reports whether the wildcard origin is configured.
func (s Settings) AllowsAnyOrigin() bool {
	for _, origin := range s.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func loadAllowedOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	origins := make([]string, 0, 4)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		origins = append(origins, item)
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envAsInt(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envAsBool(raw string, fallback bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
