package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AppConfig struct {
	// Backend
	BaseURL     string
	WSURL       string
	HTTPTimeout time.Duration

	// Client identity headers
	Platform   string
	AppVersion string

	// Session store
	StoreDir    string
	StoreSecret string

	// Optional shared session store. When RedisAddr is set the session
	// record lives in Redis instead of the local file.
	RedisAddr string
	RedisPass string
	RedisDB   int
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		BaseURL:     getEnv("MEETLINE_BASE_URL", "https://api.meetline.app/api/v1"),
		WSURL:       getEnv("MEETLINE_WS_URL", "wss://api.meetline.app/ws"),
		HTTPTimeout: getEnvDuration("MEETLINE_HTTP_TIMEOUT", 30*time.Second),

		Platform:   getEnv("MEETLINE_PLATFORM", "cli"),
		AppVersion: getEnv("MEETLINE_APP_VERSION", "1.0.0"),

		StoreDir:    getEnv("MEETLINE_STORE_DIR", defaultStoreDir()),
		StoreSecret: getEnv("MEETLINE_STORE_SECRET", ""),

		RedisAddr: getEnv("MEETLINE_REDIS_ADDR", ""),
		RedisPass: getEnv("MEETLINE_REDIS_PASS", ""),
		RedisDB:   getEnvInt("MEETLINE_REDIS_DB", 0),
	}
}

func defaultStoreDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".meetline"
	}
	return filepath.Join(base, "meetline")
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
