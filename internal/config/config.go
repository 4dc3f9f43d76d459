package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
}

type fileConfig struct {
	Port          string   `yaml:"port"`
	DBPath        string   `yaml:"dbPath"`
	JWTSecret     string   `yaml:"jwtSecret"`
	TokenTTLHours int      `yaml:"tokenTTLHours"`
	CORSOrigins   []string `yaml:"corsOrigins"`
}

// Load layers the configuration: baked-in defaults, then the optional YAML
// file, then environment variables. A missing file is fine; an unreadable
// one is logged and skipped.
func Load() Config {
	cfg := Config{
		Port:        "8080",
		DBPath:      "./data/chronoboost.db",
		JWTSecret:   "change-this-secret",
		TokenTTL:    72 * time.Hour,
		CORSOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
	}

	applyFile(&cfg, getEnv("CONFIG_FILE", "./config.yaml"))

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	if hours := getEnvInt("TOKEN_TTL_HOURS", 0); hours > 0 {
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}
	cfg.CORSOrigins = getEnvList("CORS_ORIGINS", cfg.CORSOrigins)

	return cfg
}

func applyFile(cfg *Config, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config file %s unreadable, using defaults: %v", path, err)
		}
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		log.Printf("config file %s malformed, using defaults: %v", path, err)
		return
	}

	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.JWTSecret != "" {
		cfg.JWTSecret = fc.JWTSecret
	}
	if fc.TokenTTLHours > 0 {
		cfg.TokenTTL = time.Duration(fc.TokenTTLHours) * time.Hour
	}
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSOrigins = fc.CORSOrigins
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
