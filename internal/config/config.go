package config

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds application level configuration. Values come from an optional
// YAML file (CONFIG_FILE) with environment variables taking precedence.
type Config struct {
	ServerPort    string `yaml:"server_port"`
	MySQLDSN      string `yaml:"mysql_dsn"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisDB       int    `yaml:"redis_db"`
	RedisPass     string `yaml:"redis_password"`
	SessionSecret string `yaml:"session_secret"`
	SwaggerHost   string `yaml:"swagger_host"`
}

// ErrMissingSessionSecret is returned when no session secret is configured.
// There is deliberately no default: an unsigned session cookie is worthless.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET is required")

// Load builds Config from the optional file plus environment overrides.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: "8080",
		MySQLDSN:   "user:password@tcp(localhost:3306)/skytails?charset=utf8mb4&parseTime=True&loc=Local",
		RedisAddr:  "localhost:6379",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.MySQLDSN = getEnv("MYSQL_DSN", cfg.MySQLDSN)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.RedisPass = getEnv("REDIS_PASSWORD", cfg.RedisPass)
	cfg.SessionSecret = getEnv("SESSION_SECRET", cfg.SessionSecret)
	cfg.SwaggerHost = getEnv("SWAGGER_HOST", cfg.SwaggerHost)

	if cfg.SessionSecret == "" {
		return nil, ErrMissingSessionSecret
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
