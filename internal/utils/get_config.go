package utils

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	StatementTimeout string `yaml:"STATEMENT_TIMEOUT"`

	// HTTP
	AppPort      string `yaml:"APP_PORT"`
	RateLimitMax string `yaml:"RATE_LIMIT_MAX"`
	AccessLog    string `yaml:"ACCESS_LOG_PATH"`

	// Logging
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`

	// Operator tokens
	JWTSecret string `yaml:"JWT_SECRET"`

	// Dashboard behavior
	ExpiryWindowDays     string `yaml:"EXPIRY_WINDOW_DAYS"`
	CrudKeepExplicitZero string `yaml:"CRUD_KEEP_EXPLICIT_ZERO"`
}

var config Config

var defaults = map[string]string{
	"DB_DRIVER":               "mysql",
	"DB_HOST":                 "localhost",
	"DB_PORT":                 "3306",
	"DB_SSLMODE":              "disable",
	"STATEMENT_TIMEOUT":       "30s",
	"APP_PORT":                "8080",
	"RATE_LIMIT_MAX":          "10",
	"ACCESS_LOG_PATH":         "./logs/app.log",
	"LOG_LEVEL":               "info",
	"LOG_FORMAT":              "console",
	"EXPIRY_WINDOW_DAYS":      "2",
	"CRUD_KEEP_EXPLICIT_ZERO": "false",
}

// LoadConfigFrom reads the YAML file at path, then a .env file if one exists.
// Process environment variables take precedence over both.
func LoadConfigFrom(path string) {
	config = Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("config file not read")
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("error parsing config file")
	}

	// godotenv.Load never overrides variables already present in the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("error loading .env file")
	}
}

func field(key string) *string {
	switch key {
	case "DB_DRIVER":
		return &config.DBDriver
	case "DB_USER":
		return &config.DBUser
	case "DB_NAME":
		return &config.DBName
	case "DB_PASSWORD":
		return &config.DBPassword
	case "DB_PORT":
		return &config.DBPort
	case "DB_HOST":
		return &config.DBHost
	case "DB_SSLMODE":
		return &config.DBSSLMode
	case "STATEMENT_TIMEOUT":
		return &config.StatementTimeout
	case "APP_PORT":
		return &config.AppPort
	case "RATE_LIMIT_MAX":
		return &config.RateLimitMax
	case "ACCESS_LOG_PATH":
		return &config.AccessLog
	case "LOG_LEVEL":
		return &config.LogLevel
	case "LOG_FORMAT":
		return &config.LogFormat
	case "JWT_SECRET":
		return &config.JWTSecret
	case "EXPIRY_WINDOW_DAYS":
		return &config.ExpiryWindowDays
	case "CRUD_KEEP_EXPLICIT_ZERO":
		return &config.CrudKeepExplicitZero
	default:
		return nil
	}
}

func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	if f := field(key); f != nil && *f != "" {
		return *f
	}
	return defaults[key]
}

// SetConfig overrides a single value, mostly for tests and CLI flags.
func SetConfig(key, value string) {
	if f := field(key); f != nil {
		*f = value
	}
}

func GetDuration(key string) time.Duration {
	d, err := time.ParseDuration(GetConfig(key))
	if err != nil {
		d, _ = time.ParseDuration(defaults[key])
	}
	return d
}

func GetInt(key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(GetConfig(key)))
	if err != nil {
		n, _ = strconv.Atoi(defaults[key])
	}
	return n
}

func GetBool(key string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(GetConfig(key)))
	if err != nil {
		return false
	}
	return b
}
