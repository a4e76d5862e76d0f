package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultIBGEBaseURL is the public IBGE localidades directory.
const DefaultIBGEBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

type Config struct {
	Port    string
	GinMode string

	DBUser     string
	DBPass     string
	DBHost     string
	DBName     string
	DBMaxConns int

	JWTSecret   string
	TokenExpiry time.Duration

	IBGEBaseURL string
	IBGETimeout time.Duration
	GeoCacheTTL time.Duration

	CORSOrigins []string
	LogLevel    string
}

// Load reads the configuration from the environment. Every value has a
// development default except the database password.
func Load() *Config {
	return &Config{
		Port:    GetEnvAsString("PORT", "3004"),
		GinMode: GetEnvAsString("GIN_MODE", "debug"),

		DBUser:     GetEnvAsString("DB_USER", "root"),
		DBPass:     os.Getenv("DB_PASS"),
		DBHost:     GetEnvAsString("DB_HOST", "localhost:3306"),
		DBName:     GetEnvAsString("DB_NAME", "relato_cidadao"),
		DBMaxConns: GetEnvAsInt("DB_MAX_CONNS", 50),

		JWTSecret:   GetEnvAsString("JWT_KEY", "segredo"),
		TokenExpiry: GetEnvAsDuration("TOKEN_EXPIRY", 24*time.Hour),

		IBGEBaseURL: GetEnvAsString("IBGE_BASE_URL", DefaultIBGEBaseURL),
		IBGETimeout: GetEnvAsDuration("IBGE_TIMEOUT", 10*time.Second),
		GeoCacheTTL: GetEnvAsDuration("GEO_CACHE_TTL", 20*time.Minute),

		CORSOrigins: strings.Split(GetEnvAsString("FE_ORIGINS", "http://localhost:3000"), ";"),
		LogLevel:    GetEnvAsString("LOG_LEVEL", "info"),
	}
}

// GetEnvAsString gets an environment variable with a default value.
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as int with a default value.
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets an environment variable as duration with a default value.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
