// Package config loads and validates application configuration from
// environment variables. Missing required variables and unparsable values
// are collected and reported together so a misconfigured deployment fails
// fast with one complete error message.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvDevelopment is the environment name under which the session cookie is
// allowed over plain HTTP.
const EnvDevelopment = "development"

// DBConfig holds settings for the PostgreSQL connection pool.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds session-token settings.
type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
}

// AssetConfig holds settings for the S3-compatible asset store that hosts
// uploaded images (profile pictures, message attachments).
type AssetConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// PublicBaseURL is the prefix clients use to fetch stored objects.
	// Defaults to Endpoint when empty.
	PublicBaseURL string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        string
	Environment string
	// ClientOrigin is the SPA origin allowed by CORS; cookies require an
	// exact origin rather than a wildcard.
	ClientOrigin string
}

// AppConfig is the top-level configuration for the application.
type AppConfig struct {
	DB     *DBConfig
	Auth   *AuthConfig
	Assets *AssetConfig
	Server *ServerConfig
}

// IsDevelopment reports whether the server runs in the development
// environment.
func (c *ServerConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// LoadConfig reads the environment and returns a validated AppConfig.
// All problems found are aggregated into a single error.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	dbConfig := &DBConfig{
		Host:     getOptionalEnv("DB_HOST", "localhost"),
		Port:     getOptionalEnvInt("DB_PORT", 5432, &errs),
		User:     getRequiredEnv("DB_USER", &errs),
		Password: getRequiredEnv("DB_PASSWORD", &errs),
		DBName:   getRequiredEnv("DB_NAME", &errs),
		MaxSize:  getOptionalEnvInt("DB_POOL_SIZE", 10, &errs),
	}
	if dbConfig.MaxSize < 1 {
		errs = append(errs, fmt.Sprintf("DB_POOL_SIZE must be at least 1, got %d", dbConfig.MaxSize))
	}

	authConfig := &AuthConfig{
		JWTSecret:     getRequiredEnv("JWT_SECRET", &errs),
		TokenDuration: getOptionalEnvDuration("JWT_TOKEN_DURATION", 168*time.Hour, &errs), // 7 days
	}

	assetConfig := &AssetConfig{
		Endpoint:  getRequiredEnv("ASSET_ENDPOINT", &errs),
		Region:    getOptionalEnv("ASSET_REGION", "us-east-1"),
		Bucket:    getRequiredEnv("ASSET_BUCKET", &errs),
		AccessKey: getRequiredEnv("ASSET_ACCESS_KEY", &errs),
		SecretKey: getRequiredEnv("ASSET_SECRET_KEY", &errs),
	}
	assetConfig.PublicBaseURL = getOptionalEnv("ASSET_PUBLIC_BASE_URL", assetConfig.Endpoint)

	serverConfig := &ServerConfig{
		Port:         getOptionalEnv("PORT", "8000"),
		Environment:  getOptionalEnv("APP_ENV", EnvDevelopment),
		ClientOrigin: getOptionalEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Auth:   authConfig,
		Assets: assetConfig,
		Server: serverConfig,
	}, nil
}
