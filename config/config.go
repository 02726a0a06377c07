// Package config provides configuration management for the accounts service.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting. Configuration is loaded once at startup into
// immutable structs that are injected into the components that need them;
// there are no mutable process-wide singletons.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds authentication-related configuration. The signing secret
// and token TTL are fixed for the lifetime of the process; rotating the
// secret requires a restart and invalidates all outstanding tokens.
type AuthConfig struct {
	JWTSecret  string        // secret key for signing JWTs
	TokenTTL   time.Duration // validity window for issued tokens
	BcryptCost int           // cost factor for password hashing
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *PoolConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

// getRequiredEnv reads a required environment variable, collecting an error
// if it is not set. Missing required variables fail startup, not requests.
func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an optional environment variable with a default.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt reads an optional environment variable parsed as an int.
// Uses defaultValue if unset; collects an error if the value does not parse.
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

// getOptionalEnvDuration reads an optional environment variable parsed as a
// time.Duration ("15m", "1h30s"). Uses defaultValue if unset; collects an
// error if the value does not parse.
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

// validatePoolSize clamps the pool size between 2 and 100, collecting an
// error when the configured value falls outside that range.
func validatePoolSize(size int, varName string, errs *[]string) int {
	if size < 2 {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is less than minimum 2, clamping to 2", varName, size))
		return 2
	}
	if size > 100 {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100, clamping to 100", varName, size))
		return 100
	}
	return size
}

// validateBcryptCost keeps the hashing cost inside the range bcrypt accepts.
func validateBcryptCost(cost int, errs *[]string) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		*errs = append(*errs, fmt.Sprintf("invalid BCRYPT_COST %d: must be between %d and %d", cost, bcrypt.MinCost, bcrypt.MaxCost))
		return bcrypt.DefaultCost
	}
	return cost
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. All errors encountered during loading are collected
// and returned as a single error so a misconfigured deployment reports every
// problem at once.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	// Database configuration
	dbUser := getRequiredEnv("DB_USER", &errs)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errs)
	dbName := getRequiredEnv("DB_NAME", &errs)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errs)
	poolSize := validatePoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errs), "DB_POOL_SIZE", &errs)

	db := &PoolConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxSize:  poolSize,
	}

	// Auth configuration. The default TTL of one hour matches the documented
	// behavior of issued tokens; BCRYPT_COST defaults to a moderate 10.
	auth := &AuthConfig{
		JWTSecret:  getRequiredEnv("JWT_SECRET", &errs),
		TokenTTL:   getOptionalEnvDuration("JWT_TOKEN_TTL", time.Hour, &errs),
		BcryptCost: validateBcryptCost(getOptionalEnvInt("BCRYPT_COST", 10, &errs), &errs),
	}

	// Server configuration. The port stays a string because it is only ever
	// interpolated into the listen address.
	server := &ServerConfig{
		Port: getOptionalEnv("PORT", "8080"),
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DB:     db,
		Auth:   auth,
		Server: server,
	}, nil
}
