package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration shared by both services.
type Config struct {
	Account  AccountConfig
	Resource ResourceConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
}

// AccountConfig controls the account service HTTP server.
type AccountConfig struct {
	Name                  string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	// ResourceBaseURL is where the credential store (resource service) lives.
	ResourceBaseURL string
}

// ResourceConfig controls the resource service HTTP server.
type ResourceConfig struct {
	Name                  string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// MongoConfig holds document store connection values.
type MongoConfig struct {
	URI               string
	Database          string
	ConnectTimeoutSec int
	MaxPoolSize       uint64
	MinPoolSize       uint64
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// EventCacheTTLSeconds bounds staleness of cached event reads.
	EventCacheTTLSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters. JWTSecret must be identical
// for the account and resource services or tokens minted by one are rejected
// by the other.
type AuthConfig struct {
	JWTSecret          string
	TokenTTLMinutes    int
	BcryptCost         int
	EnforceUniqueEmail bool
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		Account: AccountConfig{
			Name:                  getEnv("ACCOUNT_SERVICE_NAME", "Account Service"),
			Host:                  getEnv("ACCOUNT_HOST", "0.0.0.0"),
			Port:                  getEnv("ACCOUNT_PORT", "8081"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			ResourceBaseURL:       getEnv("RESOURCE_SERVICE_URL", "http://localhost:8080"),
		},
		Resource: ResourceConfig{
			Name:                  getEnv("RESOURCE_SERVICE_NAME", "Data Service"),
			Host:                  getEnv("RESOURCE_HOST", "0.0.0.0"),
			Port:                  getEnv("RESOURCE_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Mongo: MongoConfig{
			URI:               getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:          getEnv("MONGODB_DATABASE", "event_registration"),
			ConnectTimeoutSec: getEnvAsInt("MONGODB_CONNECT_TIMEOUT_SECONDS", 10),
			MaxPoolSize:       uint64(getEnvAsInt("MONGODB_MAX_POOL_SIZE", 100)),
			MinPoolSize:       uint64(getEnvAsInt("MONGODB_MIN_POOL_SIZE", 1)),
		},
		Redis: RedisConfig{
			Addr:                 getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:             os.Getenv("REDIS_PASSWORD"),
			DB:                   redisDB,
			EventCacheTTLSeconds: getEnvAsInt("REDIS_EVENT_CACHE_TTL_SECONDS", 60),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("AUTH_JWT_SECRET", "dev-secret"),
			TokenTTLMinutes:    getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 60),
			BcryptCost:         getEnvAsInt("AUTH_BCRYPT_COST", 12),
			EnforceUniqueEmail: getEnvAsBool("AUTH_ENFORCE_UNIQUE_EMAIL", true),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address for the account service.
func (a AccountConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// Addr returns the HTTP bind address for the resource service.
func (r ResourceConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AccountConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// RequestTimeout returns the configured request timeout duration.
func (r ResourceConfig) RequestTimeout() time.Duration {
	if r.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(r.RequestTimeoutSeconds) * time.Second
}

// ConnectTimeout returns the Mongo dial timeout.
func (m MongoConfig) ConnectTimeout() time.Duration {
	if m.ConnectTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(m.ConnectTimeoutSec) * time.Second
}

// EventCacheTTL returns the event cache entry lifetime.
func (r RedisConfig) EventCacheTTL() time.Duration {
	if r.EventCacheTTLSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(r.EventCacheTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
