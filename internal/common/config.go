package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Worker   WorkerConfig
	LLM      LLMConfig
	Storage  StorageConfig
	Crypto   CryptoConfig
	Server   ServerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// RedisConfig holds job-queue configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// QueueKey is the list the worker pops run jobs from.
	QueueKey string
	// DedupTTL bounds how long a runID dedup marker lives.
	DedupTTL time.Duration
}

// WorkerConfig bounds the outer scheduling layer.
type WorkerConfig struct {
	// Concurrency is the max number of runs in flight at once.
	Concurrency int
	// RateLimit is the max run-starts per RateWindow. Zero disables it.
	RateLimit  int
	RateWindow time.Duration
	// MaxCostPerRun is the default cost guardrail applied when run
	// settings do not carry their own. Zero means no limit.
	MaxCostPerRun float64
	MetricsAddr   string
}

// LLMConfig holds extraction-backend configuration
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string // platform default; BYO keys override per project/workspace
	BaseURL     string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// StorageConfig holds presigned-URL storage configuration
type StorageConfig struct {
	// BaseURL resolves relative locators; presigned absolute URLs pass through.
	BaseURL      string
	FetchTimeout time.Duration
	URLExpiry    time.Duration
}

// CryptoConfig holds the master key for decrypting stored BYO keys.
type CryptoConfig struct {
	// MasterKeyHex is a 64-char hex string (32 bytes, AES-256-GCM).
	MasterKeyHex string
}

// ServerConfig holds daemon listener configuration
type ServerConfig struct {
	GRPCAddr string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			QueueKey: getEnv("QUEUE_KEY", "veridoc:runs"),
			DedupTTL: getEnvAsDuration("QUEUE_DEDUP_TTL", 24*time.Hour),
		},
		Worker: WorkerConfig{
			Concurrency:   getEnvAsInt("WORKER_CONCURRENCY", 4),
			RateLimit:     getEnvAsInt("WORKER_RATE_LIMIT", 0),
			RateWindow:    getEnvAsDuration("WORKER_RATE_WINDOW", time.Minute),
			MaxCostPerRun: getEnvAsFloat64("MAX_COST_PER_RUN", 0),
			MetricsAddr:   getEnv("METRICS_ADDR", ":9090"),
		},
		LLM: LLMConfig{
			Provider:    getEnv("LLM_PROVIDER", "openai"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 4096),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Storage: StorageConfig{
			BaseURL:      getEnv("STORAGE_BASE_URL", ""),
			FetchTimeout: getEnvAsDuration("STORAGE_FETCH_TIMEOUT", 60*time.Second),
			URLExpiry:    getEnvAsDuration("STORAGE_URL_EXPIRY", 15*time.Minute),
		},
		Crypto: CryptoConfig{
			MasterKeyHex: getEnv("CREDENTIAL_MASTER_KEY", ""),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Worker.Concurrency < 1 {
		return NewAppError("CONFIG_ERROR", "WORKER_CONCURRENCY must be >= 1", ErrInvalidInput)
	}
	return nil
}
