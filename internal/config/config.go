package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Inventory default policies.
const (
	// InventoryPolicyFalsy substitutes the placeholder when the stored value is NULL or zero.
	InventoryPolicyFalsy = "falsy"
	// InventoryPolicyMissing substitutes the placeholder only when the stored value is NULL.
	InventoryPolicyMissing = "missing"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	AI        AIConfig
	Search    SearchConfig
	Inventory InventoryConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Seed      SeedConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	URL             string // takes precedence over the discrete fields when set
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
	PingOnAcquire   bool
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration for the admin endpoints.
// An empty APIKey leaves the admin routes unmounted.
type AuthConfig struct {
	APIKey string
}

// AIConfig holds configuration for the generative-text API.
type AIConfig struct {
	APIKey           string
	BaseURL          string
	Model            string
	Timeout          time.Duration
	RatePerMinute    int
	CacheTTL         time.Duration
	DegradeOnFailure bool
	ResultLimit      int
}

// SearchConfig holds configuration for the plain search endpoint.
type SearchConfig struct {
	PageSize int
}

// InventoryConfig holds the inventory placeholder policy.
type InventoryConfig struct {
	DefaultPolicy string
}

// RedisConfig holds the optional analysis cache configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// KafkaConfig holds the optional search-log event stream configuration.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether any broker was configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// SeedConfig holds catalog importer configuration.
type SeedConfig struct {
	FilePath  string
	BatchSize int
	S3Enabled bool
	S3Bucket  string
	S3Region  string
	S3Prefix  string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "aislefinder"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			PingOnAcquire:   getEnvAsBool("DB_PING_ON_ACQUIRE", true),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("ADMIN_API_KEY", ""),
		},
		AI: AIConfig{
			APIKey:           getEnv("GEMINI_API_KEY", ""),
			BaseURL:          getEnv("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Model:            getEnv("AI_MODEL", "gemini-1.5-flash"),
			Timeout:          getEnvAsDuration("AI_TIMEOUT", 30*time.Second),
			RatePerMinute:    getEnvAsInt("AI_RATE_PER_MINUTE", 60),
			CacheTTL:         getEnvAsDuration("AI_CACHE_TTL", 10*time.Minute),
			DegradeOnFailure: getEnvAsBool("AI_DEGRADE_ON_FAILURE", false),
			ResultLimit:      getEnvAsInt("AI_RESULT_LIMIT", 20),
		},
		Search: SearchConfig{
			PageSize: getEnvAsInt("SEARCH_PAGE_SIZE", 20),
		},
		Inventory: InventoryConfig{
			DefaultPolicy: getEnv("INVENTORY_DEFAULT_POLICY", InventoryPolicyFalsy),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvAsList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "search.logs"),
		},
		Seed: SeedConfig{
			FilePath:  getEnv("SEED_FILE", "data/catalog.json"),
			BatchSize: getEnvAsInt("IMPORT_BATCH_SIZE", 100),
			S3Enabled: getEnvAsBool("SEED_S3_ENABLED", false),
			S3Bucket:  getEnv("SEED_S3_BUCKET", ""),
			S3Region:  getEnv("SEED_S3_REGION", "ap-northeast-1"),
			S3Prefix:  getEnv("SEED_S3_PREFIX", "catalog/"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.URL == "" {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}

		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}

		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}

		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.AI.BaseURL == "" {
		return fmt.Errorf("AI base URL is required")
	}

	if c.AI.Model == "" {
		return fmt.Errorf("AI model is required")
	}

	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI timeout must be positive")
	}

	if c.AI.RatePerMinute < 1 {
		return fmt.Errorf("AI rate per minute must be at least 1")
	}

	if c.AI.ResultLimit < 1 {
		return fmt.Errorf("AI result limit must be at least 1")
	}

	if c.Search.PageSize < 1 {
		return fmt.Errorf("search page size must be at least 1")
	}

	if c.Inventory.DefaultPolicy != InventoryPolicyFalsy && c.Inventory.DefaultPolicy != InventoryPolicyMissing {
		return fmt.Errorf("invalid inventory default policy: %s (must be falsy or missing)", c.Inventory.DefaultPolicy)
	}

	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka topic is required when brokers are configured")
	}

	if c.Seed.BatchSize < 1 {
		return fmt.Errorf("import batch size must be at least 1")
	}

	if c.Seed.S3Enabled {
		if c.Seed.S3Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.Seed.S3Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or returns a default value.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, dropping empty entries.
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
