package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	APIKey      string

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is honored
	TrustedProxies []string

	// RecalcInterval is how often the scheduled recalculation pass runs.
	// Zero disables the scheduler; passes then only run via the API.
	RecalcInterval time.Duration

	DBMaxConns      int
	DBMaxIdleTime   time.Duration
	DBMaxLifetime   time.Duration
	WorkerCount     int
	WorkerQueueSize int
}

// Load loads the configuration from environment variables.
// A .env file is read when present but real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "barsentry"),
		APIKey:          getEnv("API_KEY", ""),
		DBMaxIdleTime:   DefaultDBMaxIdleTime,
		DBMaxLifetime:   DefaultDBMaxLifetime,
		WorkerCount:     DefaultWorkerCount,
		WorkerQueueSize: DefaultWorkerQueueSize,
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", strconv.Itoa(DefaultDBMaxConns)))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %w", err)
	}
	cfg.DBMaxConns = maxConns

	interval, err := time.ParseDuration(getEnv("RECALC_INTERVAL", DefaultRecalcInterval))
	if err != nil {
		return nil, fmt.Errorf("invalid RECALC_INTERVAL value: %w", err)
	}
	if interval < 0 {
		return nil, fmt.Errorf("RECALC_INTERVAL must not be negative")
	}
	cfg.RecalcInterval = interval

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		cfg.TrustedProxies = splitAndTrim(proxies)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
