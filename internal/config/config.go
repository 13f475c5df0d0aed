// Package config loads the ledger service configuration from the environment.
package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Ledger   LedgerConfig
	Payment  PaymentConfig
	Auth     AuthConfig
	Identity IdentityConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout time.Duration
	// TrustedProxies lists the peers whose X-Forwarded-For and X-Real-IP
	// headers are honoured. Empty means the socket address is always used.
	TrustedProxies []netip.Prefix
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Driver          string // postgres (lib/pq) or pgx
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	AutoMigrate     bool
}

// LedgerConfig holds the product constants applied by the ledger and referral engine
type LedgerConfig struct {
	FreeTrialSeconds      int64
	ReferralRewardSeconds int64
	MaxRetries            int
	RetryBase             time.Duration
}

// PaymentConfig holds payment gateway credentials and the price table
type PaymentConfig struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
	APIBaseURL    string
	APITimeout    time.Duration
	Prices        *PriceTable
}

// AuthConfig holds the shared secret used to verify dashboard bearer tokens
type AuthConfig struct {
	TokenSecret string
}

// IdentityConfig holds the upstream identity provider settings
type IdentityConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	prices, err := ParsePriceTable(
		getEnv("PRICE_TABLE", DefaultPriceTable),
		getEnvAsInt64("PRICE_DEFAULT_SECONDS", 7200),
		getEnv("PRICE_DEFAULT_LABEL", "Custom"),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	trustedProxies, err := ParseTrustedProxies(getEnv("TRUSTED_PROXIES", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", "30s"),
			TrustedProxies:  trustedProxies,
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "ledger"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "5m"),
			AutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Ledger: LedgerConfig{
			FreeTrialSeconds:      getEnvAsInt64("FREE_TRIAL_SECONDS", 7200),
			ReferralRewardSeconds: getEnvAsInt64("REFERRAL_REWARD_SECONDS", 1800),
			MaxRetries:            getEnvAsInt("LEDGER_MAX_RETRIES", 3),
			RetryBase:             getEnvAsDuration("LEDGER_RETRY_BASE", "25ms"),
		},
		Payment: PaymentConfig{
			KeyID:         getEnv("PAYMENT_KEY_ID", ""),
			KeySecret:     getEnv("PAYMENT_KEY_SECRET", ""),
			WebhookSecret: getEnv("PAYMENT_WEBHOOK_SECRET", ""),
			APIBaseURL:    getEnv("PAYMENT_API_BASE_URL", "https://api.razorpay.com/v1"),
			APITimeout:    getEnvAsDuration("PAYMENT_API_TIMEOUT", "10s"),
			Prices:        prices,
		},
		Auth: AuthConfig{
			TokenSecret: getEnv("AUTH_TOKEN_SECRET", ""),
		},
		Identity: IdentityConfig{
			APIKey:  getEnv("IDENTITY_API_KEY", ""),
			BaseURL: getEnv("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com/v1"),
			Timeout: getEnvAsDuration("IDENTITY_TIMEOUT", "5s"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Database.Driver != "postgres" && c.Database.Driver != "pgx" {
		return fmt.Errorf("invalid database driver: %s (must be postgres or pgx)", c.Database.Driver)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if c.Ledger.FreeTrialSeconds < 0 {
		return fmt.Errorf("free trial seconds cannot be negative")
	}
	if c.Ledger.ReferralRewardSeconds < 0 {
		return fmt.Errorf("referral reward seconds cannot be negative")
	}
	if c.Ledger.MaxRetries < 0 {
		return fmt.Errorf("ledger max retries cannot be negative")
	}
	if c.Ledger.RetryBase <= 0 {
		return fmt.Errorf("ledger retry base must be positive")
	}

	if c.Payment.KeyID == "" {
		return fmt.Errorf("payment key id cannot be empty")
	}
	if c.Payment.KeySecret == "" {
		return fmt.Errorf("payment key secret cannot be empty")
	}
	if c.Payment.APIBaseURL == "" {
		return fmt.Errorf("payment api base url cannot be empty")
	}
	if c.Payment.WebhookSecret == "" {
		return fmt.Errorf("payment webhook secret cannot be empty")
	}
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("auth token secret cannot be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	return nil
}

// ParseTrustedProxies parses a comma-separated list of CIDRs or bare addresses.
func ParseTrustedProxies(raw string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if strings.Contains(item, "/") {
			prefix, err := netip.ParsePrefix(item)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", item, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", item, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to parsing the default if provided value is invalid
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}
