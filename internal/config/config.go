package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Upstream    UpstreamConfig
	CartStore   string // redis, postgres or memory
	Redis       RedisConfig
	Database    DatabaseConfig
	Kafka       KafkaConfig
	SettingsTTL time.Duration
	LogLevel    string
}

type UpstreamConfig struct {
	BaseURL string
	// BootstrapTenantID is sent as the routing header on the slug-keyed
	// settings lookup, before the tenant's own identifier is known.
	BootstrapTenantID string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("SALONY_API_BASE_URL", "https://api.salonyai.com/api")
	viper.SetDefault("CART_STORE", "redis")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("SETTINGS_CACHE_TTL", "5m")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	settingsTTL, err := time.ParseDuration(getEnvOrViper("SETTINGS_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SETTINGS_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Upstream: UpstreamConfig{
			BaseURL:           getEnvOrViper("SALONY_API_BASE_URL", "https://api.salonyai.com/api"),
			BootstrapTenantID: getEnvOrViper("SALONY_BOOTSTRAP_TENANT_ID", "3fa85f64-5717-4562-b3fc-2c963f66afa6"),
		},
		CartStore: getEnvOrViper("CART_STORE", "redis"),
		Redis: RedisConfig{
			Addr:     getEnvOrViper("REDIS_ADDR", "localhost:6379"),
			Password: getEnvOrViper("REDIS_PASSWORD", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "storefront"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers: splitCSV(getEnvOrViper("KAFKA_BROKERS", "")),
			Topic:   getEnvOrViper("KAFKA_ORDER_TOPIC", "storefront.order.placed"),
		},
		SettingsTTL: settingsTTL,
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("SALONY_API_BASE_URL is required")
	}
	switch cfg.CartStore {
	case "redis", "postgres", "memory":
	default:
		return nil, fmt.Errorf("CART_STORE must be redis, postgres or memory, got %q", cfg.CartStore)
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
