package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the portal
type Config struct {
	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Persistent store configuration
	Store StoreConfig `mapstructure:"store"`

	// JWT configuration
	JWT JWTConfig `mapstructure:"jwt"`

	// Doctor directory endpoint configuration
	Directory DirectoryConfig `mapstructure:"directory"`

	// Simulated payment configuration
	Payment PaymentConfig `mapstructure:"payment"`

	// Scheduling configuration
	Scheduling SchedulingConfig `mapstructure:"scheduling"`

	// Rate limiting configuration
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Monitoring configuration
	Monitoring MonitoringConfig `mapstructure:"monitoring"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

// StoreConfig holds the embedded key-value store configuration
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	SecretKey      string `mapstructure:"secret_key"`
	AccessTokenTTL int    `mapstructure:"access_token_ttl"`
	Issuer         string `mapstructure:"issuer"`
	Audience       string `mapstructure:"audience"`
}

// DirectoryConfig holds the doctor directory fetch configuration
type DirectoryConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	FetchTimeout int    `mapstructure:"fetch_timeout"`
}

// PaymentConfig holds the simulated payment configuration
type PaymentConfig struct {
	DelayMS int `mapstructure:"delay_ms"`
}

// SchedulingConfig holds scheduling-specific configuration
type SchedulingConfig struct {
	// DoctorInbox is the username that receives booking notifications when a
	// booking does not name a doctor account explicitly.
	DoctorInbox string `mapstructure:"doctor_inbox"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	RequestsPerSec float64 `mapstructure:"requests_per_sec"`
	BurstSize      int     `mapstructure:"burst_size"`
}

// MonitoringConfig holds monitoring configuration
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
	HealthPath  string `mapstructure:"health_path"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/healthpuls")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideWithEnv(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("server.idle_timeout", 120)

	// Store defaults
	viper.SetDefault("store.path", "healthpuls.db")

	// JWT defaults
	viper.SetDefault("jwt.secret_key", "dev-only-secret")
	viper.SetDefault("jwt.access_token_ttl", 3600)
	viper.SetDefault("jwt.issuer", "healthpuls-portal")
	viper.SetDefault("jwt.audience", "healthpuls-users")

	// Directory defaults
	viper.SetDefault("directory.endpoint", "http://localhost:5000/api/doctors")
	viper.SetDefault("directory.fetch_timeout", 5)

	// Payment simulation defaults
	viper.SetDefault("payment.delay_ms", 2000)

	// Scheduling defaults
	viper.SetDefault("scheduling.doctor_inbox", "doctor1")

	// Rate limiting defaults
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_sec", 20)
	viper.SetDefault("rate_limit.burst_size", 40)

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
	viper.SetDefault("monitoring.health_path", "/health")

	// Logging defaults
	viper.SetDefault("log_level", "info")
}

// overrideWithEnv overrides configuration with environment variables
func overrideWithEnv(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if path := os.Getenv("STORE_PATH"); path != "" {
		config.Store.Path = path
	}

	if jwtSecret := os.Getenv("JWT_SECRET_KEY"); jwtSecret != "" {
		config.JWT.SecretKey = jwtSecret
	}

	if endpoint := os.Getenv("DIRECTORY_ENDPOINT"); endpoint != "" {
		config.Directory.Endpoint = endpoint
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
}

// validate validates the configuration
func validate(config *Config) error {
	if config.JWT.SecretKey == "" {
		return fmt.Errorf("JWT secret key is required")
	}

	if config.Store.Path == "" {
		return fmt.Errorf("store path is required")
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Payment.DelayMS < 0 {
		return fmt.Errorf("invalid payment delay: %d", config.Payment.DelayMS)
	}

	return nil
}
