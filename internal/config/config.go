package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Backend service endpoints
	Services ServicesConfig

	// Auth configuration
	Auth AuthConfig

	// Upload configuration
	Upload UploadConfig

	// Login rate limiting
	RateLimit RateLimitConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// ServicesConfig holds the three backend base URLs and call bounds
type ServicesConfig struct {
	UserServiceURL    string
	TimeServiceURL    string
	LibraryServiceURL string
	RequestTimeout    time.Duration
	UploadTimeout     time.Duration
	// EnrichConcurrency caps in-flight per-user lookups; 0 picks a size
	// from the CPU count.
	EnrichConcurrency int
}

// AuthConfig holds token verification settings
type AuthConfig struct {
	// JWTSecret is the HS256 secret shared with the user service.
	JWTSecret string
}

// UploadConfig holds book upload settings
type UploadConfig struct {
	MaxUploadSize int64 // in bytes
}

// RateLimitConfig holds the redis-backed login limiter settings.
// RedisAddr empty disables the limiter.
type RateLimitConfig struct {
	RedisAddr   string
	LoginLimit  int
	LoginWindow time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from an optional app.env file and the
// environment. Environment variables win over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("SERVER_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 300*time.Second)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("USER_SVC_URL", "http://localhost:5001")
	v.SetDefault("TIME_SVC_URL", "http://localhost:5002")
	v.SetDefault("LIBRARY_SVC_URL", "http://localhost:5003")
	v.SetDefault("SVC_REQUEST_TIMEOUT", 10*time.Second)
	v.SetDefault("SVC_UPLOAD_TIMEOUT", 2*time.Minute)
	v.SetDefault("ENRICH_CONCURRENCY", 0)
	v.SetDefault("MAX_UPLOAD_SIZE", int64(100*1024*1024)) // 100MB
	v.SetDefault("LOGIN_RATE_LIMIT", 5)
	v.SetDefault("LOGIN_RATE_WINDOW", time.Minute)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			AllowedOrigins:  v.GetStringSlice("ALLOWED_ORIGINS"),
		},
		Services: ServicesConfig{
			UserServiceURL:    v.GetString("USER_SVC_URL"),
			TimeServiceURL:    v.GetString("TIME_SVC_URL"),
			LibraryServiceURL: v.GetString("LIBRARY_SVC_URL"),
			RequestTimeout:    v.GetDuration("SVC_REQUEST_TIMEOUT"),
			UploadTimeout:     v.GetDuration("SVC_UPLOAD_TIMEOUT"),
			EnrichConcurrency: v.GetInt("ENRICH_CONCURRENCY"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
		},
		Upload: UploadConfig{
			MaxUploadSize: v.GetInt64("MAX_UPLOAD_SIZE"),
		},
		RateLimit: RateLimitConfig{
			RedisAddr:   v.GetString("REDIS_ADDR"),
			LoginLimit:  v.GetInt("LOGIN_RATE_LIMIT"),
			LoginWindow: v.GetDuration("LOGIN_RATE_WINDOW"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Services.UserServiceURL == "" {
		return fmt.Errorf("USER_SVC_URL is required")
	}
	if c.Services.TimeServiceURL == "" {
		return fmt.Errorf("TIME_SVC_URL is required")
	}
	if c.Services.LibraryServiceURL == "" {
		return fmt.Errorf("LIBRARY_SVC_URL is required")
	}
	return nil
}
