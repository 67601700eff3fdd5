package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/quarryhq/website/pkg/observability"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Site content and branding
	Site SiteConfig

	// Blog content loading
	Content ContentConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Health/metrics server (separate port for k8s probes)
	HealthPort string
}

// SiteConfig holds site-wide display settings
type SiteConfig struct {
	// Title shown in the navigation bar and page titles
	Title string

	// BaseURL is the canonical site URL used for the sitemap
	BaseURL string

	// ConsoleURL is where the pricing CTAs send signups
	ConsoleURL string
}

// ContentConfig holds blog content loading settings
type ContentConfig struct {
	// Dir is the on-disk content directory; empty means embedded content
	Dir string

	// Watch reloads content when files in Dir change
	Watch bool

	// CacheSize is the rendered-article LRU capacity
	CacheSize int

	// SitemapSchedule is a cron expression for sitemap regeneration
	SitemapSchedule string
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	// Logging
	LogLevel observability.LogLevel

	// Metrics
	MetricsEnabled bool

	// OpenTelemetry
	OTelEnabled        bool
	OTelEndpoint       string
	OTelServiceName    string
	OTelServiceVersion string
	OTelInsecure       bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server:        loadServerConfig(),
		Site:          loadSiteConfig(),
		Content:       loadContentConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadServerConfig loads server configuration from environment
func loadServerConfig() ServerConfig {
	return ServerConfig{
		Host:            getEnv("WEBSITE_HOST", "0.0.0.0"),
		Port:            getEnv("WEBSITE_PORT", "8080"),
		ReadTimeout:     getEnvDuration("WEBSITE_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("WEBSITE_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvDuration("WEBSITE_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("WEBSITE_SHUTDOWN_TIMEOUT", 30*time.Second),
		HealthPort:      getEnv("WEBSITE_HEALTH_PORT", "9090"),
	}
}

// loadSiteConfig loads site settings from environment
func loadSiteConfig() SiteConfig {
	return SiteConfig{
		Title:      getEnv("WEBSITE_TITLE", "Quarry"),
		BaseURL:    getEnv("WEBSITE_BASE_URL", "https://quarry.dev"),
		ConsoleURL: getEnv("WEBSITE_CONSOLE_URL", "https://console.quarry.dev"),
	}
}

// loadContentConfig loads content settings from environment
func loadContentConfig() ContentConfig {
	return ContentConfig{
		Dir:             getEnv("WEBSITE_CONTENT_DIR", ""),
		Watch:           getEnvBool("WEBSITE_CONTENT_WATCH", false),
		CacheSize:       getEnvInt("WEBSITE_CONTENT_CACHE_SIZE", 128),
		SitemapSchedule: getEnv("WEBSITE_SITEMAP_SCHEDULE", "0 * * * *"),
	}
}

// loadObservabilityConfig loads observability configuration from environment
func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:           observability.ParseLogLevel(getEnv("WEBSITE_LOG_LEVEL", "info")),
		MetricsEnabled:     getEnvBool("WEBSITE_METRICS_ENABLED", true),
		OTelEnabled:        getEnvBool("WEBSITE_OTEL_ENABLED", false),
		OTelEndpoint:       getEnv("WEBSITE_OTEL_ENDPOINT", "localhost:4317"),
		OTelServiceName:    getEnv("WEBSITE_OTEL_SERVICE_NAME", "quarry-website"),
		OTelServiceVersion: getEnv("WEBSITE_OTEL_SERVICE_VERSION", "1.0.0"),
		OTelInsecure:       getEnvBool("WEBSITE_OTEL_INSECURE", true),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Server.HealthPort == "" {
		return fmt.Errorf("health port is required")
	}
	if c.Server.Port == c.Server.HealthPort {
		return fmt.Errorf("server port and health port must be different")
	}

	if c.Site.Title == "" {
		return fmt.Errorf("site title is required")
	}
	if _, err := url.ParseRequestURI(c.Site.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.Site.BaseURL, err)
	}
	if _, err := url.ParseRequestURI(c.Site.ConsoleURL); err != nil {
		return fmt.Errorf("invalid console URL %q: %w", c.Site.ConsoleURL, err)
	}

	if c.Content.CacheSize <= 0 {
		return fmt.Errorf("content cache size must be positive")
	}
	if c.Content.Watch && c.Content.Dir == "" {
		return fmt.Errorf("content watch requires a content directory")
	}

	if c.Observability.OTelEnabled {
		if c.Observability.OTelEndpoint == "" {
			return fmt.Errorf("OpenTelemetry endpoint is required when OTel is enabled")
		}
		if c.Observability.OTelServiceName == "" {
			return fmt.Errorf("OpenTelemetry service name is required when OTel is enabled")
		}
	}

	return nil
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
