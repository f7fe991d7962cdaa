package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is the root configuration
type Config struct {
	Server    *ServerConfig    `json:"server" yaml:"server"`
	Site      *SiteConfig      `json:"site" yaml:"site"`
	Relay     *RelayConfig     `json:"relay" yaml:"relay"`
	RateLimit *RateLimitConfig `json:"rate_limit" yaml:"rate_limit"`
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`
	App       *AppConfig       `json:"app" yaml:"app"`
}

// getDefaultConfig returns a configuration where every section uses its defaults
func getDefaultConfig() *Config {
	return &Config{
		Server:    NewServerConfig(),
		Site:      NewSiteConfig(),
		Relay:     NewRelayConfig(),
		RateLimit: NewRateLimitConfig(),
		Scheduler: NewSchedulerConfig(),
		App:       NewAppConfig(),
	}
}

// Default returns the built-in configuration with environment overrides applied.
func Default() *Config {
	return getDefaultConfig()
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.App != nil && (c.App.Environment == "development" || c.App.Environment == "dev")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func parseStringList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
