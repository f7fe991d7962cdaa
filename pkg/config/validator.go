package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// ValidateConfig validates the whole configuration
func (c *Config) ValidateConfig() error {
	if err := c.validateServerConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerConfig, err)
	}

	if err := c.validateSiteConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrSiteConfig, err)
	}

	if err := c.validateRelayConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrRelayConfig, err)
	}

	if err := c.validateRateLimitConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrRateLimitConfig, err)
	}

	if err := c.validateSchedulerConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrSchedulerConfig, err)
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server == nil {
		return fmt.Errorf("%w: server", ErrMissingRequired)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port must be within 1-65535", ErrInvalidValue)
	}

	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: shutdown_timeout cannot be negative", ErrInvalidValue)
	}

	return nil
}

func (c *Config) validateSiteConfig() error {
	if c.Site == nil {
		return fmt.Errorf("%w: site", ErrMissingRequired)
	}

	s := c.Site
	if s.Domain == "" {
		return fmt.Errorf("%w: domain", ErrMissingRequired)
	}
	if u, err := url.Parse(s.Domain); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: domain must be an absolute URL", ErrInvalidValue)
	}

	if s.OrgName == "" {
		return fmt.Errorf("%w: org_name", ErrMissingRequired)
	}

	if s.DefaultLocale != "" && !isValidValue(s.DefaultLocale, []string{"pt", "en"}) {
		return fmt.Errorf("%w: default_locale must be pt or en", ErrInvalidValue)
	}

	return nil
}

func (c *Config) validateRelayConfig() error {
	if c.Relay == nil {
		return fmt.Errorf("%w: relay", ErrMissingRequired)
	}

	r := c.Relay
	if r.Email == "" {
		return fmt.Errorf("%w: email", ErrMissingRequired)
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: email %q", ErrInvalidValue, r.Email)
	}

	if r.BaseURL != "" {
		if u, err := url.Parse(r.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: base_url must be an absolute URL", ErrInvalidValue)
		}
	}

	if r.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative", ErrInvalidValue)
	}

	return nil
}

func (c *Config) validateRateLimitConfig() error {
	if c.RateLimit == nil || !c.RateLimit.Enabled {
		return nil
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("%w: requests_per_minute must be positive", ErrInvalidValue)
	}

	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 1
	}

	return nil
}

func (c *Config) validateSchedulerConfig() error {
	if c.Scheduler == nil || !c.Scheduler.Enabled {
		return nil
	}

	jobs := map[string]string{
		"relay_probe_cron": c.Scheduler.RelayProbeCron,
		"token_prune_cron": c.Scheduler.TokenPruneCron,
		"log_flush_cron":   c.Scheduler.LogFlushCron,
	}
	for name, expr := range jobs {
		if expr == "" {
			continue
		}
		if !isValidCronExpression(expr) {
			return fmt.Errorf("%w: %s=%s", ErrInvalidCron, name, expr)
		}
	}

	return nil
}

func isValidValue(value string, validValues []string) bool {
	for _, valid := range validValues {
		if value == valid {
			return true
		}
	}
	return false
}

func isValidCronExpression(expr string) bool {
	_, err := cron.ParseStandard(expr)
	return err == nil
}
