package config

import (
	"time"

	"frotaweb/pkg/seo"
)

// ServerConfig represents HTTP server settings
type ServerConfig struct {
	Port            int      `json:"port" yaml:"port"`
	Address         string   `json:"address" yaml:"address"`
	ReadTimeout     int      `json:"read_timeout" yaml:"read_timeout"`         // seconds
	WriteTimeout    int      `json:"write_timeout" yaml:"write_timeout"`       // seconds
	ShutdownTimeout int      `json:"shutdown_timeout" yaml:"shutdown_timeout"` // seconds
	AssetsDir       string   `json:"assets_dir" yaml:"assets_dir"`
	AllowedOrigins  []string `json:"allowed_origins" yaml:"allowed_origins"`
	EnableSwagger   bool     `json:"enable_swagger" yaml:"enable_swagger"`
}

// SiteConfig carries the public identity of the site
type SiteConfig struct {
	Domain        string `json:"domain" yaml:"domain"`
	OrgName       string `json:"org_name" yaml:"org_name"`
	Email         string `json:"email" yaml:"email"`
	FinanceEmail  string `json:"finance_email" yaml:"finance_email"`
	Phone         string `json:"phone" yaml:"phone"`
	LogoPath      string `json:"logo_path" yaml:"logo_path"`
	ContactType   string `json:"contact_type" yaml:"contact_type"`
	DefaultLocale string `json:"default_locale" yaml:"default_locale"`
}

// RelayConfig configures the outbound form relay
type RelayConfig struct {
	BaseURL   string `json:"base_url" yaml:"base_url"`
	Email     string `json:"email" yaml:"email"`
	Timeout   int    `json:"timeout" yaml:"timeout"` // seconds
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RateLimitConfig limits form submissions per client IP
type RateLimitConfig struct {
	Enabled           bool `json:"enabled" yaml:"enabled"`
	RequestsPerMinute int  `json:"requests_per_minute" yaml:"requests_per_minute"`
	Burst             int  `json:"burst" yaml:"burst"`
	// DuplicateWindow is how long a succeeded submission token is remembered, in minutes.
	DuplicateWindow int `json:"duplicate_window" yaml:"duplicate_window"`
}

// SchedulerConfig holds the cron expressions of the background jobs
type SchedulerConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	RelayProbeCron string `json:"relay_probe_cron" yaml:"relay_probe_cron"`
	TokenPruneCron string `json:"token_prune_cron" yaml:"token_prune_cron"`
	LogFlushCron   string `json:"log_flush_cron" yaml:"log_flush_cron"`
}

// AppConfig represents application settings
type AppConfig struct {
	Environment   string `json:"environment" yaml:"environment"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
	LogFile       string `json:"log_file" yaml:"log_file"`
	LogMaxSizeMB  int    `json:"log_max_size_mb" yaml:"log_max_size_mb"`
	LogMaxBackups int    `json:"log_max_backups" yaml:"log_max_backups"`
	LogMaxAgeDays int    `json:"log_max_age_days" yaml:"log_max_age_days"`
}

// NewServerConfig creates a server configuration with default values populated from environment variables
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvInt("SERVER_PORT", 8080),
		Address:         getEnv("SERVER_ADDRESS", "0.0.0.0"),
		ReadTimeout:     getEnvInt("SERVER_READ_TIMEOUT", 15),
		WriteTimeout:    getEnvInt("SERVER_WRITE_TIMEOUT", 30),
		ShutdownTimeout: getEnvInt("SERVER_SHUTDOWN_TIMEOUT", 10),
		AssetsDir:       getEnv("ASSETS_DIR", "./public"),
		AllowedOrigins:  parseStringList(getEnv("SERVER_ALLOWED_ORIGINS", "*")),
		EnableSwagger:   getEnvBool("SERVER_ENABLE_SWAGGER", true),
	}
}

// NewSiteConfig creates the site identity from environment variables or defaults
func NewSiteConfig() *SiteConfig {
	return &SiteConfig{
		Domain:        getEnv("SITE_DOMAIN", seo.DefaultDomain),
		OrgName:       getEnv("SITE_ORG_NAME", seo.DefaultOrgName),
		Email:         getEnv("SITE_EMAIL", seo.DefaultEmail),
		FinanceEmail:  getEnv("SITE_FINANCE_EMAIL", "financeiro@instasolutions.com.br"),
		Phone:         getEnv("SITE_PHONE", seo.DefaultPhone),
		LogoPath:      getEnv("SITE_LOGO_PATH", seo.DefaultLogoPath),
		ContactType:   getEnv("SITE_CONTACT_TYPE", seo.DefaultContactType),
		DefaultLocale: getEnv("SITE_DEFAULT_LOCALE", "pt"),
	}
}

// NewRelayConfig creates the relay configuration. The operator email falls back to
// the site email.
func NewRelayConfig() *RelayConfig {
	return &RelayConfig{
		BaseURL:   getEnv("RELAY_BASE_URL", "https://formsubmit.co/ajax"),
		Email:     getEnv("RELAY_EMAIL", getEnv("SITE_EMAIL", seo.DefaultEmail)),
		Timeout:   getEnvInt("RELAY_TIMEOUT", 15),
		UserAgent: getEnv("RELAY_USER_AGENT", "frotaweb-relay/1.0"),
	}
}

// NewRateLimitConfig creates the form rate limit configuration
func NewRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled:           getEnvBool("RATE_LIMIT_ENABLED", true),
		RequestsPerMinute: getEnvInt("RATE_LIMIT_RPM", 6),
		Burst:             getEnvInt("RATE_LIMIT_BURST", 3),
		DuplicateWindow:   getEnvInt("RATE_LIMIT_DUPLICATE_WINDOW", 30),
	}
}

// NewSchedulerConfig creates a scheduler configuration with default values populated from environment variables
func NewSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		Enabled:        getEnvBool("SCHEDULER_ENABLED", true),
		RelayProbeCron: getEnv("SCHEDULER_RELAY_PROBE_CRON", "*/10 * * * *"),
		TokenPruneCron: getEnv("SCHEDULER_TOKEN_PRUNE_CRON", "*/15 * * * *"),
		LogFlushCron:   getEnv("SCHEDULER_LOG_FLUSH_CRON", "* * * * *"),
	}
}

// NewAppConfig creates an application configuration with default values populated from environment variables
func NewAppConfig() *AppConfig {
	return &AppConfig{
		Environment:   getEnv("APP_ENV", "production"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", "./logs/frotaweb.log"),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
	}
}

// SEOBuilder turns the site section into a canonical URL / JSON-LD builder
func (s *SiteConfig) SEOBuilder() *seo.Builder {
	return seo.NewBuilder(seo.Builder{
		Domain:      s.Domain,
		OrgName:     s.OrgName,
		Email:       s.Email,
		Phone:       s.Phone,
		LogoPath:    s.LogoPath,
		ContactType: s.ContactType,
	})
}

// TimeoutDuration returns the relay timeout as a duration
func (r *RelayConfig) TimeoutDuration() time.Duration {
	return time.Duration(r.Timeout) * time.Second
}

// DuplicateWindowDuration returns the duplicate window as a duration
func (r *RateLimitConfig) DuplicateWindowDuration() time.Duration {
	return time.Duration(r.DuplicateWindow) * time.Minute
}
