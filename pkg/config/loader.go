package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration file at configPath. A missing file yields
// the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}

	config := &Config{}
	ext := filepath.Ext(configPath)

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: JSON parsing failed: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: YAML parsing failed: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	mergeEnvVars(config)
	return config, nil
}

// SaveConfig writes config to configPath in the format implied by its extension
func SaveConfig(config *Config, configPath string) error {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ext := filepath.Ext(configPath)
	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		return fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	if err != nil {
		return fmt.Errorf("config serialization failed: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getDefaultConfigPath searches the working directory, then the user config
// directory, then the system one.
func getDefaultConfigPath() string {
	paths := []string{
		"./config.yaml",
		"./config.json",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".frotaweb", "config.yaml"),
			filepath.Join(homeDir, ".frotaweb", "config.json"),
		)
	}

	paths = append(paths,
		"/etc/frotaweb/config.yaml",
		"/etc/frotaweb/config.json",
	)

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "./config.yaml"
}

// mergeEnvVars lets environment variables override values read from the file
func mergeEnvVars(config *Config) {
	mergeServerEnvVars(config)
	mergeSiteEnvVars(config)
	mergeRelayEnvVars(config)
	mergeRateLimitEnvVars(config)
	mergeSchedulerEnvVars(config)
	mergeAppEnvVars(config)
}

// applyEnvMappings copies every set variable into the field it points at
func applyEnvMappings(envMappings map[string]interface{}) {
	for envKey, fieldPtr := range envMappings {
		value := os.Getenv(envKey)
		if value == "" {
			continue
		}
		switch ptr := fieldPtr.(type) {
		case *int:
			if intVal := getEnvInt(envKey, 0); intVal != 0 {
				*ptr = intVal
			}
		case *string:
			*ptr = value
		case *bool:
			*ptr = value == "true" || value == "1"
		case *[]string:
			*ptr = parseStringList(value)
		}
	}
}

func mergeServerEnvVars(config *Config) {
	if config.Server == nil {
		config.Server = NewServerConfig()
		return
	}

	s := config.Server
	applyEnvMappings(map[string]interface{}{
		"SERVER_PORT":             &s.Port,
		"SERVER_ADDRESS":          &s.Address,
		"SERVER_READ_TIMEOUT":     &s.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":    &s.WriteTimeout,
		"SERVER_SHUTDOWN_TIMEOUT": &s.ShutdownTimeout,
		"ASSETS_DIR":              &s.AssetsDir,
		"SERVER_ALLOWED_ORIGINS":  &s.AllowedOrigins,
		"SERVER_ENABLE_SWAGGER":   &s.EnableSwagger,
	})
}

func mergeSiteEnvVars(config *Config) {
	if config.Site == nil {
		config.Site = NewSiteConfig()
		return
	}

	s := config.Site
	applyEnvMappings(map[string]interface{}{
		"SITE_DOMAIN":         &s.Domain,
		"SITE_ORG_NAME":       &s.OrgName,
		"SITE_EMAIL":          &s.Email,
		"SITE_FINANCE_EMAIL":  &s.FinanceEmail,
		"SITE_PHONE":          &s.Phone,
		"SITE_LOGO_PATH":      &s.LogoPath,
		"SITE_CONTACT_TYPE":   &s.ContactType,
		"SITE_DEFAULT_LOCALE": &s.DefaultLocale,
	})
}

func mergeRelayEnvVars(config *Config) {
	if config.Relay == nil {
		config.Relay = NewRelayConfig()
	} else {
		r := config.Relay
		applyEnvMappings(map[string]interface{}{
			"RELAY_BASE_URL":   &r.BaseURL,
			"RELAY_EMAIL":      &r.Email,
			"RELAY_TIMEOUT":    &r.Timeout,
			"RELAY_USER_AGENT": &r.UserAgent,
		})
	}

	// The relay delivers to the site mailbox unless told otherwise.
	if config.Relay.Email == "" && config.Site != nil {
		config.Relay.Email = config.Site.Email
	}
}

func mergeRateLimitEnvVars(config *Config) {
	if config.RateLimit == nil {
		config.RateLimit = NewRateLimitConfig()
		return
	}

	r := config.RateLimit
	applyEnvMappings(map[string]interface{}{
		"RATE_LIMIT_ENABLED":          &r.Enabled,
		"RATE_LIMIT_RPM":              &r.RequestsPerMinute,
		"RATE_LIMIT_BURST":            &r.Burst,
		"RATE_LIMIT_DUPLICATE_WINDOW": &r.DuplicateWindow,
	})
}

func mergeSchedulerEnvVars(config *Config) {
	if config.Scheduler == nil {
		config.Scheduler = NewSchedulerConfig()
		return
	}

	s := config.Scheduler
	applyEnvMappings(map[string]interface{}{
		"SCHEDULER_ENABLED":          &s.Enabled,
		"SCHEDULER_RELAY_PROBE_CRON": &s.RelayProbeCron,
		"SCHEDULER_TOKEN_PRUNE_CRON": &s.TokenPruneCron,
		"SCHEDULER_LOG_FLUSH_CRON":   &s.LogFlushCron,
	})
}

func mergeAppEnvVars(config *Config) {
	if config.App == nil {
		config.App = NewAppConfig()
		return
	}

	a := config.App
	applyEnvMappings(map[string]interface{}{
		"APP_ENV":          &a.Environment,
		"LOG_LEVEL":        &a.LogLevel,
		"LOG_FILE":         &a.LogFile,
		"LOG_MAX_SIZE_MB":  &a.LogMaxSizeMB,
		"LOG_MAX_BACKUPS":  &a.LogMaxBackups,
		"LOG_MAX_AGE_DAYS": &a.LogMaxAgeDays,
	})
}
