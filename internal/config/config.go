// Package config handles loading and validating the sync service
// configuration from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

// Config is the top-level application configuration.
type Config struct {
	Stores        map[string]StoreConfig `yaml:"stores"`
	DefaultStore  string                 `yaml:"default_store"`
	Throttle      ThrottleConfig         `yaml:"throttle"`
	Mock          MockConfig             `yaml:"mock"`
	Server        ServerConfig           `yaml:"server"`
	Database      DatabaseConfig         `yaml:"database"`
	Sync          SyncConfig             `yaml:"sync"`
	Archive       ArchiveConfig          `yaml:"archive"`
	Notifications NotificationsConfig    `yaml:"notifications"`
	Telemetry     TelemetryConfig        `yaml:"telemetry"`
	Logging       LoggingConfig          `yaml:"logging"`
}

// StoreConfig holds the credentials of one seller account.
type StoreConfig struct {
	SellerID      string `yaml:"seller_id"`
	MarketplaceID string `yaml:"marketplace_id"`
	AccessKeyID   string `yaml:"access_key_id"`
	SecretKey     string `yaml:"secret_key"`
	AuthToken     string `yaml:"auth_token"`
	ServiceURL    string `yaml:"service_url"`
}

// Credentials converts the store entry into client credentials.
func (s StoreConfig) Credentials() mws.Credentials {
	return mws.Credentials{
		SellerID:      s.SellerID,
		MarketplaceID: s.MarketplaceID,
		AccessKeyID:   s.AccessKeyID,
		SecretKey:     s.SecretKey,
		AuthToken:     s.AuthToken,
		ServiceURL:    s.ServiceURL,
	}
}

// ThrottleConfig tunes client-side throttling.
type ThrottleConfig struct {
	MaxRetries int                      `yaml:"max_retries"`
	Stop       bool                     `yaml:"stop"`
	Groups     map[string]GroupOverride `yaml:"groups"`
}

// GroupOverride replaces the built-in quota of one throttle group.
type GroupOverride struct {
	MaxQuota     int           `yaml:"max_quota"`
	RestoreEvery time.Duration `yaml:"restore_every"`
}

// NewThrottle builds a Throttle with the configured group overrides.
func (t ThrottleConfig) NewThrottle() *mws.Throttle {
	opts := make([]mws.ThrottleOption, 0, len(t.Groups))
	for group, o := range t.Groups {
		opts = append(opts, mws.WithGroupLimit(group, mws.GroupLimit{
			MaxQuota:     o.MaxQuota,
			RestoreEvery: o.RestoreEvery,
		}))
	}
	return mws.NewThrottle(opts...)
}

// MockConfig replays fixture files instead of calling the service.
type MockConfig struct {
	Enabled bool     `yaml:"enabled"`
	Dir     string   `yaml:"dir"`
	Entries []string `yaml:"entries"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// SyncConfig drives the scheduled order sync and report archive jobs.
type SyncConfig struct {
	OrderInterval  time.Duration `yaml:"order_interval"`
	Lookback       time.Duration `yaml:"lookback"`
	FetchItems     bool          `yaml:"fetch_items"`
	OrderStatuses  []string      `yaml:"order_statuses"`
	MaxPages       int           `yaml:"max_pages"`
	ReportInterval time.Duration `yaml:"report_interval"`
	ReportTypes    []string      `yaml:"report_types"`
	Acknowledge    bool          `yaml:"acknowledge"`
	StaggerOffset  time.Duration `yaml:"stagger_offset"`
}

// ArchiveConfig points at the S3-compatible bucket receiving report bodies.
type ArchiveConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	UsePathStyle    bool   `yaml:"use_path_style"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
	// NotifySuccess also posts a summary for jobs that finished cleanly.
	NotifySuccess bool `yaml:"notify_success"`
}

// TelemetryConfig enables OTLP trace and metric export.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	ServiceName string  `yaml:"service_name"`
	Environment string  `yaml:"environment"`
	SampleRate  float64 `yaml:"sample_rate"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, logfmt
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse is Load without the file read.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Store returns the named store, or the default store when name is empty.
func (c *Config) Store(name string) (StoreConfig, error) {
	if name == "" {
		name = c.DefaultStore
	}
	s, ok := c.Stores[name]
	if !ok {
		return StoreConfig{}, fmt.Errorf("store %q is not configured", name)
	}
	return s, nil
}

// StoreNames lists the configured stores in sorted order.
func (c *Config) StoreNames() []string {
	names := make([]string, 0, len(c.Stores))
	for name := range c.Stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func applyDefaults(cfg *Config) {
	if cfg.DefaultStore == "" && len(cfg.Stores) == 1 {
		for name := range cfg.Stores {
			cfg.DefaultStore = name
		}
	}
	applyThrottleDefaults(&cfg.Throttle)
	applyMockDefaults(&cfg.Mock)
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applySyncDefaults(&cfg.Sync)
	applyArchiveDefaults(&cfg.Archive)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyThrottleDefaults(t *ThrottleConfig) {
	if t.MaxRetries == 0 {
		t.MaxRetries = 5
	}
}

func applyMockDefaults(m *MockConfig) {
	if m.Dir == "" {
		m.Dir = "testdata"
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applySyncDefaults(s *SyncConfig) {
	if s.OrderInterval == 0 {
		s.OrderInterval = 15 * time.Minute
	}
	if s.Lookback == 0 {
		s.Lookback = 72 * time.Hour
	}
	if s.ReportInterval == 0 {
		s.ReportInterval = time.Hour
	}
	if s.MaxPages == 0 {
		s.MaxPages = 50
	}
	if s.StaggerOffset == 0 {
		s.StaggerOffset = 30 * time.Second
	}
}

func applyArchiveDefaults(a *ArchiveConfig) {
	if a.Region == "" {
		a.Region = "us-east-1"
	}
	if a.Prefix == "" {
		a.Prefix = "reports/"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "mws-sync"
	}
	if t.SampleRate == 0 {
		t.SampleRate = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if len(cfg.Stores) == 0 {
		errs = append(errs, errors.New("at least one store is required"))
	}
	if cfg.DefaultStore != "" {
		if _, ok := cfg.Stores[cfg.DefaultStore]; !ok {
			errs = append(errs, fmt.Errorf("default_store %q is not a configured store", cfg.DefaultStore))
		}
	} else if len(cfg.Stores) > 1 {
		errs = append(errs, errors.New(
			"default_store is required when more than one store is configured",
		))
	}
	for _, name := range cfg.StoreNames() {
		s := cfg.Stores[name]
		if s.SellerID == "" {
			errs = append(errs, fmt.Errorf("stores.%s.seller_id is required", name))
		}
		if s.AccessKeyID == "" {
			errs = append(errs, fmt.Errorf("stores.%s.access_key_id is required", name))
		}
		if s.SecretKey == "" {
			errs = append(errs, fmt.Errorf("stores.%s.secret_key is required", name))
		}
	}

	if cfg.Throttle.MaxRetries < 0 {
		errs = append(errs, errors.New("throttle.max_retries must not be negative"))
	}
	for group, o := range cfg.Throttle.Groups {
		if o.MaxQuota <= 0 || o.RestoreEvery <= 0 {
			errs = append(errs, fmt.Errorf(
				"throttle.groups.%s needs a positive max_quota and restore_every", group,
			))
		}
	}

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	if cfg.Archive.Enabled && cfg.Archive.Bucket == "" {
		errs = append(errs, errors.New("archive.bucket is required when archive is enabled"))
	}
	if len(cfg.Sync.ReportTypes) > 0 && !cfg.Archive.Enabled {
		errs = append(errs, errors.New("sync.report_types requires archive.enabled"))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			errors.New("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	if cfg.Telemetry.SampleRate < 0 || cfg.Telemetry.SampleRate > 1 {
		errs = append(errs, errors.New("telemetry.sample_rate must be between 0 and 1"))
	}

	if !slices.Contains([]string{"text", "json", "logfmt"}, cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json, logfmt (got %q)", cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}
