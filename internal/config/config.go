package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Server   ServerConfig   `yaml:"server"`
	Sources  SourcesConfig  `yaml:"sources"`
	Sync     SyncConfig     `yaml:"sync"`
	Images   ImagesConfig   `yaml:"images"`
	Cleanup  CleanupConfig  `yaml:"cleanup"`
	LogLevel string         `yaml:"log_level"`
}

// RabbitMQConfig is optional: an empty URL disables run summary publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL is the same connection in URL form, as golang-migrate expects it.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	GinMode           string        `yaml:"gin_mode"`
}

type SourcesConfig struct {
	Encar    SourceConfig `yaml:"encar"`
	Che168   SourceConfig `yaml:"che168"`
	Dubicars SourceConfig `yaml:"dubicars"`
}

type SourceConfig struct {
	Enabled bool          `yaml:"enabled"`
	BaseURL string        `yaml:"base_url"`
	V1URL   string        `yaml:"v1_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
	Retry   RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type SyncConfig struct {
	Interval                 time.Duration `yaml:"interval"`
	Mode                     string        `yaml:"mode"`
	MaxPages                 int           `yaml:"max_pages"`
	PageDelay                time.Duration `yaml:"page_delay"`
	BatchSize                int           `yaml:"batch_size"`
	TimeBudget               time.Duration `yaml:"time_budget"`
	RunTimeout               time.Duration `yaml:"run_timeout"`
	StaleRunAfter            time.Duration `yaml:"stale_run_after"`
	MaxConsecutivePageErrors int           `yaml:"max_consecutive_page_errors"`
	RemoveStale              bool          `yaml:"remove_stale"`
	BackfillDays             int           `yaml:"backfill_days"`
}

type ImagesConfig struct {
	SafetyMargin   time.Duration `yaml:"safety_margin"`
	PermanentHosts []string      `yaml:"permanent_hosts"`
	ProxyHosts     []string      `yaml:"proxy_hosts"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout"`
	RetryAttempts  int           `yaml:"retry_attempts"`
	RetryDelay     time.Duration `yaml:"retry_delay"`
}

// CleanupConfig drives the scheduled cover image cleanup. It is off unless
// enabled.
type CleanupConfig struct {
	Enabled           bool          `yaml:"enabled"`
	Interval          time.Duration `yaml:"interval"`
	TimeBudget        time.Duration `yaml:"time_budget"`
	PageSize          int           `yaml:"page_size"`
	Concurrency       int           `yaml:"concurrency"`
	CheckReachability bool          `yaml:"check_reachability"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "vehicle_sync"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "sync_runs"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "sync_run_summaries"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Server.ReadHeaderTimeout == 0 {
		c.Server.ReadHeaderTimeout = 10 * time.Second
	}
	if c.Server.GinMode == "" {
		c.Server.GinMode = "release"
	}

	c.Sources.Encar.setDefaults("https://api1.auto-api.com/api/v2/encar", "https://api1.auto-api.com/api/v1")
	c.Sources.Che168.setDefaults("https://api1.auto-api.com/api/v2/che168", "https://api1.auto-api.com/api/v1")
	c.Sources.Dubicars.setDefaults("https://api1.auto-api.com/api/v2/dubicars", "")

	if c.Sync.Interval == 0 {
		c.Sync.Interval = time.Hour
	}
	if c.Sync.Mode == "" {
		c.Sync.Mode = "changes"
	}
	if c.Sync.MaxPages == 0 {
		c.Sync.MaxPages = 100
	}
	if c.Sync.PageDelay == 0 {
		c.Sync.PageDelay = 150 * time.Millisecond
	}
	if c.Sync.BatchSize == 0 {
		c.Sync.BatchSize = 100
	}
	if c.Sync.TimeBudget == 0 {
		c.Sync.TimeBudget = 25 * time.Minute
	}
	if c.Sync.RunTimeout == 0 {
		c.Sync.RunTimeout = 30 * time.Minute
	}
	if c.Sync.StaleRunAfter == 0 {
		c.Sync.StaleRunAfter = time.Hour
	}
	if c.Sync.MaxConsecutivePageErrors == 0 {
		c.Sync.MaxConsecutivePageErrors = 5
	}
	if c.Sync.BackfillDays == 0 {
		c.Sync.BackfillDays = 90
	}

	if c.Images.SafetyMargin == 0 {
		c.Images.SafetyMargin = 5 * time.Minute
	}
	if len(c.Images.PermanentHosts) == 0 {
		c.Images.PermanentHosts = []string{"supabase.co", "encar.com", "autoimg.cn"}
	}
	if len(c.Images.ProxyHosts) == 0 {
		c.Images.ProxyHosts = []string{"byteimg.com", "tosv.byted.org", "dongchedi.com", "autoimg.cn"}
	}
	if c.Images.FetchTimeout == 0 {
		c.Images.FetchTimeout = 8 * time.Second
	}
	if c.Images.RetryAttempts == 0 {
		c.Images.RetryAttempts = 2
	}
	if c.Images.RetryDelay == 0 {
		c.Images.RetryDelay = time.Second
	}

	if c.Cleanup.Interval == 0 {
		c.Cleanup.Interval = 6 * time.Hour
	}
	if c.Cleanup.TimeBudget == 0 {
		c.Cleanup.TimeBudget = 10 * time.Minute
	}
	if c.Cleanup.PageSize == 0 {
		c.Cleanup.PageSize = 100
	}
	if c.Cleanup.Concurrency == 0 {
		c.Cleanup.Concurrency = 10
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (s *SourceConfig) setDefaults(baseURL, v1URL string) {
	if s.BaseURL == "" {
		s.BaseURL = baseURL
	}
	if s.V1URL == "" {
		s.V1URL = v1URL
	}
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
	if s.Retry.MaxAttempts == 0 {
		s.Retry.MaxAttempts = 3
	}
	if s.Retry.InitialBackoff == 0 {
		s.Retry.InitialBackoff = time.Second
	}
	if s.Retry.MaxBackoff == 0 {
		s.Retry.MaxBackoff = 30 * time.Second
	}
}
