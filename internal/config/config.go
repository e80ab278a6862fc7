package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Queue       QueueConfig       `mapstructure:"queue"`
	Worker      WorkerConfig      `mapstructure:"worker"`
	Aggregation AggregationConfig `mapstructure:"aggregation"`
	GeoIP       GeoIPConfig       `mapstructure:"geoip"`
	Privacy     PrivacyConfig     `mapstructure:"privacy"`
	Links       LinksConfig       `mapstructure:"links"`
	Bloom       BloomConfig       `mapstructure:"bloom"`
	RocketMQ    RocketMQConfig    `mapstructure:"rocketmq"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// LogConfig represents logging configuration.
// An empty File logs to stdout only.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DatabaseConfig represents database configuration.
// Postgres is used when Driver is "postgres".
type DatabaseConfig struct {
	Driver   string         `mapstructure:"driver"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// PostgresConfig represents PostgreSQL configuration
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig configures the resolution cache.
// LocalTTL enables the in-process L1 cache when positive.
type CacheConfig struct {
	TTL          time.Duration `mapstructure:"ttl"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	StoreTimeout time.Duration `mapstructure:"store_timeout"`
	LocalTTL     time.Duration `mapstructure:"local_ttl"`
}

// QueueConfig configures the click event channel.
// DispatchBuffer bounds the events waiting to be enqueued by the resolver.
type QueueConfig struct {
	Driver         string        `mapstructure:"driver"`
	Name           string        `mapstructure:"name"`
	MaxAttempts    int           `mapstructure:"max_attempts"`
	BaseBackoff    time.Duration `mapstructure:"base_backoff"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	DispatchBuffer int           `mapstructure:"dispatch_buffer"`
	EnqueueTimeout time.Duration `mapstructure:"enqueue_timeout"`
}

// WorkerConfig configures the enrichment worker pool
type WorkerConfig struct {
	Concurrency    int           `mapstructure:"concurrency"`
	MaxPerSecond   float64       `mapstructure:"max_per_second"`
	ProcessTimeout time.Duration `mapstructure:"process_timeout"`
	RepairInterval time.Duration `mapstructure:"repair_interval"`
}

// AggregationConfig configures the rollup retry policy
type AggregationConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	BaseBackoff time.Duration `mapstructure:"base_backoff"`
}

// GeoIPConfig points at a MaxMind City database
type GeoIPConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}

// PrivacyConfig configures IP hashing
type PrivacyConfig struct {
	IPSalt string `mapstructure:"ip_salt"`
}

// LinksConfig configures link creation
type LinksConfig struct {
	CodeLength       int `mapstructure:"code_length"`
	MaxRetries       int `mapstructure:"max_retries"`
	MaxLinksPerOwner int `mapstructure:"max_links_per_owner"`
}

// BloomConfig represents Bloom Filter configuration
type BloomConfig struct {
	Capacity  int64   `mapstructure:"capacity"`
	ErrorRate float64 `mapstructure:"error_rate"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// Load loads configuration from file. Every key can be overridden by a
// LINKPULSE_ prefixed environment variable, e.g. LINKPULSE_DATABASE_REDIS_ADDR.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("LINKPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(v, cfg.Database.Redis.Password)
	cfg.Database.MySQL.DSN = expandEnv(v, cfg.Database.MySQL.DSN)
	cfg.Database.Postgres.DSN = expandEnv(v, cfg.Database.Postgres.DSN)
	cfg.Privacy.IPSalt = expandEnv(v, cfg.Privacy.IPSalt)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values the defaults cannot repair
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Queue.Driver {
	case "redis", "rocketmq":
	default:
		return fmt.Errorf("unsupported queue driver %q", c.Queue.Driver)
	}
	if c.Queue.Driver == "rocketmq" && c.RocketMQ.NameServer == "" {
		return fmt.Errorf("queue driver rocketmq requires rocketmq.nameserver")
	}
	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("worker.concurrency must be positive, got %d", c.Worker.Concurrency)
	}
	if c.Queue.MaxAttempts < 1 {
		return fmt.Errorf("queue.max_attempts must be positive, got %d", c.Queue.MaxAttempts)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.redis.addr", "localhost:6379")
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("cache.read_timeout", 200*time.Millisecond)
	v.SetDefault("cache.store_timeout", 2*time.Second)
	v.SetDefault("cache.local_ttl", 0)
	v.SetDefault("queue.driver", "redis")
	v.SetDefault("queue.name", "clicks")
	v.SetDefault("queue.max_attempts", 3)
	v.SetDefault("queue.base_backoff", time.Second)
	v.SetDefault("queue.poll_interval", 250*time.Millisecond)
	v.SetDefault("queue.dispatch_buffer", 4096)
	v.SetDefault("queue.enqueue_timeout", 2*time.Second)
	v.SetDefault("worker.concurrency", 10)
	v.SetDefault("worker.max_per_second", 200)
	v.SetDefault("worker.process_timeout", 10*time.Second)
	v.SetDefault("worker.repair_interval", time.Minute)
	v.SetDefault("aggregation.max_attempts", 3)
	v.SetDefault("aggregation.base_backoff", 200*time.Millisecond)
	v.SetDefault("links.code_length", 7)
	v.SetDefault("links.max_retries", 3)
	v.SetDefault("links.max_links_per_owner", 1000)
	v.SetDefault("bloom.capacity", 1000000000)
	v.SetDefault("bloom.error_rate", 0.01)
	v.SetDefault("rocketmq.topic", "click_events")
	v.SetDefault("rocketmq.group", "linkpulse_click_workers")
}

// expandEnv expands a "${KEY}" placeholder from the environment
func expandEnv(v *viper.Viper, s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		if err := v.BindEnv(envKey, envKey); err != nil {
			return ""
		}
		return v.GetString(envKey)
	}
	return s
}
