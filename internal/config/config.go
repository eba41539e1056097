package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Bloom     BloomConfig     `mapstructure:"bloom"`
	RocketMQ  RocketMQConfig  `mapstructure:"rocketmq"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	Mode         string   `mapstructure:"mode"`
	Domain       string   `mapstructure:"domain"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig selects the link/analytics store.
// Driver is one of "mysql", "postgres" or "memory".
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	LinkCacheTTL time.Duration `mapstructure:"link_cache_ttl"`
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

// AnalyticsConfig controls how clicks are bucketed and fingerprinted
type AnalyticsConfig struct {
	Timezone        string `mapstructure:"timezone"`
	FingerprintSalt string `mapstructure:"fingerprint_salt"`
	CountryHeader   string `mapstructure:"country_header"`
}

// RateLimitConfig configures the per-IP limiter in front of the redirect routes.
// A zero RPS disables it.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Location resolves the analytics timezone. An empty value means server local time.
func (a AnalyticsConfig) Location() (*time.Location, error) {
	if a.Timezone == "" || strings.EqualFold(a.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid analytics timezone %q: %w", a.Timezone, err)
	}
	return loc, nil
}

// Global config instance
var cfg *Config

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	c.Database.DSN = expandEnv(c.Database.DSN)
	c.Redis.Password = expandEnv(c.Redis.Password)
	c.Analytics.FingerprintSalt = expandEnv(c.Analytics.FingerprintSalt)

	if err := c.validate(); err != nil {
		return nil, err
	}

	cfg = c
	return cfg, nil
}

// Get returns the global config instance
func Get() *Config {
	return cfg
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", c.Database.Driver)
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if _, err := c.Analytics.Location(); err != nil {
		return err
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allow_origins", []string{"*"})
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.link_cache_ttl", time.Hour)
	v.SetDefault("bloom.capacity", 100000000)
	v.SetDefault("bloom.error_rate", 0.01)
	v.SetDefault("rocketmq.topic", "click_events")
	v.SetDefault("rocketmq.group", "clickgate_consumer_group")
	v.SetDefault("analytics.country_header", "CF-IPCountry")
	v.SetDefault("ratelimit.rps", 0)
	v.SetDefault("ratelimit.burst", 20)
}

// expandEnv expands a "${NAME}" value from the environment
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}
