// Package config loads the service configuration from an optional .env
// file, an optional YAML file and the environment, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var (
	RemoteBackends = []string{"documents", "postgres", "none"}
	CacheBackends  = []string{"file", "memcache", "memory"}
	WritePolicies  = []string{"confirmed", "optimistic"}
	LogFormats     = []string{"json", "human"}
)

type Config struct {
	// HTTP server
	Port             string   `yaml:"port"`
	APIURL           string   `yaml:"api-url"`
	GinMode          string   `yaml:"gin-mode"`
	LogFormat        string   `yaml:"log-format"`
	CORSAllowOrigins []string `yaml:"cors-allow-origins"`
	EnablePprof      bool     `yaml:"enable-pprof"`

	// Storage
	DataDir       string   `yaml:"data-dir"`
	RemoteBackend string   `yaml:"remote-backend"`
	DatabaseURL   string   `yaml:"database-url"`
	CacheBackend  string   `yaml:"cache-backend"`
	MemcacheHosts []string `yaml:"memcache-hosts"`

	// Change events
	AMQPURL      string `yaml:"amqp-url"`
	AMQPExchange string `yaml:"amqp-exchange"`

	// Ledger
	WritePolicy    string        `yaml:"write-policy"`
	SeedSampleData bool          `yaml:"seed-sample-data"`
	SessionTTL     time.Duration `yaml:"session-ttl"`
	Timezone       string        `yaml:"timezone"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:           "8080",
		APIURL:         "http://localhost:8080",
		GinMode:        "release",
		LogFormat:      "json",
		DataDir:        "data",
		RemoteBackend:  "documents",
		CacheBackend:   "file",
		AMQPExchange:   "expenses",
		WritePolicy:    "confirmed",
		SeedSampleData: true,
		SessionTTL:     30 * 24 * time.Hour,
		Timezone:       "Local",
	}
}

// Load reads the configuration. A missing .env file is not an error, a
// missing file named by CONFIG_FILE is.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.APIURL = getEnv("API_URL", cfg.APIURL)
	cfg.GinMode = getEnv("GIN_MODE", cfg.GinMode)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.CORSAllowOrigins = getEnvList("CORS_ALLOW_ORIGINS", cfg.CORSAllowOrigins)
	cfg.EnablePprof = getEnvBool("ENABLE_PPROF", cfg.EnablePprof)

	cfg.DataDir = getEnv("DATA_DIR", cfg.DataDir)
	cfg.RemoteBackend = getEnv("REMOTE_BACKEND", cfg.RemoteBackend)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.CacheBackend = getEnv("CACHE_BACKEND", cfg.CacheBackend)
	cfg.MemcacheHosts = getEnvList("MEMCACHE_HOSTS", cfg.MemcacheHosts)

	cfg.AMQPURL = getEnv("AMQP_URL", cfg.AMQPURL)
	cfg.AMQPExchange = getEnv("AMQP_EXCHANGE", cfg.AMQPExchange)

	cfg.WritePolicy = getEnv("WRITE_POLICY", cfg.WritePolicy)
	cfg.SeedSampleData = getEnvBool("SEED_SAMPLE_DATA", cfg.SeedSampleData)
	cfg.SessionTTL = getEnvDuration("SESSION_TTL", cfg.SessionTTL)
	cfg.Timezone = getEnv("TIMEZONE", cfg.Timezone)

	return cfg, nil
}

// Validate validates the configuration and returns an error listing all problems.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid API URL '%s': must be an absolute URL", c.APIURL))
	}

	if !slices.Contains(LogFormats, c.LogFormat) {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, LogFormats))
	}

	if !slices.Contains(RemoteBackends, c.RemoteBackend) {
		problems = append(problems, fmt.Sprintf("invalid remote backend '%s': must be one of %v", c.RemoteBackend, RemoteBackends))
	}

	if c.RemoteBackend == "postgres" && c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL is required when using the postgres remote backend")
	}

	if !slices.Contains(CacheBackends, c.CacheBackend) {
		problems = append(problems, fmt.Sprintf("invalid cache backend '%s': must be one of %v", c.CacheBackend, CacheBackends))
	}

	if c.CacheBackend == "memcache" && len(c.MemcacheHosts) == 0 {
		problems = append(problems, "MEMCACHE_HOSTS is required when using the memcache cache backend")
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", u.Scheme))
		}

		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if !slices.Contains(WritePolicies, c.WritePolicy) {
		problems = append(problems, fmt.Sprintf("invalid write policy '%s': must be one of %v", c.WritePolicy, WritePolicies))
	}

	if c.SessionTTL <= 0 {
		problems = append(problems, fmt.Sprintf("invalid session TTL %v: must be positive", c.SessionTTL))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// Location returns the configured time zone. Call Validate first.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList splits the value on whitespace and commas.
func getEnvList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
	}
	return defaultValue
}
