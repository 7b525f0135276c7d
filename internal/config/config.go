// Package config loads and validates staticd configuration from an
// optional config file, environment variables, and built-in defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete staticd configuration
type Config struct {
	Environment string `json:"environment" mapstructure:"environment"`

	Server  ServerConfig  `json:"server" mapstructure:"server"`
	Content ContentConfig `json:"content" mapstructure:"content"`
	Cache   CacheConfig   `json:"cache" mapstructure:"cache"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ServerConfig contains the listening socket configuration
type ServerConfig struct {
	Host         string        `json:"host" mapstructure:"host"`
	Port         int           `json:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `json:"readTimeout" mapstructure:"readTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout" mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration `json:"idleTimeout" mapstructure:"idleTimeout"`
}

// ContentConfig contains the served content configuration
type ContentConfig struct {
	// Root is the directory all request paths are confined to
	Root string `json:"root" mapstructure:"root"`
	// IndexFile is served for directory requests
	IndexFile string `json:"indexFile" mapstructure:"indexFile"`
	// NotFoundFile is the optional custom 404 page under Root
	NotFoundFile string `json:"notFoundFile" mapstructure:"notFoundFile"`
}

// CacheConfig contains response caching configuration
type CacheConfig struct {
	// AssetMaxAgeSeconds is the Cache-Control max-age for non-HTML responses
	AssetMaxAgeSeconds int `json:"assetMaxAgeSeconds" mapstructure:"assetMaxAgeSeconds"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:         "",
			Port:         3000,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Content: ContentConfig{
			Root:         "public",
			IndexFile:    "index.html",
			NotFoundFile: "404.html",
		},
		Cache: CacheConfig{
			AssetMaxAgeSeconds: 3600,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads configuration from staticd.{json,yaml,toml} in searchPath,
// layered under environment variables. A missing config file is not an
// error; defaults apply.
func Load(searchPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("staticd")
	v.AddConfigPath(searchPath)

	v.SetEnvPrefix("STATICD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("environment", "STATICD_ENV")
	// PORT is the conventional deployment override
	_ = v.BindEnv("server.port", "STATICD_PORT", "PORT")
	_ = v.BindEnv("content.root", "STATICD_ROOT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("environment", defaults.Environment)
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.readTimeout", defaults.Server.ReadTimeout)
	v.SetDefault("server.writeTimeout", defaults.Server.WriteTimeout)
	v.SetDefault("server.idleTimeout", defaults.Server.IdleTimeout)
	v.SetDefault("content.root", defaults.Content.Root)
	v.SetDefault("content.indexFile", defaults.Content.IndexFile)
	v.SetDefault("content.notFoundFile", defaults.Content.NotFoundFile)
	v.SetDefault("cache.assetMaxAgeSeconds", defaults.Cache.AssetMaxAgeSeconds)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)
}

// ServerAddress returns the host:port the server listens on
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 1 and 65535"}
	}
	if c.Content.Root == "" {
		return &ConfigError{Field: "content.root", Message: "content root must not be empty"}
	}
	if c.Content.IndexFile == "" {
		return &ConfigError{Field: "content.indexFile", Message: "index file must not be empty"}
	}
	if c.Cache.AssetMaxAgeSeconds < 0 {
		return &ConfigError{Field: "cache.assetMaxAgeSeconds", Message: "max-age must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
