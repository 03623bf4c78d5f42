package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	API         APIConfig         `yaml:"api"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Log         LogConfig         `yaml:"log"`
	Mock        MockConfig        `yaml:"mock"`
	AWS         AWSConfig         `yaml:"aws"`
}

// APIConfig holds the remote API settings
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"` // zero means no timeout
}

// CredentialsConfig holds where the remembered login is kept
type CredentialsConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// MockConfig holds the local mock API configuration
type MockConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	JWTSecret string `yaml:"jwt_secret"`
	Seed      bool   `yaml:"seed"`
}

// AWSConfig holds the optional S3 media storage of the mock API
type AWSConfig struct {
	Region    string `yaml:"region"`
	S3Bucket  string `yaml:"s3_bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"`
}

// Enabled reports whether S3 storage is configured
func (c AWSConfig) Enabled() bool {
	return c.S3Bucket != ""
}

// Default returns the configuration used when no file is present
func Default() *Config {
	credPath := "credentials.db"
	if dir, err := os.UserConfigDir(); err == nil {
		credPath = filepath.Join(dir, "tvshows", "credentials.db")
	}

	return &Config{
		API: APIConfig{
			BaseURL: "https://api.infinum.academy",
		},
		Credentials: CredentialsConfig{
			Path: credPath,
		},
		Log: LogConfig{
			Level: "info",
		},
		Mock: MockConfig{
			Host:      "127.0.0.1",
			Port:      8080,
			JWTSecret: "mock-secret",
			Seed:      true,
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TVSHOWS_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("TVSHOWS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TVSHOWS_CREDENTIALS_PATH"); v != "" {
		c.Credentials.Path = v
	}
	if v := os.Getenv("TVSHOWS_MOCK_JWT_SECRET"); v != "" {
		c.Mock.JWTSecret = v
	}
}

// Addr returns the listen address of the mock API
func (c MockConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
