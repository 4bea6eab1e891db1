package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig configures the HTTP shell.
type ServerConfig struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
}

// AnalysisConfig configures the analytics engine.
type AnalysisConfig struct {
	// TopK bounds recommendation and influencer listings.
	TopK int `yaml:"top_k"`
	// LouvainMaxPasses caps community-detection aggregation rounds.
	LouvainMaxPasses int `yaml:"louvain_max_passes"`
	// MaxBetweennessNodes bounds the O(N·M) betweenness pass; 0 disables.
	MaxBetweennessNodes int `yaml:"max_betweenness_nodes"`
	// SuspiciousRatio flags nodes with clustering coefficient below
	// ratio × average; 0 disables flagging.
	SuspiciousRatio float64 `yaml:"suspicious_ratio"`
	// MaxSuspicious caps the flagged listing.
	MaxSuspicious int `yaml:"max_suspicious"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxUploadBytes: 8 << 20,
		},
		Analysis: AnalysisConfig{
			TopK:                5,
			LouvainMaxPasses:    100,
			MaxBetweennessNodes: 50000,
			SuspiciousRatio:     0.1,
			MaxSuspicious:       10,
		},
		Log: LogConfig{
			Level: "INFO",
		},
	}
}

// Load reads configuration from a YAML file layered over defaults, then
// applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers supported environment variables over the config.
func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// Validate checks all configuration ranges, collecting every violation.
func (c *Config) Validate() error {
	return NewValidator("config").
		PortRange("server.port", c.Server.Port).
		PositiveDuration("server.read_timeout", c.Server.ReadTimeout).
		PositiveDuration("server.write_timeout", c.Server.WriteTimeout).
		PositiveDuration("server.idle_timeout", c.Server.IdleTimeout).
		MinInt64("server.max_upload_bytes", c.Server.MaxUploadBytes, 1).
		MinInt("analysis.top_k", c.Analysis.TopK, 1).
		MaxInt("analysis.top_k", c.Analysis.TopK, 100).
		MinInt("analysis.louvain_max_passes", c.Analysis.LouvainMaxPasses, 1).
		MinInt("analysis.max_betweenness_nodes", c.Analysis.MaxBetweennessNodes, 0).
		FloatRange("analysis.suspicious_ratio", c.Analysis.SuspiciousRatio, 0.0, 1.0).
		MinInt("analysis.max_suspicious", c.Analysis.MaxSuspicious, 1).
		Err()
}
