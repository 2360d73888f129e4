package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// MinPort is the minimum valid port number
	MinPort = 1
	// MaxPort is the maximum valid port number
	MaxPort = 65535
)

// Config represents the complete application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	App         AppConfig         `yaml:"app"`
	Marketplace MarketplaceConfig `yaml:"marketplace"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"`
	Output       string `yaml:"output"`
	EnableCaller bool   `yaml:"enable_caller"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

// MarketplaceConfig holds the engine's workflow settings and the fixed
// cleaning-service price list.
type MarketplaceConfig struct {
	Mode     string          `yaml:"mode"` // offers or direct
	SeedDemo bool            `yaml:"seed_demo"`
	Services []ServiceConfig `yaml:"services"`
}

// ServiceConfig is one entry of the service catalog
type ServiceConfig struct {
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`
}

// Load reads and parses the configuration file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port < MinPort || c.Server.Port > MaxPort {
		return fmt.Errorf("invalid server port: %d (must be between %d and %d)", c.Server.Port, MinPort, MaxPort)
	}

	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}

	switch c.Marketplace.Mode {
	case "offers", "direct":
	case "":
		return fmt.Errorf("marketplace mode is required")
	default:
		return fmt.Errorf("invalid marketplace mode: %q (must be offers or direct)", c.Marketplace.Mode)
	}

	if c.Marketplace.Mode == "direct" && len(c.Marketplace.Services) == 0 {
		return fmt.Errorf("direct mode requires a service catalog")
	}

	for i, svc := range c.Marketplace.Services {
		if svc.Name == "" {
			return fmt.Errorf("service %d: name is required", i)
		}
		if svc.Price <= 0 {
			return fmt.Errorf("service %q: price must be greater than 0", svc.Name)
		}
	}

	return nil
}
