package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Company   CompanyConfig   `yaml:"company"`
	Pricing   PricingConfig   `yaml:"pricing"`
	JWT       JWTConfig       `yaml:"jwt"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Fleet     []FleetScooter  `yaml:"fleet"`
}

// ServerConfig contains HTTP and gRPC health listener settings
type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	GRPCPort int    `yaml:"grpc_port"`
}

// CompanyConfig names the rental company
type CompanyConfig struct {
	Name string `yaml:"name"`
}

// PricingConfig contains billing settings. Amounts are decimal strings.
type PricingConfig struct {
	DailyCap string `yaml:"daily_cap"`
}

// JWTConfig contains operator token settings. An empty secret disables operator auth.
type JWTConfig struct {
	Secret              string `yaml:"secret"`
	OperatorTokenExpiry int    `yaml:"operator_token_expiry_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings (with seconds)
type SchedulerConfig struct {
	ReportIncome string `yaml:"report_income"`
	ReportFleet  string `yaml:"report_fleet"`
}

// FleetScooter is a scooter registered at startup
type FleetScooter struct {
	ID             string `yaml:"id"`
	PricePerMinute string `yaml:"price_per_minute"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse builds a configuration from YAML bytes, applying env overrides and defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("GRPC_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.GRPCPort)
	}

	if val := os.Getenv("COMPANY_NAME"); val != "" {
		c.Company.Name = val
	}
	if val := os.Getenv("DAILY_CAP"); val != "" {
		c.Pricing.DailyCap = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.GRPCPort < 0 || c.Server.GRPCPort > 65535 {
		return fmt.Errorf("invalid gRPC port: %d", c.Server.GRPCPort)
	}
	if c.Server.GRPCPort != 0 && c.Server.GRPCPort == c.Server.Port {
		return fmt.Errorf("gRPC port must differ from server port")
	}

	if c.Company.Name == "" {
		c.Company.Name = "Scooter Rental"
	}

	// Pricing
	if c.Pricing.DailyCap == "" {
		c.Pricing.DailyCap = "20.0"
	}
	dailyCap, err := decimal.NewFromString(c.Pricing.DailyCap)
	if err != nil {
		return fmt.Errorf("invalid daily cap %q: %w", c.Pricing.DailyCap, err)
	}
	if !dailyCap.IsPositive() {
		return fmt.Errorf("daily cap must be greater than zero")
	}

	// JWT validation
	if c.JWT.Secret != "" && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.OperatorTokenExpiry == 0 {
		c.JWT.OperatorTokenExpiry = 12 * 60
	}

	// Scheduler defaults
	if c.Scheduler.ReportIncome == "" {
		c.Scheduler.ReportIncome = "0 0 * * * *" // hourly
	}
	if c.Scheduler.ReportFleet == "" {
		c.Scheduler.ReportFleet = "0 */15 * * * *" // every 15 minutes
	}

	for i, sc := range c.Fleet {
		if sc.ID == "" {
			return fmt.Errorf("fleet[%d]: scooter id is required", i)
		}
		if _, err := decimal.NewFromString(sc.PricePerMinute); err != nil {
			return fmt.Errorf("fleet[%d]: invalid price per minute %q: %w", i, sc.PricePerMinute, err)
		}
	}

	return nil
}

// GetDailyCap returns the validated daily cap
func (c *Config) GetDailyCap() decimal.Decimal {
	return decimal.RequireFromString(c.Pricing.DailyCap)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetGRPCAddress returns the gRPC health server address, or "" when disabled
func (c *Config) GetGRPCAddress() string {
	if c.Server.GRPCPort == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}

// AuthEnabled reports whether operator routes require a token
func (c *Config) AuthEnabled() bool {
	return c.JWT.Secret != ""
}
