package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Comparison ComparisonConfig `mapstructure:"comparison"`
	Tour       TourConfig       `mapstructure:"tour"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// StorageConfig selects the durable key-value backend for client state.
type StorageConfig struct {
	Backend string      `mapstructure:"backend"` // "redis" or "memory"
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CatalogConfig selects the property data source.
type CatalogConfig struct {
	Source   string         `mapstructure:"source"` // "static" or "postgres"
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// ComparisonConfig bounds the side-by-side comparison collection.
type ComparisonConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// TourConfig holds the tooltip panel geometry used for step placement.
type TourConfig struct {
	PanelWidth  float64 `mapstructure:"panel_width"`
	PanelHeight float64 `mapstructure:"panel_height"`
	Margin      float64 `mapstructure:"margin"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}
