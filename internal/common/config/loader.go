package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like STORAGE_REDIS_ADDRESS
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored when not present.
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "estatehub"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "memory"
	}
	if cfg.Storage.Redis.Address == "" {
		cfg.Storage.Redis.Address = "localhost:6379"
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "static"
	}
	if cfg.Catalog.Postgres.MaxConnections == 0 {
		cfg.Catalog.Postgres.MaxConnections = 10
	}
	if cfg.Catalog.Postgres.MaxIdle == 0 {
		cfg.Catalog.Postgres.MaxIdle = 5
	}
	if cfg.Catalog.Postgres.SSLMode == "" {
		cfg.Catalog.Postgres.SSLMode = "disable"
	}
	if cfg.Comparison.Capacity == 0 {
		cfg.Comparison.Capacity = 3
	}
	if cfg.Tour.PanelWidth == 0 {
		cfg.Tour.PanelWidth = 320
	}
	if cfg.Tour.PanelHeight == 0 {
		cfg.Tour.PanelHeight = 200
	}
	if cfg.Tour.Margin == 0 {
		cfg.Tour.Margin = 20
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9102"
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Storage.Backend {
	case "redis", "memory":
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	switch cfg.Catalog.Source {
	case "static":
	case "postgres":
		if cfg.Catalog.Postgres.Host == "" {
			return fmt.Errorf("catalog source is postgres but no host configured")
		}
	default:
		return fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	if cfg.Comparison.Capacity < 1 {
		return fmt.Errorf("comparison capacity must be at least 1, got %d", cfg.Comparison.Capacity)
	}

	return nil
}
