package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	Storage StorageConfig
}

type StorageConfig struct {
	Driver       string
	DataPath     string
	DatabaseURL  string
	Key          string
	RepairOnLoad bool
}

var storageDrivers = map[string]bool{
	"file":     true,
	"sqlite":   true,
	"postgres": true,
	"memory":   true,
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	repairOnLoad, err := strconv.ParseBool(getEnv("REPAIR_ON_LOAD", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPAIR_ON_LOAD: %w", err)
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Storage: StorageConfig{
			Driver:       getEnv("STORAGE_DRIVER", "file"),
			DataPath:     getEnv("DATA_PATH", "./data"),
			DatabaseURL:  getEnv("DATABASE_URL", ""),
			Key:          getEnv("STORAGE_KEY", "@send_it_data"),
			RepairOnLoad: repairOnLoad,
		},
	}

	if !storageDrivers[cfg.Storage.Driver] {
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver == "postgres" && cfg.Storage.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
