package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the loaded configuration is usable
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("invalid server port %q", cfg.ServerPort)
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		return fmt.Errorf("database host, port and name are required")
	}
	if cfg.DBUser == "" {
		return fmt.Errorf("database user is required")
	}
	if IsProduction() && cfg.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required in production")
	}
	if cfg.LLMTimeout <= 0 {
		return fmt.Errorf("provider timeout must be positive")
	}
	return nil
}
