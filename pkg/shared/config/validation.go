package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks if the global configuration has valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := validateLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := validateScanner(&cfg.Scanner); err != nil {
		return fmt.Errorf("YAML global config: scanner directive is invalid: %w", err)
	}
	return nil
}

func validateLogger(loggerConfig *Logger) error {
	if loggerConfig.Level == "" {
		return nil
	}
	switch strings.ToUpper(loggerConfig.Level) {
	case "TRACE", "DEBUG", "INFO", "WARN", "ERROR":
		return nil
	default:
		return fmt.Errorf("unsupported log level %q", loggerConfig.Level)
	}
}

func validateScanner(scannerConfig *Scanner) error {
	if scannerConfig.Threads < 0 {
		return fmt.Errorf("threads must be a positive integer: %d", scannerConfig.Threads)
	}
	if scannerConfig.Threads > 64 {
		return fmt.Errorf("threads is too high: %d exceeds maximum of 64", scannerConfig.Threads)
	}
	if scannerConfig.Base64Limit < 0 || scannerConfig.Base64Limit > 6 {
		return fmt.Errorf("base64_limit must be between 0 and 6: %f", scannerConfig.Base64Limit)
	}
	if scannerConfig.HexLimit < 0 || scannerConfig.HexLimit > 4 {
		return fmt.Errorf("hex_limit must be between 0 and 4: %f", scannerConfig.HexLimit)
	}
	if scannerConfig.MaxFileSizeBytes < 0 {
		return fmt.Errorf("max_file_size_bytes cannot be negative: %d", scannerConfig.MaxFileSizeBytes)
	}
	return nil
}
