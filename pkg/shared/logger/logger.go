package logger

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scangate/scangate/pkg/shared/config"
)

// NewLogger creates a new hclog.Logger instance based on the YAML configuration and the provided name.
func NewLogger(cfg *config.Config, name string) hclog.Logger {
	disableTime := true
	jsonFormat := false
	if cfg != nil {
		if cfg.Logger.DisableTime != nil {
			disableTime = *cfg.Logger.DisableTime
		}
		jsonFormat = cfg.Logger.JSONFormat
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: disableTime,
		JSONFormat:  jsonFormat,
		Output:      os.Stderr,
		Level:       determineLogLevel(cfg),
	})
	return logger
}

// determineLogLevel returns a log level determined first by an environment variable,
// and if not set, by the provided configuration. Defaults to INFO.
func determineLogLevel(cfg *config.Config) hclog.Level {
	if logLevelEnv := os.Getenv("SCANGATE_LOG_LEVEL"); logLevelEnv != "" {
		return parseLogLevel(strings.ToUpper(logLevelEnv))
	}
	if cfg != nil && cfg.Logger.Level != "" {
		return parseLogLevel(strings.ToUpper(cfg.Logger.Level))
	}
	return hclog.Info
}

// parseLogLevel converts a string level to hclog.Level.
func parseLogLevel(levelStr string) hclog.Level {
	switch levelStr {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	default:
		return hclog.Info
	}
}
