package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the top-level YAML configuration for scangate.
type Config struct {
	Logger  Logger  `yaml:"logger"`
	Scanner Scanner `yaml:"scanner"`
}

// Logger holds logging configuration.
type Logger struct {
	Level       string `yaml:"level"`
	JSONFormat  bool   `yaml:"json_format"`
	DisableTime *bool  `yaml:"disable_time"`
}

// Scanner holds detection and tree-walk configuration.
type Scanner struct {
	Threads          int       `yaml:"threads,omitempty"`
	Exclude          []Exclude `yaml:"exclude,omitempty"`
	Base64Limit      float64   `yaml:"base64_limit,omitempty"`
	HexLimit         float64   `yaml:"hex_limit,omitempty"`
	UseGitleaks      bool      `yaml:"use_gitleaks,omitempty"`
	DisabledPlugins  []string  `yaml:"disabled_plugins,omitempty"`
	MaxFileSizeBytes int64     `yaml:"max_file_size_bytes,omitempty"`
}

// Exclude represents a single exclusion rule.
type Exclude struct {
	Message string   `yaml:"message,omitempty"`
	Paths   []string `yaml:"paths,omitempty"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Logger: Logger{
			Level: "INFO",
		},
		Scanner: Scanner{
			Threads:     1,
			Base64Limit: 4.5,
			HexLimit:    3.0,
			Exclude: []Exclude{
				{
					Message: "3rd-party dependencies",
					Paths:   []string{"vendor/", "node_modules/"},
				},
				{
					Message: "VCS internals",
					Paths:   []string{".git/"},
				},
				{
					Message: "lock files",
					Paths:   []string{"go.sum", "package-lock.json", "Pipfile.lock", "composer.lock"},
				},
			},
			MaxFileSizeBytes: 1 << 20,
		},
	}
}

// ValidateConfigPath checks the given path points at a readable regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML document at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the YAML config at configPath, filling unset values with
// defaults. An empty configPath yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	loaded := &Config{}
	if err := LoadYAML(configPath, loaded); err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
	}
	mergeDefaults(loaded, cfg)

	return loaded, nil
}

// mergeDefaults fills zero-valued fields of cfg from defaults.
func mergeDefaults(cfg, defaults *Config) {
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = defaults.Logger.Level
	}
	if cfg.Scanner.Threads == 0 {
		cfg.Scanner.Threads = defaults.Scanner.Threads
	}
	if cfg.Scanner.Base64Limit == 0 {
		cfg.Scanner.Base64Limit = defaults.Scanner.Base64Limit
	}
	if cfg.Scanner.HexLimit == 0 {
		cfg.Scanner.HexLimit = defaults.Scanner.HexLimit
	}
	if cfg.Scanner.MaxFileSizeBytes == 0 {
		cfg.Scanner.MaxFileSizeBytes = defaults.Scanner.MaxFileSizeBytes
	}
	if len(cfg.Scanner.Exclude) == 0 {
		cfg.Scanner.Exclude = defaults.Scanner.Exclude
	}
}

// ExcludePaths flattens all exclusion rules into a single path list.
func (c *Config) ExcludePaths() []string {
	var paths []string
	for _, rule := range c.Scanner.Exclude {
		paths = append(paths, rule.Paths...)
	}
	return paths
}
