package cacik

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Backends a report can be sent to.
const (
	BackendHTTP    = "http"
	BackendConsole = "console"
)

// Launch modes understood by ReportPortal.
const (
	ModeDefault = "DEFAULT"
	ModeDebug   = "DEBUG"
)

// Reporting flavors.
const (
	FlavorScenario = "scenario"
	FlavorStep     = "step"
)

// DefaultConfigFile is read when no --config flag is given and the file exists.
const DefaultConfigFile = "reportportal.yaml"

var (
	ErrMissingEndpoint = errors.New("reportportal endpoint is required")
	ErrMissingProject  = errors.New("reportportal project is required")
	ErrMissingAPIKey   = errors.New("reportportal api key is required")
	ErrInvalidMode     = errors.New("launch mode must be DEFAULT or DEBUG")
	ErrInvalidFlavor   = errors.New("flavor must be scenario or step")
	ErrInvalidBackend  = errors.New("backend must be http or console")
)

// Config holds the settings of a reporting run.
// Settings are merged from defaults, the YAML file, the environment and CLI
// flags, in that order (last wins).
type Config struct {
	// Endpoint is the ReportPortal base URL, e.g. https://rp.example.com.
	Endpoint string `yaml:"endpoint"`

	// Project is the ReportPortal project name.
	Project string `yaml:"project"`

	// APIKey is sent as a bearer token.
	APIKey string `yaml:"api_key"`

	// Launch is the launch name.
	Launch string `yaml:"launch"`

	// Description is the launch description.
	Description string `yaml:"description"`

	// Tags are attached to the launch as attributes.
	Tags []string `yaml:"tags"`

	// Mode is DEFAULT or DEBUG.
	Mode string `yaml:"mode"`

	// Flavor selects the hierarchy layout: "scenario" or "step".
	Flavor string `yaml:"flavor"`

	// Backend is "http" (ReportPortal) or "console".
	Backend string `yaml:"backend"`

	// Timeout bounds every HTTP call to the backend.
	Timeout time.Duration `yaml:"timeout"`

	// NoColor disables colored console output.
	NoColor bool `yaml:"no_color"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`

	// Logger sets a custom logger. If nil, default slog logger is used.
	Logger Logger `yaml:"-"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() *Config {
	return &Config{
		Launch:    "cacik-rp",
		Mode:      ModeDefault,
		Flavor:    FlavorStep,
		Backend:   BackendHTTP,
		Timeout:   30 * time.Second,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ConfigFromEnv builds a config from RP_* environment variables.
// Unset variables leave the corresponding field empty.
func ConfigFromEnv() *Config {
	cfg := &Config{
		Endpoint:  os.Getenv("RP_ENDPOINT"),
		Project:   os.Getenv("RP_PROJECT"),
		APIKey:    os.Getenv("RP_API_KEY"),
		Launch:    os.Getenv("RP_LAUNCH"),
		Mode:      os.Getenv("RP_MODE"),
		Flavor:    os.Getenv("RP_FLAVOR"),
		Backend:   os.Getenv("RP_BACKEND"),
		LogLevel:  os.Getenv("RP_LOG_LEVEL"),
		LogFormat: os.Getenv("RP_LOG_FORMAT"),
	}

	if tags := os.Getenv("RP_TAGS"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				cfg.Tags = append(cfg.Tags, tag)
			}
		}
	}

	return cfg
}

// ResolveConfig merges the defaults, the YAML file at path and the RP_*
// environment. An empty path reads DefaultConfigFile when it exists.
func ResolveConfig(path string) (*Config, error) {
	var file *Config
	switch {
	case path != "":
		cfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		file = cfg
	default:
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfg, err := LoadConfig(DefaultConfigFile)
			if err != nil {
				return nil, err
			}
			file = cfg
		}
	}

	return MergeConfigs(DefaultConfig(), file, ConfigFromEnv()), nil
}

// MergeConfigs combines multiple configs into one.
// Later configs override earlier ones (last wins). Zero values never
// override.
func MergeConfigs(configs ...*Config) *Config {
	result := &Config{}

	for _, cfg := range configs {
		if cfg == nil {
			continue
		}

		if cfg.Endpoint != "" {
			result.Endpoint = cfg.Endpoint
		}
		if cfg.Project != "" {
			result.Project = cfg.Project
		}
		if cfg.APIKey != "" {
			result.APIKey = cfg.APIKey
		}
		if cfg.Launch != "" {
			result.Launch = cfg.Launch
		}
		if cfg.Description != "" {
			result.Description = cfg.Description
		}
		if len(cfg.Tags) > 0 {
			result.Tags = append([]string(nil), cfg.Tags...)
		}
		if cfg.Mode != "" {
			result.Mode = strings.ToUpper(cfg.Mode)
		}
		if cfg.Flavor != "" {
			result.Flavor = strings.ToLower(cfg.Flavor)
		}
		if cfg.Backend != "" {
			result.Backend = strings.ToLower(cfg.Backend)
		}
		if cfg.Timeout > 0 {
			result.Timeout = cfg.Timeout
		}
		if cfg.NoColor {
			result.NoColor = true
		}
		if cfg.LogLevel != "" {
			result.LogLevel = cfg.LogLevel
		}
		if cfg.LogFormat != "" {
			result.LogFormat = strings.ToLower(cfg.LogFormat)
		}
		if cfg.Logger != nil {
			result.Logger = cfg.Logger
		}
	}

	return result
}

// Validate checks that the config can drive a run.
// Connection settings are only required for the http backend.
func (c *Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendHTTP:
		if c.Endpoint == "" {
			errs = append(errs, ErrMissingEndpoint)
		}
		if c.Project == "" {
			errs = append(errs, ErrMissingProject)
		}
		if c.APIKey == "" {
			errs = append(errs, ErrMissingAPIKey)
		}
	case BackendConsole:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBackend, c.Backend))
	}

	if c.Mode != ModeDefault && c.Mode != ModeDebug {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode))
	}
	if c.Flavor != FlavorScenario && c.Flavor != FlavorStep {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidFlavor, c.Flavor))
	}

	return errors.Join(errs...)
}
