package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/hydrate/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hydrate.json"

	// DefaultEventPrefix marks event-handler props.
	DefaultEventPrefix = "on"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log output format.
	DefaultLogFormat = "text"

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "hydrate"

	// DefaultIndent is the default pretty-print indentation.
	DefaultIndent = "  "
)

// Config represents the complete hydrate.json configuration.
type Config struct {
	// EventPrefix is the prop prefix that marks event handlers.
	EventPrefix string `json:"eventPrefix,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Render contains server rendering configuration.
	Render RenderConfig `json:"render,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled turns on hydration counters.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`

	// Subsystem is the metrics subsystem.
	Subsystem string `json:"subsystem,omitempty"`
}

// RenderConfig contains server rendering configuration.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the string used for each indentation level.
	Indent string `json:"indent,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		EventPrefix: DefaultEventPrefix,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultMetricsNamespace,
		},
		Render: RenderConfig{
			Indent: DefaultIndent,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for hydrate.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C001").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path))
		}
		return nil, errors.New("C002").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C002").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("C002").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("C002").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.EventPrefix == "" {
		c.EventPrefix = DefaultEventPrefix
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.EventPrefix) != c.EventPrefix || c.EventPrefix == "" {
		return errors.New("C002").
			WithDetail("eventPrefix must be non-empty and contain no surrounding whitespace")
	}
	if _, ok := levels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("C002").
			WithDetailf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("C002").
			WithDetailf("log.format %q is not one of text, json", c.Log.Format)
	}
	if strings.TrimSpace(c.Render.Indent) != "" {
		return errors.New("C002").
			WithDetail("render.indent may only contain whitespace")
	}
	return nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	if lvl, ok := levels[strings.ToLower(c.Log.Level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// Logger builds a logger writing to w in the configured format and level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the nearest hydrate.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("C001").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadOrDefault loads hydrate.json from dir or any parent, falling back to
// defaults when none exists. Invalid files are still an error.
func LoadOrDefault(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		if errors.CodeOf(err) == "C001" {
			return New(), nil
		}
		return nil, err
	}
	return Load(root)
}
