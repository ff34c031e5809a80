// Package config provides configuration management.
// Files are JSON, or YAML when the extension is .yaml or .yml.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"focusgen/adapters/storage"
	"focusgen/core/catalog"
	"focusgen/core/output"
	"focusgen/core/profile"
	"focusgen/core/trend"
	"focusgen/core/validation"
	"focusgen/internal/errors"
	"focusgen/internal/logging"
)

// MaxRows is the largest row count a single dataset may request
const MaxRows = 1000

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Generation contains dataset defaults
	Generation GenerationConfig `json:"generation" yaml:"generation"`

	// Validation contains validator settings
	Validation ValidationConfig `json:"validation" yaml:"validation"`

	// Trend contains multi-month defaults
	Trend TrendConfig `json:"trend" yaml:"trend"`

	// Output contains output settings
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// GenerationConfig contains dataset defaults
type GenerationConfig struct {
	Profile      string   `json:"profile" yaml:"profile"`
	Distribution string   `json:"distribution" yaml:"distribution"`
	Providers    []string `json:"providers" yaml:"providers"`
	Rows         int      `json:"rows" yaml:"rows"`

	// MaxRows caps the rows of one dataset
	MaxRows int `json:"max_rows" yaml:"max_rows"`

	// Workers generating rows concurrently; 1 is sequential
	Workers int `json:"workers" yaml:"workers"`

	// Strict checks generator dependencies per row
	Strict bool `json:"strict" yaml:"strict"`

	// Seed 0 draws a fresh seed per run
	Seed     uint64 `json:"seed" yaml:"seed"`
	Currency string `json:"currency" yaml:"currency"`

	// BillingPeriod is YYYY-MM; empty is 2024-01
	BillingPeriod string `json:"billing_period,omitempty" yaml:"billing_period,omitempty"`
}

// ValidationConfig contains validator settings
type ValidationConfig struct {
	Tier string `json:"tier" yaml:"tier"`
	Mode string `json:"mode" yaml:"mode"`
}

// TrendConfig contains multi-month defaults, used when a trend is requested
// without its own settings
type TrendConfig struct {
	Scenario   string             `json:"scenario" yaml:"scenario"`
	Months     int                `json:"months" yaml:"months"`
	Parameters map[string]float64 `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Options converts the section to trend options
func (t TrendConfig) Options() *trend.Options {
	scenario, _ := trend.ParseScenario(t.Scenario)
	return &trend.Options{Scenario: scenario, Months: t.Months, Parameters: trend.Parameters(t.Parameters)}
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Directory receives generated files
	Directory string `json:"directory" yaml:"directory"`

	// Format is csv or json
	Format string `json:"format" yaml:"format"`

	// Backend is file or zip
	Backend string `json:"backend" yaml:"backend"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Generation: GenerationConfig{
			Profile:      string(profile.Greenfield),
			Distribution: string(profile.EvenlyDistributed),
			Providers:    []string{catalog.AWS.Lower()},
			Rows:         100,
			MaxRows:      MaxRows,
			Workers:      1,
			Currency:     "USD",
		},
		Validation: ValidationConfig{
			Tier: string(validation.TierEnhanced),
			Mode: string(validation.ModeFailFast),
		},
		Trend: TrendConfig{
			Scenario: string(trend.Linear),
			Months:   6,
		},
		Output: OutputConfig{
			Directory: "output",
			Format:    string(output.FormatCSV),
			Backend:   string(storage.BackendFile),
		},
		Logging: logging.DefaultConfig(),
	}
}

// Validate checks every section
func (c *Config) Validate() error {
	g := c.Generation
	if g.MaxRows <= 0 {
		return errors.Newf(errors.TypeConfig, "generation.max_rows must be positive, got %d", g.MaxRows)
	}
	if g.Rows < 1 || g.Rows > g.MaxRows {
		return errors.Newf(errors.TypeConfig, "generation.rows must be between 1 and %d, got %d", g.MaxRows, g.Rows)
	}
	if g.Workers < 0 {
		return errors.Newf(errors.TypeConfig, "generation.workers must not be negative, got %d", g.Workers)
	}
	if _, err := profile.ParseProfile(g.Profile); err != nil {
		return errors.Config("generation.profile", err)
	}
	if _, err := profile.ParseDistribution(g.Distribution); err != nil {
		return errors.Config("generation.distribution", err)
	}
	if len(g.Providers) == 0 {
		return errors.New(errors.TypeConfig, "generation.providers must name at least one provider")
	}
	for _, p := range g.Providers {
		if _, err := catalog.ParseProvider(p); err != nil {
			return errors.Config("generation.providers", err)
		}
	}
	if _, err := validation.ParseTier(c.Validation.Tier); err != nil {
		return errors.Config("validation.tier", err)
	}
	if _, err := validation.ParseMode(c.Validation.Mode); err != nil {
		return errors.Config("validation.mode", err)
	}
	if _, ok := trend.ParseScenario(c.Trend.Scenario); !ok {
		return errors.Newf(errors.TypeConfig, "trend.scenario %q is not one of %v", c.Trend.Scenario, trend.Scenarios())
	}
	if c.Trend.Months < trend.MinMonths || c.Trend.Months > trend.MaxMonths {
		return errors.Newf(errors.TypeConfig, "trend.months must be between %d and %d, got %d",
			trend.MinMonths, trend.MaxMonths, c.Trend.Months)
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return errors.Config("output.format", err)
	}
	if _, err := storage.ParseBackend(c.Output.Backend); err != nil {
		return errors.Config("output.backend", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load loads configuration from a file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read "+path, err)
	}

	config := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to parse %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "invalid config %s", path)
	}
	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var (
	globalMu     sync.RWMutex
	globalConfig = Default()
)

// Get returns the global configuration
func Get() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = config
}
