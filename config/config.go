// Package config loads reactor parameters, kernel resolution and logging
// settings. Values come from built-in defaults, then an optional YAML, TOML
// or JSON file, then PARAMAK_* environment variables, with later sources
// taking precedence. Nested keys map to environment variables by replacing
// dots with underscores: submersion.rotation_angle is
// PARAMAK_SUBMERSION_ROTATION_ANGLE.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/soypat/paramak"
	"github.com/soypat/paramak/kernel/sdfx"
	"github.com/soypat/paramak/reactor"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PARAMAK"

// Reactor kinds.
const (
	Submersion = "submersion"
	Cylinder   = "cylinder"
)

// Kernel configures the sdfx kernel.
type Kernel struct {
	Resolution int `mapstructure:"resolution" toml:"resolution" yaml:"resolution"`
	Facets     int `mapstructure:"facets" toml:"facets" yaml:"facets"`
	MeshCells  int `mapstructure:"mesh_cells" toml:"mesh_cells" yaml:"mesh_cells"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `mapstructure:"level" toml:"level" yaml:"level"`
	Development bool   `mapstructure:"development" toml:"development" yaml:"development"`
}

// Config holds everything needed to build and assemble one reactor.
type Config struct {
	// Reactor selects which reactor section is used.
	Reactor    string                    `mapstructure:"reactor" toml:"reactor" yaml:"reactor"`
	Submersion reactor.SubmersionTokamak `mapstructure:"submersion" toml:"submersion" yaml:"submersion"`
	Cylinder   reactor.CylinderReactor   `mapstructure:"cylinder" toml:"cylinder" yaml:"cylinder"`
	Kernel     Kernel                    `mapstructure:"kernel" toml:"kernel" yaml:"kernel"`
	Log        Log                       `mapstructure:"log" toml:"log" yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Reactor:    Submersion,
		Submersion: reactor.DefaultSubmersionTokamak(),
		Cylinder:   reactor.DefaultCylinderReactor(),
		Kernel:     Kernel{Resolution: sdfx.DefaultResolution, Facets: paramak.DefaultFacets, MeshCells: 200},
		Log:        Log{Level: "info"},
	}
}

// New returns a viper instance holding the defaults and reading PARAMAK_*
// environment overrides. Callers may bind flags to it before Load.
func New() (*viper.Viper, error) {
	v := viper.New()
	b, err := yaml.Marshal(Default())
	if err != nil {
		return nil, err
	}
	var defaults map[string]any
	if err := yaml.Unmarshal(b, &defaults); err != nil {
		return nil, err
	}
	setDefaults(v, "", defaults)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}

func setDefaults(v *viper.Viper, prefix string, m map[string]any) {
	for k, val := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := val.(map[string]any); ok {
			setDefaults(v, key, sub)
			continue
		}
		v.SetDefault(key, val)
	}
}

// Load reads the config file at path into v, if path is not empty, and
// decodes and validates the result. The file type follows the extension.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile is New followed by Load.
func LoadFile(path string) (Config, error) {
	v, err := New()
	if err != nil {
		return Config{}, err
	}
	return Load(v, path)
}

func (c Config) Validate() error {
	if c.Kernel.Resolution < 1 || c.Kernel.Facets < 1 || c.Kernel.MeshCells < 1 {
		return paramak.Paramf("config", "kernel", "resolution, facets and mesh cells must be positive, got %+v", c.Kernel)
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return paramak.Paramf("config", "log.level", "%v", err)
	}
	if _, err := c.Build(); err != nil {
		return err
	}
	// every reactor section must be valid, not only the selected one.
	if err := c.Submersion.Validate(); err != nil {
		return fmt.Errorf("%s: %w", Submersion, err)
	}
	if err := c.Cylinder.Validate(); err != nil {
		return fmt.Errorf("%s: %w", Cylinder, err)
	}
	return nil
}

// Build returns the reactor selected by c.Reactor.
func (c Config) Build() (reactor.Reactor, error) {
	switch strings.ToLower(c.Reactor) {
	case Submersion:
		return c.Submersion, nil
	case Cylinder:
		return c.Cylinder, nil
	}
	return nil, paramak.Paramf("config", "reactor", "unknown reactor %q, want %s or %s", c.Reactor, Submersion, Cylinder)
}

// NewKernel returns the sdfx kernel configured by k.
func (k Kernel) NewKernel() *sdfx.Kernel {
	return sdfx.New(sdfx.WithResolution(k.Resolution), sdfx.WithFacets(k.Facets), sdfx.WithMeshCells(k.MeshCells))
}

// Logger builds a production logger, or a development one when
// l.Development is set, at l.Level.
func (l Log) Logger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if l.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	if l.Level != "" {
		lvl, err := zap.ParseAtomicLevel(l.Level)
		if err != nil {
			return nil, paramak.Paramf("config", "log.level", "%v", err)
		}
		cfg.Level = lvl
	}
	return cfg.Build()
}

// Encode writes c to w as "toml" or "yaml".
func Encode(w io.Writer, c Config, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		return toml.NewEncoder(w).Encode(c)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}
	return paramak.Paramf("config", "format", "cannot encode %q, want toml or yaml", format)
}
