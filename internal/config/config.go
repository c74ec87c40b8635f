// Package config resolves treesearch settings from, in increasing priority,
// built-in defaults, an optional YAML config file, TREESEARCH_* environment
// variables and explicitly set command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Supported search strategies.
const (
	StrategyBFS = "bfs"
	StrategyDFS = "dfs"
)

// EnvPrefix is prepended to every environment variable, e.g. TREESEARCH_FILE.
const EnvPrefix = "TREESEARCH"

var (
	// ErrUnknownStrategy is returned for a strategy other than bfs or dfs.
	ErrUnknownStrategy = errors.New("config: unknown strategy")

	// ErrNegativeMaxDepth is returned when max_depth < 0.
	ErrNegativeMaxDepth = errors.New("config: max_depth cannot be negative")
)

// Config holds the settings of a search run.
type Config struct {
	// File is the tree document to search.
	File     string `mapstructure:"file" yaml:"file"`
	// Target is the value to look for, in YAML scalar syntax.
	Target   string `mapstructure:"target" yaml:"target"`
	// Strategy is bfs or dfs.
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
	// MaxDepth limits the search depth; 0 means unlimited.
	MaxDepth int    `mapstructure:"max_depth" yaml:"max_depth"`
}

// flagBindings maps config keys to the command-line flag that overrides them.
var flagBindings = map[string]string{
	"file":      "file",
	"target":    "target",
	"strategy":  "strategy",
	"max_depth": "max-depth",
}

// Load resolves a Config. path may be empty, in which case only defaults,
// environment and flags apply; a non-empty path must exist. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("strategy", StrategyBFS)
	v.SetDefault("max_depth", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	for key := range flagBindings {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks field domains.
func (c *Config) Validate() error {
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	switch c.Strategy {
	case StrategyBFS, StrategyDFS:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Strategy)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeMaxDepth, c.MaxDepth)
	}

	return nil
}
