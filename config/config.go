// Package config loads the dp user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/etnz/debtplan"
)

// Config holds all dp configuration. Command line flags override it.
type Config struct {
	Plan    PlanConfig    `toml:"plan"`
	Data    DataConfig    `toml:"data"`
	Display DisplayConfig `toml:"display"`
	Assist  AssistConfig  `toml:"assist"`
}

// PlanConfig holds the default payoff plan parameters.
type PlanConfig struct {
	Budget   float64 `toml:"budget,omitempty"`
	Strategy string  `toml:"strategy"`
	Horizon  int     `toml:"horizon"`
}

// DataConfig locates the debts records.
type DataConfig struct {
	Debts  string `toml:"debts"`
	Select string `toml:"select"` // JSONPath of the debt list inside the file
}

// DisplayConfig holds presentation preferences.
type DisplayConfig struct {
	Currency string `toml:"currency"`
}

// AssistConfig holds the advisor settings.
type AssistConfig struct {
	Model string `toml:"model"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Plan: PlanConfig{
			Strategy: string(debtplan.Avalanche),
			Horizon:  debtplan.DefaultHorizon,
		},
		Data: DataConfig{
			Debts:  "debts.json",
			Select: "$",
		},
		Display: DisplayConfig{
			Currency: debtplan.DefaultCurrency,
		},
		Assist: AssistConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "debtplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "debtplan")
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path (Path() if empty), returning defaults
// if it doesn't exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be fixed by a flag default.
func (c Config) Validate() error {
	if c.Plan.Strategy != "" {
		if _, err := debtplan.ParseStrategy(c.Plan.Strategy); err != nil {
			return err
		}
	}
	if c.Plan.Budget < 0 {
		return fmt.Errorf("negative budget %v", c.Plan.Budget)
	}
	if c.Plan.Horizon < 0 {
		return fmt.Errorf("negative horizon %d", c.Plan.Horizon)
	}
	return nil
}

// Save writes the config to path (Path() if empty).
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
