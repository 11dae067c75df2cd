package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/marcus/dropdown/pkg/dropdown"
)

const configFile = ".dropdown/config.json"

// Config persists the demo's widget settings between runs.
type Config struct {
	Placement     string `json:"placement,omitempty"`
	Distance      int    `json:"distance,omitempty"`
	Skidding      int    `json:"skidding,omitempty"`
	Hoist         bool   `json:"hoist,omitempty"`
	CloseOnSelect *bool  `json:"close_on_select,omitempty"`
	Debug         bool   `json:"debug,omitempty"`
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// GetPlacement returns the configured placement, falling back to the
// widget default for missing or unknown values
func GetPlacement(baseDir string) (dropdown.Placement, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	p := dropdown.Placement(cfg.Placement)
	if !dropdown.ValidPlacement(p) {
		return dropdown.PlacementBottomStart, nil
	}
	return p, nil
}

// SetPlacement stores the placement
func SetPlacement(baseDir string, p dropdown.Placement) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.Placement = string(p)
	return Save(baseDir, cfg)
}

// GetCloseOnSelect returns the close-on-select setting, defaulting to true
// when unset
func GetCloseOnSelect(baseDir string) (bool, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return true, err
	}
	if cfg.CloseOnSelect == nil {
		return true, nil
	}
	return *cfg.CloseOnSelect, nil
}

// SetCloseOnSelect stores the close-on-select setting
func SetCloseOnSelect(baseDir string, v bool) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.CloseOnSelect = &v
	return Save(baseDir, cfg)
}

// Options converts the stored settings into widget options. Unset fields
// fall back to the widget defaults.
func (c *Config) Options() []dropdown.Option {
	var opts []dropdown.Option
	if p := dropdown.Placement(c.Placement); dropdown.ValidPlacement(p) {
		opts = append(opts, dropdown.WithPlacement(p))
	}
	if c.Distance != 0 {
		opts = append(opts, dropdown.WithDistance(c.Distance))
	}
	if c.Skidding != 0 {
		opts = append(opts, dropdown.WithSkidding(c.Skidding))
	}
	if c.Hoist {
		opts = append(opts, dropdown.WithHoist(true))
	}
	if c.CloseOnSelect != nil {
		opts = append(opts, dropdown.WithCloseOnSelect(*c.CloseOnSelect))
	}
	return opts
}
