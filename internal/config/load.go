package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "dddragon")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "dddragon")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "dddragon")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "dddragon")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects settings the renderer cannot work with.
func (c *Config) Validate() error {
	var problems []string
	if c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180 {
		problems = append(problems, fmt.Sprintf("render.fov_degrees must be in (0, 180), got %v", c.Render.FOVDegrees))
	}
	if c.Render.LinePoints < 1 {
		problems = append(problems, fmt.Sprintf("render.line_points must be positive, got %d", c.Render.LinePoints))
	}
	if c.Render.CharacterRatio <= 0 {
		problems = append(problems, fmt.Sprintf("render.character_ratio must be positive, got %v", c.Render.CharacterRatio))
	}
	if c.Render.Workers < 0 {
		problems = append(problems, fmt.Sprintf("render.workers must not be negative, got %d", c.Render.Workers))
	}
	if c.Controls.FPS < 1 {
		problems = append(problems, fmt.Sprintf("controls.fps must be positive, got %d", c.Controls.FPS))
	}
	if c.Controls.TickRate <= 0 {
		problems = append(problems, fmt.Sprintf("controls.tick_rate must be positive, got %v", c.Controls.TickRate))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
