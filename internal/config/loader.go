package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ShooterFile is the configuration file name looked up in the search path.
const ShooterFile = "shooter.yaml"

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Every file is decoded on top of the embedded defaults, so a file only needs
// the keys it overrides. The result is validated before it is returned.
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg := baseShooterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ShooterFile); userCfgPath != "" {
		if overlay, ok := tryOverlay(userCfgPath, cfg); ok {
			return overlay, overlay.Validate()
		}
	}

	// Try local configs directory
	if overlay, ok := tryOverlay(filepath.Join("configs", ShooterFile), cfg); ok {
		return overlay, overlay.Validate()
	}

	return cfg, cfg.Validate()
}

// baseShooterConfig decodes the embedded default YAML.
func baseShooterConfig() ShooterConfig {
	var cfg ShooterConfig
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// tryOverlay decodes path on top of a copy of base. Missing or unparsable
// files are skipped so the search can continue.
func tryOverlay(path string, base ShooterConfig) (ShooterConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	cfg.Audio.Volumes = make(map[string]float64, len(base.Audio.Volumes))
	for k, v := range base.Audio.Volumes {
		cfg.Audio.Volumes[k] = v
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg ShooterConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
