package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userDirName is the per-user directory under $HOME.
const userDirName = ".fatrunner"

// Load loads Fat Runner configuration.
// Search order: customPath -> ~/.fatrunner/configs/fatrunner.yaml -> ./configs/fatrunner.yaml -> embedded default
//
// Files are decoded on top of the built-in defaults, so a partial file only
// overrides the keys it names. An explicit customPath that cannot be read,
// parsed or validated is an error; the other locations are skipped silently.
func Load(customPath string) (FatRunnerConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultFatRunnerConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("fatrunner.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "fatrunner.yaml")); err == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultFatRunnerYAML)
	if err != nil {
		return DefaultFatRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (FatRunnerConfig, error) {
	cfg := DefaultFatRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (FatRunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FatRunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDirName, "configs", filename)
}
