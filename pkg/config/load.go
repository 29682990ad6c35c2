// Package config handles loading and validation of .creatordash.yml.
//
// A user file is layered over the embedded default.yml, so a file may set
// only the keys it cares about.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajxudir/creatordash/pkg/constants"
	"github.com/ajxudir/creatordash/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// DefaultMaxConfigFileSize bounds the size of a config file read from disk.
const DefaultMaxConfigFileSize int64 = 1 << 20

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that file and fails if it cannot.
// Otherwise it looks for .creatordash.yml in workDir and falls back to the
// built-in defaults when none exists.
//
// Parameters:
//   - configPath: path to the config file, or empty to search workDir
//   - workDir: working directory for the configuration
//
// Returns:
//   - *Config: the loaded configuration
//   - error: read or parse errors for an explicit or discovered file
func LoadConfig(configPath, workDir string) (*Config, error) {
	var cfg *Config

	if configPath != "" {
		verbose.Infof("Loading config from: %s", configPath)
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		cfg.SourcePath = configPath
	} else {
		localConfig := filepath.Join(workDir, constants.ConfigFileName)
		if _, err := os.Stat(localConfig); err == nil {
			verbose.Infof("Found local config: %s", localConfig)
			loaded, err := loadConfigFile(localConfig)
			if err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
			cfg.SourcePath = localConfig
		}
	}

	if cfg == nil {
		cfg = loadDefaultConfig()
	}
	verbose.ConfigLoaded(cfg.SourcePath)

	if workDir != "" {
		cfg.WorkingDir = workDir
	} else if cfg.WorkingDir == "" {
		cfg.WorkingDir = "."
	}

	return cfg, nil
}

// readConfigFileWithLimit reads a config file after checking its size.
func readConfigFileWithLimit(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}
	return os.ReadFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	data, err := readConfigFileWithLimit(path, DefaultMaxConfigFileSize)
	if err != nil {
		return nil, err
	}
	return loadConfigData(data)
}

// loadConfigData parses YAML over a copy of the defaults.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *Config: the parsed configuration with unset keys taken from default.yml
//   - error: error if YAML is invalid or malformed
func loadConfigData(data []byte) (*Config, error) {
	cfg := loadDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return cfg, nil
}

// LoadConfigFileStrict loads a config file and validates it.
//
// Unlike LoadConfig it rejects unknown fields and invalid values, so typos
// such as "activeonly" surface as errors instead of being ignored.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: joined *errors.ValidationError values, or a read/parse error
func LoadConfigFileStrict(path string) (*Config, error) {
	data, err := readConfigFileWithLimit(path, DefaultMaxConfigFileSize)
	if err != nil {
		return nil, err
	}

	result := ValidateConfigFile(data)
	if result.HasErrors() {
		return nil, result.Err()
	}

	cfg, err := loadConfigData(data)
	if err != nil {
		return nil, err
	}
	cfg.SourcePath = path
	cfg.WorkingDir = filepath.Dir(path)

	return cfg, nil
}
