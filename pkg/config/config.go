package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is looked up in every directory from the working directory
// up to the filesystem root.
const ConfigFileName = "dokgen.conf.json"

// Defaults applied when no config file overrides them.
const (
	DefaultDumpFile = "dokgen-project.json"
	DefaultOutput   = "text"
)

// Config represents the merged configuration from all dokgen.conf.json
// files in the directory hierarchy.
type Config struct {
	Platforms PlatformsConfig `json:"platforms"`
}

// PlatformsConfig configures the platforms command.
type PlatformsConfig struct {
	// DumpFile is the project state dump file name to look for
	DumpFile string `json:"dumpFile"`
	// Output is the output format, "text" or "json"
	Output string `json:"output"`
}

// LoadConfiguration loads and merges all dokgen.conf.json files from the
// directory hierarchy. Files closer to startDir override files closer to the
// filesystem root; defaults fill whatever remains unset.
func LoadConfiguration(startDir string) (*Config, error) {
	var configFiles []string

	currentDir := startDir
	for {
		configPath := filepath.Join(currentDir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			configFiles = append(configFiles, configPath)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	config := &Config{}

	// Process config files from root to leaf so leaf configs win
	for i := len(configFiles) - 1; i >= 0; i-- {
		if err := config.mergeConfigFile(configFiles[i]); err != nil {
			return nil, fmt.Errorf("failed to merge config file %s: %w", configFiles[i], err)
		}
	}

	if config.Platforms.DumpFile == "" {
		config.Platforms.DumpFile = DefaultDumpFile
	}
	if config.Platforms.Output == "" {
		config.Platforms.Output = DefaultOutput
	}

	return config, nil
}

// mergeConfigFile merges a single config file into the current configuration.
func (c *Config) mergeConfigFile(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fileConfig Config
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileConfig.Platforms.DumpFile != "" {
		c.Platforms.DumpFile = fileConfig.Platforms.DumpFile
	}
	if fileConfig.Platforms.Output != "" {
		c.Platforms.Output = fileConfig.Platforms.Output
	}

	return nil
}
