// Package config loads layered application configuration and writes defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/aoc/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds the defaults applied to every command.
type ApplicationConfiguration struct {
	Inputs      InputConfiguration     `mapstructure:"inputs" yaml:"inputs"`
	Output      OutputConfiguration    `mapstructure:"output" yaml:"output"`
	Directories DirectoryConfiguration `mapstructure:"directories" yaml:"directories"`
	Logging     LoggingConfiguration   `mapstructure:"logging" yaml:"logging"`
}

// InputConfiguration controls where puzzle inputs are read from.
type InputConfiguration struct {
	Directory string `mapstructure:"directory" yaml:"directory,omitempty"`
	Variant   string `mapstructure:"variant" yaml:"variant,omitempty"`
}

// OutputConfiguration controls answer rendering.
type OutputConfiguration struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"`
	Copy   *bool  `mapstructure:"copy" yaml:"copy,omitempty"`
}

// DirectoryConfiguration overrides the day 7 disk parameters.
type DirectoryConfiguration struct {
	SmallLimit   *int64 `mapstructure:"small_limit" yaml:"small_limit,omitempty"`
	Capacity     *int64 `mapstructure:"capacity" yaml:"capacity,omitempty"`
	RequiredFree *int64 `mapstructure:"required_free" yaml:"required_free,omitempty"`
}

// LoggingConfiguration selects the log level.
type LoggingConfiguration struct {
	Level string `mapstructure:"level" yaml:"level,omitempty"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return ApplicationConfiguration{}, resolveErr
	}
	if localPath != "" {
		localConfig, loadErr := loadConfigurationFromPath(localPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(localConfig)
	}

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolute, err := filepath.Abs(explicitPath)
			if err != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, err)
			}
			return absolute, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.Inputs.Directory != "" {
		result.Inputs.Directory = override.Inputs.Directory
	}
	if override.Inputs.Variant != "" {
		result.Inputs.Variant = override.Inputs.Variant
	}
	if override.Output.Format != "" {
		result.Output.Format = override.Output.Format
	}
	if override.Output.Copy != nil {
		result.Output.Copy = cloneBool(override.Output.Copy)
	}
	result.Directories = result.Directories.merge(override.Directories)
	if override.Logging.Level != "" {
		result.Logging.Level = override.Logging.Level
	}
	return result
}

func (config DirectoryConfiguration) merge(override DirectoryConfiguration) DirectoryConfiguration {
	result := config
	if override.SmallLimit != nil {
		result.SmallLimit = cloneInt64(override.SmallLimit)
	}
	if override.Capacity != nil {
		result.Capacity = cloneInt64(override.Capacity)
	}
	if override.RequiredFree != nil {
		result.RequiredFree = cloneInt64(override.RequiredFree)
	}
	return result
}

// CopyEnabled reports whether answers should be copied to the clipboard.
func (config OutputConfiguration) CopyEnabled() bool {
	return config.Copy != nil && *config.Copy
}

// Int64Or returns the pointed value or fallback when unset.
func Int64Or(value *int64, fallback int64) int64 {
	if value == nil {
		return fallback
	}
	return *value
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt64(value *int64) *int64 {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
