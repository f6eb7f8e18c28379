package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".nodewatch.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/nodewatch"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'nodewatch init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .nodewatch.yaml in current directory
// 3. .nodewatch.yaml in parent directories (stops at git root or home)
// 4. ~/.config/nodewatch/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Walk up to parent directories
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		// Check for .nodewatch.yaml
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Stop at git root
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}
	}

	// 4. Global config
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if not found.
// This is useful for commands like 'nodewatch init' that should work without
// existing config.
func LoadOrDefault() (*Config, error) {
	path, err := Find("")
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	setDefaults(v)

	// Unmarshal into config
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	cfg.StateDir = ExpandStateDir(cfg.StateDir)

	return cfg, nil
}

// setDefaults configures viper defaults so partial config files merge cleanly.
func setDefaults(v *viper.Viper) {
	v.SetDefault("state_dir", "~/.nodewatch")
	v.SetDefault("monitoring.enabled", true)
	v.SetDefault("monitoring.check_interval", "60s")
	v.SetDefault("monitoring.ping_timeout", "5s")
	v.SetDefault("monitoring.ssh_timeout", "10s")
	v.SetDefault("monitoring.http_timeout", "10s")
	v.SetDefault("monitoring.history.health_max", 288)
	v.SetDefault("monitoring.history.metrics_max", 1440)
	v.SetDefault("monitoring.thresholds.cpu.warning", 75.0)
	v.SetDefault("monitoring.thresholds.cpu.critical", 90.0)
	v.SetDefault("monitoring.thresholds.memory.warning", 80.0)
	v.SetDefault("monitoring.thresholds.memory.critical", 95.0)
	v.SetDefault("monitoring.thresholds.disk.warning", 85.0)
	v.SetDefault("monitoring.thresholds.disk.critical", 95.0)
	v.SetDefault("monitoring.auto_restart_services", false)
	v.SetDefault("monitoring.auto_reboot_nodes", false)
}

// ExpandStateDir expands a leading ~/ in the state directory path.
func ExpandStateDir(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
