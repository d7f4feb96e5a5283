package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"kfpl/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/kfpl"
	projectConfigDir = ".kfpl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the kfpl configuration by layering default, user, and project settings.
func LoadConfig() (KfplConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		config, err = overlayIfExists(config, userConfigPath)
		if err != nil {
			return KfplConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		config, err = overlayIfExists(config, projectConfigPath)
		if err != nil {
			return KfplConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	return config, nil
}

// LoadConfigFromPath loads a single explicit file over the defaults. Unlike
// the layered files, the file must exist.
func LoadConfigFromPath(path string) (KfplConfig, error) {
	file, err := loadConfigFromFile(path)
	if err != nil {
		return KfplConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	logging.Debug("Config", "Loaded %s", path)
	return mergeConfigs(GetDefaultConfig(), file), nil
}

func overlayIfExists(base KfplConfig, path string) (KfplConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return KfplConfig{}, err
	}
	logging.Debug("Config", "Loaded %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// fileConfig is one configuration file as decoded from disk.
type fileConfig struct {
	KfplConfig
	settle settleOverlay
}

// settleOverlay records the settle intervals a file sets explicitly: zero
// is a valid interval, so presence cannot be told from the value alone.
type settleOverlay struct {
	Cluster struct {
		SettleInterval *time.Duration `yaml:"settleInterval"`
	} `yaml:"cluster"`
	Pipelines struct {
		SettleInterval *time.Duration `yaml:"settleInterval"`
	} `yaml:"pipelines"`
}

// loadConfigFromFile loads a KfplConfig from a YAML file.
func loadConfigFromFile(filePath string) (fileConfig, error) {
	var config fileConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fileConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config.KfplConfig); err != nil {
		return fileConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config.settle); err != nil {
		return fileConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base untouched, so a boolean can only be switched on.
// Settle intervals are the exception: a file that sets one wins, even with 0.
func mergeConfigs(base KfplConfig, file fileConfig) KfplConfig {
	merged := base
	overlay := file.KfplConfig

	mergeString(&merged.Cluster.Name, overlay.Cluster.Name)
	mergeString(&merged.Cluster.Image, overlay.Cluster.Image)
	mergeString(&merged.Cluster.APIAddress, overlay.Cluster.APIAddress)
	if overlay.Cluster.APIPort != 0 {
		merged.Cluster.APIPort = overlay.Cluster.APIPort
	}
	mergeString(&merged.Cluster.HostAlias, overlay.Cluster.HostAlias)
	if d := file.settle.Cluster.SettleInterval; d != nil {
		merged.Cluster.SettleInterval = *d
	}
	if overlay.Cluster.WaitTimeout != 0 {
		merged.Cluster.WaitTimeout = overlay.Cluster.WaitTimeout
	}

	mergeString(&merged.Pipelines.KFPVersion, overlay.Pipelines.KFPVersion)
	mergeString(&merged.Pipelines.KFManifest, overlay.Pipelines.KFManifest)
	if overlay.Pipelines.KFPOnly {
		merged.Pipelines.KFPOnly = true
	}
	if overlay.Pipelines.CRDWaitTimeout != 0 {
		merged.Pipelines.CRDWaitTimeout = overlay.Pipelines.CRDWaitTimeout
	}
	if d := file.settle.Pipelines.SettleInterval; d != nil {
		merged.Pipelines.SettleInterval = *d
	}
	if overlay.Pipelines.WaitTimeout != 0 {
		merged.Pipelines.WaitTimeout = overlay.Pipelines.WaitTimeout
	}
	mergeString(&merged.Pipelines.WorkDir, overlay.Pipelines.WorkDir)

	if overlay.Tunnel.Port != 0 {
		merged.Tunnel.Port = overlay.Tunnel.Port
	}
	mergeString(&merged.Tunnel.Address, overlay.Tunnel.Address)
	if overlay.Tunnel.KFPOnly {
		merged.Tunnel.KFPOnly = true
	}

	mergeString(&merged.Runtime.CgroupPath, overlay.Runtime.CgroupPath)
	mergeString(&merged.Runtime.Kubeconfig, overlay.Runtime.Kubeconfig)

	return merged
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// GetUserConfigDir returns the user configuration directory path
// (~/.config/kfpl).
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
