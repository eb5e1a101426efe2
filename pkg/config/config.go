// pkg/config/config.go - configuration settings for appsetup.

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ConfigPath = `C:\ProgramData\AppSetup\Config.yaml`

// PolicyRegistryPath is the registry key used for enterprise policy
// configuration when no Config.yaml is present.
const PolicyRegistryPath = `SOFTWARE\AppSetup\Config`

// Configuration holds the configurable options for appsetup in YAML format.
type Configuration struct {
	BatchPath           string `yaml:"BatchPath"`
	CachePath           string `yaml:"CachePath"`
	LogPath             string `yaml:"LogPath"`
	LogLevel            string `yaml:"LogLevel"`
	Debug               bool   `yaml:"Debug"`
	Verbose             bool   `yaml:"Verbose"`
	CleanupDelaySeconds int    `yaml:"CleanupDelaySeconds"`
	HTTPTimeoutSeconds  int    `yaml:"HTTPTimeoutSeconds"`
}

// GetDefaultConfig provides default configuration values.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		CachePath:           `C:\ProgramData\AppSetup\Cache`,
		LogPath:             `C:\ProgramData\AppSetup\Logs`,
		LogLevel:            "INFO",
		Debug:               false,
		Verbose:             false,
		CleanupDelaySeconds: 5,
		HTTPTimeoutSeconds:  600,
	}
}

// LoadConfig loads the configuration from a YAML file. A .env file in the
// working directory may override the config file location via APPSETUP_CONFIG.
// If no YAML file exists, registry policy settings are consulted, and
// built-in defaults fill anything left unset.
func LoadConfig() (*Configuration, error) {
	// Optional developer overrides; absence is not an error.
	_ = godotenv.Load()

	configPath := ConfigPath
	if p := os.Getenv("APPSETUP_CONFIG"); p != "" {
		configPath = p
	}

	config := GetDefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("Configuration file does not exist: %s", configPath)
		log.Printf("Attempting to load configuration from registry policy settings...")
		if err := loadPolicyOverrides(config); err != nil {
			log.Printf("No registry policy settings found, using defaults: %v", err)
		}
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			log.Printf("Failed to read configuration file: %v", err)
			return nil, err
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			log.Printf("Failed to parse configuration file: %v", err)
			return nil, err
		}
	}

	// Set default paths if empty
	if config.CachePath == "" {
		config.CachePath = `C:\ProgramData\AppSetup\Cache`
	}
	if config.LogPath == "" {
		config.LogPath = `C:\ProgramData\AppSetup\Logs`
	}
	if config.CleanupDelaySeconds <= 0 {
		config.CleanupDelaySeconds = 5
	}
	if config.HTTPTimeoutSeconds <= 0 {
		config.HTTPTimeoutSeconds = 600
	}

	return config, nil
}

// SaveConfig saves the current configuration to a YAML file.
func SaveConfig(config *Configuration) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		log.Printf("Failed to serialize configuration: %v", err)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(ConfigPath), 0755); err != nil {
		log.Printf("Failed to create configuration directory: %v", err)
		return err
	}

	if err := os.WriteFile(ConfigPath, data, 0644); err != nil {
		log.Printf("Failed to write configuration file: %v", err)
		return err
	}

	return nil
}

// EnsureDirectories creates the cache and log directories if absent.
func (c *Configuration) EnsureDirectories() error {
	for _, path := range []string{c.CachePath, c.LogPath} {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %v", path, err)
		}
	}
	return nil
}
