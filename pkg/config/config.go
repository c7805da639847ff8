package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment variables override file values
		viper.SetEnvPrefix("PODPLAY")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing config file is fine, defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	language := viper.GetString("podplay.language")
	switch language {
	case "no", "sv", "fi", "en":
	default:
		return fmt.Errorf("unsupported language %q (expected no, sv, fi or en)", language)
	}

	if viper.GetDuration("podplay.timeout") <= 0 {
		viper.Set("podplay.timeout", 10*time.Second)
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("podplay.base_url", "https://api.podplay.com/v1")
	viper.SetDefault("podplay.image_base_url", "https://podplay.imgix.net")
	viper.SetDefault("podplay.language", "en")
	viper.SetDefault("podplay.user_agent", "podplay-go/1.0 (+https://github.com/killallgit/podplay-go)")
	viper.SetDefault("podplay.timeout", 10*time.Second)
}
