package config

import "time"

// Config represents the complete CLI configuration
type Config struct {
	Podplay PodplayConfig `mapstructure:"podplay"`
}

// PodplayConfig contains Podplay API settings
type PodplayConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	ImageBaseURL string        `mapstructure:"image_base_url"`
	Language     string        `mapstructure:"language"`
	UserAgent    string        `mapstructure:"user_agent"`
	Timeout      time.Duration `mapstructure:"timeout"`
}
