package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	require.NoError(t, validate())

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.podplay.com/v1", cfg.Podplay.BaseURL)
	assert.Equal(t, "https://podplay.imgix.net", cfg.Podplay.ImageBaseURL)
	assert.Equal(t, "en", cfg.Podplay.Language)
	assert.Equal(t, 10*time.Second, cfg.Podplay.Timeout)
}

func TestConfigEnvOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("PODPLAY_PODPLAY_LANGUAGE", "sv")

	setDefaults()
	viper.SetEnvPrefix("PODPLAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	require.NoError(t, validate())
	assert.Equal(t, "sv", GetString("podplay.language"))
}

func TestValidateRejectsUnknownLanguage(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("podplay.language", "de")

	err := validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestValidateCorrectsTimeout(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("podplay.timeout", -1*time.Second)

	require.NoError(t, validate())
	assert.Equal(t, 10*time.Second, GetDuration("podplay.timeout"))
}
