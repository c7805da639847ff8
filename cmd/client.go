package cmd

import (
	"fmt"

	"github.com/killallgit/podplay-go/pkg/config"
	"github.com/killallgit/podplay-go/pkg/podplay"
	"github.com/spf13/cobra"
)

// newClient builds a Podplay client from configuration, with the persistent
// --language flag taking precedence over the configured language.
func newClient(cmd *cobra.Command) (*podplay.Client, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	language := cfg.Podplay.Language
	if flag, _ := cmd.Flags().GetString("language"); flag != "" {
		language = flag
	}
	switch language {
	case "no", "sv", "fi", "en":
	default:
		return nil, fmt.Errorf("unsupported language %q (expected no, sv, fi or en)", language)
	}

	return podplay.NewClient(podplay.Config{
		BaseURL:      cfg.Podplay.BaseURL,
		ImageBaseURL: cfg.Podplay.ImageBaseURL,
		Language:     podplay.Language(language),
		UserAgent:    cfg.Podplay.UserAgent,
		Timeout:      cfg.Podplay.Timeout,
	}), nil
}
