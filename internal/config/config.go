package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Site
	BaseURL    string
	ListingURL string
	Keyword    string

	// Output
	OutputPath string
	Progress   bool

	// Logging
	LogLevel string
	LogFile  string

	// HTTP
	HTTPTimeout time.Duration
	UserAgent   string
}

// Default returns the configuration of a run without flags
func Default() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		ListingURL:  DefaultListingURL,
		Keyword:     DefaultKeyword,
		OutputPath:  DefaultOutputPath,
		LogLevel:    DefaultLogLevel,
		LogFile:     DefaultLogFile,
		HTTPTimeout: DefaultHTTPTimeout,
		UserAgent:   DefaultUserAgent,
	}
}

// Load builds a Config from defaults and CLI flags.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := Default()

	if cmd != nil {
		flags := cmd.Flags()
		if f := flags.Lookup("output"); f != nil && f.Value.String() != "" {
			cfg.OutputPath = f.Value.String()
		}
		if f := flags.Lookup("log-file"); f != nil && f.Value.String() != "" {
			cfg.LogFile = f.Value.String()
		}
		if f := flags.Lookup("user-agent"); f != nil && f.Value.String() != "" {
			cfg.UserAgent = f.Value.String()
		}
		if f := flags.Lookup("timeout"); f != nil {
			if s := f.Value.String(); s != "" {
				d, err := time.ParseDuration(s)
				if err != nil {
					return nil, fmt.Errorf("invalid timeout %q: %w", s, err)
				}
				cfg.HTTPTimeout = d
			}
		}
		if f := flags.Lookup("progress"); f != nil && f.Value.String() == "true" {
			cfg.Progress = true
		}
		if f := flags.Lookup("quiet"); f != nil && f.Value.String() == "true" {
			cfg.LogLevel = "error"
		}
		if f := flags.Lookup("verbose"); f != nil && f.Value.String() == "true" {
			cfg.LogLevel = "debug"
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SearchURL is the first listing page with the keyword filter applied
func (c *Config) SearchURL() string {
	return c.ListingURL + "?primary_keyword=" + url.QueryEscape(c.Keyword)
}
