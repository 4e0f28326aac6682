package config

import (
	"fmt"

	urlutil "github.com/law-makers/vacancies/internal/utils/url"
)

func validate(c *Config) error {
	if err := urlutil.ValidateURL(c.BaseURL); err != nil {
		return fmt.Errorf("base url: %w", err)
	}
	if err := urlutil.ValidateURL(c.ListingURL); err != nil {
		return fmt.Errorf("listing url: %w", err)
	}
	if c.Keyword == "" {
		return fmt.Errorf("keyword is required")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must be >= 0")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log file is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
