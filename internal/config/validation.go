package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Scan validation
	if len(c.Scan.Extensions) == 0 {
		errs = append(errs, "scan.extensions must not be empty")
	}
	for _, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Sprintf("scan.extensions entry %q must start with '.'", ext))
		}
	}
	if c.Scan.BeforeLines < 0 {
		errs = append(errs, "scan.before_lines must be >= 0")
	}
	if c.Scan.MaxLinesAfter < 0 {
		errs = append(errs, "scan.max_lines_after must be >= 0")
	}

	// Generation validation
	if c.Generation.Model == "" {
		errs = append(errs, "generation.model must not be empty")
	}
	if c.Generation.Concurrency < 1 {
		errs = append(errs, "generation.concurrency must be >= 1")
	}

	// Logging validation
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error", "":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
