package config

import (
	"fmt"
	"strings"
)

var validLevels = map[string]bool{
	"trace": true, "debug": true, "info": true,
	"warn": true, "error": true, "disabled": true,
}

var validFormats = map[string]bool{
	"console": true, "json": true,
}

// Validate checks a configuration for values the engine cannot run with.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var issues []string

	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		issues = append(issues, fmt.Sprintf("logging.level: unknown level %q", cfg.Logging.Level))
	}
	if !validFormats[strings.ToLower(cfg.Logging.Format)] {
		issues = append(issues, fmt.Sprintf("logging.format: unknown format %q", cfg.Logging.Format))
	}
	if cfg.Floating.DefaultWidth <= 0 {
		issues = append(issues, fmt.Sprintf("floating.default_width: must be positive, got %d", cfg.Floating.DefaultWidth))
	}
	if cfg.Floating.DefaultHeight <= 0 {
		issues = append(issues, fmt.Sprintf("floating.default_height: must be positive, got %d", cfg.Floating.DefaultHeight))
	}
	if cfg.Floating.CascadeOffset < 0 {
		issues = append(issues, fmt.Sprintf("floating.cascade_offset: must not be negative, got %d", cfg.Floating.CascadeOffset))
	}

	if len(issues) > 0 {
		return fmt.Errorf("%s", strings.Join(issues, "; "))
	}
	return nil
}
