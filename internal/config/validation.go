package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"console": true,
	"json":    true,
}

// validateConfig checks the configuration for invalid values.
func validateConfig(config *Config) error {
	for i, family := range config.Fonts.Preferred {
		if strings.TrimSpace(family) == "" {
			return fmt.Errorf("fonts.preferred[%d]: font family name cannot be blank", i)
		}
	}

	sizes := map[string]float64{
		"style.title_size":        config.Style.TitleSize,
		"style.label_size":        config.Style.LabelSize,
		"style.tick_label_size":   config.Style.TickLabelSize,
		"style.figure_title_size": config.Style.FigureTitleSize,
	}
	for key, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("%s: size must be positive, got %v", key, size)
		}
	}

	if !validLogLevels[config.Logging.Level] {
		return fmt.Errorf("logging.level: invalid level %q (valid: trace, debug, info, warn, error)", config.Logging.Level)
	}
	if !validLogFormats[config.Logging.Format] {
		return fmt.Errorf("logging.format: invalid format %q (valid: console, json)", config.Logging.Format)
	}

	return nil
}
