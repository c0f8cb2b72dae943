package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "blank preferred family",
			mutate: func(c *Config) { c.Fonts.Preferred = []string{"SF Pro Text", "  "} },
		},
		{
			name:   "zero title size",
			mutate: func(c *Config) { c.Style.TitleSize = 0 },
		},
		{
			name:   "negative label size",
			mutate: func(c *Config) { c.Style.LabelSize = -1 },
		},
		{
			name:   "zero tick label size",
			mutate: func(c *Config) { c.Style.TickLabelSize = 0 },
		},
		{
			name:   "zero figure title size",
			mutate: func(c *Config) { c.Style.FigureTitleSize = 0 },
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestValidateConfig_EmptyPreferredListIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fonts.Preferred = nil
	assert.NoError(t, validateConfig(cfg))
}
