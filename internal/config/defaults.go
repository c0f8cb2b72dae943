package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPreferredFonts is the ordered priority list tried before falling
// back to the plotting defaults. These are the family names macOS exposes
// for the SF fonts.
var DefaultPreferredFonts = []string{
	"SF Pro Text",
	"SF Pro Display",
	"SF Mono",
}

// Style defaults, in printer's points.
const (
	defaultTitleSize       = 12.0
	defaultLabelSize       = 10.0
	defaultTickLabelSize   = 9.0
	defaultFigureTitleSize = 13.0
)

// DefaultConfig returns the default configuration values for plotfont.
func DefaultConfig() *Config {
	return &Config{
		Fonts: FontsConfig{
			Preferred: append([]string(nil), DefaultPreferredFonts...),
		},
		Style: StyleConfig{
			TitleSize:       defaultTitleSize,
			LabelSize:       defaultLabelSize,
			TickLabelSize:   defaultTickLabelSize,
			FigureTitleSize: defaultFigureTitleSize,
		},
		Registry: RegistryConfig{
			UseFontconfig: true,
			ExtraDirs:     []string{},
			Watch:         false,
		},
		Database: DatabaseConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// setDefaults registers all default values with viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("fonts.preferred", defaults.Fonts.Preferred)

	m.viper.SetDefault("style.title_size", defaults.Style.TitleSize)
	m.viper.SetDefault("style.label_size", defaults.Style.LabelSize)
	m.viper.SetDefault("style.tick_label_size", defaults.Style.TickLabelSize)
	m.viper.SetDefault("style.figure_title_size", defaults.Style.FigureTitleSize)

	m.viper.SetDefault("registry.use_fontconfig", defaults.Registry.UseFontconfig)
	m.viper.SetDefault("registry.extra_dirs", defaults.Registry.ExtraDirs)
	m.viper.SetDefault("registry.watch", defaults.Registry.Watch)

	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("database.enabled", defaults.Database.Enabled)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig writes a commented TOML config file with defaults.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	defaults := DefaultConfig()

	var b strings.Builder
	b.WriteString("# plotfont configuration\n\n")
	b.WriteString("[fonts]\n")
	b.WriteString("# Ordered priority list; the first family found on the host wins.\n")
	b.WriteString("preferred = [\n")
	for _, f := range defaults.Fonts.Preferred {
		fmt.Fprintf(&b, "  %q,\n", f)
	}
	b.WriteString("]\n\n")
	b.WriteString("[style]\n")
	fmt.Fprintf(&b, "title_size = %.1f\n", defaults.Style.TitleSize)
	fmt.Fprintf(&b, "label_size = %.1f\n", defaults.Style.LabelSize)
	fmt.Fprintf(&b, "tick_label_size = %.1f\n", defaults.Style.TickLabelSize)
	fmt.Fprintf(&b, "figure_title_size = %.1f\n\n", defaults.Style.FigureTitleSize)
	b.WriteString("[registry]\n")
	fmt.Fprintf(&b, "use_fontconfig = %v\n", defaults.Registry.UseFontconfig)
	b.WriteString("extra_dirs = []\n")
	fmt.Fprintf(&b, "watch = %v\n\n", defaults.Registry.Watch)
	b.WriteString("[database]\n")
	fmt.Fprintf(&b, "enabled = %v\n\n", defaults.Database.Enabled)
	b.WriteString("[logging]\n")
	fmt.Fprintf(&b, "level = %q\n", defaults.Logging.Level)
	fmt.Fprintf(&b, "format = %q\n", defaults.Logging.Format)

	if err := os.WriteFile(configFile, []byte(b.String()), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
