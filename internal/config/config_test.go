package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points the XDG directories at temp dirs so tests never touch
// the real user configuration.
func isolateXDG(t *testing.T) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	return configHome
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	configHome := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultPreferredFonts, cfg.Fonts.Preferred)
	assert.Equal(t, 12.0, cfg.Style.TitleSize)
	assert.Equal(t, 10.0, cfg.Style.LabelSize)
	assert.Equal(t, 9.0, cfg.Style.TickLabelSize)
	assert.Equal(t, 13.0, cfg.Style.FigureTitleSize)
	assert.True(t, cfg.Registry.UseFontconfig)
	assert.True(t, cfg.Database.Enabled)
	assert.NotEmpty(t, cfg.Database.Path, "database path is filled in when the file leaves it empty")

	configFile := filepath.Join(configHome, appName, "config.toml")
	_, err = os.Stat(configFile)
	assert.NoError(t, err, "first load writes a default config file")
}

func TestManager_LoadReadsExistingConfig(t *testing.T) {
	configHome := isolateXDG(t)

	configDir := filepath.Join(configHome, appName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	content := `[fonts]
preferred = ["Inter", "SF Pro Text"]

[style]
title_size = 14.0
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, []string{"Inter", "SF Pro Text"}, cfg.Fonts.Preferred)
	assert.Equal(t, 14.0, cfg.Style.TitleSize)
	assert.Equal(t, 10.0, cfg.Style.LabelSize, "unset keys fall back to defaults")
}

func TestManager_EnvOverridesLogLevel(t *testing.T) {
	isolateXDG(t)
	t.Setenv("PLOTFONT_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "debug", mgr.Get().Logging.Level)
}

func TestManager_LoadRejectsInvalidConfig(t *testing.T) {
	configHome := isolateXDG(t)

	configDir := filepath.Join(configHome, appName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	content := `[logging]
level = "shout"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	assert.Error(t, mgr.Load())
}

func TestManager_SavePreferred(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, mgr.SavePreferred([]string{"SF Mono", "SF Pro Text"}))
	assert.Equal(t, []string{"SF Mono", "SF Pro Text"}, mgr.Get().Fonts.Preferred)

	// A fresh manager sees the persisted choice.
	mgr2, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr2.Load())
	assert.Equal(t, []string{"SF Mono", "SF Pro Text"}, mgr2.Get().Fonts.Preferred)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	expected := filepath.Join(cwd, ".dev", appName)
	assert.Equal(t, expected, dirs.ConfigHome)
	assert.Equal(t, expected, dirs.DataHome)
}
