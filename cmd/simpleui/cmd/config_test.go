package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleui/internal"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simpleui.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, internal.DefaultCanvasWidth, cfg.Canvas.Width)
	assert.Equal(t, internal.DefaultCanvasHeight, cfg.Canvas.Height)
	assert.Equal(t, internal.Color{}, cfg.background())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "canvas:\n  width: 400\n  height: 300\n  background: \"#ff00aa\"\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 400.0, cfg.Canvas.Width)
	assert.Equal(t, 300.0, cfg.Canvas.Height)
	assert.Equal(t, internal.NewColor("#FF00AA"), cfg.background())
}

func TestLoadConfigPartial(t *testing.T) {
	// unset keys keep their defaults
	path := writeConfig(t, "canvas:\n  background: \"ffffff\"\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, internal.DefaultCanvasWidth, cfg.Canvas.Width)
	assert.Equal(t, internal.NewColor("#FFFFFF"), cfg.background())
}

func TestLoadConfigInvalidBackground(t *testing.T) {
	path := writeConfig(t, "canvas:\n  background: \"not-a-color\"\n")

	_, err := loadConfig(path)
	assert.ErrorContains(t, err, "invalid background color")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
