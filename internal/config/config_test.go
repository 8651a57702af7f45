package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnziad/ZeroTex/internal/templates"
)

func setupTest(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	return t.TempDir()
}

func TestInitializeCreatesDefaults(t *testing.T) {
	dir := setupTest(t)

	require.NoError(t, InitializeIn(dir))
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	assert.Equal(t, "classic", AppConfig.Template)
	assert.Equal(t, MeasurerEstimate, AppConfig.Measurer)
	assert.Equal(t, 30*time.Second, AppConfig.ChromeTimeout)
	assert.Equal(t, "A4", AppConfig.Paper)
	assert.Equal(t, 12.0, AppConfig.MarginTopMM)
	assert.Equal(t, 18.0, AppConfig.MarginSideMM)
	assert.Equal(t, 10.0, AppConfig.FontSizePt)
	assert.Equal(t, 1.2, AppConfig.LineHeight)
	assert.Equal(t, "warn", AppConfig.LogLevel)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigPath())
}

func TestSetPersists(t *testing.T) {
	dir := setupTest(t)
	require.NoError(t, InitializeIn(dir))

	require.NoError(t, Set("template", "modern"))
	assert.Equal(t, "modern", Get("template"))

	raw, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "modern")

	assert.Error(t, Set("openai_key", "x"))
}

func TestInvalidMeasurer(t *testing.T) {
	dir := setupTest(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("measurer: ruler\n"), 0600))

	err := InitializeIn(dir)
	assert.ErrorContains(t, err, "invalid measurer")
}

func TestEnvOverride(t *testing.T) {
	dir := setupTest(t)
	t.Setenv("ZEROTEX_PAPER", "Letter")

	require.NoError(t, InitializeIn(dir))
	assert.Equal(t, "Letter", AppConfig.Paper)
}

func TestSetRejectsInvalidValues(t *testing.T) {
	dir := setupTest(t)
	require.NoError(t, InitializeIn(dir))

	tests := []struct {
		key   string
		value string
	}{
		{"measurer", "bogus"},
		{"font_size_pt", "big"},
		{"font_size_pt", "0"},
		{"chrome_timeout", "soon"},
		{"paper", "A0"},
		{"log_level", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			assert.Error(t, Set(tt.key, tt.value))
		})
	}

	// Nothing bad reached the file, so the next load still works.
	viper.Reset()
	require.NoError(t, InitializeIn(dir))
	assert.Equal(t, MeasurerEstimate, AppConfig.Measurer)
	assert.Equal(t, 10.0, AppConfig.FontSizePt)
	assert.Equal(t, "A4", AppConfig.Paper)

	require.NoError(t, Set("font_size_pt", "11"))
	assert.Equal(t, 11.0, AppConfig.FontSizePt)
}

func TestDefaultConfigNamesEveryTemplate(t *testing.T) {
	dir := setupTest(t)
	require.NoError(t, InitializeIn(dir))

	raw, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	for _, tc := range templates.All() {
		assert.Contains(t, string(raw), tc.ID)
	}
	assert.NotContains(t, string(raw), "minimal")
}
