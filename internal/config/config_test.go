package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seahorse-ai-ryan/tiledock/internal/config"
	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	// Act
	cfg := config.DefaultConfig()

	// Assert
	require.NoError(t, config.Validate(cfg))
	assert.True(t, cfg.Simplify.PruneEmptyTabs)
	assert.True(t, cfg.Simplify.PruneEmptyContainers)
	assert.False(t, cfg.Simplify.PruneSingleChildTabs)
	assert.False(t, cfg.Simplify.PruneSingleChildContainers)
	assert.True(t, cfg.Validation.Enabled)
}

func TestSimplifyConfig_Options_MapsAllToggles(t *testing.T) {
	// Arrange
	section := config.SimplifyConfig{
		PruneEmptyTabs:             true,
		PruneSingleChildContainers: true,
		AllPanesMustHaveTabs:       true,
	}

	// Act
	opts := section.Options()

	// Assert
	assert.True(t, opts.PruneEmptyTabs)
	assert.False(t, opts.PruneEmptyContainers)
	assert.False(t, opts.PruneSingleChildTabs)
	assert.True(t, opts.PruneSingleChildContainers)
	assert.True(t, opts.AllPanesMustHaveTabs)
}

func TestFloatingConfig_DefaultRect(t *testing.T) {
	// Arrange
	section := config.FloatingConfig{DefaultX: 10, DefaultY: 20, DefaultWidth: 30, DefaultHeight: 40}

	// Act / Assert
	assert.Equal(t, entity.Rect{X: 10, Y: 20, W: 30, H: 40}, section.DefaultRect())
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	// Arrange
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "loud"

	// Act
	err := config.Validate(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidate_RejectsNonPositiveFloatingSize(t *testing.T) {
	// Arrange
	cfg := config.DefaultConfig()
	cfg.Floating.DefaultWidth = 0

	// Act
	err := config.Validate(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floating.default_width")
}

func TestValidate_RejectsNegativeCascadeOffset(t *testing.T) {
	// Arrange
	cfg := config.DefaultConfig()
	cfg.Floating.CascadeOffset = -1

	// Act / Assert
	assert.Error(t, config.Validate(cfg))
}

func TestValidate_NilConfig(t *testing.T) {
	assert.Error(t, config.Validate(nil))
}

func TestWriteConfigOrdered_SortsSectionsAlphabetically(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "config.toml")

	// Act
	err := config.WriteConfigOrdered(config.DefaultConfig(), path)

	// Assert
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	floating := strings.Index(content, "[floating]")
	logging := strings.Index(content, "[logging]")
	simplify := strings.Index(content, "[simplify]")
	validation := strings.Index(content, "[validation]")
	require.NotEqual(t, -1, floating)
	require.NotEqual(t, -1, validation)
	assert.Less(t, floating, logging)
	assert.Less(t, logging, simplify)
	assert.Less(t, simplify, validation)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	err := config.WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml"))
	assert.Error(t, err)
}

func TestGenerateSchema_DescribesAllSections(t *testing.T) {
	// Act
	data, err := config.GenerateSchema()

	// Assert
	require.NoError(t, err)
	schema := string(data)
	for _, section := range []string{"simplify", "floating", "logging", "validation"} {
		assert.Contains(t, schema, section)
	}
	assert.Contains(t, schema, "prune_empty_tabs")
}

func TestGetXDGDirs_DevModeUsesWorkingDirectory(t *testing.T) {
	// Arrange
	t.Setenv("ENV", "dev")

	// Act
	dirs, err := config.GetXDGDirs()

	// Assert
	require.NoError(t, err)
	cwd, _ := os.Getwd()
	assert.Equal(t, filepath.Join(cwd, ".dev", "tiledock"), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
}

func TestGetXDGDirs_HonorsEnvironmentOverrides(t *testing.T) {
	// Arrange
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	// Act
	dirs, err := config.GetXDGDirs()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/custom-config", "tiledock"), dirs.ConfigHome)
}
