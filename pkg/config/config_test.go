package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 24, cfg.Widget.MaxCandidates)
	assert.Equal(t, 1, cfg.Widget.MinTokenLen)
	assert.Equal(t, 60, cfg.Widget.MaxTokenLen)
	assert.Equal(t, "", cfg.Table.Path)
	assert.Equal(t, 8, cfg.CLI.DefaultLimit)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[widget]
max_candidates = 5
min_token_len = 2

[table]
path = "/opt/tables/english.toml"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Widget.MaxCandidates)
	assert.Equal(t, 2, cfg.Widget.MinTokenLen)
	assert.Equal(t, 60, cfg.Widget.MaxTokenLen, "unset fields keep defaults")
	assert.Equal(t, "/opt/tables/english.toml", cfg.Table.Path)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// max_candidates has the wrong type; the valid fields around it
	// should still be salvaged.
	content := `
[widget]
max_candidates = "lots"
min_token_len = 2

[cli]
default_limit = 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Widget.MaxCandidates, "bad value falls back to default")
	assert.Equal(t, 2, cfg.Widget.MinTokenLen)
	assert.Equal(t, 4, cfg.CLI.DefaultLimit)
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	// A second init loads the file it just wrote.
	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[widget]\nmax_candidates = 3\n"), 0644))

	cfg, activePath, err := LoadConfigWithPriority(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Widget.MaxCandidates)
	assert.Equal(t, path, activePath)
}

func TestEffectiveCLILimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CLI.DefaultLimit = 4

	assert.Equal(t, 9, cfg.EffectiveCLILimit(9, true), "an explicit flag wins")
	assert.Equal(t, 4, cfg.EffectiveCLILimit(8, false), "the configured default applies otherwise")

	cfg.CLI.DefaultLimit = 0
	assert.Equal(t, 8, cfg.EffectiveCLILimit(8, false), "unset config keeps the flag value")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Widget.MaxCandidates = 7
	cfg.Table.Path = "words.toml"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
