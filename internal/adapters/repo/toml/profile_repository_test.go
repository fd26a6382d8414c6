package toml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "wttrbot")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))
}

func TestLoadDefaultsWithoutProfileFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	profile, err := repo.Load()
	require.NoError(t, err)

	assert.Empty(t, profile.Server)
	assert.Equal(t, 6697, profile.Port)
	assert.Equal(t, "wttrbot", profile.Nick)
	assert.True(t, profile.TLS)
}

func TestLoadReadsProfileFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeProfile(t, home, `server = "irc.libera.chat"
port = 6667
channel = "#weather"
nick = "forecaster"
tls = false

[aliases]
alice = "New York, NY"
`)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	profile, err := repo.Load()
	require.NoError(t, err)

	assert.Equal(t, "irc.libera.chat", profile.Server)
	assert.Equal(t, 6667, profile.Port)
	assert.Equal(t, "#weather", profile.Channel)
	assert.Equal(t, "forecaster", profile.Nick)
	assert.False(t, profile.TLS)
	assert.Equal(t, map[string]string{"alice": "New York, NY"}, profile.Aliases)
}

func TestEnvOverridesProfile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeProfile(t, home, `server = "irc.libera.chat"`+"\n")
	t.Setenv("WTTRBOT_SERVER", "irc.example.org")
	t.Setenv("WTTRBOT_CHANNEL", "#wx")

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	profile, err := repo.Load()
	require.NoError(t, err)

	assert.Equal(t, "irc.example.org", profile.Server)
	assert.Equal(t, "#wx", profile.Channel)
}

func TestInitFileWritesDefaultProfile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	path, err := repo.InitFile(false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "wttrbot", "config.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "port = 6697")
	assert.Contains(t, string(data), "nick = 'wttrbot'")

	_, err = repo.InitFile(false)
	require.ErrorIs(t, err, ErrProfileExists)

	_, err = repo.InitFile(true)
	require.NoError(t, err)
}
