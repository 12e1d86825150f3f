package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vntok/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vntok.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvLexiconPath, "")
	t.Setenv(config.EnvLogLevel, "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(config.EnvLexiconPath, "")
	t.Setenv(config.EnvLogLevel, "")

	cfg, err := config.Load(writeFile(t, `
lexicon_path: /data/vi.dfa
user_lexicon_path: /data/user.txt
fold_diacritics: true
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, "/data/vi.dfa", cfg.LexiconPath)
	assert.Equal(t, "/data/user.txt", cfg.UserLexiconPath)
	assert.True(t, cfg.FoldDiacritics)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "absent keys keep their default")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLexiconPath, "/env/vi.dfa")
	t.Setenv(config.EnvLogLevel, "warn")

	cfg, err := config.Load(writeFile(t, "lexicon_path: /data/vi.dfa\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "/env/vi.dfa", cfg.LexiconPath)
	assert.Equal(t, logrus.WarnLevel, cfg.Logger().GetLevel())
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(config.EnvLexiconPath, "")
	t.Setenv(config.EnvLogLevel, "")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "lexicon_path: [unclosed"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "lexicon_path: ''\n"))
	assert.ErrorIs(t, err, config.ErrNoLexicon)

	_, err = config.Load(writeFile(t, "log_level: loud\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "log_format: xml\n"))
	assert.Error(t, err)
}

func TestLogger_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "json"
	_, ok := cfg.Logger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}
