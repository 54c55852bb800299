package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/confex/pkg/errors"
)

// isolate points XDG_CONFIG_HOME at an empty directory and clears CONFEX_*
// variables inherited from the environment.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, EnvPrefix) {
			t.Setenv(strings.SplitN(kv, "=", 2)[0], "")
			require.NoError(t, os.Unsetenv(strings.SplitN(kv, "=", 2)[0]))
		}
	}
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "toml", cfg.Dialect)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "\n\n", cfg.Separator)
	assert.Equal(t, 0, cfg.Log.Verbosity)
}

func TestLoadPrecedence(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "confex", "config.toml"), `
dialect = "yaml"
format = "markdown"

[log]
verbosity = 1
`)

	t.Run("user file overrides defaults", func(t *testing.T) {
		cfg, err := Load(Options{})
		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.Dialect)
		assert.Equal(t, "markdown", cfg.Format)
		assert.Equal(t, 1, cfg.Log.Verbosity)
		assert.Equal(t, "\n\n", cfg.Separator, "unset keys keep their default")
	})

	t.Run("environment overrides user file", func(t *testing.T) {
		t.Setenv("CONFEX_DIALECT", "INI")
		t.Setenv("CONFEX_LOG_VERBOSITY", "2")

		cfg, err := Load(Options{})
		require.NoError(t, err)
		assert.Equal(t, "ini", cfg.Dialect)
		assert.Equal(t, "markdown", cfg.Format)
		assert.Equal(t, 2, cfg.Log.Verbosity)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("CONFEX_DIALECT", "ini")

		cfg, err := Load(Options{Flags: map[string]interface{}{
			"dialect":       "xml",
			"log.verbosity": 3,
		}})
		require.NoError(t, err)
		assert.Equal(t, "xml", cfg.Dialect)
		assert.Equal(t, 3, cfg.Log.Verbosity)
	})
}

func TestLoadExplicitPath(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "confex", "config.toml"), `dialect = "yaml"`)

	explicit := filepath.Join(t.TempDir(), "other.toml")
	writeFile(t, explicit, `dialect = "xml"`)

	cfg, err := Load(Options{Path: explicit})
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Dialect, "explicit path replaces the XDG file")

	_, err = Load(Options{Path: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadInvalidFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "broken.toml")
	writeFile(t, path, `dialect = `)

	_, err := Load(Options{Path: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestSeparatorEscapes(t *testing.T) {
	isolate(t)
	t.Setenv("CONFEX_SEPARATOR", `\n---\n`)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "\n---\n", cfg.Separator)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "dialect", envKey("CONFEX_DIALECT"))
	assert.Equal(t, "log.verbosity", envKey("CONFEX_LOG_VERBOSITY"))
}

func TestUserConfigPath(t *testing.T) {
	home := isolate(t)
	assert.Equal(t, filepath.Join(home, "confex", "config.toml"), UserConfigPath())
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, `# dialect = "toml"`)
	assert.Contains(t, content, "# verbosity = 0")
	assert.Contains(t, content, "[log]")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line should be commented: %q", line)
	}
}
