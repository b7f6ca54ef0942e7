package config

import (
	"os"
	"path/filepath"
	"testing"

	"codedump/pkg/collect"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config search at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestInit_Defaults(t *testing.T) {
	isolate(t)
	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Out:        collect.DefaultOutput,
		UseBanner:  true,
		IgnoreFile: collect.DefaultIgnoreFileName,
	}, cfg)
}

func TestInit_ConfigFileInXDGDir(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, "codedump", "config.yaml"), "out: all.txt\nexclude: \"*.md\"\nuse_banner: false\n")

	v := viper.New()
	require.NoError(t, Init(v, ""))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "all.txt", cfg.Out)
	assert.Equal(t, "*.md", cfg.Exclude)
	assert.False(t, cfg.UseBanner)
	assert.Equal(t, filepath.Join(Dir(), "config.yaml"), v.ConfigFileUsed())
}

func TestInit_ExplicitConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "verbose: true\nhidden: true\nignore_file: .myignore\n")

	v := viper.New()
	require.NoError(t, Init(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Hidden)
	assert.Equal(t, ".myignore", cfg.IgnoreFile)
	assert.Equal(t, collect.DefaultOutput, cfg.Out)
}

func TestInit_EnvironmentOverridesFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, "codedump", "config.yaml"), "out: file.txt\n")
	t.Setenv("CODEDUMP_OUT", "env.txt")
	t.Setenv("CODEDUMP_NO_IGNORE", "true")

	v := viper.New()
	require.NoError(t, Init(v, ""))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "env.txt", cfg.Out)
	assert.True(t, cfg.NoIgnore)
}

func TestInit_Errors(t *testing.T) {
	isolate(t)

	t.Run("missing explicit file", func(t *testing.T) {
		err := Init(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		writeConfig(t, path, "out: [unterminated\n")
		require.Error(t, Init(viper.New(), path))
	})
}

func TestConfig_Arguments(t *testing.T) {
	cfg := &Config{
		Out:        "dump.txt",
		Exclude:    "*.md",
		Verbose:    true,
		UseBanner:  true,
		Hidden:     true,
		NoIgnore:   true,
		IgnoreFile: ".myignore",
	}

	assert.Equal(t, collect.Arguments{
		Root:           "src",
		Output:         "dump.txt",
		Exclude:        "*.md",
		Verbose:        true,
		UseBanner:      true,
		Hidden:         true,
		NoIgnore:       true,
		IgnoreFileName: ".myignore",
	}, cfg.Arguments("src"))
}
