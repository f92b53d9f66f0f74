package configutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leafConfig = `imports:
  - intermediate.yaml

a:
  b: 1
`

const intermediateConfig = `imports:
  - root.yaml
  -

a:
  c: 2
`

const rootConfig = `
a:
  b: 2
  d: 3
`

const expectedConfig = `a:
    b: 1
    c: 2
    d: 3
imports:
    - intermediate.yaml
`

func TestConfigFileImports(t *testing.T) {
	t.Run("should import config files correctly", func(t *testing.T) {
		v := viper.New()
		tempDir := t.TempDir()

		leafConfigPath := filepath.Join(tempDir, "leaf.yaml")
		require.NoError(t, os.WriteFile(leafConfigPath, []byte(leafConfig), 0666))

		intermediateConfigPath := filepath.Join(tempDir, "intermediate.yaml")
		require.NoError(t, os.WriteFile(intermediateConfigPath, []byte(intermediateConfig), 0666))

		rootConfigPath := filepath.Join(tempDir, "root.yaml")
		require.NoError(t, os.WriteFile(rootConfigPath, []byte(rootConfig), 0666))

		err := ResolveAndMergeFile(v, leafConfigPath)
		assert.NoError(t, err, "should not error creating config")

		outputConfigPath := filepath.Join(tempDir, "assert.yaml")
		require.NoError(t, v.WriteConfigAs(outputConfigPath))

		writtenConfig, err := os.ReadFile(outputConfigPath)
		assert.NoError(t, err, "should not error reading config file")
		assert.Equal(t, expectedConfig, string(writtenConfig))
	})

	t.Run("should error when importing nonexistent configs", func(t *testing.T) {
		v := viper.New()
		tempDir := t.TempDir()

		nonexistentConfigPath := filepath.Join(tempDir, "nonexistent.yaml")
		badConfig := fmt.Sprintf("imports:\n- \"%s\"", nonexistentConfigPath)

		configPath := filepath.Join(tempDir, "test.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(badConfig), 0666))

		err := ResolveAndMergeFile(v, configPath)
		assert.Error(t, err, "should error creating config")
		assert.Contains(t, err.Error(), "no such file or directory")
	})

	t.Run("should error when importing malformed configs", func(t *testing.T) {
		v := viper.New()
		tempDir := t.TempDir()

		leafConfigPath := filepath.Join(tempDir, "leaf.yaml")
		require.NoError(t, os.WriteFile(leafConfigPath, []byte(leafConfig), 0666))

		// ensure the intermediate config is malformed
		intermediateConfigPath := filepath.Join(tempDir, "intermediate.yaml")
		require.NoError(t, os.WriteFile(intermediateConfigPath, []byte("malformed"), 0666))

		err := ResolveAndMergeFile(v, leafConfigPath)
		assert.Error(t, err, "should error creating config")
		assert.Contains(t, err.Error(), "could not resolve configuration imports")
	})

	t.Run("should surface error when it occurs in child config", func(t *testing.T) {
		v := viper.New()
		tempDir := t.TempDir()

		leafConfigPath := filepath.Join(tempDir, "leaf.yaml")
		require.NoError(t, os.WriteFile(leafConfigPath, []byte(leafConfig), 0666))

		// the root config (referenced by the intermediate config) does not
		// exist, so the error should surface up
		intermediateConfigPath := filepath.Join(tempDir, "intermediate.yaml")
		require.NoError(t, os.WriteFile(intermediateConfigPath, []byte(intermediateConfig), 0666))

		err := ResolveAndMergeFile(v, leafConfigPath)
		assert.Error(t, err, "should error creating config")
		assert.Contains(t, err.Error(), "no such file or directory")
	})

	t.Run("should reject unsupported extensions", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "test.conf")
		require.NoError(t, os.WriteFile(configPath, []byte("a: 1"), 0666))

		err := ResolveAndMergeFile(viper.New(), configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported configuration file extension")
	})
}

func TestBindEnvsRecursive(t *testing.T) {
	type nested struct {
		Port int `mapstructure:"port"`
	}
	type root struct {
		BaseURL string `mapstructure:"base_url"`
		Server  nested `mapstructure:"server"`
	}

	v := viper.New()
	v.SetEnvPrefix("test")
	v.AutomaticEnv()

	t.Setenv("TEST_BASE_URL", "http://example.com")

	cfg := &root{}
	require.NoError(t, BindEnvsRecursive(v, cfg, ""))
	require.NoError(t, v.Unmarshal(cfg))

	assert.Equal(t, "http://example.com", cfg.BaseURL)
}
