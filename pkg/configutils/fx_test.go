package configutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestProvideViperFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("base_url: http://example.com\n"), 0666))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("debug", true, "")

	var v *viper.Viper
	app := fx.New(
		ProvideViperFromFile("test", flags, configPath),
		fx.Populate(&v),
		fx.NopLogger,
	)
	require.NoError(t, app.Err())

	require.Equal(t, "http://example.com", v.GetString("base_url"))
	require.True(t, v.GetBool("debug"))
}

func TestProvideViperFromFileRequiresPath(t *testing.T) {
	var v *viper.Viper
	app := fx.New(
		ProvideViperFromFile("test", nil, ""),
		fx.Populate(&v),
		fx.NopLogger,
	)
	require.Error(t, app.Err())
}
