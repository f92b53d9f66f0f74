package artifactory

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig(WithBaseURL("http://example.com"))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, c.Port)
	assert.Equal(t, DefaultContextRoot, c.ContextRoot)
	assert.Equal(t, DefaultUserAgent, c.UserAgent)
	assert.Empty(t, c.Repository)

	// Timeouts and progress bars are strictly opt-in.
	assert.Zero(t, c.RequestTimeout)
	assert.Zero(t, c.DeployTimeout)
	assert.True(t, c.DisableProgressBars)
}

func TestProgressBarsOffByDefault(t *testing.T) {
	c, err := NewConfig(WithBaseURL("http://example.com"))
	require.NoError(t, err)

	pm := c.CreateProgressManager()
	assert.Nil(t, pm.CreateUploadProgressBar("artifact.bin", 1<<20),
		"no progress bar unless WithProgressBars(true) was given")

	require.NoError(t, c.Apply(WithProgressBars(true)))
	assert.NotNil(t, c.CreateProgressManager().CreateUploadProgressBar("artifact.bin", 1<<20))
}

func TestConfigOptions(t *testing.T) {
	c, err := NewConfig(
		WithBaseURL("https://repo.example.com/"),
		WithPort(8443),
		WithContextRoot("tools"),
		WithRepository("/libs-release/"),
		WithUserAgent("custom-agent/2.0"),
		WithTimeouts(5*time.Second, time.Minute),
	)
	require.NoError(t, err)

	assert.Equal(t, "https://repo.example.com", c.BaseURL)
	assert.Equal(t, 8443, c.Port)
	assert.Equal(t, "tools", c.ContextRoot)
	assert.Equal(t, "libs-release", c.Repository, "repository is stored normalized")
	assert.Equal(t, "custom-agent/2.0", c.UserAgent)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, time.Minute, c.DeployTimeout)
}

func TestConfigOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "empty base URL", opt: WithBaseURL("")},
		{name: "zero port", opt: WithPort(0)},
		{name: "port too large", opt: WithPort(70000)},
		{name: "nil logger", opt: WithLogger(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(WithBaseURL("http://example.com"), tt.opt)
			assert.Error(t, err)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "base URL without scheme",
			mutate:  func(c *Config) { c.BaseURL = "example.com" },
			wantErr: true,
		},
		{
			name:    "unnormalized repository",
			mutate:  func(c *Config) { c.Repository = "/repo/" },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewConfig(WithBaseURL("http://example.com"))
			require.NoError(t, err)
			tt.mutate(c)

			err = c.ValidateConfig()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithViper(t *testing.T) {
	v := viper.New()
	v.Set("base_url", "http://viped.example.com")
	v.Set("port", 8081)
	v.Set("context_root", "art")
	v.Set("repository", "/snapshots/")
	v.Set("user_agent", "viper-agent/1.0")

	c, err := NewConfig(WithViper(v))
	require.NoError(t, err)

	assert.Equal(t, "http://viped.example.com", c.BaseURL)
	assert.Equal(t, 8081, c.Port)
	assert.Equal(t, "art", c.ContextRoot)
	assert.Equal(t, "snapshots", c.Repository)
	assert.Equal(t, "viper-agent/1.0", c.UserAgent)
	assert.NoError(t, c.ValidateConfig())
}

func TestContextRootHandling(t *testing.T) {
	tests := []struct {
		name         string
		contextRoot  string
		artifactRoot string
	}{
		{name: "default", contextRoot: "artifactory", artifactRoot: "http://h:80/artifactory"},
		{name: "slash is empty", contextRoot: "/", artifactRoot: "http://h:80"},
		{name: "empty", contextRoot: "", artifactRoot: "http://h:80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewConfig(WithBaseURL("http://h"), WithContextRoot(tt.contextRoot))
			require.NoError(t, err)
			assert.Equal(t, tt.artifactRoot, c.ArtifactRoot())
			assert.Equal(t, tt.artifactRoot+"/api", c.APIRoot())
		})
	}
}
