package artifactory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/artifactly/go-artifactory/pkg/configutils"
	"github.com/artifactly/go-artifactory/pkg/logging"
)

// Config represents the configuration for the Artifactory client.
// It is immutable after construction; the transport handle on the
// Client is the only state that may be swapped afterwards.
type Config struct {
	Logger logging.Interface

	// BaseURL is the scheme+host of the remote service, without port
	// or context root, e.g. "http://artifactory.example.com".
	BaseURL string `mapstructure:"base_url" validate:"required"`

	// Port the service listens on.
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`

	// ContextRoot under which the service is mounted. A literal "/" is
	// treated as empty.
	ContextRoot string `mapstructure:"context_root"`

	// Repository is the default repository name; stored normalized,
	// with no leading or trailing slash.
	Repository string `mapstructure:"repository"`

	UserAgent           string        `mapstructure:"user_agent"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	DeployTimeout       time.Duration `mapstructure:"deploy_timeout"`
	DisableProgressBars bool          `mapstructure:"disable_progress_bars"`
	EnableDetailedLogs  bool          `mapstructure:"enable_detailed_logs"`
}

// defaultConfig returns a default configuration. Timeouts default to
// zero (no deadline beyond the caller's context) and progress bars are
// off; both are opt-in.
func defaultConfig() *Config {
	return &Config{
		Port:                DefaultPort,
		ContextRoot:         DefaultContextRoot,
		UserAgent:           DefaultUserAgent,
		DisableProgressBars: true,
	}
}

// Option represents a configuration option function.
type Option func(*Config) error

// Apply applies the given options to the configuration.
func (c *Config) Apply(opts ...Option) error {
	for _, o := range opts {
		if o == nil {
			continue
		}

		if err := o(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig builds and returns a new configuration from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := defaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// WithLogger specifies the logger.
func WithLogger(logger logging.Interface) Option {
	return func(c *Config) error {
		if logger == nil {
			return errors.New("invalid logger nil")
		}

		c.Logger = logger
		return nil
	}
}

// WithBaseURL specifies the scheme+host of the remote service.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return errors.New("base URL cannot be empty")
		}
		c.BaseURL = strings.TrimSuffix(baseURL, "/")
		return nil
	}
}

// WithPort specifies the service port.
func WithPort(port int) Option {
	return func(c *Config) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		c.Port = port
		return nil
	}
}

// WithContextRoot specifies the context root. A literal "/" means the
// service is mounted at the root and is treated as empty.
func WithContextRoot(contextRoot string) Option {
	return func(c *Config) error {
		c.ContextRoot = contextRoot
		return nil
	}
}

// WithRepository specifies the default repository. The name is stored
// normalized, without leading or trailing slashes.
func WithRepository(repository string) Option {
	return func(c *Config) error {
		c.Repository = NormalizePath(repository, "")
		return nil
	}
}

// WithUserAgent specifies the user agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithTimeouts specifies the request and deploy timeouts.
func WithTimeouts(request, deploy time.Duration) Option {
	return func(c *Config) error {
		if request > 0 {
			c.RequestTimeout = request
		}
		if deploy > 0 {
			c.DeployTimeout = deploy
		}
		return nil
	}
}

// WithProgressBars enables or disables progress bars for streamed
// deployments.
func WithProgressBars(enabled bool) Option {
	return func(c *Config) error {
		c.DisableProgressBars = !enabled
		return nil
	}
}

// WithDetailedLogs enables or disables per-request detailed logging.
func WithDetailedLogs(enabled bool) Option {
	return func(c *Config) error {
		c.EnableDetailedLogs = enabled
		return nil
	}
}

// WithViper attempts to resolve the configuration using Viper.
func WithViper(v *viper.Viper) Option {
	return func(c *Config) error {
		// Initialize with defaults first
		*c = *defaultConfig()

		if err := configutils.BindEnvsRecursive(v, c, "artifactory"); err != nil {
			return fmt.Errorf("error occurred when binding envs: %+v", err)
		}

		if err := v.Unmarshal(c); err != nil {
			return fmt.Errorf("error occurred when unmarshalling config: %+v", err)
		}

		c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
		c.Repository = NormalizePath(c.Repository, "")

		return nil
	}
}

// ValidateConfig validates the configuration.
func (c *Config) ValidateConfig() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	// Additional custom validations, aggregated so a bad config
	// surfaces every problem at once.
	var result *multierror.Error
	if !strings.Contains(c.BaseURL, "://") {
		result = multierror.Append(result, fmt.Errorf("base URL %q has no scheme", c.BaseURL))
	}
	if strings.HasSuffix(c.BaseURL, "/") {
		result = multierror.Append(result, fmt.Errorf("base URL %q must not end with a slash", c.BaseURL))
	}
	if strings.HasPrefix(c.Repository, "/") || strings.HasSuffix(c.Repository, "/") {
		result = multierror.Append(result, fmt.Errorf("repository %q is not normalized", c.Repository))
	}
	if c.RequestTimeout < 0 {
		result = multierror.Append(result, errors.New("request timeout cannot be negative"))
	}

	return result.ErrorOrNil()
}

// contextRoot returns the effective context root, with the literal "/"
// collapsed to empty.
func (c *Config) contextRoot() string {
	root := strings.Trim(c.ContextRoot, "/")
	return root
}

// ArtifactRoot returns the root URL under which artifacts are resolved.
func (c *Config) ArtifactRoot() string {
	root := fmt.Sprintf("%s:%d", c.BaseURL, c.Port)
	if cr := c.contextRoot(); cr != "" {
		root += "/" + cr
	}
	return root
}

// APIRoot returns the root URL of the REST API.
func (c *Config) APIRoot() string {
	return c.ArtifactRoot() + "/api"
}

// CreateProgressManager creates a progress manager from the configuration.
func (c *Config) CreateProgressManager() *ProgressManager {
	return NewProgressManager(
		c.Logger,
		!c.DisableProgressBars,
		c.EnableDetailedLogs,
	)
}
