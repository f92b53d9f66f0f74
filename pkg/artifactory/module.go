package artifactory

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/artifactly/go-artifactory/pkg/logging"
)

// ClientParams represents the parameters that can be injected into the
// client.
type ClientParams struct {
	fx.In

	// Logger for client operations
	Logger logging.Interface `name:"artifactory_logger"`
	// Alternative logger option
	AnotherLogger logging.Interface `name:"another_log" optional:"true"`
}

// Module provides the fx module for dependency injection.
var Module = fx.Provide(
	func(v *viper.Viper, params ClientParams) (*Client, error) {
		logger := params.Logger
		if logger == nil {
			logger = params.AnotherLogger
		}
		if logger == nil {
			logger = logging.Discard()
		}

		config, err := NewConfig(
			WithViper(v),
			WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("error creating client config: %+v", err)
		}

		return NewClient(config)
	})
