package artifactory

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/artifactly/go-artifactory/pkg/logging"
)

// Client is a thin mapping of named methods onto the remote REST API.
// Every operation builds a URL from the immutable configuration and
// hands it to the transport; whatever the transport returns, the
// caller gets.
type Client struct {
	config    *Config
	logger    logging.Interface
	transport Transport
}

// NewClient creates a new client with the provided configuration. The
// default transport is the pooled net/http one; swap it with
// SetTransport to substitute a different HTTP implementation.
func NewClient(config *Config) (*Client, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	logger := config.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Client{
		config:    config,
		logger:    logger,
		transport: NewHTTPTransport(config.UserAgent, logger),
	}, nil
}

// New creates a new client from options.
func New(opts ...Option) (*Client, error) {
	config, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return NewClient(config)
}

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *Config {
	return c.config
}

// Transport returns the current transport handle.
func (c *Client) Transport() Transport {
	return c.transport
}

// SetTransport swaps the transport handle. This is the only mutable
// field on the client and the swap is not synchronized; a caller who
// swaps concurrently with in-flight requests owns that race.
func (c *Client) SetTransport(t Transport) {
	c.transport = t
}

// ArtifactRoot returns the root URL under which artifacts resolve.
func (c *Client) ArtifactRoot() string {
	return c.config.ArtifactRoot()
}

// APIRoot returns the root URL of the REST API.
func (c *Client) APIRoot() string {
	return c.config.APIRoot()
}

// repoPath normalizes the caller's path against the configured
// default repository.
func (c *Client) repoPath(path string) string {
	return NormalizePath(c.config.Repository, path)
}

// apiURL composes an API-root URL from path segments. Segments are
// escaped individually; already-normalized repo paths keep their
// internal slashes.
func (c *Client) apiURL(segments ...string) string {
	return joinURL(c.APIRoot(), segments...)
}

// artifactURL composes an artifact-root URL for a repo path.
func (c *Client) artifactURL(repoPath string) string {
	return c.ArtifactRoot() + "/" + repoPath
}

// joinURL appends path segments to a base URL, percent-encoding each
// segment but preserving slashes within a segment so repo paths pass
// through intact.
func joinURL(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		b.WriteString("/")
		b.WriteString(escapePath(segment))
	}
	return b.String()
}

// escapePath escapes each slash-separated component of a path
// separately, preserving the slashes themselves.
func escapePath(path string) string {
	parts := strings.Split(path, "/")
	escaped := make([]string, len(parts))
	for i, part := range parts {
		escaped[i] = url.PathEscape(part)
	}
	return strings.Join(escaped, "/")
}

// dispatch is the single chokepoint between the public operations and
// the transport. It forwards the verb and arguments unchanged and
// performs no retries, no timeout enforcement, and no inspection of
// the response; transport failures propagate to the caller as-is. A
// request timeout exists only when a caller explicitly configured one
// through WithTimeouts, and never overrides a caller deadline.
func (c *Client) dispatch(ctx context.Context, method, url string, opts ...RequestOption) (*Response, error) {
	if c.config.EnableDetailedLogs {
		c.logger.WithField("method", method).WithField("url", url).Debug("dispatching")
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.RequestTimeout)
		defer cancel()
	}

	switch method {
	case MethodGet:
		return c.transport.Get(ctx, url, opts...)
	case MethodPost:
		return c.transport.Post(ctx, url, opts...)
	case MethodPut:
		return c.transport.Put(ctx, url, opts...)
	case MethodDelete:
		return c.transport.Delete(ctx, url, opts...)
	default:
		return c.transport.Do(ctx, method, url, opts...)
	}
}

// get/post/put/del are shorthands used by the endpoint catalog.
func (c *Client) get(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return c.dispatch(ctx, MethodGet, url, opts...)
}

func (c *Client) post(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return c.dispatch(ctx, MethodPost, url, opts...)
}

func (c *Client) put(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return c.dispatch(ctx, MethodPut, url, opts...)
}

func (c *Client) del(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return c.dispatch(ctx, MethodDelete, url, opts...)
}
