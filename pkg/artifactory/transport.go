package artifactory

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/artifactly/go-artifactory/pkg/logging"
)

// Transport is the pluggable HTTP collaborator every operation funnels
// through. Any implementation satisfying this shape is substitutable,
// which is how tests inject fakes and how callers swap in their own
// HTTP stack (authentication, proxies, instrumentation).
type Transport interface {
	Get(ctx context.Context, url string, opts ...RequestOption) (*Response, error)
	Post(ctx context.Context, url string, opts ...RequestOption) (*Response, error)
	Put(ctx context.Context, url string, opts ...RequestOption) (*Response, error)
	Delete(ctx context.Context, url string, opts ...RequestOption) (*Response, error)

	// Do is the generic request method for verbs outside the four above.
	Do(ctx context.Context, method, url string, opts ...RequestOption) (*Response, error)
}

// Response is what the transport hands back: status, headers, the raw
// body, and the outbound request for introspection. The dispatcher
// returns it untouched; interpreting the status code is the caller's
// business.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Request    *http.Request
}

// JSON decodes the response body into v.
func (r *Response) JSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// Success reports whether the status code is in the 2xx range.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Error materializes an *APIError for non-2xx responses, nil otherwise.
// Provided as an opt-in convenience; no operation in this library calls
// it on the caller's behalf.
func (r *Response) Error() error {
	if r.Success() {
		return nil
	}
	return NewAPIError(r.StatusCode, r.Body, r.Request)
}

// requestSpec accumulates the per-request arguments carried by
// RequestOptions: headers, body source, and content length.
type requestSpec struct {
	headers       http.Header
	body          io.Reader
	contentLength int64
}

func newRequestSpec(opts ...RequestOption) (*requestSpec, error) {
	spec := &requestSpec{
		headers:       make(http.Header),
		contentLength: -1,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(spec); err != nil {
			return nil, err
		}
	}
	return spec, nil
}

// RequestOption configures a single outbound request.
type RequestOption func(*requestSpec) error

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(s *requestSpec) error {
		s.headers.Set(key, value)
		return nil
	}
}

// WithHeaders adds a set of headers to the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(s *requestSpec) error {
		for k, v := range headers {
			s.headers.Set(k, v)
		}
		return nil
	}
}

// WithBody attaches an in-memory request body.
func WithBody(body []byte) RequestOption {
	return func(s *requestSpec) error {
		s.body = bytes.NewReader(body)
		s.contentLength = int64(len(body))
		return nil
	}
}

// WithBodyReader attaches a streaming request body. The reader is
// consumed, not buffered; pass size -1 when the length is unknown.
func WithBodyReader(body io.Reader, size int64) RequestOption {
	return func(s *requestSpec) error {
		s.body = body
		s.contentLength = size
		return nil
	}
}

// WithJSON marshals v as the request body and sets the JSON content
// type.
func WithJSON(v interface{}) RequestOption {
	return func(s *requestSpec) error {
		data, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "marshaling request body")
		}
		s.body = bytes.NewReader(data)
		s.contentLength = int64(len(data))
		s.headers.Set(ContentTypeHeader, ContentTypeJSON)
		return nil
	}
}

var (
	// pooledHTTPClient is shared across all default transports so
	// connections are reused between client instances.
	pooledHTTPClient *http.Client
	clientOnce       sync.Once
)

// getPooledHTTPClient returns the shared HTTP client with connection
// pooling configured.
func getPooledHTTPClient() *http.Client {
	clientOnce.Do(func() {
		transport := &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			MaxConnsPerHost:     20,
			IdleConnTimeout:     90 * time.Second,

			ForceAttemptHTTP2: true,

			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,

			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,

			DisableCompression: false,
		}

		pooledHTTPClient = &http.Client{
			Transport: transport,
			// Timeouts are enforced per-request through the context.
			Timeout: 0,
		}
	})

	return pooledHTTPClient
}

// httpTransport is the default Transport, built on net/http with the
// shared pooled client.
type httpTransport struct {
	client    *http.Client
	userAgent string
	logger    logging.Interface
}

// NewHTTPTransport creates the default transport. A nil logger
// discards transport-level logs.
func NewHTTPTransport(userAgent string, logger logging.Interface) Transport {
	if logger == nil {
		logger = logging.Discard()
	}
	return &httpTransport{
		client:    getPooledHTTPClient(),
		userAgent: userAgent,
		logger:    logger,
	}
}

func (t *httpTransport) Get(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return t.Do(ctx, MethodGet, url, opts...)
}

func (t *httpTransport) Post(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return t.Do(ctx, MethodPost, url, opts...)
}

func (t *httpTransport) Put(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return t.Do(ctx, MethodPut, url, opts...)
}

func (t *httpTransport) Delete(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return t.Do(ctx, MethodDelete, url, opts...)
}

func (t *httpTransport) Do(ctx context.Context, method, url string, opts ...RequestOption) (*Response, error) {
	spec, err := newRequestSpec(opts...)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, spec.body)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s request for %s", method, url)
	}

	if spec.contentLength >= 0 {
		req.ContentLength = spec.contentLength
	}

	for key, values := range spec.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if t.userAgent != "" && req.Header.Get(UserAgentHeader) == "" {
		req.Header.Set(UserAgentHeader, t.userAgent)
	}

	t.logger.WithField("method", method).WithField("url", url).Debug("dispatching request")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Request:    resp.Request,
	}, nil
}
