package artifactory

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artifactly/go-artifactory/pkg/logging"
)

func TestHTTPTransportRoundTrip(t *testing.T) {
	var gotMethod, gotPath, gotAgent, gotCustom string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.RequestURI()
		gotAgent = r.Header.Get("User-Agent")
		gotCustom = r.Header.Get("X-Custom")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("X-Reply", "yes")
		w.WriteHeader(201)
		_, _ = w.Write([]byte(`{"created":true}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport("test-agent/1.0", logging.Discard())

	resp, err := tr.Put(context.Background(), server.URL+"/repo/foo.jar;ver=1.0",
		WithHeader("X-Custom", "val"),
		WithBody([]byte("payload")))
	require.NoError(t, err)

	assert.Equal(t, "PUT", gotMethod)
	assert.Equal(t, "/repo/foo.jar;ver=1.0", gotPath)
	assert.Equal(t, "test-agent/1.0", gotAgent)
	assert.Equal(t, "val", gotCustom)
	assert.Equal(t, "payload", string(gotBody))

	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "yes", resp.Header.Get("X-Reply"))
	assert.Equal(t, `{"created":true}`, string(resp.Body))
	require.NotNil(t, resp.Request)
	assert.Equal(t, "PUT", resp.Request.Method)

	var decoded struct {
		Created bool `json:"created"`
	}
	require.NoError(t, resp.JSON(&decoded))
	assert.True(t, decoded.Created)
}

func TestHTTPTransportStreamingBody(t *testing.T) {
	var received string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.WriteHeader(200)
	}))
	defer server.Close()

	tr := NewHTTPTransport("", nil)

	body := strings.NewReader("streamed content")
	resp, err := tr.Put(context.Background(), server.URL+"/stream",
		WithBodyReader(body, int64(body.Len())))
	require.NoError(t, err)

	assert.True(t, resp.Success())
	assert.Equal(t, "streamed content", received)
}

func TestHTTPTransportJSONOption(t *testing.T) {
	var contentType string
	var received []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		received, _ = io.ReadAll(r.Body)
		w.WriteHeader(200)
	}))
	defer server.Close()

	tr := NewHTTPTransport("", nil)

	_, err := tr.Post(context.Background(), server.URL+"/api/security/users/bob",
		WithJSON(map[string]string{"email": "bob@example.com"}))
	require.NoError(t, err)

	assert.Equal(t, ContentTypeJSON, contentType)
	assert.JSONEq(t, `{"email":"bob@example.com"}`, string(received))
}

func TestHTTPTransportContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	tr := NewHTTPTransport("", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Get(ctx, server.URL+"/slow")
	assert.Error(t, err)
}

func TestResponseError(t *testing.T) {
	ok := &Response{StatusCode: 204}
	assert.True(t, ok.Success())
	assert.NoError(t, ok.Error())

	bad := &Response{StatusCode: 409, Body: []byte("conflict")}
	assert.False(t, bad.Success())

	err := bad.Error()
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, "conflict", string(apiErr.Body))
}
