package artifactory

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// deployRequest is the assembled deployment: target URL with matrix
// properties attached, custom headers, and a content source.
type deployRequest struct {
	properties Properties
	headers    map[string]string
	sha1       string
	checksum   bool
	explode    bool
}

// DeployOption configures a deployment.
type DeployOption func(*deployRequest) error

// WithDeployProperties attaches matrix-encoded properties to the
// deployed item.
func WithDeployProperties(p Properties) DeployOption {
	return func(r *deployRequest) error {
		r.properties = p
		return nil
	}
}

// WithSha1 supplies the SHA-1 of the content. Sets both checksum
// headers so the remote service can deduplicate against already-stored
// content; the body may then be omitted entirely (checksum deploy).
func WithSha1(sha1 string) DeployOption {
	return func(r *deployRequest) error {
		if sha1 == "" {
			return NewArgumentError("sha1", sha1, "sha1 must not be empty")
		}
		r.sha1 = sha1
		r.checksum = true
		return nil
	}
}

// WithExplodeArchive instructs the remote service to explode the
// uploaded archive in place.
func WithExplodeArchive() DeployOption {
	return func(r *deployRequest) error {
		r.explode = true
		return nil
	}
}

// WithDeployHeader adds a custom header to the deployment request.
func WithDeployHeader(key, value string) DeployOption {
	return func(r *deployRequest) error {
		if r.headers == nil {
			r.headers = make(map[string]string)
		}
		r.headers[key] = value
		return nil
	}
}

// buildDeployRequest resolves the options into the final URL and
// header set. The matrix-encoded properties attach directly after the
// path with the path-parameter ";" convention: .../path;key=val;k2=v2.
func (c *Client) buildDeployRequest(path string, opts ...DeployOption) (string, map[string]string, error) {
	r := &deployRequest{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return "", nil, err
		}
	}

	u := c.artifactURL(c.repoPath(path))
	if len(r.properties) > 0 {
		matrix, err := r.properties.EncodeMatrix()
		if err != nil {
			return "", nil, err
		}
		u += ";" + matrix
	}

	headers := make(map[string]string, len(r.headers)+3)
	for k, v := range r.headers {
		headers[k] = v
	}
	if r.checksum {
		headers[HeaderChecksumDeploy] = "true"
		headers[HeaderChecksumSha1] = r.sha1
	}
	if r.explode {
		headers[HeaderExplodeArchive] = "true"
	}

	return u, headers, nil
}

// Deploy uploads content to the given repository-relative path as a
// PUT, streaming the body rather than buffering it. A nil content with
// WithSha1 performs a checksum-only deploy. The response is whatever
// the transport returned; a 404 for a missing parent or a 409 on
// checksum mismatch is the caller's to interpret.
func (c *Client) Deploy(ctx context.Context, path string, content io.Reader, opts ...DeployOption) (*Response, error) {
	return c.deploy(ctx, path, content, -1, opts...)
}

func (c *Client) deploy(ctx context.Context, path string, content io.Reader, size int64, opts ...DeployOption) (*Response, error) {
	u, headers, err := c.buildDeployRequest(path, opts...)
	if err != nil {
		return nil, err
	}

	// Uploads get the configured deploy timeout, not the request
	// timeout. Only set when a caller opted in via WithTimeouts, and
	// never over a caller deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.config.DeployTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.DeployTimeout)
		defer cancel()
	}

	reqOpts := []RequestOption{WithHeaders(headers)}
	if content != nil {
		reqOpts = append(reqOpts, WithBodyReader(content, size))
	}

	return c.put(ctx, u, reqOpts...)
}

// DeployFromFile uploads the named file, streaming it from disk to
// bound memory use for large artifacts. The file handle is closed on
// every exit path, including transport failure.
func (c *Client) DeployFromFile(ctx context.Context, path, filename string, opts ...DeployOption) (*Response, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s for deployment", filename)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stating %s", filename)
	}

	pm := c.config.CreateProgressManager()
	repoPath := c.repoPath(path)
	pm.LogDeployStart(repoPath, info.Size())

	var content io.Reader = f
	if bar := pm.CreateUploadProgressBar(filename, info.Size()); bar != nil {
		content = NewProgressReader(bar, f)
	}

	start := time.Now()
	resp, err := c.deploy(ctx, path, content, info.Size(), opts...)
	if err != nil {
		pm.LogError("deploy", repoPath, err)
		return nil, err
	}

	pm.LogDeployComplete(repoPath, time.Since(start), info.Size())
	return resp, nil
}

// DeployByChecksum performs a checksum-only deploy: only the SHA-1 is
// sent and no body, instructing the remote service to link
// already-stored identical content.
func (c *Client) DeployByChecksum(ctx context.Context, path, sha1 string, opts ...DeployOption) (*Response, error) {
	opts = append(opts, WithSha1(sha1))
	return c.deploy(ctx, path, nil, -1, opts...)
}

// DeployArtifactsFromArchive uploads an archive and has the remote
// service explode it at the target path.
func (c *Client) DeployArtifactsFromArchive(ctx context.Context, path string, archive io.Reader, opts ...DeployOption) (*Response, error) {
	opts = append(opts, WithExplodeArchive())
	return c.deploy(ctx, path, archive, -1, opts...)
}
