package artifactory

import "time"

// Default values for client configuration. There are no default
// timeouts: callers opt in through WithTimeouts, otherwise deadlines
// come only from the caller's context.
const (
	DefaultPort        = 80
	DefaultContextRoot = "artifactory"
	DefaultUserAgent   = "go-artifactory/1.0.0"

	// Suggested WithTimeouts values for callers who want them.
	SuggestedRequestTimeout = 30 * time.Second
	SuggestedDeployTimeout  = 10 * time.Minute
)

// Custom headers understood by the remote service.
const (
	HeaderChecksumDeploy = "X-Checksum-Deploy"
	HeaderChecksumSha1   = "X-Checksum-Sha1"
	HeaderExplodeArchive = "X-Explode-Archive"

	UserAgentHeader   = "User-Agent"
	ContentTypeHeader = "Content-Type"

	ContentTypeJSON = "application/json"
)

// HTTP verbs accepted by the request dispatcher.
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)
