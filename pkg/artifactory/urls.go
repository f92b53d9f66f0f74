package artifactory

import (
	"path"
	"strings"
)

// Endpoint URL construction. All helpers here are pure string
// builders; none performs I/O. Each endpoint family shares one
// parameterized builder so the catalog methods stay one-liners.

// storageURL builds {api_root}/storage/{repoPath} with an optional
// raw query suffix (already encoded by the caller).
func (c *Client) storageURL(repoPath, query string) string {
	u := c.apiURL("storage", repoPath)
	if query != "" {
		u += "?" + query
	}
	return u
}

// buildURL builds {api_root}/build[/{segments...}] with an optional
// raw query suffix.
func (c *Client) buildURL(query string, segments ...string) string {
	parts := append([]string{"build"}, segments...)
	u := c.apiURL(parts...)
	if query != "" {
		u += "?" + query
	}
	return u
}

// searchURL builds {api_root}/search/{kind}?{query}. repos, when
// present, is appended as a comma-joined "repos" parameter with no
// trailing comma.
func (c *Client) searchURL(kind string, args map[string]interface{}, repos []string) (string, error) {
	if len(repos) > 0 {
		if args == nil {
			args = make(map[string]interface{}, 1)
		}
		args["repos"] = repos
	}

	u := c.apiURL("search", kind)
	if len(args) == 0 {
		return u, nil
	}

	query, err := BuildQuery("&", args)
	if err != nil {
		return "", err
	}
	return u + "?" + query, nil
}

// apiFamilyURL builds {api_root}/{family}[/{segments...}]?{query} for
// the structurally identical security, system, repositories,
// replication and plugin families.
func (c *Client) apiFamilyURL(family string, query string, segments ...string) string {
	parts := append([]string{family}, segments...)
	u := c.apiURL(parts...)
	if query != "" {
		u += "?" + query
	}
	return u
}

// deleteBuildsQuery builds the build-deletion query string. Parameters
// are included only when their source value is set, in the order
// buildNumbers, artifacts, deleteAll.
func deleteBuildsQuery(buildNumbers []string, artifacts, deleteAll *bool) string {
	var params []string
	if len(buildNumbers) > 0 {
		params = append(params, "buildNumbers="+strings.Join(buildNumbers, ","))
	}
	if artifacts != nil {
		params = append(params, "artifacts="+boolFlag(*artifacts))
	}
	if deleteAll != nil {
		params = append(params, "deleteAll="+boolFlag(*deleteAll))
	}
	return strings.Join(params, "&")
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// LatestVersionQualifier selects which latest-artifact naming branch
// applies. Exactly one qualifier is honored per request; when several
// are set, precedence is release, then snapshot, then integration.
type LatestVersionQualifier struct {
	Version     string
	Snapshot    string
	Release     string
	Integration string
}

// latestArtifactURL appends the latest-artifact suffix to an artifact
// URL: /{version}-{qualifier}/{basename}-{version}-{qualifier}.jar for
// snapshot and integration builds, /{release}/{basename}-{release}.jar
// for releases. The basename is the last segment of the caller's path.
func (c *Client) latestArtifactURL(repoPath string, q LatestVersionQualifier) string {
	base := path.Base(repoPath)
	u := c.artifactURL(repoPath)

	switch {
	case q.Release != "":
		return u + "/" + q.Release + "/" + base + "-" + q.Release + ".jar"
	case q.Snapshot != "":
		return u + "/" + q.Version + "-" + q.Snapshot + "/" + base + "-" + q.Version + "-" + q.Snapshot + ".jar"
	case q.Integration != "":
		return u + "/" + q.Version + "-" + q.Integration + "/" + base + "-" + q.Version + "-" + q.Integration + ".jar"
	default:
		return u
	}
}
