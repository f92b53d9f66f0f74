package artifactory

import "context"

// Search-family endpoints. All of them resolve through searchURL,
// which appends repositories as a comma-joined "repos" parameter with
// no trailing comma.

// ArtifactSearch searches artifacts by name.
func (c *Client) ArtifactSearch(ctx context.Context, name string, repos ...string) (*Response, error) {
	return c.search(ctx, "artifact", map[string]interface{}{"name": name}, repos)
}

// ArchiveEntriesSearch searches for entries inside stored archives.
func (c *Client) ArchiveEntriesSearch(ctx context.Context, name string, repos ...string) (*Response, error) {
	return c.search(ctx, "archive", map[string]interface{}{"name": name}, repos)
}

// GAVCSearchCoords are maven coordinates for a GAVC search; empty
// fields are omitted from the query.
type GAVCSearchCoords struct {
	Group      string
	Artifact   string
	Version    string
	Classifier string
}

// GAVCSearch searches artifacts by maven coordinates.
func (c *Client) GAVCSearch(ctx context.Context, coords GAVCSearchCoords, repos ...string) (*Response, error) {
	args := make(map[string]interface{})
	if coords.Group != "" {
		args["g"] = coords.Group
	}
	if coords.Artifact != "" {
		args["a"] = coords.Artifact
	}
	if coords.Version != "" {
		args["v"] = coords.Version
	}
	if coords.Classifier != "" {
		args["c"] = coords.Classifier
	}
	return c.search(ctx, "gavc", args, repos)
}

// PropertySearch searches items by property values. Each property's
// values are comma-joined into one query parameter.
func (c *Client) PropertySearch(ctx context.Context, properties Properties, repos ...string) (*Response, error) {
	args := make(map[string]interface{}, len(properties))
	for name, values := range properties {
		if name == "" {
			return nil, NewArgumentError("properties", properties, "property name must not be empty")
		}
		args[name] = values
	}
	return c.search(ctx, "prop", args, repos)
}

// ChecksumSearch finds artifacts by checksum. Exactly one of md5 or
// sha1 is expected; both are passed through when supplied.
func (c *Client) ChecksumSearch(ctx context.Context, md5, sha1 string, repos ...string) (*Response, error) {
	args := make(map[string]interface{})
	if md5 != "" {
		args["md5"] = md5
	}
	if sha1 != "" {
		args["sha1"] = sha1
	}
	if len(args) == 0 {
		return nil, NewArgumentError("checksum", "", "either md5 or sha1 is required")
	}
	return c.search(ctx, "checksum", args, repos)
}

// BadChecksumSearch finds artifacts whose stored checksum of the given
// type ("md5" or "sha1") does not match the actual content.
func (c *Client) BadChecksumSearch(ctx context.Context, checksumType string, repos ...string) (*Response, error) {
	if checksumType != "md5" && checksumType != "sha1" {
		return nil, NewArgumentError("type", checksumType, "checksum type must be md5 or sha1")
	}
	return c.search(ctx, "badChecksum", map[string]interface{}{"type": checksumType}, repos)
}

// ArtifactsNotDownloadedSince finds artifacts not downloaded since the
// given epoch-millis timestamp. createdBefore is optional (zero omits).
func (c *Client) ArtifactsNotDownloadedSince(ctx context.Context, notUsedSince, createdBefore int64, repos ...string) (*Response, error) {
	args := map[string]interface{}{"notUsedSince": notUsedSince}
	if createdBefore > 0 {
		args["createdBefore"] = createdBefore
	}
	return c.search(ctx, "usage", args, repos)
}

// ArtifactsCreatedInDateRange finds artifacts created inside the given
// epoch-millis window. A zero "to" means now and is omitted.
func (c *Client) ArtifactsCreatedInDateRange(ctx context.Context, from, to int64, repos ...string) (*Response, error) {
	args := map[string]interface{}{"from": from}
	if to > 0 {
		args["to"] = to
	}
	return c.search(ctx, "creation", args, repos)
}

// PatternSearch finds artifacts matching an Ant-style pattern of the
// form "repo:this/is/a/*pattern*.war".
func (c *Client) PatternSearch(ctx context.Context, pattern string) (*Response, error) {
	return c.search(ctx, "pattern", map[string]interface{}{"pattern": pattern}, nil)
}

// BuildsForDependency finds builds that use the artifact with the
// given SHA-1.
func (c *Client) BuildsForDependency(ctx context.Context, sha1 string) (*Response, error) {
	return c.search(ctx, "dependency", map[string]interface{}{"sha1": sha1}, nil)
}

// LicenseSearchOptions select which license buckets to report.
type LicenseSearchOptions struct {
	Unapproved bool
	Unknown    bool
	Notfound   bool
	Neutral    bool
	Approved   bool
	Autofind   bool
}

// LicenseSearch reports license information for artifacts.
func (c *Client) LicenseSearch(ctx context.Context, opts LicenseSearchOptions, repos ...string) (*Response, error) {
	args := map[string]interface{}{
		"unapproved": boolFlag(opts.Unapproved),
		"unknown":    boolFlag(opts.Unknown),
		"notfound":   boolFlag(opts.Notfound),
		"neutral":    boolFlag(opts.Neutral),
		"approved":   boolFlag(opts.Approved),
		"autofind":   boolFlag(opts.Autofind),
	}
	return c.search(ctx, "license", args, repos)
}

// ArtifactVersionSearch lists all versions of a maven artifact.
func (c *Client) ArtifactVersionSearch(ctx context.Context, group, artifact string, remote bool, repos ...string) (*Response, error) {
	args := map[string]interface{}{"g": group, "a": artifact}
	if remote {
		args["remote"] = 1
	}
	return c.search(ctx, "versions", args, repos)
}

// ArtifactLatestVersionSearch returns the latest version of a maven
// artifact as plain text.
func (c *Client) ArtifactLatestVersionSearch(ctx context.Context, group, artifact string, remote bool, repos ...string) (*Response, error) {
	args := map[string]interface{}{"g": group, "a": artifact}
	if remote {
		args["remote"] = 1
	}
	return c.search(ctx, "latestVersion", args, repos)
}

func (c *Client) search(ctx context.Context, kind string, args map[string]interface{}, repos []string) (*Response, error) {
	u, err := c.searchURL(kind, args, repos)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, u)
}
