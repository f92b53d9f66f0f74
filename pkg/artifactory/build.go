package artifactory

import "context"

// Build-family endpoints.

// AllBuilds lists all builds known to the remote service.
func (c *Client) AllBuilds(ctx context.Context) (*Response, error) {
	return c.get(ctx, c.buildURL(""))
}

// BuildRuns lists the runs of one build.
func (c *Client) BuildRuns(ctx context.Context, name string) (*Response, error) {
	return c.get(ctx, c.buildURL("", name))
}

// BuildInfo returns the info of one build run.
func (c *Client) BuildInfo(ctx context.Context, name, number string) (*Response, error) {
	return c.get(ctx, c.buildURL("", name, number))
}

// BuildsDiff compares a build run against an older run of the same
// build.
func (c *Client) BuildsDiff(ctx context.Context, name, number, oldNumber string) (*Response, error) {
	return c.get(ctx, c.buildURL("diff="+oldNumber, name, number))
}

// BuildPromotion promotes a build run; the promotion document goes in
// the JSON body.
func (c *Client) BuildPromotion(ctx context.Context, name, number string, promotion interface{}) (*Response, error) {
	return c.post(ctx, c.buildURL("", "promote", name, number), WithJSON(promotion))
}

// BuildRename renames a build.
func (c *Client) BuildRename(ctx context.Context, name, newName string) (*Response, error) {
	return c.post(ctx, c.buildURL("to="+newName, "rename", name))
}

// DeleteBuilds deletes build runs. Optional parameters are included
// only when set, in the order buildNumbers, artifacts, deleteAll.
func (c *Client) DeleteBuilds(ctx context.Context, name string, buildNumbers []string, artifacts, deleteAll *bool) (*Response, error) {
	return c.del(ctx, c.buildURL(deleteBuildsQuery(buildNumbers, artifacts, deleteAll), name))
}

// PushBuildToBintray pushes a build to the distribution platform; the
// descriptor goes in the JSON body.
func (c *Client) PushBuildToBintray(ctx context.Context, name, number string, gpgSign bool, gpgPassphrase string, descriptor interface{}) (*Response, error) {
	query := "gpgSign=" + boolFlag(gpgSign)
	if gpgPassphrase != "" {
		query += "&gpgPassphrase=" + gpgPassphrase
	}
	return c.post(ctx, c.buildURL(query, "pushToBintray", name, number), WithJSON(descriptor))
}
