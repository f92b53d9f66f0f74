package artifactory

import "context"

// Repositories-family endpoints.

// Repositories lists repositories, optionally filtered by type
// ("local", "remote", "virtual").
func (c *Client) Repositories(ctx context.Context, repoType string) (*Response, error) {
	query := ""
	if repoType != "" {
		query = "type=" + repoType
	}
	return c.get(ctx, c.apiFamilyURL("repositories", query))
}

// RepositoryInfo returns the configuration of one repository.
func (c *Client) RepositoryInfo(ctx context.Context, key string) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("repositories", "", key))
}

// CreateOrReplaceRepository creates or replaces a repository
// configuration.
func (c *Client) CreateOrReplaceRepository(ctx context.Context, key string, configuration interface{}) (*Response, error) {
	return c.put(ctx, c.apiFamilyURL("repositories", "", key), WithJSON(configuration))
}

// UpdateRepository updates an existing repository configuration.
func (c *Client) UpdateRepository(ctx context.Context, key string, configuration interface{}) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("repositories", "", key), WithJSON(configuration))
}

// DeleteRepository removes a repository including its content.
func (c *Client) DeleteRepository(ctx context.Context, key string) (*Response, error) {
	return c.del(ctx, c.apiFamilyURL("repositories", "", key))
}

// CalculateYumMetadata recalculates YUM metadata for a repository.
func (c *Client) CalculateYumMetadata(ctx context.Context, key string, async bool) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("yum", "async="+boolFlag(async), key))
}

// CalculateMavenIndex recalculates the maven index for the given
// repositories.
func (c *Client) CalculateMavenIndex(ctx context.Context, repos []string, force bool) (*Response, error) {
	query, err := BuildQuery("&", map[string]interface{}{
		"repos": repos,
		"force": boolFlag(force),
	})
	if err != nil {
		return nil, err
	}
	return c.post(ctx, c.apiFamilyURL("maven", query))
}

// CalculateMavenMetadata recalculates maven-metadata.xml under a repo
// path.
func (c *Client) CalculateMavenMetadata(ctx context.Context, path string) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("maven", "", "calculateMetadata", c.repoPath(path)))
}
