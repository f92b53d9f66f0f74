package artifactory

import "context"

// Replication-family endpoints.

// ReplicationConfiguration returns the replication configuration of a
// repository.
func (c *Client) ReplicationConfiguration(ctx context.Context, repoKey string) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("replications", "", repoKey))
}

// SetReplicationConfiguration creates the replication configuration of
// a repository.
func (c *Client) SetReplicationConfiguration(ctx context.Context, repoKey string, configuration interface{}) (*Response, error) {
	return c.put(ctx, c.apiFamilyURL("replications", "", repoKey), WithJSON(configuration))
}

// UpdateReplicationConfiguration updates the replication configuration
// of a repository.
func (c *Client) UpdateReplicationConfiguration(ctx context.Context, repoKey string, configuration interface{}) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("replications", "", repoKey), WithJSON(configuration))
}

// DeleteReplicationConfiguration removes the replication configuration
// of a repository.
func (c *Client) DeleteReplicationConfiguration(ctx context.Context, repoKey string) (*Response, error) {
	return c.del(ctx, c.apiFamilyURL("replications", "", repoKey))
}

// ScheduledReplicationStatus returns the status of scheduled
// replication on a repository.
func (c *Client) ScheduledReplicationStatus(ctx context.Context, repoKey string) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("replication", "", repoKey))
}

// PullPushReplication schedules an immediate pull or push replication;
// the replication document goes in the JSON body.
func (c *Client) PullPushReplication(ctx context.Context, repoPath string, replication interface{}) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("replication", "", "execute", NormalizePath("", repoPath)), WithJSON(replication))
}
