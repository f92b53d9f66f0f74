package artifactory

import "context"

// Security-family endpoints: users, groups, and permission targets.
// Mutating verbs attach the caller's document as the JSON body.

// Users lists all users.
func (c *Client) Users(ctx context.Context) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("security", "", "users"))
}

// UserDetails returns one user.
func (c *Client) UserDetails(ctx context.Context, name string) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("security", "", "users", name))
}

// CreateOrReplaceUser creates or replaces a user.
func (c *Client) CreateOrReplaceUser(ctx context.Context, name string, user interface{}) (*Response, error) {
	return c.put(ctx, c.apiFamilyURL("security", "", "users", name), WithJSON(user))
}

// UpdateUser updates an existing user.
func (c *Client) UpdateUser(ctx context.Context, name string, user interface{}) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("security", "", "users", name), WithJSON(user))
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, name string) (*Response, error) {
	return c.del(ctx, c.apiFamilyURL("security", "", "users", name))
}

// UserEncryptedPassword returns the encrypted password of the
// authenticated user.
func (c *Client) UserEncryptedPassword(ctx context.Context) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("security", "", "encryptedPassword"))
}

// Groups lists all groups.
func (c *Client) Groups(ctx context.Context) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("security", "", "groups"))
}

// GroupDetails returns one group.
func (c *Client) GroupDetails(ctx context.Context, name string) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("security", "", "groups", name))
}

// CreateOrReplaceGroup creates or replaces a group.
func (c *Client) CreateOrReplaceGroup(ctx context.Context, name string, group interface{}) (*Response, error) {
	return c.put(ctx, c.apiFamilyURL("security", "", "groups", name), WithJSON(group))
}

// UpdateGroup updates an existing group.
func (c *Client) UpdateGroup(ctx context.Context, name string, group interface{}) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("security", "", "groups", name), WithJSON(group))
}

// DeleteGroup removes a group.
func (c *Client) DeleteGroup(ctx context.Context, name string) (*Response, error) {
	return c.del(ctx, c.apiFamilyURL("security", "", "groups", name))
}

// PermissionTargets lists all permission targets.
func (c *Client) PermissionTargets(ctx context.Context) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("security", "", "permissions"))
}

// PermissionTargetDetails returns one permission target.
func (c *Client) PermissionTargetDetails(ctx context.Context, name string) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("security", "", "permissions", name))
}

// CreateOrReplacePermissionTarget creates or replaces a permission
// target.
func (c *Client) CreateOrReplacePermissionTarget(ctx context.Context, name string, target interface{}) (*Response, error) {
	return c.put(ctx, c.apiFamilyURL("security", "", "permissions", name), WithJSON(target))
}

// DeletePermissionTarget removes a permission target.
func (c *Client) DeletePermissionTarget(ctx context.Context, name string) (*Response, error) {
	return c.del(ctx, c.apiFamilyURL("security", "", "permissions", name))
}
