package artifactory

import "context"

// Plugin-family endpoints.

// Plugins lists all user plugins.
func (c *Client) Plugins(ctx context.Context) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("plugins", ""))
}

// PluginsByType lists user plugins of one type.
func (c *Client) PluginsByType(ctx context.Context, pluginType string) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("plugins", "", pluginType))
}

// ExecutePlugin runs a named execution plugin. Parameters use the same
// query-list encoding as property sets: "key=v1,v2|key2=v3|".
func (c *Client) ExecutePlugin(ctx context.Context, name string, params Properties, async bool) (*Response, error) {
	query := ""
	if len(params) > 0 {
		encoded, err := params.EncodeQuery()
		if err != nil {
			return nil, err
		}
		query = "params=" + encoded
	}
	if async {
		if query != "" {
			query += "&"
		}
		query += "async=1"
	}
	return c.post(ctx, c.apiFamilyURL("plugins", query, "execute", name))
}

// ReloadPlugins reloads user plugins from disk.
func (c *Client) ReloadPlugins(ctx context.Context) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("plugins", "", "reload"))
}
