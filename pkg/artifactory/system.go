package artifactory

import "context"

// System-family endpoints.

// SystemInfo returns general system information.
func (c *Client) SystemInfo(ctx context.Context) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("system", ""))
}

// SystemHealthPing checks service health; the body is "OK" when
// healthy.
func (c *Client) SystemHealthPing(ctx context.Context) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("system", "", "ping"))
}

// GeneralConfiguration returns the general configuration document.
func (c *Client) GeneralConfiguration(ctx context.Context) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("system", "", "configuration"))
}

// SaveGeneralConfiguration replaces the general configuration. The
// document is XML; the caller supplies the bytes and this layer passes
// them through.
func (c *Client) SaveGeneralConfiguration(ctx context.Context, configuration []byte) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("system", "", "configuration"),
		WithHeader(ContentTypeHeader, "application/xml"),
		WithBody(configuration))
}

// VersionAndAddOns returns the service version and installed add-ons.
func (c *Client) VersionAndAddOns(ctx context.Context) (*Response, error) {
	return c.get(ctx, c.apiFamilyURL("system", "", "version"))
}

// FullSystemExport exports the whole system; export settings go in the
// JSON body.
func (c *Client) FullSystemExport(ctx context.Context, settings interface{}) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("export", "", "system"), WithJSON(settings))
}

// FullSystemImport imports a previously exported system. This is a
// path-only operation with no repository context; import settings go
// in the JSON body.
func (c *Client) FullSystemImport(ctx context.Context, settings interface{}) (*Response, error) {
	return c.post(ctx, c.apiFamilyURL("import", "", "system"), WithJSON(settings))
}
