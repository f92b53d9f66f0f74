package artifactory

import (
	"context"
	"strconv"
	"strings"
)

// Storage-family endpoints: item info, properties, file lists, and
// artifact retrieval. Each method maps one-to-one onto a REST
// operation and returns the transport response unchanged.

// FolderInfo returns metadata for a folder.
func (c *Client) FolderInfo(ctx context.Context, path string) (*Response, error) {
	return c.get(ctx, c.storageURL(c.repoPath(path), ""))
}

// FileInfo returns metadata for a file.
func (c *Client) FileInfo(ctx context.Context, path string) (*Response, error) {
	return c.get(ctx, c.storageURL(c.repoPath(path), ""))
}

// ItemLastModified returns the last-modified item under a folder.
func (c *Client) ItemLastModified(ctx context.Context, path string) (*Response, error) {
	return c.get(ctx, c.storageURL(c.repoPath(path), "lastModified"))
}

// FileStatistics returns download statistics for a file.
func (c *Client) FileStatistics(ctx context.Context, path string) (*Response, error) {
	return c.get(ctx, c.storageURL(c.repoPath(path), "stats"))
}

// ItemProperties returns properties of an item. With no names the
// whole property set is returned; with names, only those properties
// ("?properties=a,b", no trailing comma).
func (c *Client) ItemProperties(ctx context.Context, path string, names ...string) (*Response, error) {
	query := "properties"
	if len(names) > 0 {
		query += "=" + strings.Join(names, ",")
	}
	return c.get(ctx, c.storageURL(c.repoPath(path), query))
}

// SetItemProperties attaches properties to an item using the
// query-list encoding ("key=v1,v2|key2=v3|").
func (c *Client) SetItemProperties(ctx context.Context, path string, properties Properties, recursive bool) (*Response, error) {
	encoded, err := properties.EncodeQuery()
	if err != nil {
		return nil, err
	}

	query := "properties=" + encoded
	if !recursive {
		query += "&recursive=0"
	}
	return c.put(ctx, c.storageURL(c.repoPath(path), query))
}

// DeleteItemProperties removes the named properties from an item.
func (c *Client) DeleteItemProperties(ctx context.Context, path string, properties Properties, recursive bool) (*Response, error) {
	names, err := properties.Names()
	if err != nil {
		return nil, err
	}

	query := "properties=" + strings.Join(names, ",")
	if !recursive {
		query += "&recursive=0"
	}
	return c.del(ctx, c.storageURL(c.repoPath(path), query))
}

// FileListOptions control the folder listing endpoint.
type FileListOptions struct {
	Deep            bool
	Depth           int
	ListFolders     bool
	MetadataTstamps bool
	IncludeRootPath bool
}

// FileList lists the contents of a folder.
func (c *Client) FileList(ctx context.Context, path string, opts FileListOptions) (*Response, error) {
	params := []string{"list"}
	if opts.Deep {
		params = append(params, "deep=1")
	}
	if opts.Depth > 0 {
		params = append(params, "depth="+strconv.Itoa(opts.Depth))
	}
	if opts.ListFolders {
		params = append(params, "listFolders=1")
	}
	if opts.MetadataTstamps {
		params = append(params, "mdTimestamps=1")
	}
	if opts.IncludeRootPath {
		params = append(params, "includeRootPath=1")
	}
	return c.get(ctx, c.storageURL(c.repoPath(path), strings.Join(params, "&")))
}

// CreateDirectory creates a folder at the given path. A trailing slash
// on the path marks it as a folder for the remote service.
func (c *Client) CreateDirectory(ctx context.Context, path string, properties Properties) (*Response, error) {
	repoPath := c.repoPath(path)
	u := c.artifactURL(repoPath)
	if len(properties) > 0 {
		matrix, err := properties.EncodeMatrix()
		if err != nil {
			return nil, err
		}
		u += ";" + matrix
	}
	return c.put(ctx, u)
}

// DeleteItem deletes a file or folder.
func (c *Client) DeleteItem(ctx context.Context, path string) (*Response, error) {
	return c.del(ctx, c.artifactURL(c.repoPath(path)))
}

// CopyItem copies an item to another repo path. With dryRun set the
// remote service only reports what would happen.
func (c *Client) CopyItem(ctx context.Context, path, target string, dryRun bool) (*Response, error) {
	return c.copyOrMove(ctx, "copy", path, target, dryRun)
}

// MoveItem moves an item to another repo path.
func (c *Client) MoveItem(ctx context.Context, path, target string, dryRun bool) (*Response, error) {
	return c.copyOrMove(ctx, "move", path, target, dryRun)
}

func (c *Client) copyOrMove(ctx context.Context, op, path, target string, dryRun bool) (*Response, error) {
	query := "to=" + target
	if dryRun {
		query += "&dry=1"
	}
	return c.post(ctx, c.apiFamilyURL(op, query, c.repoPath(path)))
}

// RetrieveArtifact downloads an artifact. The raw bytes are in the
// response body.
func (c *Client) RetrieveArtifact(ctx context.Context, path string) (*Response, error) {
	return c.get(ctx, c.artifactURL(c.repoPath(path)))
}

// RetrieveLatestArtifact downloads the latest artifact for the given
// qualifier. Exactly one qualifier branch is honored; see
// LatestVersionQualifier for the precedence.
func (c *Client) RetrieveLatestArtifact(ctx context.Context, path string, q LatestVersionQualifier) (*Response, error) {
	return c.get(ctx, c.latestArtifactURL(c.repoPath(path), q))
}

// ArchiveEntryDownload fetches a single entry out of a stored archive.
func (c *Client) ArchiveEntryDownload(ctx context.Context, path, entry string) (*Response, error) {
	u := c.artifactURL(c.repoPath(path)) + "!/" + strings.TrimPrefix(entry, "/")
	return c.get(ctx, u)
}

// TraceArtifactRetrieval reports how a download request for the path
// would be resolved.
func (c *Client) TraceArtifactRetrieval(ctx context.Context, path string) (*Response, error) {
	return c.get(ctx, c.artifactURL(c.repoPath(path))+"?trace")
}

// EffectiveItemPermissions returns the effective permissions on an
// item.
func (c *Client) EffectiveItemPermissions(ctx context.Context, path string) (*Response, error) {
	return c.get(ctx, c.storageURL(c.repoPath(path), "permissions"))
}
