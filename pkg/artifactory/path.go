package artifactory

import "strings"

// NormalizePath joins a repository name and a repository-relative path
// into one canonical path segment: exactly one leading slash is
// stripped from the path, one leading and one trailing slash from the
// repository, and the two are joined with "/" omitting the join when
// either side is empty. The result never contains "//" and never
// starts with "/".
//
// An empty repository is permitted and yields a pure path, which is
// how path-only endpoints (e.g. full system import) are addressed.
// The function is pure and idempotent.
func NormalizePath(repository, path string) string {
	path = strings.TrimPrefix(path, "/")

	repository = strings.TrimPrefix(repository, "/")
	repository = strings.TrimSuffix(repository, "/")

	if repository == "" {
		return path
	}
	if path == "" {
		return repository
	}

	return repository + "/" + path
}
