package artifactory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEndpoints(t *testing.T) {
	c, ft := fakeClient(t)
	ctx := context.Background()

	_, err := c.AllBuilds(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ft.last(t).url, "/api/build"))

	_, err = c.BuildRuns(ctx, "web-app")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ft.last(t).url, "/api/build/web-app"))

	_, err = c.BuildInfo(ctx, "web-app", "51")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ft.last(t).url, "/api/build/web-app/51"))

	_, err = c.BuildsDiff(ctx, "web-app", "51", "50")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ft.last(t).url, "/api/build/web-app/51?diff=50"))
}

func TestBuildPromotion(t *testing.T) {
	c, ft := fakeClient(t)

	_, err := c.BuildPromotion(context.Background(), "web-app", "51",
		map[string]string{"status": "staged"})
	require.NoError(t, err)

	req := ft.last(t)
	assert.Equal(t, MethodPost, req.method)
	assert.True(t, strings.HasSuffix(req.url, "/api/build/promote/web-app/51"))
	assert.JSONEq(t, `{"status":"staged"}`, string(req.body))
	assert.Equal(t, ContentTypeJSON, req.headers.Get(ContentTypeHeader))
}

func TestBuildRename(t *testing.T) {
	c, ft := fakeClient(t)

	_, err := c.BuildRename(context.Background(), "old-name", "new-name")
	require.NoError(t, err)

	req := ft.last(t)
	assert.Equal(t, MethodPost, req.method)
	assert.True(t, strings.HasSuffix(req.url, "/api/build/rename/old-name?to=new-name"))
}

func TestDeleteBuilds(t *testing.T) {
	c, ft := fakeClient(t)
	artifacts := true

	_, err := c.DeleteBuilds(context.Background(), "web-app", []string{"1", "2"}, &artifacts, nil)
	require.NoError(t, err)

	req := ft.last(t)
	assert.Equal(t, MethodDelete, req.method)
	assert.True(t, strings.HasSuffix(req.url, "/api/build/web-app?buildNumbers=1,2&artifacts=1"), "got %s", req.url)
}

func TestDeleteBuildsNoParams(t *testing.T) {
	c, ft := fakeClient(t)

	_, err := c.DeleteBuilds(context.Background(), "web-app", nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ft.last(t).url, "/api/build/web-app"))
}
