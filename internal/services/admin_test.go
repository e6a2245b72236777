package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fiscalblog/internal/repository"
	"fiscalblog/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFlusher struct {
	n   int
	err error
}

func (f *fakeFlusher) Flush(context.Context) (int, error) { return f.n, f.err }

func newAdmin(t *testing.T, cache CacheFlusher) *AdminService {
	t.Helper()
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	posts, clusters := clusterFixture()
	cat := newCatalog(t, posts, clusters, nil)
	cs := NewClusterService(cat, NewContentLoader(newFakeStore(), "es", 1))
	return NewAdminService(cat, cs, nil, cache, "admin", hash, "jwt-secret", time.Minute)
}

func TestAdmin_Login(t *testing.T) {
	svc := newAdmin(t, nil)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	sub, err := utils.ParseToken("jwt-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "root", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdmin_ReloadStaticCatalogFails(t *testing.T) {
	svc := newAdmin(t, nil)
	_, err := svc.Reload(context.Background())
	assert.Error(t, err)
}

func TestAdmin_Integrity(t *testing.T) {
	svc := newAdmin(t, nil)
	report := svc.Integrity(context.Background())
	assert.Equal(t, 2, report.Live.TotalClusters)
	assert.Len(t, report.Warnings, 1)
}

func TestAdmin_FlushCache(t *testing.T) {
	n, err := newAdmin(t, nil).FlushCache(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = newAdmin(t, &fakeFlusher{n: 7}).FlushCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	boom := errors.New("redis down")
	_, err = newAdmin(t, &fakeFlusher{err: boom}).FlushCache(context.Background())
	assert.ErrorIs(t, err, boom)
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestAdmin_ReloadPicksUpNewPostAndContent(t *testing.T) {
	dir := t.TempDir()
	src := repository.CatalogSource{
		PostsFile:    filepath.Join(dir, "blog-posts.json"),
		ClustersFile: filepath.Join(dir, "clusters.json"),
	}
	contentDir := filepath.Join(dir, "content")

	writeFile(t, src.ClustersFile, `[]`)
	writeFile(t, src.PostsFile, `[
		{"id":"old","slugTranslations":{"es":"antiguo"},"publishedAt":"2024-01-01","readingTime":3}
	]`)
	writeFile(t, filepath.Join(contentDir, "es", "old.md"), "---\ntitle: Antiguo\nexcerpt: E\n---\nTexto")

	catalog, err := repository.NewCatalogHolder(src)
	require.NoError(t, err)
	files, err := repository.NewFileContentStore(contentDir)
	require.NoError(t, err)

	flusher := &fakeFlusher{}
	loader := NewContentLoader(files, "es", 2)
	blog := NewBlogService(catalog, loader, 3)
	admin := NewAdminService(catalog, NewClusterService(catalog, loader), files, flusher,
		"admin", "", "secret", time.Minute)
	ctx := context.Background()

	writeFile(t, src.PostsFile, `[
		{"id":"old","slugTranslations":{"es":"antiguo"},"publishedAt":"2024-01-01","readingTime":3},
		{"id":"new","slugTranslations":{"es":"nuevo"},"publishedAt":"2024-06-01","readingTime":3}
	]`)
	writeFile(t, filepath.Join(contentDir, "es", "new.md"), "---\ntitle: Nuevo\nexcerpt: E\n---\nTexto")

	_, err = admin.Reload(ctx)
	require.NoError(t, err)

	post, err := blog.GetPostBySlug(ctx, "nuevo", "es")
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", post.Title)

	list, err := blog.GetPostsWithContent(ctx, "es")
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, fullIDs(list))
}

type failingRescanner struct{}

func (failingRescanner) Rescan() (int, error) { return 0, errDisk }

func TestAdmin_ReloadRescanError(t *testing.T) {
	dir := t.TempDir()
	src := repository.CatalogSource{
		PostsFile:    filepath.Join(dir, "blog-posts.json"),
		ClustersFile: filepath.Join(dir, "clusters.json"),
	}
	writeFile(t, src.ClustersFile, `[]`)
	writeFile(t, src.PostsFile, `[]`)
	catalog, err := repository.NewCatalogHolder(src)
	require.NoError(t, err)

	loader := NewContentLoader(newFakeStore(), "es", 1)
	admin := NewAdminService(catalog, NewClusterService(catalog, loader), failingRescanner{}, nil,
		"admin", "", "secret", time.Minute)

	_, err = admin.Reload(context.Background())
	assert.ErrorIs(t, err, errDisk)
}
