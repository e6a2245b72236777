package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"fiscalblog/internal/models"
	"fiscalblog/internal/repository"

	"github.com/stretchr/testify/require"
)

// fakeStore — хранилище текстов в памяти. Ключ "locale/postId".
type fakeStore struct {
	mu    sync.Mutex
	data  map[string]models.LocalizedContent
	fail  map[string]error
	calls []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]models.LocalizedContent{}, fail: map[string]error{}}
}

func (s *fakeStore) put(loc, id, title string) *fakeStore {
	s.data[loc+"/"+id] = models.LocalizedContent{
		Title:   title,
		Excerpt: title + " excerpt",
		Content: title + " body",
	}
	return s
}

func (s *fakeStore) Load(_ context.Context, loc, postID string) (*models.LocalizedContent, error) {
	key := loc + "/" + postID
	s.mu.Lock()
	s.calls = append(s.calls, key)
	s.mu.Unlock()

	if err, ok := s.fail[key]; ok {
		return nil, err
	}
	c, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrContentMissing, key)
	}
	return &c, nil
}

func meta(id, date, category string, tags ...string) models.PostMeta {
	return models.PostMeta{
		ID:               id,
		SlugTranslations: map[string]string{"es": id + "-es", "en": id + "-en", "ca": id + "-ca"},
		PublishedAt:      models.MustDate(date),
		ReadingTime:      4,
		Category:         category,
		Tags:             tags,
	}
}

func newCatalog(t *testing.T, posts []models.PostMeta, clusters []models.Cluster, stats *models.ClusterStats) *repository.CatalogHolder {
	t.Helper()
	idx, err := repository.NewIndex(posts)
	require.NoError(t, err)
	cc, err := repository.NewClusterCatalog(clusters, stats)
	require.NoError(t, err)
	return repository.StaticCatalog(&repository.Catalog{Posts: idx, Clusters: cc})
}

func postIDs(posts []models.PostMeta) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func fullIDs(posts []models.FullPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

var errDisk = errors.New("disk failure")
