package services

import (
	"context"
	"fmt"

	"fiscalblog/internal/locale"
	"fiscalblog/internal/logger"
	"fiscalblog/internal/metrics"
	"fiscalblog/internal/models"
	"fiscalblog/internal/repository"

	"go.uber.org/zap"
)

type ClusterService interface {
	ListClusters(loc string) []models.ClusterSummary
	GetCluster(id string) (models.Cluster, error)
	PostsInCluster(id string) []models.PostMeta
	ClusterPage(ctx context.Context, id, loc string) (*models.ClusterView, error)
	CheckIntegrity(ctx context.Context) models.IntegrityReport
}

type clusterService struct {
	catalog *repository.CatalogHolder
	loader  *ContentLoader
}

func NewClusterService(catalog *repository.CatalogHolder, loader *ContentLoader) ClusterService {
	return &clusterService{catalog: catalog, loader: loader}
}

func (s *clusterService) ListClusters(loc string) []models.ClusterSummary {
	cat := s.catalog.Current()
	def := s.loader.DefaultLocale()

	list := cat.Clusters.List()
	out := make([]models.ClusterSummary, 0, len(list))
	for _, c := range list {
		out = append(out, models.ClusterSummary{
			ID:          c.ID,
			Name:        pickText(c.Name, loc, def),
			Description: pickText(c.Description, loc, def),
			PostsCount:  len(cat.Posts.ListByCluster(c.ID)),
		})
	}
	return out
}

func (s *clusterService) GetCluster(id string) (models.Cluster, error) {
	return s.catalog.Current().Clusters.Get(id)
}

// PostsInCluster не зависит от языка; пустой кластер — пустой срез, не ошибка.
func (s *clusterService) PostsInCluster(id string) []models.PostMeta {
	return s.catalog.Current().Posts.ListByCluster(id)
}

func (s *clusterService) ClusterPage(ctx context.Context, id, loc string) (*models.ClusterView, error) {
	log := logger.WithCtx(ctx)
	if !locale.IsSupported(loc) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, loc)
	}

	cat := s.catalog.Current()
	c, err := cat.Clusters.Get(id)
	if err != nil {
		log.Info("cluster: кластер не найден", zap.String("cluster_id", id))
		return nil, err
	}

	def := s.loader.DefaultLocale()
	members := cat.Posts.ListByCluster(id)
	posts := s.loader.AssembleBatch(ctx, members, loc)
	if len(posts) < len(members) {
		log.Warn("cluster: часть статей не загружена",
			zap.String("cluster_id", id), zap.Int("members", len(members)), zap.Int("loaded", len(posts)))
	}

	view := &models.ClusterView{
		ID:          c.ID,
		Locale:      loc,
		Name:        pickText(c.Name, loc, def),
		Description: pickText(c.Description, loc, def),
		Keywords:    pickList(c.Keywords, loc, def),
		AIPrompts:   pickList(c.AIPrompts, loc, def),
		Posts:       posts,
		ComingSoon:  len(members) == 0,
	}
	log.Debug("cluster: страница собрана", zap.String("cluster_id", id), zap.Int("posts_count", len(posts)))
	return view, nil
}

// CheckIntegrity сверяет денормализованную статистику с живыми данными.
// Расхождения — только предупреждения: источником правды остаются живые значения.
func (s *clusterService) CheckIntegrity(ctx context.Context) models.IntegrityReport {
	log := logger.WithCtx(ctx)
	cat := s.catalog.Current()

	live := models.ClusterStats{TotalClusters: len(cat.Clusters.List())}
	warnings := []string{}
	warn := func(kind, msg string) {
		warnings = append(warnings, msg)
		metrics.IntegrityWarnings.WithLabelValues(kind).Inc()
	}

	for _, w := range cat.Posts.Warnings() {
		warn("slug", w)
	}

	for _, p := range cat.Posts.ListAll() {
		if p.Cluster == "" {
			continue
		}
		if !cat.Clusters.Has(p.Cluster) {
			warn("unknown_cluster", fmt.Sprintf("post %q references unknown cluster %q", p.ID, p.Cluster))
			continue
		}
		live.TotalPosts++
	}

	stored := cat.Clusters.Stats()
	if stored != nil {
		if stored.TotalClusters != live.TotalClusters {
			warn("stats", fmt.Sprintf("totalClusters: stored %d, live %d", stored.TotalClusters, live.TotalClusters))
		}
		if stored.TotalPosts != live.TotalPosts {
			warn("stats", fmt.Sprintf("totalPosts: stored %d, live %d", stored.TotalPosts, live.TotalPosts))
		}
	}

	for _, w := range warnings {
		log.Warn("integrity: расхождение данных", zap.String("detail", w))
	}
	return models.IntegrityReport{Stored: stored, Live: live, Warnings: warnings}
}

func pickText(m map[string]string, loc, def string) string {
	if v := m[loc]; v != "" {
		return v
	}
	return m[def]
}

func pickList(m map[string][]string, loc, def string) []string {
	if v := m[loc]; len(v) > 0 {
		return v
	}
	if v := m[def]; len(v) > 0 {
		return v
	}
	return []string{}
}
