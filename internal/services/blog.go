package services

import (
	"context"
	"fmt"

	"fiscalblog/internal/locale"
	"fiscalblog/internal/logger"
	"fiscalblog/internal/models"
	"fiscalblog/internal/repository"

	"go.uber.org/zap"
)

type BlogService interface {
	GetAllPosts() []models.PostMeta
	GetFeatured() []models.PostMeta
	ListByCategory(category string) []models.PostMeta
	ListByTag(tag string) []models.PostMeta
	Categories() []string
	Tags() []string

	GetPostBySlug(ctx context.Context, slug, loc string) (*models.FullPost, error)
	GetPostsWithContent(ctx context.Context, loc string) ([]models.FullPost, error)
	LoadContents(ctx context.Context, loc string, metas []models.PostMeta) ([]models.FullPost, error)
	GetRelated(postID string, limit int) ([]models.PostMeta, error)
}

type blogService struct {
	catalog      *repository.CatalogHolder
	loader       *ContentLoader
	relatedLimit int
}

func NewBlogService(catalog *repository.CatalogHolder, loader *ContentLoader, relatedLimit int) BlogService {
	if relatedLimit <= 0 {
		relatedLimit = defaultRelatedLimit
	}
	return &blogService{catalog: catalog, loader: loader, relatedLimit: relatedLimit}
}

func (s *blogService) posts() *repository.Index { return s.catalog.Current().Posts }

func (s *blogService) GetAllPosts() []models.PostMeta { return s.posts().ListAll() }

func (s *blogService) GetFeatured() []models.PostMeta { return s.posts().ListFeatured() }

func (s *blogService) ListByCategory(category string) []models.PostMeta {
	return s.posts().ListByCategory(category)
}

func (s *blogService) ListByTag(tag string) []models.PostMeta { return s.posts().ListByTag(tag) }

func (s *blogService) Categories() []string { return s.posts().ListCategories() }

func (s *blogService) Tags() []string { return s.posts().ListTags() }

// GetPostBySlug: slug любого языка -> id -> текст на запрошенном языке (с откатом) + похожие статьи.
func (s *blogService) GetPostBySlug(ctx context.Context, slug, loc string) (*models.FullPost, error) {
	log := logger.WithCtx(ctx)
	if !locale.IsSupported(loc) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, loc)
	}

	idx := s.posts()
	id, err := idx.ResolveSlug(slug, loc)
	if err != nil {
		log.Info("blog: статья не найдена по slug", zap.String("slug", slug))
		return nil, err
	}
	meta, err := idx.Get(id)
	if err != nil {
		return nil, err
	}

	post, err := s.loader.Assemble(ctx, meta, loc)
	if err != nil {
		log.Warn("blog: не удалось загрузить текст статьи", zap.String("post_id", id), zap.Error(err))
		return nil, err
	}
	post.Related = relatedPosts(idx, meta, s.relatedLimit)

	log.Debug("blog: статья собрана",
		zap.String("post_id", id),
		zap.String("resolved_locale", post.ResolvedLocale),
		zap.Bool("fallback", post.FallbackUsed),
		zap.Int("related_count", len(post.Related)),
	)
	return post, nil
}

func (s *blogService) GetPostsWithContent(ctx context.Context, loc string) ([]models.FullPost, error) {
	return s.LoadContents(ctx, loc, s.posts().ListAll())
}

// LoadContents дополняет готовую выборку метаданных текстами, сохраняя её порядок.
func (s *blogService) LoadContents(ctx context.Context, loc string, metas []models.PostMeta) ([]models.FullPost, error) {
	if !locale.IsSupported(loc) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, loc)
	}
	list := s.loader.AssembleBatch(ctx, metas, loc)

	logger.WithCtx(ctx).Debug("blog: список статей с текстом",
		zap.Int("total", len(metas)),
		zap.Int("count", len(list)),
	)
	return list, nil
}

func (s *blogService) GetRelated(postID string, limit int) ([]models.PostMeta, error) {
	idx := s.posts()
	meta, err := idx.Get(postID)
	if err != nil {
		return nil, err
	}
	return relatedPosts(idx, meta, limit), nil
}
