package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"fiscalblog/internal/logger"
	"fiscalblog/internal/metrics"
	"fiscalblog/internal/models"
	"fiscalblog/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var errIncomplete = errors.New("incomplete content")

// ContentLoader отдаёт текст статьи с откатом на язык по умолчанию.
type ContentLoader struct {
	store         repository.ContentStore
	defaultLocale string
	concurrency   int
	strict        *bluemonday.Policy
}

func NewContentLoader(store repository.ContentStore, defaultLocale string, concurrency int) *ContentLoader {
	return &ContentLoader{
		store:         store,
		defaultLocale: defaultLocale,
		concurrency:   concurrency,
		strict:        bluemonday.StrictPolicy(),
	}
}

func (l *ContentLoader) DefaultLocale() string { return l.defaultLocale }

// Load возвращает текст и язык, на котором он фактически найден.
// Частично заполненный текст никогда не возвращается.
func (l *ContentLoader) Load(ctx context.Context, postID, loc string) (*models.LocalizedContent, string, error) {
	log := logger.WithCtx(ctx)

	c, err := l.try(ctx, loc, postID)
	if err == nil {
		metrics.ContentLoads.WithLabelValues(loc, "hit").Inc()
		return c, loc, nil
	}
	if !isMiss(err) {
		return nil, "", fmt.Errorf("load content %s/%s: %w", loc, postID, err)
	}
	if errors.Is(err, repository.ErrBadContentFile) || errors.Is(err, errIncomplete) {
		log.Error("content: повреждённый текст статьи", zap.String("post_id", postID), zap.String("lang", loc), zap.Error(err))
	}

	if loc == l.defaultLocale {
		metrics.ContentLoads.WithLabelValues(loc, "miss").Inc()
		return nil, "", &ContentNotFoundError{PostID: postID, Locale: loc, FallbackLocale: l.defaultLocale}
	}

	c, err = l.try(ctx, l.defaultLocale, postID)
	if err != nil {
		if !isMiss(err) {
			return nil, "", fmt.Errorf("load content %s/%s: %w", l.defaultLocale, postID, err)
		}
		metrics.ContentLoads.WithLabelValues(loc, "miss").Inc()
		return nil, "", &ContentNotFoundError{
			PostID:            postID,
			Locale:            loc,
			FallbackLocale:    l.defaultLocale,
			FallbackExhausted: true,
		}
	}

	log.Warn("content: нет перевода, используем язык по умолчанию",
		zap.String("post_id", postID),
		zap.String("requested", loc),
		zap.String("fallback", l.defaultLocale),
	)
	metrics.ContentLoads.WithLabelValues(loc, "fallback").Inc()
	return c, l.defaultLocale, nil
}

func (l *ContentLoader) try(ctx context.Context, loc, postID string) (*models.LocalizedContent, error) {
	c, err := l.store.Load(ctx, loc, postID)
	if err != nil {
		return nil, err
	}
	out := &models.LocalizedContent{
		Title:   l.plain(c.Title),
		Excerpt: l.plain(c.Excerpt),
		Content: strings.TrimSpace(c.Content),
	}
	if !out.Complete() {
		return nil, fmt.Errorf("%w: %s/%s", errIncomplete, loc, postID)
	}
	return out, nil
}

// plain убирает HTML из заголовков и анонсов: они уходят в карточки и meta-теги.
func (l *ContentLoader) plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(l.strict.Sanitize(s)))
}

func isMiss(err error) bool {
	return errors.Is(err, repository.ErrContentMissing) ||
		errors.Is(err, repository.ErrBadContentFile) ||
		errors.Is(err, errIncomplete)
}

// Assemble собирает FullPost для запрошенного языка.
func (l *ContentLoader) Assemble(ctx context.Context, meta models.PostMeta, loc string) (*models.FullPost, error) {
	c, resolved, err := l.Load(ctx, meta.ID, loc)
	if err != nil {
		return nil, err
	}
	return &models.FullPost{
		PostMeta:         meta,
		LocalizedContent: *c,
		Slug:             meta.SlugFor(loc, l.defaultLocale),
		RequestedLocale:  loc,
		ResolvedLocale:   resolved,
		FallbackUsed:     resolved != loc,
	}, nil
}

// AssembleBatch грузит тексты параллельно и возвращает их в порядке metas.
// Статья, которую не удалось загрузить, пропускается и логируется — остальные не страдают.
func (l *ContentLoader) AssembleBatch(ctx context.Context, metas []models.PostMeta, loc string) []models.FullPost {
	results := make([]*models.FullPost, len(metas))

	var g errgroup.Group
	if l.concurrency > 0 {
		g.SetLimit(l.concurrency)
	}
	for i, meta := range metas {
		i, meta := i, meta
		g.Go(func() error {
			fp, err := l.Assemble(ctx, meta, loc)
			if err != nil {
				metrics.BatchExcluded.Inc()
				logger.WithCtx(ctx).Warn("content: статья исключена из списка",
					zap.String("post_id", meta.ID), zap.String("lang", loc), zap.Error(err))
				return nil
			}
			results[i] = fp
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.FullPost, 0, len(metas))
	for _, fp := range results {
		if fp != nil {
			out = append(out, *fp)
		}
	}
	return out
}
