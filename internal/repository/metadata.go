package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"fiscalblog/internal/locale"
	"fiscalblog/internal/models"
)

// Index — неизменяемый каталог метаданных статей. После NewIndex ничего не мутируется,
// поэтому чтение из нескольких горутин безопасно без блокировок.
type Index struct {
	posts  []models.PostMeta // порядок входного документа
	sorted []int             // индексы posts по publishedAt desc (стабильно)
	byID   map[string]int
	slugs  map[string]map[string]string // locale -> slug -> id

	warnings []string
}

// LoadIndex читает массив метаданных из JSON-файла.
func LoadIndex(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read posts file: %w", err)
	}
	var posts []models.PostMeta
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("decode posts file %s: %w", path, err)
	}
	return NewIndex(posts)
}

// NewIndex валидирует записи и строит индекс. Дубли id и slug внутри одного языка — фатальны.
func NewIndex(posts []models.PostMeta) (*Index, error) {
	idx := &Index{
		posts: append([]models.PostMeta(nil), posts...),
		byID:  make(map[string]int, len(posts)),
		slugs: make(map[string]map[string]string, len(locale.Supported)),
	}
	for _, loc := range locale.Supported {
		idx.slugs[loc] = map[string]string{}
	}

	var errs []error
	slugOwners := map[string]string{} // slug -> id (любой язык), для предупреждений

	for i := range idx.posts {
		p := &idx.posts[i]
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("post #%d: empty id", i))
			continue
		}
		if _, dup := idx.byID[p.ID]; dup {
			errs = append(errs, fmt.Errorf("post %q: duplicate id", p.ID))
			continue
		}
		idx.byID[p.ID] = i

		if p.PublishedAt.IsZero() {
			errs = append(errs, fmt.Errorf("post %q: publishedAt is required", p.ID))
		}
		if p.UpdatedAt != nil && p.UpdatedAt.Before(p.PublishedAt.Time) {
			errs = append(errs, fmt.Errorf("post %q: updatedAt before publishedAt", p.ID))
		}
		if p.ReadingTime <= 0 {
			errs = append(errs, fmt.Errorf("post %q: readingTime must be positive", p.ID))
		}
		if len(p.SlugTranslations) == 0 {
			errs = append(errs, fmt.Errorf("post %q: no slugs", p.ID))
		}

		for loc, slug := range p.SlugTranslations {
			if !locale.IsSupported(loc) {
				errs = append(errs, fmt.Errorf("post %q: unsupported slug locale %q", p.ID, loc))
				continue
			}
			if slug == "" {
				errs = append(errs, fmt.Errorf("post %q: empty slug for %s", p.ID, loc))
				continue
			}
			if other, taken := idx.slugs[loc][slug]; taken {
				errs = append(errs, fmt.Errorf("slug %q (%s) used by both %q and %q", slug, loc, other, p.ID))
				continue
			}
			idx.slugs[loc][slug] = p.ID
			if owner, ok := slugOwners[slug]; ok && owner != p.ID {
				idx.warnings = append(idx.warnings,
					fmt.Sprintf("slug %q is shared by %q and %q in different locales", slug, owner, p.ID))
			} else {
				slugOwners[slug] = p.ID
			}
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIndex, errors.Join(errs...))
	}

	idx.sorted = make([]int, len(idx.posts))
	for i := range idx.sorted {
		idx.sorted[i] = i
	}
	sort.SliceStable(idx.sorted, func(a, b int) bool {
		return idx.posts[idx.sorted[a]].PublishedAt.After(idx.posts[idx.sorted[b]].PublishedAt.Time)
	})

	sort.Strings(idx.warnings)
	return idx, nil
}

func (x *Index) Len() int { return len(x.posts) }

// Warnings — некритичные замечания, найденные при построении индекса.
func (x *Index) Warnings() []string { return append([]string(nil), x.warnings...) }

func (x *Index) Get(id string) (models.PostMeta, error) {
	i, ok := x.byID[id]
	if !ok {
		return models.PostMeta{}, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}
	return x.posts[i], nil
}

func (x *Index) Has(id string) bool {
	_, ok := x.byID[id]
	return ok
}

// ListAll — все статьи, новые сверху; при равных датах сохраняется входной порядок.
func (x *Index) ListAll() []models.PostMeta {
	return x.filter(func(*models.PostMeta) bool { return true })
}

func (x *Index) ListFeatured() []models.PostMeta {
	return x.filter(func(p *models.PostMeta) bool { return p.Featured })
}

func (x *Index) ListByCategory(category string) []models.PostMeta {
	if category == "" {
		return []models.PostMeta{}
	}
	return x.filter(func(p *models.PostMeta) bool { return p.Category == category })
}

func (x *Index) ListByTag(tag string) []models.PostMeta {
	if tag == "" {
		return []models.PostMeta{}
	}
	return x.filter(func(p *models.PostMeta) bool { return p.HasTag(tag) })
}

// ListByCluster — участники кластера; пустой результат — нормальное состояние.
func (x *Index) ListByCluster(clusterID string) []models.PostMeta {
	if clusterID == "" {
		return []models.PostMeta{}
	}
	return x.filter(func(p *models.PostMeta) bool { return p.Cluster == clusterID })
}

// ListCategories — уникальные категории в порядке первого появления во входном документе.
func (x *Index) ListCategories() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for i := range x.posts {
		c := x.posts[i].Category
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func (x *Index) ListTags() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for i := range x.posts {
		for _, t := range x.posts[i].Tags {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// ResolveSlug ищет статью по slug любого языка. Сначала проверяется запрошенный язык,
// затем все статьи во входном порядке.
func (x *Index) ResolveSlug(slug, loc string) (string, error) {
	if slug == "" {
		return "", fmt.Errorf("%w: empty slug", ErrPostNotFound)
	}
	if id, ok := x.slugs[loc][slug]; ok {
		return id, nil
	}
	for i := range x.posts {
		for _, l := range locale.Supported {
			if x.posts[i].SlugTranslations[l] == slug {
				return x.posts[i].ID, nil
			}
		}
	}
	return "", fmt.Errorf("%w: slug %q", ErrPostNotFound, slug)
}

func (x *Index) filter(keep func(*models.PostMeta) bool) []models.PostMeta {
	out := make([]models.PostMeta, 0, len(x.sorted))
	for _, i := range x.sorted {
		if keep(&x.posts[i]) {
			out = append(out, x.posts[i])
		}
	}
	return out
}
