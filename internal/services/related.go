package services

import (
	"sort"

	"fiscalblog/internal/models"
	"fiscalblog/internal/repository"
)

const defaultRelatedLimit = 3

// relatedPosts подбирает до limit похожих статей:
//  1. явные relatedPosts в авторском порядке (битые ссылки молча пропускаются);
//  2. статьи той же категории или с общими тегами — по числу общих тегов, затем по дате;
//  3. самые свежие статьи.
//
// Исходная статья и повторы в результат не попадают.
func relatedPosts(idx *repository.Index, src models.PostMeta, limit int) []models.PostMeta {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	out := make([]models.PostMeta, 0, limit)
	seen := map[string]struct{}{src.ID: {}}
	add := func(p models.PostMeta) {
		if len(out) >= limit {
			return
		}
		if _, dup := seen[p.ID]; dup {
			return
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}

	for _, id := range src.RelatedPosts {
		if p, err := idx.Get(id); err == nil {
			add(p)
		}
	}
	if len(out) >= limit {
		return out
	}

	all := idx.ListAll() // уже по дате, новые сверху

	srcTags := make(map[string]struct{}, len(src.Tags))
	for _, t := range src.Tags {
		srcTags[t] = struct{}{}
	}

	type candidate struct {
		post   models.PostMeta
		shared int
	}
	var candidates []candidate
	for _, p := range all {
		if _, skip := seen[p.ID]; skip {
			continue
		}
		shared := sharedTags(srcTags, p.Tags)
		sameCategory := src.Category != "" && p.Category == src.Category
		if shared == 0 && !sameCategory {
			continue
		}
		candidates = append(candidates, candidate{post: p, shared: shared})
	}
	// стабильная сортировка сохраняет порядок по дате внутри одинакового числа тегов
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].shared > candidates[j].shared
	})
	for _, c := range candidates {
		add(c.post)
	}

	for _, p := range all {
		add(p)
	}
	return out
}

func sharedTags(src map[string]struct{}, tags []string) int {
	n := 0
	counted := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := src[t]; !ok {
			continue
		}
		if _, dup := counted[t]; dup {
			continue
		}
		counted[t] = struct{}{}
		n++
	}
	return n
}
