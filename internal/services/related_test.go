package services

import (
	"testing"

	"fiscalblog/internal/models"
	"fiscalblog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIndex(t *testing.T, posts ...models.PostMeta) *repository.Index {
	t.Helper()
	idx, err := repository.NewIndex(posts)
	require.NoError(t, err)
	return idx
}

func TestRelated_HeuristicThenRecency(t *testing.T) {
	a := meta("A", "2024-01-01", "x", "crypto", "tax")
	b := meta("B", "2024-02-01", "x", "crypto")
	c := meta("C", "2024-03-01", "y", "nft")
	idx := newIndex(t, a, b, c)

	assert.Equal(t, []string{"B", "C"}, postIDs(relatedPosts(idx, a, 2)))
}

func TestRelated_RankBySharedTagsThenDate(t *testing.T) {
	src := meta("src", "2024-01-01", "x", "irpf", "cripto", "721")
	one := meta("one", "2024-05-01", "x")                  // только категория
	two := meta("two", "2024-02-01", "y", "irpf", "cripto") // два общих тега
	three := meta("three", "2024-03-01", "z", "irpf")       // один тег, новее four
	four := meta("four", "2024-02-15", "z", "cripto")
	other := meta("other", "2024-06-01", "z", "nft")
	idx := newIndex(t, src, one, two, three, four, other)

	got := relatedPosts(idx, src, 5)
	assert.Equal(t, []string{"two", "three", "four", "one", "other"}, postIDs(got))
}

func TestRelated_ExplicitFirstDanglingDropped(t *testing.T) {
	x := meta("X", "2024-01-01", "x", "crypto")
	x.RelatedPosts = []string{"Y", "Z"}
	y := meta("Y", "2023-01-01", "other")
	w := meta("W", "2024-02-01", "x")
	v := meta("V", "2024-03-01", "v")
	idx := newIndex(t, x, y, w, v)

	got := relatedPosts(idx, x, 3)
	assert.Equal(t, []string{"Y", "W", "V"}, postIDs(got))
}

func TestRelated_ExplicitRespectsLimitAndOrder(t *testing.T) {
	x := meta("X", "2024-01-01", "x")
	x.RelatedPosts = []string{"C", "X", "A", "C", "B"}
	idx := newIndex(t, x,
		meta("A", "2024-01-02", "x"),
		meta("B", "2024-01-03", "x"),
		meta("C", "2024-01-04", "x"),
	)

	assert.Equal(t, []string{"C", "A"}, postIDs(relatedPosts(idx, x, 2)))
}

func TestRelated_NeverSelfOrDuplicates(t *testing.T) {
	posts := []models.PostMeta{
		meta("a", "2024-01-01", "x", "t1", "t1"),
		meta("b", "2024-01-02", "x", "t1"),
		meta("c", "2024-01-03", "y", "t2"),
		meta("d", "2024-01-04", "y", "t1", "t2"),
	}
	posts[0].RelatedPosts = []string{"a", "b", "b"}
	idx := newIndex(t, posts...)

	for _, p := range posts {
		got := relatedPosts(idx, p, 3)
		seen := map[string]bool{}
		for _, r := range got {
			assert.NotEqual(t, p.ID, r.ID)
			assert.False(t, seen[r.ID], "повтор %s для %s", r.ID, p.ID)
			seen[r.ID] = true
		}
		assert.LessOrEqual(t, len(got), 3)
	}
}

func TestRelated_FewerThanLimit(t *testing.T) {
	a := meta("a", "2024-01-01", "x")
	b := meta("b", "2024-01-02", "y")
	idx := newIndex(t, a, b)

	assert.Equal(t, []string{"b"}, postIDs(relatedPosts(idx, a, 3)))
	assert.Empty(t, relatedPosts(newIndex(t, a), a, 3))
}

func TestRelated_DefaultLimit(t *testing.T) {
	a := meta("a", "2024-01-01", "x")
	idx := newIndex(t, a,
		meta("b", "2024-01-02", "x"),
		meta("c", "2024-01-03", "x"),
		meta("d", "2024-01-04", "x"),
		meta("e", "2024-01-05", "x"),
	)
	assert.Len(t, relatedPosts(idx, a, 0), defaultRelatedLimit)
}
