package services

import (
	"context"
	"errors"
	"testing"

	"fiscalblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentLoader_Hit(t *testing.T) {
	store := newFakeStore().put("en", "p", "Guide")
	l := NewContentLoader(store, "es", 4)

	c, resolved, err := l.Load(context.Background(), "p", "en")
	require.NoError(t, err)
	assert.Equal(t, "en", resolved)
	assert.Equal(t, "Guide", c.Title)
	assert.Equal(t, []string{"en/p"}, store.calls)
}

func TestContentLoader_FallbackToDefault(t *testing.T) {
	store := newFakeStore().put("es", "p", "Guía")
	l := NewContentLoader(store, "es", 4)

	c, resolved, err := l.Load(context.Background(), "p", "ca")
	require.NoError(t, err)
	assert.Equal(t, "es", resolved)
	assert.Equal(t, "Guía", c.Title)
	assert.Equal(t, []string{"ca/p", "es/p"}, store.calls)
}

func TestContentLoader_MissOnDefaultNoRetry(t *testing.T) {
	store := newFakeStore()
	l := NewContentLoader(store, "es", 4)

	_, _, err := l.Load(context.Background(), "p", "es")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContentNotFound))

	var cnf *ContentNotFoundError
	require.True(t, errors.As(err, &cnf))
	assert.Equal(t, "p", cnf.PostID)
	assert.False(t, cnf.FallbackExhausted)
	assert.Equal(t, []string{"es/p"}, store.calls)
}

func TestContentLoader_FallbackExhausted(t *testing.T) {
	l := NewContentLoader(newFakeStore(), "es", 4)

	_, _, err := l.Load(context.Background(), "p", "en")
	var cnf *ContentNotFoundError
	require.True(t, errors.As(err, &cnf))
	assert.True(t, cnf.FallbackExhausted)
	assert.Equal(t, "en", cnf.Locale)
	assert.Equal(t, "es", cnf.FallbackLocale)
}

func TestContentLoader_IncompleteIsMiss(t *testing.T) {
	store := newFakeStore().put("es", "p", "Guía")
	store.data["en/p"] = models.LocalizedContent{Title: "Guide", Excerpt: "", Content: "body"}
	l := NewContentLoader(store, "es", 4)

	c, resolved, err := l.Load(context.Background(), "p", "en")
	require.NoError(t, err)
	assert.Equal(t, "es", resolved, "неполный перевод должен откатываться на язык по умолчанию")
	assert.True(t, c.Complete())
}

func TestContentLoader_StoreErrorPropagates(t *testing.T) {
	store := newFakeStore().put("es", "p", "Guía")
	store.fail["en/p"] = errDisk
	l := NewContentLoader(store, "es", 4)

	_, _, err := l.Load(context.Background(), "p", "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, errDisk)
	assert.False(t, errors.Is(err, ErrContentNotFound))
}

func TestContentLoader_SanitizesTitleAndExcerpt(t *testing.T) {
	store := newFakeStore()
	store.data["es/p"] = models.LocalizedContent{
		Title:   `<script>alert(1)</script>IRPF & <b>cripto</b>`,
		Excerpt: ` <a href="javascript:x">Resumen</a> `,
		Content: "## Cuerpo\n\n<em>markdown</em>",
	}
	l := NewContentLoader(store, "es", 4)

	c, _, err := l.Load(context.Background(), "p", "es")
	require.NoError(t, err)
	assert.Equal(t, "IRPF & cripto", c.Title)
	assert.Equal(t, "Resumen", c.Excerpt)
	assert.Equal(t, "## Cuerpo\n\n<em>markdown</em>", c.Content)
}

func TestContentLoader_Assemble(t *testing.T) {
	store := newFakeStore().put("es", "p", "Guía")
	l := NewContentLoader(store, "es", 4)
	m := meta("p", "2024-01-01", "x")
	delete(m.SlugTranslations, "en")

	fp, err := l.Assemble(context.Background(), m, "en")
	require.NoError(t, err)
	assert.Equal(t, "p", fp.ID)
	assert.Equal(t, "p-es", fp.Slug, "без slug на языке берётся slug языка по умолчанию")
	assert.Equal(t, "en", fp.RequestedLocale)
	assert.Equal(t, "es", fp.ResolvedLocale)
	assert.True(t, fp.FallbackUsed)
	assert.Equal(t, "Guía body", fp.Content)
}

func TestContentLoader_AssembleBatchExcludesFailuresKeepsOrder(t *testing.T) {
	store := newFakeStore().
		put("es", "a", "A").
		put("en", "b", "B").
		put("es", "d", "D")
	store.fail["en/c"] = errDisk
	l := NewContentLoader(store, "es", 2)

	metas := []models.PostMeta{
		meta("d", "2024-04-01", "x"),
		meta("c", "2024-03-01", "x"),
		meta("b", "2024-02-01", "x"),
		meta("a", "2024-01-01", "x"),
		meta("missing", "2023-01-01", "x"),
	}
	list := l.AssembleBatch(context.Background(), metas, "en")

	assert.Equal(t, []string{"d", "b", "a"}, fullIDs(list))
	assert.True(t, list[0].FallbackUsed)
	assert.False(t, list[1].FallbackUsed)
}

func TestContentLoader_AssembleBatchEmpty(t *testing.T) {
	l := NewContentLoader(newFakeStore(), "es", 0)
	list := l.AssembleBatch(context.Background(), nil, "es")
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
