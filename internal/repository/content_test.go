package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileContentStore_Registry(t *testing.T) {
	s, err := NewFileContentStore("testdata/content")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ca/defi-staking",
		"en/declaracion-renta-cripto",
		"es/declaracion-renta-cripto",
		"es/modelo-721",
	}, s.Keys())
	assert.True(t, s.Has("es", "modelo-721"))
	assert.False(t, s.Has("en", "modelo-721"))
}

func TestFileContentStore_LoadMarkdown(t *testing.T) {
	s, err := NewFileContentStore("testdata/content")
	require.NoError(t, err)

	c, err := s.Load(context.Background(), "es", "declaracion-renta-cripto")
	require.NoError(t, err)
	assert.Equal(t, "Cómo declarar criptomonedas en la renta", c.Title)
	assert.Equal(t, "Guía paso a paso para la campaña de la renta.", c.Excerpt)
	assert.True(t, len(c.Content) > 0)
	assert.Contains(t, c.Content, "## Ganancias y pérdidas patrimoniales")
	assert.True(t, c.Complete())
}

func TestFileContentStore_LoadJSON(t *testing.T) {
	s, err := NewFileContentStore("testdata/content")
	require.NoError(t, err)

	c, err := s.Load(context.Background(), "es", "modelo-721")
	require.NoError(t, err)
	assert.Equal(t, "Modelo 721: criptomonedas en el extranjero", c.Title)
	assert.True(t, c.Complete())
}

func TestFileContentStore_Miss(t *testing.T) {
	s, err := NewFileContentStore("testdata/content")
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "en", "modelo-721")
	assert.True(t, errors.Is(err, ErrContentMissing))
}

func TestFileContentStore_BadFrontMatter(t *testing.T) {
	s, err := NewFileContentStore("testdata/content")
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "ca", "defi-staking")
	assert.ErrorIs(t, err, ErrBadContentFile)
}

func TestFileContentStore_DuplicateKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "es"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "es", "a.md"), []byte("---\ntitle: a\n---\nx"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "es", "a.json"), []byte(`{"title":"a"}`), 0o644))

	_, err := NewFileContentStore(dir)
	require.Error(t, err)
}

func TestFileContentStore_FileRemovedAfterStart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en", "a.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("---\ntitle: a\nexcerpt: b\n---\nc"), 0o644))

	s, err := NewFileContentStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	_, err = s.Load(context.Background(), "en", "a")
	assert.ErrorIs(t, err, ErrContentMissing)
}

func TestFileContentStore_EmptyDir(t *testing.T) {
	s, err := NewFileContentStore(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, s.Keys())
}

func TestParseMarkdownContent(t *testing.T) {
	c, err := ParseMarkdownContent([]byte("---\r\ntitle: \"  T \"\r\nexcerpt: E\r\n---\r\n\r\nBody --- with dashes\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "T", c.Title)
	assert.Equal(t, "E", c.Excerpt)
	assert.Equal(t, "Body --- with dashes", c.Content)

	_, err = ParseMarkdownContent([]byte("---\ntitle: T\n"))
	assert.ErrorIs(t, err, ErrBadContentFile)

	_, err = ParseMarkdownContent([]byte("---\ntitle: [broken\n---\nbody"))
	assert.ErrorIs(t, err, ErrBadContentFile)
}

func TestParseMarkdownContent_DashesInsideFrontMatter(t *testing.T) {
	c, err := ParseMarkdownContent([]byte("---\ntitle: \"Modelo 721 --- guía\"\nexcerpt: E---F\n---\nBody\n"))
	require.NoError(t, err)
	assert.Equal(t, "Modelo 721 --- guía", c.Title)
	assert.Equal(t, "E---F", c.Excerpt)
	assert.Equal(t, "Body", c.Content)
}

func TestParseMarkdownContent_Delimiters(t *testing.T) {
	c, err := ParseMarkdownContent([]byte("---\ntitle: T\nexcerpt: E\n---"))
	require.NoError(t, err)
	assert.Equal(t, "T", c.Title)
	assert.Empty(t, c.Content)

	c, err = ParseMarkdownContent([]byte("---\n---\nтолько тело"))
	require.NoError(t, err)
	assert.Empty(t, c.Title)
	assert.Equal(t, "только тело", c.Content)

	_, err = ParseMarkdownContent([]byte("---title: T\n---\nbody"))
	assert.ErrorIs(t, err, ErrBadContentFile)
}

func TestFileContentStore_RescanPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "es"), 0o755))

	s, err := NewFileContentStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "es", "new-post.md")
	require.NoError(t, os.WriteFile(path, []byte("---\ntitle: Nuevo\nexcerpt: E\n---\nTexto"), 0o644))

	_, err = s.Load(context.Background(), "es", "new-post")
	assert.ErrorIs(t, err, ErrContentMissing, "до Rescan файл не зарегистрирован")

	n, err := s.Rescan()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	c, err := s.Load(context.Background(), "es", "new-post")
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", c.Title)
}

func TestFileContentStore_RescanErrorKeepsRegistry(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "a.md"), []byte("---\ntitle: a\nexcerpt: b\n---\nc"), 0o644))

	s, err := NewFileContentStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "a.json"), []byte(`{}`), 0o644))
	_, err = s.Rescan()
	require.Error(t, err)
	assert.Equal(t, []string{"en/a"}, s.Keys())
	assert.True(t, s.Has("en", "a"))
}
