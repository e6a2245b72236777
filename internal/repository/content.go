package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"fiscalblog/internal/locale"
	"fiscalblog/internal/models"

	"gopkg.in/yaml.v3"
)

// ContentStore отдаёт локализованный текст статьи. Отсутствие ресурса — ErrContentMissing.
type ContentStore interface {
	Load(ctx context.Context, loc, postID string) (*models.LocalizedContent, error)
}

var ErrBadContentFile = errors.New("bad content file")

// FileContentStore — реестр {locale}/{postId}.(md|json), собранный при старте и по Rescan.
// Промах — обычный промах по map, а не ошибка файловой системы.
type FileContentStore struct {
	dir      string
	registry atomic.Pointer[map[string]string] // "locale/postId" -> путь к файлу
}

func contentKey(loc, postID string) string { return loc + "/" + postID }

func NewFileContentStore(dir string) (*FileContentStore, error) {
	s := &FileContentStore{dir: dir}
	if _, err := s.Rescan(); err != nil {
		return nil, err
	}
	return s, nil
}

// Rescan заново обходит каталог и атомарно подменяет реестр.
// При ошибке остаётся прежний реестр. Возвращает число найденных файлов.
func (s *FileContentStore) Rescan() (int, error) {
	registry, err := scanContentDir(s.dir)
	if err != nil {
		return 0, err
	}
	s.registry.Store(&registry)
	return len(registry), nil
}

func scanContentDir(dir string) (map[string]string, error) {
	registry := map[string]string{}
	for _, loc := range locale.Supported {
		entries, err := os.ReadDir(filepath.Join(dir, loc))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("scan content dir %s: %w", loc, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			ext := filepath.Ext(name)
			if ext != ".md" && ext != ".json" {
				continue
			}
			id := strings.TrimSuffix(name, ext)
			key := contentKey(loc, id)
			if prev, ok := registry[key]; ok {
				return nil, fmt.Errorf("content %s defined twice: %s and %s", key, filepath.Base(prev), name)
			}
			registry[key] = filepath.Join(dir, loc, name)
		}
	}
	return registry, nil
}

func (s *FileContentStore) lookup(key string) (string, bool) {
	path, ok := (*s.registry.Load())[key]
	return path, ok
}

func (s *FileContentStore) Has(loc, postID string) bool {
	_, ok := s.lookup(contentKey(loc, postID))
	return ok
}

// Keys — все зарегистрированные ключи "locale/postId", отсортированные.
func (s *FileContentStore) Keys() []string {
	registry := *s.registry.Load()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s *FileContentStore) Load(_ context.Context, loc, postID string) (*models.LocalizedContent, error) {
	path, ok := s.lookup(contentKey(loc, postID))
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrContentMissing, loc, postID)
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		// файл удалили после старта
		return nil, fmt.Errorf("%w: %s/%s", ErrContentMissing, loc, postID)
	}
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".json" {
		return parseJSONContent(raw)
	}
	return ParseMarkdownContent(raw)
}

func parseJSONContent(raw []byte) (*models.LocalizedContent, error) {
	var c models.LocalizedContent
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadContentFile, err)
	}
	return &c, nil
}

// ParseMarkdownContent разбирает markdown с YAML front matter:
//
//	---
//	title: ...
//	excerpt: ...
//	---
//	тело статьи
func ParseMarkdownContent(raw []byte) (*models.LocalizedContent, error) {
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(raw, []byte("---\n")) {
		return nil, fmt.Errorf("%w: missing front matter", ErrBadContentFile)
	}
	fm, body, ok := splitFrontMatter(raw[len("---\n"):])
	if !ok {
		return nil, fmt.Errorf("%w: unterminated front matter", ErrBadContentFile)
	}
	var c models.LocalizedContent
	if err := yaml.Unmarshal(fm, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadContentFile, err)
	}
	c.Title = strings.TrimSpace(c.Title)
	c.Excerpt = strings.TrimSpace(c.Excerpt)
	c.Content = strings.TrimSpace(string(body))
	return &c, nil
}

// splitFrontMatter ищет закрывающую строку "---"; "---" внутри значений YAML разделителем не считается.
func splitFrontMatter(rest []byte) (fm, body []byte, ok bool) {
	if bytes.HasPrefix(rest, []byte("---\n")) {
		return nil, rest[len("---\n"):], true
	}
	if i := bytes.Index(rest, []byte("\n---\n")); i >= 0 {
		return rest[:i], rest[i+len("\n---\n"):], true
	}
	if bytes.HasSuffix(rest, []byte("\n---")) {
		return rest[:len(rest)-len("\n---")], nil, true
	}
	return nil, nil, false
}
