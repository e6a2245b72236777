package repository

import (
	"fmt"
	"sync/atomic"
)

// Catalog — снимок статических данных блога.
type Catalog struct {
	Posts    *Index
	Clusters *ClusterCatalog
}

type CatalogSource struct {
	PostsFile        string
	ClustersFile     string
	ClusterStatsFile string
}

func LoadCatalog(src CatalogSource) (*Catalog, error) {
	posts, err := LoadIndex(src.PostsFile)
	if err != nil {
		return nil, err
	}
	clusters, err := LoadClusters(src.ClustersFile, src.ClusterStatsFile)
	if err != nil {
		return nil, err
	}
	return &Catalog{Posts: posts, Clusters: clusters}, nil
}

// CatalogHolder отдаёт текущий снимок; Reload строит новый и подменяет его атомарно.
// Запросы, уже получившие снимок, дорабатывают на старом.
type CatalogHolder struct {
	src CatalogSource
	cur atomic.Pointer[Catalog]
}

func NewCatalogHolder(src CatalogSource) (*CatalogHolder, error) {
	c, err := LoadCatalog(src)
	if err != nil {
		return nil, err
	}
	h := &CatalogHolder{src: src}
	h.cur.Store(c)
	return h, nil
}

// StaticCatalog — держатель без источника (тесты, фикстуры). Reload для него — ошибка.
func StaticCatalog(c *Catalog) *CatalogHolder {
	h := &CatalogHolder{}
	h.cur.Store(c)
	return h
}

func (h *CatalogHolder) Current() *Catalog { return h.cur.Load() }

func (h *CatalogHolder) Reload() (*Catalog, error) {
	if h.src.PostsFile == "" {
		return nil, fmt.Errorf("catalog has no source to reload from")
	}
	c, err := LoadCatalog(h.src)
	if err != nil {
		return nil, err
	}
	h.cur.Store(c)
	return c, nil
}
