package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"fiscalblog/internal/models"
)

// ClusterCatalog — кластеры и денормализованная статистика из companion-индекса.
type ClusterCatalog struct {
	clusters []models.Cluster
	byID     map[string]int
	stats    *models.ClusterStats
}

// LoadClusters читает clusters.json и (необязательный) файл статистики.
func LoadClusters(clustersPath, statsPath string) (*ClusterCatalog, error) {
	raw, err := os.ReadFile(clustersPath)
	if err != nil {
		return nil, fmt.Errorf("read clusters file: %w", err)
	}
	var clusters []models.Cluster
	if err := json.Unmarshal(raw, &clusters); err != nil {
		return nil, fmt.Errorf("decode clusters file %s: %w", clustersPath, err)
	}

	var stats *models.ClusterStats
	if statsPath != "" {
		rawStats, err := os.ReadFile(statsPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// статистика необязательна
		case err != nil:
			return nil, fmt.Errorf("read cluster stats: %w", err)
		default:
			stats = &models.ClusterStats{}
			if err := json.Unmarshal(rawStats, stats); err != nil {
				return nil, fmt.Errorf("decode cluster stats %s: %w", statsPath, err)
			}
		}
	}

	return NewClusterCatalog(clusters, stats)
}

func NewClusterCatalog(clusters []models.Cluster, stats *models.ClusterStats) (*ClusterCatalog, error) {
	c := &ClusterCatalog{
		clusters: append([]models.Cluster(nil), clusters...),
		byID:     make(map[string]int, len(clusters)),
		stats:    stats,
	}
	for i, cl := range c.clusters {
		if cl.ID == "" {
			return nil, fmt.Errorf("%w: cluster #%d has empty id", ErrInvalidIndex, i)
		}
		if _, dup := c.byID[cl.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate cluster id %q", ErrInvalidIndex, cl.ID)
		}
		c.byID[cl.ID] = i
	}
	return c, nil
}

func (c *ClusterCatalog) Get(id string) (models.Cluster, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Cluster{}, fmt.Errorf("%w: %s", ErrClusterNotFound, id)
	}
	return c.clusters[i], nil
}

func (c *ClusterCatalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *ClusterCatalog) List() []models.Cluster {
	return append([]models.Cluster(nil), c.clusters...)
}

// Stats — сохранённые счётчики или nil, если файла статистики нет.
func (c *ClusterCatalog) Stats() *models.ClusterStats {
	if c.stats == nil {
		return nil
	}
	s := *c.stats
	return &s
}
