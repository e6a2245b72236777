package models

// Cluster — тематический кластер статей. Отображаемые поля хранятся по языкам.
type Cluster struct {
	ID          string              `json:"id"`
	Name        map[string]string   `json:"name"`
	Description map[string]string   `json:"description"`
	Keywords    map[string][]string `json:"keywords"`
	AIPrompts   map[string][]string `json:"aiPrompts"`
}

// ClusterStats — денормализованные счётчики из clusters-index.json.
type ClusterStats struct {
	TotalClusters int   `json:"totalClusters"`
	TotalPosts    int   `json:"totalPosts"`
	LastUpdated   *Date `json:"lastUpdated,omitempty"`
}

type ClusterSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PostsCount  int    `json:"postsCount"`
}

// ClusterView — кластер, локализованный под язык запроса, вместе со статьями.
type ClusterView struct {
	ID          string     `json:"id"`
	Locale      string     `json:"locale"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Keywords    []string   `json:"keywords"`
	AIPrompts   []string   `json:"aiPrompts"`
	Posts       []FullPost `json:"posts"`
	ComingSoon  bool       `json:"comingSoon"`
}

// IntegrityReport — результат сверки денормализованных данных с живыми.
type IntegrityReport struct {
	Stored   *ClusterStats `json:"stored,omitempty"`
	Live     ClusterStats  `json:"live"`
	Warnings []string      `json:"warnings"`
}
