package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	Log      string
	LogLevel string
	Env      string // dev|prod

	DataDir          string
	PostsFile        string
	ClustersFile     string
	ClusterStatsFile string
	ContentDir       string
	DefaultLocale    string

	ContentBackend  string // fs|postgres
	LoadConcurrency int
	RelatedLimit    int

	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ContentCacheTTL time.Duration

	JWTSecret         string
	AccessTokenTTL    string
	AdminUser         string
	AdminPasswordHash string

	CORSOrigins []string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	dataDir := def(os.Getenv("DATA_DIR"), "data")

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		DataDir:          dataDir,
		PostsFile:        def(os.Getenv("POSTS_FILE"), filepath.Join(dataDir, "blog-posts.json")),
		ClustersFile:     def(os.Getenv("CLUSTERS_FILE"), filepath.Join(dataDir, "clusters.json")),
		ClusterStatsFile: def(os.Getenv("CLUSTER_STATS_FILE"), filepath.Join(dataDir, "clusters-index.json")),
		ContentDir:       def(os.Getenv("CONTENT_DIR"), filepath.Join(dataDir, "content")),
		DefaultLocale:    strings.ToLower(def(os.Getenv("DEFAULT_LOCALE"), "es")),

		ContentBackend: strings.ToLower(def(os.Getenv("CONTENT_BACKEND"), "fs")),

		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AccessTokenTTL:    def(os.Getenv("ACCESS_TOKEN_EXPIRY"), "30m"),
		AdminUser:         def(os.Getenv("ADMIN_USER"), "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		CORSOrigins: splitCSV(def(os.Getenv("CORS_ORIGINS"), "*")),
	}

	var err error
	if cfg.LoadConcurrency, err = atoiDef(os.Getenv("LOAD_CONCURRENCY"), 8); err != nil {
		return nil, fmt.Errorf("LOAD_CONCURRENCY: %w", err)
	}
	if cfg.RelatedLimit, err = atoiDef(os.Getenv("RELATED_LIMIT"), 3); err != nil {
		return nil, fmt.Errorf("RELATED_LIMIT: %w", err)
	}
	if cfg.RedisDB, err = atoiDef(os.Getenv("REDIS_DB"), 0); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.ContentCacheTTL, err = time.ParseDuration(def(os.Getenv("CONTENT_CACHE_TTL"), "10m")); err != nil {
		return nil, fmt.Errorf("CONTENT_CACHE_TTL: %w", err)
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	switch c.DefaultLocale {
	case "es", "en", "ca":
	default:
		return nil, fmt.Errorf("unsupported DEFAULT_LOCALE %q", c.DefaultLocale)
	}

	switch c.ContentBackend {
	case "fs":
	case "postgres":
		// Критичные: БД нужна только для postgres-бэкенда
		if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
			return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
		}
	default:
		return nil, fmt.Errorf("unknown CONTENT_BACKEND %q", c.ContentBackend)
	}

	if c.LoadConcurrency <= 0 {
		warnings = append(warnings, "LOAD_CONCURRENCY <= 0, loads will not be bounded")
	}

	if c.RedisAddr == "" {
		warnings = append(warnings, "REDIS_ADDR is empty, content cache disabled")
	}

	// JWT/админка — предупреждение, сайт работает и без неё
	if strings.TrimSpace(c.JWTSecret) == "" || c.AdminPasswordHash == "" {
		warnings = append(warnings, "admin API disabled: JWT_SECRET or ADMIN_PASSWORD_HASH is empty")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// AdminEnabled — true, если админские маршруты можно поднимать.
func (c *Config) AdminEnabled() bool {
	return strings.TrimSpace(c.JWTSecret) != "" && c.AdminPasswordHash != ""
}

// GetDSN — полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe — DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func atoiDef(s string, d int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return d, nil
	}
	return strconv.Atoi(s)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
