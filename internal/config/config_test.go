package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATA_DIR", "fixtures")
	t.Setenv("PORT", "")
	t.Setenv("CONTENT_BACKEND", "")
	t.Setenv("CORS_ORIGINS", " https://a.es , ,https://b.es")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fs", cfg.ContentBackend)
	assert.Equal(t, "es", cfg.DefaultLocale)
	assert.Equal(t, "fixtures/blog-posts.json", cfg.PostsFile)
	assert.Equal(t, "fixtures/content", cfg.ContentDir)
	assert.Equal(t, 8, cfg.LoadConcurrency)
	assert.Equal(t, 3, cfg.RelatedLimit)
	assert.Equal(t, 10*time.Minute, cfg.ContentCacheTTL)
	assert.Equal(t, []string{"https://a.es", "https://b.es"}, cfg.CORSOrigins)
}

func TestLoadConfig_BadNumbers(t *testing.T) {
	t.Setenv("RELATED_LIMIT", "три")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{Port: "8080", DefaultLocale: "es", ContentBackend: "fs", LoadConcurrency: 4}
	}

	warnings, err := base().Validate()
	require.NoError(t, err)
	assert.Len(t, warnings, 2) // без Redis и без админки

	c := base()
	c.DefaultLocale = "fr"
	_, err = c.Validate()
	assert.Error(t, err)

	c = base()
	c.ContentBackend = "postgres"
	_, err = c.Validate()
	assert.Error(t, err)

	c.DbHost, c.DbUser, c.DbName = "localhost", "blog", "blog"
	_, err = c.Validate()
	assert.NoError(t, err)

	c = base()
	c.ContentBackend = "s3"
	_, err = c.Validate()
	assert.Error(t, err)
}

func TestAdminEnabled(t *testing.T) {
	c := &Config{JWTSecret: " ", AdminPasswordHash: "hash"}
	assert.False(t, c.AdminEnabled())
	c.JWTSecret = "secret"
	assert.True(t, c.AdminEnabled())
}

func TestDSNSafeHidesPassword(t *testing.T) {
	c := &Config{DbUser: "u", DbPass: "p@ss", DbHost: "h", DbPort: "5432", DbName: "blog", DbSSLMode: "disable"}
	assert.Contains(t, c.GetDSN(), "p@ss")
	assert.NotContains(t, c.GetDSNSafe(), "p@ss")
}
