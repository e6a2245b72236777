package app

import (
	"context"
	"time"

	"fiscalblog/internal/config"
	"fiscalblog/internal/db"
	"fiscalblog/internal/handlers"
	"fiscalblog/internal/logger"
	"fiscalblog/internal/repository"
	"fiscalblog/internal/routes"
	"fiscalblog/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// InitApp собирает зависимости. Второе значение закрывает соединения с БД и Redis.
func InitApp(cfg *config.Config) (*mux.Router, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// Каталог (метаданные + кластеры)
	catalog, err := repository.NewCatalogHolder(repository.CatalogSource{
		PostsFile:        cfg.PostsFile,
		ClustersFile:     cfg.ClustersFile,
		ClusterStatsFile: cfg.ClusterStatsFile,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Log.Info("Каталог блога загружен", zap.Int("posts", catalog.Current().Posts.Len()))

	// Хранилище текстов
	var (
		store     repository.ContentStore
		rescanner services.ContentRescanner
	)
	switch cfg.ContentBackend {
	case "postgres":
		conn, err := db.NewPostgresConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, conn.Close)
		logger.Log.Info("Тексты статей из PostgreSQL", zap.String("dsn", cfg.GetDSNSafe()))
		store = repository.NewPostgresContentStore(conn)
	default:
		fsStore, err := repository.NewFileContentStore(cfg.ContentDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Log.Info("Тексты статей из файлов",
			zap.String("dir", cfg.ContentDir), zap.Int("files", len(fsStore.Keys())))
		store = fsStore
		rescanner = fsStore
	}

	rdb := db.NewRedisClient(cfg)
	if rdb != nil {
		closers = append(closers, func() { _ = rdb.Close() })
	}
	cached := repository.NewCachedContentStore(store, rdb, cfg.ContentCacheTTL)

	// Сервисы
	loader := services.NewContentLoader(cached, cfg.DefaultLocale, cfg.LoadConcurrency)
	blogSvc := services.NewBlogService(catalog, loader, cfg.RelatedLimit)
	clusterSvc := services.NewClusterService(catalog, loader)

	// расхождения в данных не мешают старту
	clusterSvc.CheckIntegrity(context.Background())

	// Хендлеры
	blogH := handlers.NewBlogHandler(blogSvc)
	clusterH := handlers.NewClusterHandler(clusterSvc)

	var adminH *handlers.AdminHandler
	if cfg.AdminEnabled() {
		ttl, err := time.ParseDuration(cfg.AccessTokenTTL)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		adminSvc := services.NewAdminService(catalog, clusterSvc, rescanner, cached,
			cfg.AdminUser, cfg.AdminPasswordHash, cfg.JWTSecret, ttl)
		adminH = handlers.NewAdminHandler(adminSvc)
	}

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, blogH, clusterH, adminH, cfg.JWTSecret, cfg.DefaultLocale)

	return router, cleanup, nil
}
