// contentcheck проверяет данные блога до деплоя: валидирует каталог, сверяет статистику
// кластеров и ищет статьи без текста на языке по умолчанию.
// С флагом -import-pg после успешной проверки переносит тексты из файлов в PostgreSQL.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	"fiscalblog/internal/config"
	"fiscalblog/internal/db"
	"fiscalblog/internal/locale"
	"fiscalblog/internal/logger"
	"fiscalblog/internal/repository"
	"fiscalblog/internal/services"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	importPG := flag.Bool("import-pg", false, "скопировать тексты из CONTENT_DIR в таблицу post_contents")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic("не удалось загрузить конфиг: " + err.Error())
	}
	cfg.Log = "dev"
	logger.InitLogger(cfg)
	defer logger.Log.Sync()
	log := logger.Log

	catalog, err := repository.NewCatalogHolder(repository.CatalogSource{
		PostsFile:        cfg.PostsFile,
		ClustersFile:     cfg.ClustersFile,
		ClusterStatsFile: cfg.ClusterStatsFile,
	})
	if err != nil {
		log.Error("Каталог не прошёл валидацию", zap.Error(err))
		return 1
	}

	store, err := repository.NewFileContentStore(cfg.ContentDir)
	if err != nil {
		log.Error("Не удалось прочитать каталог текстов", zap.Error(err))
		return 1
	}

	ctx := context.Background()
	loader := services.NewContentLoader(store, cfg.DefaultLocale, cfg.LoadConcurrency)
	report := services.NewClusterService(catalog, loader).CheckIntegrity(ctx)

	failed := 0
	for _, p := range catalog.Current().Posts.ListAll() {
		for _, loc := range locale.Supported {
			_, resolved, err := loader.Load(ctx, p.ID, loc)
			switch {
			case errors.Is(err, services.ErrContentNotFound):
				if loc == cfg.DefaultLocale {
					log.Error("Нет текста на языке по умолчанию", zap.String("post_id", p.ID), zap.String("lang", loc))
					failed++
				}
			case err != nil:
				log.Error("Ошибка чтения текста", zap.String("post_id", p.ID), zap.String("lang", loc), zap.Error(err))
				failed++
			case resolved != loc:
				log.Info("Нет перевода (будет откат)", zap.String("post_id", p.ID), zap.String("lang", loc))
			}
		}
	}

	log.Info("Проверка завершена",
		zap.Int("posts", catalog.Current().Posts.Len()),
		zap.Int("content_files", len(store.Keys())),
		zap.Int("warnings", len(report.Warnings)),
		zap.Int("errors", failed),
	)
	if failed > 0 {
		return 1
	}
	if *importPG {
		if err := importToPostgres(ctx, cfg, store); err != nil {
			log.Error("Импорт в PostgreSQL не удался", zap.Error(err))
			return 1
		}
	}
	return 0
}

func importToPostgres(ctx context.Context, cfg *config.Config, files *repository.FileContentStore) error {
	pool, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	pg := repository.NewPostgresContentStore(pool)
	if err := pg.EnsureSchema(ctx); err != nil {
		return err
	}
	for _, key := range files.Keys() {
		loc, id, _ := strings.Cut(key, "/")
		c, err := files.Load(ctx, loc, id)
		if err != nil {
			logger.Log.Warn("Пропускаем файл", zap.String("key", key), zap.Error(err))
			continue
		}
		if err := pg.Upsert(ctx, loc, id, c); err != nil {
			return err
		}
	}
	logger.Log.Info("Тексты импортированы", zap.String("dsn", cfg.GetDSNSafe()), zap.Int("files", len(files.Keys())))
	return nil
}
