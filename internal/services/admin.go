package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fiscalblog/internal/logger"
	"fiscalblog/internal/models"
	"fiscalblog/internal/repository"
	"fiscalblog/internal/utils"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("неверный логин или пароль")

// CacheFlusher — кэш текстов статей, который можно сбросить после правок контента.
type CacheFlusher interface {
	Flush(ctx context.Context) (int, error)
}

// ContentRescanner — хранилище текстов, реестр которого можно перечитать без рестарта.
type ContentRescanner interface {
	Rescan() (int, error)
}

type AdminService struct {
	catalog      *repository.CatalogHolder
	clusters     ClusterService
	content      ContentRescanner
	cache        CacheFlusher
	user         string
	passwordHash string
	secret       string
	tokenTTL     time.Duration
}

func NewAdminService(
	catalog *repository.CatalogHolder,
	clusters ClusterService,
	content ContentRescanner, // nil — тексты не из файлов
	cache CacheFlusher,
	user, passwordHash, secret string,
	tokenTTL time.Duration,
) *AdminService {
	return &AdminService{
		catalog:      catalog,
		clusters:     clusters,
		content:      content,
		cache:        cache,
		user:         user,
		passwordHash: passwordHash,
		secret:       secret,
		tokenTTL:     tokenTTL,
	}
}

func (s *AdminService) Login(ctx context.Context, user, password string) (string, error) {
	log := logger.WithCtx(ctx)
	if user != s.user || !utils.CheckPasswordHash(password, s.passwordHash) {
		log.Warn("admin: неудачная попытка входа", zap.String("user", user))
		return "", ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(s.secret, user, s.tokenTTL)
	if err != nil {
		log.Error("admin: ошибка генерации токена", zap.Error(err))
		return "", err
	}
	log.Info("admin: вход выполнен", zap.String("user", user))
	return token, nil
}

// Reload перечитывает JSON-файлы и реестр текстов, затем сбрасывает кэш текстов.
// При ошибке продолжает работать старый снимок.
func (s *AdminService) Reload(ctx context.Context) (models.IntegrityReport, error) {
	log := logger.WithCtx(ctx)
	cat, err := s.catalog.Reload()
	if err != nil {
		log.Error("admin: перезагрузка каталога не удалась", zap.Error(err))
		return models.IntegrityReport{}, err
	}
	log.Info("admin: каталог перезагружен", zap.Int("posts", cat.Posts.Len()))

	if s.content != nil {
		n, err := s.content.Rescan()
		if err != nil {
			log.Error("admin: реестр текстов не перечитан", zap.Error(err))
			return models.IntegrityReport{}, fmt.Errorf("rescan content: %w", err)
		}
		log.Info("admin: реестр текстов перечитан", zap.Int("files", n))
	}
	if _, err := s.FlushCache(ctx); err != nil {
		return models.IntegrityReport{}, fmt.Errorf("flush content cache: %w", err)
	}
	return s.clusters.CheckIntegrity(ctx), nil
}

func (s *AdminService) Integrity(ctx context.Context) models.IntegrityReport {
	return s.clusters.CheckIntegrity(ctx)
}

func (s *AdminService) FlushCache(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	n, err := s.cache.Flush(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("admin: ошибка сброса кэша", zap.Error(err))
		return n, err
	}
	logger.WithCtx(ctx).Info("admin: кэш текстов сброшен", zap.Int("keys", n))
	return n, nil
}
