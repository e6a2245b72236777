package db

import (
	"context"
	"time"

	"fiscalblog/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresConnection нужен только для CONTENT_BACKEND=postgres.
func NewPostgresConnection(cfg *config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.GetDSN())
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
