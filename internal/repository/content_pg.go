package repository

import (
	"context"
	"errors"
	"fmt"

	"fiscalblog/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresContentStore — тексты статей в таблице post_contents(post_id, locale, title, excerpt, content).
type PostgresContentStore struct {
	db *pgxpool.Pool
}

func NewPostgresContentStore(db *pgxpool.Pool) *PostgresContentStore {
	return &PostgresContentStore{db: db}
}

func (r *PostgresContentStore) Load(ctx context.Context, loc, postID string) (*models.LocalizedContent, error) {
	const q = `
		SELECT title, excerpt, content
		FROM post_contents
		WHERE post_id = $1 AND locale = $2
	`
	var c models.LocalizedContent
	err := r.db.QueryRow(ctx, q, postID, loc).Scan(&c.Title, &c.Excerpt, &c.Content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrContentMissing, loc, postID)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert сохраняет текст статьи; используется при импорте файлов в БД.
func (r *PostgresContentStore) Upsert(ctx context.Context, loc, postID string, c *models.LocalizedContent) error {
	const q = `
		INSERT INTO post_contents (post_id, locale, title, excerpt, content)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (post_id, locale)
		DO UPDATE SET title = EXCLUDED.title, excerpt = EXCLUDED.excerpt, content = EXCLUDED.content
	`
	_, err := r.db.Exec(ctx, q, postID, loc, c.Title, c.Excerpt, c.Content)
	return err
}

// EnsureSchema создаёт таблицу post_contents, если её ещё нет.
func (r *PostgresContentStore) EnsureSchema(ctx context.Context) error {
	const q = `
		CREATE TABLE IF NOT EXISTS post_contents (
			post_id TEXT NOT NULL,
			locale  TEXT NOT NULL,
			title   TEXT NOT NULL,
			excerpt TEXT NOT NULL,
			content TEXT NOT NULL,
			PRIMARY KEY (post_id, locale)
		)
	`
	_, err := r.db.Exec(ctx, q)
	return err
}
