package services

import (
	"errors"
	"fmt"

	"fiscalblog/internal/repository"
)

var (
	ErrPostNotFound    = repository.ErrPostNotFound
	ErrClusterNotFound = repository.ErrClusterNotFound
	ErrContentNotFound = errors.New("content not found")

	ErrUnsupportedLocale = errors.New("unsupported locale")
)

// ContentNotFoundError — метаданные есть, а текста нет ни на запрошенном языке, ни на языке по умолчанию.
type ContentNotFoundError struct {
	PostID            string
	Locale            string
	FallbackLocale    string
	FallbackExhausted bool
}

func (e *ContentNotFoundError) Error() string {
	if e.FallbackExhausted {
		return fmt.Sprintf("content not found for post %q in any locale (requested %s, fallback %s)",
			e.PostID, e.Locale, e.FallbackLocale)
	}
	return fmt.Sprintf("content not found for post %q (locale %s)", e.PostID, e.Locale)
}

func (e *ContentNotFoundError) Is(target error) bool { return target == ErrContentNotFound }
