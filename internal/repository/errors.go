package repository

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrClusterNotFound = errors.New("cluster not found")

	// ErrContentMissing — у хранилища нет ресурса для (locale, postId). Ожидаемое состояние, не порча данных.
	ErrContentMissing = errors.New("content missing")

	ErrInvalidIndex = errors.New("invalid content index")
)
