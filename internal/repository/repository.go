package repository

import (
	"context"
	"database/sql"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// BlobStore persists opaque values under fixed keys, overwriting on save.
type BlobStore interface {
	Blob(ctx context.Context, key string) ([]byte, error)
	SaveBlob(ctx context.Context, key string, data []byte) error
}

type Repository struct {
	BlobStore
	*QuizR
}

func NewRepository(store BlobStore) Repository {
	return Repository{
		BlobStore: store,
		QuizR:     NewQuizRepository(store),
	}
}
