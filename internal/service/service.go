package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/SerikaYuzuki/WordApp/internal/inflection"
	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/SerikaYuzuki/WordApp/internal/quiz"
	"github.com/SerikaYuzuki/WordApp/internal/storage/cache"
	"go.uber.org/zap"
)

var (
	ErrNoSession      = errors.New("no active quiz")
	ErrStaleQuestion  = errors.New("quiz moved past this question")
	ErrNothingToMerge = errors.New("no fetched meanings to merge")
)

type DictionaryAPII interface {
	Definitions(ctx context.Context, word string) ([]models.Meaning, error)
}

type BlobStoreI interface {
	Blob(ctx context.Context, key string) ([]byte, error)
	SaveBlob(ctx context.Context, key string, data []byte) error
}

type RepositoryI interface {
	BlobStoreI
	QuizRI
}

type Options struct {
	WordsKey         string
	DefaultWordsPath string
}

type Service struct {
	*WordS
	*QuizS
}

func InitServices(api DictionaryAPII, repo RepositoryI, gen *inflection.Generator, cache *cache.Cache, opts Options, log *zap.Logger) *Service {
	words := NewWordService(api, repo, gen, opts, log)
	return &Service{
		WordS: words,
		QuizS: NewQuizService(words, repo, gen, cache, NewRand, log),
	}
}

// NewRand returns a time-seeded random source for a quiz session.
func NewRand() quiz.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
