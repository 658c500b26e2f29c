package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/SerikaYuzuki/WordApp/internal/models"
)

const QuizResultsKey = "QuizResults"

type QuizR struct {
	mu    sync.Mutex
	store BlobStore
}

func NewQuizRepository(store BlobStore) *QuizR {
	return &QuizR{
		store: store,
	}
}

func (q *QuizR) AddQuizResult(ctx context.Context, result models.QuizResult) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	results, err := q.results(ctx)
	if err != nil {
		return err
	}
	results = append(results, result)

	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode quiz results: %w", err)
	}

	return q.store.SaveBlob(ctx, QuizResultsKey, data)
}

func (q *QuizR) QuizStats(ctx context.Context) (models.QuizStats, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	results, err := q.results(ctx)
	if err != nil {
		return models.QuizStats{}, err
	}

	var stats models.QuizStats
	for _, r := range results {
		stats.QuizCount++
		stats.TotalCount += r.Total
		stats.RightCount += r.Correct
		if r.Correct > stats.BestScore {
			stats.BestScore = r.Correct
		}
	}
	stats.WrongCount = stats.TotalCount - stats.RightCount

	return stats, nil
}

func (q *QuizR) results(ctx context.Context) ([]models.QuizResult, error) {
	data, err := q.store.Blob(ctx, QuizResultsKey)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var results []models.QuizResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to decode quiz results: %w", err)
	}
	return results, nil
}
