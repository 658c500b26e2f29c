package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/SerikaYuzuki/WordApp/internal/inflection"
	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/SerikaYuzuki/WordApp/internal/quiz"
	"github.com/SerikaYuzuki/WordApp/internal/storage/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type QuizRI interface {
	AddQuizResult(ctx context.Context, result models.QuizResult) error
	QuizStats(ctx context.Context) (models.QuizStats, error)
}

type WordSourceI interface {
	Words(ctx context.Context) []models.Word
}

// QuizS keeps one quiz session per owner. Sessions are never persisted; only
// the score of a finished session is recorded.
type QuizS struct {
	mu      sync.Mutex
	words   WordSourceI
	repo    QuizRI
	masker  *inflection.Generator
	cache   *cache.Cache
	newRand func() quiz.Rand
	now     func() time.Time
	log     *zap.Logger
}

func NewQuizService(words WordSourceI, repo QuizRI, gen *inflection.Generator, cache *cache.Cache, newRand func() quiz.Rand, log *zap.Logger) *QuizS {
	return &QuizS{
		words:   words,
		repo:    repo,
		masker:  gen,
		cache:   cache,
		newRand: newRand,
		now:     time.Now,
		log:     log,
	}
}

// StartQuiz replaces any running session of owner with a new one over a
// snapshot of the current word list. quiz.ErrEmptyInput is returned when there
// is nothing to ask.
func (q *QuizS) StartQuiz(ctx context.Context, owner string, mode models.QuizMode) (models.QuizCard, error) {
	words := q.words.Words(ctx)

	session, err := quiz.Start(mode, words, q.newRand())
	if err != nil {
		if errors.Is(err, quiz.ErrEmptyInput) {
			q.log.Info("quiz requested without words", zap.String("owner", owner))
		}
		return models.QuizCard{}, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.cache.SetQuiz(owner, session)
	q.log.Debug("quiz started", zap.String("owner", owner), zap.String("mode", string(mode)), zap.Int("questions", session.Total()))

	return q.card(session), nil
}

func (q *QuizS) SubmitAnswer(_ context.Context, owner, answer string) (models.QuizCard, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	session, ok := q.cache.GetQuiz(owner)
	if !ok {
		return models.QuizCard{}, ErrNoSession
	}

	_, err := session.Submit(answer)
	return q.card(session), err
}

func (q *QuizS) NextQuestion(ctx context.Context, owner string) (models.QuizCard, error) {
	return q.NextQuestionFrom(ctx, owner, -1)
}

// NextQuestionFrom advances only while the session is still on question index;
// a negative index advances unconditionally. Delayed callers use it so a late
// trigger can't skip a question the user already moved past.
func (q *QuizS) NextQuestionFrom(ctx context.Context, owner string, index int) (models.QuizCard, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	session, ok := q.cache.GetQuiz(owner)
	if !ok {
		return models.QuizCard{}, ErrNoSession
	}
	if index >= 0 && (session.Index() != index || session.State() == models.AnswerUnanswered) {
		return q.card(session), ErrStaleQuestion
	}

	state, err := session.Advance()
	if err != nil {
		return q.card(session), err
	}

	if state == models.AnswerFinished {
		q.record(ctx, owner, session)
	}

	return q.card(session), nil
}

func (q *QuizS) CurrentQuiz(owner string) (models.QuizCard, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	session, ok := q.cache.GetQuiz(owner)
	if !ok {
		return models.QuizCard{}, false
	}
	return q.card(session), true
}

// CloseQuiz discards the session of owner without saving anything.
func (q *QuizS) CloseQuiz(owner string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.cache.DeleteQuiz(owner)
}

func (q *QuizS) QuizStats(ctx context.Context) (models.QuizStats, error) {
	stats, err := q.repo.QuizStats(ctx)
	if err != nil {
		q.log.Warn("failed to get quiz stats", zap.Error(err))
		return models.QuizStats{}, err
	}
	return stats, nil
}

func (q *QuizS) record(ctx context.Context, owner string, session *quiz.Session) {
	result := models.QuizResult{
		ID:         uuid.New(),
		Mode:       session.Mode(),
		Correct:    session.CorrectCount(),
		Total:      session.Total(),
		FinishedAt: q.now().UTC(),
	}
	if err := q.repo.AddQuizResult(ctx, result); err != nil {
		q.log.Warn("failed to save quiz result", zap.String("owner", owner), zap.Error(err))
	}
}

func (q *QuizS) card(s *quiz.Session) models.QuizCard {
	card := models.QuizCard{
		Mode:          s.Mode(),
		State:         s.State(),
		Index:         s.Index(),
		Total:         s.Total(),
		Answered:      s.Answered(),
		CorrectCount:  s.CorrectCount(),
		Options:       s.Options(),
		CorrectAnswer: s.CorrectAnswer(),
	}

	word, ok := s.Current()
	if !ok {
		return card
	}

	switch s.Mode() {
	case models.QuizModeMultipleChoice:
		card.Word = word.Text
	default:
		// the word is the answer, so it stays hidden until answered
		if s.State() != models.AnswerUnanswered {
			card.Word = word.Text
		}
		card.Definitions = word.Definitions()
		card.Examples = q.masker.MaskExamples(word)
	}

	return card
}
