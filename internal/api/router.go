// Package api exposes the word list and quizzes over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WordSI interface {
	Words(ctx context.Context) []models.Word
	Word(ctx context.Context, id uuid.UUID) (models.Word, error)
	AddWord(ctx context.Context, word models.Word) (models.Word, error)
	DeleteWord(ctx context.Context, id uuid.UUID) error
	LookupMeanings(ctx context.Context, text string) []models.Meaning
	AddMeanings(ctx context.Context, id uuid.UUID, meanings []models.Meaning) (models.Word, error)
	Inflections(text string) []string
	MaskedExamples(word models.Word) []string
}

type QuizSI interface {
	StartQuiz(ctx context.Context, owner string, mode models.QuizMode) (models.QuizCard, error)
	SubmitAnswer(ctx context.Context, owner, answer string) (models.QuizCard, error)
	NextQuestion(ctx context.Context, owner string) (models.QuizCard, error)
	CurrentQuiz(owner string) (models.QuizCard, bool)
	CloseQuiz(owner string)
	QuizStats(ctx context.Context) (models.QuizStats, error)
}

type ServiceI interface {
	WordSI
	QuizSI
}

type Handler struct {
	service ServiceI
	log     *zap.Logger
}

func NewHandler(service ServiceI, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Router builds the chi router with every route of the API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/words", func(r chi.Router) {
		r.Get("/", h.ListWords)
		r.Post("/", h.CreateWord)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetWord)
			r.Delete("/", h.DeleteWord)
			r.Get("/inflections", h.GetInflections)
			r.Get("/lookup", h.LookupWord)
			r.Post("/meanings", h.AddMeanings)
		})
	})

	r.Route("/quiz", func(r chi.Router) {
		r.Post("/", h.StartQuiz)
		r.Get("/stats", h.QuizStats)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetQuiz)
			r.Delete("/", h.CloseQuiz)
			r.Post("/answer", h.SubmitAnswer)
			r.Post("/next", h.NextQuestion)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			h.log.Error("failed to write health response", zap.Error(err))
		}
	})

	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
