package api

import (
	"net/http"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/google/uuid"
)

type StartQuizRequest struct {
	Mode models.QuizMode `json:"mode" validate:"required,oneof=multiple_choice text_input"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type QuizResponse struct {
	ID   uuid.UUID       `json:"id"`
	Card models.QuizCard `json:"card"`
}

// quizOwner keys HTTP sessions apart from chat sessions.
func quizOwner(id uuid.UUID) string {
	return "http:" + id.String()
}

func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	var req StartQuizRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	id := uuid.New()
	card, err := h.service.StartQuiz(r.Context(), quizOwner(id), req.Mode)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, QuizResponse{ID: id, Card: card})
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	card, ok := h.service.CurrentQuiz(quizOwner(id))
	if !ok {
		h.respondJSON(w, http.StatusNotFound, ErrorResponse{Error: "quiz not found"})
		return
	}

	h.respondJSON(w, http.StatusOK, QuizResponse{ID: id, Card: card})
}

func (h *Handler) CloseQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.service.CloseQuiz(quizOwner(id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req AnswerRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	card, err := h.service.SubmitAnswer(r.Context(), quizOwner(id), req.Answer)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, QuizResponse{ID: id, Card: card})
}

func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	card, err := h.service.NextQuestion(r.Context(), quizOwner(id))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, QuizResponse{ID: id, Card: card})
}

func (h *Handler) QuizStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.QuizStats(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}
