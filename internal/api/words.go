package api

import (
	"net/http"

	"github.com/SerikaYuzuki/WordApp/internal/models"
)

type MeaningRequest struct {
	Definition string   `json:"definition" validate:"required"`
	Examples   []string `json:"examples"`
}

type CreateWordRequest struct {
	Word     string           `json:"word" validate:"required"`
	Meanings []MeaningRequest `json:"meanings" validate:"omitempty,dive"`
}

type AddMeaningsRequest struct {
	Meanings []MeaningRequest `json:"meanings" validate:"required,min=1,dive"`
}

type WordResponse struct {
	models.Word
	Inflections []string `json:"inflections"`
}

func (h *Handler) ListWords(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Words(r.Context()))
}

func (h *Handler) CreateWord(w http.ResponseWriter, r *http.Request) {
	var req CreateWordRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	word, err := h.service.AddWord(r.Context(), models.Word{
		Text:     req.Word,
		Meanings: toMeanings(req.Meanings),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, word)
}

func (h *Handler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	word, err := h.service.Word(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, WordResponse{
		Word:        word,
		Inflections: h.service.Inflections(word.Text),
	})
}

func (h *Handler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.service.DeleteWord(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetInflections(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	word, err := h.service.Word(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string][]string{
		"inflections":     h.service.Inflections(word.Text),
		"masked_examples": h.service.MaskedExamples(word),
	})
}

// LookupWord returns dictionary candidates for the word. Nothing is saved
// until the client posts the chosen ones to /meanings.
func (h *Handler) LookupWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	word, err := h.service.Word(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.service.LookupMeanings(r.Context(), word.Text))
}

func (h *Handler) AddMeanings(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req AddMeaningsRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	word, err := h.service.AddMeanings(r.Context(), id, toMeanings(req.Meanings))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, word)
}

func toMeanings(reqs []MeaningRequest) []models.Meaning {
	meanings := make([]models.Meaning, 0, len(reqs))
	for _, m := range reqs {
		examples := m.Examples
		if examples == nil {
			examples = []string{}
		}
		meanings = append(meanings, models.Meaning{Definition: m.Definition, Examples: examples})
	}
	return meanings
}
