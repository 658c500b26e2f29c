package models

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrEmptyWord = errors.New("word text cannot be empty")
)

type Word struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"word" validate:"required"`
	Meanings []Meaning `json:"meanings"`
}

type Meaning struct {
	ID         uuid.UUID `json:"id"`
	Definition string    `json:"definition"`
	Examples   []string  `json:"examples"`
}

// Definitions returns the definitions of all meanings in order.
func (w Word) Definitions() []string {
	defs := make([]string, 0, len(w.Meanings))
	for _, m := range w.Meanings {
		defs = append(defs, m.Definition)
	}
	return defs
}

// EnsureIDs assigns fresh ids to the word and its meanings where they are missing.
func (w *Word) EnsureIDs() {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	for i := range w.Meanings {
		if w.Meanings[i].ID == uuid.Nil {
			w.Meanings[i].ID = uuid.New()
		}
	}
}

// Clone returns a deep copy so callers can't mutate the stored list.
// Examples of the copy are never nil.
func (w Word) Clone() Word {
	out := Word{ID: w.ID, Text: w.Text}
	if w.Meanings != nil {
		out.Meanings = make([]Meaning, len(w.Meanings))
		for i, m := range w.Meanings {
			out.Meanings[i] = Meaning{
				ID:         m.ID,
				Definition: m.Definition,
				Examples:   append([]string{}, m.Examples...),
			}
		}
	}
	return out
}
