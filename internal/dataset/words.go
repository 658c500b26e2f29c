// Package dataset reads the bundled default word list.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"go.uber.org/zap"
)

type wordRecord struct {
	Word     *string            `json:"word"`
	Meanings *[]json.RawMessage `json:"meanings"`
}

type meaningRecord struct {
	Definition *string   `json:"definition"`
	Examples   *[]string `json:"examples"`
}

// LoadWords decodes the default dataset. Records and meanings that are missing
// a field or carry a field of the wrong type are skipped one by one rather
// than failing the whole load.
func LoadWords(r io.Reader, log *zap.Logger) ([]models.Word, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode default words: %w", err)
	}

	words := make([]models.Word, 0, len(raw))
	for i, item := range raw {
		var rec wordRecord
		if err := json.Unmarshal(item, &rec); err != nil || rec.Word == nil || rec.Meanings == nil {
			log.Warn("skipping malformed word record", zap.Int("index", i))
			continue
		}

		w := models.Word{Text: *rec.Word, Meanings: []models.Meaning{}}
		for _, mr := range *rec.Meanings {
			var m meaningRecord
			if err := json.Unmarshal(mr, &m); err != nil || m.Definition == nil || m.Examples == nil {
				log.Warn("skipping malformed meaning", zap.String("word", w.Text))
				continue
			}
			w.Meanings = append(w.Meanings, models.Meaning{
				Definition: *m.Definition,
				Examples:   append([]string{}, (*m.Examples)...),
			})
		}
		w.EnsureIDs()
		words = append(words, w)
	}

	return words, nil
}

// LoadWordsFile returns an empty list when the file is missing or unreadable.
func LoadWordsFile(path string, log *zap.Logger) []models.Word {
	f, err := os.Open(path)
	if err != nil {
		log.Warn("default words dataset unavailable", zap.String("path", path), zap.Error(err))
		return []models.Word{}
	}
	defer f.Close()

	words, err := LoadWords(f, log)
	if err != nil {
		log.Warn("default words dataset unreadable", zap.String("path", path), zap.Error(err))
		return []models.Word{}
	}
	return words
}
