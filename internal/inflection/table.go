// Package inflection generates English verb forms for a base word and masks
// them inside example sentences.
package inflection

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fieldBase           = "base form"
	fieldPastSimple     = "past simple"
	fieldPastParticiple = "past participle"
	fieldIngForm        = "-ing form"
)

// Table maps a lowercase base verb to its irregular forms. It is read-only
// once built and safe for concurrent use.
type Table struct {
	forms map[string][]string
}

func NewTable(forms map[string][]string) *Table {
	t := &Table{forms: make(map[string][]string, len(forms))}
	for base, f := range forms {
		t.forms[lower(base)] = append([]string(nil), f...)
	}
	return t
}

// LoadTable decodes an irregular-verb dataset. Records missing one of the
// four fields are skipped.
func LoadTable(r io.Reader, log *zap.Logger) (*Table, error) {
	var records []map[string]string
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return NewTable(nil), fmt.Errorf("failed to decode irregular verbs: %w", err)
	}

	forms := make(map[string][]string, len(records))
	skipped := 0
	for _, rec := range records {
		base, ok1 := rec[fieldBase]
		past, ok2 := rec[fieldPastSimple]
		participle, ok3 := rec[fieldPastParticiple]
		ing, ok4 := rec[fieldIngForm]
		if !ok1 || !ok2 || !ok3 || !ok4 {
			skipped++
			continue
		}

		list := splitAlternatives(past)
		list = append(list, splitAlternatives(participle)...)
		list = append(list, ing)
		forms[lower(base)] = list
	}

	if skipped > 0 {
		log.Warn("skipped malformed irregular verb records", zap.Int("skipped", skipped))
	}

	return &Table{forms: forms}, nil
}

// LoadTableFile never fails: an unreadable dataset gives an empty table and
// every word falls back to the regular rules.
func LoadTableFile(path string, log *zap.Logger) *Table {
	f, err := os.Open(path)
	if err != nil {
		log.Warn("irregular verb dataset unavailable", zap.String("path", path), zap.Error(err))
		return NewTable(nil)
	}
	defer f.Close()

	table, err := LoadTable(f, log)
	if err != nil {
		log.Warn("irregular verb dataset unreadable", zap.String("path", path), zap.Error(err))
		return NewTable(nil)
	}

	log.Debug("irregular verbs loaded", zap.Int("count", table.Len()))
	return table
}

func (t *Table) Lookup(word string) ([]string, bool) {
	if t == nil {
		return nil, false
	}
	forms, ok := t.forms[lower(word)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), forms...), true
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.forms)
}

func splitAlternatives(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "/") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func lower(s string) string {
	return cases.Lower(language.English).String(s)
}
