package inflection

import (
	"regexp"
	"sort"
	"strings"

	"github.com/SerikaYuzuki/WordApp/internal/models"
)

const Blank = "____"

// Mask replaces whole-word, case-insensitive occurrences of word and its
// inflections in sentence with Blank.
func (g *Generator) Mask(sentence, word string) string {
	re := g.pattern(word)
	if re == nil {
		return sentence
	}
	return re.ReplaceAllString(sentence, Blank)
}

// MaskExamples masks every example sentence of w, meaning by meaning.
func (g *Generator) MaskExamples(w models.Word) []string {
	re := g.pattern(w.Text)

	var out []string
	for _, m := range w.Meanings {
		for _, ex := range m.Examples {
			if re == nil {
				out = append(out, ex)
				continue
			}
			out = append(out, re.ReplaceAllString(ex, Blank))
		}
	}
	return out
}

func (g *Generator) pattern(word string) *regexp.Regexp {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}

	seen := make(map[string]bool)
	var forms []string
	for _, f := range append([]string{word}, g.Inflections(word)...) {
		key := lower(f)
		if f == "" || seen[key] {
			continue
		}
		seen[key] = true
		forms = append(forms, regexp.QuoteMeta(f))
	}

	// longest first so "studies" wins over "study"
	sort.SliceStable(forms, func(i, j int) bool { return len(forms[i]) > len(forms[j]) })

	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(forms, "|") + `)\b`)
}
