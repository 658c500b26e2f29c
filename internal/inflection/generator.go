package inflection

import (
	"strings"
	"unicode/utf8"
)

var irregularThirdPerson = map[string]string{
	"have": "has",
	"be":   "is",
	"do":   "does",
	"go":   "goes",
}

type Generator struct {
	table *Table
}

// NewGenerator accepts a nil table, in which case only regular rules apply.
func NewGenerator(table *Table) *Generator {
	if table == nil {
		table = NewTable(nil)
	}
	return &Generator{table: table}
}

// Inflections returns the irregular or regular forms of word followed by its
// third-person singular form. Duplicates are kept.
func (g *Generator) Inflections(word string) []string {
	forms, ok := g.table.Lookup(word)
	if !ok {
		forms = regularForms(word)
	}
	return append(forms, ThirdPersonSingular(word))
}

func regularForms(word string) []string {
	forms := make([]string, 0, 4)

	switch {
	case strings.HasSuffix(word, "y"):
		forms = append(forms, word[:len(word)-1]+"ies")
	case strings.HasSuffix(word, "e"):
		forms = append(forms, word+"d")
	default:
		forms = append(forms, word+"ed")
	}

	return append(forms, word+"ing", word+"s")
}

func ThirdPersonSingular(word string) string {
	if irregular, ok := irregularThirdPerson[lower(word)]; ok {
		return irregular
	}

	if strings.HasSuffix(word, "y") {
		stem := word[:len(word)-1]
		prev, _ := utf8.DecodeLastRuneInString(stem)
		if !strings.ContainsRune("aeiou", prev) {
			return stem + "ies"
		}
	}

	for _, suffix := range []string{"o", "s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(word, suffix) {
			return word + "es"
		}
	}

	return word + "s"
}
