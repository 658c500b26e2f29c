package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/SerikaYuzuki/WordApp/internal/models"
)

type dictionaryEntry struct {
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string  `json:"definition"`
			Example    *string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

type DictionaryAPI struct {
	baseURL string
	http    *http.Client
}

func NewDictionaryAPI(baseURL string, httpClient *http.Client) *DictionaryAPI {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DictionaryAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Definitions returns the definitions of the first dictionary entry for word.
// A word the dictionary does not know yields no definitions and no error.
func (d *DictionaryAPI) Definitions(ctx context.Context, word string) ([]models.Meaning, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/"+url.PathEscape(word), nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary lookup %q: unexpected status %d", word, resp.StatusCode)
	}

	var entries []dictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary response for %q: %w", word, err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	var meanings []models.Meaning
	for _, m := range entries[0].Meanings {
		for _, def := range m.Definitions {
			examples := []string{}
			if def.Example != nil {
				examples = append(examples, *def.Example)
			}
			meanings = append(meanings, models.Meaning{
				Definition: def.Definition,
				Examples:   examples,
			})
		}
	}

	return meanings, nil
}
