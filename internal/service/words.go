package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/SerikaYuzuki/WordApp/internal/dataset"
	"github.com/SerikaYuzuki/WordApp/internal/inflection"
	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/SerikaYuzuki/WordApp/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errUndecodable = errors.New("saved words undecodable")

// WordS owns the in-memory word list and persists it as a single blob.
type WordS struct {
	mu     sync.Mutex
	words  []models.Word
	loaded bool

	dictionary  DictionaryAPII
	repo        BlobStoreI
	inflections *inflection.Generator
	opts        Options
	log         *zap.Logger
}

func NewWordService(api DictionaryAPII, repo BlobStoreI, gen *inflection.Generator, opts Options, log *zap.Logger) *WordS {
	if opts.WordsKey == "" {
		opts.WordsKey = "SavedWords"
	}
	return &WordS{
		dictionary:  api,
		repo:        repo,
		inflections: gen,
		opts:        opts,
		log:         log,
	}
}

// Load reads the persisted list. An absent or undecodable blob is replaced by
// the bundled default words, which are saved right away. Any other read error
// leaves the list empty and unloaded so the next call retries.
func (w *WordS) Load(ctx context.Context) []models.Word {
	w.mu.Lock()
	defer w.mu.Unlock()

	_ = w.load(ctx)
	return cloneWords(w.words)
}

func (w *WordS) load(ctx context.Context) error {
	words, err := w.decode(ctx)
	switch {
	case err == nil:
		w.words = words
		w.loaded = true
		return nil
	case errors.Is(err, models.ErrNotFound):
		w.log.Info("no saved words, loading defaults")
	case errors.Is(err, errUndecodable):
		w.log.Warn("saved words unusable, loading defaults", zap.Error(err))
	default:
		w.log.Error("failed to read saved words", zap.Error(err))
		w.words = []models.Word{}
		w.loaded = false
		return fmt.Errorf("failed to read saved words: %w", err)
	}

	w.loaded = true
	w.words = dataset.LoadWordsFile(w.opts.DefaultWordsPath, w.log)
	if err := w.save(ctx, w.words); err != nil {
		w.log.Error("failed to persist default words", zap.Error(err))
	}
	return nil
}

func (w *WordS) decode(ctx context.Context) ([]models.Word, error) {
	data, err := w.repo.Blob(ctx, w.opts.WordsKey)
	if err != nil {
		return nil, err
	}

	var words []models.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("%w: %v", errUndecodable, err)
	}
	if words == nil {
		words = []models.Word{}
	}
	for i := range words {
		words[i].EnsureIDs()
	}
	return words, nil
}

func (w *WordS) save(ctx context.Context, words []models.Word) error {
	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to encode words: %w", err)
	}
	return w.repo.SaveBlob(ctx, w.opts.WordsKey, data)
}

// ensureLoaded must succeed before any write, otherwise a save would replace
// a list that was never read.
func (w *WordS) ensureLoaded(ctx context.Context) error {
	if w.loaded {
		return nil
	}
	return w.load(ctx)
}

// commit persists next and makes it the current list; on failure the current
// list stays untouched.
func (w *WordS) commit(ctx context.Context, next []models.Word) error {
	if err := w.save(ctx, next); err != nil {
		w.log.Error("failed to save words", zap.Error(err))
		return err
	}
	w.words = next
	return nil
}

func (w *WordS) Words(ctx context.Context) []models.Word {
	w.mu.Lock()
	defer w.mu.Unlock()

	_ = w.ensureLoaded(ctx)
	return cloneWords(w.words)
}

func (w *WordS) Word(ctx context.Context, id uuid.UUID) (models.Word, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureLoaded(ctx); err != nil {
		return models.Word{}, err
	}
	i := w.indexOf(id)
	if i < 0 {
		return models.Word{}, fmt.Errorf("word %s: %w", id, models.ErrNotFound)
	}
	return w.words[i].Clone(), nil
}

func (w *WordS) AddWord(ctx context.Context, word models.Word) (models.Word, error) {
	word = word.Clone()
	word.Text = strings.TrimSpace(word.Text)
	if word.Text == "" {
		return models.Word{}, models.ErrEmptyWord
	}
	if err := validator.ValidateStruct(word); err != nil {
		return models.Word{}, err
	}
	if word.Meanings == nil {
		word.Meanings = []models.Meaning{}
	}
	for i := range word.Meanings {
		if word.Meanings[i].Examples == nil {
			word.Meanings[i].Examples = []string{}
		}
	}
	word.EnsureIDs()

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureLoaded(ctx); err != nil {
		return models.Word{}, err
	}
	next := append(cloneWords(w.words), word)
	if err := w.commit(ctx, next); err != nil {
		return models.Word{}, err
	}

	w.log.Debug("word added", zap.String("word", word.Text), zap.Int("meanings", len(word.Meanings)))
	return word.Clone(), nil
}

func (w *WordS) DeleteWord(ctx context.Context, id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureLoaded(ctx); err != nil {
		return err
	}
	i := w.indexOf(id)
	if i < 0 {
		return fmt.Errorf("word %s: %w", id, models.ErrNotFound)
	}

	next := cloneWords(w.words)
	next = append(next[:i], next[i+1:]...)
	return w.commit(ctx, next)
}

// LookupMeanings asks the dictionary for candidate meanings of text. Failures
// are logged and give an empty result.
func (w *WordS) LookupMeanings(ctx context.Context, text string) []models.Meaning {
	meanings, err := w.dictionary.Definitions(ctx, text)
	if err != nil {
		w.log.Warn("dictionary lookup failed", zap.String("word", text), zap.Error(err))
		return []models.Meaning{}
	}
	if meanings == nil {
		return []models.Meaning{}
	}
	return meanings
}

// AddMeanings appends fetched candidates to the meanings of the word with id.
func (w *WordS) AddMeanings(ctx context.Context, id uuid.UUID, meanings []models.Meaning) (models.Word, error) {
	if len(meanings) == 0 {
		return models.Word{}, ErrNothingToMerge
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureLoaded(ctx); err != nil {
		return models.Word{}, err
	}
	i := w.indexOf(id)
	if i < 0 {
		return models.Word{}, fmt.Errorf("word %s: %w", id, models.ErrNotFound)
	}

	next := cloneWords(w.words)
	for _, m := range meanings {
		examples := append([]string{}, m.Examples...)
		next[i].Meanings = append(next[i].Meanings, models.Meaning{
			ID:         uuid.New(),
			Definition: m.Definition,
			Examples:   examples,
		})
	}

	if err := w.commit(ctx, next); err != nil {
		return models.Word{}, err
	}
	return next[i].Clone(), nil
}

func (w *WordS) Inflections(text string) []string {
	return w.inflections.Inflections(text)
}

func (w *WordS) MaskedExamples(word models.Word) []string {
	return w.inflections.MaskExamples(word)
}

func (w *WordS) indexOf(id uuid.UUID) int {
	for i, word := range w.words {
		if word.ID == id {
			return i
		}
	}
	return -1
}

func cloneWords(words []models.Word) []models.Word {
	out := make([]models.Word, len(words))
	for i, w := range words {
		out[i] = w.Clone()
	}
	return out
}
