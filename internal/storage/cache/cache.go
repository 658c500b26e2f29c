package cache

import (
	"sync"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/SerikaYuzuki/WordApp/internal/quiz"
	"github.com/google/uuid"
)

// Cache holds per-owner state that lives only as long as a conversation:
// active quiz sessions, fetched definition candidates and pending text forms.
type Cache struct {
	mu         sync.Mutex
	quiz       map[string]*quiz.Session
	candidates map[string]Candidates
	input      map[string]string
}

// Candidates are meanings fetched for one word, waiting to be merged into it.
type Candidates struct {
	WordID   uuid.UUID
	Meanings []models.Meaning
}

func NewCache() *Cache {
	return &Cache{
		quiz:       make(map[string]*quiz.Session),
		candidates: make(map[string]Candidates),
		input:      make(map[string]string),
	}
}

func (c *Cache) SetQuiz(owner string, session *quiz.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiz[owner] = session
}

func (c *Cache) GetQuiz(owner string) (*quiz.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.quiz[owner]
	return session, exists
}

func (c *Cache) DeleteQuiz(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.quiz, owner)
}

func (c *Cache) SetCandidates(owner string, candidates Candidates) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.candidates[owner] = candidates
}

func (c *Cache) GetCandidates(owner string) (Candidates, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	candidates, exists := c.candidates[owner]
	return candidates, exists
}

func (c *Cache) DeleteCandidates(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.candidates, owner)
}

// SetInput marks that the next plain message of owner answers form.
func (c *Cache) SetInput(owner, form string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input[owner] = form
}

func (c *Cache) GetInput(owner string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	form, exists := c.input[owner]
	return form, exists
}

func (c *Cache) DeleteInput(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.input, owner)
}
