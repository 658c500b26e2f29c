package cache

import (
	"math/rand"
	"testing"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/SerikaYuzuki/WordApp/internal/quiz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Quiz(t *testing.T) {
	t.Parallel()

	c := NewCache()
	_, ok := c.GetQuiz("1")
	assert.False(t, ok)

	s, err := quiz.Start(models.QuizModeTextInput, []models.Word{{Text: "go"}}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	c.SetQuiz("1", s)
	got, ok := c.GetQuiz("1")
	require.True(t, ok)
	assert.Same(t, s, got)

	c.DeleteQuiz("1")
	_, ok = c.GetQuiz("1")
	assert.False(t, ok)
}

func TestCache_Candidates(t *testing.T) {
	t.Parallel()

	c := NewCache()
	id := uuid.New()
	c.SetCandidates("1", Candidates{WordID: id, Meanings: []models.Meaning{{Definition: "to move"}}})

	got, ok := c.GetCandidates("1")
	require.True(t, ok)
	assert.Equal(t, id, got.WordID)
	assert.Equal(t, "to move", got.Meanings[0].Definition)

	_, ok = c.GetCandidates("2")
	assert.False(t, ok)

	c.DeleteCandidates("1")
	_, ok = c.GetCandidates("1")
	assert.False(t, ok)
}

func TestCache_Input(t *testing.T) {
	t.Parallel()

	c := NewCache()
	c.SetInput("1", "add_word")

	form, ok := c.GetInput("1")
	require.True(t, ok)
	assert.Equal(t, "add_word", form)

	c.DeleteInput("1")
	_, ok = c.GetInput("1")
	assert.False(t, ok)
}
