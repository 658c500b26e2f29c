package quiz

import (
	"math/rand"
	"testing"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(text string, defs ...string) models.Word {
	w := models.Word{Text: text}
	for _, d := range defs {
		w.Meanings = append(w.Meanings, models.Meaning{Definition: d, Examples: []string{}})
	}
	return w
}

func sampleWords() []models.Word {
	return []models.Word{
		word("go", "行く", "進む"),
		word("run", "走る"),
		word("eat", "食べる"),
		word("read", "読む"),
		word("write", "書く"),
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mode    models.QuizMode
		words   []models.Word
		wantErr error
		total   int
	}{
		{name: "empty list", mode: models.QuizModeTextInput, words: nil, wantErr: ErrEmptyInput},
		{name: "only blank words", mode: models.QuizModeMultipleChoice, words: []models.Word{word(""), word("  ")}, wantErr: ErrEmptyInput},
		{name: "unknown mode", mode: "flashcards", words: sampleWords(), wantErr: ErrUnknownMode},
		{name: "multiple choice", mode: models.QuizModeMultipleChoice, words: sampleWords(), total: 5},
		{name: "blank words dropped", mode: models.QuizModeTextInput, words: append(sampleWords(), word("")), total: 5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Start(tt.mode, tt.words, newRand(1))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, models.AnswerUnanswered, s.State())
			assert.Equal(t, tt.total, s.Total())
			assert.Equal(t, 0, s.Index())
			assert.Equal(t, 0, s.CorrectCount())
		})
	}
}

func TestStart_QuestionsArePermutation(t *testing.T) {
	t.Parallel()

	words := sampleWords()
	s, err := Start(models.QuizModeTextInput, words, newRand(42))
	require.NoError(t, err)

	var seen []string
	for {
		cur, ok := s.Current()
		require.True(t, ok)
		seen = append(seen, cur.Text)
		_, err := s.Submit("")
		require.NoError(t, err)
		state, err := s.Advance()
		require.NoError(t, err)
		if state == models.AnswerFinished {
			break
		}
	}

	assert.ElementsMatch(t, []string{"go", "run", "eat", "read", "write"}, seen)
}

func TestSession_MultipleChoiceOptions(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		s, err := Start(models.QuizModeMultipleChoice, sampleWords(), newRand(seed))
		require.NoError(t, err)

		for s.State() != models.AnswerFinished {
			opts := s.Options()
			require.Len(t, opts, 4)

			count := 0
			for _, o := range opts {
				if o == s.Target() {
					count++
				}
			}
			assert.Equal(t, 1, count)

			cur, _ := s.Current()
			assert.Contains(t, cur.Definitions(), s.Target())

			_, err := s.Submit(s.Target())
			require.NoError(t, err)
			assert.Equal(t, models.AnswerCorrect, s.State())
			_, err = s.Advance()
			require.NoError(t, err)
		}
		assert.Equal(t, 5, s.CorrectCount())
	}
}

func TestSession_MultipleChoiceSmallPool(t *testing.T) {
	t.Parallel()

	s, err := Start(models.QuizModeMultipleChoice, []models.Word{word("go", "行く"), word("run", "走る")}, newRand(3))
	require.NoError(t, err)

	opts := s.Options()
	assert.Len(t, opts, 2)
	assert.Contains(t, opts, s.Target())
}

func TestSession_MultipleChoiceWordWithoutMeaning(t *testing.T) {
	t.Parallel()

	s, err := Start(models.QuizModeMultipleChoice, []models.Word{word("go")}, newRand(3))
	require.NoError(t, err)

	assert.Equal(t, NoMeaning, s.Target())
	assert.Equal(t, []string{NoMeaning}, s.Options())

	state, err := s.Submit(NoMeaning)
	require.NoError(t, err)
	assert.Equal(t, models.AnswerCorrect, state)
}

func TestSession_MultipleChoiceIncorrect(t *testing.T) {
	t.Parallel()

	s, err := Start(models.QuizModeMultipleChoice, sampleWords(), newRand(7))
	require.NoError(t, err)

	var wrong string
	for _, o := range s.Options() {
		if o != s.Target() {
			wrong = o
			break
		}
	}
	target := s.Target()

	state, err := s.Submit(wrong)
	require.NoError(t, err)
	assert.Equal(t, models.AnswerIncorrect, state)
	assert.Equal(t, target, s.CorrectAnswer())
	assert.Equal(t, 0, s.CorrectCount())
	assert.Equal(t, 1, s.Answered())
}

func TestSession_TextInputEndToEnd(t *testing.T) {
	t.Parallel()

	words := []models.Word{
		{Text: "go", Meanings: []models.Meaning{{Definition: "行く", Examples: []string{"I go to school every day."}}}},
		{Text: "run", Meanings: []models.Meaning{{Definition: "走る", Examples: []string{"He runs every morning."}}}},
	}

	t.Run("correct answer", func(t *testing.T) {
		t.Parallel()

		s, err := Start(models.QuizModeTextInput, words, newRand(1))
		require.NoError(t, err)
		skipTo(t, s, "行く")

		before := s.CorrectCount()
		state, err := s.Submit("go")
		require.NoError(t, err)
		assert.Equal(t, models.AnswerCorrect, state)
		assert.Equal(t, before+1, s.CorrectCount())
	})

	t.Run("wrong answer", func(t *testing.T) {
		t.Parallel()

		s, err := Start(models.QuizModeTextInput, words, newRand(2))
		require.NoError(t, err)
		skipTo(t, s, "行く")

		state, err := s.Submit("jump")
		require.NoError(t, err)
		assert.Equal(t, models.AnswerIncorrect, state)
		assert.Equal(t, "go", s.CorrectAnswer())
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()

		s, err := Start(models.QuizModeTextInput, words[:1], newRand(1))
		require.NoError(t, err)

		state, err := s.Submit(" GO ")
		require.NoError(t, err)
		assert.Equal(t, models.AnswerCorrect, state)
		assert.Equal(t, 1, s.CorrectCount())
	})
}

// skipTo answers questions wrongly until the one defined as def is current.
func skipTo(t *testing.T, s *Session, def string) {
	t.Helper()
	for {
		cur, ok := s.Current()
		require.True(t, ok)
		if cur.Meanings[0].Definition == def {
			return
		}
		_, err := s.Submit("")
		require.NoError(t, err)
		_, err = s.Advance()
		require.NoError(t, err)
	}
}

func TestSession_InvalidTransitions(t *testing.T) {
	t.Parallel()

	s, err := Start(models.QuizModeTextInput, []models.Word{word("go", "行く")}, newRand(1))
	require.NoError(t, err)

	state, err := s.Advance()
	require.ErrorIs(t, err, ErrNotAnswered)
	assert.Equal(t, models.AnswerUnanswered, state)

	_, err = s.Submit("go")
	require.NoError(t, err)

	_, err = s.Submit("go")
	require.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.Equal(t, 1, s.CorrectCount())

	state, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, models.AnswerFinished, state)

	_, ok := s.Current()
	assert.False(t, ok)

	_, err = s.Submit("go")
	require.ErrorIs(t, err, ErrFinished)
	_, err = s.Advance()
	require.ErrorIs(t, err, ErrFinished)
	assert.Equal(t, 1, s.CorrectCount())
	assert.Equal(t, 1, s.Total())
}

func TestSession_ScoreInvariant(t *testing.T) {
	t.Parallel()

	r := newRand(99)
	s, err := Start(models.QuizModeTextInput, sampleWords(), newRand(5))
	require.NoError(t, err)

	for s.State() != models.AnswerFinished {
		cur, _ := s.Current()
		answer := "nope"
		if r.Intn(2) == 0 {
			answer = cur.Text
		}

		before := s.CorrectCount()
		state, err := s.Submit(answer)
		require.NoError(t, err)
		if state == models.AnswerCorrect {
			assert.Equal(t, before+1, s.CorrectCount())
		} else {
			assert.Equal(t, before, s.CorrectCount())
		}
		assert.LessOrEqual(t, s.CorrectCount(), s.Answered())
		assert.LessOrEqual(t, s.Answered(), s.Total())

		_, err = s.Advance()
		require.NoError(t, err)
	}
	assert.Equal(t, s.Total(), s.Answered())
}

func TestStart_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	words := sampleWords()
	s, err := Start(models.QuizModeTextInput, words, newRand(1))
	require.NoError(t, err)

	for i := range words {
		words[i].Text = "changed"
	}
	cur, _ := s.Current()
	assert.NotEqual(t, "changed", cur.Text)
}
