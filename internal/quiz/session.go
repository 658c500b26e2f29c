// Package quiz implements the question sequencing, answer checking and
// scoring of a single quiz run over a word list.
package quiz

import (
	"errors"
	"strings"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"golang.org/x/text/cases"
)

const (
	// NoMeaning is the multiple-choice target of a word without meanings.
	NoMeaning = "No meaning"

	distractorCount = 3
)

var (
	ErrEmptyInput      = errors.New("quiz: no words to quiz")
	ErrUnknownMode     = errors.New("quiz: unknown mode")
	ErrAlreadyAnswered = errors.New("quiz: question already answered")
	ErrNotAnswered     = errors.New("quiz: question not answered yet")
	ErrFinished        = errors.New("quiz: session finished")
)

// Rand is the random source used for shuffles and meaning picks.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type Session struct {
	mode      models.QuizMode
	rnd       Rand
	pool      []models.Word
	questions []models.Word

	index    int
	correct  int
	answered int
	state    models.AnswerState

	target        string
	options       []string
	correctAnswer string
}

// Start shuffles words into a new session. Words with empty text are not
// quizzable; ErrEmptyInput is returned when none remain.
func Start(mode models.QuizMode, words []models.Word, rnd Rand) (*Session, error) {
	if mode != models.QuizModeMultipleChoice && mode != models.QuizModeTextInput {
		return nil, ErrUnknownMode
	}

	pool := make([]models.Word, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w.Text) == "" {
			continue
		}
		pool = append(pool, w.Clone())
	}
	if len(pool) == 0 {
		return nil, ErrEmptyInput
	}

	questions := append([]models.Word(nil), pool...)
	rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	s := &Session{
		mode:      mode,
		rnd:       rnd,
		pool:      pool,
		questions: questions,
		state:     models.AnswerUnanswered,
	}
	s.prepareQuestion()

	return s, nil
}

// Submit checks answer against the current question.
func (s *Session) Submit(answer string) (models.AnswerState, error) {
	switch s.state {
	case models.AnswerFinished:
		return s.state, ErrFinished
	case models.AnswerCorrect, models.AnswerIncorrect:
		return s.state, ErrAlreadyAnswered
	}

	var ok bool
	switch s.mode {
	case models.QuizModeMultipleChoice:
		ok = answer == s.target
		s.correctAnswer = s.target
	default:
		word := s.questions[s.index].Text
		ok = equalFold(answer, word)
		s.correctAnswer = word
	}

	s.answered++
	if ok {
		s.correct++
		s.state = models.AnswerCorrect
		s.correctAnswer = ""
	} else {
		s.state = models.AnswerIncorrect
	}

	return s.state, nil
}

// Advance moves to the next question, or to Finished after the last one.
func (s *Session) Advance() (models.AnswerState, error) {
	switch s.state {
	case models.AnswerFinished:
		return s.state, ErrFinished
	case models.AnswerUnanswered:
		return s.state, ErrNotAnswered
	}

	s.correctAnswer = ""
	if s.index+1 < len(s.questions) {
		s.index++
		s.state = models.AnswerUnanswered
		s.prepareQuestion()
		return s.state, nil
	}

	s.state = models.AnswerFinished
	s.options = nil
	s.target = ""
	return s.state, nil
}

// prepareQuestion samples the target meaning once; the same value is used for
// the option set and for answer checking.
func (s *Session) prepareQuestion() {
	s.target = ""
	s.options = nil
	if s.mode != models.QuizModeMultipleChoice {
		return
	}

	word := s.questions[s.index]
	s.target = NoMeaning
	if len(word.Meanings) > 0 {
		s.target = word.Meanings[s.rnd.Intn(len(word.Meanings))].Definition
	}
	s.options = s.buildOptions(s.target)
}

func (s *Session) buildOptions(target string) []string {
	seen := map[string]bool{target: true}
	var candidates []string
	for _, w := range s.pool {
		for _, m := range w.Meanings {
			if m.Definition == "" || seen[m.Definition] {
				continue
			}
			seen[m.Definition] = true
			candidates = append(candidates, m.Definition)
		}
	}

	s.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > distractorCount {
		candidates = candidates[:distractorCount]
	}

	options := append(candidates, target)
	s.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func (s *Session) Mode() models.QuizMode     { return s.mode }
func (s *Session) State() models.AnswerState { return s.state }
func (s *Session) Index() int                { return s.index }
func (s *Session) Total() int                { return len(s.questions) }
func (s *Session) CorrectCount() int         { return s.correct }
func (s *Session) Answered() int             { return s.answered }

// Target is the sampled definition of the current multiple-choice question.
func (s *Session) Target() string { return s.target }

// CorrectAnswer is set only while the state is Incorrect.
func (s *Session) CorrectAnswer() string { return s.correctAnswer }

func (s *Session) Options() []string {
	return append([]string(nil), s.options...)
}

// Current returns the word being asked, false once the session is finished.
func (s *Session) Current() (models.Word, bool) {
	if s.state == models.AnswerFinished {
		return models.Word{}, false
	}
	return s.questions[s.index].Clone(), true
}

func equalFold(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}
