package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/SerikaYuzuki/WordApp/internal/quiz"
	mock_service "github.com/SerikaYuzuki/WordApp/internal/service/mock"
	"github.com/SerikaYuzuki/WordApp/internal/storage/cache"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticWords []models.Word

func (s staticWords) Words(context.Context) []models.Word {
	return append([]models.Word(nil), s...)
}

func seededRand() quiz.Rand {
	return rand.New(rand.NewSource(1))
}

var quizWords = staticWords{
	{Text: "go", Meanings: []models.Meaning{{Definition: "行く", Examples: []string{"I go to school every day."}}}},
	{Text: "run", Meanings: []models.Meaning{{Definition: "走る", Examples: []string{"He runs every morning."}}}},
	{Text: "eat", Meanings: []models.Meaning{{Definition: "食べる", Examples: []string{"We eat rice."}}}},
}

func newQuizServiceMock(ctrl *gomock.Controller, words WordSourceI, setupMock func(*mock_service.MockRepositoryI)) *QuizS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}
	return NewQuizService(words, repo, testGenerator(), cache.NewCache(), seededRand, zap.NewNop())
}

func TestQuizS_StartQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		words   staticWords
		mode    models.QuizMode
		wantErr error
		check   func(*testing.T, models.QuizCard)
	}{
		{
			name:  "multiple choice",
			words: quizWords,
			mode:  models.QuizModeMultipleChoice,
			check: func(t *testing.T, card models.QuizCard) {
				assert.Equal(t, models.AnswerUnanswered, card.State)
				assert.Equal(t, 3, card.Total)
				assert.NotEmpty(t, card.Word)
				assert.Len(t, card.Options, 3)
			},
		},
		{
			name:  "text input hides the word",
			words: quizWords,
			mode:  models.QuizModeTextInput,
			check: func(t *testing.T, card models.QuizCard) {
				assert.Empty(t, card.Word)
				assert.Len(t, card.Definitions, 1)
				require.Len(t, card.Examples, 1)
				assert.Contains(t, card.Examples[0], "____")
				assert.Empty(t, card.Options)
			},
		},
		{
			name:    "empty word list",
			words:   staticWords{},
			mode:    models.QuizModeMultipleChoice,
			wantErr: quiz.ErrEmptyInput,
		},
		{
			name:    "unknown mode",
			words:   quizWords,
			mode:    "flashcards",
			wantErr: quiz.ErrUnknownMode,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizS := newQuizServiceMock(ctrl, tt.words, nil)

			card, err := quizS.StartQuiz(context.Background(), "owner", tt.mode)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				_, ok := quizS.CurrentQuiz("owner")
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			tt.check(t, card)

			current, ok := quizS.CurrentQuiz("owner")
			require.True(t, ok)
			assert.Equal(t, card, current)
		})
	}
}

func TestQuizS_MultipleChoiceRun(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var recorded models.QuizResult
	quizS := newQuizServiceMock(ctrl, quizWords, func(mr *mock_service.MockRepositoryI) {
		mr.EXPECT().AddQuizResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, result models.QuizResult) error {
				recorded = result
				return nil
			}).Times(1)
	})

	ctx := context.Background()
	definitions := map[string]string{"go": "行く", "run": "走る", "eat": "食べる"}

	card, err := quizS.StartQuiz(ctx, "owner", models.QuizModeMultipleChoice)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		answer := definitions[card.Word]
		if i == 1 {
			answer = "wrong"
		}

		card, err = quizS.SubmitAnswer(ctx, "owner", answer)
		require.NoError(t, err)
		if i == 1 {
			assert.Equal(t, models.AnswerIncorrect, card.State)
			assert.Equal(t, definitions[card.Word], card.CorrectAnswer)
		} else {
			assert.Equal(t, models.AnswerCorrect, card.State)
		}

		card, err = quizS.NextQuestion(ctx, "owner")
		require.NoError(t, err)
	}

	assert.Equal(t, models.AnswerFinished, card.State)
	assert.Equal(t, 2, card.CorrectCount)
	assert.Equal(t, 3, card.Answered)

	assert.Equal(t, models.QuizModeMultipleChoice, recorded.Mode)
	assert.Equal(t, 2, recorded.Correct)
	assert.Equal(t, 3, recorded.Total)

	_, err = quizS.NextQuestion(ctx, "owner")
	assert.ErrorIs(t, err, quiz.ErrFinished)
}

func TestQuizS_TextInputRun(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	words := staticWords{quizWords[1]}
	quizS := newQuizServiceMock(ctrl, words, func(mr *mock_service.MockRepositoryI) {
		mr.EXPECT().AddQuizResult(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	})

	ctx := context.Background()
	card, err := quizS.StartQuiz(ctx, "owner", models.QuizModeTextInput)
	require.NoError(t, err)
	assert.Equal(t, []string{"He ____ every morning."}, card.Examples)

	card, err = quizS.SubmitAnswer(ctx, "owner", "  RUN ")
	require.NoError(t, err)
	assert.Equal(t, models.AnswerCorrect, card.State)
	assert.Equal(t, "run", card.Word)

	_, err = quizS.SubmitAnswer(ctx, "owner", "run")
	assert.ErrorIs(t, err, quiz.ErrAlreadyAnswered)

	// a failed record still finishes the quiz
	card, err = quizS.NextQuestion(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, models.AnswerFinished, card.State)
	assert.Equal(t, 1, card.CorrectCount)
}

func TestQuizS_NextQuestionFrom(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizS := newQuizServiceMock(ctrl, quizWords, nil)
	ctx := context.Background()

	_, err := quizS.StartQuiz(ctx, "owner", models.QuizModeTextInput)
	require.NoError(t, err)

	// not answered yet
	_, err = quizS.NextQuestionFrom(ctx, "owner", 0)
	require.ErrorIs(t, err, ErrStaleQuestion)

	_, err = quizS.SubmitAnswer(ctx, "owner", "nope")
	require.NoError(t, err)

	card, err := quizS.NextQuestion(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, 1, card.Index)

	// a late trigger for question 0 must not skip question 1
	card, err = quizS.NextQuestionFrom(ctx, "owner", 0)
	require.ErrorIs(t, err, ErrStaleQuestion)
	assert.Equal(t, 1, card.Index)
	assert.Equal(t, models.AnswerUnanswered, card.State)

	_, err = quizS.SubmitAnswer(ctx, "owner", "nope")
	require.NoError(t, err)
	card, err = quizS.NextQuestionFrom(ctx, "owner", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, card.Index)
}

func TestQuizS_NoSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizS := newQuizServiceMock(ctrl, quizWords, nil)
	ctx := context.Background()

	_, err := quizS.SubmitAnswer(ctx, "owner", "go")
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = quizS.NextQuestion(ctx, "owner")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = quizS.StartQuiz(ctx, "owner", models.QuizModeMultipleChoice)
	require.NoError(t, err)
	quizS.CloseQuiz("owner")

	_, ok := quizS.CurrentQuiz("owner")
	assert.False(t, ok)
	_, err = quizS.SubmitAnswer(ctx, "owner", "go")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestQuizS_QuizStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI)
		want    models.QuizStats
		wantErr bool
	}{
		{
			name: "success",
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().QuizStats(gomock.Any()).Return(models.QuizStats{QuizCount: 2, TotalCount: 6, RightCount: 5, WrongCount: 1, BestScore: 3}, nil)
			},
			want: models.QuizStats{QuizCount: 2, TotalCount: 6, RightCount: 5, WrongCount: 1, BestScore: 3},
		},
		{
			name: "repository error",
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().QuizStats(gomock.Any()).Return(models.QuizStats{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizS := newQuizServiceMock(ctrl, quizWords, tt.f)

			got, err := quizS.QuizStats(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
