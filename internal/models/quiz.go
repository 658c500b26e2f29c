package models

import (
	"time"

	"github.com/google/uuid"
)

type QuizMode string

const (
	QuizModeMultipleChoice QuizMode = "multiple_choice"
	QuizModeTextInput      QuizMode = "text_input"
)

type AnswerState string

const (
	AnswerUnanswered AnswerState = "unanswered"
	AnswerCorrect    AnswerState = "correct"
	AnswerIncorrect  AnswerState = "incorrect"
	AnswerFinished   AnswerState = "finished"
)

// QuizCard is a read-only view of a quiz session at one point in time.
type QuizCard struct {
	Mode          QuizMode    `json:"mode"`
	State         AnswerState `json:"state"`
	Index         int         `json:"index"`
	Total         int         `json:"total"`
	Answered      int         `json:"answered"`
	CorrectCount  int         `json:"correct_count"`
	Word          string      `json:"word,omitempty"`
	Definitions   []string    `json:"definitions,omitempty"`
	Examples      []string    `json:"examples,omitempty"`
	Options       []string    `json:"options,omitempty"`
	CorrectAnswer string      `json:"correct_answer,omitempty"`
}

type QuizResult struct {
	ID         uuid.UUID `json:"id"`
	Mode       QuizMode  `json:"mode"`
	Correct    int       `json:"correct"`
	Total      int       `json:"total"`
	FinishedAt time.Time `json:"finished_at"`
}

type QuizStats struct {
	QuizCount  int `json:"quiz_count"`
	TotalCount int `json:"total_count"`
	RightCount int `json:"right_count"`
	WrongCount int `json:"wrong_count"`
	BestScore  int `json:"best_score"`
}
