package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/SerikaYuzuki/WordApp/internal/quiz"
	"github.com/SerikaYuzuki/WordApp/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type QuizSI interface {
	StartQuiz(ctx context.Context, owner string, mode models.QuizMode) (models.QuizCard, error)
	SubmitAnswer(ctx context.Context, owner, answer string) (models.QuizCard, error)
	NextQuestion(ctx context.Context, owner string) (models.QuizCard, error)
	NextQuestionFrom(ctx context.Context, owner string, index int) (models.QuizCard, error)
	CurrentQuiz(owner string) (models.QuizCard, bool)
	CloseQuiz(owner string)
	QuizStats(ctx context.Context) (models.QuizStats, error)
}

type QuizT struct {
	bot     BotSender
	service QuizSI
	log     *zap.Logger

	// autoAdvance is the pause before moving on after a correct answer;
	// zero disables it.
	autoAdvance time.Duration
	schedule    func(d time.Duration, f func())
}

func NewQuizTAPI(bot BotSender, service QuizSI, autoAdvance time.Duration, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:         bot,
		service:     service,
		log:         log,
		autoAdvance: autoAdvance,
		schedule: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

func (t *QuizT) chooseMode(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔘 Multiple choice", "quiz_mc"),
			tgbotapi.NewInlineKeyboardButtonData("⌨️ Type the word", "quiz_text"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "🧠 Choose the quiz type:")
	msg.ReplyMarkup = keyboard
	sendMessage(t.bot, msg, t.log)
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	data := query.Data

	switch {
	case data == "new_quiz":
		t.chooseMode(chatID)
	case data == "quiz_mc":
		t.startQuiz(chatID, models.QuizModeMultipleChoice)
	case data == "quiz_text":
		t.startQuiz(chatID, models.QuizModeTextInput)
	case data == "quiz_next":
		t.nextQuestion(chatID)
	case data == "quiz_stop":
		t.stopQuiz(chatID)
	case strings.HasPrefix(data, "quiz_opt_"):
		t.answerOption(query)
	default:
		t.log.Warn("unknown quiz callback", zap.String("data", data))
	}
}

func (t *QuizT) startQuiz(chatID int64, mode models.QuizMode) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	card, err := t.service.StartQuiz(ctx, owner(chatID), mode)
	if err != nil {
		text := "❌ Failed to start the quiz. Try again later."
		if errors.Is(err, quiz.ErrEmptyInput) {
			text = "📭 Add some words before starting a quiz."
		} else {
			t.log.Error("failed to start quiz", zap.Int64("chat", chatID), zap.Error(err))
		}
		msg := tgbotapi.NewMessage(chatID, text)
		sendMessage(t.bot, msg, t.log)
		return
	}

	t.sendQuestion(chatID, card)
}

func (t *QuizT) sendQuestion(chatID int64, card models.QuizCard) {
	msg := tgbotapi.NewMessage(chatID, formatQuestion(card))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if card.Mode == models.QuizModeMultipleChoice {
		msg.ReplyMarkup = optionsKeyboard(card)
	} else {
		msg.ReplyMarkup = stopKeyboard()
	}
	sendMessage(t.bot, msg, t.log)
}

func (t *QuizT) answerOption(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID

	index, option, ok := parseOption(query.Data)
	if !ok {
		t.log.Warn("bad quiz option", zap.String("data", query.Data))
		return
	}

	card, exists := t.service.CurrentQuiz(owner(chatID))
	if !exists || card.Index != index || card.State != models.AnswerUnanswered || option >= len(card.Options) {
		// a button of an old question
		return
	}

	t.submit(chatID, card.Options[option])
}

// answerText submits a plain message to a typing quiz waiting for an answer.
// It reports whether the message was taken as an answer.
func (t *QuizT) answerText(message *tgbotapi.Message) bool {
	chatID := message.Chat.ID

	card, exists := t.service.CurrentQuiz(owner(chatID))
	if !exists || card.Mode != models.QuizModeTextInput || card.State != models.AnswerUnanswered {
		return false
	}

	t.submit(chatID, message.Text)
	return true
}

func (t *QuizT) submit(chatID int64, answer string) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	key := owner(chatID)
	card, err := t.service.SubmitAnswer(ctx, key, answer)
	if err != nil {
		t.quizError(chatID, err)
		return
	}

	var text string
	switch card.State {
	case models.AnswerCorrect:
		text = fmt.Sprintf("✅ Correct! *%s*", escape(card.Word))
	default:
		text = fmt.Sprintf("❌ Wrong. The answer is: %s", escape(card.CorrectAnswer))
	}
	text += fmt.Sprintf("\nScore: %d/%d", card.CorrectCount, card.Answered)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = nextKeyboard()
	sendMessage(t.bot, msg, t.log)

	if card.State == models.AnswerCorrect && t.autoAdvance > 0 {
		index := card.Index
		t.schedule(t.autoAdvance, func() {
			t.advanceFrom(chatID, index)
		})
	}
}

// advanceFrom is the delayed move after a correct answer. It does nothing when
// the user already moved on by hand.
func (t *QuizT) advanceFrom(chatID int64, index int) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	card, err := t.service.NextQuestionFrom(ctx, owner(chatID), index)
	if err != nil {
		if !errors.Is(err, service.ErrStaleQuestion) && !errors.Is(err, service.ErrNoSession) {
			t.log.Warn("auto advance failed", zap.Int64("chat", chatID), zap.Error(err))
		}
		return
	}

	t.showNext(chatID, card)
}

func (t *QuizT) nextQuestion(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	card, err := t.service.NextQuestion(ctx, owner(chatID))
	if err != nil {
		t.quizError(chatID, err)
		return
	}

	t.showNext(chatID, card)
}

func (t *QuizT) showNext(chatID int64, card models.QuizCard) {
	if card.State != models.AnswerFinished {
		t.sendQuestion(chatID, card)
		return
	}

	t.service.CloseQuiz(owner(chatID))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧠 New quiz", "new_quiz"),
			tgbotapi.NewInlineKeyboardButtonData(ButtonMainMenu, "main_menu"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🏁 Quiz finished! Score: %d/%d", card.CorrectCount, card.Total))
	msg.ReplyMarkup = keyboard
	sendMessage(t.bot, msg, t.log)
}

func (t *QuizT) stopQuiz(chatID int64) {
	t.service.CloseQuiz(owner(chatID))

	msg := tgbotapi.NewMessage(chatID, "⏹ Quiz stopped.")
	msg.ReplyMarkup = generateMenuKeyboard()
	sendMessage(t.bot, msg, t.log)
}

func (t *QuizT) sendQuizStats(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	stats, err := t.service.QuizStats(ctx)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Failed to get statistics")
		sendMessage(t.bot, msg, t.log)
		return
	}

	text := fmt.Sprintf("📊 *Quiz progress*\n\n"+
		"Quizzes finished: %d\n"+
		"Questions: %d\n"+
		"✅ Correct: %d\n"+
		"❌ Wrong: %d\n"+
		"🏆 Best score: %d",
		stats.QuizCount, stats.TotalCount, stats.RightCount, stats.WrongCount, stats.BestScore)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	sendMessage(t.bot, msg, t.log)
}

func (t *QuizT) quizError(chatID int64, err error) {
	var text string
	switch {
	case errors.Is(err, service.ErrNoSession):
		text = "🤷 No quiz is running. Tap \"Quiz\" to start one."
	case errors.Is(err, quiz.ErrAlreadyAnswered):
		text = "☝️ You already answered this one. Tap \"Next\"."
	case errors.Is(err, quiz.ErrNotAnswered):
		text = "☝️ Answer the question first."
	case errors.Is(err, quiz.ErrFinished):
		text = "🏁 The quiz is over."
	default:
		t.log.Error("quiz request failed", zap.Int64("chat", chatID), zap.Error(err))
		text = "❌ Something went wrong. Try again later."
	}
	msg := tgbotapi.NewMessage(chatID, text)
	sendMessage(t.bot, msg, t.log)
}

func formatQuestion(card models.QuizCard) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "❓ Question %d/%d\n\n", card.Index+1, card.Total)

	if card.Mode == models.QuizModeMultipleChoice {
		fmt.Fprintf(&sb, "What does *%s* mean?", escape(card.Word))
		return sb.String()
	}

	sb.WriteString("Type the word:\n")
	for _, d := range card.Definitions {
		fmt.Fprintf(&sb, "\n• %s", escape(d))
	}
	for _, ex := range card.Examples {
		fmt.Fprintf(&sb, "\n   _%s_", escape(ex))
	}
	return sb.String()
}

func optionsKeyboard(card models.QuizCard) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for i, option := range card.Options {
		data := fmt.Sprintf("quiz_opt_%d_%d", card.Index, i)
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, data),
		))
	}
	buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", "quiz_stop"),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}

func nextKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next", "quiz_next"),
			tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", "quiz_stop"),
		),
	)
}

func stopKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", "quiz_stop"),
		),
	)
}

// parseOption reads "quiz_opt_<question>_<option>".
func parseOption(data string) (int, int, bool) {
	parts := strings.Split(strings.TrimPrefix(data, "quiz_opt_"), "_")
	if len(parts) != 2 {
		return 0, 0, false
	}
	index, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	option, err := strconv.Atoi(parts[1])
	if err != nil || option < 0 {
		return 0, 0, false
	}
	return index, option, true
}
