package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonMyWords  = "📚 My words"
	ButtonAddWord  = "➕ Add word"
	ButtonQuiz     = "🧠 Quiz"
	ButtonProgress = "📊 Progress"
	ButtonMainMenu = "🏠 Main menu"
	ButtonHelp     = "ℹ️ Help"
)

const helpText = `📚 Commands:
/start — open the main menu
/help — this message
/cancel — drop the current form or quiz

🎯 Buttons:
• "My words" — browse, look up and delete words
• "Add word" — send "word; definition; example"
• "Quiz" — multiple choice or typing quiz
• "Progress" — finished quizzes and best score`

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "cancel":
		t.handleCancelCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I help you learn English words.\n\n" +
		"✨ What I can do:\n" +
		"• 📚 Keep your word list with meanings and examples\n" +
		"• 🔎 Look up definitions in a dictionary\n" +
		"• 🧠 Quiz you on your words\n\n" +
		"Use the buttons below to start!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🏠 Main menu:")
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonMyWords),
			tgbotapi.NewKeyboardButton(ButtonAddWord),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuiz),
			tgbotapi.NewKeyboardButton(ButtonProgress),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleCancelCommand(message *tgbotapi.Message) {
	key := owner(message.Chat.ID)
	t.cache.DeleteInput(key)
	t.cache.DeleteCandidates(key)
	t.quiz.service.CloseQuiz(key)

	msg := tgbotapi.NewMessage(message.Chat.ID, "👌 Cancelled.")
	msg.ReplyMarkup = generateMenuKeyboard()
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	text := message.Text

	switch text {
	case ButtonMyWords:
		t.word.showWords(chatID, 0)
	case ButtonAddWord:
		t.word.askNewWord(chatID)
	case ButtonQuiz:
		t.quiz.chooseMode(chatID)
	case ButtonProgress:
		t.quiz.sendQuizStats(chatID)
	case ButtonMainMenu:
		t.showMainMenu(chatID)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		t.handleText(message)
	}
}

// handleText routes a free text message to the pending add-word form or to
// the running typing quiz.
func (t *TelegramAPI) handleText(message *tgbotapi.Message) {
	key := owner(message.Chat.ID)

	if form, ok := t.cache.GetInput(key); ok && form == formAddWord {
		t.word.addWordFromText(message)
		return
	}

	if t.quiz.answerText(message) {
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "I didn't get that. Use the buttons below.")
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		t.log.Warn("callback without message", zap.String("id", query.ID))
		return
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, "quiz_") || data == "new_quiz":
		t.quiz.handleQuizCallbackQuery(query)

	case strings.HasPrefix(data, "words_") || strings.HasPrefix(data, "word_") ||
		strings.HasPrefix(data, "del_") || strings.HasPrefix(data, "look_") ||
		data == "merge" || data == "discard" || data == "add_word":
		t.word.handleWordCallbackQuery(query)

	case data == "main_menu":
		t.showMainMenu(query.Message.Chat.ID)

	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("chat", query.Message.Chat.ID))
	}
}
