package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/SerikaYuzuki/WordApp/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	pageSize    = 8
	formAddWord = "add_word"
)

type WordSI interface {
	Words(ctx context.Context) []models.Word
	Word(ctx context.Context, id uuid.UUID) (models.Word, error)
	AddWord(ctx context.Context, word models.Word) (models.Word, error)
	DeleteWord(ctx context.Context, id uuid.UUID) error
	LookupMeanings(ctx context.Context, text string) []models.Meaning
	AddMeanings(ctx context.Context, id uuid.UUID, meanings []models.Meaning) (models.Word, error)
	Inflections(text string) []string
}

type WordT struct {
	bot     BotSender
	cache   *cache.Cache
	service WordSI
	log     *zap.Logger
}

func NewWordTAPI(bot BotSender, cache *cache.Cache, service WordSI, log *zap.Logger) *WordT {
	return &WordT{
		bot:     bot,
		cache:   cache,
		service: service,
		log:     log,
	}
}

func (t *WordT) showWords(chatID int64, page int) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	text, keyboard := wordPage(t.service.Words(ctx), page)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	sendMessage(t.bot, msg, t.log)
}

func (t *WordT) handleWordCallbackQuery(query *tgbotapi.CallbackQuery) {
	data := query.Data

	switch {
	case data == "add_word":
		t.askNewWord(query.Message.Chat.ID)
	case data == "merge":
		t.mergeCandidates(query)
	case data == "discard":
		t.discardCandidates(query)
	case strings.HasPrefix(data, "words_"):
		t.wordHandlePagination(query)
	default:
		prefix, raw, _ := strings.Cut(data, "_")
		id, err := uuid.Parse(raw)
		if err != nil {
			t.log.Warn("bad word id in callback", zap.String("data", data))
			msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Unknown word.")
			sendMessage(t.bot, msg, t.log)
			return
		}

		switch prefix {
		case "word":
			t.showWord(query, id)
		case "del":
			t.deleteWord(query, id)
		case "look":
			t.lookupWord(query.Message.Chat.ID, id)
		}
	}
}

func (t *WordT) wordHandlePagination(query *tgbotapi.CallbackQuery) {
	page, err := strconv.Atoi(strings.TrimPrefix(query.Data, "words_"))
	if err != nil || page < 0 {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Wrong page number.")
		sendMessage(t.bot, msg, t.log)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	text, keyboard := wordPage(t.service.Words(ctx), page)
	t.edit(query.Message, text, keyboard)
}

func (t *WordT) showWord(query *tgbotapi.CallbackQuery, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	word, err := t.service.Word(ctx, id)
	if err != nil {
		t.notFound(query.Message.Chat.ID, err)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔎 Look up", "look_"+id.String()),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete", "del_"+id.String()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏪ Back", "words_0"),
		),
	)

	t.edit(query.Message, formatWord(word, t.service.Inflections(word.Text)), &keyboard)
}

func (t *WordT) deleteWord(query *tgbotapi.CallbackQuery, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := t.service.DeleteWord(ctx, id); err != nil {
		t.notFound(query.Message.Chat.ID, err)
		return
	}

	text, keyboard := wordPage(t.service.Words(ctx), 0)
	t.edit(query.Message, "🗑 Deleted.\n\n"+text, keyboard)
}

// lookupWord fetches dictionary definitions and keeps them as candidates
// until the user merges or discards them.
func (t *WordT) lookupWord(chatID int64, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	word, err := t.service.Word(ctx, id)
	if err != nil {
		t.notFound(chatID, err)
		return
	}

	meanings := t.service.LookupMeanings(ctx, word.Text)
	if len(meanings) == 0 {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🤷 No definitions found for %q.", word.Text))
		sendMessage(t.bot, msg, t.log)
		return
	}

	t.cache.SetCandidates(owner(chatID), cache.Candidates{WordID: id, Meanings: meanings})

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔎 Definitions for *%s*:\n", escape(word.Text))
	for i, m := range meanings {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, escape(m.Definition))
		for _, ex := range m.Examples {
			fmt.Fprintf(&sb, "\n   _%s_", escape(ex))
		}
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Add all", "merge"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Discard", "discard"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	sendMessage(t.bot, msg, t.log)
}

func (t *WordT) mergeCandidates(query *tgbotapi.CallbackQuery) {
	key := owner(query.Message.Chat.ID)

	candidates, ok := t.cache.GetCandidates(key)
	if !ok {
		t.edit(query.Message, "🤷 Nothing to add. Look the word up again.", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	word, err := t.service.AddMeanings(ctx, candidates.WordID, candidates.Meanings)
	if err != nil {
		t.log.Error("failed to merge meanings", zap.String("word", candidates.WordID.String()), zap.Error(err))
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Failed to save the definitions.")
		sendMessage(t.bot, msg, t.log)
		return
	}
	t.cache.DeleteCandidates(key)

	t.edit(query.Message, fmt.Sprintf("✅ Added %d definitions to *%s*.", len(candidates.Meanings), escape(word.Text)), nil)
}

func (t *WordT) discardCandidates(query *tgbotapi.CallbackQuery) {
	t.cache.DeleteCandidates(owner(query.Message.Chat.ID))
	t.edit(query.Message, "👌 Definitions discarded.", nil)
}

func (t *WordT) askNewWord(chatID int64) {
	t.cache.SetInput(owner(chatID), formAddWord)

	msg := tgbotapi.NewMessage(chatID, "✍️ Send the new word as:\nword; definition; example\n\nDefinition and example are optional. /cancel to stop.")
	sendMessage(t.bot, msg, t.log)
}

func (t *WordT) addWordFromText(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	t.cache.DeleteInput(owner(chatID))

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	word, err := t.service.AddWord(ctx, parseWordForm(message.Text))
	if err != nil {
		text := "❌ Failed to save the word. Try again later."
		if errors.Is(err, models.ErrEmptyWord) {
			text = "❌ The word can't be empty."
		} else {
			t.log.Error("failed to add word", zap.Int64("chat", chatID), zap.Error(err))
		}
		msg := tgbotapi.NewMessage(chatID, text)
		sendMessage(t.bot, msg, t.log)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔎 Look up", "look_"+word.ID.String()),
			tgbotapi.NewInlineKeyboardButtonData("📚 My words", "words_0"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Saved *%s*.", escape(word.Text)))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	sendMessage(t.bot, msg, t.log)
}

func (t *WordT) notFound(chatID int64, err error) {
	text := "❌ Something went wrong. Try again later."
	if errors.Is(err, models.ErrNotFound) {
		text = "❌ Word not found."
	} else {
		t.log.Error("word request failed", zap.Int64("chat", chatID), zap.Error(err))
	}
	msg := tgbotapi.NewMessage(chatID, text)
	sendMessage(t.bot, msg, t.log)
}

func (t *WordT) edit(message *tgbotapi.Message, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	editMsg := tgbotapi.NewEditMessageText(message.Chat.ID, message.MessageID, text)
	editMsg.ParseMode = tgbotapi.ModeMarkdown
	editMsg.ReplyMarkup = keyboard
	sendMessage(t.bot, editMsg, t.log)
}

// parseWordForm reads "word; definition; example". Missing parts are left out.
func parseWordForm(text string) models.Word {
	parts := strings.SplitN(text, ";", 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	word := models.Word{Text: parts[0], Meanings: []models.Meaning{}}
	if len(parts) < 2 || parts[1] == "" {
		return word
	}

	meaning := models.Meaning{Definition: parts[1], Examples: []string{}}
	if len(parts) == 3 && parts[2] != "" {
		meaning.Examples = append(meaning.Examples, parts[2])
	}
	word.Meanings = append(word.Meanings, meaning)
	return word
}

func wordPage(words []models.Word, page int) (string, *tgbotapi.InlineKeyboardMarkup) {
	if len(words) == 0 {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(ButtonAddWord, "add_word"),
				tgbotapi.NewInlineKeyboardButtonData(ButtonMainMenu, "main_menu"),
			),
		)
		return "📭 No words yet.", &keyboard
	}

	pages := (len(words) + pageSize - 1) / pageSize
	if page >= pages {
		page = pages - 1
	}

	start := page * pageSize
	end := min(start+pageSize, len(words))

	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, w := range words[start:end] {
		label := fmt.Sprintf("%s · %d", w.Text, len(w.Meanings))
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "word_"+w.ID.String()),
		))
	}

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Back", fmt.Sprintf("words_%d", page-1)))
	}
	if page+1 < pages {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", fmt.Sprintf("words_%d", page+1)))
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(ButtonAddWord, "add_word"),
		tgbotapi.NewInlineKeyboardButtonData(ButtonMainMenu, "main_menu"),
	))

	text := fmt.Sprintf("📚 Your words: %d (page %d/%d)", len(words), page+1, pages)
	return text, &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}

func formatWord(word models.Word, inflections []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s*\n", escape(word.Text))

	if len(word.Meanings) == 0 {
		sb.WriteString("\nNo meanings yet. Try 🔎 Look up.\n")
	}
	for i, m := range word.Meanings {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, escape(m.Definition))
		for _, ex := range m.Examples {
			fmt.Fprintf(&sb, "\n   _%s_", escape(ex))
		}
	}

	if len(inflections) > 0 {
		fmt.Fprintf(&sb, "\n\n🔤 %s", escape(strings.Join(inflections, ", ")))
	}

	return sb.String()
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
