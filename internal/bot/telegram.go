package bot

import (
	"context"
	"strconv"
	"time"

	"github.com/SerikaYuzuki/WordApp/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type ServiceI interface {
	WordSI
	QuizSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot   *tgbotapi.BotAPI
	cache *cache.Cache
	word  *WordT
	quiz  *QuizT
	log   *zap.Logger
}

func NewTelegramAPI(botToken, env string, service ServiceI, cache *cache.Cache, autoAdvance time.Duration, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	return &TelegramAPI{
		bot:   bot,
		cache: cache,
		word:  NewWordTAPI(bot, cache, service, log),
		quiz:  NewQuizTAPI(bot, service, autoAdvance, log),
		log:   log,
	}, nil
}

// Start handles updates until ctx is done.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	t.log.Info("telegram bot started", zap.String("user", t.bot.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

// owner keys per-chat state in the cache and the quiz service.
func owner(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable, log *zap.Logger) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Error("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("message sent", zap.Int64("chat", sentMsg.Chat.ID))
	}
}
