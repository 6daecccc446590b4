package bot

import (
	"context"
	"sync"
	"time"
	"unicode/utf16"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/config"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// maxMessageLen stays under Telegram's 4096 UTF-16 unit limit.
const maxMessageLen = 4000

type ServiceI interface {
	StudySI
	QuizSI
	FlashcardSI
	StatsSI
}

// SessionsI is the part of the session manager the handlers drive.
type SessionsI interface {
	Create(owner int64, kind session.Kind, payload session.Payload, timeout time.Duration) (*session.Session, error)
	Get(id string) (*session.Session, bool)
	Submit(ctx context.Context, id string, actor int64, ev session.Event) (session.Outcome, error)
	PendingAnswer(owner, chatID int64) (*session.Session, bool)
	Discard(id string)
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Options struct {
	RequestTimeout   time.Duration
	QuizTimeout      time.Duration
	FlashcardTimeout time.Duration
	PomodoroDefault  time.Duration
}

func OptionsFrom(cfg config.AppConfig) Options {
	return Options{
		RequestTimeout:   cfg.RequestTimeout,
		QuizTimeout:      cfg.QuizTimeout,
		FlashcardTimeout: cfg.FlashcardTimeout,
		PomodoroDefault:  cfg.PomodoroDefault,
	}
}

type TelegramAPI struct {
	api      *tgbotapi.BotAPI
	bot      BotSender
	log      *zap.Logger
	study    *StudyT
	quiz     *QuizT
	card     *FlashcardT
	pomodoro *PomodoroT
	stats    *StatsT
	notifier *Notifier
}

func NewTelegramAPI(cfg *config.Config, service ServiceI, sessions SessionsI, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	api.Debug = cfg.Env == "development"

	log.Info("authorized on telegram", zap.String("username", api.Self.UserName))

	t := newTelegramAPI(api, OptionsFrom(cfg.App), service, sessions, log)
	t.api = api
	return t, nil
}

func newTelegramAPI(bot BotSender, opts Options, service ServiceI, sessions SessionsI, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:      bot,
		log:      log,
		study:    NewStudyTAPI(bot, service, opts, log),
		quiz:     NewQuizTAPI(bot, service, sessions, opts, log),
		card:     NewFlashcardTAPI(bot, service, sessions, opts, log),
		pomodoro: NewPomodoroTAPI(bot, sessions, opts, log),
		stats:    NewStatsTAPI(bot, service, opts, log),
		notifier: NewNotifier(bot, log),
	}
}

// Notifier reports session deadlines back into the chats.
func (t *TelegramAPI) Notifier() *Notifier {
	return t.notifier
}

// Start polls for updates until ctx is done. Every update is handled in its
// own goroutine; Start waits for them before returning.
func (t *TelegramAPI) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				t.handleUpdate(ctx, update)
			}()
		}
	}
}

func (t *TelegramAPI) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Error("panic while handling update",
				zap.Int("update_id", update.UpdateID),
				zap.Any("panic", r),
			)
		}
	}()

	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(ctx, update.Message)
		} else {
			t.handleMessage(ctx, update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) (tgbotapi.Message, bool) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return tgbotapi.Message{}, false
	}
	return sentMsg, true
}

func sendText(bot BotSender, log *zap.Logger, chatID int64, text string) {
	sendMessage(bot, log, tgbotapi.NewMessage(chatID, text))
}

// sendLong sends title and body, splitting the text across as many messages
// as it takes.
func sendLong(bot BotSender, log *zap.Logger, chatID int64, title, body string) {
	for _, part := range splitText(title+"\n\n"+body, maxMessageLen) {
		if _, ok := sendMessage(bot, log, tgbotapi.NewMessage(chatID, part)); !ok {
			return
		}
	}
}

// splitText cuts text into parts of at most limit UTF-16 units, preferring
// to cut after a newline.
func splitText(text string, limit int) []string {
	var parts []string
	for text != "" {
		cut, lastNL, units := len(text), -1, 0
		for i, r := range text {
			n := utf16.RuneLen(r)
			if n < 0 {
				n = 1
			}
			if units+n > limit {
				cut = i
				break
			}
			units += n
			if r == '\n' {
				lastNL = i + 1
			}
		}
		if cut < len(text) && lastNL > 0 {
			cut = lastNL
		}
		parts = append(parts, text[:cut])
		text = text[cut:]
	}
	return parts
}

// answerCallback acknowledges a button press. A non-empty notice is shown
// to the presser only.
func answerCallback(bot BotSender, log *zap.Logger, query *tgbotapi.CallbackQuery, notice string) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if notice != "" {
		callback = tgbotapi.NewCallbackWithAlert(query.ID, notice)
	}
	if _, err := bot.Request(callback); err != nil {
		log.Warn("failed to answer callback", zap.String("query_id", query.ID), zap.Error(err))
	}
}

// editSession replaces the text of the message rendering snap. A nil
// keyboard removes the buttons.
func editSession(bot BotSender, log *zap.Logger, snap session.Snapshot, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if snap.MessageID == 0 {
		sendText(bot, log, snap.Payload.ChatID, text)
		return
	}

	edit := tgbotapi.NewEditMessageText(snap.Payload.ChatID, snap.MessageID, text)
	edit.ReplyMarkup = keyboard
	sendMessage(bot, log, edit)
}

// noKeyboard is an explicit empty keyboard; a nil markup leaves the buttons
// in place on a markup-only edit.
func noKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
}
