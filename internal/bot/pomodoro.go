package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	minPomodoroMinutes = 1
	maxPomodoroMinutes = 60
)

type PomodoroT struct {
	bot      BotSender
	sessions SessionsI
	duration time.Duration
	log      *zap.Logger
}

func NewPomodoroTAPI(bot BotSender, sessions SessionsI, opts Options, log *zap.Logger) *PomodoroT {
	return &PomodoroT{
		bot:      bot,
		sessions: sessions,
		duration: opts.PomodoroDefault,
		log:      log,
	}
}

func (t *PomodoroT) start(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	duration, ok := parseMinutes(message.CommandArguments(), t.duration)
	if !ok {
		sendText(t.bot, t.log, message.Chat.ID, fmt.Sprintf(
			"Usage: /pomodoro [minutes], between %d and %d.", minPomodoroMinutes, maxPomodoroMinutes))
		return
	}

	s, err := t.sessions.Create(message.From.ID, session.KindPomodoro, session.Payload{
		ChatID:   message.Chat.ID,
		Duration: duration,
	}, duration)
	if errors.Is(err, session.ErrDuplicateSession) {
		msg := tgbotapi.NewMessage(message.Chat.ID, "⚠️ You already have an active timer!")
		msg.ReplyToMessageID = message.MessageID
		sendMessage(t.bot, t.log, msg)
		return
	}
	if err != nil {
		t.log.Error("failed to start pomodoro", zap.Int64("user_id", message.From.ID), zap.Error(err))
		return
	}

	keyboard := pomodoroKeyboard(s.ID, false)
	msg := tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf(
		"⏰ Pomodoro Timer Started\n\nFocus time: %d minutes\nStay focused and avoid distractions!", minutes(duration)))
	msg.ReplyMarkup = &keyboard

	sent, ok := sendMessage(t.bot, t.log, msg)
	if !ok {
		t.sessions.Discard(s.ID)
		return
	}
	s.Attach(sent.MessageID)
}

func (t *PomodoroT) processAction(ctx context.Context, query *tgbotapi.CallbackQuery, id, action string) {
	var ev session.Event
	switch action {
	case "pause":
		ev.Type = session.EventPause
	case "stop":
		ev.Type = session.EventStop
	default:
		t.log.Debug("invalid timer action", zap.String("data", query.Data))
		answerCallback(t.bot, t.log, query, rejection(session.ErrUnexpectedEvent, "timer"))
		return
	}

	s, ok := t.sessions.Get(id)
	if !ok {
		answerCallback(t.bot, t.log, query, rejection(session.ErrNotFound, "timer"))
		return
	}

	out, err := t.sessions.Submit(ctx, id, query.From.ID, ev)
	if err != nil {
		answerCallback(t.bot, t.log, query, rejection(err, "timer"))
		return
	}
	snap := s.Snapshot()

	switch out.State {
	case session.StateStopped:
		answerCallback(t.bot, t.log, query, "")
		editSession(t.bot, t.log, snap, "⏹️ Timer Stopped\n\nYour study session has been stopped.", nil)
	case session.StatePaused, session.StateRunning:
		paused := out.State == session.StatePaused
		notice := "▶️ Timer resumed."
		if paused {
			notice = fmt.Sprintf("⏸️ Timer paused with %s left.", out.Remaining.Round(time.Second))
		}
		answerCallback(t.bot, t.log, query, notice)

		if snap.MessageID != 0 {
			edit := tgbotapi.NewEditMessageReplyMarkup(snap.Payload.ChatID, snap.MessageID, pomodoroKeyboard(id, paused))
			sendMessage(t.bot, t.log, edit)
		}
	}
}

func pomodoroKeyboard(id string, paused bool) tgbotapi.InlineKeyboardMarkup {
	label := "⏸️ Pause"
	if paused {
		label = "▶️ Resume"
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(label, callbackData(prefixPomodoro, id, "pause")),
		tgbotapi.NewInlineKeyboardButtonData("⏹️ Stop", callbackData(prefixPomodoro, id, "stop")),
	))
}

// parseMinutes reads the timer length in whole minutes, falling back to def
// when args is empty.
func parseMinutes(args string, def time.Duration) (time.Duration, bool) {
	args = strings.TrimSpace(args)
	if args == "" {
		return def, true
	}

	n, err := strconv.Atoi(args)
	if err != nil || n < minPomodoroMinutes || n > maxPomodoroMinutes {
		return 0, false
	}
	return time.Duration(n) * time.Minute, true
}

func minutes(d time.Duration) int {
	return int(d / time.Minute)
}
