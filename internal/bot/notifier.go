package bot

import (
	"fmt"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const pausedTooLong = "⏹️ Timer Stopped\n\nThe timer was paused for too long. Start a new one with /pomodoro."

// Notifier renders deadline transitions into the chat that owns the
// session. It implements session.Listener.
type Notifier struct {
	bot BotSender
	log *zap.Logger
}

func NewNotifier(bot BotSender, log *zap.Logger) *Notifier {
	return &Notifier{bot: bot, log: log}
}

func (n *Notifier) Expired(snap session.Snapshot) {
	switch snap.Kind {
	case session.KindFillBlank:
		sendText(n.bot, n.log, snap.Payload.ChatID,
			"⏰ Time's Up!\n\nThe correct answer was: "+snap.Payload.Correct)
	case session.KindMultipleChoice, session.KindTrueFalse:
		answer := snap.Payload.Correct
		if snap.Kind == session.KindTrueFalse {
			answer = capitalize(answer)
		}
		editSession(n.bot, n.log, snap, fmt.Sprintf("⏰ Time's Up!\n\n%s\n\nThe correct answer was: %s",
			snap.Payload.Question, answer), nil)
	case session.KindFlashcardReveal, session.KindFlashcardRate:
		editSession(n.bot, n.log, snap, "⏰ Time's Up!\n\n💡 Answer\n\n"+snap.Payload.Card.Answer, nil)
	case session.KindPomodoro:
		editSession(n.bot, n.log, snap, pausedTooLong, nil)
	}
}

func (n *Notifier) Completed(snap session.Snapshot) {
	n.dropKeyboard(snap)

	msg := tgbotapi.NewMessage(snap.Payload.ChatID, fmt.Sprintf(
		"✅ Timer Complete!\n\nGreat work! You studied for %d minutes.\nTime for a break! 🎉",
		minutes(snap.Payload.Duration)))
	if snap.MessageID != 0 {
		msg.ReplyToMessageID = snap.MessageID
	}
	sendMessage(n.bot, n.log, msg)
}

func (n *Notifier) dropKeyboard(snap session.Snapshot) {
	if snap.MessageID == 0 {
		return
	}
	edit := tgbotapi.NewEditMessageReplyMarkup(snap.Payload.ChatID, snap.MessageID, noKeyboard())
	sendMessage(n.bot, n.log, edit)
}

var _ session.Listener = (*Notifier)(nil)
