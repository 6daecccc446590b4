package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/service"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/session"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/srs"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type FlashcardSI interface {
	NewFlashcard(ctx context.Context, userID int64, topic string) (models.Flashcard, error)
	DueCard(ctx context.Context, userID int64) (service.Review, error)
}

type FlashcardT struct {
	bot      BotSender
	service  FlashcardSI
	sessions SessionsI
	timeout  time.Duration
	ttl      time.Duration
	log      *zap.Logger
}

func NewFlashcardTAPI(bot BotSender, service FlashcardSI, sessions SessionsI, opts Options, log *zap.Logger) *FlashcardT {
	return &FlashcardT{
		bot:      bot,
		service:  service,
		sessions: sessions,
		timeout:  opts.RequestTimeout,
		ttl:      opts.FlashcardTimeout,
		log:      log,
	}
}

func (t *FlashcardT) sendNewFlashcard(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	topic := strings.TrimSpace(message.CommandArguments())
	if topic == "" {
		sendText(t.bot, t.log, message.Chat.ID, "Usage: /flashcard <topic>")
		return
	}

	genCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	card, err := t.service.NewFlashcard(genCtx, message.From.ID, topic)
	if err != nil {
		t.log.Warn("failed to create flashcard", zap.Int64("user_id", message.From.ID), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "⚠️ Could not create flashcard. Please try again.")
		return
	}

	t.show(message, session.KindFlashcardReveal, card, "🎴 Flashcard Created\n\n"+card.Question)
}

func (t *FlashcardT) sendReview(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	review, err := t.service.DueCard(ctx, message.From.ID)
	switch {
	case errors.Is(err, service.ErrNoFlashcards):
		sendText(t.bot, t.log, message.Chat.ID, "📭 No flashcards to review. Create some with /flashcard!")
		return
	case err != nil:
		t.log.Warn("failed to pick a due card", zap.Int64("user_id", message.From.ID), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "⚠️ Could not load your flashcards. Please try again.")
		return
	case review.Due == 0:
		sendText(t.bot, t.log, message.Chat.ID, fmt.Sprintf(
			"✅ All Caught Up!\n\nNo cards due for review.\nNext review in %d hours.", review.NextIn))
		return
	}

	t.show(message, session.KindFlashcardRate, review.Card,
		fmt.Sprintf("🎴 Review (%d cards due)\n\n%s", review.Due, review.Card.Question))
}

func (t *FlashcardT) show(message *tgbotapi.Message, kind session.Kind, card models.Flashcard, text string) {
	s, err := t.sessions.Create(message.From.ID, kind, session.Payload{
		ChatID: message.Chat.ID,
		Topic:  card.Topic,
		Card:   card,
	}, t.ttl)
	if err != nil {
		t.log.Error("failed to create flashcard session", zap.Int64("user_id", message.From.ID), zap.Error(err))
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Show Answer", callbackData(prefixCard, s.ID, "reveal")),
	))

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = &keyboard

	sent, ok := sendMessage(t.bot, t.log, msg)
	if !ok {
		t.sessions.Discard(s.ID)
		return
	}
	s.Attach(sent.MessageID)
}

func (t *FlashcardT) processCardAction(ctx context.Context, query *tgbotapi.CallbackQuery, id, action string) {
	ev := session.Event{Type: session.EventReveal}
	if action != "reveal" {
		difficulty, err := srs.ParseDifficulty(action)
		if err != nil {
			t.log.Debug("invalid card action", zap.String("data", query.Data))
			answerCallback(t.bot, t.log, query, rejection(session.ErrUnexpectedEvent, "flashcard"))
			return
		}
		ev = session.Event{Type: session.EventRate, Rating: difficulty}
	}

	s, ok := t.sessions.Get(id)
	if !ok {
		answerCallback(t.bot, t.log, query, rejection(session.ErrNotFound, "flashcard"))
		return
	}

	out, err := t.sessions.Submit(ctx, id, query.From.ID, ev)
	if err != nil {
		answerCallback(t.bot, t.log, query, rejection(err, "flashcard"))
		return
	}
	answerCallback(t.bot, t.log, query, "")

	snap := s.Snapshot()

	switch out.State {
	case session.StateRevealed:
		editSession(t.bot, t.log, snap, "💡 Answer\n\n"+out.Card.Answer, nil)
	case session.StateAwaitingRating:
		keyboard := ratingKeyboard(id)
		editSession(t.bot, t.log, snap, "💡 Answer\n\n"+out.Card.Answer+"\n\nHow well did you know this?", &keyboard)
	case session.StateRated:
		editSession(t.bot, t.log, snap, fmt.Sprintf("✅ Review Complete\n\n%s\nNext review: %d days",
			ratingFeedback(ev.Rating), srs.ReviewDays(out.Card)), nil)
	}
}

func ratingKeyboard(id string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ Easy", callbackData(prefixCard, id, string(srs.Easy))),
		tgbotapi.NewInlineKeyboardButtonData("👍 Good", callbackData(prefixCard, id, string(srs.Good))),
		tgbotapi.NewInlineKeyboardButtonData("❌ Hard", callbackData(prefixCard, id, string(srs.Hard))),
	))
}

func ratingFeedback(d srs.Difficulty) string {
	switch d {
	case srs.Easy:
		return "Great! This card will appear in a longer interval."
	case srs.Good:
		return "Good! Standard interval applied."
	default:
		return "I'll show this card again soon."
	}
}
