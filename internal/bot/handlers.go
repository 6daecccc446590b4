package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	prefixQuiz     = "quiz"
	prefixCard     = "card"
	prefixPomodoro = "pomo"
)

const helpText = `📚 Study Bot - Command Guide
Your AI-powered study companion!

🎯 Core Study Commands
/solve <question> - Get answers to any question
/explain <topic> - Step-by-step explanations
/define <term> - Quick definitions
/summarize <text> - Summarize topics or texts
/compare <a> | <b> - Compare two concepts

📝 Quiz & Practice
/quiz [mc|tf|fill] [easy|medium|hard] <topic> - Generate a quiz
/practice <subject> | <topic> - Get a practice problem
/flashcard <topic> - Create a study flashcard
/review - Review flashcards with spaced repetition

📊 Subject-Specific Help
/math <problem> - Solve math problems step by step
/science <question> - Science explanations with examples

⏰ Study Tools
/pomodoro [minutes] - Start a focus timer (default 25 min)
/stats - View your study statistics
/studytips [subject] - Get study strategies
/history - View recent Q&A in this chat
/export - Export your study notes

💡 Tip: Use /quiz to test your knowledge on any topic!`

func (t *TelegramAPI) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Debug("command without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	t.log.Debug("command received",
		zap.String("command", message.Command()),
		zap.Int64("user_id", message.From.ID),
		zap.Int64("chat_id", message.Chat.ID),
	)

	switch message.Command() {
	case "start", "help":
		t.handleHelpCommand(message)
	case "solve":
		t.study.solve(ctx, message)
	case "explain":
		t.study.explain(ctx, message)
	case "define":
		t.study.define(ctx, message)
	case "history":
		t.study.history(message)
	case "math":
		t.study.math(ctx, message)
	case "science":
		t.study.science(ctx, message)
	case "practice":
		t.study.practice(ctx, message)
	case "studytips":
		t.study.studyTips(ctx, message)
	case "summarize":
		t.study.summarize(ctx, message)
	case "compare":
		t.study.compare(ctx, message)
	case "quiz":
		t.quiz.sendNewQuiz(ctx, message)
	case "flashcard":
		t.card.sendNewFlashcard(ctx, message)
	case "review":
		t.card.sendReview(ctx, message)
	case "pomodoro":
		t.pomodoro.start(message)
	case "stats":
		t.stats.sendStats(ctx, message)
	case "export":
		t.stats.sendExport(ctx, message)
	default:
		sendText(t.bot, t.log, message.Chat.ID, "Unknown command. Use /help to see what I can do.")
	}
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	sendText(t.bot, t.log, message.Chat.ID, helpText)
}

// handleMessage treats plain text as the answer to a pending
// fill-in-the-blank quiz.
func (t *TelegramAPI) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil || message.Text == "" {
		return
	}

	if t.quiz.processFillAnswer(ctx, message) {
		return
	}

	if message.Chat.IsPrivate() {
		sendText(t.bot, t.log, message.Chat.ID, "I didn't get that. Use /help to see the commands.")
	}
}

func (t *TelegramAPI) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	prefix, id, value, ok := parseCallback(query.Data)
	if !ok {
		t.log.Debug("unknown callback data", zap.String("data", query.Data), zap.Int64("user_id", query.From.ID))
		answerCallback(t.bot, t.log, query, "")
		return
	}

	switch prefix {
	case prefixQuiz:
		t.quiz.processQuizAnswer(ctx, query, id, value)
	case prefixCard:
		t.card.processCardAction(ctx, query, id, value)
	case prefixPomodoro:
		t.pomodoro.processAction(ctx, query, id, value)
	default:
		t.log.Debug("unknown callback prefix", zap.String("data", query.Data), zap.Int64("user_id", query.From.ID))
		answerCallback(t.bot, t.log, query, "")
	}
}

func callbackData(prefix, id, value string) string {
	return prefix + "_" + id + "_" + value
}

// parseCallback splits "<prefix>_<sessionID>_<value>". Session ids never
// contain underscores.
func parseCallback(data string) (prefix, id, value string, ok bool) {
	parts := strings.SplitN(data, "_", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// rejection is the notice shown when a button press is refused. noun names
// what the session renders: "quiz", "flashcard" or "timer".
func rejection(err error, noun string) string {
	switch {
	case errors.Is(err, session.ErrUnauthorized):
		return fmt.Sprintf("This %s is not for you!", noun)
	case errors.Is(err, session.ErrExpired):
		return "⏰ Time's up! This session has expired."
	case errors.Is(err, session.ErrAlreadyAnswered):
		if noun == "timer" {
			return "This timer has already finished."
		}
		return "You already answered!"
	case errors.Is(err, session.ErrNotFound):
		return "This session is no longer active."
	default:
		return "⚠️ That action is not available right now."
	}
}
