package bot

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type StudySI interface {
	Solve(ctx context.Context, chatID int64, question string) (string, error)
	Explain(ctx context.Context, topic string) (string, error)
	Define(ctx context.Context, term string) (string, error)
	Math(ctx context.Context, problem string) (string, error)
	Science(ctx context.Context, question string) (string, error)
	Practice(ctx context.Context, userID int64, subject, topic string) (string, error)
	StudyTips(ctx context.Context, subject string) (string, error)
	Summarize(ctx context.Context, content string) (string, error)
	Compare(ctx context.Context, a, b string) (string, error)
	History(chatID int64) []models.QA
}

type StudyT struct {
	bot     BotSender
	service StudySI
	timeout time.Duration
	log     *zap.Logger
}

func NewStudyTAPI(bot BotSender, service StudySI, opts Options, log *zap.Logger) *StudyT {
	return &StudyT{
		bot:     bot,
		service: service,
		timeout: opts.RequestTimeout,
		log:     log,
	}
}

// oneShot is a command answered by a single generated text.
type oneShot struct {
	command  string
	usage    string
	title    string
	failure  string
	optional bool
	generate func(ctx context.Context, message *tgbotapi.Message, args string) (string, error)
}

func (t *StudyT) run(ctx context.Context, message *tgbotapi.Message, c oneShot) {
	args := strings.TrimSpace(message.CommandArguments())
	if args == "" && !c.optional {
		sendText(t.bot, t.log, message.Chat.ID, "Usage: "+c.usage)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	answer, err := c.generate(ctx, message, args)
	if err != nil {
		t.log.Warn("one-shot command failed",
			zap.String("command", c.command),
			zap.Int64("chat_id", message.Chat.ID),
			zap.Error(err),
		)
		sendText(t.bot, t.log, message.Chat.ID, c.failure)
		return
	}

	sendLong(t.bot, t.log, message.Chat.ID, c.title, answer)
}

func (t *StudyT) solve(ctx context.Context, message *tgbotapi.Message) {
	t.run(ctx, message, oneShot{
		command: "solve",
		usage:   "/solve <question>",
		title:   "📘 Answer",
		failure: "⚠️ Something went wrong. Please try again later.",
		generate: func(ctx context.Context, m *tgbotapi.Message, args string) (string, error) {
			return t.service.Solve(ctx, m.Chat.ID, args)
		},
	})
}

func (t *StudyT) explain(ctx context.Context, message *tgbotapi.Message) {
	t.run(ctx, message, oneShot{
		command: "explain",
		usage:   "/explain <topic>",
		title:   "📝 Explanation",
		failure: "⚠️ Could not generate explanation.",
		generate: func(ctx context.Context, _ *tgbotapi.Message, args string) (string, error) {
			return t.service.Explain(ctx, args)
		},
	})
}

func (t *StudyT) define(ctx context.Context, message *tgbotapi.Message) {
	t.run(ctx, message, oneShot{
		command: "define",
		usage:   "/define <term>",
		title:   "📚 Definition",
		failure: "⚠️ Could not fetch definition.",
		generate: func(ctx context.Context, _ *tgbotapi.Message, args string) (string, error) {
			return t.service.Define(ctx, args)
		},
	})
}

func (t *StudyT) math(ctx context.Context, message *tgbotapi.Message) {
	t.run(ctx, message, oneShot{
		command: "math",
		usage:   "/math <problem>",
		title:   "🔢 Math Solution",
		failure: "⚠️ Could not solve the problem.",
		generate: func(ctx context.Context, _ *tgbotapi.Message, args string) (string, error) {
			return t.service.Math(ctx, args)
		},
	})
}

func (t *StudyT) science(ctx context.Context, message *tgbotapi.Message) {
	t.run(ctx, message, oneShot{
		command: "science",
		usage:   "/science <question>",
		title:   "🔬 Science Explanation",
		failure: "⚠️ Could not answer the question.",
		generate: func(ctx context.Context, _ *tgbotapi.Message, args string) (string, error) {
			return t.service.Science(ctx, args)
		},
	})
}

func (t *StudyT) practice(ctx context.Context, message *tgbotapi.Message) {
	subject, topic, ok := splitPair(message.CommandArguments(), pipeSeparator)
	if !ok {
		sendText(t.bot, t.log, message.Chat.ID, "Usage: /practice <subject> | <topic>")
		return
	}

	t.run(ctx, message, oneShot{
		command: "practice",
		title:   "📚 Practice: " + subject,
		failure: "⚠️ Could not generate practice problem.",
		generate: func(ctx context.Context, m *tgbotapi.Message, _ string) (string, error) {
			return t.service.Practice(ctx, m.From.ID, subject, topic)
		},
	})
}

func (t *StudyT) studyTips(ctx context.Context, message *tgbotapi.Message) {
	t.run(ctx, message, oneShot{
		command:  "studytips",
		title:    "💡 Study Tips",
		failure:  "⚠️ Could not fetch study tips.",
		optional: true,
		generate: func(ctx context.Context, _ *tgbotapi.Message, args string) (string, error) {
			return t.service.StudyTips(ctx, args)
		},
	})
}

func (t *StudyT) summarize(ctx context.Context, message *tgbotapi.Message) {
	t.run(ctx, message, oneShot{
		command: "summarize",
		usage:   "/summarize <text>",
		title:   "📋 Summary",
		failure: "⚠️ Could not create summary.",
		generate: func(ctx context.Context, _ *tgbotapi.Message, args string) (string, error) {
			return t.service.Summarize(ctx, args)
		},
	})
}

func (t *StudyT) compare(ctx context.Context, message *tgbotapi.Message) {
	a, b, ok := splitPair(message.CommandArguments(), pipeSeparator, vsSeparator)
	if !ok {
		sendText(t.bot, t.log, message.Chat.ID, "Usage: /compare <first> | <second>")
		return
	}

	t.run(ctx, message, oneShot{
		command: "compare",
		title:   "⚖️ Comparison",
		failure: "⚠️ Could not create comparison.",
		generate: func(ctx context.Context, _ *tgbotapi.Message, _ string) (string, error) {
			return t.service.Compare(ctx, a, b)
		},
	})
}

func (t *StudyT) history(message *tgbotapi.Message) {
	history := t.service.History(message.Chat.ID)
	if len(history) == 0 {
		sendText(t.bot, t.log, message.Chat.ID, "📜 No history available.")
		return
	}

	var sb strings.Builder
	for i, qa := range history {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Q: %s\nA: %s", qa.Question, qa.Answer)
	}

	sendLong(t.bot, t.log, message.Chat.ID, "📜 Recent Q&A", sb.String())
}

var (
	pipeSeparator = regexp.MustCompile(`\s*\|\s*`)
	vsSeparator   = regexp.MustCompile(`(?i)\s+vs\.?\s+`)
)

// splitPair splits args at the first separator that matches and requires
// both halves to be non-empty.
func splitPair(args string, separators ...*regexp.Regexp) (string, string, bool) {
	args = strings.TrimSpace(args)
	for _, sep := range separators {
		parts := sep.Split(args, 2)
		if len(parts) != 2 {
			continue
		}
		a, b := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if a != "" && b != "" {
			return a, b, true
		}
	}
	return "", "", false
}
