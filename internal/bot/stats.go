package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type StatsSI interface {
	Report(ctx context.Context, userID int64) (service.Report, error)
	Export(ctx context.Context, userID, chatID int64) (string, error)
}

type StatsT struct {
	bot     BotSender
	service StatsSI
	timeout time.Duration
	log     *zap.Logger
}

func NewStatsTAPI(bot BotSender, service StatsSI, opts Options, log *zap.Logger) *StatsT {
	return &StatsT{
		bot:     bot,
		service: service,
		timeout: opts.RequestTimeout,
		log:     log,
	}
}

func (t *StatsT) sendStats(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	userID := message.From.ID

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	report, err := t.service.Report(ctx, userID)
	if err != nil {
		t.log.Warn("failed to get stats", zap.Int64("user_id", userID), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "❌ Could not load your statistics.")
		return
	}

	sendText(t.bot, t.log, message.Chat.ID, formatReport(displayName(message.From), report))
}

func (t *StatsT) sendExport(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	userID := message.From.ID

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	text, err := t.service.Export(ctx, userID, message.Chat.ID)
	if errors.Is(err, service.ErrNoData) {
		sendText(t.bot, t.log, message.Chat.ID, "📭 No data to export yet. Start studying to build your history!")
		return
	}
	if err != nil {
		t.log.Warn("failed to export", zap.Int64("user_id", userID), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "❌ Could not export your study data.")
		return
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("study_notes_%s.txt", fileSafe(displayName(message.From))),
		Bytes: []byte(text),
	})
	doc.Caption = "📥 Here's your study data export!"

	sendMessage(t.bot, t.log, doc)
}

func formatReport(name string, r service.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📊 Study Stats for %s\nYour comprehensive study overview\n", name)

	sb.WriteString("\n📝 Quiz Performance\n")
	if r.Quiz.Total == 0 {
		sb.WriteString("No data yet\n")
	} else {
		fmt.Fprintf(&sb, "✅ Correct: %d\n❌ Total Attempted: %d\n📈 Accuracy: %.1f%%\n",
			r.Quiz.Correct, r.Quiz.Total, r.Quiz.Accuracy())
	}

	if len(r.TopTopics) > 0 {
		sb.WriteString("\n🏆 Top Topics\n")
		for _, tc := range r.TopTopics {
			fmt.Fprintf(&sb, "• %s: %d\n", tc.Topic, tc.Count)
		}
	}

	if r.HasStudy {
		fmt.Fprintf(&sb, "\n📚 Study Activities\n🎯 Quizzes: %d\n📖 Practice: %d\n⏰ Pomodoros: %d\n",
			r.Study.Quizzes, r.Study.Practice, r.Study.Pomodoros)
	}

	if r.Cards > 0 {
		fmt.Fprintf(&sb, "\n🎴 Flashcards\n📚 Total Cards: %d\n🔄 Total Reviews: %d\n⏰ Due Now: %d\n",
			r.Cards, r.Reviews, r.DueNow)
	}

	fmt.Fprintf(&sb, "\nTotal Study Actions: %d | Keep up the great work! 🎓", r.TotalCount)
	return sb.String()
}

func displayName(u *tgbotapi.User) string {
	if u.UserName != "" {
		return u.UserName
	}
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	return fmt.Sprint(u.ID)
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}
