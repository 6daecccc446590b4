package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type QuizSI interface {
	NewQuiz(ctx context.Context, quizType models.QuizType, difficulty models.Difficulty, topic string) (models.Quiz, error)
}

type QuizT struct {
	bot      BotSender
	service  QuizSI
	sessions SessionsI
	timeout  time.Duration
	ttl      time.Duration
	log      *zap.Logger
}

func NewQuizTAPI(bot BotSender, service QuizSI, sessions SessionsI, opts Options, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:      bot,
		service:  service,
		sessions: sessions,
		timeout:  opts.RequestTimeout,
		ttl:      opts.QuizTimeout,
		log:      log,
	}
}

func (t *QuizT) sendNewQuiz(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Debug("quiz request without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	quizType, difficulty, topic := parseQuizArgs(message.CommandArguments())
	if topic == "" {
		sendText(t.bot, t.log, message.Chat.ID, "Usage: /quiz [mc|tf|fill] [easy|medium|hard] <topic>")
		return
	}

	genCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	quiz, err := t.service.NewQuiz(genCtx, quizType, difficulty, topic)
	if err != nil {
		t.log.Warn("failed to get new quiz", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "⚠️ Error generating quiz. Please try again.")
		return
	}

	kind := quizKind(quiz.Type)
	s, err := t.sessions.Create(message.From.ID, kind, session.Payload{
		ChatID:   message.Chat.ID,
		Topic:    quiz.Topic,
		Question: quiz.Question,
		Options:  quiz.Options,
		Correct:  quiz.Correct,
	}, t.ttl)
	if err != nil {
		t.log.Error("failed to create quiz session", zap.Int64("user_id", message.From.ID), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "⚠️ Error generating quiz. Please try again.")
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, quizText(quiz))
	if kind != session.KindFillBlank {
		keyboard := quizKeyboard(s.ID, quiz)
		msg.ReplyMarkup = &keyboard
	}

	sent, ok := sendMessage(t.bot, t.log, msg)
	if !ok {
		t.sessions.Discard(s.ID)
		return
	}
	s.Attach(sent.MessageID)
}

func (t *QuizT) processQuizAnswer(ctx context.Context, query *tgbotapi.CallbackQuery, id, value string) {
	s, ok := t.sessions.Get(id)
	if !ok {
		answerCallback(t.bot, t.log, query, rejection(session.ErrNotFound, "quiz"))
		return
	}
	snap := s.Snapshot()

	idx, err := strconv.Atoi(value)
	if err != nil || idx < 0 || idx >= len(snap.Payload.Options) {
		t.log.Debug("invalid quiz option", zap.String("data", query.Data))
		answerCallback(t.bot, t.log, query, rejection(session.ErrUnexpectedEvent, "quiz"))
		return
	}

	out, err := t.sessions.Submit(ctx, id, query.From.ID, session.Event{
		Type:   session.EventAnswer,
		Answer: snap.Payload.Options[idx],
	})
	if err != nil {
		answerCallback(t.bot, t.log, query, rejection(err, "quiz"))
		return
	}
	answerCallback(t.bot, t.log, query, "")

	editSession(t.bot, t.log, s.Snapshot(), quizResult(snap.Kind, snap.Payload, out.Correct), nil)
}

// processFillAnswer submits message as the answer to the sender's pending
// fill-in-the-blank quiz in this chat. It reports whether there was one.
func (t *QuizT) processFillAnswer(ctx context.Context, message *tgbotapi.Message) bool {
	s, ok := t.sessions.PendingAnswer(message.From.ID, message.Chat.ID)
	if !ok {
		return false
	}

	out, err := t.sessions.Submit(ctx, s.ID, message.From.ID, session.Event{
		Type:   session.EventAnswer,
		Answer: message.Text,
	})
	if err != nil {
		t.log.Debug("fill-in answer rejected", zap.String("session_id", s.ID), zap.Error(err))
		return true
	}

	snap := s.Snapshot()
	msg := tgbotapi.NewMessage(message.Chat.ID, quizResult(snap.Kind, snap.Payload, out.Correct))
	msg.ReplyToMessageID = message.MessageID
	sendMessage(t.bot, t.log, msg)
	return true
}

// parseQuizArgs reads an optional type and difficulty, in any order, ahead
// of the topic.
func parseQuizArgs(args string) (models.QuizType, models.Difficulty, string) {
	quizType, difficulty := models.QuizType(""), models.Difficulty("")
	fields := strings.Fields(args)

	for len(fields) > 0 {
		word := strings.ToLower(fields[0])
		if t, ok := quizTypes[word]; ok && quizType == "" {
			quizType = t
		} else if d, ok := difficulties[word]; ok && difficulty == "" {
			difficulty = d
		} else {
			break
		}
		fields = fields[1:]
	}

	if quizType == "" {
		quizType = models.QuizMultipleChoice
	}
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	return quizType, difficulty, strings.Join(fields, " ")
}

var quizTypes = map[string]models.QuizType{
	"mc":    models.QuizMultipleChoice,
	"tf":    models.QuizTrueFalse,
	"fill":  models.QuizFillBlank,
	"blank": models.QuizFillBlank,
}

var difficulties = map[string]models.Difficulty{
	"easy":   models.DifficultyEasy,
	"medium": models.DifficultyMedium,
	"hard":   models.DifficultyHard,
}

func quizKind(t models.QuizType) session.Kind {
	switch t {
	case models.QuizTrueFalse:
		return session.KindTrueFalse
	case models.QuizFillBlank:
		return session.KindFillBlank
	default:
		return session.KindMultipleChoice
	}
}

const optionLabels = "ABCDEFGH"

func quizText(q models.Quiz) string {
	level := capitalize(string(q.Difficulty))

	switch q.Type {
	case models.QuizTrueFalse:
		return fmt.Sprintf("📝 True/False: %s (%s)\n\n%s", q.Topic, level, q.Question)
	case models.QuizFillBlank:
		return fmt.Sprintf("📝 Fill in the Blank: %s (%s)\n\n%s\n\n💡 Type your answer in chat!", q.Topic, level, q.Question)
	default:
		var sb strings.Builder
		fmt.Fprintf(&sb, "📝 Quiz: %s (%s)\n\n%s\n", q.Topic, level, q.Question)
		for i, option := range q.Options {
			fmt.Fprintf(&sb, "\n%s) %s", optionLabel(i), option)
		}
		return sb.String()
	}
}

func quizKeyboard(id string, q models.Quiz) tgbotapi.InlineKeyboardMarkup {
	if q.Type == models.QuizTrueFalse {
		return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ True", callbackData(prefixQuiz, id, "0")),
			tgbotapi.NewInlineKeyboardButtonData("❌ False", callbackData(prefixQuiz, id, "1")),
		))
	}

	row := make([]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for i := range q.Options {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(optionLabel(i), callbackData(prefixQuiz, id, strconv.Itoa(i))))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func optionLabel(i int) string {
	if i < len(optionLabels) {
		return optionLabels[i : i+1]
	}
	return strconv.Itoa(i + 1)
}

func quizResult(kind session.Kind, p session.Payload, correct bool) string {
	answer := p.Correct
	if kind == session.KindTrueFalse {
		answer = capitalize(answer)
	}

	if correct {
		return fmt.Sprintf("✅ Correct!\n\n%s\n\nGreat job! The answer is: %s", p.Question, answer)
	}
	return fmt.Sprintf("❌ Incorrect\n\n%s\n\nThe correct answer is: %s", p.Question, answer)
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
