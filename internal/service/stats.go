package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/srs"
	"go.uber.org/zap"
)

const topTopics = 3

// Report is everything /stats shows about one user.
type Report struct {
	Quiz       models.QuizStats
	TopTopics  []models.TopicCount
	Study      models.StudyStats
	HasStudy   bool
	Cards      int
	Reviews    int
	DueNow     int
	TotalCount int
}

type StatsS struct {
	stats   StatsRI
	cards   FlashcardRI
	history HistoryI
	now     func() time.Time
	log     *zap.Logger
}

func NewStatsService(stats StatsRI, cards FlashcardRI, history HistoryI, opts Options, log *zap.Logger) *StatsS {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &StatsS{
		stats:   stats,
		cards:   cards,
		history: history,
		now:     now,
		log:     log,
	}
}

func (s *StatsS) RecordQuiz(ctx context.Context, userID int64, topic string, correct bool) error {
	return s.stats.RecordQuiz(ctx, userID, topic, correct)
}

func (s *StatsS) RecordPomodoro(ctx context.Context, userID int64) error {
	return s.stats.AddPomodoro(ctx, userID)
}

func (s *StatsS) Report(ctx context.Context, userID int64) (Report, error) {
	var r Report
	var err error

	if r.Quiz, err = s.stats.QuizStats(ctx, userID); err != nil {
		s.log.Warn("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		return Report{}, err
	}
	if r.TopTopics, err = s.stats.TopTopics(ctx, userID, topTopics); err != nil {
		s.log.Warn("failed to get top topics", zap.Int64("user_id", userID), zap.Error(err))
		return Report{}, err
	}
	if r.Study, err = s.stats.StudyStats(ctx, userID); err != nil {
		s.log.Warn("failed to get study stats", zap.Int64("user_id", userID), zap.Error(err))
		return Report{}, err
	}
	r.HasStudy = r.Study != (models.StudyStats{})

	cards, err := s.cards.Flashcards(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get flashcards", zap.Int64("user_id", userID), zap.Error(err))
		return Report{}, err
	}
	r.Cards = len(cards)
	r.DueNow = len(srs.Due(cards, s.now()))
	for _, c := range cards {
		r.Reviews += c.Reviews
	}

	r.TotalCount = r.Quiz.Total + r.Study.Practice + r.Study.Pomodoros + r.Cards
	return r, nil
}

// Export renders the chat's Q&A history, the user's flashcards and quiz
// statistics as plain text. It returns ErrNoData when all three are empty.
func (s *StatsS) Export(ctx context.Context, userID, chatID int64) (string, error) {
	history := s.history.History(chatID, 0)

	cards, err := s.cards.Flashcards(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get flashcards", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}

	quiz, err := s.stats.QuizStats(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}

	if len(history) == 0 && len(cards) == 0 && quiz.Total == 0 {
		return "", ErrNoData
	}

	var sb strings.Builder

	if len(history) > 0 {
		sb.WriteString("=== QUESTION & ANSWER HISTORY ===\n")
		for i, qa := range history {
			fmt.Fprintf(&sb, "\nQ%d: %s\nA%d: %s\n", i+1, qa.Question, i+1, qa.Answer)
		}
	}

	if len(cards) > 0 {
		sb.WriteString("\n=== FLASHCARDS ===\n")
		for i, c := range cards {
			fmt.Fprintf(&sb, "\nCard %d (%s):\nQ: %s\nA: %s\nNext review: %s\n",
				i+1, c.Topic, c.Question, c.Answer, c.NextReview.Format(time.DateOnly))
		}
	}

	if quiz.Total > 0 {
		sb.WriteString("\n=== QUIZ STATISTICS ===\n")
		fmt.Fprintf(&sb, "\nCorrect Answers: %d\nTotal Attempts: %d\nAccuracy: %.1f%%\n",
			quiz.Correct, quiz.Total, quiz.Accuracy())
	}

	return strings.TrimLeft(sb.String(), "\n"), nil
}
