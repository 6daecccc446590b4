package service

import (
	"context"
	"errors"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/llm"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	"go.uber.org/zap"
)

var (
	ErrNoFlashcards = errors.New("no flashcards")
	ErrNoData       = errors.New("nothing to export")
)

type StatsRI interface {
	RecordQuiz(ctx context.Context, userID int64, topic string, correct bool) error
	AddPractice(ctx context.Context, userID int64) error
	AddPomodoro(ctx context.Context, userID int64) error
	QuizStats(ctx context.Context, userID int64) (models.QuizStats, error)
	TopTopics(ctx context.Context, userID int64, limit int) ([]models.TopicCount, error)
	StudyStats(ctx context.Context, userID int64) (models.StudyStats, error)
}

type FlashcardRI interface {
	AddFlashcard(ctx context.Context, card models.Flashcard) (int64, error)
	Flashcards(ctx context.Context, userID int64) ([]models.Flashcard, error)
	UpdateSchedule(ctx context.Context, card models.Flashcard) error
}

type RepositoryI interface {
	StatsRI
	FlashcardRI
}

// HistoryI keeps the recent question/answer pairs of a chat.
type HistoryI interface {
	AddQA(chatID int64, qa models.QA)
	History(chatID int64, limit int) []models.QA
}

type Options struct {
	MaxTokens int
	Retry     llm.RetryConfig
	Now       func() time.Time
}

type Service struct {
	*StudyS
	*QuizS
	*FlashcardS
	*StatsS
}

func InitServices(provider llm.Provider, repo RepositoryI, history HistoryI, opts Options, log *zap.Logger) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		StudyS:     NewStudyService(provider, repo, history, opts, log),
		QuizS:      NewQuizService(provider, opts, log),
		FlashcardS: NewFlashcardService(provider, repo, opts, log),
		StatsS:     NewStatsService(repo, repo, history, opts, log),
	}
}
