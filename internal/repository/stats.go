package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
)

type StatsR struct {
	db QueryI
}

func NewStatsRepository(db QueryI) *StatsR {
	return &StatsR{db: db}
}

// RecordQuiz counts one answered quiz. Correct answers also bump the
// topic's counter.
func (s *StatsR) RecordQuiz(ctx context.Context, userID int64, topic string, correct bool) error {
	hit := 0
	if correct {
		hit = 1
	}

	query := `INSERT INTO quiz_stats (user_id, correct, total)
		VALUES (?, ?, 1)
		ON CONFLICT (user_id)
		DO UPDATE SET
			correct = quiz_stats.correct + excluded.correct,
			total = quiz_stats.total + 1`
	if _, err := s.db.ExecContext(ctx, query, userID, hit); err != nil {
		return fmt.Errorf("update quiz stats: %w", err)
	}

	if correct {
		query = `INSERT INTO quiz_topics (user_id, topic, hits)
			VALUES (?, ?, 1)
			ON CONFLICT (user_id, topic)
			DO UPDATE SET hits = quiz_topics.hits + 1`
		if _, err := s.db.ExecContext(ctx, query, userID, topic); err != nil {
			return fmt.Errorf("update topic stats: %w", err)
		}
	}

	return s.increment(ctx, userID, incQuizzes)
}

func (s *StatsR) AddPractice(ctx context.Context, userID int64) error {
	return s.increment(ctx, userID, incPractice)
}

func (s *StatsR) AddPomodoro(ctx context.Context, userID int64) error {
	return s.increment(ctx, userID, incPomodoros)
}

const (
	incQuizzes = `INSERT INTO study_stats (user_id, quizzes) VALUES (?, 1)
		ON CONFLICT (user_id) DO UPDATE SET quizzes = study_stats.quizzes + 1`
	incPractice = `INSERT INTO study_stats (user_id, practice) VALUES (?, 1)
		ON CONFLICT (user_id) DO UPDATE SET practice = study_stats.practice + 1`
	incPomodoros = `INSERT INTO study_stats (user_id, pomodoros) VALUES (?, 1)
		ON CONFLICT (user_id) DO UPDATE SET pomodoros = study_stats.pomodoros + 1`
)

func (s *StatsR) increment(ctx context.Context, userID int64, query string) error {
	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("update study stats: %w", err)
	}
	return nil
}

func (s *StatsR) QuizStats(ctx context.Context, userID int64) (models.QuizStats, error) {
	var stats models.QuizStats
	err := s.db.GetContext(ctx, &stats, `SELECT correct, total FROM quiz_stats WHERE user_id = ?`, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.QuizStats{}, fmt.Errorf("database error: %w", err)
	}

	var topics []models.TopicCount
	err = s.db.SelectContext(ctx, &topics,
		`SELECT topic, hits FROM quiz_topics WHERE user_id = ? ORDER BY hits DESC, topic`, userID)
	if err != nil {
		return models.QuizStats{}, fmt.Errorf("database error: %w", err)
	}

	stats.Topics = make(map[string]int, len(topics))
	for _, t := range topics {
		stats.Topics[t.Topic] = t.Count
	}

	return stats, nil
}

// TopTopics lists the user's topics by correct answers, most first.
func (s *StatsR) TopTopics(ctx context.Context, userID int64, limit int) ([]models.TopicCount, error) {
	var topics []models.TopicCount
	err := s.db.SelectContext(ctx, &topics,
		`SELECT topic, hits FROM quiz_topics WHERE user_id = ? ORDER BY hits DESC, topic LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return topics, nil
}

func (s *StatsR) StudyStats(ctx context.Context, userID int64) (models.StudyStats, error) {
	var stats models.StudyStats
	err := s.db.GetContext(ctx, &stats,
		`SELECT quizzes, practice, pomodoros FROM study_stats WHERE user_id = ?`, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.StudyStats{}, fmt.Errorf("database error: %w", err)
	}
	return stats, nil
}
