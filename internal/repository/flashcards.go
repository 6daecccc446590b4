package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
)

var ErrFlashcardNotFound = errors.New("flashcard not found")

type FlashcardR struct {
	db QueryI
}

func NewFlashcardRepository(db QueryI) *FlashcardR {
	return &FlashcardR{db: db}
}

// AddFlashcard stores card and returns its new ID.
func (f *FlashcardR) AddFlashcard(ctx context.Context, card models.Flashcard) (int64, error) {
	query := `INSERT INTO flashcards
		(user_id, question, answer, topic, created, next_review, interval_days, ease_factor, reviews)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := f.db.ExecContext(ctx, query,
		card.UserID, card.Question, card.Answer, card.Topic,
		card.Created.UTC(), card.NextReview.UTC(), card.Interval, card.EaseFactor, card.Reviews)
	if err != nil {
		return 0, fmt.Errorf("insert flashcard: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("flashcard id: %w", err)
	}
	return id, nil
}

// Flashcards returns the user's deck in creation order.
func (f *FlashcardR) Flashcards(ctx context.Context, userID int64) ([]models.Flashcard, error) {
	query := `SELECT id, user_id, question, answer, topic, created, next_review, interval_days, ease_factor, reviews
		FROM flashcards
		WHERE user_id = ?
		ORDER BY id`

	var cards []models.Flashcard
	if err := f.db.SelectContext(ctx, &cards, query, userID); err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return cards, nil
}

// UpdateSchedule persists the review state of a rated card.
func (f *FlashcardR) UpdateSchedule(ctx context.Context, card models.Flashcard) error {
	query := `UPDATE flashcards
		SET next_review = ?, interval_days = ?, ease_factor = ?, reviews = ?
		WHERE id = ? AND user_id = ?`

	res, err := f.db.ExecContext(ctx, query,
		card.NextReview.UTC(), card.Interval, card.EaseFactor, card.Reviews, card.ID, card.UserID)
	if err != nil {
		return fmt.Errorf("update flashcard: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update flashcard: %w", err)
	}
	if n == 0 {
		return ErrFlashcardNotFound
	}
	return nil
}
