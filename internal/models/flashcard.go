package models

import "time"

// Flashcard is one card in a user's deck. Interval is in days and keeps its
// fractional part; NextReview is derived from the integer part.
type Flashcard struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	Question   string    `db:"question"`
	Answer     string    `db:"answer"`
	Topic      string    `db:"topic"`
	Created    time.Time `db:"created"`
	NextReview time.Time `db:"next_review"`
	Interval   float64   `db:"interval_days"`
	EaseFactor float64   `db:"ease_factor"`
	Reviews    int       `db:"reviews"`
}

// GeneratedCard is the shape the backend returns for /flashcard.
type GeneratedCard struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}
