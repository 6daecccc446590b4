// Package srs schedules flashcard reviews.
//
// The scheduler is a simplified SM-2: a review rating scales the card's
// interval and nudges its ease factor, both clamped to fixed bounds.
package srs

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
)

// Difficulty is the user's answer to "how well did you know this?".
type Difficulty string

const (
	Easy Difficulty = "easy"
	Good Difficulty = "good"
	Hard Difficulty = "hard"
)

const (
	MinInterval     = 1.0
	MaxInterval     = 30.0
	MinEase         = 1.3
	MaxEase         = 3.0
	InitialInterval = 1.0
	InitialEase     = 2.5

	day = 24 * time.Hour
)

// ParseDifficulty accepts easy, good and hard in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Good, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// NewCard returns a card first due one day after creation.
func NewCard(userID int64, question, answer, topic string, now time.Time) models.Flashcard {
	return models.Flashcard{
		UserID:     userID,
		Question:   question,
		Answer:     answer,
		Topic:      topic,
		Created:    now,
		NextReview: now.Add(day),
		Interval:   InitialInterval,
		EaseFactor: InitialEase,
	}
}

// Rate returns card rescheduled after a review at now. The stored interval
// keeps its fraction so later ratings compound on it; the review delay uses
// whole days only.
func Rate(card models.Flashcard, d Difficulty, now time.Time) models.Flashcard {
	switch d {
	case Easy:
		card.Interval = math.Min(card.Interval*2.5, MaxInterval)
		card.EaseFactor = math.Min(card.EaseFactor+0.15, MaxEase)
	case Good:
		card.Interval = math.Min(card.Interval*2, MaxInterval)
	default:
		card.Interval = math.Max(MinInterval, card.Interval*0.5)
		card.EaseFactor = math.Max(card.EaseFactor-0.2, MinEase)
	}

	card.Interval = clamp(card.Interval, MinInterval, MaxInterval)
	card.EaseFactor = clamp(card.EaseFactor, MinEase, MaxEase)
	card.Reviews++
	card.NextReview = now.Add(time.Duration(ReviewDays(card)) * day)

	return card
}

// ReviewDays is the whole number of days until the card's next review.
func ReviewDays(card models.Flashcard) int {
	return int(card.Interval)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// IsDue reports whether the card's review time has passed.
func IsDue(card models.Flashcard, now time.Time) bool {
	return !card.NextReview.After(now)
}

// Due filters cards down to the ones due at now, keeping their order.
func Due(cards []models.Flashcard, now time.Time) []models.Flashcard {
	var due []models.Flashcard
	for _, c := range cards {
		if IsDue(c, now) {
			due = append(due, c)
		}
	}
	return due
}

// Pick chooses one card uniformly at random. It returns false for an empty slice.
func Pick(cards []models.Flashcard, rnd *rand.Rand) (models.Flashcard, bool) {
	if len(cards) == 0 {
		return models.Flashcard{}, false
	}
	if rnd == nil {
		return cards[rand.IntN(len(cards))], true
	}
	return cards[rnd.IntN(len(cards))], true
}

// NextReview returns the earliest scheduled review among cards.
func NextReview(cards []models.Flashcard) (time.Time, bool) {
	var next time.Time
	for i, c := range cards {
		if i == 0 || c.NextReview.Before(next) {
			next = c.NextReview
		}
	}
	return next, len(cards) > 0
}

// HoursUntil truncates the time from now to t to whole hours.
func HoursUntil(t, now time.Time) int {
	return int(t.Sub(now).Hours())
}
