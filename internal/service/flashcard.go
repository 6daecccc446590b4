package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/llm"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/srs"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/pkg/validator"
	"go.uber.org/zap"
)

var flashcardSchema = &llm.Schema{
	Name:        "flashcard",
	Description: "A study flashcard",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "description": "the question or term"},
			"answer":   map[string]any{"type": "string", "description": "detailed answer or definition"},
		},
		"required": []any{"question", "answer"},
	},
}

// Review is the outcome of looking for a card to review. Card is set only
// when Due > 0; otherwise NextIn is the number of whole hours until the
// earliest scheduled review.
type Review struct {
	Card   models.Flashcard
	Due    int
	Total  int
	NextIn int
}

type FlashcardS struct {
	llm       llm.Provider
	repo      FlashcardRI
	retry     llm.RetryConfig
	maxTokens int
	now       func() time.Time
	log       *zap.Logger
}

func NewFlashcardService(provider llm.Provider, repo FlashcardRI, opts Options, log *zap.Logger) *FlashcardS {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &FlashcardS{
		llm:       provider,
		repo:      repo,
		retry:     opts.Retry,
		maxTokens: opts.MaxTokens,
		now:       now,
		log:       log,
	}
}

// NewFlashcard generates a card about topic and adds it to the user's deck,
// first due one day from now.
func (f *FlashcardS) NewFlashcard(ctx context.Context, userID int64, topic string) (models.Flashcard, error) {
	req := llm.Prompt("You write concise study flashcards. Reply with JSON only.",
		fmt.Sprintf("Create a study flashcard about '%s'.", topic))
	req.Schema = flashcardSchema
	req.MaxTokens = f.maxTokens

	generated, err := llm.Retry(llm.WithPurpose(ctx, "flashcard"), f.retry,
		func(ctx context.Context) (models.GeneratedCard, error) {
			var card models.GeneratedCard
			resp, err := f.llm.Generate(ctx, req)
			if err != nil {
				return card, err
			}
			if err := resp.Decode(&card); err != nil {
				return card, err
			}
			card.Question = strings.TrimSpace(card.Question)
			card.Answer = strings.TrimSpace(card.Answer)
			if err := validator.ValidateStruct(card); err != nil {
				return card, llm.Invalid(resp.Content, err)
			}
			return card, nil
		}, nil)
	if err != nil {
		f.log.Warn("failed to generate flashcard", zap.String("topic", topic), zap.Error(err))
		return models.Flashcard{}, err
	}

	card := srs.NewCard(userID, generated.Question, generated.Answer, topic, f.now())
	id, err := f.repo.AddFlashcard(ctx, card)
	if err != nil {
		f.log.Warn("failed to store flashcard", zap.Int64("user_id", userID), zap.Error(err))
		return models.Flashcard{}, err
	}
	card.ID = id

	return card, nil
}

// DueCard picks a random card that is due for review. It returns
// ErrNoFlashcards when the deck is empty.
func (f *FlashcardS) DueCard(ctx context.Context, userID int64) (Review, error) {
	cards, err := f.repo.Flashcards(ctx, userID)
	if err != nil {
		f.log.Warn("failed to load flashcards", zap.Int64("user_id", userID), zap.Error(err))
		return Review{}, err
	}
	if len(cards) == 0 {
		return Review{}, ErrNoFlashcards
	}

	now := f.now()
	review := Review{Total: len(cards)}

	due := srs.Due(cards, now)
	if len(due) == 0 {
		next, _ := srs.NextReview(cards)
		review.NextIn = srs.HoursUntil(next, now)
		return review, nil
	}

	review.Due = len(due)
	review.Card, _ = srs.Pick(due, nil)
	return review, nil
}

// SaveReview persists a rated card's new schedule.
func (f *FlashcardS) SaveReview(ctx context.Context, card models.Flashcard) error {
	return f.repo.UpdateSchedule(ctx, card)
}
