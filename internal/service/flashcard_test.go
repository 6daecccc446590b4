package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/llm"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	mock_service "github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newFlashcardServiceMock(t *testing.T, ctrl *gomock.Controller, provider llm.Provider, setupMock func(*mock_service.MockFlashcardRI)) *FlashcardS {
	repo := mock_service.NewMockFlashcardRI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	opts := Options{Retry: testRetry(), Now: func() time.Time { return now }}
	return NewFlashcardService(provider, repo, opts, zap.NewNop())
}

func TestFlashcardS_NewFlashcard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		responses []llm.MockResponse
		f         func(*mock_service.MockFlashcardRI)
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "success",
			responses: []llm.MockResponse{{Content: `{"question":"What is a goroutine?","answer":"A lightweight thread"}`}},
			f: func(mr *mock_service.MockFlashcardRI) {
				mr.EXPECT().AddFlashcard(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, card models.Flashcard) (int64, error) {
						assert.Equal(t, int64(456), card.UserID)
						assert.Equal(t, "go", card.Topic)
						assert.Equal(t, now, card.Created)
						assert.Equal(t, now.Add(24*time.Hour), card.NextReview)
						assert.InDelta(t, 1.0, card.Interval, 1e-9)
						assert.InDelta(t, 2.5, card.EaseFactor, 1e-9)
						assert.Zero(t, card.Reviews)
						return 7, nil
					})
			},
			wantCalls: 1,
		},
		{
			name: "empty answer retried",
			responses: []llm.MockResponse{
				{Content: `{"question":"What is a goroutine?","answer":"  "}`},
				{Content: `{"question":"What is a goroutine?","answer":"A lightweight thread"}`},
			},
			f: func(mr *mock_service.MockFlashcardRI) {
				mr.EXPECT().AddFlashcard(gomock.Any(), gomock.Any()).Return(int64(7), nil)
			},
			wantCalls: 2,
		},
		{
			name: "generation fails",
			responses: []llm.MockResponse{
				{Err: &llm.GenerationError{Err: errors.New("down")}},
				{Err: &llm.GenerationError{Err: errors.New("down")}},
				{Err: &llm.GenerationError{Err: errors.New("down")}},
			},
			wantCalls: 3,
			wantErr:   true,
		},
		{
			name:      "store fails",
			responses: []llm.MockResponse{{Content: `{"question":"q","answer":"a"}`}},
			f: func(mr *mock_service.MockFlashcardRI) {
				mr.EXPECT().AddFlashcard(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))
			},
			wantCalls: 1,
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := llm.NewMockProvider(tt.responses...)
			cardS := newFlashcardServiceMock(t, ctrl, provider, tt.f)

			got, err := cardS.NewFlashcard(context.Background(), 456, "go")

			assert.Equal(t, tt.wantCalls, provider.CallCount())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), got.ID)
			assert.Equal(t, "A lightweight thread", got.Answer)
		})
	}
}

func TestFlashcardS_DueCard(t *testing.T) {
	t.Parallel()

	dueA := models.Flashcard{ID: 1, NextReview: now.Add(-time.Hour)}
	dueB := models.Flashcard{ID: 2, NextReview: now}
	later := models.Flashcard{ID: 3, NextReview: now.Add(30 * time.Hour)}
	soon := models.Flashcard{ID: 4, NextReview: now.Add(5*time.Hour + 59*time.Minute)}

	tests := []struct {
		name    string
		f       func(*mock_service.MockFlashcardRI)
		want    Review
		wantIDs []int64
		wantErr error
	}{
		{
			name: "empty deck",
			f: func(mr *mock_service.MockFlashcardRI) {
				mr.EXPECT().Flashcards(gomock.Any(), int64(1)).Return(nil, nil)
			},
			wantErr: ErrNoFlashcards,
		},
		{
			name: "nothing due",
			f: func(mr *mock_service.MockFlashcardRI) {
				mr.EXPECT().Flashcards(gomock.Any(), int64(1)).Return([]models.Flashcard{later, soon}, nil)
			},
			want: Review{Total: 2, NextIn: 5},
		},
		{
			name: "due cards",
			f: func(mr *mock_service.MockFlashcardRI) {
				mr.EXPECT().Flashcards(gomock.Any(), int64(1)).Return([]models.Flashcard{dueA, later, dueB}, nil)
			},
			want:    Review{Total: 3, Due: 2},
			wantIDs: []int64{1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cardS := newFlashcardServiceMock(t, ctrl, llm.NewMockProvider(), tt.f)

			got, err := cardS.DueCard(context.Background(), 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Total, got.Total)
			assert.Equal(t, tt.want.Due, got.Due)
			assert.Equal(t, tt.want.NextIn, got.NextIn)
			if tt.wantIDs != nil {
				assert.Contains(t, tt.wantIDs, got.Card.ID)
			}
		})
	}
}

func TestFlashcardS_SaveReview(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	card := models.Flashcard{ID: 1, UserID: 2, Interval: 2.5}
	cardS := newFlashcardServiceMock(t, ctrl, llm.NewMockProvider(), func(mr *mock_service.MockFlashcardRI) {
		mr.EXPECT().UpdateSchedule(gomock.Any(), card).Return(nil)
	})

	require.NoError(t, cardS.SaveReview(context.Background(), card))
}
