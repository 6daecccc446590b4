package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	mock_service "github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type statsMocks struct {
	stats   *mock_service.MockStatsRI
	cards   *mock_service.MockFlashcardRI
	history *mock_service.MockHistoryI
}

func newStatsServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(statsMocks)) *StatsS {
	m := statsMocks{
		stats:   mock_service.NewMockStatsRI(ctrl),
		cards:   mock_service.NewMockFlashcardRI(ctrl),
		history: mock_service.NewMockHistoryI(ctrl),
	}
	if setupMock != nil {
		setupMock(m)
	}

	opts := Options{Now: func() time.Time { return now }}
	return NewStatsService(m.stats, m.cards, m.history, opts, zap.NewNop())
}

func TestStatsS_Recorder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statsS := newStatsServiceMock(t, ctrl, func(m statsMocks) {
		m.stats.EXPECT().RecordQuiz(gomock.Any(), int64(1), "go", true).Return(nil)
		m.stats.EXPECT().AddPomodoro(gomock.Any(), int64(1)).Return(nil)
	})

	require.NoError(t, statsS.RecordQuiz(context.Background(), 1, "go", true))
	require.NoError(t, statsS.RecordPomodoro(context.Background(), 1))
}

func TestStatsS_Report(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(statsMocks)
		want    Report
		wantErr bool
	}{
		{
			name: "full report",
			f: func(m statsMocks) {
				m.stats.EXPECT().QuizStats(gomock.Any(), int64(1)).Return(models.QuizStats{Correct: 3, Total: 4, Topics: map[string]int{"go": 3}}, nil)
				m.stats.EXPECT().TopTopics(gomock.Any(), int64(1), 3).Return([]models.TopicCount{{Topic: "go", Count: 3}}, nil)
				m.stats.EXPECT().StudyStats(gomock.Any(), int64(1)).Return(models.StudyStats{Quizzes: 4, Practice: 2, Pomodoros: 1}, nil)
				m.cards.EXPECT().Flashcards(gomock.Any(), int64(1)).Return([]models.Flashcard{
					{Reviews: 2, NextReview: now.Add(-time.Minute)},
					{Reviews: 1, NextReview: now.Add(time.Hour)},
				}, nil)
			},
			want: Report{
				Quiz:       models.QuizStats{Correct: 3, Total: 4, Topics: map[string]int{"go": 3}},
				TopTopics:  []models.TopicCount{{Topic: "go", Count: 3}},
				Study:      models.StudyStats{Quizzes: 4, Practice: 2, Pomodoros: 1},
				HasStudy:   true,
				Cards:      2,
				Reviews:    3,
				DueNow:     1,
				TotalCount: 4 + 2 + 1 + 2,
			},
		},
		{
			name: "new user",
			f: func(m statsMocks) {
				m.stats.EXPECT().QuizStats(gomock.Any(), int64(1)).Return(models.QuizStats{}, nil)
				m.stats.EXPECT().TopTopics(gomock.Any(), int64(1), 3).Return(nil, nil)
				m.stats.EXPECT().StudyStats(gomock.Any(), int64(1)).Return(models.StudyStats{}, nil)
				m.cards.EXPECT().Flashcards(gomock.Any(), int64(1)).Return(nil, nil)
			},
			want: Report{},
		},
		{
			name: "db error",
			f: func(m statsMocks) {
				m.stats.EXPECT().QuizStats(gomock.Any(), int64(1)).Return(models.QuizStats{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			statsS := newStatsServiceMock(t, ctrl, tt.f)

			got, err := statsS.Report(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatsS_Export(t *testing.T) {
	t.Parallel()

	card := models.Flashcard{Question: "What is Go?", Answer: "A language", Topic: "go", NextReview: now}

	tests := []struct {
		name         string
		f            func(statsMocks)
		wantContains []string
		wantMissing  []string
		wantErr      error
	}{
		{
			name: "no data",
			f: func(m statsMocks) {
				m.history.EXPECT().History(int64(10), 0).Return(nil)
				m.cards.EXPECT().Flashcards(gomock.Any(), int64(1)).Return(nil, nil)
				m.stats.EXPECT().QuizStats(gomock.Any(), int64(1)).Return(models.QuizStats{}, nil)
			},
			wantErr: ErrNoData,
		},
		{
			name: "everything",
			f: func(m statsMocks) {
				m.history.EXPECT().History(int64(10), 0).Return([]models.QA{{Question: "2+2?", Answer: "4"}})
				m.cards.EXPECT().Flashcards(gomock.Any(), int64(1)).Return([]models.Flashcard{card}, nil)
				m.stats.EXPECT().QuizStats(gomock.Any(), int64(1)).Return(models.QuizStats{Correct: 1, Total: 3}, nil)
			},
			wantContains: []string{
				"=== QUESTION & ANSWER HISTORY ===",
				"Q1: 2+2?\nA1: 4",
				"=== FLASHCARDS ===",
				"Card 1 (go):\nQ: What is Go?\nA: A language",
				"Next review: 2026-03-10",
				"=== QUIZ STATISTICS ===",
				"Correct Answers: 1\nTotal Attempts: 3\nAccuracy: 33.3%",
			},
		},
		{
			name: "only flashcards",
			f: func(m statsMocks) {
				m.history.EXPECT().History(int64(10), 0).Return(nil)
				m.cards.EXPECT().Flashcards(gomock.Any(), int64(1)).Return([]models.Flashcard{card}, nil)
				m.stats.EXPECT().QuizStats(gomock.Any(), int64(1)).Return(models.QuizStats{}, nil)
			},
			wantContains: []string{"=== FLASHCARDS ==="},
			wantMissing:  []string{"HISTORY", "QUIZ STATISTICS"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			statsS := newStatsServiceMock(t, ctrl, tt.f)

			got, err := statsS.Export(context.Background(), 1, 10)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			for _, s := range tt.wantContains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.wantMissing {
				assert.NotContains(t, got, s)
			}
			assert.NotEqual(t, '\n', rune(got[0]))
		})
	}
}
