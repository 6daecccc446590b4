package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_bot "github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/bot/mock"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mcQuiz = models.Quiz{
		Type:       models.QuizMultipleChoice,
		Topic:      "geography",
		Difficulty: models.DifficultyMedium,
		Question:   "Capital of France?",
		Options:    []string{"Paris", "Lyon", "Nice", "Lille"},
		Correct:    "Paris",
	}
	tfQuiz = models.Quiz{
		Type:       models.QuizTrueFalse,
		Topic:      "go",
		Difficulty: models.DifficultyHard,
		Question:   "Go has generics.",
		Options:    []string{"true", "false"},
		Correct:    "true",
	}
	fillQuiz = models.Quiz{
		Type:       models.QuizFillBlank,
		Topic:      "chemistry",
		Difficulty: models.DifficultyEasy,
		Question:   "Water is H2___",
		Correct:    "O",
	}
)

func TestParseQuizArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args           string
		wantType       models.QuizType
		wantDifficulty models.Difficulty
		wantTopic      string
	}{
		{args: "photosynthesis", wantType: models.QuizMultipleChoice, wantDifficulty: models.DifficultyMedium, wantTopic: "photosynthesis"},
		{args: "tf hard world war 2", wantType: models.QuizTrueFalse, wantDifficulty: models.DifficultyHard, wantTopic: "world war 2"},
		{args: "EASY fill cells", wantType: models.QuizFillBlank, wantDifficulty: models.DifficultyEasy, wantTopic: "cells"},
		{args: "mc easy hard", wantType: models.QuizMultipleChoice, wantDifficulty: models.DifficultyEasy, wantTopic: "hard"},
		{args: "tf", wantType: models.QuizTrueFalse, wantDifficulty: models.DifficultyMedium, wantTopic: ""},
		{args: "  ", wantType: models.QuizMultipleChoice, wantDifficulty: models.DifficultyMedium, wantTopic: ""},
	}
	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			t.Parallel()

			qt, d, topic := parseQuizArgs(tt.args)
			assert.Equal(t, tt.wantType, qt)
			assert.Equal(t, tt.wantDifficulty, d)
			assert.Equal(t, tt.wantTopic, topic)
		})
	}
}

func TestQuizT_sendNewQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		f           func(*mock_bot.MockServiceI)
		wantText    string
		wantButtons []string
		wantSession bool
	}{
		{
			name: "multiple choice",
			text: "/quiz geography",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().NewQuiz(gomock.Any(), models.QuizMultipleChoice, models.DifficultyMedium, "geography").Return(mcQuiz, nil)
			},
			wantText:    "📝 Quiz: geography (Medium)\n\nCapital of France?\n\nA) Paris\nB) Lyon\nC) Nice\nD) Lille",
			wantButtons: []string{"quiz_s1_0", "quiz_s1_1", "quiz_s1_2", "quiz_s1_3"},
			wantSession: true,
		},
		{
			name: "true false",
			text: "/quiz tf hard go",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().NewQuiz(gomock.Any(), models.QuizTrueFalse, models.DifficultyHard, "go").Return(tfQuiz, nil)
			},
			wantText:    "📝 True/False: go (Hard)\n\nGo has generics.",
			wantButtons: []string{"quiz_s1_0", "quiz_s1_1"},
			wantSession: true,
		},
		{
			name: "fill in the blank has no buttons",
			text: "/quiz fill easy chemistry",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().NewQuiz(gomock.Any(), models.QuizFillBlank, models.DifficultyEasy, "chemistry").Return(fillQuiz, nil)
			},
			wantText:    "📝 Fill in the Blank: chemistry (Easy)\n\nWater is H2___\n\n💡 Type your answer in chat!",
			wantSession: true,
		},
		{
			name:     "missing topic",
			text:     "/quiz tf",
			wantText: "Usage: /quiz [mc|tf|fill] [easy|medium|hard] <topic>",
		},
		{
			name: "generation fails",
			text: "/quiz geography",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().NewQuiz(gomock.Any(), gomock.Any(), gomock.Any(), "geography").Return(models.Quiz{}, assert.AnError)
			},
			wantText: "⚠️ Error generating quiz. Please try again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			env := newTestEnv(t, ctrl)
			if tt.f != nil {
				tt.f(env.service)
			}

			env.api.handleCommand(context.Background(), command(tt.text))

			sent := env.bot.Sent()
			require.Len(t, sent, 1)
			msg, ok := sent[0].(tgbotapi.MessageConfig)
			require.True(t, ok)
			assert.Equal(t, tt.wantText, msg.Text)

			if tt.wantButtons != nil {
				keyboard, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				var data []string
				for _, row := range keyboard.InlineKeyboard {
					for _, b := range row {
						data = append(data, *b.CallbackData)
					}
				}
				assert.Equal(t, tt.wantButtons, data)
			} else {
				assert.Nil(t, msg.ReplyMarkup)
			}

			s, ok := env.sessions.Get("s1")
			assert.Equal(t, tt.wantSession, ok)
			if ok {
				assert.Equal(t, 1, s.Snapshot().MessageID)
				assert.Equal(t, time.Minute, env.firstTimeout())
			}
		})
	}
}

func TestQuizT_sendNewQuiz_sendFails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	env.bot.SendErr = errors.New("chat not found")
	env.service.EXPECT().NewQuiz(gomock.Any(), gomock.Any(), gomock.Any(), "geography").Return(mcQuiz, nil)

	env.api.handleCommand(context.Background(), command("/quiz geography"))

	_, ok := env.sessions.Get("s1")
	assert.False(t, ok)
}

func TestQuizT_processQuizAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		quiz       models.Quiz
		presses    []*tgbotapi.CallbackQuery
		f          func(*testEnv)
		wantNotice string
		wantText   string
	}{
		{
			name:    "correct answer",
			quiz:    mcQuiz,
			presses: []*tgbotapi.CallbackQuery{press(testUserID, "quiz_s1_0")},
			f: func(env *testEnv) {
				env.recorder.EXPECT().RecordQuiz(gomock.Any(), testUserID, "geography", true).Return(nil)
			},
			wantText: "✅ Correct!\n\nCapital of France?\n\nGreat job! The answer is: Paris",
		},
		{
			name:    "wrong answer",
			quiz:    mcQuiz,
			presses: []*tgbotapi.CallbackQuery{press(testUserID, "quiz_s1_2")},
			f: func(env *testEnv) {
				env.recorder.EXPECT().RecordQuiz(gomock.Any(), testUserID, "geography", false).Return(nil)
			},
			wantText: "❌ Incorrect\n\nCapital of France?\n\nThe correct answer is: Paris",
		},
		{
			name:     "true false shows capitalized verdict",
			quiz:     tfQuiz,
			presses:  []*tgbotapi.CallbackQuery{press(testUserID, "quiz_s1_1")},
			f:        func(env *testEnv) { env.recorder.EXPECT().RecordQuiz(gomock.Any(), testUserID, "go", false).Return(nil) },
			wantText: "❌ Incorrect\n\nGo has generics.\n\nThe correct answer is: True",
		},
		{
			name:       "someone else's quiz",
			quiz:       mcQuiz,
			presses:    []*tgbotapi.CallbackQuery{press(otherUser, "quiz_s1_0")},
			wantNotice: "This quiz is not for you!",
		},
		{
			name:    "second press",
			quiz:    mcQuiz,
			presses: []*tgbotapi.CallbackQuery{press(testUserID, "quiz_s1_0"), press(testUserID, "quiz_s1_1")},
			f: func(env *testEnv) {
				env.recorder.EXPECT().RecordQuiz(gomock.Any(), testUserID, "geography", true).Return(nil).Times(1)
			},
			wantNotice: "You already answered!",
		},
		{
			name:       "unknown session",
			quiz:       mcQuiz,
			presses:    []*tgbotapi.CallbackQuery{press(testUserID, "quiz_s9_0")},
			wantNotice: "This session is no longer active.",
		},
		{
			name:       "option out of range",
			quiz:       mcQuiz,
			presses:    []*tgbotapi.CallbackQuery{press(testUserID, "quiz_s1_7")},
			wantNotice: "⚠️ That action is not available right now.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			env := newTestEnv(t, ctrl)
			env.service.EXPECT().NewQuiz(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.quiz, nil)
			if tt.f != nil {
				tt.f(env)
			}

			env.api.handleCommand(context.Background(), command("/quiz "+tt.quiz.Topic))
			mock_bot.ClearSentMessages(env.bot)

			for _, q := range tt.presses {
				env.api.handleCallbackQuery(context.Background(), q)
			}

			notice := lastNotice(t, env.bot)
			assert.Equal(t, tt.wantNotice, notice.Text)
			assert.Equal(t, tt.wantNotice != "", notice.ShowAlert)

			if tt.wantText != "" {
				sent := env.bot.Sent()
				require.Len(t, sent, 1)
				edit, ok := sent[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.Equal(t, 1, edit.MessageID)
				assert.Nil(t, edit.ReplyMarkup)
				assert.Equal(t, tt.wantText, edit.Text)
			}
		})
	}
}

func TestQuizT_expiry(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	env.service.EXPECT().NewQuiz(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tfQuiz, nil)

	env.api.handleCommand(context.Background(), command("/quiz tf go"))
	mock_bot.ClearSentMessages(env.bot)

	require.True(t, env.sessions.Expire("s1"))
	assert.Equal(t, "⏰ Time's Up!\n\nGo has generics.\n\nThe correct answer was: True", lastText(t, env.bot))

	env.api.handleCallbackQuery(context.Background(), press(testUserID, "quiz_s1_0"))
	assert.Equal(t, "⏰ Time's up! This session has expired.", lastNotice(t, env.bot).Text)
}

func TestQuizT_processFillAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from     int64
		text     string
		f        func(*testEnv)
		wantText string
	}{
		{
			name: "normalized match",
			from: testUserID,
			text: " o. ",
			f: func(env *testEnv) {
				env.recorder.EXPECT().RecordQuiz(gomock.Any(), testUserID, "chemistry", true).Return(nil)
			},
			wantText: "✅ Correct!\n\nWater is H2___\n\nGreat job! The answer is: O",
		},
		{
			name: "wrong answer",
			from: testUserID,
			text: "O2",
			f: func(env *testEnv) {
				env.recorder.EXPECT().RecordQuiz(gomock.Any(), testUserID, "chemistry", false).Return(nil)
			},
			wantText: "❌ Incorrect\n\nWater is H2___\n\nThe correct answer is: O",
		},
		{
			name:     "other users are not answers",
			from:     otherUser,
			text:     "O",
			wantText: "I didn't get that. Use /help to see the commands.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			env := newTestEnv(t, ctrl)
			env.service.EXPECT().NewQuiz(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fillQuiz, nil)
			if tt.f != nil {
				tt.f(env)
			}

			env.api.handleCommand(context.Background(), command("/quiz fill chemistry"))
			env.api.handleMessage(context.Background(), textMessage(tt.from, tt.text))

			assert.Equal(t, tt.wantText, lastText(t, env.bot))
		})
	}
}
