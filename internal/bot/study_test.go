package bot

import (
	"context"
	"strings"
	"testing"

	mock_bot "github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/bot/mock"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyT_oneShot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		f        func(*mock_bot.MockServiceI)
		wantText string
	}{
		{
			name: "solve",
			text: "/solve what is 2+2?",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Solve(gomock.Any(), testChatID, "what is 2+2?").Return("4", nil)
			},
			wantText: "📘 Answer\n\n4",
		},
		{
			name:     "solve without question",
			text:     "/solve",
			wantText: "Usage: /solve <question>",
		},
		{
			name: "solve fails",
			text: "/solve anything",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Solve(gomock.Any(), testChatID, "anything").Return("", assert.AnError)
			},
			wantText: "⚠️ Something went wrong. Please try again later.",
		},
		{
			name: "explain",
			text: "/explain recursion",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Explain(gomock.Any(), "recursion").Return("see recursion", nil)
			},
			wantText: "📝 Explanation\n\nsee recursion",
		},
		{
			name: "define",
			text: "/define entropy",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Define(gomock.Any(), "entropy").Return("", assert.AnError)
			},
			wantText: "⚠️ Could not fetch definition.",
		},
		{
			name: "math",
			text: "/math 3x = 9",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Math(gomock.Any(), "3x = 9").Return("x = 3", nil)
			},
			wantText: "🔢 Math Solution\n\nx = 3",
		},
		{
			name: "science",
			text: "/science why is the sky blue",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Science(gomock.Any(), "why is the sky blue").Return("Rayleigh scattering", nil)
			},
			wantText: "🔬 Science Explanation\n\nRayleigh scattering",
		},
		{
			name: "practice",
			text: "/practice Physics | kinematics",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Practice(gomock.Any(), testUserID, "Physics", "kinematics").Return("A ball is thrown...", nil)
			},
			wantText: "📚 Practice: Physics\n\nA ball is thrown...",
		},
		{
			name:     "practice without topic",
			text:     "/practice Physics",
			wantText: "Usage: /practice <subject> | <topic>",
		},
		{
			name: "study tips without subject",
			text: "/studytips",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().StudyTips(gomock.Any(), "").Return("sleep well", nil)
			},
			wantText: "💡 Study Tips\n\nsleep well",
		},
		{
			name: "summarize",
			text: "/summarize the french revolution",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Summarize(gomock.Any(), "the french revolution").Return("1789", nil)
			},
			wantText: "📋 Summary\n\n1789",
		},
		{
			name: "compare with vs",
			text: "/compare mitosis vs meiosis",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Compare(gomock.Any(), "mitosis", "meiosis").Return("both divide", nil)
			},
			wantText: "⚖️ Comparison\n\nboth divide",
		},
		{
			name:     "compare needs two concepts",
			text:     "/compare mitosis",
			wantText: "Usage: /compare <first> | <second>",
		},
		{
			name:     "unknown command",
			text:     "/dance",
			wantText: "Unknown command. Use /help to see what I can do.",
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

			require.Len(t, env.bot.Sent(), 1)
			assert.Equal(t, tt.wantText, lastText(t, env.bot))
		})
	}
}

func TestStudyT_longAnswerIsSplit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)
	answer := strings.Repeat("step\n", 2000)
	env.service.EXPECT().Explain(gomock.Any(), "everything").Return(answer, nil)

	env.api.handleCommand(context.Background(), command("/explain everything"))

	sent := env.bot.Sent()
	require.Greater(t, len(sent), 1)

	var sb strings.Builder
	for _, c := range sent {
		sb.WriteString(c.(tgbotapi.MessageConfig).Text)
	}
	assert.Equal(t, "📝 Explanation\n\n"+answer, sb.String())
}

func TestStudyT_history(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		history  []models.QA
		wantText string
	}{
		{
			name:     "empty",
			wantText: "📜 No history available.",
		},
		{
			name:     "recent exchanges",
			history:  []models.QA{{Question: "q1", Answer: "a1"}, {Question: "q2", Answer: "a2"}},
			wantText: "📜 Recent Q&A\n\nQ: q1\nA: a1\n\nQ: q2\nA: a2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			env := newTestEnv(t, ctrl)
			env.service.EXPECT().History(testChatID).Return(tt.history)

			env.api.handleCommand(context.Background(), command("/history"))

			assert.Equal(t, tt.wantText, lastText(t, env.bot))
		})
	}
}

func TestSplitPair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args   string
		wantA  string
		wantB  string
		wantOK bool
	}{
		{args: "Math | algebra", wantA: "Math", wantB: "algebra", wantOK: true},
		{args: "Computer Science|graph theory | trees", wantA: "Computer Science", wantB: "graph theory | trees", wantOK: true},
		{args: "cats VS dogs", wantA: "cats", wantB: "dogs", wantOK: true},
		{args: "TCP vs. UDP", wantA: "TCP", wantB: "UDP", wantOK: true},
		{args: "| algebra"},
		{args: "algebra"},
		{args: ""},
	}
	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			t.Parallel()

			a, b, ok := splitPair(tt.args, pipeSeparator, vsSeparator)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantA, a)
			assert.Equal(t, tt.wantB, b)
		})
	}
}
