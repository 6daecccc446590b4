package service

import (
	"context"
	"fmt"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/llm"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	"go.uber.org/zap"
)

const (
	tutorPrompt = "You are a patient study tutor. Answer clearly and accurately, " +
		"using plain text with short paragraphs or numbered steps."

	historyShown = 5
)

type PracticeRI interface {
	AddPractice(ctx context.Context, userID int64) error
}

// StudyS answers one-shot study questions.
type StudyS struct {
	llm       llm.Provider
	repo      PracticeRI
	history   HistoryI
	maxTokens int
	log       *zap.Logger
}

func NewStudyService(provider llm.Provider, repo PracticeRI, history HistoryI, opts Options, log *zap.Logger) *StudyS {
	return &StudyS{
		llm:       provider,
		repo:      repo,
		history:   history,
		maxTokens: opts.MaxTokens,
		log:       log,
	}
}

func (s *StudyS) ask(ctx context.Context, purpose, prompt string) (string, error) {
	req := llm.Prompt(tutorPrompt, prompt)
	req.MaxTokens = s.maxTokens

	resp, err := s.llm.Generate(llm.WithPurpose(ctx, purpose), req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", purpose, err)
	}
	return resp.Content, nil
}

// Solve answers question and records the exchange in the chat's history.
func (s *StudyS) Solve(ctx context.Context, chatID int64, question string) (string, error) {
	answer, err := s.ask(ctx, "solve", question)
	if err != nil {
		return "", err
	}

	s.history.AddQA(chatID, models.QA{Question: question, Answer: answer})
	return answer, nil
}

func (s *StudyS) Explain(ctx context.Context, topic string) (string, error) {
	return s.ask(ctx, "explain", fmt.Sprintf("Explain '%s' step by step for learning purposes.", topic))
}

func (s *StudyS) Define(ctx context.Context, term string) (string, error) {
	return s.ask(ctx, "define", fmt.Sprintf("Define '%s' concisely.", term))
}

func (s *StudyS) Math(ctx context.Context, problem string) (string, error) {
	return s.ask(ctx, "math", fmt.Sprintf(
		"Solve this math problem step by step: %s\nShow all work and explain each step clearly.", problem))
}

func (s *StudyS) Science(ctx context.Context, question string) (string, error) {
	return s.ask(ctx, "science", fmt.Sprintf(
		"Explain this science concept in detail: %s\nInclude examples and key principles.", question))
}

// Practice generates a practice problem and counts it for the user.
func (s *StudyS) Practice(ctx context.Context, userID int64, subject, topic string) (string, error) {
	problem, err := s.ask(ctx, "practice", fmt.Sprintf(
		"Create a practice problem for %s on the topic of %s. "+
			"Include the problem and a detailed step-by-step solution.", subject, topic))
	if err != nil {
		return "", err
	}

	if err := s.repo.AddPractice(ctx, userID); err != nil {
		s.log.Warn("failed to count practice", zap.Int64("user_id", userID), zap.Error(err))
	}
	return problem, nil
}

func (s *StudyS) StudyTips(ctx context.Context, subject string) (string, error) {
	prompt := "Provide general study tips and strategies for academic success."
	if subject != "" {
		prompt = fmt.Sprintf("Provide effective study tips and strategies specifically for %s.", subject)
	}
	return s.ask(ctx, "studytips", prompt)
}

func (s *StudyS) Summarize(ctx context.Context, content string) (string, error) {
	return s.ask(ctx, "summarize", fmt.Sprintf(
		"Provide a clear, concise summary of: %s\nHighlight the key points.", content))
}

func (s *StudyS) Compare(ctx context.Context, a, b string) (string, error) {
	return s.ask(ctx, "compare", fmt.Sprintf(
		"Compare and contrast '%s' and '%s'. Show similarities, differences, and key distinctions.", a, b))
}

// History returns the chat's most recent exchanges, oldest first.
func (s *StudyS) History(chatID int64) []models.QA {
	return s.history.History(chatID, historyShown)
}
