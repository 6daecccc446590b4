package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/llm"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/pkg/validator"
	"go.uber.org/zap"
)

var (
	multipleChoiceSchema = &llm.Schema{
		Name:        "quiz-multiple-choice",
		Description: "A multiple-choice question with its options and the correct option",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
				},
				"correct": map[string]any{"type": "string", "description": "the correct option from the list"},
			},
			"required": []any{"question", "options", "correct"},
		},
	}

	trueFalseSchema = &llm.Schema{
		Name:        "quiz-true-false",
		Description: "A true/false statement and whether it is true",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"correct":  map[string]any{"type": []any{"string", "boolean"}, "description": `"true" or "false"`},
			},
			"required": []any{"question", "correct"},
		},
	}

	fillBlankSchema = &llm.Schema{
		Name:        "quiz-fill-blank",
		Description: "A sentence with ___ for the blank and the word that fills it",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"answer":   map[string]any{"type": "string"},
			},
			"required": []any{"question", "answer"},
		},
	}
)

var (
	errCorrectNotInOptions = errors.New("correct answer is not one of the options")
	errDuplicateOptions    = errors.New("options are not unique")
	errUnknownQuizType     = errors.New("unknown quiz type")
)

// QuizS generates quiz questions and rejects malformed ones.
type QuizS struct {
	llm       llm.Provider
	retry     llm.RetryConfig
	maxTokens int
	log       *zap.Logger
}

func NewQuizService(provider llm.Provider, opts Options, log *zap.Logger) *QuizS {
	return &QuizS{
		llm:       provider,
		retry:     opts.Retry,
		maxTokens: opts.MaxTokens,
		log:       log,
	}
}

// NewQuiz asks the backend for a question, retrying while the backend fails
// or returns something that is not a usable quiz.
func (q *QuizS) NewQuiz(ctx context.Context, quizType models.QuizType, difficulty models.Difficulty, topic string) (models.Quiz, error) {
	req, err := quizRequest(quizType, difficulty, topic)
	if err != nil {
		return models.Quiz{}, err
	}
	req.MaxTokens = q.maxTokens

	ctx = llm.WithPurpose(ctx, "quiz")
	attempt := 0

	quiz, err := llm.Retry(ctx, q.retry, func(ctx context.Context) (models.Quiz, error) {
		attempt++
		resp, err := q.llm.Generate(ctx, req)
		if err != nil {
			return models.Quiz{}, err
		}
		return parseQuiz(quizType, resp)
	}, nil)
	if err != nil {
		q.log.Warn("failed to generate quiz",
			zap.String("topic", topic),
			zap.String("type", string(quizType)),
			zap.Int("attempts", attempt),
			zap.Error(err),
		)
		return models.Quiz{}, err
	}

	quiz.Topic = topic
	quiz.Difficulty = difficulty
	return quiz, nil
}

func quizRequest(quizType models.QuizType, difficulty models.Difficulty, topic string) (llm.Request, error) {
	var (
		prompt string
		schema *llm.Schema
	)

	switch quizType {
	case models.QuizMultipleChoice:
		prompt = fmt.Sprintf("Generate a %s multiple-choice question about '%s'. "+
			"Give exactly 4 distinct options and set correct to the text of the right option.", difficulty, topic)
		schema = multipleChoiceSchema
	case models.QuizTrueFalse:
		prompt = fmt.Sprintf("Generate a %s true/false question about '%s'. "+
			`Set correct to "true" or "false".`, difficulty, topic)
		schema = trueFalseSchema
	case models.QuizFillBlank:
		prompt = fmt.Sprintf("Generate a %s fill-in-the-blank question about '%s'. "+
			"Use ___ for the blank and put the missing word in answer.", difficulty, topic)
		schema = fillBlankSchema
	default:
		return llm.Request{}, fmt.Errorf("%w: %q", errUnknownQuizType, quizType)
	}

	req := llm.Prompt("You write short, unambiguous study quiz questions. Reply with JSON only.", prompt)
	req.Schema = schema
	return req, nil
}

func parseQuiz(quizType models.QuizType, resp *llm.Response) (models.Quiz, error) {
	switch quizType {
	case models.QuizMultipleChoice:
		var p models.MultipleChoicePayload
		if err := resp.Decode(&p); err != nil {
			return models.Quiz{}, err
		}
		if err := validateMultipleChoice(&p); err != nil {
			return models.Quiz{}, llm.Invalid(resp.Content, err)
		}
		return models.Quiz{Type: quizType, Question: p.Question, Options: p.Options, Correct: p.Correct}, nil

	case models.QuizTrueFalse:
		var p models.TrueFalsePayload
		if err := resp.Decode(&p); err != nil {
			return models.Quiz{}, err
		}
		p.Question = strings.TrimSpace(p.Question)
		if err := validator.ValidateStruct(p); err != nil {
			return models.Quiz{}, llm.Invalid(resp.Content, err)
		}
		return models.Quiz{Type: quizType, Question: p.Question, Options: []string{"true", "false"}, Correct: string(p.Correct)}, nil

	case models.QuizFillBlank:
		var p models.FillBlankPayload
		if err := resp.Decode(&p); err != nil {
			return models.Quiz{}, err
		}
		p.Question = strings.TrimSpace(p.Question)
		p.Answer = strings.TrimSpace(p.Answer)
		if err := validator.ValidateStruct(p); err != nil {
			return models.Quiz{}, llm.Invalid(resp.Content, err)
		}
		return models.Quiz{Type: quizType, Question: p.Question, Correct: p.Answer}, nil

	default:
		return models.Quiz{}, fmt.Errorf("%w: %q", errUnknownQuizType, quizType)
	}
}

// validateMultipleChoice trims the payload in place and checks that the
// correct answer is exactly one of the options.
func validateMultipleChoice(p *models.MultipleChoicePayload) error {
	p.Question = strings.TrimSpace(p.Question)
	p.Correct = strings.TrimSpace(p.Correct)
	for i := range p.Options {
		p.Options[i] = strings.TrimSpace(p.Options[i])
	}

	if err := validator.ValidateStruct(*p); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(p.Options))
	for _, o := range p.Options {
		if _, dup := seen[o]; dup {
			return errDuplicateOptions
		}
		seen[o] = struct{}{}
	}

	if !slices.Contains(p.Options, p.Correct) {
		return errCorrectNotInOptions
	}
	return nil
}
