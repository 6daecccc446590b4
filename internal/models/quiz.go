package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type QuizType string

const (
	QuizMultipleChoice QuizType = "mc"
	QuizTrueFalse      QuizType = "tf"
	QuizFillBlank      QuizType = "fill"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Quiz is a validated question ready to be put in front of a user.
// Correct holds the option label, "true"/"false", or the blank's answer.
type Quiz struct {
	Type       QuizType
	Topic      string
	Difficulty Difficulty
	Question   string
	Options    []string
	Correct    string
}

type MultipleChoicePayload struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"min=2,dive,required"`
	Correct  string   `json:"correct" validate:"required"`
}

type TrueFalsePayload struct {
	Question string  `json:"question" validate:"required"`
	Correct  Verdict `json:"correct" validate:"oneof=true false"`
}

// Verdict is a true/false answer that decodes from either a JSON boolean or
// a string such as "True".
type Verdict string

func (v *Verdict) UnmarshalJSON(b []byte) error {
	var flag bool
	if err := json.Unmarshal(b, &flag); err == nil {
		*v = Verdict(fmt.Sprint(flag))
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("verdict must be a boolean or a string: %w", err)
	}
	*v = Verdict(strings.ToLower(strings.TrimSpace(s)))
	return nil
}

type FillBlankPayload struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}
