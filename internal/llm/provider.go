// Package llm talks to the generative backend that answers study questions
// and produces quizzes and flashcards.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider generates text, or JSON when the request carries a schema.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for JSON output and the response is checked
	// against it before being returned.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema definition with a name used for caching and by
// providers that label structured output.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content string
	Usage   Usage
	Model   string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Prompt builds a single-turn request.
func Prompt(system, text string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: text}},
	}
}

// Decode unmarshals a structured response into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal([]byte(r.Content), v); err != nil {
		return &ValidationError{Content: r.Content, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
