package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizSchema() *Schema {
	return &Schema{
		Name: "test-quiz",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
				},
				"correct": map[string]any{"type": "string"},
			},
			"required": []string{"question", "options", "correct"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		schema  *Schema
		raw     string
		want    string
		wantErr bool
	}{
		{
			name:   "valid",
			schema: quizSchema(),
			raw:    `{"question":"Capital of France?","options":["Paris","Lyon"],"correct":"Paris"}`,
			want:   `{"question":"Capital of France?","options":["Paris","Lyon"],"correct":"Paris"}`,
		},
		{
			name:   "fenced",
			schema: quizSchema(),
			raw:    "```json\n{\"question\":\"q\",\"options\":[\"a\",\"b\"],\"correct\":\"a\"}\n```",
			want:   `{"question":"q","options":["a","b"],"correct":"a"}`,
		},
		{
			name:    "missing required",
			schema:  quizSchema(),
			raw:     `{"question":"q","options":["a","b"]}`,
			wantErr: true,
		},
		{
			name:    "too few options",
			schema:  quizSchema(),
			raw:     `{"question":"q","options":["a"],"correct":"a"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			schema:  quizSchema(),
			raw:     "Sure! Here is your quiz.",
			wantErr: true,
		},
		{
			name:   "no schema keeps text",
			schema: nil,
			raw:    "  plain answer \n",
			want:   "plain answer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validateResponse(tt.schema, tt.raw)
			if tt.wantErr {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.raw, vErr.Content)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"{}":                     "{}",
		"```\n{}\n```":           "{}",
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```json{}```":           "{}",
		"  ```JSON\n[]\n```  ":   "[]",
	}

	for in, want := range tests {
		assert.Equal(t, want, StripCodeFence(in), "input %q", in)
	}
}
