package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string   `validate:"required"`
	Options []string `validate:"min=2,dive,required"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{
			name: "valid",
			in:   sample{Name: "quiz", Options: []string{"a", "b"}},
		},
		{
			name:    "missing name",
			in:      sample{Options: []string{"a", "b"}},
			wantErr: "sample.Name, Tag: required",
		},
		{
			name:    "too few options",
			in:      sample{Name: "quiz", Options: []string{"a"}},
			wantErr: "sample.Options, Tag: min, Param: 2",
		},
		{
			name:    "empty option",
			in:      sample{Name: "quiz", Options: []string{"a", ""}},
			wantErr: "sample.Options[1], Tag: required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
