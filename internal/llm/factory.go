package llm

import (
	"context"
	"fmt"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/config"
	"go.uber.org/zap"
)

// NewProvider builds the configured backend, bounded by the configured
// timeout and wrapped with call logging.
func NewProvider(ctx context.Context, cfg config.LLMConfig, log *zap.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, GeminiConfig{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model})
	case "openai":
		base, err = NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		})
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(WithTimeout(base, cfg.Timeout), log.With(zap.String("provider", cfg.Provider))), nil
}

func RetryConfigFrom(cfg config.RetryConfig) RetryConfig {
	return RetryConfig{
		MaxAttempts: cfg.MaxAttempts,
		InitialWait: cfg.InitialWait,
		MaxWait:     cfg.MaxWait,
		Multiplier:  cfg.Multiplier,
	}
}

// resolveModel maps a friendly name to a model ID. Unknown names pass
// through; an empty name selects fallback.
func resolveModel(name, fallback string, models map[string]string) string {
	if name == "" {
		return fallback
	}
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
