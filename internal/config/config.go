package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig    `mapstructure:"app" validate:"required"`
	BotToken string       `mapstructure:"bot_token" validate:"required"`
	LLM      LLMConfig    `mapstructure:"llm" validate:"required"`
	DB       DBConfig     `mapstructure:"db" validate:"required"`
	Health   HealthConfig `mapstructure:"health"`
	Env      string       `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	RequestTimeout   time.Duration `mapstructure:"request_timeout" validate:"min=1"`
	QuizTimeout      time.Duration `mapstructure:"quiz_timeout" validate:"min=1"`
	FlashcardTimeout time.Duration `mapstructure:"flashcard_timeout" validate:"min=1"`
	PomodoroDefault  time.Duration `mapstructure:"pomodoro_default" validate:"min=1"`
	SessionRetention time.Duration `mapstructure:"session_retention" validate:"min=0"`
	PauseLimit       time.Duration `mapstructure:"pomodoro_pause_limit" validate:"min=0"`
	HistorySize      int           `mapstructure:"history_size" validate:"min=1,max=100"`
}

type LLMConfig struct {
	Provider  string        `mapstructure:"provider" validate:"oneof=gemini openai mock"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"min=1"`
	MaxTokens int           `mapstructure:"max_tokens" validate:"min=0"`
	Gemini    ModelConfig   `mapstructure:"gemini"`
	OpenAI    ModelConfig   `mapstructure:"openai"`
	Retry     RetryConfig   `mapstructure:"retry"`
}

type ModelConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"min=1,max=10"`
	InitialWait time.Duration `mapstructure:"initial_wait" validate:"min=0"`
	MaxWait     time.Duration `mapstructure:"max_wait" validate:"min=0"`
	Multiplier  float64       `mapstructure:"multiplier" validate:"min=1"`
}

type DBConfig struct {
	DSN string `mapstructure:"dsn" validate:"required"`
	Cfg DBCfg  `mapstructure:"cfg"`
}

// DBCfg keeps at least one idle connection: an in-memory database lives only
// as long as its connection does. With ":memory:" every new connection opens
// a separate empty database, so only one never-recycled connection is allowed.
type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=1,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type HealthConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")

	v.SetDefault("app.request_timeout", 30*time.Second)
	v.SetDefault("app.quiz_timeout", 60*time.Second)
	v.SetDefault("app.flashcard_timeout", 120*time.Second)
	v.SetDefault("app.pomodoro_default", 25*time.Minute)
	v.SetDefault("app.session_retention", 10*time.Minute)
	v.SetDefault("app.pomodoro_pause_limit", time.Hour)
	v.SetDefault("app.history_size", 10)

	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("llm.max_tokens", 2048)
	v.SetDefault("llm.gemini.model", "gemini-2.5-flash")
	v.SetDefault("llm.openai.model", "gpt-4o-mini")
	v.SetDefault("llm.retry.max_attempts", 3)
	v.SetDefault("llm.retry.initial_wait", time.Duration(0))
	v.SetDefault("llm.retry.max_wait", 2*time.Second)
	v.SetDefault("llm.retry.multiplier", 2.0)

	v.SetDefault("db.dsn", memoryDSN)
	v.SetDefault("db.cfg.max_open_conns", 1)
	v.SetDefault("db.cfg.max_idle_conns", 1)

	v.SetDefault("health.addr", ":8080")
}

// Init loads configs/<CONFIG_NAME>.yaml (default "default") and overlays the
// environment. A missing file is not an error: defaults plus env suffice.
func Init() (*Config, error) {
	return Load(os.Getenv("CONFIG_NAME"))
}

// Load is Init with an explicit config. name is either a config name looked
// up under configs/ or a path to a YAML file.
func Load(name string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()
	setDefaults(v)

	switch {
	case name == "":
		v.AddConfigPath("configs")
		v.SetConfigName("default")
	case strings.ContainsRune(name, filepath.Separator) || filepath.Ext(name) != "":
		v.SetConfigFile(name)
	default:
		v.AddConfigPath("configs")
		v.SetConfigName(name)
	}

	bindings := map[string]string{
		"bot_token":           "BOT_TOKEN",
		"env":                 "APP_ENV",
		"llm.provider":        "LLM_PROVIDER",
		"llm.gemini.api_key":  "GEMINI_API_KEY",
		"llm.gemini.model":    "GEMINI_MODEL",
		"llm.openai.api_key":  "OPENAI_API_KEY",
		"llm.openai.model":    "OPENAI_MODEL",
		"llm.openai.base_url": "OPENAI_BASE_URL",
		"health.addr":         "HEALTH_ADDR",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if err := cfg.LLM.check(); err != nil {
		return nil, err
	}

	if err := cfg.DB.check(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c LLMConfig) check() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return errors.New("GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return errors.New("OPENAI_API_KEY is required for the openai provider")
		}
	}
	return nil
}

const memoryDSN = ":memory:"

func (c DBConfig) check() error {
	if c.DSN != memoryDSN {
		return nil
	}
	if c.Cfg.MaxOpenConns != 1 {
		return fmt.Errorf("db.cfg.max_open_conns must be 1 for %s, got %d", memoryDSN, c.Cfg.MaxOpenConns)
	}
	if c.Cfg.ConnMaxLifeTime != 0 || c.Cfg.ConnMaxIdleTime != 0 {
		return fmt.Errorf("db.cfg connection lifetimes must be 0 for %s", memoryDSN)
	}
	return nil
}
