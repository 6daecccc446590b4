package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/bot"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/config"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/llm"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/repository"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/server"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/service"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/session"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/storage/cache"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/storage/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var rootCmd = &cobra.Command{
	Use:   "studybot",
	Short: "AI study companion for Telegram",
	Long:  "studybot answers study questions, runs quizzes, flashcard reviews and Pomodoro timers in Telegram chats.",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("config")
		return run(cmd.Context(), name)
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("studybot", version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", os.Getenv("CONFIG_NAME"),
		"config name under configs/ or path to a YAML file (overrides CONFIG_NAME)")
	rootCmd.AddCommand(versionCmd)
}

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func run(ctx context.Context, configName string) error {
	cfg, err := config.Load(configName)
	if err != nil {
		return fmt.Errorf("failed load config: %w", err)
	}

	logger := setupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Error("failed init db", zap.Error(err))
		return err
	}
	defer database.Close()

	repos := repository.NewRepository(database)

	provider, err := llm.NewProvider(ctx, cfg.LLM, logger)
	if err != nil {
		logger.Error("failed init llm provider", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
		return err
	}

	history := cache.NewCache(cfg.App.HistorySize)

	services := service.InitServices(provider, repos, history, service.Options{
		MaxTokens: cfg.LLM.MaxTokens,
		Retry:     llm.RetryConfigFrom(cfg.LLM.Retry),
	}, logger)

	sessions := session.NewManager(services, logger,
		session.WithRetention(cfg.App.SessionRetention),
		session.WithPauseLimit(cfg.App.PauseLimit),
	)

	handler, err := bot.NewTelegramAPI(cfg, services, sessions, logger)
	if err != nil {
		logger.Error("failed init telegram bot", zap.Error(err))
		return err
	}
	sessions.SetListener(handler.Notifier())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		router := server.NewRouter(server.NewHealthHandler(sessions), cfg.Env)
		return server.Run(gctx, cfg.Health.Addr, router, logger)
	})

	g.Go(func() error {
		logger.Info("bot started", zap.String("llm_provider", cfg.LLM.Provider), zap.String("model", provider.ModelID()))
		return handler.Start(gctx)
	})

	err = g.Wait()
	logger.Info("bot stopped", zap.Error(err))
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
