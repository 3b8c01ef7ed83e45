package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/snakeye/telegram2foam/internal/bot"
	"github.com/snakeye/telegram2foam/internal/config"
	"github.com/snakeye/telegram2foam/internal/git"
	"github.com/snakeye/telegram2foam/internal/handler"
	"github.com/snakeye/telegram2foam/internal/scheduler"
	"github.com/snakeye/telegram2foam/internal/template"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(".env"); err != nil {
		logger.Warn(".env file not found", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	noteTemplate := template.Load(cfg.NoteTemplatePath, template.DefaultNote, logger)
	messageTemplate := template.Load(cfg.MessageTemplatePath, template.DefaultMessage, logger)
	template.CheckPlaceholders("note", noteTemplate,
		[]string{template.PlaceholderDate}, logger)
	template.CheckPlaceholders("message", messageTemplate,
		[]string{template.PlaceholderTime, template.PlaceholderText, template.PlaceholderAuthorBlock}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gateway, err := git.New(cfg.RepoRoot, logger)
	if err != nil {
		logger.Error("failed to init git gateway", "error", err)
		os.Exit(1)
	}
	if err := gateway.ConfigureIdentity(ctx, cfg.GitAuthorName, cfg.GitAuthorEmail); err != nil {
		logger.Error("failed to configure git identity", "error", err)
		os.Exit(1)
	}

	h := handler.New(cfg.RepoRoot, cfg.JournalRoot, cfg.Location,
		noteTemplate, messageTemplate, gateway, logger)

	sched := scheduler.New(cfg.Location, h.Sync, logger)
	if err := sched.Start(ctx, cfg.SyncSchedule); err != nil {
		logger.Error("failed to start sync scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	b, err := bot.New(cfg.Token, h, cfg.PollInterval, logger)
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	logger.Info("starting bot", "journal_root", cfg.JournalRoot, "timezone", cfg.Location.String())
	b.Start(ctx)
}
