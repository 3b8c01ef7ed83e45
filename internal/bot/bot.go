// Package bot wires the Telegram long-poll loop to the message handler.
package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snakeye/telegram2foam/internal/handler"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	handler  *handler.Handler
	interval time.Duration
	log      *slog.Logger
}

func New(token string, h *handler.Handler, pollInterval time.Duration, log *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, handler: h, interval: pollInterval, log: log}, nil
}

// Start polls for updates until ctx is cancelled. Each text message is
// handled to completion before the next one is read, so entries land in
// arrival order and the working tree sees one writer at a time.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds(b.interval)
	u.AllowedUpdates = []string{"message"}

	updates := b.api.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	b.log.Info("bot started", "account", b.api.Self.UserName, "poll_timeout_s", u.Timeout)

	for update := range updates {
		msg := update.Message
		if !journalable(msg) {
			continue
		}
		b.handler.Handle(ctx, toMessage(msg))
	}
}

// journalable reports whether an update should become a journal entry:
// text messages only, and never bot commands like /start.
func journalable(msg *tgbotapi.Message) bool {
	return msg != nil && msg.Text != "" && !msg.IsCommand()
}

// toMessage detaches a Telegram update from the library types. The message
// date arrives as UTC seconds; zone conversion happens in the handler.
func toMessage(msg *tgbotapi.Message) handler.Message {
	m := handler.Message{
		Text:   msg.Text,
		SentAt: msg.Time(),
	}
	if msg.From != nil {
		m.SenderName = strings.TrimSpace(strings.Join([]string{msg.From.FirstName, msg.From.LastName}, " "))
		m.SenderHandle = msg.From.UserName
	}
	return m
}

// pollTimeoutSeconds converts the configured interval into the getUpdates
// long-poll timeout, rounding down to whole seconds with a 1s floor.
func pollTimeoutSeconds(interval time.Duration) int {
	s := int(interval / time.Second)
	if s < 1 {
		s = 1
	}
	return s
}
