// Package handler owns the per-message pipeline: sync the repository,
// seed the daily note, append the entry, then stage, commit and push it.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/snakeye/telegram2foam/internal/git"
	"github.com/snakeye/telegram2foam/internal/journal"
)

// Message is one incoming text message, already detached from the
// transport library. SenderName and SenderHandle may be empty.
type Message struct {
	Text         string
	SentAt       time.Time
	SenderName   string
	SenderHandle string
}

// Handler processes messages one at a time. The mutex also serializes the
// periodic sync job against the message pipeline, since both touch the
// same working tree.
type Handler struct {
	repoRoot        string
	journalRoot     string
	location        *time.Location
	noteTemplate    string
	messageTemplate string
	syncer          git.Syncer
	log             *slog.Logger

	mu sync.Mutex
}

func New(repoRoot, journalRoot string, location *time.Location, noteTemplate, messageTemplate string, syncer git.Syncer, log *slog.Logger) *Handler {
	return &Handler{
		repoRoot:        repoRoot,
		journalRoot:     journalRoot,
		location:        location,
		noteTemplate:    noteTemplate,
		messageTemplate: messageTemplate,
		syncer:          syncer,
		log:             log,
	}
}

// Handle runs the full pipeline for one message. Failures never propagate:
// git errors abort the remaining steps (the gateway has already logged
// them), filesystem errors are logged here, and panics are contained so
// the polling loop keeps running.
func (h *Handler) Handle(ctx context.Context, msg Message) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("panic while processing message",
				"panic", r, "stack", string(debug.Stack()))
		}
	}()

	if strings.TrimSpace(msg.Text) == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	localTime := msg.SentAt.In(h.location)
	notePath := journal.NotePath(h.journalRoot, localTime)

	if err := h.syncer.Pull(ctx); err != nil {
		return
	}

	if err := journal.EnsureNote(notePath, localTime, h.noteTemplate); err != nil {
		h.log.Error("failed to initialize note", "path", notePath, "error", err)
		return
	}

	author := journal.AuthorLabel(msg.SenderName, msg.SenderHandle)
	entry := journal.FormatEntry(msg.Text, author, localTime, h.messageTemplate)
	if err := journal.AppendEntry(notePath, entry); err != nil {
		h.log.Error("failed to append entry", "path", notePath, "error", err)
		return
	}

	if err := h.syncer.Add(ctx, h.pathForAdd(notePath)); err != nil {
		return
	}

	commitMsg := fmt.Sprintf("note: telegram %s", localTime.Format("2006-01-02 15:04"))
	if err := h.syncer.Commit(ctx, commitMsg); err != nil {
		return
	}

	if err := h.syncer.Push(ctx); err != nil {
		// The entry is on disk and committed locally; only the remote
		// is behind. The gateway has already logged the failure.
		return
	}

	h.log.Info("journal entry recorded", "path", notePath, "time", localTime.Format("15:04"))
}

// Sync runs a pull on its own, used by the scheduled sync job. It takes
// the same lock as Handle so it never interleaves with a message.
func (h *Handler) Sync(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.syncer.Pull(ctx)
}

// pathForAdd hands git a path relative to the repository root whenever the
// note lives inside it.
func (h *Handler) pathForAdd(notePath string) string {
	rel, err := filepath.Rel(h.repoRoot, notePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return notePath
	}
	return rel
}
