// Package git shells out to the git command line tool and interprets exit
// codes. It deliberately knows nothing about repository state beyond
// success or failure of each command.
package git

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Syncer is the surface the message pipeline needs from version control.
// Implementations must run commands synchronously.
type Syncer interface {
	ConfigureIdentity(ctx context.Context, name, email string) error
	Pull(ctx context.Context) error
	Add(ctx context.Context, path string) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
}

// Gateway implements Syncer over the external git binary, executing every
// command with the repository root as working directory.
type Gateway struct {
	gitPath  string
	repoRoot string
	log      *slog.Logger
}

// New locates the git binary and returns a Gateway for repoRoot.
func New(repoRoot string, log *slog.Logger) (*Gateway, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("git not found in PATH: %w", err)
	}
	return &Gateway{gitPath: gitPath, repoRoot: repoRoot, log: log}, nil
}

// newWithBinary is used by tests to substitute the executable.
func newWithBinary(bin, repoRoot string, log *slog.Logger) *Gateway {
	return &Gateway{gitPath: bin, repoRoot: repoRoot, log: log}
}

// run executes git with args, capturing combined stdout and stderr. On a
// non-zero exit the full output is logged at error level; on success any
// non-empty output is logged at info level.
func (g *Gateway) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, g.gitPath, args...)
	cmd.Dir = g.repoRoot

	output, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(output))
	if err != nil {
		g.log.Error("git command failed",
			"args", strings.Join(args, " "), "output", text, "error", err)
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	if text != "" {
		g.log.Info("git "+args[0], "output", text)
	}
	return nil
}

// ConfigureIdentity sets user.name and user.email for the repository. Both
// commands must succeed.
func (g *Gateway) ConfigureIdentity(ctx context.Context, name, email string) error {
	if err := g.run(ctx, "config", "user.name", name); err != nil {
		return err
	}
	return g.run(ctx, "config", "user.email", email)
}

func (g *Gateway) Pull(ctx context.Context) error {
	return g.run(ctx, "pull", "--rebase")
}

func (g *Gateway) Add(ctx context.Context, path string) error {
	return g.run(ctx, "add", path)
}

func (g *Gateway) Commit(ctx context.Context, message string) error {
	return g.run(ctx, "commit", "-m", message)
}

func (g *Gateway) Push(ctx context.Context) error {
	return g.run(ctx, "push")
}
