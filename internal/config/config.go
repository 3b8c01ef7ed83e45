package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// JournalDir is the fixed subdirectory of the repository that holds daily
// notes. It is deliberately not configurable so every deployment produces
// the same repository layout.
const JournalDir = "journal"

// rawConfig mirrors the environment variable surface, including the legacy
// alias names. It is flattened into Config by Load.
type rawConfig struct {
	Token    string `env:"TELEGRAM_BOT_TOKEN"`
	TokenAlt string `env:"TELEGRAM_TOKEN"`

	GitName     string `env:"GIT_AUTHOR_NAME"`
	GitNameAlt  string `env:"GIT_USER_NAME"`
	GitEmail    string `env:"GIT_AUTHOR_EMAIL"`
	GitEmailAlt string `env:"GIT_USER_EMAIL"`

	RepoRoot     string `env:"REPO_ROOT"`
	TemplatesDir string `env:"TEMPLATES_DIR"`
	NotePath     string `env:"NOTE_TEMPLATE_PATH"`
	MessagePath  string `env:"MESSAGE_TEMPLATE_PATH"`

	PollInterval  float64 `env:"POLL_INTERVAL" envDefault:"10"`
	LocalTimezone string  `env:"LOCAL_TIMEZONE"`
	SyncSchedule  string  `env:"SYNC_SCHEDULE"`
}

// Config holds all settings the bot needs. It is built once at startup and
// never mutated afterwards.
type Config struct {
	Token string

	RepoRoot    string
	JournalRoot string

	GitAuthorName  string
	GitAuthorEmail string

	NoteTemplatePath    string
	MessageTemplatePath string

	PollInterval time.Duration
	Location     *time.Location
	SyncSchedule string
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Token, validation.Required),
		validation.Field(&c.GitAuthorName, validation.Required),
		validation.Field(&c.GitAuthorEmail, validation.Required),
		validation.Field(&c.RepoRoot, validation.Required),
		validation.Field(&c.PollInterval, validation.Required, validation.Min(time.Duration(0))),
	)
}

// Load reads the environment into a validated Config. An error here is a
// startup failure: the process must not begin polling.
func Load() (*Config, error) {
	raw := &rawConfig{}
	if err := env.Parse(raw); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	repoRoot := raw.RepoRoot
	if repoRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		repoRoot = wd
	}

	templatesDir := raw.TemplatesDir
	if templatesDir == "" {
		templatesDir = filepath.Join(repoRoot, "templates")
	}
	notePath := raw.NotePath
	if notePath == "" {
		notePath = filepath.Join(templatesDir, "note.md")
	}
	messagePath := raw.MessagePath
	if messagePath == "" {
		messagePath = filepath.Join(templatesDir, "message.md")
	}

	loc, err := resolveLocation(raw.LocalTimezone)
	if err != nil {
		return nil, err
	}

	interval := raw.PollInterval
	if interval <= 0 {
		interval = 10
	}

	cfg := &Config{
		Token:               firstNonEmpty(raw.Token, raw.TokenAlt),
		RepoRoot:            repoRoot,
		JournalRoot:         filepath.Join(repoRoot, JournalDir),
		GitAuthorName:       firstNonEmpty(raw.GitName, raw.GitNameAlt),
		GitAuthorEmail:      firstNonEmpty(raw.GitEmail, raw.GitEmailAlt),
		NoteTemplatePath:    notePath,
		MessageTemplatePath: messagePath,
		PollInterval:        time.Duration(interval * float64(time.Second)),
		Location:            loc,
		SyncSchedule:        raw.SyncSchedule,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// resolveLocation maps an IANA zone name to a location. An empty name means
// the system-local zone; an unresolvable system zone degrades to UTC.
func resolveLocation(name string) (*time.Location, error) {
	if name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
		}
		return loc, nil
	}
	if loc := time.Now().Location(); loc != nil {
		return loc, nil
	}
	return time.UTC, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
