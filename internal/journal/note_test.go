package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/snakeye/telegram2foam/internal/template"
)

func TestEnsureNoteSeedsNewFile(t *testing.T) {
	ts := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "2024", "03", "04", "note.md")

	if err := EnsureNote(path, ts, template.DefaultNote); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "Monday, 4 March 2024") {
		t.Fatalf("date not substituted: %q", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Fatalf("seeded note lacks trailing newline: %q", content)
	}
}

func TestEnsureNoteIdempotent(t *testing.T) {
	ts := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "note.md")

	if err := EnsureNote(path, ts, template.DefaultNote); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := EnsureNote(path, ts, template.DefaultNote); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Fatalf("second call rewrote the note:\nfirst: %q\nsecond: %q", first, second)
	}
	if n := strings.Count(string(second), "title:"); n != 1 {
		t.Fatalf("header written %d times", n)
	}
}

func TestEnsureNoteSeedsEmptyFile(t *testing.T) {
	ts := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := EnsureNote(path, ts, template.DefaultNote); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("empty note was not seeded")
	}
}

func TestEnsureNoteAddsMissingNewline(t *testing.T) {
	ts := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "note.md")

	if err := EnsureNote(path, ts, "# {date}"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# Monday, 4 March 2024\n" {
		t.Fatalf("got %q", data)
	}
}

func TestAppendEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, []byte("header\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := AppendEntry(path, "one\n"); err != nil {
		t.Fatal(err)
	}
	if err := AppendEntry(path, "two\n"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "header\none\ntwo\n" {
		t.Fatalf("got %q", data)
	}
}
