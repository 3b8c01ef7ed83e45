package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/snakeye/telegram2foam/internal/template"
)

// dateLayout is the human-readable form substituted for {date} in the note
// template, e.g. "Monday, 2 January 2006".
const dateLayout = "Monday, 2 January 2006"

// EnsureNote creates the note's parent directories and, when the file does
// not exist or is empty, seeds it from the note template with {date}
// substituted. Calling it on an already seeded note is a no-op.
func EnsureNote(path string, localTime time.Time, noteTemplate string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("journal: ensure note dir: %w", err)
	}

	info, err := os.Stat(path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("journal: stat note: %w", err)
	}

	header := template.Render(noteTemplate, map[string]string{
		template.PlaceholderDate: localTime.Format(dateLayout),
	})
	header = template.EnsureTrailingNewline(header)

	if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
		return fmt.Errorf("journal: seed note: %w", err)
	}
	return nil
}

// AppendEntry appends an already rendered entry block to the note file.
func AppendEntry(path, entry string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("journal: open note for append: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("journal: append entry: %w", err)
	}
	return nil
}
