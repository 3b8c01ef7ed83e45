package journal

import (
	"strings"
	"time"

	"github.com/snakeye/telegram2foam/internal/template"
)

// AuthorLabel joins a sender's display name and @-prefixed handle into one
// attribution label. Empty parts are omitted; an empty result means the
// entry carries no author.
func AuthorLabel(name, handle string) string {
	parts := make([]string, 0, 2)
	if name != "" {
		parts = append(parts, name)
	}
	if handle != "" {
		parts = append(parts, "@"+handle)
	}
	return strings.Join(parts, " ")
}

// FormatEntry renders one message into the block appended to the daily
// note. The author, when present, becomes a trailing "from:" fragment via
// {author_block}; without an author the placeholder renders empty.
func FormatEntry(text, author string, localTime time.Time, messageTemplate string) string {
	authorBlock := ""
	if author != "" {
		authorBlock = "\n\nfrom: " + author
	}

	entry := template.Render(messageTemplate, map[string]string{
		template.PlaceholderTime:        localTime.Format("15:04"),
		template.PlaceholderText:        strings.TrimSpace(text),
		template.PlaceholderAuthorBlock: authorBlock,
	})
	return template.EnsureTrailingNewline(entry)
}
