// Package template loads note and message templates and renders their
// {placeholder} tokens.
package template

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Built-in fallbacks used when no override file is readable.
const (
	DefaultNote = `---
title: {date}
---
`
	DefaultMessage = `## {time}

{text}{author_block}
`
)

// Placeholder names understood by the renderer.
const (
	PlaceholderDate        = "date"
	PlaceholderTime        = "time"
	PlaceholderText        = "text"
	PlaceholderAuthorBlock = "author_block"
)

// Load returns the contents of path, or fallback if the file is missing or
// unreadable. Read failures are never fatal.
func Load(path, fallback string, log *slog.Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("template not found, using built-in default", "path", path, "error", err)
		return fallback
	}
	return string(data)
}

// Render substitutes {key} tokens from values. Tokens without a matching
// key are left in the output untouched.
func Render(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// CheckPlaceholders warns once at startup when a template does not mention
// a placeholder the renderer will try to fill. The template is still used;
// an operator may leave placeholders out on purpose.
func CheckPlaceholders(name, tmpl string, expected []string, log *slog.Logger) {
	for _, p := range expected {
		if !strings.Contains(tmpl, "{"+p+"}") {
			log.Warn("template is missing a placeholder",
				"template", name, "placeholder", fmt.Sprintf("{%s}", p))
		}
	}
}

// EnsureTrailingNewline appends "\n" when s does not already end with one.
func EnsureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
