// Package journal places, seeds and appends to the per-day note files.
package journal

import (
	"fmt"
	"path/filepath"
	"time"
)

// NoteFileName is the file every daily directory contains.
const NoteFileName = "note.md"

// NotePath returns root/YYYY/MM/DD/note.md for the given local time.
// Month and day are zero-padded, so a day maps to exactly one path.
func NotePath(root string, localTime time.Time) string {
	return filepath.Join(root,
		fmt.Sprintf("%04d", localTime.Year()),
		fmt.Sprintf("%02d", int(localTime.Month())),
		fmt.Sprintf("%02d", localTime.Day()),
		NoteFileName,
	)
}
