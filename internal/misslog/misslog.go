// Package misslog records queries the chatbot could not answer, both to
// an append-only text file and to the database, so the intent catalog
// can be curated from real traffic. Recording is strictly best effort:
// a failed write never affects the response.
package misslog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// FileLog appends one line per unanswered query to a text file.
type FileLog struct {
	mu   sync.Mutex
	path string
}

// NewFileLog creates a file log writing to path. The file is created on
// first append.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

// Append writes a `[timestamp] query` line. Timestamps are UTC RFC3339.
func (l *FileLog) Append(query string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening miss log %s: %w", l.path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s\n", time.Now().UTC().Format(time.RFC3339), query)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("appending to miss log: %w", err)
	}
	return nil
}
