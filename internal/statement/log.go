package statement

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Log is the append-only statement file. It is never rewritten; lines are
// only ever added to the end. Safe for concurrent use.
type Log struct {
	mu   sync.Mutex
	path string
}

// NewLog returns a log writing to path. The file and its directory are
// created on first append.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Append writes the lines to the end of the log.
func (l *Log) Append(lines []Line) error {
	if len(lines) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	var b strings.Builder
	for _, ln := range lines {
		b.WriteString(ln.String())
		b.WriteByte('\n')
	}
	_, err = f.WriteString(b.String())
	return err
}

// Tail returns the last n lines of the log, oldest first. A log that does
// not exist yet is empty, not an error. n <= 0 returns all lines.
func (l *Log) Tail(n int) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil, nil
	}
	lines := strings.Split(trimmed, "\n")
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}
