// Package logs keeps the in-memory session log shown in the panel's logs
// tab. Entries can optionally be mirrored to a structured zap logger so a
// debug log file captures the same trail.
package logs

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Level classifies a log entry.
type Level byte

const (
	LevelInfo    Level = 'I'
	LevelWarning Level = 'W'
	LevelError   Level = 'E'
)

// String returns the single-letter marker used in the logs tab.
func (l Level) String() string {
	return string(rune(l))
}

// TimestampLayout is the format session log timestamps render with.
const TimestampLayout = "2006-01-02 15:04:05.000"

// Entry is one session log record.
type Entry struct {
	Level   Level
	Time    time.Time
	Message string
}

// Timestamp returns the entry time as a UTC millisecond string.
func (e Entry) Timestamp() string {
	return e.Time.UTC().Format(TimestampLayout) + " UTC"
}

// Store collects session log entries in insertion order.
// It is safe for concurrent use: commands append from the send goroutine
// while the UI loop reads for rendering.
type Store struct {
	mu      sync.Mutex
	entries []Entry
	mirror  *zap.Logger
	now     func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{now: time.Now}
}

// SetMirror attaches a zap logger that receives a copy of every entry.
// Passing nil detaches the mirror.
func (s *Store) SetMirror(l *zap.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mirror = l
}

// Info records an informational entry.
func (s *Store) Info(msg string) {
	s.append(LevelInfo, msg)
}

// Warning records a warning entry.
func (s *Store) Warning(msg string) {
	s.append(LevelWarning, msg)
}

// Error records an error entry.
func (s *Store) Error(msg string) {
	s.append(LevelError, msg)
}

func (s *Store) append(level Level, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, Entry{Level: level, Time: s.now(), Message: msg})

	if s.mirror == nil {
		return
	}

	switch level {
	case LevelWarning:
		s.mirror.Warn(msg)
	case LevelError:
		s.mirror.Error(msg)
	default:
		s.mirror.Info(msg)
	}
}

// Len returns the number of recorded entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Tail returns the most recent n entries in insertion order. A non-positive
// n yields nil; n larger than the store yields everything.
func (s *Store) Tail(n int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || len(s.entries) == 0 {
		return nil
	}

	if n > len(s.entries) {
		n = len(s.entries)
	}

	out := make([]Entry, n)
	copy(out, s.entries[len(s.entries)-n:])

	return out
}
