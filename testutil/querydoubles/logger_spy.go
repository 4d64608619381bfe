package querydoubles

import (
	"sync"

	"github.com/AntonStoeckl/relational-query-go/querydb"
)

// LoggerSpy is a querydb.Logger implementation that captures logging calls
// for testing probe sinks and handler instrumentation.
type LoggerSpy struct {
	mu      sync.Mutex
	records []LogRecord
}

// LogRecord represents a recorded log call.
type LogRecord struct {
	Level   string
	Message string
	Args    []any
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

// Debug implements the Logger interface for testing.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record("debug", msg, args)
}

// Info implements the Logger interface for testing.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record("info", msg, args)
}

// Warn implements the Logger interface for testing.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record("warn", msg, args)
}

// Error implements the Logger interface for testing.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record("error", msg, args)
}

func (s *LoggerSpy) record(level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, LogRecord{Level: level, Message: msg, Args: args})
}

// Records returns a copy of all recorded log calls in order.
func (s *LoggerSpy) Records() []LogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]LogRecord, len(s.records))
	copy(copied, s.records)

	return copied
}

// Ensure LoggerSpy implements querydb.Logger.
var _ querydb.Logger = (*LoggerSpy)(nil)
