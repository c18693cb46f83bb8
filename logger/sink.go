package logger

import (
	"io"
	"os"
	"sync"
)

// Sink receives fully rendered log lines, newline included. Write is called
// concurrently; implementations serialize internally.
type Sink interface {
	Write(level Level, line []byte) error
	Close() error
}

// ConsoleSink writes lines to a terminal, coloring them by severity when
// enabled.
type ConsoleSink struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewConsoleSink creates a sink writing to w; color enables ANSI severity
// colors.
func NewConsoleSink(w io.Writer, color bool) *ConsoleSink {
	return &ConsoleSink{w: w, color: color}
}

// NewStderrSink creates a colored sink on standard error, the default sink of
// a new logger.
func NewStderrSink() *ConsoleSink {
	return NewConsoleSink(os.Stderr, true)
}

func levelColor(level Level) string {
	switch level {
	case LevelTrace:
		return "\x1b[90m"
	case LevelDebug:
		return "\x1b[36m"
	case LevelInfo:
		return "\x1b[32m"
	case LevelWarn:
		return "\x1b[33m"
	case LevelError:
		return "\x1b[31m"
	case LevelFatal:
		return "\x1b[1;31m"
	default:
		return ""
	}
}

func (s *ConsoleSink) Write(level Level, line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.color {
		_, err := s.w.Write(line)
		return err
	}

	// Reset before the newline so the color never bleeds into the next line.
	body := line
	if n := len(line); n > 0 && line[n-1] == '\n' {
		body = line[:n-1]
	}
	if _, err := io.WriteString(s.w, levelColor(level)); err != nil {
		return err
	}
	if _, err := s.w.Write(body); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, "\x1b[0m\n")

	return err
}

// Close is a no-op; the sink does not own its writer.
func (s *ConsoleSink) Close() error {
	return nil
}

// FileSink appends lines to a single file without rotation.
type FileSink struct {
	mu sync.Mutex
	f  *os.File
}

// NewFileSink opens (or creates) path in append mode.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	return &FileSink{f: f}, nil
}

func (s *FileSink) Write(_ Level, line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.f.Write(line)

	return err
}

func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Close()
}
