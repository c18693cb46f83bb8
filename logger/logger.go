package logger

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/arloliu/numtext/format"
	"github.com/arloliu/numtext/internal/options"
	"github.com/arloliu/numtext/internal/pool"
)

// Logger renders curly-brace templates into timestamped lines and fans them
// out to its sinks. The level gate is atomic, so SetLevel is safe during
// logging; the sink list is fixed at construction.
type Logger struct {
	name  string
	level atomic.Int32
	sinks []Sink
}

// Option configures a Logger.
type Option = options.Option[*Logger]

// WithLevel sets the minimum severity the logger emits.
func WithLevel(level Level) Option {
	return options.NoError(func(l *Logger) {
		l.level.Store(int32(level))
	})
}

// WithSinks replaces the default stderr sink.
func WithSinks(sinks ...Sink) Option {
	return options.NoError(func(l *Logger) {
		l.sinks = sinks
	})
}

// New creates a logger. Defaults: LevelInfo, one colored stderr sink.
func New(name string, opts ...Option) (*Logger, error) {
	l := &Logger{name: name}
	l.level.Store(int32(LevelInfo))
	if err := options.Apply(l, opts...); err != nil {
		return nil, err
	}
	if len(l.sinks) == 0 {
		l.sinks = []Sink{NewStderrSink()}
	}

	return l, nil
}

// Level returns the current minimum severity.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetLevel changes the minimum severity.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// Enabled reports whether records at the given level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level() && level < LevelOff
}

func (l *Logger) Trace(template string, args ...any) {
	l.log(LevelTrace, template, args...)
}

func (l *Logger) Debug(template string, args ...any) {
	l.log(LevelDebug, template, args...)
}

func (l *Logger) Info(template string, args ...any) {
	l.log(LevelInfo, template, args...)
}

func (l *Logger) Warn(template string, args ...any) {
	l.log(LevelWarn, template, args...)
}

func (l *Logger) Error(template string, args ...any) {
	l.log(LevelError, template, args...)
}

// Fatal logs the record and exits the process.
func (l *Logger) Fatal(template string, args ...any) {
	l.log(LevelFatal, template, args...)
	os.Exit(1)
}

func (l *Logger) log(level Level, template string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	buf := pool.GetLineBuffer()
	defer pool.PutLineBuffer(buf)

	if l.name != "" {
		_ = format.FormatTo(buf, "{:f} {:<5} {}: ", time.Now(), level, l.name)
	} else {
		_ = format.FormatTo(buf, "{:f} {:<5} ", time.Now(), level)
	}
	if err := format.FormatTo(buf, template, args...); err != nil {
		// A bad template still produces a record; the error is more useful in
		// the log than a silently dropped line.
		buf.AppendString("!template error: ")
		buf.AppendString(err.Error())
	}
	buf.AppendByte('\n')

	for _, s := range l.sinks {
		_ = s.Write(level, buf.Bytes())
	}
}

// Close closes every sink, waiting out in-flight rotations.
func (l *Logger) Close() error {
	var firstErr error
	for _, s := range l.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
