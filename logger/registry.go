package logger

import "sync"

var registry = struct {
	sync.RWMutex
	m   map[string]*Logger
	def *Logger
}{m: make(map[string]*Logger)}

// Get returns the named logger, creating it with defaults on first use.
// Creation cannot fail without options, so Get never returns an error.
func Get(name string) *Logger {
	registry.RLock()
	l := registry.m[name]
	registry.RUnlock()
	if l != nil {
		return l
	}

	registry.Lock()
	defer registry.Unlock()
	if l = registry.m[name]; l != nil {
		return l
	}
	l, _ = New(name)
	registry.m[name] = l

	return l
}

// Register stores a configured logger under its name, replacing any previous
// one.
func Register(name string, l *Logger) {
	registry.Lock()
	registry.m[name] = l
	registry.Unlock()
}

// Default returns the process-wide default logger, an unnamed stderr logger
// unless SetDefault replaced it.
func Default() *Logger {
	registry.RLock()
	l := registry.def
	registry.RUnlock()
	if l != nil {
		return l
	}

	registry.Lock()
	defer registry.Unlock()
	if registry.def == nil {
		registry.def, _ = New("")
	}

	return registry.def
}

// SetDefault replaces the process-wide default logger.
func SetDefault(l *Logger) {
	registry.Lock()
	registry.def = l
	registry.Unlock()
}

// Trace logs through the default logger.
func Trace(template string, args ...any) {
	Default().Trace(template, args...)
}

// Debug logs through the default logger.
func Debug(template string, args ...any) {
	Default().Debug(template, args...)
}

// Info logs through the default logger.
func Info(template string, args ...any) {
	Default().Info(template, args...)
}

// Warn logs through the default logger.
func Warn(template string, args ...any) {
	Default().Warn(template, args...)
}

// Error logs through the default logger.
func Error(template string, args ...any) {
	Default().Error(template, args...)
}

// Fatal logs through the default logger and exits the process.
func Fatal(template string, args ...any) {
	Default().Fatal(template, args...)
}
