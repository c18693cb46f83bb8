// Package logger is a small leveled logger built on the curly-brace template
// engine; its message path is the format package end to end.
//
//	log, err := logger.New("ingest",
//		logger.WithLevel(logger.LevelDebug),
//	)
//	if err != nil {
//		return err
//	}
//	log.Info("flushed {} rows in {:.1a}", rows, elapsed)
//
// Sinks receive rendered lines: ConsoleSink colors by severity, FileSink
// appends to one file, and RotatingFileSink rotates by size with compressed,
// pruned backups. Loggers are safe for concurrent use.
package logger
