package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/arloliu/numtext/compress"
	"github.com/arloliu/numtext/internal/options"
)

const (
	defaultMaxSize    = 64 * 1024 * 1024 // 64MB
	defaultMaxBackups = 8
	backupStamp       = "20060102-150405.000000000"
)

// RotatingFileSink appends to a file and rotates it once it exceeds the size
// limit. Rotated backups are renamed with a timestamp, optionally compressed
// in the background, and pruned oldest-first beyond the backup limit.
type RotatingFileSink struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	ctype      compress.Type
	codec      compress.Codec

	f    *os.File
	size int64
	wg   sync.WaitGroup
}

// RotateOption configures a RotatingFileSink.
type RotateOption = options.Option[*RotatingFileSink]

// WithMaxSize sets the size in bytes at which the active file rotates.
func WithMaxSize(n int64) RotateOption {
	return options.New(func(s *RotatingFileSink) error {
		if n <= 0 {
			return fmt.Errorf("rotation size must be positive, got %d", n)
		}
		s.maxSize = n

		return nil
	})
}

// WithMaxBackups sets how many rotated backups are kept; older ones are
// removed after each rotation. Zero keeps none.
func WithMaxBackups(n int) RotateOption {
	return options.New(func(s *RotatingFileSink) error {
		if n < 0 {
			return fmt.Errorf("backup count must be non-negative, got %d", n)
		}
		s.maxBackups = n

		return nil
	})
}

// WithCompression selects the codec applied to rotated backups.
func WithCompression(t compress.Type) RotateOption {
	return options.New(func(s *RotatingFileSink) error {
		codec, err := compress.GetCodec(t)
		if err != nil {
			return err
		}
		s.ctype = t
		s.codec = codec

		return nil
	})
}

// NewRotatingFileSink opens path in append mode with rotation defaults of
// 64MB, 8 backups and Zstd backup compression.
func NewRotatingFileSink(path string, opts ...RotateOption) (*RotatingFileSink, error) {
	s := &RotatingFileSink{
		path:       path,
		maxSize:    defaultMaxSize,
		maxBackups: defaultMaxBackups,
	}
	if err := options.Apply(s, WithCompression(compress.TypeZstd)); err != nil {
		return nil, err
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	s.f = f
	s.size = info.Size()

	return s, nil
}

func (s *RotatingFileSink) Write(_ Level, line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.size+int64(len(line)) > s.maxSize && s.size > 0 {
		if err := s.rotate(); err != nil {
			return err
		}
	}

	n, err := s.f.Write(line)
	s.size += int64(n)

	return err
}

// rotate renames the active file to a timestamped backup, reopens a fresh
// one, and hands the backup to a background goroutine for compression and
// pruning. Called with the mutex held.
func (s *RotatingFileSink) rotate() error {
	if err := s.f.Close(); err != nil {
		return err
	}

	backup := s.path + "." + time.Now().Format(backupStamp)
	if err := os.Rename(s.path, backup); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	s.f = f
	s.size = 0

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.finishBackup(backup)
	}()

	return nil
}

// finishBackup compresses one rotated file in place and prunes old backups.
// Failures leave the uncompressed backup behind rather than losing it.
func (s *RotatingFileSink) finishBackup(backup string) {
	if s.ctype != compress.TypeNone {
		if data, err := os.ReadFile(backup); err == nil {
			if packed, err := s.codec.Compress(data); err == nil {
				if os.WriteFile(backup+s.ctype.Ext(), packed, 0o644) == nil {
					os.Remove(backup)
				}
			}
		}
	}
	s.prune()
}

// prune removes the oldest backups beyond maxBackups. Backup names embed a
// sortable timestamp, so lexical order is age order.
func (s *RotatingFileSink) prune() {
	dir := filepath.Dir(s.path)
	prefix := filepath.Base(s.path) + "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) <= s.maxBackups {
		return
	}
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-s.maxBackups] {
		os.Remove(filepath.Join(dir, name))
	}
}

// Close waits for in-flight backup compressions and closes the active file.
func (s *RotatingFileSink) Close() error {
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Close()
}
