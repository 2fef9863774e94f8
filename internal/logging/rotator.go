package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o600
	bytesPerMB  = 1024 * 1024

	backupTimeFormat = "2006-01-02-15-04-05.000"
)

// LogRotator is an io.Writer that rotates its file by size and prunes old
// backups by count and age.
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	baseName    string
	maxSize     int64
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64

	now  func() time.Time
	warn func(error)
}

// RotatorConfig configures a LogRotator.
type RotatorConfig struct {
	Dir        string
	FileName   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewLogRotator creates the log directory and opens the current file.
func NewLogRotator(cfg RotatorConfig) (*LogRotator, error) {
	if cfg.FileName == "" {
		cfg.FileName = "appearance.log"
	}
	if cfg.MaxSizeMB < 1 {
		cfg.MaxSizeMB = 1
	}
	if err := os.MkdirAll(cfg.Dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	r := &LogRotator{
		baseDir:    cfg.Dir,
		baseName:   cfg.FileName,
		maxSize:    int64(cfg.MaxSizeMB) * bytesPerMB,
		maxAge:     time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
		maxBackups: cfg.MaxBackups,
		compress:   cfg.Compress,
		now:        time.Now,
		warn: func(err error) {
			fmt.Fprintf(os.Stderr, "log rotator: %v\n", err)
		},
	}

	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the active log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.baseDir, r.baseName)
}

func (r *LogRotator) openCurrentFile() error {
	logPath := r.Path()

	r.currentSize = 0
	if info, err := os.Stat(logPath); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

// Write implements io.Writer.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	// An oversized single write still lands in a fresh file.
	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		r.warn(fmt.Errorf("close %s: %w", r.baseName, err))
	}
	r.currentFile = nil

	backupPath := filepath.Join(r.baseDir, r.baseName+"."+r.now().Format(backupTimeFormat))
	if err := os.Rename(r.Path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		if err := compressFile(backupPath); err != nil {
			r.warn(fmt.Errorf("compress %s: %w", backupPath, err))
		} else if err := os.Remove(backupPath); err != nil {
			r.warn(fmt.Errorf("remove %s: %w", backupPath, err))
		}
	}

	r.cleanup()
	return r.openCurrentFile()
}

func compressFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	gz := gzip.NewWriter(out)
	if _, err = io.Copy(gz, in); err != nil {
		return err
	}
	return gz.Close()
}

// cleanup drops backups older than maxAge, then the oldest beyond maxBackups.
func (r *LogRotator) cleanup() {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return
	}

	var backups []os.FileInfo
	now := r.now()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.baseName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			r.remove(info.Name())
			continue
		}
		backups = append(backups, info)
	}

	if r.maxBackups <= 0 || len(backups) <= r.maxBackups {
		return
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Name() < backups[j].Name()
	})
	for _, info := range backups[:len(backups)-r.maxBackups] {
		r.remove(info.Name())
	}
}

func (r *LogRotator) remove(name string) {
	if err := os.Remove(filepath.Join(r.baseDir, name)); err != nil {
		r.warn(fmt.Errorf("remove old log %s: %w", name, err))
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
