package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
)

// FileAdapter implements the LogAdapter interface for file output with
// size-based rotation
type FileAdapter struct {
	name        string
	config      FileConfig
	currentFile *os.File
	currentSize int64
	mu          sync.Mutex
}

// FileConfig represents configuration for the file adapter
type FileConfig struct {
	FilePath   string `yaml:"file_path"`   // path to log file
	Format     string `yaml:"format"`      // json or text
	MaxSize    int64  `yaml:"max_size"`    // max file size in bytes (0 = no rotation)
	MaxBackups int    `yaml:"max_backups"` // max number of backup files to keep
	CreateDirs bool   `yaml:"create_dirs"` // create parent directories if missing
}

// NewFileAdapter creates a new file adapter
func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.Format == "" {
		config.Format = "json"
	}
	if config.MaxBackups == 0 {
		config.MaxBackups = 3
	}

	adapter := &FileAdapter{
		name:   name,
		config: config,
	}

	if err := adapter.openFile(); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return adapter, nil
}

// Write writes a log entry to the file
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentFile == nil {
		if err := a.openFile(); err != nil {
			return err
		}
	}

	var line string
	switch strings.ToLower(a.config.Format) {
	case "text":
		line = a.formatText(entry)
	default:
		data, err := a.formatJSON(entry)
		if err != nil {
			return err
		}
		line = data
	}

	n, err := fmt.Fprintln(a.currentFile, line)
	if err != nil {
		return err
	}
	a.currentSize += int64(n)

	if a.config.MaxSize > 0 && a.currentSize >= a.config.MaxSize {
		return a.rotate()
	}

	return nil
}

// Close closes the underlying file
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentFile != nil {
		err := a.currentFile.Close()
		a.currentFile = nil
		return err
	}
	return nil
}

// Health verifies the log file is still writable
func (a *FileAdapter) Health() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentFile == nil {
		return fmt.Errorf("log file not open")
	}
	return nil
}

// Name returns the name of the adapter
func (a *FileAdapter) Name() string {
	return a.name
}

func (a *FileAdapter) openFile() error {
	if a.config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(a.config.FilePath), 0o755); err != nil {
			return err
		}
	}

	file, err := os.OpenFile(a.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}

	a.currentFile = file
	a.currentSize = info.Size()
	return nil
}

// rotate renames the current file with a numeric suffix and starts a new one.
// Oldest backup beyond MaxBackups is dropped.
func (a *FileAdapter) rotate() error {
	if err := a.currentFile.Close(); err != nil {
		return err
	}
	a.currentFile = nil

	for i := a.config.MaxBackups - 1; i >= 1; i-- {
		from := fmt.Sprintf("%s.%d", a.config.FilePath, i)
		to := fmt.Sprintf("%s.%d", a.config.FilePath, i+1)
		if _, err := os.Stat(from); err == nil {
			os.Rename(from, to)
		}
	}
	if err := os.Rename(a.config.FilePath, a.config.FilePath+".1"); err != nil {
		return err
	}

	return a.openFile()
}

func (a *FileAdapter) formatJSON(entry *types.LogEntry) (string, error) {
	logData := map[string]interface{}{
		"level":   entry.Level.String(),
		"message": entry.Message,
		"time":    entry.Timestamp.Format(time.RFC3339),
	}
	for k, v := range entry.Fields {
		logData[k] = v
	}

	data, err := json.Marshal(logData)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (a *FileAdapter) formatText(entry *types.LogEntry) string {
	timestamp := entry.Timestamp.Format("2006-01-02T15:04:05.000Z07:00")
	output := fmt.Sprintf("%s [%s] %s", timestamp, strings.ToUpper(entry.Level.String()), entry.Message)

	if len(entry.Fields) > 0 {
		var fields []string
		for k, v := range entry.Fields {
			fields = append(fields, fmt.Sprintf("%s=%v", k, v))
		}
		output += " " + strings.Join(fields, " ")
	}
	return output
}
