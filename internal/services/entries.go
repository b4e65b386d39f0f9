package services

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"charfreq/internal/logger"
)

const component = "EntryFileService"

// FileError wraps a failed load or save with the file it concerns
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name(), e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Name returns the base name of the file
func (e *FileError) Name() string {
	return filepath.Base(e.Path)
}

// LineSeparator is written after every saved entry
var LineSeparator = platformLineSeparator(runtime.GOOS)

func platformLineSeparator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// EntryFileService reads and writes newline-delimited entry files
type EntryFileService struct {
	logger logger.Logger
}

// NewEntryFileService creates a new entry file service
func NewEntryFileService(log logger.Logger) *EntryFileService {
	return &EntryFileService{logger: log}
}

// LoadFile reads every line of the file at path
func (s *EntryFileService) LoadFile(path string) ([]string, error) {
	startTime := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "load", Path: path, Err: err}
	}
	defer file.Close()

	lines, err := ReadEntries(file)
	if err != nil {
		return nil, &FileError{Op: "load", Path: path, Err: err}
	}

	s.logger.Info(component, "entries loaded", map[string]interface{}{
		"path":        path,
		"entries":     len(lines),
		"duration_ms": time.Since(startTime).Milliseconds(),
	})

	return lines, nil
}

// SaveFile writes each entry followed by LineSeparator to path, truncating
// any existing file. A failed write leaves whatever was written in place.
func (s *EntryFileService) SaveFile(path string, entries []string) error {
	file, err := os.Create(path)
	if err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}

	writeErr := WriteEntries(file, entries)
	closeErr := file.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}

	s.logger.Info(component, "entries saved", map[string]interface{}{
		"path":    path,
		"entries": len(entries),
	})

	return nil
}

// ReadEntries splits r into lines. Both "\n" and "\r\n" terminate a line and
// a final line without terminator is kept.
func ReadEntries(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	lines := make([]string, 0)

	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read entries: %w", err)
		}
	}
}

// WriteEntries writes entries one per line in order
func WriteEntries(w io.Writer, entries []string) error {
	writer := bufio.NewWriter(w)
	for _, entry := range entries {
		if _, err := writer.WriteString(entry); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
		if _, err := writer.WriteString(LineSeparator); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush entries: %w", err)
	}
	return nil
}
