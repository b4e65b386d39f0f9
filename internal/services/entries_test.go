package services

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charfreq/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThenLoadRoundTrip(t *testing.T) {
	service := NewEntryFileService(logger.Nop())
	path := filepath.Join(t.TempDir(), "entries.txt")

	cases := [][]string{
		{},
		{"single"},
		{"abc", "ABC", "abc"},
		{"Příliš žluťoučký kůň", "úpěl ďábelské ódy", "日本語"},
		{"with\ttab", "trailing!"},
	}

	for _, entries := range cases {
		require.NoError(t, service.SaveFile(path, entries))

		loaded, err := service.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, entries, loaded)
	}
}

func TestSaveFileTerminatesEveryLine(t *testing.T) {
	service := NewEntryFileService(logger.Nop())
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, service.SaveFile(path, []string{"a", "b"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a"+LineSeparator+"b"+LineSeparator, string(data))
}

func TestLoadFileMissing(t *testing.T) {
	service := NewEntryFileService(logger.Nop())
	path := filepath.Join(t.TempDir(), "missing.txt")

	lines, err := service.LoadFile(path)

	require.Error(t, err)
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var fileErr *FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, "load", fileErr.Op)
	assert.Equal(t, "missing.txt", fileErr.Name())
	assert.Contains(t, fileErr.Error(), "missing.txt")
}

func TestLoadFileDirectory(t *testing.T) {
	service := NewEntryFileService(logger.Nop())

	_, err := service.LoadFile(t.TempDir())

	var fileErr *FileError
	require.True(t, errors.As(err, &fileErr))
}

func TestSaveFileIntoMissingDirectory(t *testing.T) {
	service := NewEntryFileService(logger.Nop())
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")

	err := service.SaveFile(path, []string{"x"})

	var fileErr *FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, "save", fileErr.Op)
	assert.Equal(t, "out.txt", fileErr.Name())
}

func TestReadEntries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"unix", "a\nb\n", []string{"a", "b"}},
		{"windows", "a\r\nb\r\n", []string{"a", "b"}},
		{"no final newline", "a\nb", []string{"a", "b"}},
		{"blank lines kept", "a\n\n  \nb\n", []string{"a", "", "  ", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadEntries(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteEntriesPropagatesErrors(t *testing.T) {
	err := WriteEntries(failingWriter{}, []string{"a"})
	assert.ErrorContains(t, err, "disk full")
}

func TestPlatformLineSeparator(t *testing.T) {
	assert.Equal(t, "\r\n", platformLineSeparator("windows"))
	assert.Equal(t, "\n", platformLineSeparator("linux"))
	assert.Equal(t, "\n", platformLineSeparator("darwin"))
}
