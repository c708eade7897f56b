package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tt.expected, confirm(strings.NewReader(tt.input), &out, "Test?"))
			assert.Equal(t, "Test? [y/N]: ", out.String())
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	assert.False(t, confirm(strings.NewReader(""), io.Discard, "Test?"))
}

func TestConfirm_ErrorReader(t *testing.T) {
	assert.False(t, confirm(&errorReader{}, io.Discard, "Test?"))
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func writePrefs(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"nord"}`), 0644))
	return path
}

func TestClean_AbortKeepsPreferences(t *testing.T) {
	path := writePrefs(t)
	var out bytes.Buffer

	require.NoError(t, runCleanWithReader(strings.NewReader("n\n"), &out, path))
	assert.Contains(t, out.String(), "Aborted.")
	assert.FileExists(t, path)
}

func TestClean_RemovesPreferences(t *testing.T) {
	path := writePrefs(t)
	var out bytes.Buffer

	require.NoError(t, runCleanWithReader(strings.NewReader("y\n"), &out, path))
	assert.Contains(t, out.String(), "preferences removed")
	assert.NoFileExists(t, path)
}

func TestClean_SkipConfirm(t *testing.T) {
	orig := skipConfirm
	t.Cleanup(func() { skipConfirm = orig })
	skipConfirm = true

	path := writePrefs(t)
	var out bytes.Buffer
	require.NoError(t, runCleanWithReader(strings.NewReader(""), &out, path))
	assert.NotContains(t, out.String(), "[y/N]")
	assert.NoFileExists(t, path)
}
