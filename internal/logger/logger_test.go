package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	require.NoError(t, Init(logPath))
	t.Cleanup(Reset)
	return logPath
}

func TestInit_WritesToFile(t *testing.T) {
	logPath := setupTestLogger(t)
	SetDebug(true)

	WithComponent("test").Debug("test-unique-string-12345", "key", "value")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "test-unique-string-12345")
	assert.Contains(t, string(content), "component=test")
	assert.Contains(t, string(content), "key=value")
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	logPath := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	require.NoError(t, Init(other))

	assert.Equal(t, logPath, Path())
	_, err := os.Stat(other)
	assert.True(t, os.IsNotExist(err), "second Init should not open another file")
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Init("/nonexistent/directory/debug.log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestSetDebug_FiltersDebugMessages(t *testing.T) {
	logPath := setupTestLogger(t)

	SetDebug(false)
	WithComponent("test").Debug("hidden-debug-line")
	SetDebug(true)
	WithComponent("test").Debug("visible-debug-line")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(content), "hidden-debug-line"))
	assert.Contains(t, string(content), "visible-debug-line")
}

func TestGet_AfterCloseDiscards(t *testing.T) {
	setupTestLogger(t)
	Close()

	// Logging after Close must not panic.
	assert.NotPanics(t, func() {
		Get().Info("after close")
	})
}
