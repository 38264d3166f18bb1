package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevelAndFormat(t *testing.T) {
	Init("debug", "json")
	require.NotNil(t, Log)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)

	Init("not-a-level", "text")
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, Log.Formatter)
}

func TestComponentField(t *testing.T) {
	Init("info", "json")
	var buf bytes.Buffer
	Log.SetOutput(&buf)

	Component("maze").Info("generated")

	assert.Contains(t, buf.String(), `"component":"maze"`)
	assert.Contains(t, buf.String(), `"msg":"generated"`)
}

func TestNewRunID(t *testing.T) {
	id := NewRunID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewRunID())
}

func TestRunIDField(t *testing.T) {
	Init("info", "json")
	var buf bytes.Buffer
	SetOutput(&buf)
	SetRunID("run-1")
	defer SetRunID("")

	Component("game").Info("started")

	assert.Contains(t, buf.String(), `"run_id":"run-1"`)
}

func TestOpenFileAndClose(t *testing.T) {
	Init("info", "json")
	path := filepath.Join(t.TempDir(), "lantern.log")

	require.NoError(t, OpenFile(path))
	f := file
	Component("cli").Info("to file")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)

	// the handle is released and output is back on stderr
	assert.ErrorIs(t, f.Close(), os.ErrClosed)
	assert.Nil(t, file)
	assert.Equal(t, os.Stderr, Log.Out)
	assert.NoError(t, Close())
}

func TestOpenFileReplacesPrevious(t *testing.T) {
	Init("info", "json")
	dir := t.TempDir()

	require.NoError(t, OpenFile(filepath.Join(dir, "a.log")))
	first := file
	require.NoError(t, OpenFile(filepath.Join(dir, "b.log")))
	defer Close()

	assert.ErrorIs(t, first.Close(), os.ErrClosed)
	assert.NotEqual(t, first, file)
}

func TestOpenFileBadPath(t *testing.T) {
	Init("info", "json")
	err := OpenFile(filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
	assert.Nil(t, file)
}
