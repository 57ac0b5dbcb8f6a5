package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.WarnLevel)

	l.Info("hidden %d", 1)
	l.Warn("shown %s", "warn")
	l.Error("shown %s", "error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "shown error")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := New(path, "info")
	require.NoError(t, err)

	l.Info("reservation created: id=%d", 7)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "reservation created: id=7")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}
