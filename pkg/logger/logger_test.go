package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugOnlyInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	t.Setenv("ENVIRONMENT", "production")
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	t.Setenv("ENVIRONMENT", "development")
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "DEBUG: ")
	assert.Contains(t, buf.String(), "shown 2")
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	Info("a")
	Warn("b")
	Error("c")

	out := buf.String()
	assert.Contains(t, out, "INFO: ")
	assert.Contains(t, out, "WARN: ")
	assert.Contains(t, out, "ERROR: ")
	assert.Contains(t, out, "logger_test.go")
}
