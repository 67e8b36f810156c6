package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/textgate/textgate/internal/logger"
)

func TestNew_TextOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	l := logger.New(logger.Config{Level: "info", Output: buf})
	l.Info("validated", "words", 21)
	assert.Contains(t, buf.String(), "validated")
	assert.Contains(t, buf.String(), "words=21")
}

func TestNew_JSONOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	l := logger.New(logger.Config{Level: "info", Output: buf, JSON: true})
	l.Warn("scorer slow", "ms", 900)
	assert.Contains(t, buf.String(), `"msg":"scorer slow"`)
}

func TestNew_LevelFilters(t *testing.T) {
	buf := new(bytes.Buffer)
	l := logger.New(logger.Config{Level: "error", Output: buf})
	l.Info("hidden")
	l.Debug("hidden")
	assert.Empty(t, buf.String())
	l.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_UnknownLevelIsInfo(t *testing.T) {
	buf := new(bytes.Buffer)
	l := logger.New(logger.Config{Level: "verbose", Output: buf})
	l.Debug("hidden")
	assert.Empty(t, buf.String())
	l.Info("shown")
	assert.NotEmpty(t, buf.String())
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error("discarded", "k", "v") })
}
