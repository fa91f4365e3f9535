package logging

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerSingleton(t *testing.T) {
	Configure(Config{})
	a := NewLogger("engine")
	b := NewLogger("engine")
	assert.Same(t, a, b, "same component should reuse the same entry")

	c := NewLogger("dispatch")
	assert.NotSame(t, a, c)
}

func TestNewLoggerLevelFromEnv(t *testing.T) {
	t.Setenv("PRESS_LOG_LEVEL", "debug")
	Configure(Config{})
	log := NewLogger("engine")
	assert.Equal(t, logrus.DebugLevel, log.Logger.GetLevel())
}

func TestNewLoggerLevelFromConfig(t *testing.T) {
	Configure(Config{Level: "warn"})
	t.Cleanup(func() { Configure(Config{}) })
	log := NewLogger("engine")
	assert.Equal(t, logrus.WarnLevel, log.Logger.GetLevel())
}

func TestTextFormatter(t *testing.T) {
	f := &TextFormatter{DisableColors: true}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "stopping process",
		Data:    logrus.Fields{"component": "shell", "pid": 4711},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)

	line := string(out)
	assert.Contains(t, line, "2026-03-14 09:30:00")
	assert.Contains(t, line, "[WARN]")
	assert.Contains(t, line, "[shell]")
	assert.Contains(t, line, "stopping process")
	assert.Contains(t, line, "pid=4711")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestTextFormatterSimplePreset(t *testing.T) {
	f := &TextFormatter{
		Config:        FormatConfig{DisableTimestamp: true, DisableComponent: true},
		DisableColors: true,
	}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "hello",
		Data:    logrus.Fields{"component": "shell"},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] hello\n", string(out))
}
