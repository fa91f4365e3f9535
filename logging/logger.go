package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	defaults  Config
)

// Configure sets the defaults applied to loggers created afterwards,
// typically from the logging section of press.yml. Existing component loggers
// are discarded so they pick up the new settings on next use.
func Configure(cfg Config) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	defaults = cfg
	loggers = make(map[string]*logrus.Entry)
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()

	// Configure Level
	levelStr := "info"
	if env := os.Getenv("PRESS_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if defaults.Level != "" {
		levelStr = defaults.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("PRESS_LOG_CALLER") == "true" || defaults.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch defaults.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: defaults.Format})
	}

	// Configure Output Sinks
	writers := []io.Writer{os.Stderr}
	if defaults.File.Enabled && defaults.File.Path != "" {
		if file := openLogFile(defaults.File.Path); file != nil {
			writers = append(writers, file)
		} else {
			logger.Warnf("Failed to open log file %s", defaults.File.Path)
		}
	}
	if len(writers) == 1 {
		logger.SetOutput(writers[0])
	} else {
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

func openLogFile(path string) *os.File {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	return file
}
