// file: logger/logger.go

package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger.
// It is usable before Init is called; Init only applies format and level.
var Log = logrus.New()

// Init configures the logger with JSON output at info level.
// LOG_LEVEL overrides the level when set.
func Init() {
	Configure(os.Getenv("LOG_LEVEL"), "json")
}

// Configure applies a level ("debug", "info", "warn", ...) and a format ("json" or "text").
// Unknown levels fall back to info.
func Configure(level, format string) {
	Log.SetOutput(os.Stdout)

	switch strings.ToLower(format) {
	case "text":
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		Log.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}
