package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with info level text output.
var Log = newLogger("info", "text", os.Stdout)

// Init reconfigures Log. Call it once from main after settings are loaded.
// Unknown levels fall back to info; format "json" selects the JSON formatter.
func Init(level, format string) {
	Log = newLogger(level, format, os.Stdout)
}

// InitWithOutput is Init with an explicit destination, used by tests.
func InitWithOutput(level, format string, out io.Writer) {
	Log = newLogger(level, format, out)
}

func newLogger(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	l.SetOutput(out)
	return l
}
