package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. format is "json" (default) or "text".
func New(level, format string) (*logrus.Logger, error) {
	log := logrus.New()
	log.Out = os.Stdout

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	switch format {
	case "", "json":
		log.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
			},
			TimestampFormat: time.RFC3339Nano,
		}
	case "text":
		log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return log, nil
}
