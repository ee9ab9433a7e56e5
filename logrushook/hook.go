// Package logrushook forwards logrus entries to a pink-log logger.
//
//	l := logger.New(settings)
//	logrus.AddHook(logrushook.New(l))
package logrushook

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mordilloSan/pink-log/logger"
)

// Hook is a logrus.Hook backed by a logger.Leveled, usually a *logger.Logger.
// Filtering is left to the target's threshold.
type Hook struct {
	log logger.Leveled
}

// New returns a Hook writing to l.
func New(l logger.Leveled) *Hook {
	return &Hook{log: l}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook. It never returns an error.
func (h *Hook) Fire(entry *logrus.Entry) error {
	switch entry.Level {
	case logrus.TraceLevel:
		h.log.Trace(entry.Message)
	case logrus.DebugLevel:
		h.log.Debug(entry.Message)
	case logrus.InfoLevel:
		h.log.Info(entry.Message)
	case logrus.WarnLevel:
		h.log.Warn(entry.Message)
	case logrus.ErrorLevel:
		h.log.Error(entryError(entry))
	default: // Fatal, Panic
		h.log.Fatal(entryError(entry))
	}
	return nil
}

// entryError wraps the entry's attached error with its message, if any.
func entryError(entry *logrus.Entry) error {
	if err, ok := entry.Data[logrus.ErrorKey].(error); ok {
		return errors.Wrap(err, entry.Message)
	}
	return errors.New(entry.Message)
}
