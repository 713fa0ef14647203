package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/kvcache"
)

var _ kvcache.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New wraps l under a component=kvcache field.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "kvcache")}
}

func (l LogrusLogger) Debug(msg string, f kvcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f kvcache.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f kvcache.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f kvcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
