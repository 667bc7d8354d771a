package cryptoburger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger prefixes every message with the name of the component that logs it.
type Logger struct {
	prefix string
	entry  *logrus.Entry
}

// GetLogger returns a logger writing to out at the given level.
func GetLogger(prefix string, out io.Writer, level logrus.Level) *Logger {
	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(level)
	return &Logger{"[" + prefix + "] ", logrus.NewEntry(base)}
}

// GetDiscardLogger returns a logger that drops everything.
func GetDiscardLogger() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return &Logger{"", logrus.NewEntry(base)}
}

// Sub returns a logger sharing the output of l with another prefix.
func (l *Logger) Sub(prefix string) *Logger {
	return &Logger{"[" + prefix + "] ", l.entry}
}

// WithField returns a logger attaching key=value to every message.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{l.prefix, l.entry.WithField(key, value)}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(l.prefix+format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.entry.Infof(l.prefix+format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.entry.Errorf(l.prefix+format, args...)
}

func (l *Logger) Err(err error) {
	l.entry.Error(l.prefix + err.Error())
}
