// Package log defines the minimal structured-logging capability the runtime
// requires of its caller, and a default adapter backed by logrus.
package log

import "github.com/sirupsen/logrus"

// Logger is the opaque recorder the runtime calls into. Implementations must
// be safe for concurrent use. No PII beyond what the caller supplies in
// request fields is ever logged by this package.
type Logger interface {
	WithFields(fields Fields) Logger
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Fields is a keyed bag of structured metadata, e.g.
// {"tc-service": "cvm", "tc-action": "DescribeInstances"}.
type Fields map[string]interface{}

// logrusLogger adapts *logrus.Entry to the Logger interface.
type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger wraps a *logrus.Logger as a Logger. Pass nil to use
// logrus's package-level standard logger.
func NewLogrusLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

func (l *logrusLogger) WithFields(fields Fields) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logrusLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logrusLogger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *logrusLogger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *logrusLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// nopLogger discards everything. Used as the default when no Logger is
// configured, so callers never need a nil check.
type nopLogger struct{}

// NewNopLogger returns a Logger that discards all records.
func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) WithFields(Fields) Logger                 { return nopLogger{} }
func (nopLogger) Debugf(string, ...interface{})            {}
func (nopLogger) Infof(string, ...interface{})             {}
func (nopLogger) Warnf(string, ...interface{})             {}
func (nopLogger) Errorf(string, ...interface{})            {}
