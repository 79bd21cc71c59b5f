// Package logrus adapts a *logrus.Entry to coerce.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/coerce"
)

var _ coerce.Logger = Logger{}

// Logger forwards coerce log calls to a logrus entry. The "error" field is
// attached with WithError so hooks that read logrus.ErrorKey see it. Use it
// with coerce.LogHandler:
//
//	h := coerce.LogHandler(logrus.Logger{E: logrus.NewEntry(log)})
type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f coerce.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f coerce.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f coerce.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f coerce.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f coerce.Fields) *logrus.Entry {
	data := make(logrus.Fields, len(f))
	var cause error
	for k, v := range f {
		if err, ok := v.(error); ok && k == logrus.ErrorKey {
			cause = err
			continue
		}
		data[k] = v
	}
	e := l.E.WithFields(data)
	if cause != nil {
		e = e.WithError(cause)
	}
	return e
}
