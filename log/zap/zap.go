// Package zap adapts a *zap.Logger to coerce.Logger.
package zap

import (
	"github.com/zoobzio/coerce"
	"go.uber.org/zap"
)

var _ coerce.Logger = Logger{}

// Logger forwards coerce log calls to a *zap.Logger. Error values are logged
// with zap.NamedError so their messages survive structured encoders.
type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f coerce.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f coerce.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f coerce.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f coerce.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f coerce.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}
