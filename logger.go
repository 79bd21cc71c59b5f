package coerce

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger. Provide an adapter around your logging
// stack; see the log/zap, log/logrus and log/slog subpackages.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// LogHandler returns an ErrorHandler that logs each failure.
// Field failures are logged at warn, envelope failures at error.
func LogHandler(l Logger) ErrorHandler {
	if l == nil {
		l = NopLogger{}
	}
	return func(err error, typeName, key string) {
		f := Fields{"error": err}
		if typeName != "" {
			f["type"] = typeName
		}
		if key == "" {
			l.Error("coerce: envelope operation failed", f)
			return
		}
		f["key"] = key
		f["kind"] = KindOf(err).String()
		l.Warn("coerce: field decode failed", f)
	}
}
