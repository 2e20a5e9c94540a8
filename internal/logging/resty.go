package logging

import (
	"context"
	"fmt"
	"strings"
)

// RestyLogger adapts a Logger to the printf-style logger resty expects
// (Errorf/Warnf/Debugf), so transport debug output lands in the same sink.
type RestyLogger struct {
	l Logger
}

func NewRestyLogger(l Logger) *RestyLogger {
	return &RestyLogger{l: l.With("component", "transport")}
}

func (r *RestyLogger) Errorf(format string, v ...any) {
	r.l.Error(context.Background(), line(format, v...))
}

func (r *RestyLogger) Warnf(format string, v ...any) {
	r.l.Warn(context.Background(), line(format, v...))
}

func (r *RestyLogger) Debugf(format string, v ...any) {
	r.l.Debug(context.Background(), line(format, v...))
}

func line(format string, v ...any) string {
	return strings.TrimRight(fmt.Sprintf(format, v...), "\n")
}
