package console

import (
	"go.uber.org/zap"
)

var _ Logger = (*ZapLogger)(nil)

// ZapLogger adapts a zap logger to the console Logger interface. Variadic
// args are treated as key/value pairs, matching how the console logs.
type ZapLogger struct {
	log *zap.SugaredLogger
}

func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{log: logger.Sugar()}
}

func (z *ZapLogger) Debug(format string, args ...any) {
	z.log.Debugw(format, args...)
}

func (z *ZapLogger) Info(format string, args ...any) {
	z.log.Infow(format, args...)
}

func (z *ZapLogger) Warn(format string, args ...any) {
	z.log.Warnw(format, args...)
}

func (z *ZapLogger) Error(format string, args ...any) {
	z.log.Errorw(format, args...)
}
