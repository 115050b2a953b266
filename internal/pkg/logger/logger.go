package logger

import (
	"context"

	"go.uber.org/zap"
)

var global = zap.Must(zap.NewProduction()).Sugar()

// Init replaces the global logger, e.g. with a development config.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func Sync() {
	_ = global.Sync()
}

func Debugf(_ context.Context, format string, args ...interface{}) {
	global.Debugf(format, args...)
}

func Info(_ context.Context, msg string) {
	global.Info(msg)
}

func Infof(_ context.Context, format string, args ...interface{}) {
	global.Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	global.Warnf(format, args...)
}

func Error(_ context.Context, msg string) {
	global.Error(msg)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	global.Errorf(format, args...)
}

func Fatal(_ context.Context, err error) {
	if err == nil {
		return
	}
	global.Fatal(err.Error())
}
