package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global *zap.Logger
	once   sync.Once
)

// New builds a zap logger for the given environment. "production" gets the JSON
// encoder, everything else the development console encoder.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Init installs the process-wide logger. Later calls are no-ops.
func Init(env string) *zap.Logger {
	once.Do(func() {
		l, err := New(env)
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		global = l
		zap.ReplaceGlobals(l)
	})
	return global
}

// L returns the process-wide logger, initializing it from ENV on first use.
func L() *zap.Logger {
	return Init(os.Getenv("ENV"))
}

// Sync flushes buffered entries.
func Sync() {
	if global == nil {
		return
	}
	_ = global.Sync()
}

func Error(msg string, fields ...zapcore.Field) {
	L().Error(msg, fields...)
}
