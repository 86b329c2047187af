package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Sugar *zap.SugaredLogger
	mu    sync.Mutex
)

// Init replaces the process logger. Production environments get JSON output.
func Init(level, environment string) error {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	Sugar = l.Sugar()
	mu.Unlock()
	return nil
}

func GetLogger() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if Sugar == nil {
		l, _ := zap.NewDevelopment()
		Sugar = l.Sugar()
	}
	return Sugar
}

func Sync() {
	mu.Lock()
	l := Sugar
	mu.Unlock()
	if l != nil {
		_ = l.Sync()
	}
}
