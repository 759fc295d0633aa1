package logger

import (
	"belay/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap sugared logger. The zero value is usable and discards
// everything, which keeps test construction cheap.
type Logger struct {
	sugar *zap.SugaredLogger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	var zapCfg zap.Config
	if cfg != nil && cfg.LoggerMode.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	if cfg != nil && cfg.LoggerMode.Level != "" {
		level, err := zapcore.ParseLevel(cfg.LoggerMode.Level)
		if err != nil {
			return nil, err
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	z, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *Logger) Infof(format string, args ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l *Logger) Errorf(format string, args ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Errorf(format, args...)
}

func (l *Logger) Sync() error {
	if l == nil || l.sugar == nil {
		return nil
	}
	return l.sugar.Sync()
}
