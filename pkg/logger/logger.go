package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/huynhanx03/go-window/pkg/settings"
)

// Logger is a zap logger that optionally keeps its most recent entries in memory.
type Logger struct {
	*zap.Logger
	recent *Recent
	closer io.Closer
}

type options struct {
	writer zapcore.WriteSyncer
}

// Option configures New.
type Option func(*options)

// WithWriter sends encoded output to w instead of stdout or the log file.
func WithWriter(w zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// New builds a JSON logger from cfg. Output goes to a lumberjack-rotated file
// when cfg.FileLogName is set and to stdout otherwise. When cfg.RecentEntries
// is positive every entry is also kept in a Recent window of that size.
func New(cfg settings.Logger, opts ...Option) (*Logger, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", cfg.LogLevel)
	}

	l := &Logger{}
	ws := o.writer
	if ws == nil {
		if cfg.FileLogName != "" {
			lj := &lumberjack.Logger{
				Filename:   cfg.FileLogName,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
			l.closer = lj
			ws = zapcore.AddSync(lj)
		} else {
			ws = zapcore.Lock(os.Stdout)
		}
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), ws, level)
	if cfg.RecentEntries > 0 {
		l.recent, err = NewRecent(cfg.RecentEntries, level)
		if err != nil {
			return nil, errors.Wrap(err, "create recent log window")
		}
		core = zapcore.NewTee(core, l.recent)
	}

	l.Logger = zap.New(core, zap.AddCaller())
	return l, nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// Recent returns the in-memory window, or nil if RecentEntries was 0.
func (l *Logger) Recent() *Recent {
	return l.recent
}

// Close flushes the logger and closes the log file, if any.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
