// Package logging holds the logger shared by the phylo packages. Libraries
// only log at debug level, and nothing is written until a program replaces
// the default no-op logger with Init or Set.
package logging

import (
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sugar is the logger used by all packages of this module.
var Sugar = zap.NewNop().Sugar()

// Config selects the log level and where log messages go. Without a log
// file, messages are written to stderr.
type Config struct {
	Level      string `toml:"level"`
	Logfile    string `toml:"logfile"`
	MaxSize    int    `toml:"max_log_size"`    // megabytes
	MaxAge     int    `toml:"max_log_age"`     // days
	MaxBackups int    `toml:"max_log_backups"` // files
}

// New builds a logger from cfg. An empty level means "info".
func New(cfg Config) (*zap.SugaredLogger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zapcore.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, errors.Wrapf(err, "logging: bad level %q", cfg.Level)
		}
	}

	var (
		sink    zapcore.WriteSyncer
		encoder zapcore.Encoder
	)
	if cfg.Logfile == "" {
		sink = zapcore.Lock(os.Stderr)
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Logfile,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
			MaxBackups: cfg.MaxBackups,
		})
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return zap.New(zapcore.NewCore(encoder, sink, level)).Sugar(), nil
}

// Init replaces Sugar with a logger built from cfg.
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set replaces Sugar. A nil logger restores the no-op logger.
func Set(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	Sugar = l
}
