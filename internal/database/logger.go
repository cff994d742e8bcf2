package database

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormWriter forwards GORM's formatted log lines to zap.
type gormWriter struct {
	printf func(template string, args ...interface{})
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.printf(strings.TrimSpace(format), args...)
}

// NewGormLogger routes GORM logging through log. SQL traces only appear in
// debug mode; a missing row is never reported since callers treat it as a
// normal result.
func NewGormLogger(log *zap.SugaredLogger, debug bool) logger.Interface {
	named := log.Named("gorm")
	level := logger.Warn
	printf := named.Warnf
	if debug {
		level = logger.Info
		printf = named.Debugf
	}

	return logger.New(gormWriter{printf: printf}, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
