package backend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agenda/config"
	"agenda/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowStatementThreshold = 200 * time.Millisecond

// sqlLogger routes gorm's statement logs into slog under the "kv_sql" component.
type sqlLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	if baseLogger != nil {
		baseLogger = baseLogger.With(slog.String("component", "kv_sql"))
	}

	return &sqlLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultSlowStatementThreshold,
	}
}

func (l *sqlLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *sqlLogger) logf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

// Trace logs failed statements, slow statements and, in debug mode, every statement.
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(statementAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "Key-value statement failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		attrs := append(statementAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Key-value statement slow", attrs...)
	case l.level >= gormlogger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Key-value statement", statementAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func statementAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
