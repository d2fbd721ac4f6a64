package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which a query is logged as a warning.
const slowQuery = 200 * time.Millisecond

// queryLogger writes gorm's log output to zerolog. Queries are logged
// at debug level, slow queries as warnings.
type queryLogger struct {
	log zerolog.Logger
}

func (q queryLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return q
}

func (q queryLogger) Info(_ context.Context, msg string, args ...any) {
	q.log.Info().Msgf(msg, args...)
}

func (q queryLogger) Warn(_ context.Context, msg string, args ...any) {
	q.log.Warn().Msgf(msg, args...)
}

func (q queryLogger) Error(_ context.Context, msg string, args ...any) {
	q.log.Error().Msgf(msg, args...)
}

func (q queryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	var event *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound):
		event = q.log.Error().Err(err)
	case elapsed > slowQuery:
		event = q.log.Warn().Bool("slow", true)
	default:
		event = q.log.Debug()
	}

	if !event.Enabled() {
		return
	}

	sql, rows := fc()
	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", elapsed).
		Msg("[GORM] query")
}
