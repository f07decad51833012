// Package slog provides log/slog decorators for birdtab services.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/birdtab"
)

// Ensure LoggingExtractor implements birdtab.RecordExtractor.
var _ birdtab.RecordExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a RecordExtractor with debug logging.
type LoggingExtractor struct {
	next   birdtab.RecordExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next birdtab.RecordExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, r io.Reader) (records []*birdtab.Record, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, r)
}
