package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/birdtab"
)

// Ensure LoggingStore implements birdtab.TableStore.
var _ birdtab.TableStore = (*LoggingStore)(nil)

// LoggingStore wraps a TableStore with debug logging.
type LoggingStore struct {
	next   birdtab.TableStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next birdtab.TableStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the row count.
func (s *LoggingStore) Save(ctx context.Context, records []*birdtab.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("table save",
			"rows", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, records)
}

// Commit delegates to the wrapped store.
func (s *LoggingStore) Commit() (err error) {
	defer func() {
		s.logger.Info("table commit", "err", err)
	}()
	return s.next.Commit()
}

// Abort delegates to the wrapped store.
func (s *LoggingStore) Abort() (err error) {
	defer func() {
		s.logger.Info("table abort", "err", err)
	}()
	return s.next.Abort()
}

// Digest delegates to the wrapped store.
func (s *LoggingStore) Digest() uint64 {
	return s.next.Digest()
}
