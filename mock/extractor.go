package mock

import (
	"context"
	"io"

	"github.com/fwojciec/birdtab"
)

var _ birdtab.RecordExtractor = (*RecordExtractor)(nil)

// RecordExtractor is a mock implementation of birdtab.RecordExtractor.
type RecordExtractor struct {
	ExtractFn func(ctx context.Context, r io.Reader) ([]*birdtab.Record, error)
}

func (e *RecordExtractor) Extract(ctx context.Context, r io.Reader) ([]*birdtab.Record, error) {
	return e.ExtractFn(ctx, r)
}
