package mock

import (
	"context"
	"io"

	"github.com/fwojciec/birdtab"
)

var _ birdtab.TableEncoder = (*TableEncoder)(nil)

// TableEncoder is a mock implementation of birdtab.TableEncoder.
type TableEncoder struct {
	EncodeFn func(w io.Writer, records []*birdtab.Record) error
}

func (e *TableEncoder) Encode(w io.Writer, records []*birdtab.Record) error {
	return e.EncodeFn(w, records)
}

var _ birdtab.TableStore = (*TableStore)(nil)

// TableStore is a mock implementation of birdtab.TableStore.
type TableStore struct {
	SaveFn   func(ctx context.Context, records []*birdtab.Record) error
	CommitFn func() error
	AbortFn  func() error
	DigestFn func() uint64
}

func (s *TableStore) Save(ctx context.Context, records []*birdtab.Record) error {
	return s.SaveFn(ctx, records)
}

func (s *TableStore) Commit() error {
	return s.CommitFn()
}

func (s *TableStore) Abort() error {
	return s.AbortFn()
}

func (s *TableStore) Digest() uint64 {
	return s.DigestFn()
}
