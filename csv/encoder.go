// Package csv writes birdtab records as a fixed-schema CSV table.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fwojciec/birdtab"
)

// Ensure Encoder implements birdtab.TableEncoder at compile time.
var _ birdtab.TableEncoder = (*Encoder)(nil)

// Encoder writes the birdtab.Columns header and one row per record.
// Output is UTF-8, comma separated, with "\n" line endings.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes the table to w. Records are written in slice order.
// Returns EINVALID without writing anything if a record lacks a name.
func (e *Encoder) Encode(w io.Writer, records []*birdtab.Record) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(birdtab.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("failed to write row for %q: %w", r.ScientificName, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
