package birdtab

import (
	"context"
	"io"
)

// Columns is the header row of the output table.
// Only the first four columns are filled from extraction; the rest are
// reserved for manual enrichment and always written empty.
var Columns = []string{
	"Species",
	"CommonName",
	"Order",
	"IUCN_Status",
	"HabitatGeneralistSpecialist",
	"Nest_Location_>1",
	"Nest_Structure_>1",
	"General_Nesting_Location",
	"General_Nesting_Structure",
	"Nesting_On_Artificial",
	"Nest_Elevation_Min",
	"Nest_Elevation_Max",
	"Urban_Nester_YN",
	"Urban_Forager_YN",
	"AcceptsProvisions_YN",
	"Urban_NestMortality",
	"Exurban_NestMortality",
	"Urban_RangeSize",
	"Exurban_RangeSize",
	"Urban_Primary_Diet",
	"Exurban_Primary_Diet",
}

// Row returns the record as a table row aligned with Columns.
func (r *Record) Row() []string {
	row := make([]string, len(Columns))
	row[0] = r.ScientificName
	row[1] = r.CommonName
	row[2] = r.Order
	row[3] = string(r.IUCNStatus)
	return row
}

// TableEncoder serializes records as a table.
type TableEncoder interface {
	// Encode writes the header row followed by one row per record.
	Encode(w io.Writer, records []*Record) error
}

// TableStore persists an output table with atomic semantics.
// Save writes to a temporary location; Commit makes the table visible at
// its final path; Abort discards it.
type TableStore interface {
	Save(ctx context.Context, records []*Record) error
	Commit() error
	Abort() error

	// Digest returns a 64-bit hash of the bytes written by the last Save.
	// Identical record slices always produce identical digests.
	Digest() uint64
}
