package birdtab

import (
	"context"
	"io"
	"strings"
)

// IUCNStatus is an IUCN Red List category abbreviation.
// The zero value means the status is absent.
type IUCNStatus string

// IUCNStatus constants. These are the only statuses a Record may carry.
const (
	StatusCriticallyEndangered IUCNStatus = "CR"
	StatusEndangered           IUCNStatus = "EN"
	StatusVulnerable           IUCNStatus = "VU"
	StatusNearThreatened       IUCNStatus = "NT"
	StatusLeastConcern         IUCNStatus = "LC"
	StatusDataDeficient        IUCNStatus = "DD"
	StatusExtinctInWild        IUCNStatus = "EW"
	StatusExtinct              IUCNStatus = "EX"
)

var iucnStatuses = map[IUCNStatus]bool{
	StatusCriticallyEndangered: true,
	StatusEndangered:           true,
	StatusVulnerable:           true,
	StatusNearThreatened:       true,
	StatusLeastConcern:         true,
	StatusDataDeficient:        true,
	StatusExtinctInWild:        true,
	StatusExtinct:              true,
}

// ParseIUCNStatus returns the status named by the first whitespace-delimited
// token of badge text, e.g. "LC Least Concern" → LC.
// Returns false if the text is empty or the token is not a known status.
func ParseIUCNStatus(text string) (IUCNStatus, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", false
	}
	status := IUCNStatus(fields[0])
	if !iucnStatuses[status] {
		return "", false
	}
	return status, true
}

// Record is one extracted bird species.
type Record struct {
	// SpeciesCode identifies the card the record came from.
	// It is never written to the output table.
	SpeciesCode string `json:"speciesCode"`

	ScientificName string     `json:"scientificName"`
	CommonName     string     `json:"commonName"`
	Order          string     `json:"order"`
	IUCNStatus     IUCNStatus `json:"iucnStatus"`
}

// Complete reports whether the record has both names and may be emitted.
func (r *Record) Complete() bool {
	return r.ScientificName != "" && r.CommonName != ""
}

// Validate returns an error if the record is missing a required name.
func (r *Record) Validate() error {
	if r.ScientificName == "" {
		return Errorf(EINVALID, "record scientific name required")
	}
	if r.CommonName == "" {
		return Errorf(EINVALID, "record common name required")
	}
	return nil
}

// StampOrder sets order on every record. Used in single-family mode where
// the order is resolved once per document.
func StampOrder(records []*Record, order string) {
	for _, r := range records {
		r.Order = order
	}
}

// RecordExtractor extracts species records from an HTML document.
type RecordExtractor interface {
	// Extract scans the whole document and returns complete records in
	// card encounter order. Malformed markup is absorbed, not reported.
	Extract(ctx context.Context, r io.Reader) ([]*Record, error)
}
