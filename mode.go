package birdtab

// Mode selects how taxonomic orders are resolved for a document.
type Mode string

// Mode constants.
const (
	// ModeAuto lets a ModeDetector pick between corpus and taxonomy mode.
	ModeAuto Mode = "auto"

	// ModeCorpus resolves the order per card from the enclosing family
	// group (multi-family documents).
	ModeCorpus Mode = "corpus"

	// ModeTaxonomy resolves one order for the whole document from its
	// file name (single-family documents).
	ModeTaxonomy Mode = "taxonomy"
)

// ModeDetector identifies the operating mode from document content.
type ModeDetector interface {
	// Detect returns ModeCorpus or ModeTaxonomy. Never returns ModeAuto.
	Detect(html string) Mode
}
