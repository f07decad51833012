// Package goquery inspects HTML documents with github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/birdtab"
)

// Ensure Detector implements birdtab.ModeDetector at compile time.
var _ birdtab.ModeDetector = (*Detector)(nil)

// Detector picks the operating mode from document structure. Documents
// that group cards under family containers are multi-family corpora;
// everything else is treated as a single-family export.
type Detector struct {
	markup birdtab.Markup
}

// NewDetector creates a new Detector for birdtab.DefaultMarkup.
func NewDetector() *Detector {
	return NewDetectorWithMarkup(birdtab.DefaultMarkup)
}

// NewDetectorWithMarkup creates a new Detector for custom markup.
func NewDetectorWithMarkup(m birdtab.Markup) *Detector {
	return &Detector{markup: m}
}

// Detect returns ModeCorpus if any family group container is present,
// otherwise ModeTaxonomy.
func (d *Detector) Detect(html string) birdtab.Mode {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return birdtab.ModeTaxonomy
	}

	if d.hasSelector(doc, d.markup.GroupTag+"["+d.markup.GroupAttr+"]") {
		return birdtab.ModeCorpus
	}
	return birdtab.ModeTaxonomy
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
