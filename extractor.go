package birdtab

import "strings"

// CaptureField is the record field that text events are currently
// captured into. At most one field captures at a time.
type CaptureField int

// CaptureField constants.
const (
	CaptureNone CaptureField = iota
	CaptureCommonName
	CaptureScientificName
	CaptureIUCNStatus
)

// String returns the field name.
func (f CaptureField) String() string {
	switch f {
	case CaptureCommonName:
		return "common_name"
	case CaptureScientificName:
		return "scientific_name"
	case CaptureIUCNStatus:
		return "iucn_status"
	default:
		return "none"
	}
}

// Markup names the elements and attributes that make up a species card.
type Markup struct {
	// GroupTag carrying GroupAttr opens a family group (multi-family only).
	GroupTag  string
	GroupAttr string

	// CardTag carrying CardAttr starts a new card. CardAttr holds the
	// species code. A CardCloseTag end tag finishes the card.
	CardTag      string
	CardAttr     string
	CardCloseTag string

	// CaptureTag is the element type of the name headings and the badge.
	// Any CaptureTag end tag stops capturing, whichever field was active.
	CaptureTag string

	// CommonNameClass and BadgeClass must equal the class attribute.
	// ScientificNameClass only needs to appear within it.
	CommonNameClass     string
	ScientificNameClass string
	BadgeClass          string
}

// DefaultMarkup matches the eBird taxonomy card markup.
var DefaultMarkup = Markup{
	GroupTag:            "ol",
	GroupAttr:           "data-familyindex",
	CardTag:             "div",
	CardAttr:            "data-speciescode",
	CardCloseTag:        "li",
	CaptureTag:          "span",
	CommonNameClass:     "Heading-main",
	ScientificNameClass: "Heading-sub--sci",
	BadgeClass:          "Badge-label",
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMarkup overrides DefaultMarkup.
func WithMarkup(m Markup) ExtractorOption {
	return func(e *Extractor) {
		e.markup = m
	}
}

// Extractor reconstructs species records from a markup event stream.
// It is a single-pass state machine driven by Consume; it never fails,
// whatever the shape of the input.
//
// An Extractor is not safe for concurrent use.
type Extractor struct {
	markup   Markup
	families FamilyOrders // nil in single-family mode

	records []*Record
	current card
	capture CaptureField
	order   string // order of the enclosing family group
}

// card accumulates the fields of the card being scanned. Name fields keep
// the raw captured text and are whitespace-normalized when read.
type card struct {
	speciesCode string
	order       string
	common      strings.Builder
	scientific  strings.Builder
	status      IUCNStatus
}

func (c *card) record() *Record {
	return &Record{
		SpeciesCode:    c.speciesCode,
		ScientificName: normalizeSpace(c.scientific.String()),
		CommonName:     normalizeSpace(c.common.String()),
		Order:          c.order,
		IUCNStatus:     c.status,
	}
}

func (c *card) reset(speciesCode, order string) {
	c.speciesCode = speciesCode
	c.order = order
	c.common.Reset()
	c.scientific.Reset()
	c.status = ""
}

// NewExtractor returns an Extractor. A non-nil families table enables
// multi-family mode, where each card takes the order of its enclosing
// family group. With nil families every record has an empty order and the
// caller stamps it with StampOrder.
func NewExtractor(families FamilyOrders, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		markup:   DefaultMarkup,
		families: families,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Consume advances the state machine by one event.
func (e *Extractor) Consume(ev Event) {
	switch ev.Type {
	case StartTagEvent:
		e.startTag(ev)
	case TextEvent:
		e.text(ev.Text)
	case EndTagEvent:
		e.endTag(ev.Tag)
	}
}

func (e *Extractor) startTag(ev Event) {
	m := e.markup

	if e.families != nil && ev.Tag == m.GroupTag {
		if idx, ok := ev.Attr(m.GroupAttr); ok {
			e.order = e.families.Order(idx)
		}
	}

	if ev.Tag == m.CardTag {
		if code, ok := ev.Attr(m.CardAttr); ok {
			e.current.reset(code, e.order)
			e.capture = CaptureNone
		}
	}

	if ev.Tag != m.CaptureTag {
		return
	}
	class, _ := ev.Attr("class")
	switch {
	case class == m.BadgeClass:
		e.capture = CaptureIUCNStatus
	case strings.Contains(class, m.ScientificNameClass):
		e.capture = CaptureScientificName
	case class == m.CommonNameClass:
		e.capture = CaptureCommonName
	}
}

func (e *Extractor) text(s string) {
	switch e.capture {
	case CaptureCommonName:
		e.current.common.WriteString(s)
	case CaptureScientificName:
		e.current.scientific.WriteString(s)
	case CaptureIUCNStatus:
		// Badges may hold incidental text; only a known code is kept and
		// a later valid code overwrites an earlier one.
		if status, ok := ParseIUCNStatus(s); ok {
			e.current.status = status
		}
	}
}

func (e *Extractor) endTag(tag string) {
	if tag == e.markup.CaptureTag {
		e.capture = CaptureNone
	}

	if tag == e.markup.CardCloseTag {
		if r := e.current.record(); r.Complete() {
			e.records = append(e.records, r)
		}
		e.current.reset("", "")
	}
}

// Capture returns the field currently capturing text.
func (e *Extractor) Capture() CaptureField {
	return e.capture
}

// Records returns the committed records in card encounter order.
func (e *Extractor) Records() []*Record {
	return e.records
}

// Reset discards all state so the Extractor can scan another document.
func (e *Extractor) Reset() {
	e.records = nil
	e.current.reset("", "")
	e.capture = CaptureNone
	e.order = ""
}

// normalizeSpace collapses whitespace runs to single spaces and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
