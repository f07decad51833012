// Package nethtml scans HTML documents into birdtab records using the
// golang.org/x/net/html tokenizer.
package nethtml

import (
	"context"
	"errors"
	"io"

	"github.com/fwojciec/birdtab"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// DefaultCharset is the encoding assumed for input documents.
const DefaultCharset = "utf-8"

// Ensure Extractor implements birdtab.RecordExtractor at compile time.
var _ birdtab.RecordExtractor = (*Extractor)(nil)

// Extractor tokenizes an HTML document and feeds it through a fresh
// birdtab.Extractor state machine.
type Extractor struct {
	families birdtab.FamilyOrders
	charset  string
	opts     []birdtab.ExtractorOption
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCharset sets the input encoding label (e.g. "windows-1252").
func WithCharset(label string) Option {
	return func(e *Extractor) {
		e.charset = label
	}
}

// WithExtractorOptions passes options through to the state machine.
func WithExtractorOptions(opts ...birdtab.ExtractorOption) Option {
	return func(e *Extractor) {
		e.opts = append(e.opts, opts...)
	}
}

// NewExtractor creates a new Extractor. Pass birdtab.DefaultFamilyOrders
// for multi-family documents and nil for single-family documents.
func NewExtractor(families birdtab.FamilyOrders, opts ...Option) *Extractor {
	e := &Extractor{
		families: families,
		charset:  DefaultCharset,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract scans the whole document and returns its complete records in
// card encounter order.
func (e *Extractor) Extract(ctx context.Context, r io.Reader) ([]*birdtab.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	decoded, err := charset.NewReaderLabel(e.charset, r)
	if err != nil {
		return nil, birdtab.Errorf(birdtab.EINVALID, "unsupported charset %q", e.charset)
	}

	sm := birdtab.NewExtractor(e.families, e.opts...)
	if err := Scan(decoded, sm.Consume); err != nil {
		return nil, err
	}
	return sm.Records(), nil
}

// Scan tokenizes r and passes every start tag, text and end tag to fn in
// document order. Self-closing tags produce a start and an end event.
// Comments and doctypes are skipped. Malformed markup is tokenized as
// leniently as the HTML5 tokenizer allows; only read errors are returned.
func Scan(r io.Reader, fn func(birdtab.Event)) error {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return birdtab.Errorf(birdtab.EINTERNAL, "failed to read HTML: %v", err)
			}
			return nil
		case html.StartTagToken:
			fn(startTag(z))
		case html.SelfClosingTagToken:
			ev := startTag(z)
			fn(ev)
			fn(birdtab.EndTag(ev.Tag))
		case html.EndTagToken:
			name, _ := z.TagName()
			fn(birdtab.EndTag(string(name)))
		case html.TextToken:
			fn(birdtab.Text(string(z.Text())))
		}
	}
}

func startTag(z *html.Tokenizer) birdtab.Event {
	name, hasAttr := z.TagName()
	ev := birdtab.StartTag(string(name))
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		ev.Attrs = append(ev.Attrs, birdtab.Attr{Key: string(key), Val: string(val)})
	}
	return ev
}
