package goquery_test

import (
	"testing"

	"github.com/fwojciec/birdtab"
	"github.com/fwojciec/birdtab/goquery"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("detects corpus from family index containers", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<ol class="TaxonomyList" data-familyindex="fam_33_0">
	<li><div data-speciescode="osprey"><span class="Heading-main">Osprey</span></div></li>
</ol>
</body>
</html>`

		d := goquery.NewDetector()
		mode := d.Detect(html)

		assert.Equal(t, birdtab.ModeCorpus, mode)
	})

	t.Run("detects taxonomy when no family containers exist", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<ul>
	<li><div data-speciescode="blkvul"><span class="Heading-main">Black Vulture</span></div></li>
</ul>
</body>
</html>`

		d := goquery.NewDetector()
		mode := d.Detect(html)

		assert.Equal(t, birdtab.ModeTaxonomy, mode)
	})

	t.Run("ignores family attribute on other elements", func(t *testing.T) {
		t.Parallel()

		html := `<div data-familyindex="fam_33_0"></div>`

		d := goquery.NewDetector()
		mode := d.Detect(html)

		assert.Equal(t, birdtab.ModeTaxonomy, mode)
	})

	t.Run("treats empty document as taxonomy", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewDetector()

		assert.Equal(t, birdtab.ModeTaxonomy, d.Detect(""))
	})

	t.Run("uses custom markup", func(t *testing.T) {
		t.Parallel()

		markup := birdtab.DefaultMarkup
		markup.GroupTag = "section"
		markup.GroupAttr = "data-family"
		html := `<section data-family="f_1"><article></article></section>`

		d := goquery.NewDetectorWithMarkup(markup)

		assert.Equal(t, birdtab.ModeCorpus, d.Detect(html))
	})
}
