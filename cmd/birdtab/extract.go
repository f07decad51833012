package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/birdtab"
	"github.com/fwojciec/birdtab/fs"
)

// DefaultCorpusOutput is the output path in corpus mode.
const DefaultCorpusOutput = "birds_corpus.csv"

// samplesPerOrder is the number of sample records shown per order.
const samplesPerOrder = 3

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := fs.ReadDocument(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", birdtab.ErrorMessage(err))
		return err
	}

	name := filepath.Base(c.Input)
	mode := c.Mode
	if mode == "" || mode == birdtab.ModeAuto {
		mode = deps.Detector.Detect(string(data))
	}

	extractor := deps.Taxonomy
	if mode == birdtab.ModeCorpus {
		extractor = deps.Corpus
	}

	fmt.Fprintf(deps.Stdout, "Reading %s (%s mode)...\n", name, mode)
	records, err := extractor.Extract(deps.Ctx, bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", birdtab.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "Warning: no birds found in %s\n", name)
		return nil
	}

	if mode == birdtab.ModeTaxonomy {
		birdtab.StampOrder(records, deps.Filenames.Order(c.Input))
	}

	output := c.outputPath(mode)
	store := deps.NewStore(output)
	if err := store.Save(deps.Ctx, records); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", output, err)
		return err
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error committing %s: %v\n", output, err)
		return err
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintf(deps.Stdout, "Successfully parsed %d birds from %s\n", len(records), name)
	fmt.Fprintf(deps.Stdout, "Output written to: %s\n", output)
	fmt.Fprintf(deps.Stdout, "Checksum: %016x\n", store.Digest())
	fmt.Fprintln(deps.Stdout, rule)

	if mode == birdtab.ModeCorpus {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprint(deps.Stdout, birdtab.FormatOrderBreakdown(records))
		fmt.Fprintln(deps.Stdout)
		fmt.Fprint(deps.Stdout, birdtab.FormatSamples(records, samplesPerOrder))
		return nil
	}

	fmt.Fprintln(deps.Stdout)
	fmt.Fprint(deps.Stdout, birdtab.FormatRecords(records))
	return nil
}

// outputPath returns the explicit output path or the mode's default.
func (c *ExtractCmd) outputPath(mode birdtab.Mode) string {
	if c.Output != "" {
		return c.Output
	}
	if mode == birdtab.ModeCorpus {
		return DefaultCorpusOutput
	}
	return birdtab.Stem(c.Input) + "_birds.csv"
}
