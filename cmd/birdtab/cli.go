package main

import (
	"context"
	"io"

	"github.com/fwojciec/birdtab"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Detector birdtab.ModeDetector

	// Corpus resolves orders from family groups; Taxonomy leaves them
	// empty for stamping from the file name.
	Corpus   birdtab.RecordExtractor
	Taxonomy birdtab.RecordExtractor

	Filenames birdtab.FilenameOrders

	// NewStore opens the table store for an output path.
	NewStore func(path string) birdtab.TableStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mode    string `short:"m" enum:"auto,corpus,taxonomy" default:"auto" help:"Order resolution: corpus (per family group), taxonomy (from file name) or auto"`
	Charset string `default:"utf-8" help:"Input document encoding"`
	Debug   bool   `short:"d" env:"BIRDTAB_DEBUG" help:"Log pipeline steps to stderr"`
	Input   string `arg:"" required:"" help:"HTML document to parse"`
	Output  string `arg:"" optional:"" help:"Output CSV path (default: birds_corpus.csv, or <name>_birds.csv in taxonomy mode)"`
}

// ExtractCmd extracts records from one document and writes the table.
type ExtractCmd struct {
	Input  string
	Output string
	Mode   birdtab.Mode
}
