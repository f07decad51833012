package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/birdtab"
	"github.com/fwojciec/birdtab/csv"
	"github.com/fwojciec/birdtab/fs"
	"github.com/fwojciec/birdtab/goquery"
	"github.com/fwojciec/birdtab/nethtml"
	bslog "github.com/fwojciec/birdtab/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Order tables. Set before calling Run() to override the defaults.
	Families  birdtab.FamilyOrders
	Filenames birdtab.FilenameOrders
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Families:  birdtab.DefaultFamilyOrders,
		Filenames: birdtab.DefaultFilenameOrders,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("birdtab"),
		kong.Description("Extract bird species from taxonomy HTML into a CSV dataset"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no input file specified. Run 'birdtab --help' for usage")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Detector:  goquery.NewDetector(),
		Corpus:    nethtml.NewExtractor(m.Families, nethtml.WithCharset(cli.Charset)),
		Taxonomy:  nethtml.NewExtractor(nil, nethtml.WithCharset(cli.Charset)),
		Filenames: m.Filenames,
		NewStore: func(path string) birdtab.TableStore {
			return fs.NewFileStore(path, csv.NewEncoder())
		},
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Detector = bslog.NewLoggingDetector(deps.Detector, logger)
		deps.Corpus = bslog.NewLoggingExtractor(deps.Corpus, logger)
		deps.Taxonomy = bslog.NewLoggingExtractor(deps.Taxonomy, logger)
		newStore := deps.NewStore
		deps.NewStore = func(path string) birdtab.TableStore {
			return bslog.NewLoggingStore(newStore(path), logger)
		}
	}

	cmd := &ExtractCmd{
		Input:  cli.Input,
		Output: cli.Output,
		Mode:   birdtab.Mode(cli.Mode),
	}

	return cmd.Run(deps)
}
