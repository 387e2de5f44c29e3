// autofill fills in a sequencing sample sheet from a plate layout. Each well
// of each plate is looked up in the index sequence database by its
// plate_row_column identifier; samples that share an index pair are merged
// into one row.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	autofill "github.com/the-fungus-among-us/GSC-form-autofill"
	_ "github.com/the-fungus-among-us/GSC-form-autofill/compileinfoprint"
	"github.com/the-fungus-among-us/GSC-form-autofill/indexref"
	"github.com/the-fungus-among-us/GSC-form-autofill/samplesheet"
)

const EmptyWellsFilename = "emptycells.txt"

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

// Safe for concurrent use by multiple goroutines
var client *storage.Client

type config struct {
	LayoutPath     string
	ReferencePath  string
	OutputPath     string
	EmptyWellsPath string
	Delimiter      string
	Encoding       string
	Header         indexref.HeaderMode
	AllowTruncated bool
}

func main() {
	defer STDOUT.Flush()

	var cfg config
	var headerMode string

	flag.StringVar(&cfg.LayoutPath, "layout", "", "Path to the plate layout (text, csv, or .xls; may be compressed). Optionally, may be a google storage URL (gs://). Prompted for if not given.")
	flag.StringVar(&cfg.ReferencePath, "reference", "", "Path to the index sequence database (identifier,i5,i7 per line). Optionally, may be a google storage URL (gs://). Prompted for if not given.")
	flag.StringVar(&cfg.OutputPath, "output", "", "Path to the sample sheet CSV to write. Optionally, may be a google storage URL (gs://). Prompted for if not given.")
	flag.StringVar(&cfg.EmptyWellsPath, "empty_wells", "", "Path to write the list of empty wells. Defaults to "+EmptyWellsFilename+" next to the layout.")
	flag.StringVar(&cfg.Delimiter, "delimiter", ",", "Cell delimiter of the layout and reference files. Use 'tab' for tabs, or 'auto' to detect it.")
	flag.StringVar(&cfg.Encoding, "encoding", "utf-8", "Character encoding of the layout and reference files, e.g. windows-1252 or utf-16le.")
	flag.StringVar(&headerMode, "reference_header", "auto", "Whether the index sequence database starts with a header line: auto, yes, or no.")
	flag.BoolVar(&cfg.AllowTruncated, "allow_truncated", false, "Keep plate blocks that have fewer than 8 rows instead of stopping with an error?")
	flag.Parse()

	var err error
	cfg.Header, err = indexref.ParseHeaderMode(headerMode)
	if err != nil {
		flag.Usage()
		log.Fatalln(err)
	}

	if err := promptForMissingPaths(&cfg, bufio.NewReader(os.Stdin), os.Stderr); err != nil {
		flag.Usage()
		log.Fatalln(err)
	}

	// Initialize the Google Storage client only if we're pointing to Google
	// Storage paths.
	for _, p := range []string{cfg.LayoutPath, cfg.ReferencePath, cfg.OutputPath, cfg.EmptyWellsPath} {
		if autofill.IsGoogleStoragePath(p) {
			client, err = storage.NewClient(context.Background())
			if err != nil {
				log.Fatalln(err)
			}

			break
		}
	}

	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg config) error {
	if cfg.EmptyWellsPath == "" {
		cfg.EmptyWellsPath = autofill.SiblingPath(cfg.LayoutPath, EmptyWellsFilename)
	}

	layout, err := loadLayout(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.LayoutPath, err)
	}
	log.Printf("Read %d plates from %s\n", len(layout.Plates), cfg.LayoutPath)

	ref, err := loadReference(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.ReferencePath, err)
	}
	if ref.SkippedHeader != nil {
		log.Printf("Skipped header line of %s: %v\n", cfg.ReferencePath, ref.SkippedHeader)
	}

	grouping := samplesheet.GroupSamples(layout.Samples, ref)
	for _, indexID := range grouping.Unrecognized {
		log.Printf("Error: %s not recognized\n", indexID)
	}

	rows := samplesheet.Rows(grouping, ref)
	if err := writeFile(cfg.OutputPath, func(w *bufio.Writer) error {
		return samplesheet.WriteCSV(w, rows)
	}); err != nil {
		return err
	}

	if err := writeFile(cfg.EmptyWellsPath, func(w *bufio.Writer) error {
		return samplesheet.WriteEmptyWells(w, layout.EmptyWells)
	}); err != nil {
		return err
	}

	summary := samplesheet.Summarize(layout, ref, grouping)
	fmt.Fprintf(STDOUT, "%d empty cells skipped (see %s for locations)\n", summary.EmptyWells, filepath.Base(cfg.EmptyWellsPath))
	fmt.Fprintf(STDOUT, "%d unique index pairs detected in %s\n", summary.ReferencePairs, filepath.Base(cfg.ReferencePath))
	fmt.Fprintf(STDOUT, "%d samples and %d unique index pairs detected in %s\n", summary.Samples, summary.UniquePairs, filepath.Base(cfg.LayoutPath))
	fmt.Fprintf(STDOUT, "File saved as %s\n", cfg.OutputPath)

	return nil
}
