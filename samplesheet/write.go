package samplesheet

import (
	"bufio"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// WriteCSV writes the header "Sample Name,i7 Sequence,i5 Sequence-FWD" and
// then one line per row.
func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// WriteEmptyWells writes one index identifier per line.
func WriteEmptyWells(w io.Writer, indexIDs []string) error {
	bw := bufio.NewWriter(w)
	for _, id := range indexIDs {
		if _, err := fmt.Fprintln(bw, id); err != nil {
			return pfx.Err(err)
		}
	}

	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
