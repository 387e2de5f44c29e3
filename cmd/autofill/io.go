package main

import (
	"bufio"
	"bytes"
	"log"

	"github.com/carbocation/pfx"
	autofill "github.com/the-fungus-among-us/GSC-form-autofill"
	"github.com/the-fungus-among-us/GSC-form-autofill/indexref"
	"github.com/the-fungus-among-us/GSC-form-autofill/platelayout"
)

func loadLayout(cfg config) (*platelayout.Layout, error) {
	var lines []platelayout.Line

	if autofill.IsSpreadsheet(cfg.LayoutPath) {
		rows, err := autofill.ReadSpreadsheetRows(cfg.LayoutPath, client)
		if err != nil {
			return nil, err
		}
		lines = platelayout.FromRows(rows)
	} else {
		data, err := autofill.ReadInput(cfg.LayoutPath, client, cfg.Encoding)
		if err != nil {
			return nil, err
		}

		delim, err := autofill.ResolveDelimiter(cfg.Delimiter, data)
		if err != nil {
			return nil, err
		}
		if cfg.Delimiter == autofill.DelimiterAuto {
			log.Printf("Determined layout delimiter to be %q\n", string(delim))
		}

		lines, err = platelayout.ScanLines(bytes.NewReader(data), delim)
		if err != nil {
			return nil, pfx.Err(err)
		}
	}

	return platelayout.Parse(lines, platelayout.Options{AllowTruncated: cfg.AllowTruncated})
}

func loadReference(cfg config) (*indexref.Reference, error) {
	data, err := autofill.ReadInput(cfg.ReferencePath, client, cfg.Encoding)
	if err != nil {
		return nil, err
	}

	delim, err := autofill.ResolveDelimiter(cfg.Delimiter, data)
	if err != nil {
		return nil, err
	}
	if cfg.Delimiter == autofill.DelimiterAuto {
		log.Printf("Determined reference delimiter to be %q\n", string(delim))
	}

	return indexref.Load(bytes.NewReader(data), indexref.Options{
		Delimiter: delim,
		Header:    cfg.Header,
	})
}

// writeFile creates path, lets fill write through a buffer, and only reports
// success once the buffer is flushed and the file (or upload) is closed.
func writeFile(path string, fill func(w *bufio.Writer) error) error {
	out, err := autofill.MaybeCreateWriterToGoogleStorage(path, client)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(out)
	if err := fill(bw); err != nil {
		out.Close()
		return pfx.Err(err)
	}

	if err := bw.Flush(); err != nil {
		out.Close()
		return pfx.Err(err)
	}

	if err := out.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
