package autofill

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/extrame/xls"
)

// IsSpreadsheet reports whether path names a legacy Excel workbook.
func IsSpreadsheet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xls")
}

// ReadSpreadsheetRows flattens every sheet of an .xls workbook into one list
// of rows, sheet after sheet, in the order the workbook stores them. Missing
// rows come back as nil so that line numbering matches the sheet.
func ReadSpreadsheetRows(path string, client *storage.Client) ([][]string, error) {
	f, err := MaybeOpenSeekerFromGoogleStorage(path, client)
	if err != nil {
		// Unwrapped, so callers can still test for fs.ErrNotExist
		return nil, err
	}
	defer f.Close()

	// The xls reader needs real random access, which a storage object does not
	// give us, so the workbook is held in memory.
	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	spreadsheet, err := xls.OpenReader(bytes.NewReader(raw), "utf-8")
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	var output [][]string
	sheetCount := spreadsheet.NumSheets()
	for sheetID := 0; sheetID < sheetCount; sheetID++ {
		sheet := spreadsheet.GetSheet(sheetID)
		if sheet == nil {
			return nil, pfx.Err(fmt.Errorf("%s: sheet %d was nil", path, sheetID))
		}

		log.Printf("Reading sheet %d (%s) of %s\n", sheetID, sheet.Name, filepath.Base(path))

		for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
			row := sheet.Row(rowID)
			if row == nil {
				output = append(output, nil)
				continue
			}

			cells := make([]string, 0, row.LastCol()+1)
			for colID := 0; colID <= row.LastCol(); colID++ {
				cells = append(cells, row.Col(colID))
			}
			output = append(output, cells)
		}
	}

	return output, nil
}
