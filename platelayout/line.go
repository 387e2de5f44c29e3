package platelayout

import (
	"bufio"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// Line is one line of a plate layout, already split into cells.
type Line struct {
	// Number is 1-based, for error messages.
	Number int
	Text   string
	Fields []string
}

// ScanLines splits a text layout into lines whose cells are separated by
// delim. Windows line endings and a leading byte order mark are removed.
func ScanLines(r io.Reader, delim rune) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	sep := string(delim)
	var out []Line
	for i := 1; scanner.Scan(); i++ {
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if i == 1 {
			text = strings.TrimPrefix(text, utf8BOM)
		}

		out = append(out, Line{
			Number: i,
			Text:   text,
			Fields: strings.Split(text, sep),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// FromRows adapts spreadsheet rows to lines. The text of each line is its
// cells joined with commas.
func FromRows(rows [][]string) []Line {
	out := make([]Line, 0, len(rows))
	for i, row := range rows {
		fields := row
		if len(fields) == 0 {
			fields = []string{""}
		}

		out = append(out, Line{
			Number: i + 1,
			Text:   strings.Join(fields, ","),
			Fields: fields,
		})
	}

	return out
}
