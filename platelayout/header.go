package platelayout

import (
	"strconv"
	"strings"
)

// Plate is one block of the layout: the plate it describes and the wells read
// from it.
type Plate struct {
	PlateID  string
	Project  string
	Amplicon string

	// Line is the 1-based line number of the header.
	Line int
	// RowsRead is less than Rows only for a truncated block.
	RowsRead int
	Wells    []Well
}

// SampleName is the name a well's content is known by in the sample sheet.
func (p Plate) SampleName(content string) string {
	return p.Project + "_" + p.Amplicon + "_" + content
}

// IsHeaderLine reports whether the line starts a new plate block.
func IsHeaderLine(line Line) bool {
	return strings.Contains(line.Text, ":")
}

// headerText rebuilds the header from its non-empty cells, so that a header
// followed by empty spreadsheet cells, or split over several cells, reads the
// same as one typed on a single line.
func headerText(line Line) string {
	parts := make([]string, 0, len(line.Fields))
	for _, field := range line.Fields {
		if field = strings.TrimSpace(field); field != "" {
			parts = append(parts, field)
		}
	}

	return strings.Join(parts, " ")
}

// ParseHeader reads "<plate>:<anything> <amplicon>". The project is the
// second whitespace-separated word of the whole line, wherever the colon is.
func ParseHeader(line Line) (Plate, error) {
	text := headerText(line)

	colon := strings.Index(text, ":")
	if colon < 0 {
		return Plate{}, lineError(line, ErrMalformedHeader, "no ':' after the plate name")
	}

	plateID := strings.TrimSpace(text[:colon])
	if plateID == "" {
		return Plate{}, lineError(line, ErrMalformedHeader, "no plate name before ':'")
	}

	description := text[colon+1:]
	if next := strings.Index(description, ":"); next >= 0 {
		description = description[:next]
	}
	descriptionWords := strings.Fields(description)
	if len(descriptionWords) == 0 {
		return Plate{}, lineError(line, ErrMalformedHeader, "no amplicon type after ':'")
	}

	words := strings.Fields(text)
	if len(words) < 2 {
		return Plate{}, lineError(line, ErrMalformedHeader, "no project name")
	}

	return Plate{
		PlateID:  plateID,
		Project:  words[1],
		Amplicon: descriptionWords[len(descriptionWords)-1],
		Line:     line.Number,
	}, nil
}

// ParseColumnLabels reads the 12 column numbers that follow the row-label
// column.
func ParseColumnLabels(line Line) ([Columns]int, error) {
	var out [Columns]int

	if got := len(line.Fields) - 1; got < Columns {
		return out, lineError(line, ErrMalformedHeader, "column label row has %d labels, expected %d", got, Columns)
	}

	for i := range out {
		label := strings.TrimSpace(line.Fields[i+1])
		n, err := strconv.Atoi(label)
		if err != nil || n < 1 || n > MaxColumnLabel {
			return out, lineError(line, ErrMalformedHeader, "column label %d is %q, expected a number from 1 to %d", i+1, label, MaxColumnLabel)
		}
		out[i] = n
	}

	return out, nil
}
