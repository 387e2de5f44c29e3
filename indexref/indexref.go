// Package indexref loads the index sequence database: one line per index
// identifier, followed by its i5 and i7 sequences.
package indexref

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Columns of a reference record, 0-based.
const (
	ColIdentifier = 0
	ColI5         = 1
	ColI7         = 2
)

var ErrMalformedRecord = errors.New("malformed index reference record")

type HeaderMode int

const (
	// HeaderAbsent treats every record as data.
	HeaderAbsent HeaderMode = iota
	// HeaderPresent always discards the first record.
	HeaderPresent
	// HeaderAuto discards the first record only when its sequence columns do
	// not look like IUPAC nucleotide codes.
	HeaderAuto
)

func ParseHeaderMode(s string) (HeaderMode, error) {
	switch strings.ToLower(s) {
	case "auto":
		return HeaderAuto, nil
	case "yes", "true", "present":
		return HeaderPresent, nil
	case "no", "false", "absent":
		return HeaderAbsent, nil
	}
	return HeaderAuto, fmt.Errorf("Header mode %q is not one of auto, yes, no", s)
}

var nucleotides = regexp.MustCompile(`(?i)^[ACGTURYSWKMBDHVN]+$`)

// Pair is the index sequence pair that identifies a sample on the sequencer.
type Pair struct {
	I7 string
	I5 string
}

type Options struct {
	Delimiter rune
	Header    HeaderMode
}

// Reference maps index identifiers to their sequences. IDs keeps the order in
// which identifiers were first seen.
type Reference struct {
	pairs map[string]Pair
	ids   []string

	// SkippedHeader holds the discarded header record, if any.
	SkippedHeader []string
}

func (r *Reference) Lookup(id string) (Pair, bool) {
	p, ok := r.pairs[id]
	return p, ok
}

// Len is the number of distinct identifiers.
func (r *Reference) Len() int {
	return len(r.pairs)
}

func (r *Reference) IDs() []string {
	return r.ids
}

// Add stores a pair. A repeated identifier replaces the earlier sequences.
func (r *Reference) Add(id string, p Pair) {
	if r.pairs == nil {
		r.pairs = make(map[string]Pair)
	}
	if _, exists := r.pairs[id]; !exists {
		r.ids = append(r.ids, id)
	}
	r.pairs[id] = p
}

// Load reads the reference database from r. Records follow CSV quoting, so a
// quoted identifier may contain the delimiter. Blank lines are skipped.
func Load(r io.Reader, opts Options) (*Reference, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	if cr.Comma == 0 {
		cr.Comma = ','
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	out := &Reference{pairs: make(map[string]Pair)}

	for first := true; ; first = false {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("index reference: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if len(row) < 3 {
			return nil, fmt.Errorf("line %d has %d fields, expected at least 3 (%q): %w", line, len(row), strings.Join(row, string(cr.Comma)), ErrMalformedRecord)
		}

		if first && isHeader(row, opts.Header) {
			out.SkippedHeader = row
			continue
		}

		out.Add(strings.TrimSpace(row[ColIdentifier]), Pair{
			I7: strings.TrimSpace(row[ColI7]),
			I5: strings.TrimSpace(row[ColI5]),
		})
	}

	return out, nil
}

func isHeader(row []string, mode HeaderMode) bool {
	switch mode {
	case HeaderPresent:
		return true
	case HeaderAuto:
		return !nucleotides.MatchString(strings.TrimSpace(row[ColI5])) ||
			!nucleotides.MatchString(strings.TrimSpace(row[ColI7]))
	}

	return false
}
