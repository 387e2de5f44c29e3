// Package platelayout parses plate layout sheets: blocks of a header line, a
// column label row, and 8 rows (A-H) of 12 wells holding sample names.
package platelayout

import (
	"fmt"
	"log"
	"strings"
)

type State int

const (
	AwaitHeader State = iota
	ReadLabels
	ReadRow
)

func (s State) String() string {
	switch s {
	case AwaitHeader:
		return "AwaitHeader"
	case ReadLabels:
		return "ReadLabels"
	case ReadRow:
		return "ReadRow"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Options struct {
	// AllowTruncated keeps whatever rows a short block has instead of failing.
	AllowTruncated bool
}

// Layout is everything read from a layout file.
type Layout struct {
	Plates     []Plate
	Samples    *SampleMap
	EmptyWells []string
}

// Parser is a line-at-a-time state machine over a layout. Use Parse unless
// lines arrive incrementally.
type Parser struct {
	Options Options

	state   State
	row     int
	columns [Columns]int
	plate   Plate
	layout  Layout
}

func NewParser(opts Options) *Parser {
	return &Parser{
		Options: opts,
		layout:  Layout{Samples: NewSampleMap()},
	}
}

// Parse runs a fresh Parser over lines.
func Parse(lines []Line, opts Options) (*Layout, error) {
	p := NewParser(opts)
	for _, line := range lines {
		if err := p.Feed(line); err != nil {
			return nil, err
		}
	}

	return p.Finish()
}

// State reports where the parser is. Row is the 0-based row being awaited
// when State is ReadRow.
func (p *Parser) State() (state State, row int) {
	return p.state, p.row
}

// Feed advances the parser by one line.
func (p *Parser) Feed(line Line) error {
	switch p.state {
	case AwaitHeader:
		if !IsHeaderLine(line) {
			return nil
		}
		return p.startPlate(line)

	case ReadLabels:
		columns, err := ParseColumnLabels(line)
		if err != nil {
			if !IsHeaderLine(line) {
				return err
			}
			if err := p.truncated(line); err != nil {
				return err
			}
			return p.startPlate(line)
		}
		p.columns = columns
		p.state = ReadRow
		p.row = 0

	case ReadRow:
		// Well contents may hold a ':', so only a line that cannot be the
		// expected row ends the block early.
		if !p.isExpectedRow(line) && IsHeaderLine(line) {
			if err := p.truncated(line); err != nil {
				return err
			}
			return p.startPlate(line)
		}

		if err := p.readRow(line); err != nil {
			return err
		}
		p.row++
		p.plate.RowsRead = p.row
		if p.row == Rows {
			p.endPlate()
		}
	}

	return nil
}

// Finish checks that the last block was complete and returns the layout.
func (p *Parser) Finish() (*Layout, error) {
	if p.state != AwaitHeader {
		if err := p.truncated(Line{Number: -1, Text: "end of file"}); err != nil {
			return nil, err
		}
	}

	out := p.layout
	return &out, nil
}

func (p *Parser) startPlate(line Line) error {
	plate, err := ParseHeader(line)
	if err != nil {
		return err
	}

	p.plate = plate
	p.state = ReadLabels
	p.row = 0

	return nil
}

func (p *Parser) endPlate() {
	p.layout.Plates = append(p.layout.Plates, p.plate)
	p.plate = Plate{}
	p.state = AwaitHeader
	p.row = 0
}

// truncated handles a block that ended before row H, at line.
func (p *Parser) truncated(line Line) error {
	where := fmt.Sprintf("line %d", line.Number)
	if line.Number < 0 {
		where = line.Text
	}

	if !p.Options.AllowTruncated {
		return fmt.Errorf("plate %s (line %d) ended at %s in state %s after %d of %d rows: %w",
			p.plate.PlateID, p.plate.Line, where, p.state, p.row, Rows, ErrTruncatedBlock)
	}

	log.Printf("Warning: plate %s (line %d) ended at %s after %d of %d rows; keeping what was read\n",
		p.plate.PlateID, p.plate.Line, where, p.row, Rows)
	p.endPlate()

	return nil
}

// isExpectedRow reports whether line's row label is blank or the letter of
// the row being awaited.
func (p *Parser) isExpectedRow(line Line) bool {
	if len(line.Fields) == 0 {
		return true
	}
	label := strings.TrimSpace(line.Fields[0])
	return label == "" || strings.EqualFold(label, string(RowLetter(p.row)))
}

// readRow records one well per labelled column. Cells missing from the end of
// a short row are empty wells.
func (p *Parser) readRow(line Line) error {
	letter := RowLetter(p.row)

	if !p.isExpectedRow(line) {
		label := strings.TrimSpace(line.Fields[0])
		return lineError(line, ErrMalformedRow, "row %d of plate %s is labelled %q, expected %c", p.row+1, p.plate.PlateID, label, letter)
	}

	for i, column := range p.columns {
		var content string
		if i+1 < len(line.Fields) {
			content = strings.TrimSpace(line.Fields[i+1])
		}

		well := Well{
			Position: WellPosition{PlateID: p.plate.PlateID, Row: letter, Column: column},
			Content:  content,
		}
		indexID := well.Position.IndexID()

		if content == "" {
			p.layout.EmptyWells = append(p.layout.EmptyWells, indexID)
		} else {
			well.Sample = p.plate.SampleName(content)
			if previous, replaced := p.layout.Samples.Set(well.Sample, indexID); replaced {
				log.Printf("Warning: sample %s appears at %s and %s; keeping %s\n", well.Sample, previous, indexID, indexID)
			}
		}

		p.plate.Wells = append(p.plate.Wells, well)
	}

	for i := Columns + 1; i < len(line.Fields); i++ {
		if extra := strings.TrimSpace(line.Fields[i]); extra != "" {
			log.Printf("Warning: line %d has content beyond column %d that was ignored: %q\n", line.Number, Columns, extra)
			break
		}
	}

	return nil
}
