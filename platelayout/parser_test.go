package platelayout

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

const labelRow = ",1,2,3,4,5,6,7,8,9,10,11,12"

// block builds one plate block. fill returns the content of the well at the
// 0-based row and column.
func block(header string, fill func(row, col int) string) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(labelRow + "\n")
	for r := 0; r < Rows; r++ {
		b.WriteByte(RowLetter(r))
		for c := 0; c < Columns; c++ {
			b.WriteString("," + fill(r, c))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func parseString(t *testing.T, s string, opts Options) (*Layout, error) {
	t.Helper()
	lines, err := ScanLines(strings.NewReader(s), ',')
	if err != nil {
		t.Fatal(err)
	}

	return Parse(lines, opts)
}

func onlyA1(row, col int) string {
	if row == 0 && col == 0 {
		return "s1"
	}
	return ""
}

func TestParseSingleBlock(t *testing.T) {
	input := "Sample submission form\n" + block("Plate1: ProjectX 16S", onlyA1) + "trailing notes\n"

	layout, err := parseString(t, input, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if len(layout.Plates) != 1 {
		t.Fatalf("Expected 1 plate, got %d", len(layout.Plates))
	}
	plate := layout.Plates[0]
	if plate.PlateID != "Plate1" || plate.Project != "ProjectX" || plate.Amplicon != "16S" {
		t.Errorf("Unexpected header: %+v", plate)
	}

	if id, ok := layout.Samples.Get("ProjectX_16S_s1"); !ok || id != "Plate1_A_01" {
		t.Errorf("Expected ProjectX_16S_s1 at Plate1_A_01, got %q (%v)", id, ok)
	}
	if layout.Samples.Len() != 1 {
		t.Errorf("Expected 1 sample, got %d", layout.Samples.Len())
	}

	if len(layout.EmptyWells) != Rows*Columns-1 {
		t.Fatalf("Expected %d empty wells, got %d", Rows*Columns-1, len(layout.EmptyWells))
	}
	if layout.EmptyWells[0] != "Plate1_A_02" || layout.EmptyWells[len(layout.EmptyWells)-1] != "Plate1_H_12" {
		t.Errorf("Unexpected empty well order: first %s, last %s", layout.EmptyWells[0], layout.EmptyWells[len(layout.EmptyWells)-1])
	}
}

func TestEveryWellIsSampleOrEmpty(t *testing.T) {
	fill := func(row, col int) string {
		if (row+col)%3 == 0 {
			return ""
		}
		return fmt.Sprintf("s%d-%d", row, col)
	}
	input := block("P1: Proj ITS", fill) + "\n" + block("P2: Proj 16S", fill)

	layout, err := parseString(t, input, Options{})
	if err != nil {
		t.Fatal(err)
	}

	total := layout.Samples.Len() + len(layout.EmptyWells)
	if total != 2*Rows*Columns {
		t.Errorf("Expected %d wells accounted for, got %d", 2*Rows*Columns, total)
	}

	for _, plate := range layout.Plates {
		if len(plate.Wells) != Rows*Columns {
			t.Errorf("Plate %s has %d wells", plate.PlateID, len(plate.Wells))
		}
		for _, well := range plate.Wells {
			_, isSample := layout.Samples.Get(well.Sample)
			if well.Empty() == isSample {
				t.Errorf("Well %s: empty=%v sample=%v", well.Position, well.Empty(), isSample)
			}
		}
	}
}

func TestIndexIDIsPositional(t *testing.T) {
	a := block("Plate7: P 16S", func(row, col int) string { return "x" + fmt.Sprint(row, col) })
	b := block("Plate7: P 16S", func(row, col int) string { return "y" + fmt.Sprint(row, col) })

	la, err := parseString(t, a, Options{})
	if err != nil {
		t.Fatal(err)
	}
	lb, err := parseString(t, b, Options{})
	if err != nil {
		t.Fatal(err)
	}

	for i := range la.Plates[0].Wells {
		wa, wb := la.Plates[0].Wells[i], lb.Plates[0].Wells[i]
		if wa.Position.IndexID() != wb.Position.IndexID() {
			t.Errorf("Well %d: %s != %s", i, wa.Position.IndexID(), wb.Position.IndexID())
		}
	}

	if got := la.Plates[0].Wells[Columns*2+9].Position.IndexID(); got != "Plate7_C_10" {
		t.Errorf("Expected Plate7_C_10, got %s", got)
	}
}

func TestColumnLabelsDriveColumns(t *testing.T) {
	input := "Plate2: Proj 16S\n,12,11,10,9,8,7,6,5,4,3,2,1\nA,s1\nB\nC\nD\nE\nF\nG\nH\n"

	layout, err := parseString(t, input, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if id, _ := layout.Samples.Get("Proj_16S_s1"); id != "Plate2_A_12" {
		t.Errorf("Expected Plate2_A_12, got %s", id)
	}
	if len(layout.EmptyWells) != Rows*Columns-1 {
		t.Errorf("Short rows should pad with empty wells, got %d", len(layout.EmptyWells))
	}
}

func TestDuplicateSampleKeepsFirstPosition(t *testing.T) {
	input := "Plate1: P 16S\n" + labelRow + "\nA,dup,other,dup\nB\nC\nD\nE\nF\nG\nH\n"

	layout, err := parseString(t, input, Options{})
	if err != nil {
		t.Fatal(err)
	}

	names := layout.Samples.Names()
	if len(names) != 2 || names[0] != "P_16S_dup" || names[1] != "P_16S_other" {
		t.Fatalf("Unexpected order %v", names)
	}
	if id, _ := layout.Samples.Get("P_16S_dup"); id != "Plate1_A_03" {
		t.Errorf("Expected the later well to win, got %s", id)
	}
}

func TestMalformedHeader(t *testing.T) {
	cases := map[string]string{
		"no project":        "Plate1:\n" + labelRow + "\n",
		"no plate":          ": Proj 16S\n" + labelRow + "\n",
		"short labels":      "Plate1: Proj 16S\n,1,2,3\n",
		"non-numeric":       "Plate1: Proj 16S\n,1,2,3,4,5,6,7,8,9,10,11,X\n",
		"three-digit label": "Plate1: Proj 16S\n,1,2,3,4,5,6,7,8,9,10,11,100\n",
	}

	for name, input := range cases {
		_, err := parseString(t, input, Options{})
		if !errors.Is(err, ErrMalformedHeader) {
			t.Errorf("%s: expected ErrMalformedHeader, got %v", name, err)
		}
	}
}

func TestMalformedRowLabel(t *testing.T) {
	input := "Plate1: P 16S\n" + labelRow + "\nA\nC\n"

	_, err := parseString(t, input, Options{})
	if !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("Expected ErrMalformedRow, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("Expected the line number in %q", err)
	}
}

func TestTruncatedBlock(t *testing.T) {
	short := "Plate1: P 16S\n" + labelRow + "\nA,s1\nB,s2\n"

	if _, err := parseString(t, short, Options{}); !errors.Is(err, ErrTruncatedBlock) {
		t.Errorf("Expected ErrTruncatedBlock at end of file, got %v", err)
	}

	interrupted := short + block("Plate2: Q 16S", onlyA1)
	if _, err := parseString(t, interrupted, Options{}); !errors.Is(err, ErrTruncatedBlock) {
		t.Errorf("Expected ErrTruncatedBlock before the next header, got %v", err)
	}

	layout, err := parseString(t, interrupted, Options{AllowTruncated: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(layout.Plates) != 2 || layout.Plates[0].RowsRead != 2 || layout.Plates[1].RowsRead != Rows {
		t.Fatalf("Unexpected plates %+v", layout.Plates)
	}
	if layout.Samples.Len() != 3 {
		t.Errorf("Expected 3 samples, got %d", layout.Samples.Len())
	}
	if len(layout.EmptyWells) != 2*(Columns-1)+Rows*Columns-1 {
		t.Errorf("Unexpected empty well count %d", len(layout.EmptyWells))
	}
}

func TestColonInsideBlock(t *testing.T) {
	dilutions := func(row, col int) string {
		switch {
		case row == 0 && col == 1:
			return "dil 1:10"
		case row == 1 && col == 0:
			return "12:30"
		case row == 7 && col == 11:
			return "s3"
		}
		return ""
	}
	rowB := func(row, col int) string {
		if row == 1 && col == 0 {
			return "dil 1:10"
		}
		return ""
	}

	cases := []struct {
		name    string
		input   string
		samples int
	}{
		{"colon in data cells", block("Plate1: P 16S", dilutions), 3},
		{"colon in label row corner", strings.Replace(block("Plate1: P 16S", dilutions), labelRow, "Row:Col"+labelRow, 1), 3},
		{"colon in row B before a second plate", block("Plate1: P 16S", rowB) + block("Plate2: Q 16S", onlyA1), 2},
	}

	for _, c := range cases {
		for _, opts := range []Options{{}, {AllowTruncated: true}} {
			layout, err := parseString(t, c.input, opts)
			if err != nil {
				t.Errorf("%s (%+v): %v", c.name, opts, err)
				continue
			}

			if got := len(layout.EmptyWells) + layout.Samples.Len(); got != len(layout.Plates)*Rows*Columns {
				t.Errorf("%s: %d wells accounted for across %d plates", c.name, got, len(layout.Plates))
			}
			if layout.Samples.Len() != c.samples {
				t.Errorf("%s: expected %d samples, got %d", c.name, c.samples, layout.Samples.Len())
			}
			for _, plate := range layout.Plates {
				if plate.RowsRead != Rows {
					t.Errorf("%s: plate %s read %d rows", c.name, plate.PlateID, plate.RowsRead)
				}
			}
		}
	}

	layout, _ := parseString(t, block("Plate1: P 16S", dilutions), Options{})
	if id, _ := layout.Samples.Get("P_16S_dil 1:10"); id != "Plate1_A_02" {
		t.Errorf("Expected Plate1_A_02, got %q", id)
	}
	if id, _ := layout.Samples.Get("P_16S_12:30"); id != "Plate1_B_01" {
		t.Errorf("Expected Plate1_B_01, got %q", id)
	}
}

func TestParserStates(t *testing.T) {
	p := NewParser(Options{})
	lines, _ := ScanLines(strings.NewReader(block("Plate1: P 16S", onlyA1)), ',')

	want := []State{ReadLabels, ReadRow}
	for i, line := range lines {
		if err := p.Feed(line); err != nil {
			t.Fatal(err)
		}
		state, row := p.State()
		switch {
		case i < len(want):
			if state != want[i] {
				t.Errorf("After line %d: expected %s, got %s", line.Number, want[i], state)
			}
		case i < len(lines)-1:
			if state != ReadRow || row != i-1 {
				t.Errorf("After line %d: expected ReadRow %d, got %s %d", line.Number, i-1, state, row)
			}
		default:
			if state != AwaitHeader {
				t.Errorf("After last row: expected AwaitHeader, got %s", state)
			}
		}
	}
}

func TestHeaderOnSpreadsheetCells(t *testing.T) {
	rows := [][]string{
		{"Plate3: Proj V4", "", ""},
		strings.Split(labelRow, ","),
		{"A", "s1"},
		nil, nil, nil, nil, nil, nil, nil,
	}

	layout, err := Parse(FromRows(rows), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if id, _ := layout.Samples.Get("Proj_V4_s1"); id != "Plate3_A_01" {
		t.Errorf("Expected Plate3_A_01, got %q", id)
	}
}

func TestScanLinesStripsBOMAndCR(t *testing.T) {
	lines, err := ScanLines(strings.NewReader("\ufeffPlate1: P 16S\r\n,1\r\n"), ',')
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Text != "Plate1: P 16S" || lines[1].Fields[1] != "1" {
		t.Errorf("Unexpected lines %+v", lines)
	}
}
