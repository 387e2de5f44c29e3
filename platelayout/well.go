package platelayout

import "fmt"

const (
	Rows    = 8
	Columns = 12

	// MaxColumnLabel bounds column labels to what fits in the two-digit
	// column of an index identifier.
	MaxColumnLabel = 99
)

// RowLetter returns the letter of the 0-based row i: A for 0 through H for 7.
func RowLetter(i int) byte {
	return byte('A' + i)
}

// WellPosition addresses one well of one plate.
type WellPosition struct {
	PlateID string
	Row     byte
	Column  int
}

// IndexID is the identifier under which the well's index pair is filed in
// the reference database, e.g. Plate1_A_01.
func (w WellPosition) IndexID() string {
	return fmt.Sprintf("%s_%c_%02d", w.PlateID, w.Row, w.Column)
}

func (w WellPosition) String() string {
	return w.IndexID()
}

// Well is one parsed grid cell. Sample is empty for an unused well.
type Well struct {
	Position WellPosition
	Content  string
	Sample   string
}

func (w Well) Empty() bool {
	return w.Sample == ""
}
