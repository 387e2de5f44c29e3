package platelayout

import (
	"strings"
	"testing"
)

func TestIndexID(t *testing.T) {
	cases := []struct {
		pos  WellPosition
		want string
	}{
		{WellPosition{"Plate1", 'A', 1}, "Plate1_A_01"},
		{WellPosition{"Plate1", 'H', 12}, "Plate1_H_12"},
		{WellPosition{"P-22", RowLetter(3), 9}, "P-22_D_09"},
	}

	for _, c := range cases {
		if got := c.pos.IndexID(); got != c.want {
			t.Errorf("%+v: expected %s, got %s", c.pos, c.want, got)
		}
	}
}

func TestBlankWellIsEmptyOnly(t *testing.T) {
	input := "Plate1: P 16S\n" + labelRow + "\nA, ,s2\nB\nC\nD\nE\nF\nG\nH\n"

	layout, err := parseString(t, input, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if layout.EmptyWells[0] != "Plate1_A_01" {
		t.Errorf("Expected Plate1_A_01 first, got %s", layout.EmptyWells[0])
	}
	layout.Samples.Each(func(name, id string) {
		if id == "Plate1_A_01" {
			t.Errorf("Blank well became sample %q", name)
		}
	})
}

func TestParseHeader(t *testing.T) {
	cases := []struct {
		text                     string
		plate, project, amplicon string
	}{
		{"Plate1: ProjectX 16S", "Plate1", "ProjectX", "16S"},
		{"Plate1:ProjectX  extra words ITS2,,,,", "Plate1", "extra", "ITS2"},
		{"Plate 9: Soil V4", "Plate 9", "9:", "V4"},
		{"P3: Proj 16S: note", "P3", "Proj", "16S"},
	}

	for _, c := range cases {
		plate, err := ParseHeader(Line{Number: 1, Text: c.text, Fields: strings.Split(c.text, ",")})
		if err != nil {
			t.Errorf("%q: %v", c.text, err)
			continue
		}
		if plate.PlateID != c.plate || plate.Project != c.project || plate.Amplicon != c.amplicon {
			t.Errorf("%q: got %q %q %q", c.text, plate.PlateID, plate.Project, plate.Amplicon)
		}
	}
}
