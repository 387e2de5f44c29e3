package samplesheet

import (
	"github.com/the-fungus-among-us/GSC-form-autofill/indexref"
	"github.com/the-fungus-among-us/GSC-form-autofill/platelayout"
)

// Row is one line of the sample sheet.
type Row struct {
	SampleName string `csv:"Sample Name"`
	I7         string `csv:"i7 Sequence"`
	I5         string `csv:"i5 Sequence-FWD"`
}

// Rows renders one row per group, in group order. Groups only ever hold
// identifiers present in ref.
func Rows(g Grouping, ref *indexref.Reference) []Row {
	out := make([]Row, 0, len(g.Groups))
	for _, group := range g.Groups {
		pair, _ := ref.Lookup(group.IndexID)
		out = append(out, Row{
			SampleName: group.Name(),
			I7:         pair.I7,
			I5:         pair.I5,
		})
	}

	return out
}

// Summary holds the counts printed at the end of a run.
type Summary struct {
	EmptyWells     int
	ReferencePairs int
	Samples        int
	UniquePairs    int
	Unrecognized   int
}

func Summarize(layout *platelayout.Layout, ref *indexref.Reference, g Grouping) Summary {
	return Summary{
		EmptyWells:     len(layout.EmptyWells),
		ReferencePairs: ref.Len(),
		Samples:        layout.Samples.Len(),
		UniquePairs:    len(g.Groups),
		Unrecognized:   len(g.Unrecognized),
	}
}
