// Package samplesheet joins parsed plate layouts with the index reference and
// produces the rows of the sequencing sample sheet.
package samplesheet

import (
	"strings"

	"github.com/the-fungus-among-us/GSC-form-autofill/indexref"
	"github.com/the-fungus-among-us/GSC-form-autofill/platelayout"
)

// NameSeparator joins the names of samples that share an index pair.
const NameSeparator = "-"

// Group is every sample filed under one index identifier.
type Group struct {
	IndexID string
	Samples []string
}

func (g Group) Name() string {
	return strings.Join(g.Samples, NameSeparator)
}

type Grouping struct {
	Groups []Group

	// Unrecognized lists identifiers used in the layout but missing from the
	// reference, once each, in the order they were met.
	Unrecognized []string
}

// GroupSamples files each sample under its index identifier, in the order the
// samples were laid out. Samples whose identifier is not in the reference are
// left out of every group.
func GroupSamples(samples *platelayout.SampleMap, ref *indexref.Reference) Grouping {
	out := Grouping{}
	groupOf := make(map[string]int)
	unrecognized := make(map[string]struct{})

	samples.Each(func(name, indexID string) {
		if _, ok := ref.Lookup(indexID); !ok {
			if _, seen := unrecognized[indexID]; !seen {
				unrecognized[indexID] = struct{}{}
				out.Unrecognized = append(out.Unrecognized, indexID)
			}
			return
		}

		i, exists := groupOf[indexID]
		if !exists {
			i = len(out.Groups)
			groupOf[indexID] = i
			out.Groups = append(out.Groups, Group{IndexID: indexID})
		}
		out.Groups[i].Samples = append(out.Groups[i].Samples, name)
	})

	return out
}
