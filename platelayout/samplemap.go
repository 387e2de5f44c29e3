package platelayout

// SampleMap maps sample names to index identifiers and remembers the order in
// which names were first added. Setting an existing name keeps its position
// and replaces its identifier.
type SampleMap struct {
	names []string
	ids   map[string]string
}

func NewSampleMap() *SampleMap {
	return &SampleMap{ids: make(map[string]string)}
}

// Set records name -> indexID. If name was already present, its previous
// identifier is returned with replaced set to true.
func (m *SampleMap) Set(name, indexID string) (previous string, replaced bool) {
	previous, replaced = m.ids[name]
	if !replaced {
		m.names = append(m.names, name)
	}
	m.ids[name] = indexID

	return previous, replaced
}

func (m *SampleMap) Get(name string) (string, bool) {
	id, ok := m.ids[name]
	return id, ok
}

func (m *SampleMap) Len() int {
	return len(m.names)
}

// Names returns the sample names in insertion order.
func (m *SampleMap) Names() []string {
	return m.names
}

// Each calls fn for every sample in insertion order.
func (m *SampleMap) Each(fn func(name, indexID string)) {
	for _, name := range m.names {
		fn(name, m.ids[name])
	}
}
