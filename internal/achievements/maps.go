package achievements

import "github.com/bnskaggs/PSN-and-Steam-Achievement-Data-Scraper/pkg/models"

// PercentageMap maps achievement api_names to global unlock percentages.
// Insertion order is preserved: Go map iteration is randomized, and the merge
// step needs a reproducible union order so exact sort ties stay stable
// across runs.
type PercentageMap struct {
	names  []string
	values map[string]float64
}

// NewPercentageMap creates an empty PercentageMap.
func NewPercentageMap() *PercentageMap {
	return &PercentageMap{values: make(map[string]float64)}
}

// Set stores percent under name. Repeated names keep their first-seen
// position and take the latest value.
func (m *PercentageMap) Set(name string, percent float64) {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = percent
}

// Get returns the percentage for name.
func (m *PercentageMap) Get(name string) (float64, bool) {
	percent, ok := m.values[name]
	return percent, ok
}

// Names returns the api_names in insertion order.
func (m *PercentageMap) Names() []string {
	return m.names
}

// Len returns the number of entries.
func (m *PercentageMap) Len() int {
	return len(m.names)
}

// SchemaMap maps achievement api_names to schema metadata, preserving
// insertion order like PercentageMap.
type SchemaMap struct {
	names   []string
	entries map[string]models.AchievementMeta
}

// NewSchemaMap creates an empty SchemaMap.
func NewSchemaMap() *SchemaMap {
	return &SchemaMap{entries: make(map[string]models.AchievementMeta)}
}

// Set stores meta under name. Repeated names keep their first-seen position
// and take the latest value.
func (m *SchemaMap) Set(name string, meta models.AchievementMeta) {
	if _, ok := m.entries[name]; !ok {
		m.names = append(m.names, name)
	}
	m.entries[name] = meta
}

// Get returns the metadata for name.
func (m *SchemaMap) Get(name string) (models.AchievementMeta, bool) {
	meta, ok := m.entries[name]
	return meta, ok
}

// Names returns the api_names in insertion order.
func (m *SchemaMap) Names() []string {
	return m.names
}

// Len returns the number of entries.
func (m *SchemaMap) Len() int {
	return len(m.names)
}
