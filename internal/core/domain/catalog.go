package domain

// StarterVersion describes one selectable starter release together with the
// framework versions it implies.
type StarterVersion struct {
	StarterVersion    string `json:"starterVersion"`
	CamundaVersion    string `json:"camundaVersion"`
	SpringBootVersion string `json:"springBootVersion"`
}

// VersionCatalog is an insertion-ordered set of starter versions keyed by
// the starter version identifier. The first entry is the default selection.
// A duplicate identifier keeps its first-seen position while the later
// record's values win.
type VersionCatalog struct {
	order   []string
	records map[string]StarterVersion
}

// NewVersionCatalog builds a catalog from records in the given order.
func NewVersionCatalog(records ...StarterVersion) *VersionCatalog {
	catalog := &VersionCatalog{records: make(map[string]StarterVersion, len(records))}
	for _, record := range records {
		catalog.Add(record)
	}
	return catalog
}

// Add inserts or replaces a record. Replacing keeps the original position.
func (c *VersionCatalog) Add(record StarterVersion) {
	if _, seen := c.records[record.StarterVersion]; !seen {
		c.order = append(c.order, record.StarterVersion)
	}
	c.records[record.StarterVersion] = record
}

// Get returns the record for the given starter version identifier.
func (c *VersionCatalog) Get(id string) (StarterVersion, bool) {
	record, ok := c.records[id]
	return record, ok
}

// DefaultVersion returns the identifier of the first (default) entry.
// The second return is false for an empty catalog.
func (c *VersionCatalog) DefaultVersion() (string, bool) {
	if len(c.order) == 0 {
		return "", false
	}
	return c.order[0], true
}

// Versions returns all records in catalog order.
func (c *VersionCatalog) Versions() []StarterVersion {
	records := make([]StarterVersion, 0, len(c.order))
	for _, id := range c.order {
		records = append(records, c.records[id])
	}
	return records
}

// Len returns the number of distinct starter versions.
func (c *VersionCatalog) Len() int {
	return len(c.order)
}
