package logistics

// Record is one row of a generic table read, in column order
type Record struct {
	Columns []string `json:"columns"`
	Values  []any    `json:"values"`
}

// NewPlaceholder returns the all-null record that stands in for an empty table
func NewPlaceholder(columns []string) Record {
	return Record{
		Columns: columns,
		Values:  make([]any, len(columns)),
	}
}

// IsPlaceholder reports whether every value of the record is null
func (r Record) IsPlaceholder() bool {
	for _, v := range r.Values {
		if v != nil {
			return false
		}
	}
	return true
}

// Get returns the value of a column
func (r Record) Get(column string) (any, bool) {
	for i, c := range r.Columns {
		if c == column && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return nil, false
}

// Map returns the record keyed by column name
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.Columns))
	for i, c := range r.Columns {
		if i < len(r.Values) {
			m[c] = r.Values[i]
		}
	}
	return m
}

// IsPlaceholderList reports whether records is the single placeholder
// returned for an empty table.
func IsPlaceholderList(records []Record) bool {
	return len(records) == 1 && records[0].IsPlaceholder()
}
