package domain

// Index maps an absolute file path to the "<build-file>:<line>" location that declares it.
type Index map[string]string

// NewIndex creates an empty Index.
func NewIndex() Index {
	return make(Index)
}

// Add inserts every file of the record. A later record overwrites an earlier one for the same path.
func (idx Index) Add(r Record) {
	loc := r.Location()
	for _, file := range r.Files() {
		idx[file] = loc
	}
}

// Lookup returns the location declaring path, if any.
func (idx Index) Lookup(path string) (string, bool) {
	loc, ok := idx[path]
	return loc, ok
}

// IndexRecords builds an Index by inserting records in order.
func IndexRecords(records []Record) Index {
	idx := NewIndex()
	for _, r := range records {
		idx.Add(r)
	}
	return idx
}
