package jsonl

// Record is any value that can flatten itself into a key/value mapping
// for serialization as one JSON line. The mapping must be deterministic
// for a given record.
type Record interface {
	AsMap() (map[string]any, error)
}

// Factory constructs a record of type T from a decoded line mapping.
// A returned error marks the line as invalid; the reader counts it and
// moves on.
type Factory[T Record] func(map[string]any) (T, error)

// MapRecord is a schema-less Record that passes the line mapping
// through untouched. Useful for tooling that inspects or reshards data
// without knowing its shape.
type MapRecord map[string]any

// AsMap returns the mapping itself.
func (m MapRecord) AsMap() (map[string]any, error) {
	return m, nil
}

// FromMap is the Factory for MapRecord. It never fails.
func FromMap(m map[string]any) (MapRecord, error) {
	return MapRecord(m), nil
}
