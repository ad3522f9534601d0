package export

// Value is a structured-table cell: either a raw scalar or a wrapped scalar
// annotated with the unit it was recorded in. Quantity records carry units in
// the export and are stored wrapped; category records store plain labels.
type Value struct {
	raw     string
	unit    string
	wrapped bool
}

// RawValue builds a plain scalar cell.
func RawValue(s string) Value {
	return Value{raw: s}
}

// WrappedValue builds a cell annotated with its source unit.
func WrappedValue(s, unit string) Value {
	return Value{raw: s, unit: unit, wrapped: true}
}

// Unwrap returns the underlying scalar. Cells without a wrapper come back
// unchanged.
func (v Value) Unwrap() string {
	return v.raw
}

// Unit returns the recorded unit for wrapped cells, "" otherwise.
func (v Value) Unit() string {
	if !v.wrapped {
		return ""
	}
	return v.unit
}
