package table

// Field maps a record type to a column. A Field with an explicit Column.Type
// is never inferred.
type Field[T any] struct {
	Column
	Value func(T) any
}

// FromRecords builds a table of items, one column per field.
func FromRecords[T any](items []T, h Heuristics, fields ...Field[T]) *Table {
	rows := make([]Row, len(items))
	for i, item := range items {
		r := make(Row, len(fields))
		for _, f := range fields {
			r[f.Key] = f.Value(item)
		}
		rows[i] = r
	}
	cols := make([]Column, len(fields))
	for i, f := range fields {
		cols[i] = f.Column
	}
	return New(rows, cols, h)
}
