package table

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction. None clears the sort.
type Direction int

const (
	None Direction = iota
	Asc
	Desc
)

func (d Direction) String() string {
	switch d {
	case Asc:
		return "asc"
	case Desc:
		return "desc"
	}
	return "none"
}

// ParseDirection reads "asc" or "desc"; anything else is None.
func ParseDirection(s string) Direction {
	switch strings.ToLower(s) {
	case "asc":
		return Asc
	case "desc":
		return Desc
	}
	return None
}

// SortSpec selects the sorted column.
type SortSpec struct {
	Key       string
	Direction Direction
}

// Filters maps a column key to its selected values. A column without
// selected values does not restrict rows.
type Filters map[string][]string

// Table holds rows and their columns with the current sort and filters.
type Table struct {
	Columns  []Column
	Rows     []Row
	Sort     SortSpec
	Filters  Filters
	Language language.Tag // collation language, British English when unset
}

// New infers the missing column types with h and seeds the default sort
// and filters.
func New(rows []Row, cols []Column, h Heuristics) *Table {
	inferred := make([]Column, len(cols))
	for i, c := range cols {
		inferred[i] = Infer(rows, c, h)
	}
	t := &Table{Columns: inferred, Rows: rows}
	t.Filters = DefaultFilters(t.Columns, rows)
	for key := range t.Filters {
		for i := range t.Columns {
			if t.Columns[i].Key == key && cols[i].Control == "" {
				t.Columns[i].Control = FilterControl
			}
		}
	}
	t.Sort = DefaultSort(t.Columns, rows)
	return t
}

// Column returns the column of key.
func (t *Table) Column(key string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// View returns the rows to display: filtered, then sorted.
func (t *Table) View() []Row {
	rows := Filter(t.Rows, t.Filters)
	col, ok := t.Column(t.Sort.Key)
	if !ok {
		return rows
	}
	return t.sort(rows, col, t.Sort.Direction)
}

// DefaultSort sorts the first column ascending when its values contain
// letters and it is sortable.
func DefaultSort(cols []Column, rows []Row) SortSpec {
	if len(cols) == 0 || cols[0].Control != SortControl {
		return SortSpec{}
	}
	for _, v := range values(rows, cols[0].Key) {
		if hasLetters(v) {
			return SortSpec{Key: cols[0].Key, Direction: Asc}
		}
	}
	return SortSpec{}
}

// DefaultFilters selects "active" in every status column whose data
// contains that value.
func DefaultFilters(cols []Column, rows []Row) Filters {
	f := Filters{}
	for _, c := range cols {
		if !strings.Contains(strings.ToLower(c.Key), "status") && !strings.Contains(strings.ToLower(c.Label), "status") {
			continue
		}
		for _, r := range rows {
			if text(r[c.Key]) == "active" {
				f[c.Key] = []string{"active"}
				break
			}
		}
	}
	return f
}

// Filter returns the rows whose values are selected in every column of f.
func Filter(rows []Row, f Filters) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f.match(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filters) match(r Row) bool {
	for key, selected := range f {
		if len(selected) == 0 {
			continue
		}
		if !slices.Contains(selected, text(r[key])) {
			return false
		}
	}
	return true
}

// Options returns the distinct values of key, sorted, to offer as filter
// choices.
func (t *Table) Options(key string) []string {
	seen := make(map[string]bool)
	var opts []string
	for _, v := range values(t.Rows, key) {
		s := text(v)
		if !seen[s] {
			seen[s] = true
			opts = append(opts, s)
		}
	}
	c := t.collator()
	slices.SortFunc(opts, c.CompareString)
	return opts
}

func (t *Table) collator() *collate.Collator {
	tag := t.Language
	if tag == language.Und {
		tag = language.BritishEnglish
	}
	return collate.New(tag, collate.IgnoreCase)
}

// sort returns a copy of rows sorted on col. Empty values come last in
// both directions; equal values keep their order.
func (t *Table) sort(rows []Row, col Column, dir Direction) []Row {
	out := slices.Clone(rows)
	if dir == None {
		return out
	}
	compare := t.comparator(col)
	slices.SortStableFunc(out, func(a, b Row) int {
		va, vb := a[col.Key], b[col.Key]
		ka, kb := compare.key(va), compare.key(vb)
		switch {
		case ka == nil && kb == nil:
			return 0
		case ka == nil:
			return 1
		case kb == nil:
			return -1
		}
		c := compare.cmp(ka, kb)
		if dir == Desc {
			c = -c
		}
		return c
	})
	return out
}

// SortBy returns the rows of t sorted on key, ignoring filters. Ties keep
// their order and empty values come last in both directions, so Desc is the
// reverse of Asc only when the values are distinct and set.
func (t *Table) SortBy(key string, dir Direction) []Row {
	col, ok := t.Column(key)
	if !ok {
		return slices.Clone(t.Rows)
	}
	return t.sort(t.Rows, col, dir)
}

// comparator extracts a comparable key from a value; a nil key sorts last.
type comparator struct {
	key func(any) any
	cmp func(a, b any) int
}

func (t *Table) comparator(col Column) comparator {
	switch col.Type {
	case Date:
		return comparator{
			key: func(v any) any {
				if d, ok := toDate(v); ok {
					return d.UnixMilli()
				}
				return nil
			},
			cmp: func(a, b any) int { return cmp.Compare(a.(int64), b.(int64)) },
		}
	case Currency, Percentage, Number:
		return comparator{
			key: func(v any) any {
				if isEmpty(v) {
					return nil
				}
				if n, ok := toNumber(v); ok {
					return n
				}
				return nil
			},
			cmp: func(a, b any) int { return cmp.Compare(a.(float64), b.(float64)) },
		}
	}
	c := t.collator()
	return comparator{
		key: func(v any) any {
			if isEmpty(v) {
				return nil
			}
			return text(v)
		},
		cmp: func(a, b any) int { return c.CompareString(a.(string), b.(string)) },
	}
}
