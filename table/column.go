// Package table turns rows into sortable, filterable tables. Column types
// are declared by the caller or inferred from the data, and decide how a
// column sorts, filters and renders.
package table

import (
	"strings"
)

// DataType is the kind of values of a column.
type DataType string

const (
	Date       DataType = "date"
	Currency   DataType = "currency"
	Percentage DataType = "percentage"
	Number     DataType = "number"
	Category   DataType = "category"
	Text       DataType = "text"
)

// Control is the interaction a column offers.
type Control string

const (
	SortControl   Control = "sort"
	FilterControl Control = "filter"
)

// Column describes a table column. Type and Control are inferred from the
// rows when left empty.
type Column struct {
	Key     string
	Label   string
	Type    DataType
	Control Control
}

func (c Column) title() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Key
}

// Row is a table row, values indexed by column key.
type Row map[string]any

// Heuristics holds the thresholds of type inference. They misclassify some
// data (plain integers above the currency threshold, fractional ratios) and
// are kept configurable for that reason.
type Heuristics struct {
	// CurrencyThreshold: numbers above it are currency amounts.
	CurrencyThreshold float64
	// PercentMin and PercentMax bound the numbers read as percentages.
	PercentMin, PercentMax float64
	// CategoryRatio is the distinct/total ratio under which text is a category.
	CategoryRatio float64
	// CategoryMaxDistinct is the largest number of distinct categories.
	CategoryMaxDistinct int
}

// Default are the heuristics used by New.
var Default = Heuristics{
	CurrencyThreshold:   1000,
	PercentMin:          0,
	PercentMax:          1,
	CategoryRatio:       0.3,
	CategoryMaxDistinct: 10,
}

// Infer returns col with its Type and Control set from the values of rows.
// Explicit Type and Control are kept.
func Infer(rows []Row, col Column, h Heuristics) Column {
	if col.Type == "" {
		col.Type = h.detect(values(rows, col.Key))
	}
	if col.Control == "" {
		col.Control = SortControl
		if col.Type == Category {
			col.Control = FilterControl
		}
	}
	return col
}

// values returns the non empty values of key.
func values(rows []Row, key string) []any {
	var vs []any
	for _, r := range rows {
		if v := r[key]; !isEmpty(v) {
			vs = append(vs, v)
		}
	}
	return vs
}

func (h Heuristics) detect(vs []any) DataType {
	if len(vs) == 0 {
		return Text
	}
	for _, v := range vs {
		if _, ok := toDate(v); ok {
			return Date
		}
	}
	for _, v := range vs {
		if s, ok := v.(string); ok && strings.ContainsAny(s, currencySymbols) {
			return Currency
		}
		if n, ok := toNumber(v); ok && isNumeric(v) && n > h.CurrencyThreshold {
			return Currency
		}
	}
	for _, v := range vs {
		if s, ok := v.(string); ok && strings.Contains(s, "%") {
			return Percentage
		}
		if n, ok := toNumber(v); ok && isNumeric(v) && n >= h.PercentMin && n <= h.PercentMax {
			return Percentage
		}
	}
	numeric := true
	for _, v := range vs {
		if !isNumeric(v) {
			numeric = false
			break
		}
	}
	if numeric {
		return Number
	}

	distinct := make(map[string]bool)
	for _, v := range vs {
		distinct[text(v)] = true
	}
	if float64(len(distinct))/float64(len(vs)) < h.CategoryRatio && len(distinct) <= h.CategoryMaxDistinct {
		return Category
	}
	return Text
}
