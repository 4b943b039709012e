package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/etnz/wealthdesk/format"
	"github.com/shopspring/decimal"
)

// Markdown writes rows as a GFM table. Cells are formatted according to the
// column types with opts; long text is cut to layout.MaxCellWidth.
func Markdown(w io.Writer, cols []Column, rows []Row, opts format.Options, layout Layout) error {
	var b strings.Builder
	b.WriteString("|")
	for _, c := range cols {
		fmt.Fprintf(&b, " %s |", escape(c.title()))
	}
	b.WriteString("\n|")
	for _, c := range cols {
		switch c.Type {
		case Currency, Percentage, Number:
			b.WriteString("---:|")
		default:
			b.WriteString(":---|")
		}
	}
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString("|")
		for _, c := range cols {
			fmt.Fprintf(&b, " %s |", escape(truncate(Cell(c, r[c.Key], opts), layout.MaxCellWidth)))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Markdown writes the current view of t.
func (t *Table) Markdown(w io.Writer, opts format.Options, layout Layout) error {
	return Markdown(w, t.Columns, t.View(), opts, layout)
}

// Cell formats a value of column c.
func Cell(c Column, v any, opts format.Options) string {
	if isEmpty(v) {
		return format.Placeholder
	}
	v = deref(v)
	switch c.Type {
	case Date:
		if d, ok := toDate(v); ok {
			return format.Date(d)
		}
	case Currency:
		switch x := v.(type) {
		case decimal.Decimal:
			return format.Currency(x, opts)
		case string:
			return x
		}
		if n, ok := toNumber(v); ok {
			return format.Currency(decimal.NewFromFloat(n), opts)
		}
	case Percentage:
		if s, ok := v.(string); ok {
			return s
		}
		if n, ok := toNumber(v); ok {
			return format.Ratio(n, opts)
		}
	case Number:
		if n, ok := toNumber(v); ok {
			return format.Number(n, opts)
		}
	}
	return text(v)
}

func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
