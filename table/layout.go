package table

// Layout is the presentation chosen for a container width.
type Layout struct {
	// MinColumnWidth is the smallest width per column using this layout.
	MinColumnWidth int
	FontSize       string
	CellPadding    int
	// Scroll is set when the columns do not fit and the table scrolls.
	Scroll bool
	// MaxCellWidth truncates text cells, 0 for no limit.
	MaxCellWidth int
}

// Breakpoints are tried in order; the first whose MinColumnWidth fits wins.
var Breakpoints = []Layout{
	{MinColumnWidth: 160, FontSize: "base", CellPadding: 16},
	{MinColumnWidth: 120, FontSize: "sm", CellPadding: 12},
	{MinColumnWidth: 90, FontSize: "xs", CellPadding: 8},
	{MinColumnWidth: 0, FontSize: "xs", CellPadding: 4, Scroll: true, MaxCellWidth: 24},
}

// LayoutFor picks the breakpoint of a container width holding columns.
func LayoutFor(width, columns int) Layout {
	if columns <= 0 {
		return Breakpoints[0]
	}
	per := width / columns
	for _, b := range Breakpoints {
		if per >= b.MinColumnWidth {
			return b
		}
	}
	return Breakpoints[len(Breakpoints)-1]
}
