package table

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/etnz/wealthdesk/date"
	"github.com/etnz/wealthdesk/format"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gtext "github.com/yuin/goldmark/text"
)

func rowsOf(key string, vs ...any) []Row {
	rows := make([]Row, len(vs))
	for i, v := range vs {
		rows[i] = Row{key: v}
	}
	return rows
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name        string
		values      []any
		wantType    DataType
		wantControl Control
	}{
		{"iso dates", []any{"2024-01-31", "2023-12-01", nil}, Date, SortControl},
		{"day first dates", []any{"31/01/2024", "bad"}, Date, SortControl},
		{"date values", []any{date.New(2024, 1, 1)}, Date, SortControl},
		{"currency symbol", []any{"£1,200", "£30"}, Currency, SortControl},
		{"large numbers", []any{12, 1500.5}, Currency, SortControl},
		{"decimal amounts", []any{decimal.NewFromInt(25000)}, Currency, SortControl},
		{"percent sign", []any{"5%", "12.5%"}, Percentage, SortControl},
		{"ratios", []any{0.05, 0.5, 0.25}, Percentage, SortControl},
		{"numbers", []any{5, 12, 300}, Number, SortControl},
		{"numeric strings", []any{"5", "12", "300"}, Number, SortControl},
		{"categories", []any{"Will", "EPA", "Will", "Will", "EPA", "Will", "Will", "EPA", "Will", "Will"}, Category, FilterControl},
		{"free text", []any{"Smith", "Jones", "Brown"}, Text, SortControl},
		{"empty", []any{nil, ""}, Text, SortControl},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(rowsOf("v", tt.values...), Column{Key: "v"}, Default)
			if got.Type != tt.wantType || got.Control != tt.wantControl {
				t.Errorf("Infer() = %s/%s, want %s/%s", got.Type, got.Control, tt.wantType, tt.wantControl)
			}
		})
	}
}

func TestInfer_Explicit(t *testing.T) {
	got := Infer(rowsOf("v", 5000), Column{Key: "v", Type: Number}, Default)
	if got.Type != Number || got.Control != SortControl {
		t.Errorf("Infer() = %s/%s, want number/sort", got.Type, got.Control)
	}
	got = Infer(rowsOf("v", "a"), Column{Key: "v", Control: FilterControl}, Default)
	if got.Control != FilterControl {
		t.Errorf("Infer() control = %s, want filter", got.Control)
	}
}

func TestInfer_Heuristics(t *testing.T) {
	h := Default
	h.CurrencyThreshold = 1_000_000
	if got := Infer(rowsOf("v", 1500, 2000), Column{Key: "v"}, h); got.Type != Number {
		t.Errorf("Infer() with a high currency threshold = %s, want number", got.Type)
	}
}

func TestFilter_EmptySelectionIsNoop(t *testing.T) {
	rows := make([]Row, 20)
	for i := range rows {
		rows[i] = Row{"name": faker.Name(), "status": []string{"active", "inactive"}[i%2]}
	}
	for _, f := range []Filters{nil, {}, {"status": nil}, {"status": {}, "name": {}}} {
		if got := Filter(rows, f); !reflect.DeepEqual(got, rows) {
			t.Errorf("Filter(%v) changed the rows", f)
		}
	}
}

func TestSort_NumericReverse(t *testing.T) {
	ints, err := faker.RandomInt(1, 100000, 30)
	if err != nil {
		t.Fatal(err)
	}
	rows := make([]Row, len(ints))
	for i, n := range ints {
		rows[i] = Row{"amount": n, "name": faker.Name()}
	}
	tbl := New(rows, []Column{{Key: "amount", Type: Number}}, Default)

	asc := tbl.SortBy("amount", Asc)
	desc := tbl.SortBy("amount", Desc)
	if len(asc) != len(desc) {
		t.Fatalf("lengths differ: %d vs %d", len(asc), len(desc))
	}
	for i := range asc {
		if !reflect.DeepEqual(asc[i], desc[len(desc)-1-i]) {
			t.Fatalf("descending order is not the reverse of ascending at %d", i)
		}
	}
	for i := 1; i < len(asc); i++ {
		if asc[i-1]["amount"].(int) > asc[i]["amount"].(int) {
			t.Fatalf("ascending order broken at %d", i)
		}
	}
}

func TestSort_TiesAndNils(t *testing.T) {
	rows := []Row{
		{"name": "a", "amount": 1},
		{"name": "b", "amount": 2},
		{"name": "c", "amount": 1},
		{"name": "d", "amount": nil},
	}
	tbl := New(rows, []Column{{Key: "amount", Type: Number}}, Default)
	order := func(rows []Row) []string {
		var out []string
		for _, r := range rows {
			out = append(out, r["name"].(string))
		}
		return out
	}
	if got, want := order(tbl.SortBy("amount", Asc)), []string{"a", "c", "b", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortBy(asc) = %v, want %v", got, want)
	}
	if got, want := order(tbl.SortBy("amount", Desc)), []string{"b", "a", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortBy(desc) = %v, want %v", got, want)
	}
}

func TestSort_NilsLast(t *testing.T) {
	rows := rowsOf("d", "2024-03-01", nil, "2023-01-15", "")
	tbl := &Table{Columns: []Column{{Key: "d", Type: Date, Control: SortControl}}, Rows: rows}
	for _, dir := range []Direction{Asc, Desc} {
		got := tbl.SortBy("d", dir)
		if !isEmpty(got[2]["d"]) || !isEmpty(got[3]["d"]) {
			t.Errorf("SortBy(%s): empty values not last: %v", dir, got)
		}
	}
	got := tbl.SortBy("d", Desc)
	if got[0]["d"] != "2024-03-01" {
		t.Errorf("SortBy(desc)[0] = %v, want 2024-03-01", got[0]["d"])
	}
	if got := tbl.SortBy("d", None); !reflect.DeepEqual(got, rows) {
		t.Errorf("SortBy(none) reordered the rows")
	}
}

func TestSort_Alphabetical(t *testing.T) {
	rows := rowsOf("name", "émile", "Zoe", "adam", "Éric", "bob")
	tbl := &Table{Columns: []Column{{Key: "name", Type: Text, Control: SortControl}}, Rows: rows}
	var got []string
	for _, r := range tbl.SortBy("name", Asc) {
		got = append(got, r["name"].(string))
	}
	want := []string{"adam", "bob", "émile", "Éric", "Zoe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortBy(name) = %v, want %v", got, want)
	}
}

func TestNew_StatusDefaultFilter(t *testing.T) {
	rows := []Row{
		{"name": "Smith", "status": "active"},
		{"name": "Jones", "status": "active"},
		{"name": "Brown", "status": "inactive"},
	}
	tbl := New(rows, []Column{{Key: "name"}, {Key: "status"}}, Default)

	col, _ := tbl.Column("status")
	if col.Control != FilterControl {
		t.Errorf("status control = %s, want filter", col.Control)
	}
	if got := tbl.Filters["status"]; !reflect.DeepEqual(got, []string{"active"}) {
		t.Errorf("status filter = %v, want [active]", got)
	}
	view := tbl.View()
	if len(view) != 2 {
		t.Fatalf("View() has %d rows, want 2", len(view))
	}
	// sorted on the first column by default
	if view[0]["name"] != "Jones" || view[1]["name"] != "Smith" {
		t.Errorf("View() = %v, want Jones then Smith", view)
	}

	tbl.Filters["status"] = nil
	if got := len(tbl.View()); got != 3 {
		t.Errorf("View() after clearing the filter has %d rows, want 3", got)
	}
}

func TestDefaultSort(t *testing.T) {
	if got := DefaultSort([]Column{{Key: "n", Control: SortControl}}, rowsOf("n", 1, 2)); got.Direction != None {
		t.Errorf("DefaultSort(numbers) = %v, want none", got)
	}
	if got := DefaultSort([]Column{{Key: "n", Control: FilterControl}}, rowsOf("n", "a")); got.Direction != None {
		t.Errorf("DefaultSort(filter column) = %v, want none", got)
	}
}

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		width, columns int
		wantFont       string
		wantScroll     bool
	}{
		{1200, 5, "base", false},
		{700, 5, "sm", false},
		{500, 5, "xs", false},
		{300, 5, "xs", true},
		{300, 0, "base", false},
	}
	for _, tt := range tests {
		got := LayoutFor(tt.width, tt.columns)
		if got.FontSize != tt.wantFont || got.Scroll != tt.wantScroll {
			t.Errorf("LayoutFor(%d, %d) = %s/%v, want %s/%v", tt.width, tt.columns, got.FontSize, got.Scroll, tt.wantFont, tt.wantScroll)
		}
	}
}

type fund struct {
	Name  string
	Value *decimal.Decimal
	Risk  float64
}

func TestFromRecords_Markdown(t *testing.T) {
	v := decimal.RequireFromString("1234.5")
	funds := []fund{{"Global Equity", &v, 0.25}, {"Cash", nil, 0.5}}
	tbl := FromRecords(funds, Default,
		Field[fund]{Column{Key: "name", Label: "Fund"}, func(f fund) any { return f.Name }},
		Field[fund]{Column{Key: "value", Label: "Value", Type: Currency}, func(f fund) any { return f.Value }},
		Field[fund]{Column{Key: "risk", Label: "Weight"}, func(f fund) any { return f.Risk }},
	)
	if c, _ := tbl.Column("risk"); c.Type != Percentage {
		t.Errorf("risk type = %s, want percentage", c.Type)
	}

	var buf bytes.Buffer
	if err := tbl.Markdown(&buf, format.Options{Decimals: 2}, Layout{}); err != nil {
		t.Fatal(err)
	}
	src := buf.Bytes()

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(gtext.NewReader(src))
	var cells []string
	var tables int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *extast.Table:
			tables++
		case *extast.TableCell:
			cells = append(cells, strings.TrimSpace(string(n.Text(src))))
		}
		return ast.WalkContinue, nil
	})
	if tables != 1 {
		t.Fatalf("rendered %d tables, want 1:\n%s", tables, src)
	}
	want := []string{
		"Fund", "Value", "Weight",
		"Cash", "-", "50.00%",
		"Global Equity", "£1,234.50", "25.00%",
	}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("cells = %q, want %q\n%s", cells, want, src)
	}
}

func TestEscape(t *testing.T) {
	if got, want := escape("a | b\nc"), `a \| b c`; got != want {
		t.Errorf("escape() = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Advance Directive", 8); got != "Advance…" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("Will", 8); got != "Will" {
		t.Errorf("truncate() = %q", got)
	}
}
