package report

import (
	"context"
	"fmt"
	"io"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/format"
	"github.com/etnz/wealthdesk/table"
	"github.com/shopspring/decimal"
)

// Formatter renders the figures of a report.
type Formatter struct {
	opts format.Options
}

func NewFormatter(opts format.Options) *Formatter { return &Formatter{opts: opts} }

// IRR renders an IRR percentage, "-" when unknown.
func (f *Formatter) IRR(v *float64) string { return format.IRR(v, f.opts) }

// Valuation renders an amount, "-" when unknown.
func (f *Formatter) Valuation(v *decimal.Decimal) string { return format.CurrencyPtr(v, f.opts) }

// Total renders the sum of the known valuations of products.
func (f *Formatter) Total(products []wealthdesk.Product) string {
	return format.Currency(TotalValuation(products), f.opts)
}

// Options returns the formatting options.
func (f *Formatter) Options() format.Options { return f.opts }

// TotalValuation sums the known valuations of products.
func TotalValuation(products []wealthdesk.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		if p.Valuation != nil {
			total = total.Add(*p.Valuation)
		}
	}
	return total
}

// Build fills state with the products of productIDs, their latest IRR and
// their total IRR at irrDate. Failed items are left nil; Build itself
// only fails when no product can be fetched.
func (s *Service) Build(ctx context.Context, state *State, productIDs []int, irrDate string) error {
	state.SetLoading(true)
	defer state.SetLoading(false)

	state.SetIRRDate(NormalizeIRRDate(irrDate))
	products := s.Products(ctx, productIDs)
	state.SetProducts(products)
	if len(products) == 0 && len(productIDs) > 0 {
		err := fmt.Errorf("none of the %d products could be fetched", len(productIDs))
		state.SetError(err)
		return err
	}
	for _, p := range products {
		var v *float64
		if irr := s.latestIRR(ctx, p); irr != nil {
			v = irr.IRR
		}
		state.SetIRR(p.ID, v)
	}
	state.SetTotal(s.RealtimeTotalIRR(ctx, products, irrDate))
	return nil
}

// SummaryRow is one product line of a report summary.
type SummaryRow struct {
	Product  string
	Provider string
	Value    *decimal.Decimal
	IRR      *float64
}

// Summary returns one row per product of v, then a total row.
func Summary(v Values) []SummaryRow {
	rows := make([]SummaryRow, 0, len(v.Products)+1)
	for _, p := range v.Products {
		rows = append(rows, SummaryRow{Product: p.ProductName, Provider: p.ProviderName, Value: p.Valuation, IRR: v.IRRs[p.ID]})
	}
	total := TotalValuation(v.Products)
	rows = append(rows, SummaryRow{Product: "Total", Value: &total, IRR: v.Total})
	return rows
}

// WriteSummary writes the summary of v as a markdown table. IRR values
// are percentages and are rendered as text so that table inference does
// not read them as ratios.
func (f *Formatter) WriteSummary(w io.Writer, v Values) error {
	rows := Summary(v)
	cols := []table.Field[SummaryRow]{
		{Column: table.Column{Key: "product", Label: "Product", Type: table.Text}, Value: func(r SummaryRow) any { return r.Product }},
		{Column: table.Column{Key: "provider", Label: "Provider", Type: table.Text}, Value: func(r SummaryRow) any { return r.Provider }},
		{Column: table.Column{Key: "value", Label: "Valuation", Type: table.Currency}, Value: func(r SummaryRow) any { return r.Value }},
		{Column: table.Column{Key: "irr", Label: "IRR", Type: table.Text}, Value: func(r SummaryRow) any { return f.IRR(r.IRR) }},
	}
	t := table.FromRecords(rows, table.Default, cols...)
	// rows keep the report order, the total last
	t.Sort = table.SortSpec{}
	return t.Markdown(w, f.opts, table.Layout{})
}
