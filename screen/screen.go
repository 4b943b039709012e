// Package screen lays out the records of each screen as tables. The same
// layouts are printed by the wd commands and given to the assistant.
package screen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/format"
	"github.com/etnz/wealthdesk/table"
	"github.com/shopspring/decimal"
)

// ids are text so that they are shown without grouping or decimals.
func id(n int) string { return strconv.Itoa(n) }

// decimalOrNil keeps missing values empty so that they sort last.
func decimalOrNil(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.InexactFloat64()
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func ClientGroups(groups []wealthdesk.ClientGroup) *table.Table {
	type F = table.Field[wealthdesk.ClientGroup]
	return table.FromRecords(groups, table.Default,
		F{Column: table.Column{Key: "name", Label: "Name"}, Value: func(g wealthdesk.ClientGroup) any { return g.Name }},
		F{Column: table.Column{Key: "type", Label: "Type", Control: table.FilterControl}, Value: func(g wealthdesk.ClientGroup) any { return string(g.Type) }},
		F{Column: table.Column{Key: "status", Label: "Status"}, Value: func(g wealthdesk.ClientGroup) any { return string(g.Status) }},
		F{Column: table.Column{Key: "id_declaration", Label: "ID declaration", Type: table.Date}, Value: func(g wealthdesk.ClientGroup) any { return g.IDDeclarationDate }},
		F{Column: table.Column{Key: "privacy_declaration", Label: "Privacy declaration", Type: table.Date}, Value: func(g wealthdesk.ClientGroup) any { return g.PrivacyDeclarationDate }},
		F{Column: table.Column{Key: "id", Label: "ID", Type: table.Text}, Value: func(g wealthdesk.ClientGroup) any { return id(g.ID) }},
	)
}

func ProductOwners(owners []wealthdesk.ProductOwner) *table.Table {
	type F = table.Field[wealthdesk.ProductOwner]
	return table.FromRecords(owners, table.Default,
		F{Column: table.Column{Key: "name", Label: "Name"}, Value: func(o wealthdesk.ProductOwner) any { return o.Name() }},
		F{Column: table.Column{Key: "dob", Label: "Date of birth", Type: table.Date}, Value: func(o wealthdesk.ProductOwner) any { return o.DOB }},
		F{Column: table.Column{Key: "email", Label: "Email", Type: table.Text}, Value: func(o wealthdesk.ProductOwner) any { return firstNonBlank(o.EmailPrimary, o.EmailSecondary) }},
		F{Column: table.Column{Key: "phone", Label: "Phone", Type: table.Text}, Value: func(o wealthdesk.ProductOwner) any { return firstNonBlank(o.PhonePrimary, o.PhoneSecondary) }},
		F{Column: table.Column{Key: "aml", Label: "AML", Control: table.FilterControl}, Value: func(o wealthdesk.ProductOwner) any { return string(o.AMLResult) }},
		F{Column: table.Column{Key: "status", Label: "Status"}, Value: func(o wealthdesk.ProductOwner) any { return string(o.Status) }},
		F{Column: table.Column{Key: "id", Label: "ID", Type: table.Text}, Value: func(o wealthdesk.ProductOwner) any { return id(o.ID) }},
	)
}

// SpecialRelationships lists the contacts of a client group.
func SpecialRelationships(rels []wealthdesk.SpecialRelationship) *table.Table {
	type F = table.Field[wealthdesk.SpecialRelationship]
	return table.FromRecords(rels, table.Default,
		F{Column: table.Column{Key: "name", Label: "Name"}, Value: func(r wealthdesk.SpecialRelationship) any { return r.Name }},
		F{Column: table.Column{Key: "relationship", Label: "Relationship"}, Value: func(r wealthdesk.SpecialRelationship) any { return r.Relationship }},
		F{Column: table.Column{Key: "type", Label: "Type", Control: table.FilterControl}, Value: func(r wealthdesk.SpecialRelationship) any { return string(r.Type) }},
		F{Column: table.Column{Key: "phone", Label: "Phone", Type: table.Text}, Value: func(r wealthdesk.SpecialRelationship) any { return r.Phone }},
		F{Column: table.Column{Key: "email", Label: "Email", Type: table.Text}, Value: func(r wealthdesk.SpecialRelationship) any { return r.Email }},
		F{Column: table.Column{Key: "status", Label: "Status"}, Value: func(r wealthdesk.SpecialRelationship) any { return string(r.Status) }},
	)
}

// LegalDocuments lists documents, most recent first.
func LegalDocuments(docs []wealthdesk.LegalDocument) *table.Table {
	type F = table.Field[wealthdesk.LegalDocument]
	t := table.FromRecords(docs, table.Default,
		F{Column: table.Column{Key: "id", Label: "ID", Type: table.Text}, Value: func(d wealthdesk.LegalDocument) any { return id(d.ID) }},
		F{Column: table.Column{Key: "type", Label: "Type", Control: table.FilterControl}, Value: func(d wealthdesk.LegalDocument) any { return d.Type }},
		F{Column: table.Column{Key: "date", Label: "Date", Type: table.Date}, Value: func(d wealthdesk.LegalDocument) any { return d.DocumentDate }},
		F{Column: table.Column{Key: "status", Label: "Status", Control: table.FilterControl}, Value: func(d wealthdesk.LegalDocument) any { return string(d.Status) }},
		F{Column: table.Column{Key: "notes", Label: "Notes", Type: table.Text}, Value: func(d wealthdesk.LegalDocument) any { return d.Notes }},
	)
	t.Sort = table.SortSpec{Key: "date", Direction: table.Desc}
	return t
}

// Executions renders the execution count, against its limit when there is one.
func Executions(tx wealthdesk.ScheduledTransaction) string {
	if tx.MaxExecutions > 0 {
		return fmt.Sprintf("%d/%d", tx.TotalExecutions, tx.MaxExecutions)
	}
	return strconv.Itoa(tx.TotalExecutions)
}

func ScheduledTransactions(txs []wealthdesk.ScheduledTransaction) *table.Table {
	type F = table.Field[wealthdesk.ScheduledTransaction]
	return table.FromRecords(txs, table.Default,
		F{Column: table.Column{Key: "id", Label: "ID", Type: table.Text}, Value: func(tx wealthdesk.ScheduledTransaction) any { return id(tx.ID) }},
		F{Column: table.Column{Key: "type", Label: "Type", Control: table.FilterControl}, Value: func(tx wealthdesk.ScheduledTransaction) any { return string(tx.Type) }},
		F{Column: table.Column{Key: "amount", Label: "Amount", Type: table.Currency}, Value: func(tx wealthdesk.ScheduledTransaction) any { return tx.Amount }},
		F{Column: table.Column{Key: "next", Label: "Next execution", Type: table.Date}, Value: func(tx wealthdesk.ScheduledTransaction) any { return tx.NextExecutionDate }},
		F{Column: table.Column{Key: "recurrence", Label: "Recurrence", Control: table.FilterControl}, Value: func(tx wealthdesk.ScheduledTransaction) any { return string(tx.RecurrenceInterval) }},
		F{Column: table.Column{Key: "executions", Label: "Executions", Type: table.Text}, Value: func(tx wealthdesk.ScheduledTransaction) any { return Executions(tx) }},
		F{Column: table.Column{Key: "status", Label: "Status", Control: table.FilterControl}, Value: func(tx wealthdesk.ScheduledTransaction) any { return string(tx.Status) }},
	)
}

func Providers(providers []wealthdesk.Provider) *table.Table {
	type F = table.Field[wealthdesk.Provider]
	return table.FromRecords(providers, table.Default,
		F{Column: table.Column{Key: "name", Label: "Provider"}, Value: func(p wealthdesk.Provider) any { return p.Name }},
		F{Column: table.Column{Key: "status", Label: "Status"}, Value: func(p wealthdesk.Provider) any { return string(p.Status) }},
		F{Column: table.Column{Key: "id", Label: "ID", Type: table.Text}, Value: func(p wealthdesk.Provider) any { return id(p.ID) }},
	)
}

func Funds(funds []wealthdesk.Fund) *table.Table {
	type F = table.Field[wealthdesk.Fund]
	return table.FromRecords(funds, table.Default,
		F{Column: table.Column{Key: "name", Label: "Fund"}, Value: func(f wealthdesk.Fund) any { return f.FundName }},
		F{Column: table.Column{Key: "isin", Label: "ISIN", Type: table.Text}, Value: func(f wealthdesk.Fund) any { return f.ISINNumber }},
		F{Column: table.Column{Key: "risk", Label: "Risk", Type: table.Number}, Value: func(f wealthdesk.Fund) any { return decimalOrNil(f.RiskFactor) }},
		F{Column: table.Column{Key: "cost", Label: "Cost", Type: table.Number}, Value: func(f wealthdesk.Fund) any { return decimalOrNil(f.FundCost) }},
		F{Column: table.Column{Key: "status", Label: "Status"}, Value: func(f wealthdesk.Fund) any { return string(f.Status) }},
	)
}

// Portfolios lists model portfolios with their weighted risk.
func Portfolios(portfolios []wealthdesk.Portfolio) *table.Table {
	type F = table.Field[wealthdesk.Portfolio]
	return table.FromRecords(portfolios, table.Default,
		F{Column: table.Column{Key: "name", Label: "Portfolio"}, Value: func(p wealthdesk.Portfolio) any { return p.Name }},
		F{Column: table.Column{Key: "funds", Label: "Funds", Type: table.Number}, Value: func(p wealthdesk.Portfolio) any { return len(p.Funds) }},
		F{Column: table.Column{Key: "risk", Label: "Weighted risk", Type: table.Number}, Value: func(p wealthdesk.Portfolio) any {
			risk, ok := p.WeightedRisk()
			if !ok {
				return nil
			}
			return risk.InexactFloat64()
		}},
		F{Column: table.Column{Key: "status", Label: "Status"}, Value: func(p wealthdesk.Portfolio) any { return string(p.Status) }},
	)
}

// IRRHistory writes the IRR history of each product, most recent first.
// A product missing from histories, or mapped to nil, has no history.
func IRRHistory(w io.Writer, products []wealthdesk.Product, histories map[int][]wealthdesk.HistoricalIRR, opts format.Options) error {
	for _, p := range products {
		fmt.Fprintf(w, "\n## %s\n\n", p.ProductName)
		history := histories[p.ID]
		if history == nil {
			fmt.Fprintln(w, "IRR history is not available.")
			continue
		}
		type F = table.Field[wealthdesk.HistoricalIRR]
		t := table.FromRecords(history, table.Default,
			F{Column: table.Column{Key: "date", Label: "Date", Type: table.Date}, Value: func(h wealthdesk.HistoricalIRR) any { return h.Date }},
			F{Column: table.Column{Key: "irr", Label: "IRR", Type: table.Text}, Value: func(h wealthdesk.HistoricalIRR) any { return format.IRR(h.IRR, opts) }},
		)
		t.Sort = table.SortSpec{Key: "date", Direction: table.Desc}
		if err := t.Markdown(w, opts, table.Layout{}); err != nil {
			return err
		}
	}
	return nil
}
