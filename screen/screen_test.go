package screen_test

import (
	"strings"
	"testing"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/api"
	"github.com/etnz/wealthdesk/date"
	"github.com/etnz/wealthdesk/format"
	"github.com/etnz/wealthdesk/screen"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestExecutions(t *testing.T) {
	assert.Equal(t, "2/12", screen.Executions(wealthdesk.ScheduledTransaction{TotalExecutions: 2, MaxExecutions: 12}))
	assert.Equal(t, "5", screen.Executions(wealthdesk.ScheduledTransaction{TotalExecutions: 5}))
}

func TestPortfolios_WeightedRisk(t *testing.T) {
	tbl := screen.Portfolios([]wealthdesk.Portfolio{
		{ID: 1, Name: "Balanced", Status: wealthdesk.Active, Funds: []wealthdesk.FundWeighting{
			{FundID: 1, Weighting: decimal.NewFromInt(60), RiskFactor: ptr(decimal.NewFromInt(4))},
			{FundID: 2, Weighting: decimal.NewFromInt(40), RiskFactor: ptr(decimal.NewFromInt(6))},
		}},
		{ID: 2, Name: "Cash", Status: wealthdesk.Active, Funds: []wealthdesk.FundWeighting{
			{FundID: 3, Weighting: decimal.NewFromInt(100)},
		}},
	})
	rows := tbl.View()
	require.Len(t, rows, 2)
	assert.Equal(t, "Balanced", rows[0]["name"])
	assert.InDelta(t, 4.8, rows[0]["risk"], 1e-9)
	assert.Nil(t, rows[1]["risk"])
}

func TestLegalDocuments_MostRecentFirst(t *testing.T) {
	tbl := screen.LegalDocuments([]wealthdesk.LegalDocument{
		{ID: 1, Type: "Will", DocumentDate: date.New(2019, 5, 1), Status: wealthdesk.Signed},
		{ID: 2, Type: "EPA", DocumentDate: date.New(2023, 1, 9), Status: wealthdesk.Registered},
	})
	rows := tbl.View()
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[0]["id"])
	assert.Equal(t, "1", rows[1]["id"])
}

func TestIRRHistory(t *testing.T) {
	products := []wealthdesk.Product{
		{ID: 1, ProductName: "ISA"},
		{ID: 2, ProductName: "Pension"},
	}
	histories := map[int][]wealthdesk.HistoricalIRR{
		1: {
			{ProductID: 1, IRR: ptr(4.25), Date: date.New(2024, 1, 31)},
			{ProductID: 1, IRR: ptr(5.5), Date: date.New(2024, 2, 29)},
		},
		2: nil,
	}
	var b strings.Builder
	require.NoError(t, screen.IRRHistory(&b, products, histories, format.Options{Decimals: 2}))
	out := b.String()

	assert.Contains(t, out, "## ISA")
	assert.Contains(t, out, "## Pension\n\nIRR history is not available.")
	feb, jan := strings.Index(out, "5.50%"), strings.Index(out, "4.25%")
	require.True(t, feb > 0 && jan > 0, out)
	assert.Less(t, feb, jan, "most recent first")
}

func TestExecutionSummary(t *testing.T) {
	out := screen.ExecutionSummary(date.New(2024, 3, 1), api.ExecutionSummary{Executed: 4, Failed: 1})
	assert.True(t, strings.HasPrefix(out, "# Pending transactions on "), out)
	assert.Regexp(t, `\| Executed +\| +4 \|`, out)
	assert.Regexp(t, `\| Failed +\| +1 \|`, out)
}

func TestFieldErrors(t *testing.T) {
	out := screen.FieldErrors("Invalid product owner", wealthdesk.FieldErrors{
		"surname": "Surname is required",
		"email_1": "Please enter a valid email address",
	})
	assert.True(t, strings.HasPrefix(out, "# Invalid product owner"), out)
	email, surname := strings.Index(out, "email_1"), strings.Index(out, "surname")
	require.True(t, email > 0 && surname > 0, out)
	assert.Less(t, email, surname, "fields are sorted")
}
