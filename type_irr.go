package wealthdesk

import (
	"github.com/etnz/wealthdesk/date"
	"github.com/shopspring/decimal"
)

// Product is a client product (a pension, an ISA...) held at a provider and
// invested through one portfolio.
type Product struct {
	ID            int              `json:"id"`
	ProductName   string           `json:"product_name"`
	ClientGroupID int              `json:"client_id"`
	ProviderID    int              `json:"provider_id"`
	ProviderName  string           `json:"provider_name,omitempty"`
	PortfolioID   int              `json:"portfolio_id"`
	Status        Status           `json:"status"`
	Valuation     *decimal.Decimal `json:"total_value,omitempty"`
	Funds         []ProductFund    `json:"funds,omitempty"`
}

// ProductFund is one fund position inside a product's portfolio.
type ProductFund struct {
	ID        int              `json:"id"`
	FundName  string           `json:"fund_name"`
	Status    Status           `json:"status"`
	Valuation *decimal.Decimal `json:"market_value,omitempty"`

	// Virtual marks the synthetic line aggregating inactive funds.
	Virtual         bool  `json:"is_virtual_entry,omitempty"`
	InactiveFundIDs []int `json:"inactive_fund_ids,omitempty"`
}

// LatestIRR is the latest stored IRR of a portfolio.
type LatestIRR struct {
	PortfolioID int       `json:"portfolio_id"`
	IRR         *float64  `json:"irr_result"`
	Date        date.Date `json:"irr_date"`
}

// IRRRequest asks the backend for one IRR over several portfolio funds.
type IRRRequest struct {
	PortfolioFundIDs []int  `json:"portfolio_fund_ids"`
	IRRDate          string `json:"irr_date,omitempty"`
}

// IRRResponse is the answer to an IRRRequest.
type IRRResponse struct {
	IRRPercentage *float64 `json:"irr_percentage"`
	Date          string   `json:"irr_date,omitempty"`
}

// HistoricalIRR is one dated IRR value of a product.
type HistoricalIRR struct {
	ProductID int       `json:"product_id"`
	IRR       *float64  `json:"irr_result"`
	Date      date.Date `json:"irr_date"`
}
