package wealthdesk

import "github.com/shopspring/decimal"

// Provider is a platform or insurer hosting products.
type Provider struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Status     Status `json:"status"`
	ThemeColor string `json:"theme_color,omitempty"`
}

// Fund is an investable fund of the catalog.
type Fund struct {
	ID         int              `json:"id"`
	FundName   string           `json:"fund_name"`
	ISINNumber string           `json:"isin_number,omitempty"`
	RiskFactor *decimal.Decimal `json:"risk_factor,omitempty"`
	FundCost   *decimal.Decimal `json:"fund_cost,omitempty"`
	Status     Status           `json:"status"`
}

// FundWeighting is a fund's share inside a portfolio template.
type FundWeighting struct {
	FundID     int              `json:"fund_id"`
	FundName   string           `json:"fund_name,omitempty"`
	Weighting  decimal.Decimal  `json:"target_weighting"`
	RiskFactor *decimal.Decimal `json:"risk_factor,omitempty"`
}

// Portfolio is a portfolio template: a named list of weighted funds.
type Portfolio struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Status Status          `json:"status"`
	Funds  []FundWeighting `json:"funds,omitempty"`
}

// WeightedRisk returns the weighting-averaged risk factor of the funds that
// have one. ok is false when no fund carries both a weight and a risk factor.
func (p Portfolio) WeightedRisk() (risk decimal.Decimal, ok bool) {
	var sum, weights decimal.Decimal
	for _, f := range p.Funds {
		if f.RiskFactor == nil || !f.Weighting.IsPositive() {
			continue
		}
		sum = sum.Add(f.Weighting.Mul(*f.RiskFactor))
		weights = weights.Add(f.Weighting)
	}
	if weights.IsZero() {
		return decimal.Zero, false
	}
	return sum.Div(weights).Round(1), true
}

// RelationshipType distinguishes personal from professional special relationships.
type RelationshipType string

const (
	Personal     RelationshipType = "personal"
	Professional RelationshipType = "professional"
)

// SpecialRelationship is a contact linked to a client group: relative,
// solicitor, accountant.
type SpecialRelationship struct {
	ID            int              `json:"id,omitempty"`
	ClientGroupID int              `json:"client_group_id"`
	Type          RelationshipType `json:"type"`
	Name          string           `json:"name"`
	Relationship  string           `json:"relationship"`
	Phone         string           `json:"phone,omitempty"`
	Email         string           `json:"email,omitempty"`
	Status        Status           `json:"status"`
}
