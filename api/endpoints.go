package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/date"
)

// Client groups.

func (c *Client) ClientGroups(ctx context.Context) ([]wealthdesk.ClientGroup, error) {
	var groups []wealthdesk.ClientGroup
	err := c.get(ctx, "/client_groups", nil, &groups)
	return groups, err
}

func (c *Client) CreateClientGroup(ctx context.Context, g wealthdesk.ClientGroup) (wealthdesk.ClientGroup, error) {
	var created wealthdesk.ClientGroup
	err := c.post(ctx, "/client_groups", nil, g, &created)
	return created, err
}

func (c *Client) UpdateClientGroup(ctx context.Context, g wealthdesk.ClientGroup) (wealthdesk.ClientGroup, error) {
	var updated wealthdesk.ClientGroup
	err := c.put(ctx, fmt.Sprintf("/client_groups/%d", g.ID), g, &updated)
	return updated, err
}

func (c *Client) DeleteClientGroup(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/client_groups/%d", id))
}

// Product owners and addresses.

func (c *Client) ProductOwners(ctx context.Context) ([]wealthdesk.ProductOwner, error) {
	var owners []wealthdesk.ProductOwner
	err := c.get(ctx, "/product_owners", nil, &owners)
	return owners, err
}

func (c *Client) CreateProductOwner(ctx context.Context, o wealthdesk.ProductOwner) (wealthdesk.ProductOwner, error) {
	var created wealthdesk.ProductOwner
	err := c.post(ctx, "/product_owners", nil, o, &created)
	return created, err
}

func (c *Client) UpdateProductOwner(ctx context.Context, o wealthdesk.ProductOwner) (wealthdesk.ProductOwner, error) {
	var updated wealthdesk.ProductOwner
	err := c.put(ctx, fmt.Sprintf("/product_owners/%d", o.ID), o, &updated)
	return updated, err
}

func (c *Client) CreateAddress(ctx context.Context, a wealthdesk.Address) (wealthdesk.Address, error) {
	var created wealthdesk.Address
	err := c.post(ctx, "/addresses", nil, a, &created)
	return created, err
}

// Scheduled transactions.

// ScheduledTransactions lists the schedules of a portfolio fund, or all of
// them when portfolioFundID is 0.
func (c *Client) ScheduledTransactions(ctx context.Context, portfolioFundID int) ([]wealthdesk.ScheduledTransaction, error) {
	var query url.Values
	if portfolioFundID > 0 {
		query = url.Values{"portfolio_fund_id": {strconv.Itoa(portfolioFundID)}}
	}
	var txs []wealthdesk.ScheduledTransaction
	err := c.get(ctx, "/scheduled_transactions", query, &txs)
	return txs, err
}

func (c *Client) PauseScheduledTransaction(ctx context.Context, id int) (wealthdesk.ScheduledTransaction, error) {
	var tx wealthdesk.ScheduledTransaction
	err := c.post(ctx, fmt.Sprintf("/scheduled_transactions/%d/pause", id), nil, nil, &tx)
	return tx, err
}

func (c *Client) ResumeScheduledTransaction(ctx context.Context, id int) (wealthdesk.ScheduledTransaction, error) {
	var tx wealthdesk.ScheduledTransaction
	err := c.post(ctx, fmt.Sprintf("/scheduled_transactions/%d/resume", id), nil, nil, &tx)
	return tx, err
}

func (c *Client) CancelScheduledTransaction(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/scheduled_transactions/%d", id))
}

// ExecutionSummary is the answer to ExecutePending.
type ExecutionSummary struct {
	TargetDate string `json:"target_date"`
	Executed   int    `json:"executed_count"`
	Failed     int    `json:"failed_count"`
}

// ExecutePending asks the backend to run every schedule due on or before target.
func (c *Client) ExecutePending(ctx context.Context, target date.Date) (ExecutionSummary, error) {
	var query url.Values
	if !target.IsZero() {
		query = url.Values{"target_date": {target.String()}}
	}
	var summary ExecutionSummary
	err := c.post(ctx, "/scheduled_transactions/execute_pending", query, nil, &summary)
	return summary, err
}

// Legal documents.

// LegalDocumentPatch holds the fields of a partial update. nil fields are unchanged.
type LegalDocumentPatch struct {
	Type            *string    `json:"type,omitempty"`
	DocumentDate    *date.Date `json:"document_date,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	ProductOwnerIDs []int      `json:"product_owner_ids,omitempty"`
}

// Apply merges the patch into d.
func (p LegalDocumentPatch) Apply(d wealthdesk.LegalDocument) wealthdesk.LegalDocument {
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.DocumentDate != nil {
		d.DocumentDate = *p.DocumentDate
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
	if p.ProductOwnerIDs != nil {
		d.ProductOwnerIDs = append([]int(nil), p.ProductOwnerIDs...)
	}
	return d
}

func (c *Client) LegalDocuments(ctx context.Context, productOwnerID int) ([]wealthdesk.LegalDocument, error) {
	query := url.Values{"product_owner_id": {strconv.Itoa(productOwnerID)}}
	var docs []wealthdesk.LegalDocument
	err := c.get(ctx, "/legal_documents", query, &docs)
	return docs, err
}

func (c *Client) CreateLegalDocument(ctx context.Context, d wealthdesk.LegalDocument) (wealthdesk.LegalDocument, error) {
	var created wealthdesk.LegalDocument
	err := c.post(ctx, "/legal_documents", nil, d, &created)
	return created, err
}

func (c *Client) UpdateLegalDocument(ctx context.Context, id int, p LegalDocumentPatch) (wealthdesk.LegalDocument, error) {
	var updated wealthdesk.LegalDocument
	err := c.put(ctx, fmt.Sprintf("/legal_documents/%d", id), p, &updated)
	return updated, err
}

func (c *Client) UpdateLegalDocumentStatus(ctx context.Context, id int, status wealthdesk.DocumentStatus) (wealthdesk.LegalDocument, error) {
	var updated wealthdesk.LegalDocument
	body := map[string]wealthdesk.DocumentStatus{"status": status}
	err := c.patch(ctx, fmt.Sprintf("/legal_documents/%d/status", id), body, &updated)
	return updated, err
}

func (c *Client) DeleteLegalDocument(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/legal_documents/%d", id))
}

// Special relationships.

func (c *Client) SpecialRelationships(ctx context.Context, clientGroupID int) ([]wealthdesk.SpecialRelationship, error) {
	query := url.Values{"client_group_id": {strconv.Itoa(clientGroupID)}}
	var rels []wealthdesk.SpecialRelationship
	err := c.get(ctx, "/special_relationships", query, &rels)
	return rels, err
}

func (c *Client) CreateSpecialRelationship(ctx context.Context, r wealthdesk.SpecialRelationship) (wealthdesk.SpecialRelationship, error) {
	var created wealthdesk.SpecialRelationship
	err := c.post(ctx, "/special_relationships", nil, r, &created)
	return created, err
}

func (c *Client) UpdateSpecialRelationship(ctx context.Context, r wealthdesk.SpecialRelationship) (wealthdesk.SpecialRelationship, error) {
	var updated wealthdesk.SpecialRelationship
	err := c.put(ctx, fmt.Sprintf("/special_relationships/%d", r.ID), r, &updated)
	return updated, err
}

func (c *Client) DeleteSpecialRelationship(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/special_relationships/%d", id))
}

// Catalog.

func (c *Client) Providers(ctx context.Context) ([]wealthdesk.Provider, error) {
	var providers []wealthdesk.Provider
	err := c.get(ctx, "/available_providers", nil, &providers)
	return providers, err
}

func (c *Client) Funds(ctx context.Context) ([]wealthdesk.Fund, error) {
	var funds []wealthdesk.Fund
	err := c.get(ctx, "/funds", nil, &funds)
	return funds, err
}

func (c *Client) Portfolios(ctx context.Context) ([]wealthdesk.Portfolio, error) {
	var portfolios []wealthdesk.Portfolio
	err := c.get(ctx, "/available_portfolios", nil, &portfolios)
	return portfolios, err
}

// Products and IRR.

func (c *Client) Product(ctx context.Context, id int) (wealthdesk.Product, error) {
	var p wealthdesk.Product
	err := c.get(ctx, fmt.Sprintf("/client_products/%d", id), nil, &p)
	return p, err
}

func (c *Client) Products(ctx context.Context, clientGroupID int) ([]wealthdesk.Product, error) {
	query := url.Values{"client_id": {strconv.Itoa(clientGroupID)}}
	var products []wealthdesk.Product
	err := c.get(ctx, "/client_products", query, &products)
	return products, err
}

func (c *Client) LatestPortfolioIRR(ctx context.Context, portfolioID int) (wealthdesk.LatestIRR, error) {
	var irr wealthdesk.LatestIRR
	err := c.get(ctx, fmt.Sprintf("/portfolios/%d/latest-irr", portfolioID), nil, &irr)
	return irr, err
}

func (c *Client) MultipleFundIRR(ctx context.Context, req wealthdesk.IRRRequest) (wealthdesk.IRRResponse, error) {
	var resp wealthdesk.IRRResponse
	err := c.post(ctx, "/portfolio_funds/multiple/irr", nil, req, &resp)
	return resp, err
}

func (c *Client) ProductIRRHistory(ctx context.Context, productID int) ([]wealthdesk.HistoricalIRR, error) {
	var history []wealthdesk.HistoricalIRR
	err := c.get(ctx, fmt.Sprintf("/client_products/%d/irr-history", productID), nil, &history)
	return history, err
}
