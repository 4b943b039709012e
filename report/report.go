// Package report assembles IRR reports over client products. Every backend
// call of a report may fail on its own: a failed item degrades to a nil
// value and the rest of the report is still produced.
package report

import (
	"context"
	"log/slog"
	"regexp"
	"slices"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/api"
	"github.com/etnz/wealthdesk/date"
	"github.com/etnz/wealthdesk/logging"
)

// API is the part of the backend used by reports. *api.Client implements it.
//
//go:generate mockgen -destination=mocks/mock_api.go -package=mocks -source=report.go API
type API interface {
	Product(ctx context.Context, id int) (wealthdesk.Product, error)
	Products(ctx context.Context, clientGroupID int) ([]wealthdesk.Product, error)
	LatestPortfolioIRR(ctx context.Context, portfolioID int) (wealthdesk.LatestIRR, error)
	MultipleFundIRR(ctx context.Context, req wealthdesk.IRRRequest) (wealthdesk.IRRResponse, error)
	ProductIRRHistory(ctx context.Context, productID int) ([]wealthdesk.HistoricalIRR, error)
}

var _ API = (*api.Client)(nil)

// Service computes the IRR figures of a report.
type Service struct {
	api    API
	logger *slog.Logger
}

func NewService(a API, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{api: a, logger: logger}
}

// Products fetches products by id. Products that cannot be fetched are
// left out.
func (s *Service) Products(ctx context.Context, ids []int) []wealthdesk.Product {
	var products []wealthdesk.Product
	for _, id := range ids {
		p, err := s.api.Product(ctx, id)
		if err != nil {
			s.logger.Warn("cannot fetch product", "product_id", id, "error", err)
			continue
		}
		products = append(products, p)
	}
	return products
}

// ClientProductIDs returns the ids of the products of a client group. Unlike
// the figures of a report, a failure here is returned: there is nothing to
// report without the products.
func (s *Service) ClientProductIDs(ctx context.Context, clientGroupID int) ([]int, error) {
	products, err := s.api.Products(ctx, clientGroupID)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids, nil
}

// LatestProductIRR resolves the portfolio of a product, then returns its
// latest IRR. It returns nil when either call fails.
func (s *Service) LatestProductIRR(ctx context.Context, productID int) *wealthdesk.LatestIRR {
	p, err := s.api.Product(ctx, productID)
	if err != nil {
		s.logger.Warn("cannot fetch product", "product_id", productID, "error", err)
		return nil
	}
	return s.latestIRR(ctx, p)
}

// latestIRR returns the latest IRR of the portfolio of p, or nil.
func (s *Service) latestIRR(ctx context.Context, p wealthdesk.Product) *wealthdesk.LatestIRR {
	if p.PortfolioID == 0 {
		s.logger.Info("product has no portfolio", "product_id", p.ID)
		return nil
	}
	irr, err := s.api.LatestPortfolioIRR(ctx, p.PortfolioID)
	if err != nil {
		s.logger.Warn("cannot fetch latest IRR", "product_id", p.ID, "portfolio_id", p.PortfolioID, "error", err)
		return nil
	}
	return &irr
}

// HistoricalIRR fetches the IRR history of every product. Histories are
// always requested again: prefetched is only compared with the fresh
// answer and a difference is logged. A product whose history cannot be
// fetched maps to nil.
func (s *Service) HistoricalIRR(ctx context.Context, productIDs []int, prefetched map[int][]wealthdesk.HistoricalIRR) map[int][]wealthdesk.HistoricalIRR {
	out := make(map[int][]wealthdesk.HistoricalIRR, len(productIDs))
	for _, id := range productIDs {
		history, err := s.api.ProductIRRHistory(ctx, id)
		if err != nil {
			s.logger.Warn("cannot fetch IRR history", "product_id", id, "error", err)
			out[id] = nil
			continue
		}
		if old, ok := prefetched[id]; ok && !sameHistory(old, history) {
			s.logger.Info("prefetched IRR history differs from the backend", "product_id", id,
				"prefetched", len(old), "fetched", len(history))
		}
		out[id] = history
	}
	return out
}

func sameHistory(a, b []wealthdesk.HistoricalIRR) bool {
	return slices.EqualFunc(a, b, func(x, y wealthdesk.HistoricalIRR) bool {
		if x.Date != y.Date || (x.IRR == nil) != (y.IRR == nil) {
			return false
		}
		return x.IRR == nil || *x.IRR == *y.IRR
	})
}

// FundIDs returns the ids of the real funds of products, without
// duplicates, in first seen order. Virtual entries are skipped.
func FundIDs(products []wealthdesk.Product) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, p := range products {
		for _, f := range p.Funds {
			if f.Virtual || seen[f.ID] {
				continue
			}
			seen[f.ID] = true
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// RealtimeTotalIRR computes one IRR over every real fund of products at
// irrDate, in a single request. It returns nil when there is no fund or
// the request fails.
func (s *Service) RealtimeTotalIRR(ctx context.Context, products []wealthdesk.Product, irrDate string) *float64 {
	ids := FundIDs(products)
	if len(ids) == 0 {
		return nil
	}
	resp, err := s.api.MultipleFundIRR(ctx, wealthdesk.IRRRequest{
		PortfolioFundIDs: ids,
		IRRDate:          NormalizeIRRDate(irrDate),
	})
	if err != nil {
		s.logger.Warn("cannot compute total IRR", "funds", len(ids), "irr_date", irrDate, "error", err)
		return nil
	}
	return resp.IRRPercentage
}

var fullDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeIRRDate expands a "YYYY-MM" month to its last day. Full dates
// and anything else are returned unchanged.
func NormalizeIRRDate(s string) string {
	if fullDate.MatchString(s) {
		return s
	}
	month, err := date.ParseMonth(s)
	if err != nil {
		return s
	}
	return month.EndOfMonth().String()
}
