package hooks

import (
	"context"
	"log/slog"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/query"
)

// Catalog reads the provider, fund and portfolio template lists.
type Catalog struct{ base }

func NewCatalog(a API, cache *query.Client, logger *slog.Logger) *Catalog {
	return &Catalog{newBase(a, cache, logger)}
}

func (h *Catalog) Providers(ctx context.Context) ([]wealthdesk.Provider, bool, error) {
	return query.Fetch(ctx, h.cache, providersKey, h.api.Providers)
}

func (h *Catalog) Funds(ctx context.Context) ([]wealthdesk.Fund, bool, error) {
	return query.Fetch(ctx, h.cache, fundsKey, h.api.Funds)
}

func (h *Catalog) Portfolios(ctx context.Context) ([]wealthdesk.Portfolio, bool, error) {
	return query.Fetch(ctx, h.cache, portfoliosKey, h.api.Portfolios)
}
