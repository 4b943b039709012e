package hooks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/query"
)

// ProductOwners reads and writes product owners. Forms are validated before
// anything is sent.
type ProductOwners struct{ base }

func NewProductOwners(a API, cache *query.Client, logger *slog.Logger) *ProductOwners {
	return &ProductOwners{newBase(a, cache, logger)}
}

func (h *ProductOwners) List(ctx context.Context) (owners []wealthdesk.ProductOwner, ok bool, err error) {
	return query.Fetch(ctx, h.cache, productOwnersKey, h.api.ProductOwners)
}

// saveAddress creates the address of o when it has one and no id yet.
func (h *ProductOwners) saveAddress(ctx context.Context, o wealthdesk.ProductOwner) (wealthdesk.ProductOwner, error) {
	if o.Address == nil || o.Address.IsEmpty() || o.AddressID != 0 {
		return o, nil
	}
	addr, err := h.api.CreateAddress(ctx, *o.Address)
	if err != nil {
		return o, fmt.Errorf("cannot create address of %s: %w", o.Name(), err)
	}
	o.AddressID = addr.ID
	o.Address = &addr
	return o, nil
}

// Create validates o, creates its address if needed, then the owner itself.
func (h *ProductOwners) Create(ctx context.Context, o wealthdesk.ProductOwner) (wealthdesk.ProductOwner, error) {
	if o.Status == "" {
		o.Status = wealthdesk.Active
	}
	if err := wealthdesk.ValidateProductOwner(o).OrNil(); err != nil {
		return wealthdesk.ProductOwner{}, err
	}
	o.ID = nextTempID()
	m := query.Mutation[wealthdesk.ProductOwner, wealthdesk.ProductOwner]{
		Name: "create product owner",
		Keys: fixedKeys[wealthdesk.ProductOwner](productOwnersKey),
		Apply: mapList(func(o wealthdesk.ProductOwner, list []wealthdesk.ProductOwner) []wealthdesk.ProductOwner {
			return appended(list, o)
		}),
		Fn: func(ctx context.Context, o wealthdesk.ProductOwner) (wealthdesk.ProductOwner, error) {
			o.ID = 0
			o, err := h.saveAddress(ctx, o)
			if err != nil {
				return wealthdesk.ProductOwner{}, err
			}
			return h.api.CreateProductOwner(ctx, o)
		},
		Invalidates: fixedInvalidates[wealthdesk.ProductOwner, wealthdesk.ProductOwner](productOwnersKey),
	}
	return query.Mutate(ctx, h.cache, m, o)
}

// Update validates o and replaces the cached owner with the same id.
func (h *ProductOwners) Update(ctx context.Context, o wealthdesk.ProductOwner) (wealthdesk.ProductOwner, error) {
	if err := wealthdesk.ValidateProductOwner(o).OrNil(); err != nil {
		return wealthdesk.ProductOwner{}, err
	}
	m := query.Mutation[wealthdesk.ProductOwner, wealthdesk.ProductOwner]{
		Name: "update product owner",
		Keys: fixedKeys[wealthdesk.ProductOwner](productOwnersKey),
		Apply: mapList(func(o wealthdesk.ProductOwner, list []wealthdesk.ProductOwner) []wealthdesk.ProductOwner {
			return replace(list,
				func(x wealthdesk.ProductOwner) bool { return x.ID == o.ID },
				func(wealthdesk.ProductOwner) wealthdesk.ProductOwner { return o })
		}),
		Fn: func(ctx context.Context, o wealthdesk.ProductOwner) (wealthdesk.ProductOwner, error) {
			o, err := h.saveAddress(ctx, o)
			if err != nil {
				return wealthdesk.ProductOwner{}, err
			}
			return h.api.UpdateProductOwner(ctx, o)
		},
		Invalidates: fixedInvalidates[wealthdesk.ProductOwner, wealthdesk.ProductOwner](productOwnersKey),
	}
	return query.Mutate(ctx, h.cache, m, o)
}
