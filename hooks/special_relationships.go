package hooks

import (
	"context"
	"log/slog"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/query"
)

// SpecialRelationships reads and writes the contacts of client groups,
// cached per client group.
type SpecialRelationships struct{ base }

func NewSpecialRelationships(a API, cache *query.Client, logger *slog.Logger) *SpecialRelationships {
	return &SpecialRelationships{newBase(a, cache, logger)}
}

func (h *SpecialRelationships) ByClientGroup(ctx context.Context, clientGroupID int) ([]wealthdesk.SpecialRelationship, bool, error) {
	return query.Fetch(ctx, h.cache, specialRelationshipsKey(clientGroupID), func(ctx context.Context) ([]wealthdesk.SpecialRelationship, error) {
		return h.api.SpecialRelationships(ctx, clientGroupID)
	})
}

func (h *SpecialRelationships) Create(ctx context.Context, r wealthdesk.SpecialRelationship) (wealthdesk.SpecialRelationship, error) {
	if r.Status == "" {
		r.Status = wealthdesk.Active
	}
	r.ID = nextTempID()
	m := query.Mutation[wealthdesk.SpecialRelationship, wealthdesk.SpecialRelationship]{
		Name: "create special relationship",
		Keys: func(r wealthdesk.SpecialRelationship) []query.Key {
			return []query.Key{specialRelationshipsKey(r.ClientGroupID)}
		},
		Apply: mapList(func(r wealthdesk.SpecialRelationship, list []wealthdesk.SpecialRelationship) []wealthdesk.SpecialRelationship {
			return appended(list, r)
		}),
		Fn: func(ctx context.Context, r wealthdesk.SpecialRelationship) (wealthdesk.SpecialRelationship, error) {
			r.ID = 0
			return h.api.CreateSpecialRelationship(ctx, r)
		},
		Invalidates: fixedInvalidates[wealthdesk.SpecialRelationship, wealthdesk.SpecialRelationship](specialRelationshipsPfx),
	}
	return query.Mutate(ctx, h.cache, m, r)
}

func (h *SpecialRelationships) Update(ctx context.Context, r wealthdesk.SpecialRelationship) (wealthdesk.SpecialRelationship, error) {
	m := query.Mutation[wealthdesk.SpecialRelationship, wealthdesk.SpecialRelationship]{
		Name: "update special relationship",
		Keys: func(r wealthdesk.SpecialRelationship) []query.Key {
			return []query.Key{specialRelationshipsKey(r.ClientGroupID)}
		},
		Apply: mapList(func(r wealthdesk.SpecialRelationship, list []wealthdesk.SpecialRelationship) []wealthdesk.SpecialRelationship {
			return replace(list,
				func(x wealthdesk.SpecialRelationship) bool { return x.ID == r.ID },
				func(wealthdesk.SpecialRelationship) wealthdesk.SpecialRelationship { return r })
		}),
		Fn:          h.api.UpdateSpecialRelationship,
		Invalidates: fixedInvalidates[wealthdesk.SpecialRelationship, wealthdesk.SpecialRelationship](specialRelationshipsPfx),
	}
	return query.Mutate(ctx, h.cache, m, r)
}

// Delete removes relationship id from every cached client group list.
func (h *SpecialRelationships) Delete(ctx context.Context, id int) error {
	m := query.Mutation[int, struct{}]{
		Name: "delete special relationship",
		Keys: func(int) []query.Key { return h.cache.Keys(specialRelationshipsPfx) },
		Apply: mapList(func(id int, list []wealthdesk.SpecialRelationship) []wealthdesk.SpecialRelationship {
			return remove(list, func(r wealthdesk.SpecialRelationship) bool { return r.ID == id })
		}),
		Fn: func(ctx context.Context, id int) (struct{}, error) {
			return struct{}{}, h.api.DeleteSpecialRelationship(ctx, id)
		},
		Invalidates: fixedInvalidates[int, struct{}](specialRelationshipsPfx),
	}
	_, err := query.Mutate(ctx, h.cache, m, id)
	return err
}
