package hooks

import (
	"context"
	"log/slog"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/query"
)

// ClientGroups reads and writes client groups.
type ClientGroups struct{ base }

func NewClientGroups(a API, cache *query.Client, logger *slog.Logger) *ClientGroups {
	return &ClientGroups{newBase(a, cache, logger)}
}

func (h *ClientGroups) List(ctx context.Context) (groups []wealthdesk.ClientGroup, ok bool, err error) {
	return query.Fetch(ctx, h.cache, clientGroupsKey, h.api.ClientGroups)
}

// Create validates g and adds it to the cached list under a temporary id.
func (h *ClientGroups) Create(ctx context.Context, g wealthdesk.ClientGroup) (wealthdesk.ClientGroup, error) {
	if g.Status == "" {
		g.Status = wealthdesk.Active
	}
	if err := wealthdesk.ValidateClientGroup(g).OrNil(); err != nil {
		return wealthdesk.ClientGroup{}, err
	}
	g.ID = nextTempID()
	m := query.Mutation[wealthdesk.ClientGroup, wealthdesk.ClientGroup]{
		Name: "create client group",
		Keys: fixedKeys[wealthdesk.ClientGroup](clientGroupsKey),
		Apply: mapList(func(g wealthdesk.ClientGroup, list []wealthdesk.ClientGroup) []wealthdesk.ClientGroup {
			return appended(list, g)
		}),
		Fn: func(ctx context.Context, g wealthdesk.ClientGroup) (wealthdesk.ClientGroup, error) {
			g.ID = 0
			return h.api.CreateClientGroup(ctx, g)
		},
		Invalidates: fixedInvalidates[wealthdesk.ClientGroup, wealthdesk.ClientGroup](clientGroupsKey),
	}
	return query.Mutate(ctx, h.cache, m, g)
}

// Update validates g and replaces the cached group with the same id.
func (h *ClientGroups) Update(ctx context.Context, g wealthdesk.ClientGroup) (wealthdesk.ClientGroup, error) {
	if err := wealthdesk.ValidateClientGroup(g).OrNil(); err != nil {
		return wealthdesk.ClientGroup{}, err
	}
	m := query.Mutation[wealthdesk.ClientGroup, wealthdesk.ClientGroup]{
		Name: "update client group",
		Keys: fixedKeys[wealthdesk.ClientGroup](clientGroupsKey),
		Apply: mapList(func(g wealthdesk.ClientGroup, list []wealthdesk.ClientGroup) []wealthdesk.ClientGroup {
			return replace(list,
				func(x wealthdesk.ClientGroup) bool { return x.ID == g.ID },
				func(wealthdesk.ClientGroup) wealthdesk.ClientGroup { return g })
		}),
		Fn:          h.api.UpdateClientGroup,
		Invalidates: fixedInvalidates[wealthdesk.ClientGroup, wealthdesk.ClientGroup](clientGroupsKey),
	}
	return query.Mutate(ctx, h.cache, m, g)
}

func (h *ClientGroups) Delete(ctx context.Context, id int) error {
	m := query.Mutation[int, struct{}]{
		Name: "delete client group",
		Keys: fixedKeys[int](clientGroupsKey),
		Apply: mapList(func(id int, list []wealthdesk.ClientGroup) []wealthdesk.ClientGroup {
			return remove(list, func(g wealthdesk.ClientGroup) bool { return g.ID == id })
		}),
		Fn: func(ctx context.Context, id int) (struct{}, error) {
			return struct{}{}, h.api.DeleteClientGroup(ctx, id)
		},
		Invalidates: fixedInvalidates[int, struct{}](clientGroupsKey),
	}
	_, err := query.Mutate(ctx, h.cache, m, id)
	return err
}
