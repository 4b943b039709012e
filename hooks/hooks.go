// Package hooks binds the backend API to the query cache, one type per
// entity. Reads go through the cache; writes are reflected in the cache
// before the request is sent and rolled back when the backend rejects them.
package hooks

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/api"
	"github.com/etnz/wealthdesk/date"
	"github.com/etnz/wealthdesk/logging"
	"github.com/etnz/wealthdesk/query"
)

// API is the part of the backend used by the hooks. *api.Client implements it.
//
//go:generate mockgen -destination=mocks/mock_api.go -package=mocks -source=hooks.go API
type API interface {
	ClientGroups(ctx context.Context) ([]wealthdesk.ClientGroup, error)
	CreateClientGroup(ctx context.Context, g wealthdesk.ClientGroup) (wealthdesk.ClientGroup, error)
	UpdateClientGroup(ctx context.Context, g wealthdesk.ClientGroup) (wealthdesk.ClientGroup, error)
	DeleteClientGroup(ctx context.Context, id int) error

	ProductOwners(ctx context.Context) ([]wealthdesk.ProductOwner, error)
	CreateProductOwner(ctx context.Context, o wealthdesk.ProductOwner) (wealthdesk.ProductOwner, error)
	UpdateProductOwner(ctx context.Context, o wealthdesk.ProductOwner) (wealthdesk.ProductOwner, error)
	CreateAddress(ctx context.Context, a wealthdesk.Address) (wealthdesk.Address, error)

	ScheduledTransactions(ctx context.Context, portfolioFundID int) ([]wealthdesk.ScheduledTransaction, error)
	PauseScheduledTransaction(ctx context.Context, id int) (wealthdesk.ScheduledTransaction, error)
	ResumeScheduledTransaction(ctx context.Context, id int) (wealthdesk.ScheduledTransaction, error)
	CancelScheduledTransaction(ctx context.Context, id int) error
	ExecutePending(ctx context.Context, target date.Date) (api.ExecutionSummary, error)

	LegalDocuments(ctx context.Context, productOwnerID int) ([]wealthdesk.LegalDocument, error)
	CreateLegalDocument(ctx context.Context, d wealthdesk.LegalDocument) (wealthdesk.LegalDocument, error)
	UpdateLegalDocument(ctx context.Context, id int, p api.LegalDocumentPatch) (wealthdesk.LegalDocument, error)
	UpdateLegalDocumentStatus(ctx context.Context, id int, status wealthdesk.DocumentStatus) (wealthdesk.LegalDocument, error)
	DeleteLegalDocument(ctx context.Context, id int) error

	SpecialRelationships(ctx context.Context, clientGroupID int) ([]wealthdesk.SpecialRelationship, error)
	CreateSpecialRelationship(ctx context.Context, r wealthdesk.SpecialRelationship) (wealthdesk.SpecialRelationship, error)
	UpdateSpecialRelationship(ctx context.Context, r wealthdesk.SpecialRelationship) (wealthdesk.SpecialRelationship, error)
	DeleteSpecialRelationship(ctx context.Context, id int) error

	Providers(ctx context.Context) ([]wealthdesk.Provider, error)
	Funds(ctx context.Context) ([]wealthdesk.Fund, error)
	Portfolios(ctx context.Context) ([]wealthdesk.Portfolio, error)
}

var _ API = (*api.Client)(nil)

// ErrInvalidTransition is returned when a scheduled transaction action is
// not allowed from its current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// Cache keys.
var (
	clientGroupsKey         = query.Key{"client_groups"}
	productOwnersKey        = query.Key{"product_owners"}
	scheduledPrefix         = query.Key{"scheduled_transactions"}
	legalDocumentsPrefix    = query.Key{"legal_documents", "product_owner"}
	specialRelationshipsPfx = query.Key{"special_relationships"}
	providersKey            = query.Key{"available_providers"}
	fundsKey                = query.Key{"funds"}
	portfoliosKey           = query.Key{"available_portfolios"}
)

func legalDocumentsKey(ownerID int) query.Key {
	return append(append(query.Key{}, legalDocumentsPrefix...), ownerID)
}

func scheduledKey(portfolioFundID int) query.Key {
	return query.Key{"scheduled_transactions", portfolioFundID}
}

func specialRelationshipsKey(clientGroupID int) query.Key {
	return query.Key{"special_relationships", clientGroupID}
}

// tempIDs hands out negative ids for records created optimistically, so
// they never collide with backend ids.
var tempIDs atomic.Int64

func nextTempID() int { return int(-tempIDs.Add(1)) }

// base holds what every hook needs.
type base struct {
	api    API
	cache  *query.Client
	logger *slog.Logger
}

func newBase(a API, cache *query.Client, logger *slog.Logger) base {
	if logger == nil {
		logger = logging.Discard()
	}
	return base{api: a, cache: cache, logger: logger}
}

// replace returns a copy of list where the items matching match are
// changed by fn.
func replace[T any](list []T, match func(T) bool, fn func(T) T) []T {
	out := make([]T, len(list))
	for i, item := range list {
		if match(item) {
			item = fn(item)
		}
		out[i] = item
	}
	return out
}

// remove returns a copy of list without the items matching match.
func remove[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}

// appended returns a copy of list with item at the end.
func appended[T any](list []T, item T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}

// listOf returns old as a []T. nil or another type is an empty list.
func listOf[T any](old any) []T {
	list, _ := old.([]T)
	return list
}

// mapList builds an Apply function that changes cached lists of T, and
// leaves absent entries absent.
func mapList[V, T any](fn func(V, []T) []T) func(V, query.Key, any) any {
	return func(v V, _ query.Key, old any) any {
		if old == nil {
			return nil
		}
		return fn(v, listOf[T](old))
	}
}

func fixedKeys[V any](ks ...query.Key) func(V) []query.Key {
	return func(V) []query.Key { return ks }
}

func fixedInvalidates[V, R any](ks ...query.Key) func(V, R) []query.Key {
	return func(V, R) []query.Key { return ks }
}
