package hooks

import (
	"context"
	"log/slog"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/api"
	"github.com/etnz/wealthdesk/query"
)

// LegalDocuments reads and writes legal documents, cached per product owner.
type LegalDocuments struct{ base }

func NewLegalDocuments(a API, cache *query.Client, logger *slog.Logger) *LegalDocuments {
	return &LegalDocuments{newBase(a, cache, logger)}
}

// ByProductOwner returns the documents of a product owner. ok is false when
// the request was cancelled.
func (h *LegalDocuments) ByProductOwner(ctx context.Context, ownerID int) (docs []wealthdesk.LegalDocument, ok bool, err error) {
	return query.Fetch(ctx, h.cache, legalDocumentsKey(ownerID), func(ctx context.Context) ([]wealthdesk.LegalDocument, error) {
		return h.api.LegalDocuments(ctx, ownerID)
	})
}

// cachedKeys returns the keys of every cached owner list.
func (h *LegalDocuments) cachedKeys() []query.Key { return h.cache.Keys(legalDocumentsPrefix) }

// Create adds doc to the list of every owner it references, under a
// temporary negative id, then creates it on the backend.
func (h *LegalDocuments) Create(ctx context.Context, doc wealthdesk.LegalDocument) (wealthdesk.LegalDocument, error) {
	if err := wealthdesk.ValidateLegalDocument(doc).OrNil(); err != nil {
		return wealthdesk.LegalDocument{}, err
	}
	doc.ID = nextTempID()
	m := query.Mutation[wealthdesk.LegalDocument, wealthdesk.LegalDocument]{
		Name: "create legal document",
		Keys: func(d wealthdesk.LegalDocument) []query.Key {
			ks := make([]query.Key, len(d.ProductOwnerIDs))
			for i, id := range d.ProductOwnerIDs {
				ks[i] = legalDocumentsKey(id)
			}
			return ks
		},
		Apply: mapList(func(d wealthdesk.LegalDocument, list []wealthdesk.LegalDocument) []wealthdesk.LegalDocument {
			return appended(list, d)
		}),
		Fn: func(ctx context.Context, d wealthdesk.LegalDocument) (wealthdesk.LegalDocument, error) {
			d.ID = 0
			return h.api.CreateLegalDocument(ctx, d)
		},
		Invalidates: fixedInvalidates[wealthdesk.LegalDocument, wealthdesk.LegalDocument](legalDocumentsPrefix),
	}
	return query.Mutate(ctx, h.cache, m, doc)
}

type documentPatch struct {
	id    int
	patch api.LegalDocumentPatch
}

// Update merges patch into document id.
func (h *LegalDocuments) Update(ctx context.Context, id int, patch api.LegalDocumentPatch) (wealthdesk.LegalDocument, error) {
	m := query.Mutation[documentPatch, wealthdesk.LegalDocument]{
		Name: "update legal document",
		Keys: func(documentPatch) []query.Key { return h.cachedKeys() },
		Apply: mapList(func(p documentPatch, list []wealthdesk.LegalDocument) []wealthdesk.LegalDocument {
			return replace(list, byDocumentID(p.id), p.patch.Apply)
		}),
		Fn: func(ctx context.Context, p documentPatch) (wealthdesk.LegalDocument, error) {
			return h.api.UpdateLegalDocument(ctx, p.id, p.patch)
		},
		Invalidates: fixedInvalidates[documentPatch, wealthdesk.LegalDocument](legalDocumentsPrefix),
	}
	return query.Mutate(ctx, h.cache, m, documentPatch{id, patch})
}

type documentStatus struct {
	id     int
	status wealthdesk.DocumentStatus
}

// UpdateStatus replaces the status of document id.
func (h *LegalDocuments) UpdateStatus(ctx context.Context, id int, status wealthdesk.DocumentStatus) (wealthdesk.LegalDocument, error) {
	if !status.Valid() {
		return wealthdesk.LegalDocument{}, wealthdesk.FieldErrors{"status": "Status must be one of Signed, Lapsed, Registered"}
	}
	m := query.Mutation[documentStatus, wealthdesk.LegalDocument]{
		Name: "update legal document status",
		Keys: func(documentStatus) []query.Key { return h.cachedKeys() },
		Apply: mapList(func(s documentStatus, list []wealthdesk.LegalDocument) []wealthdesk.LegalDocument {
			return replace(list, byDocumentID(s.id), func(d wealthdesk.LegalDocument) wealthdesk.LegalDocument {
				d.Status = s.status
				return d
			})
		}),
		Fn: func(ctx context.Context, s documentStatus) (wealthdesk.LegalDocument, error) {
			return h.api.UpdateLegalDocumentStatus(ctx, s.id, s.status)
		},
		Invalidates: fixedInvalidates[documentStatus, wealthdesk.LegalDocument](legalDocumentsPrefix),
	}
	return query.Mutate(ctx, h.cache, m, documentStatus{id, status})
}

// Delete removes document id from every cached list, then from the backend.
func (h *LegalDocuments) Delete(ctx context.Context, id int) error {
	m := query.Mutation[int, struct{}]{
		Name: "delete legal document",
		Keys: func(int) []query.Key { return h.cachedKeys() },
		Apply: mapList(func(id int, list []wealthdesk.LegalDocument) []wealthdesk.LegalDocument {
			return remove(list, byDocumentID(id))
		}),
		Fn: func(ctx context.Context, id int) (struct{}, error) {
			return struct{}{}, h.api.DeleteLegalDocument(ctx, id)
		},
		Invalidates: fixedInvalidates[int, struct{}](legalDocumentsPrefix),
	}
	_, err := query.Mutate(ctx, h.cache, m, id)
	return err
}

func byDocumentID(id int) func(wealthdesk.LegalDocument) bool {
	return func(d wealthdesk.LegalDocument) bool { return d.ID == id }
}
