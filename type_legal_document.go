package wealthdesk

import (
	"slices"

	"github.com/etnz/wealthdesk/date"
)

// DocumentStatus is the registration status of a legal document.
type DocumentStatus string

const (
	Signed     DocumentStatus = "Signed"
	Lapsed     DocumentStatus = "Lapsed"
	Registered DocumentStatus = "Registered"
)

// DocumentStatuses lists the accepted document statuses.
var DocumentStatuses = []DocumentStatus{Signed, Lapsed, Registered}

// Valid reports whether s is one of DocumentStatuses.
func (s DocumentStatus) Valid() bool { return slices.Contains(DocumentStatuses, s) }

// DocumentTypes lists the usual legal document types. Other free-text types are accepted.
var DocumentTypes = []string{
	"Will",
	"LPOA P&F",
	"LPOA H&W",
	"EPA",
	"General Power of Attorney",
	"Advance Directive",
	"Other",
}

// LegalDocument is a will, power of attorney or similar document held for product owners.
type LegalDocument struct {
	ID              int            `json:"id"`
	Type            string         `json:"type"`
	DocumentDate    date.Date      `json:"document_date"`
	Status          DocumentStatus `json:"status"`
	Notes           string         `json:"notes,omitempty"`
	ProductOwnerIDs []int          `json:"product_owner_ids"`
}

// HasOwner reports whether the document is associated with the product owner.
func (d LegalDocument) HasOwner(ownerID int) bool { return slices.Contains(d.ProductOwnerIDs, ownerID) }
