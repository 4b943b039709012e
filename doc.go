// Package wealthdesk provides the records and validation rules of an
// administration desk for a wealth-management business: client groups,
// product owners and their addresses, scheduled transactions, legal
// documents, and the provider, fund and portfolio catalogs.
//
// All records are owned by a remote REST backend. This package only
// mirrors their shape and checks them before they are sent:
//   - Records: plain structs with the JSON field names used by the backend.
//   - Enumerations: fixed option lists (client group types, transaction
//     types, statuses) with membership checks.
//   - Validation: per-field predicates and per-record validators that
//     aggregate every failing field into one FieldErrors value.
//
// Sub-packages build on it: api talks to the backend, query caches its
// responses, hooks apply optimistic mutations, table renders record lists,
// report assembles IRR figures, and cmd exposes everything as the `wd`
// command-line tool.
package wealthdesk
