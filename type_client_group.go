package wealthdesk

import (
	"fmt"
	"strings"

	"github.com/etnz/wealthdesk/date"
)

// ClientGroupType is the legal shape of a client group.
type ClientGroupType string

const (
	Individual ClientGroupType = "Individual"
	Joint      ClientGroupType = "Joint"
	Family     ClientGroupType = "Family"
	Trust      ClientGroupType = "Trust"
	Corporate  ClientGroupType = "Corporate"
)

// ClientGroupTypes lists the accepted client group types, in display order.
var ClientGroupTypes = []ClientGroupType{Individual, Joint, Family, Trust, Corporate}

// Valid reports whether t is one of ClientGroupTypes.
func (t ClientGroupType) Valid() bool {
	for _, v := range ClientGroupTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ParseClientGroupType is case insensitive.
func ParseClientGroupType(s string) (ClientGroupType, error) {
	for _, v := range ClientGroupTypes {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown client group type %q", s)
}

// Status is the lifecycle status shared by catalog records and client groups.
type Status string

const (
	Active   Status = "active"
	Inactive Status = "inactive"
)

// Valid reports whether s is active or inactive.
func (s Status) Valid() bool { return s == Active || s == Inactive }

// ClientGroup is a household, trust or company managed as one relationship.
type ClientGroup struct {
	ID                     int             `json:"id,omitempty"`
	Name                   string          `json:"name"`
	Type                   ClientGroupType `json:"type"`
	Status                 Status          `json:"status"`
	IDDeclarationDate      date.Date       `json:"id_declaration_date"`
	PrivacyDeclarationDate date.Date       `json:"privacy_declaration_date"`
	Notes                  string          `json:"notes,omitempty"`
	CreatedAt              date.Date       `json:"created_at"`
}
