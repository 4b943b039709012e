package wealthdesk

import (
	"strings"

	"github.com/etnz/wealthdesk/date"
)

// AMLResult is the outcome of the last anti-money-laundering check.
type AMLResult string

const (
	AMLPass    AMLResult = "Pass"
	AMLFail    AMLResult = "Fail"
	AMLPending AMLResult = "Pending"
)

// AMLResults lists the accepted AML results.
var AMLResults = []AMLResult{AMLPass, AMLFail, AMLPending}

// Titles lists the accepted honorifics for a product owner.
var Titles = []string{"Mr", "Mrs", "Miss", "Ms", "Dr", "Prof", "Rev", "Sir", "Lady", "Lord"}

// ProductOwner is a person owning one or more products inside a client group.
type ProductOwner struct {
	ID             int       `json:"id,omitempty"`
	Status         Status    `json:"status"`
	Title          string    `json:"title,omitempty"`
	Firstname      string    `json:"firstname"`
	MiddleNames    string    `json:"middle_names,omitempty"`
	Surname        string    `json:"surname"`
	KnownAs        string    `json:"known_as,omitempty"`
	DOB            date.Date `json:"dob"`
	EmailPrimary   string    `json:"email_1,omitempty"`
	EmailSecondary string    `json:"email_2,omitempty"`
	PhonePrimary   string    `json:"phone_1,omitempty"`
	PhoneSecondary string    `json:"phone_2,omitempty"`
	AddressID      int       `json:"address_id,omitempty"`
	Address        *Address  `json:"address,omitempty"`
	NINumber       string    `json:"ni_number,omitempty"`
	AMLResult      AMLResult `json:"aml_result,omitempty"`
	AMLDate        date.Date `json:"aml_date"`
	CreatedAt      date.Date `json:"created_at"`
}

// Name returns the display name: known-as or firstname, then surname.
func (o ProductOwner) Name() string {
	first := o.KnownAs
	if first == "" {
		first = o.Firstname
	}
	return strings.TrimSpace(first + " " + o.Surname)
}

// Address is a free-text postal address.
type Address struct {
	ID    int    `json:"id,omitempty"`
	Line1 string `json:"line_1"`
	Line2 string `json:"line_2"`
	Line3 string `json:"line_3"`
	Line4 string `json:"line_4"`
	Line5 string `json:"line_5"`
}

// Lines returns the five address lines in order.
func (a Address) Lines() [5]string {
	return [5]string{a.Line1, a.Line2, a.Line3, a.Line4, a.Line5}
}

// IsEmpty reports whether every line is blank.
func (a Address) IsEmpty() bool {
	for _, l := range a.Lines() {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

// String joins the non blank lines with ", ".
func (a Address) String() string {
	var parts []string
	for _, l := range a.Lines() {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, ", ")
}
