package wealthdesk

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/etnz/wealthdesk/date"
)

// FieldErrors maps a field name to a human readable message.
// A nil or empty FieldErrors means the record is valid.
type FieldErrors map[string]string

// Error lists the failures sorted by field name.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f+": "+e[f])
	}
	return strings.Join(msgs, "; ")
}

// OrNil returns e as an error, or a nil error when e is empty.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// orNil returns nil for an empty map so that validators return nil on success.
func (e FieldErrors) orNil() FieldErrors {
	if len(e) == 0 {
		return nil
	}
	return e
}

const (
	maxNameLength  = 100
	maxNotesLength = 1000
	maxAgeYears    = 120
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	// UK National Insurance number: two prefix letters (D, F, I, Q, U, V
	// never used, O never second), six digits, suffix A to D.
	niPattern = regexp.MustCompile(`^[A-CEGHJ-PR-TW-Z][A-CEGHJ-NPR-TW-Z][0-9]{6}[A-D]$`)
	// Prefixes never allocated.
	niForbiddenPrefixes = []string{"BG", "GB", "KN", "NK", "NT", "TN", "ZZ"}
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool { return emailPattern.MatchString(strings.TrimSpace(s)) }

// IsValidPhone accepts 10 to 15 digits with an optional leading "+"; spaces,
// dashes, dots and parentheses are ignored.
func IsValidPhone(s string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, s)
	return phonePattern.MatchString(cleaned)
}

// IsValidNINumber checks a UK National Insurance number, ignoring spaces and case.
func IsValidNINumber(s string) bool {
	ni := strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if !niPattern.MatchString(ni) {
		return false
	}
	return !slices.Contains(niForbiddenPrefixes, ni[:2])
}

// DateRule restricts the accepted range of a date.
type DateRule struct {
	Required    bool
	NotFuture   bool
	MaxYearsAgo int // 0 for no lower bound
}

// ValidateDate returns an empty string when d satisfies rule, or the message
// describing the first broken rule.
func ValidateDate(d date.Date, label string, rule DateRule) string {
	if d.IsZero() {
		if rule.Required {
			return label + " is required"
		}
		return ""
	}
	today := date.Today()
	if rule.NotFuture && d.After(today) {
		return label + " cannot be in the future"
	}
	if rule.MaxYearsAgo > 0 && d.Before(today.AddYears(-rule.MaxYearsAgo)) {
		return fmt.Sprintf("%s cannot be more than %d years ago", label, rule.MaxYearsAgo)
	}
	return ""
}

// ParseDateField parses a form value into a date and validates it. Unparsable
// values produce an "invalid date" message.
func ParseDateField(value, label string, rule DateRule) (date.Date, string) {
	if strings.TrimSpace(value) == "" {
		return date.Date{}, ValidateDate(date.Date{}, label, rule)
	}
	d, err := date.Parse(strings.TrimSpace(value))
	if err != nil {
		return date.Date{}, label + " is not a valid date"
	}
	return d, ValidateDate(d, label, rule)
}

// checkLength records a message when s is outside [min, max] characters.
func (e FieldErrors) checkLength(field, label, s string, min, max int) {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	switch {
	case n < min && min == 1:
		e[field] = label + " is required"
	case n < min:
		e[field] = fmt.Sprintf("%s must be at least %d characters", label, min)
	case n > max:
		e[field] = fmt.Sprintf("%s must be at most %d characters", label, max)
	}
}

// checkDate records the message of ValidateDate, if any.
func (e FieldErrors) checkDate(field, label string, d date.Date, rule DateRule) {
	if msg := ValidateDate(d, label, rule); msg != "" {
		e[field] = msg
	}
}

// ValidateClientGroup checks a client group form.
func ValidateClientGroup(g ClientGroup) FieldErrors {
	errs := FieldErrors{}
	errs.checkLength("name", "Client group name", g.Name, 1, maxNameLength)
	if !g.Type.Valid() {
		errs["type"] = fmt.Sprintf("Client group type must be one of %s", joinOptions(ClientGroupTypes))
	}
	if g.Status != "" && !g.Status.Valid() {
		errs["status"] = "Status must be active or inactive"
	}
	errs.checkDate("id_declaration_date", "ID declaration date", g.IDDeclarationDate, DateRule{NotFuture: true})
	errs.checkDate("privacy_declaration_date", "Privacy declaration date", g.PrivacyDeclarationDate, DateRule{NotFuture: true})
	if utf8.RuneCountInString(g.Notes) > maxNotesLength {
		errs["notes"] = fmt.Sprintf("Notes must be at most %d characters", maxNotesLength)
	}
	return errs.orNil()
}

// ValidateAddress checks the line dependencies of an address. An address
// with every line empty is valid.
func ValidateAddress(a Address) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(a.Line1) == "" {
		lines := a.Lines()
		for _, l := range lines[1:] {
			if strings.TrimSpace(l) != "" {
				errs["line_1"] = "Address line 1 is required when other address lines are provided"
				break
			}
		}
	}
	for i, l := range a.Lines() {
		if utf8.RuneCountInString(l) > maxNameLength {
			errs[fmt.Sprintf("line_%d", i+1)] = fmt.Sprintf("Address line %d must be at most %d characters", i+1, maxNameLength)
		}
	}
	return errs.orNil()
}

// ValidateProductOwner checks a product owner form, including its address.
// At least one email and one phone are required; each provided value must
// be well formed.
func ValidateProductOwner(o ProductOwner) FieldErrors {
	errs := FieldErrors{}
	errs.checkLength("firstname", "First name", o.Firstname, 1, maxNameLength)
	errs.checkLength("surname", "Surname", o.Surname, 1, maxNameLength)
	errs.checkDate("dob", "Date of birth", o.DOB, DateRule{Required: true, NotFuture: true, MaxYearsAgo: maxAgeYears})

	if o.Title != "" && !slices.Contains(Titles, o.Title) {
		errs["title"] = fmt.Sprintf("Title must be one of %s", strings.Join(Titles, ", "))
	}

	email1, email2 := strings.TrimSpace(o.EmailPrimary), strings.TrimSpace(o.EmailSecondary)
	if email1 == "" && email2 == "" {
		errs["email"] = "At least one email address is required"
	}
	if email1 != "" && !IsValidEmail(email1) {
		errs["email_1"] = "Please enter a valid email address"
	}
	if email2 != "" && !IsValidEmail(email2) {
		errs["email_2"] = "Please enter a valid email address"
	}

	phone1, phone2 := strings.TrimSpace(o.PhonePrimary), strings.TrimSpace(o.PhoneSecondary)
	if phone1 == "" && phone2 == "" {
		errs["phone"] = "At least one phone number is required"
	}
	if phone1 != "" && !IsValidPhone(phone1) {
		errs["phone_1"] = "Please enter a valid phone number"
	}
	if phone2 != "" && !IsValidPhone(phone2) {
		errs["phone_2"] = "Please enter a valid phone number"
	}

	if o.NINumber != "" && !IsValidNINumber(o.NINumber) {
		errs["ni_number"] = "Please enter a valid National Insurance number (e.g. AB123456C)"
	}
	if o.AMLResult != "" && !slices.Contains(AMLResults, o.AMLResult) {
		errs["aml_result"] = "AML result must be Pass, Fail or Pending"
	}
	errs.checkDate("aml_date", "AML date", o.AMLDate, DateRule{NotFuture: true})

	if o.Address != nil {
		for field, msg := range ValidateAddress(*o.Address) {
			errs[field] = msg
		}
	}
	return errs.orNil()
}

// ValidateScheduledTransaction checks a schedule before it is created.
func ValidateScheduledTransaction(s ScheduledTransaction) FieldErrors {
	errs := FieldErrors{}
	if s.PortfolioFundID <= 0 {
		errs["portfolio_fund_id"] = "Portfolio fund is required"
	}
	if !s.Type.Valid() {
		errs["transaction_type"] = fmt.Sprintf("Transaction type must be one of %s", joinOptions(TransactionTypes))
	}
	if !s.Amount.IsPositive() {
		errs["amount"] = "Amount must be greater than zero"
	}
	if s.ExecutionDay < 1 || s.ExecutionDay > 31 {
		errs["execution_day"] = "Execution day must be between 1 and 31"
	}
	if s.Type.Recurring() && !s.RecurrenceInterval.Valid() {
		errs["recurrence_interval"] = "Recurrence interval is required for regular transactions"
	}
	if s.MaxExecutions < 0 {
		errs["max_executions"] = "Max executions cannot be negative"
	}
	return errs.orNil()
}

// ValidateLegalDocument checks a document before it is created or updated.
func ValidateLegalDocument(d LegalDocument) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Type) == "" {
		errs["type"] = "Document type is required"
	}
	if d.Status != "" && !d.Status.Valid() {
		errs["status"] = fmt.Sprintf("Status must be one of %s", joinOptions(DocumentStatuses))
	}
	errs.checkDate("document_date", "Document date", d.DocumentDate, DateRule{NotFuture: true})
	if len(d.ProductOwnerIDs) == 0 {
		errs["product_owner_ids"] = "At least one product owner is required"
	}
	return errs.orNil()
}

// Validate dispatches 'record' to its validator and returns the failures as
// an error, or nil. Unknown record types are always valid.
func Validate(record any) error {
	var errs FieldErrors
	switch v := record.(type) {
	case ClientGroup:
		errs = ValidateClientGroup(v)
	case ProductOwner:
		errs = ValidateProductOwner(v)
	case Address:
		errs = ValidateAddress(v)
	case ScheduledTransaction:
		errs = ValidateScheduledTransaction(v)
	case LegalDocument:
		errs = ValidateLegalDocument(v)
	}
	return errs.OrNil()
}

func joinOptions[T ~string](options []T) string {
	s := make([]string, len(options))
	for i, o := range options {
		s[i] = string(o)
	}
	return strings.Join(s, ", ")
}
