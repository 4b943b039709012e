// Package format turns amounts, ratios and dates into display strings:
// currency, percentage and IRR values with optional zero hiding and sign
// visualization.
package format

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/wealthdesk/date"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the ISO code used when Options.Currency is empty.
const DefaultCurrency = "GBP"

// Placeholder is shown for hidden zeros and missing values.
const Placeholder = "-"

// Options controls how a value is rendered.
type Options struct {
	Currency string // ISO 4217 code, DefaultCurrency when empty.
	Decimals int    // number of fraction digits.
	HideZero bool   // render zero as Placeholder.
	ShowSign bool   // prefix positive values with "+".
	Language language.Tag
}

func (o Options) currency() string {
	if o.Currency == "" {
		return DefaultCurrency
	}
	return o.Currency
}

func (o Options) printer() *message.Printer {
	tag := o.Language
	if tag == language.Und {
		tag = language.BritishEnglish
	}
	return message.NewPrinter(tag)
}

// signed applies the sign visualization to an already formatted value.
func (o Options) signed(s string, positive bool) string {
	if o.ShowSign && positive {
		return "+" + s
	}
	return s
}

// Currency formats v in the options currency, e.g. "£1,234.56".
func Currency(v decimal.Decimal, opts Options) string {
	rounded := v.Round(int32(opts.Decimals))
	if rounded.IsZero() && opts.HideZero {
		return Placeholder
	}
	cur := money.GetCurrency(opts.currency())
	if cur == nil {
		// unknown code: no symbol, plain grouping.
		return opts.signed(opts.currency()+" "+opts.printer().Sprintf("%.*f", opts.Decimals, rounded.InexactFloat64()), rounded.IsPositive())
	}
	f := *cur.Formatter()
	f.Fraction = opts.Decimals
	amount := rounded.Shift(int32(opts.Decimals)).IntPart()
	return opts.signed(f.Format(amount), rounded.IsPositive())
}

// CurrencyPtr is Currency for optional amounts: nil renders as Placeholder.
func CurrencyPtr(v *decimal.Decimal, opts Options) string {
	if v == nil {
		return Placeholder
	}
	return Currency(*v, opts)
}

// Percentage formats v, expressed in percent, e.g. 5.234 -> "5.23%".
func Percentage(v float64, opts Options) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	s := opts.printer().Sprintf("%.*f", opts.Decimals, v)
	if isZero(s) {
		if opts.HideZero {
			return Placeholder
		}
		// avoid "-0.00%"
		s = strings.TrimPrefix(s, "-")
		return s + "%"
	}
	return opts.signed(s+"%", v > 0)
}

// Ratio formats v, expressed as a fraction, as a percentage: 0.05 -> "5.00%".
func Ratio(v float64, opts Options) string { return Percentage(v*100, opts) }

// IRR formats an optional IRR percentage. nil and non finite values render
// as Placeholder.
func IRR(v *float64, opts Options) string {
	if v == nil {
		return Placeholder
	}
	return Percentage(*v, opts)
}

// Number formats v with grouping separators.
func Number(v float64, opts Options) string {
	s := opts.printer().Sprintf("%.*f", opts.Decimals, v)
	if isZero(s) && opts.HideZero {
		return Placeholder
	}
	return opts.signed(s, v > 0 && !isZero(s))
}

// DateLayout is the day-first layout used for display.
const DateLayout = "02/01/2006"

// Date formats d as dd/mm/yyyy; the zero date renders as Placeholder.
func Date(d date.Date) string {
	if d.IsZero() {
		return Placeholder
	}
	return d.Format(DateLayout)
}

// isZero reports whether a formatted number only has zero digits.
func isZero(s string) bool {
	for _, r := range s {
		if r >= '1' && r <= '9' {
			return false
		}
	}
	return true
}
