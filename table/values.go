package table

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/wealthdesk/date"
	"github.com/shopspring/decimal"
)

// currencySymbols are the symbols that make a text value a currency amount.
const currencySymbols = "£$€¥"

var (
	isoDate  = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}([T ].*)?$`)
	dayFirst = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	letters  = regexp.MustCompile(`\pL`)
)

// isEmpty reports whether v is nil, a nil pointer or a blank string.
func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case *decimal.Decimal:
		return x == nil
	case *float64:
		return x == nil
	case *int:
		return x == nil
	case date.Date:
		return x.IsZero()
	case *date.Date:
		return x == nil || x.IsZero()
	}
	// named string types such as statuses
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return strings.TrimSpace(rv.String()) == ""
	}
	return false
}

// deref follows the pointers used by optional record fields.
func deref(v any) any {
	switch x := v.(type) {
	case *decimal.Decimal:
		if x != nil {
			return *x
		}
	case *float64:
		if x != nil {
			return *x
		}
	case *int:
		if x != nil {
			return *x
		}
	case *date.Date:
		if x != nil {
			return *x
		}
	default:
		return v
	}
	return nil
}

// toDate returns v as a date when it is one, or a string in a date pattern.
func toDate(v any) (date.Date, bool) {
	switch x := deref(v).(type) {
	case date.Date:
		return x, !x.IsZero()
	case time.Time:
		return date.New(x.Date()), !x.IsZero()
	case string:
		s := strings.TrimSpace(x)
		switch {
		case isoDate.MatchString(s):
			d, err := date.Parse(s)
			if err != nil && len(s) >= 10 {
				d, err = date.Parse(s[:10])
			}
			return d, err == nil
		case dayFirst.MatchString(s):
			t, err := time.Parse("2/1/2006", s)
			return date.New(t.Date()), err == nil
		}
	}
	return date.Date{}, false
}

// toNumber returns v as a float. Strings are accepted with currency symbols,
// grouping commas and a trailing percent sign.
func toNumber(v any) (float64, bool) {
	switch x := deref(v).(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, !math.IsNaN(x)
	case decimal.Decimal:
		return x.InexactFloat64(), true
	case string:
		s := strings.TrimSpace(x)
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(currencySymbols, r) || r == ',' || r == '%' || r == ' ' {
				return -1
			}
			return r
		}, s)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil && !math.IsNaN(f)
	}
	return 0, false
}

// isNumeric reports whether v is a number or a plain numeric string.
func isNumeric(v any) bool {
	if s, ok := v.(string); ok {
		_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil
	}
	_, ok := toNumber(v)
	return ok
}

// text returns the string used for alphabetical sort, filtering and
// category detection.
func text(v any) string {
	switch x := deref(v).(type) {
	case nil:
		return ""
	case string:
		return x
	case date.Date:
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func hasLetters(v any) bool { return letters.MatchString(text(v)) }
