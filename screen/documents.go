package screen

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/api"
	"github.com/etnz/wealthdesk/date"
	"github.com/etnz/wealthdesk/format"
	md "github.com/nao1215/markdown"
)

// ExecutionSummary reports a run of the pending scheduled transactions.
func ExecutionSummary(target date.Date, s api.ExecutionSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Pending transactions on %s", format.Date(target)))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Outcome", "Transactions"},
		Rows: [][]string{
			{"Executed", strconv.Itoa(s.Executed)},
			{"Failed", strconv.Itoa(s.Failed)},
		},
	})
	return doc.String()
}

// FieldErrors lists validation failures under title, one row per field.
func FieldErrors(title string, errs wealthdesk.FieldErrors) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	rows := make([][]string, 0, len(errs))
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		rows = append(rows, []string{field, errs[field]})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Field", "Problem"},
		Rows:      rows,
	})
	return doc.String()
}
