// Package cmd implements the wd command line application to browse and
// manage client groups, product owners, legal documents, scheduled
// transactions and IRR reports.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/wealthdesk/api"
	"github.com/etnz/wealthdesk/config"
	"github.com/etnz/wealthdesk/date"
	"github.com/etnz/wealthdesk/format"
	"github.com/etnz/wealthdesk/hooks"
	"github.com/etnz/wealthdesk/logging"
	"github.com/etnz/wealthdesk/query"
	"github.com/etnz/wealthdesk/report"
	"github.com/etnz/wealthdesk/table"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&groupsCmd{}, "clients")
	c.Register(&groupAddCmd{}, "clients")
	c.Register(&relationshipsCmd{}, "clients")
	c.Register(&ownersCmd{}, "clients")
	c.Register(&ownerCheckCmd{}, "clients")
	c.Register(&legalDocsCmd{}, "clients")
	c.Register(&legalDocStatusCmd{}, "clients")

	c.Register(newProvidersCmd(), "catalog")
	c.Register(newFundsCmd(), "catalog")
	c.Register(newPortfoliosCmd(), "catalog")

	c.Register(&scheduledCmd{}, "scheduled")
	c.Register(newScheduledStatusCmd("scheduled-pause"), "scheduled")
	c.Register(newScheduledStatusCmd("scheduled-resume"), "scheduled")
	c.Register(newScheduledStatusCmd("scheduled-cancel"), "scheduled")
	c.Register(&executePendingCmd{}, "scheduled")

	c.Register(&irrCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&AssistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", format.DefaultCurrency, "ISO code of the currency amounts are shown in")
var hideZero = flag.Bool("hide-zero", false, "show zero amounts as '-'")
var decimals = flag.Int("decimals", 2, "number of fraction digits of amounts and figures")

// app gathers the services of one command run.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	api    *api.Client
	cache  *query.Client
}

// newApp loads the configuration and builds the backend client and the query
// cache.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, cfg.Logging)
	client, err := api.New(api.Options{
		BaseURL: cfg.API.BaseURL,
		Prefix:  cfg.API.Prefix,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	cache := query.NewClient(query.Options{
		StaleTime:  cfg.Cache.StaleTime,
		Logger:     logger,
		IsCanceled: api.IsCanceled,
	})
	return &app{cfg: cfg, logger: logger, api: client, cache: cache}, nil
}

func (a *app) clientGroups() *hooks.ClientGroups {
	return hooks.NewClientGroups(a.api, a.cache, a.logger)
}
func (a *app) productOwners() *hooks.ProductOwners {
	return hooks.NewProductOwners(a.api, a.cache, a.logger)
}
func (a *app) legalDocuments() *hooks.LegalDocuments {
	return hooks.NewLegalDocuments(a.api, a.cache, a.logger)
}
func (a *app) scheduled() *hooks.ScheduledTransactions {
	return hooks.NewScheduledTransactions(a.api, a.cache, a.logger)
}
func (a *app) specialRelationships() *hooks.SpecialRelationships {
	return hooks.NewSpecialRelationships(a.api, a.cache, a.logger)
}
func (a *app) catalog() *hooks.Catalog { return hooks.NewCatalog(a.api, a.cache, a.logger) }
func (a *app) reports() *report.Service { return report.NewService(a.api, a.logger) }

// fail prints err the way users should see it and returns ExitFailure.
func (a *app) fail(action string, err error) subcommands.ExitStatus {
	devMode := a != nil && a.cfg.API.DevMode
	fmt.Fprintf(os.Stderr, "Error %s: %s\n", action, api.FormatErrorDetail(err, devMode))
	return subcommands.ExitFailure
}

// loadApp builds the app, reporting failures on stderr.
func loadApp() (*app, bool) {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		return nil, false
	}
	return a, true
}

// fetched reports whether a query returned data, and prints the reason
// when it did not.
func (a *app) fetched(what string, ok bool, err error) bool {
	if err != nil {
		a.fail("fetching "+what, err)
		return false
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Fetching %s was canceled\n", what)
		return false
	}
	return true
}

func formatOptions() format.Options {
	return format.Options{Currency: *currency, Decimals: *decimals, HideZero: *hideZero}
}

// terminalWidth returns the width advertised by $COLUMNS, or 0 when unknown.
func terminalWidth() int {
	n, err := strconv.Atoi(os.Getenv("COLUMNS"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// renderTable renders the view of t as markdown, sized for the terminal.
func renderTable(w io.Writer, t *table.Table) error {
	var layout table.Layout
	if width := terminalWidth(); width > 0 {
		layout = table.LayoutFor(width, len(t.Columns))
	}
	return t.Markdown(w, formatOptions(), layout)
}

// tableFlags are the sort and filter flags shared by list commands.
type tableFlags struct {
	sort    string
	filters multiFlag
}

func (t *tableFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.sort, "sort", "", "sort on a column, as 'column' or 'column:desc'")
	f.Var(&t.filters, "filter", "keep rows where column=value (repeatable)")
}

// apply sets the sort and the filters of t from the flags.
func (t *tableFlags) apply(tbl *table.Table) error {
	if t.sort != "" {
		key, dir, _ := strings.Cut(t.sort, ":")
		if _, ok := tbl.Column(key); !ok {
			return fmt.Errorf("unknown sort column %q", key)
		}
		d := table.Asc
		if dir != "" {
			if d = table.ParseDirection(dir); d == table.None {
				return fmt.Errorf("invalid sort direction %q, want asc or desc", dir)
			}
		}
		tbl.Sort = table.SortSpec{Key: key, Direction: d}
	}
	filters, err := parseFilters(t.filters)
	if err != nil {
		return err
	}
	for key, values := range filters {
		if _, ok := tbl.Column(key); !ok {
			return fmt.Errorf("unknown filter column %q", key)
		}
		if tbl.Filters == nil {
			tbl.Filters = make(table.Filters)
		}
		tbl.Filters[key] = values
	}
	return nil
}

// parseFilters groups "column=value" items by column. An item "column=" clears
// the selection of that column.
func parseFilters(items []string) (table.Filters, error) {
	filters := make(table.Filters)
	for _, item := range items {
		key, value, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q, want column=value", item)
		}
		if value == "" {
			filters[key] = nil
			continue
		}
		filters[key] = append(filters[key], value)
	}
	return filters, nil
}

type multiFlag []string

func (m *multiFlag) String() string     { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error { *m = append(*m, v); return nil }

// parseDay parses a date flag, empty means today.
func parseDay(s string) (date.Date, error) {
	if s == "" || s == "today" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// parseIDs parses a comma separated list of ids.
func parseIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// renderMarkdown styles md for the terminal, leaving it as is when it
// cannot be rendered.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(terminalWidth()))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) { fmt.Print(renderMarkdown(md)) }
