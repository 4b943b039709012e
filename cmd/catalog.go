package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/table"
	"github.com/etnz/wealthdesk/screen"
	"github.com/google/subcommands"
)

// catalogCmd lists one of the read only catalogs.
type catalogCmd[T any] struct {
	name, synopsis string
	fetch          func(context.Context, *app) ([]T, bool, error)
	layout         func([]T) *table.Table
	tableFlags
}

func (c *catalogCmd[T]) Name() string     { return c.name }
func (c *catalogCmd[T]) Synopsis() string { return c.synopsis }
func (c *catalogCmd[T]) Usage() string {
	return fmt.Sprintf(`wd %s [-sort <column[:desc]>] [-filter <column=value>]...

  Lists the available %s. Active entries are shown by default, use
  -filter status= to show them all.
`, c.name, c.name)
}

func (c *catalogCmd[T]) SetFlags(f *flag.FlagSet) { c.tableFlags.SetFlags(f) }

func (c *catalogCmd[T]) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}
	items, ok, err := c.fetch(ctx, a)
	if !a.fetched(c.name, ok, err) {
		return subcommands.ExitFailure
	}
	tbl := c.layout(items)
	if err := c.apply(tbl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := renderTable(os.Stdout, tbl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type providersCmd = catalogCmd[wealthdesk.Provider]
type fundsCmd = catalogCmd[wealthdesk.Fund]
type portfoliosCmd = catalogCmd[wealthdesk.Portfolio]

func newProvidersCmd() *providersCmd {
	return &providersCmd{
		name:     "providers",
		synopsis: "list product providers",
		fetch: func(ctx context.Context, a *app) ([]wealthdesk.Provider, bool, error) {
			return a.catalog().Providers(ctx)
		},
		layout: screen.Providers,
	}
}

func newFundsCmd() *fundsCmd {
	return &fundsCmd{
		name:     "funds",
		synopsis: "list funds with their risk factor and cost",
		fetch: func(ctx context.Context, a *app) ([]wealthdesk.Fund, bool, error) {
			return a.catalog().Funds(ctx)
		},
		layout: screen.Funds,
	}
}

func newPortfoliosCmd() *portfoliosCmd {
	return &portfoliosCmd{
		name:     "portfolios",
		synopsis: "list model portfolios with their weighted risk",
		fetch: func(ctx context.Context, a *app) ([]wealthdesk.Portfolio, bool, error) {
			return a.catalog().Portfolios(ctx)
		},
		layout: screen.Portfolios,
	}
}

