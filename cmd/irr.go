package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/etnz/wealthdesk/report"
	"github.com/etnz/wealthdesk/screen"
	"github.com/google/subcommands"
)

type irrCmd struct {
	client   int
	products string
	date     string
	history  bool
}

func (*irrCmd) Name() string     { return "irr" }
func (*irrCmd) Synopsis() string { return "report the IRR of client products" }
func (*irrCmd) Usage() string {
	return `wd irr (-product <id,id,...> | -client <id>) [-d <YYYY-MM | YYYY-MM-DD>] [-history]

  Reports the valuation and latest IRR of each product, and the IRR of all
  their funds taken together at the date. A month stands for its last day.
  Products or figures that cannot be fetched are left out or shown as '-'.
  With -client, the report covers every product of the client group.
`
}

func (c *irrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.products, "product", "", "comma separated product ids")
	f.IntVar(&c.client, "client", 0, "id of a client group, to report all its products")
	f.StringVar(&c.date, "d", "", "IRR date, the latest when empty")
	f.BoolVar(&c.history, "history", false, "also show the IRR history of each product")
}

// logStateEvents logs every change of state until the subscription ends.
func logStateEvents(logger *slog.Logger, events <-chan report.StateEvent) {
	for ev := range events {
		logger.Debug("report state changed", "change", ev.Kind.String(), "loading", ev.State.Loading)
	}
}

func (c *irrCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ids, err := parseIDs(c.products)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if len(ids) == 0 && c.client == 0 {
		fmt.Fprintln(os.Stderr, "missing -product or -client")
		return subcommands.ExitUsageError
	}
	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}

	service := a.reports()
	if c.client != 0 {
		clientIDs, err := service.ClientProductIDs(ctx, c.client)
		if err != nil {
			return a.fail("fetching the products of the client group", err)
		}
		ids = append(ids, clientIDs...)
		if len(ids) == 0 {
			fmt.Printf("Client group %d has no products\n", c.client)
			return subcommands.ExitSuccess
		}
	}
	state := report.NewState()
	events, stop := state.Subscribe(16)
	done := make(chan struct{})
	go func() {
		logStateEvents(a.logger, events)
		close(done)
	}()
	err = service.Build(ctx, state, ids, c.date)
	stop()
	<-done
	if err != nil {
		return a.fail("building the IRR report", err)
	}

	v := state.Values()
	opts := formatOptions()
	var b strings.Builder
	title := "latest"
	if v.IRRDate != "" {
		title = v.IRRDate
	}
	fmt.Fprintf(&b, "# IRR report (%s)\n\n", title)
	if err := report.NewFormatter(opts).WriteSummary(&b, v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.history {
		histories := service.HistoricalIRR(ctx, ids, nil)
		if err := screen.IRRHistory(&b, v.Products, histories, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
