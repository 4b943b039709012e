package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/hooks"
	"github.com/etnz/wealthdesk/screen"
	"github.com/google/subcommands"
)

type scheduledCmd struct {
	portfolioFund int
	tableFlags
}

func (*scheduledCmd) Name() string     { return "scheduled" }
func (*scheduledCmd) Synopsis() string { return "list the scheduled transactions of a portfolio fund" }
func (*scheduledCmd) Usage() string {
	return `wd scheduled -portfolio-fund <id> [-sort <column[:desc]>] [-filter <column=value>]...

  Lists the scheduled investments and withdrawals of a portfolio fund.
`
}

func (c *scheduledCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.portfolioFund, "portfolio-fund", 0, "id of the portfolio fund")
	c.tableFlags.SetFlags(f)
}

func (c *scheduledCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolioFund == 0 {
		fmt.Fprintln(os.Stderr, "missing -portfolio-fund")
		return subcommands.ExitUsageError
	}
	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}
	txs, ok, err := a.scheduled().List(ctx, c.portfolioFund)
	if !a.fetched("scheduled transactions", ok, err) {
		return subcommands.ExitFailure
	}
	tbl := screen.ScheduledTransactions(txs)
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

// scheduledStatusCmd pauses, resumes or cancels one scheduled transaction.
type scheduledStatusCmd struct {
	name          string
	portfolioFund int
}

func newScheduledStatusCmd(name string) *scheduledStatusCmd { return &scheduledStatusCmd{name: name} }

// verb is the action of the command: pause, resume or cancel.
func (c *scheduledStatusCmd) verb() string { return c.name[len("scheduled-"):] }

// target is the status the command moves a schedule to.
func (c *scheduledStatusCmd) target() wealthdesk.ScheduleStatus {
	switch c.verb() {
	case "pause":
		return wealthdesk.SchedulePaused
	case "resume":
		return wealthdesk.ScheduleActive
	}
	return wealthdesk.ScheduleCancelled
}

func (c *scheduledStatusCmd) Name() string { return c.name }
func (c *scheduledStatusCmd) Synopsis() string {
	return c.verb() + " a scheduled transaction"
}
func (c *scheduledStatusCmd) Usage() string {
	return fmt.Sprintf(`wd %s [-portfolio-fund <id>] <id>

  Changes the status of the scheduled transaction <id> to %s. With
  -portfolio-fund, the schedules of that fund are loaded first so that an
  invalid status change is refused without calling the backend.
`, c.name, c.target())
}

func (c *scheduledStatusCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.portfolioFund, "portfolio-fund", 0, "id of the portfolio fund holding the schedule")
}

func (c *scheduledStatusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one scheduled transaction id")
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid id %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}
	h := a.scheduled()
	if c.portfolioFund != 0 {
		if _, ok, err := h.List(ctx, c.portfolioFund); !a.fetched("scheduled transactions", ok, err) {
			return subcommands.ExitFailure
		}
	}

	var tx wealthdesk.ScheduledTransaction
	switch c.verb() {
	case "pause":
		tx, err = h.Pause(ctx, id)
	case "resume":
		tx, err = h.Resume(ctx, id)
	case "cancel":
		err = h.Cancel(ctx, id)
		tx = wealthdesk.ScheduledTransaction{ID: id, Status: wealthdesk.ScheduleCancelled}
	default:
		err = fmt.Errorf("unknown action %q", c.verb())
	}
	if errors.Is(err, hooks.ErrInvalidTransition) {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err != nil {
		return a.fail(c.verb()+" scheduled transaction", err)
	}
	fmt.Printf("Scheduled transaction %d is %s\n", id, tx.Status)
	return subcommands.ExitSuccess
}

type executePendingCmd struct {
	date string
}

func (*executePendingCmd) Name() string     { return "execute-pending" }
func (*executePendingCmd) Synopsis() string { return "execute the scheduled transactions due by a date" }
func (*executePendingCmd) Usage() string {
	return `wd execute-pending [-d <date>]

  Asks the backend to execute every active schedule due on or before the
  date, today by default, and prints how many succeeded.
`
}

func (c *executePendingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "target date (YYYY-MM-DD), today when empty")
}

func (c *executePendingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}
	summary, err := a.scheduled().ExecutePending(ctx, target)
	if err != nil {
		return a.fail("executing pending transactions", err)
	}
	printMarkdown(screen.ExecutionSummary(target, summary))
	if summary.Failed > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
