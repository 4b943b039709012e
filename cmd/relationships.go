package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthdesk/screen"
	"github.com/google/subcommands"
)

type relationshipsCmd struct {
	group int
	tableFlags
}

func (*relationshipsCmd) Name() string     { return "relationships" }
func (*relationshipsCmd) Synopsis() string { return "list the special relationships of a client group" }
func (*relationshipsCmd) Usage() string {
	return `wd relationships -group <id> [-sort <column[:desc]>] [-filter <column=value>]...

  Lists the relatives and professional contacts (solicitors, accountants)
  of a client group.
`
}

func (c *relationshipsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.group, "group", 0, "id of the client group")
	c.tableFlags.SetFlags(f)
}

func (c *relationshipsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.group == 0 {
		fmt.Fprintln(os.Stderr, "missing -group")
		return subcommands.ExitUsageError
	}
	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}
	rels, ok, err := a.specialRelationships().ByClientGroup(ctx, c.group)
	if !a.fetched("special relationships", ok, err) {
		return subcommands.ExitFailure
	}
	tbl := screen.SpecialRelationships(rels)
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
