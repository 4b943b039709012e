package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/date"
	"github.com/etnz/wealthdesk/screen"
	"github.com/google/subcommands"
)

type groupsCmd struct {
	status string
	tableFlags
}

func (*groupsCmd) Name() string     { return "groups" }
func (*groupsCmd) Synopsis() string { return "list client groups" }
func (*groupsCmd) Usage() string {
	return `wd groups [-status <status>] [-sort <column[:desc]>] [-filter <column=value>]...

  Lists client groups. Only active groups are shown unless -status selects
  another status, or "all".
`
}

func (c *groupsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", string(wealthdesk.Active), "status of the groups to show, or 'all'")
	c.tableFlags.SetFlags(f)
}

func (c *groupsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}
	groups, ok, err := a.clientGroups().List(ctx)
	if !a.fetched("client groups", ok, err) {
		return subcommands.ExitFailure
	}

	tbl := screen.ClientGroups(groups)
	switch c.status {
	case "all", "":
		tbl.Filters["status"] = nil
	default:
		tbl.Filters["status"] = []string{c.status}
	}
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

type groupAddCmd struct {
	name      string
	groupType string
	idDate    string
	privacy   string
	notes     string
}

func (*groupAddCmd) Name() string     { return "group-add" }
func (*groupAddCmd) Synopsis() string { return "create a client group" }
func (*groupAddCmd) Usage() string {
	return `wd group-add -name <name> -type <type> [-id-date <date>] [-privacy-date <date>] [-notes <text>]

  Creates an active client group. The type is one of Individual, Joint,
  Family, Trust or Corporate.
`
}

func (c *groupAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "name of the group")
	f.StringVar(&c.groupType, "type", string(wealthdesk.Individual), "type of the group")
	f.StringVar(&c.idDate, "id-date", "", "ID declaration date (YYYY-MM-DD)")
	f.StringVar(&c.privacy, "privacy-date", "", "privacy declaration date (YYYY-MM-DD)")
	f.StringVar(&c.notes, "notes", "", "free text notes")
}

// group builds the client group described by the flags.
func (c *groupAddCmd) group() (wealthdesk.ClientGroup, error) {
	t, err := wealthdesk.ParseClientGroupType(c.groupType)
	if err != nil {
		return wealthdesk.ClientGroup{}, err
	}
	g := wealthdesk.ClientGroup{Name: c.name, Type: t, Notes: c.notes}
	for _, d := range []struct {
		value string
		into  *date.Date
	}{{c.idDate, &g.IDDeclarationDate}, {c.privacy, &g.PrivacyDeclarationDate}} {
		if d.value == "" {
			continue
		}
		if *d.into, err = date.Parse(d.value); err != nil {
			return wealthdesk.ClientGroup{}, err
		}
	}
	return g, nil
}

func (c *groupAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := c.group()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}
	created, err := a.clientGroups().Create(ctx, g)
	if err != nil {
		return a.fail("creating client group", err)
	}
	fmt.Printf("Created client group %q with id %d\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
