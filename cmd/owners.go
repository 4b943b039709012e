package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/screen"
	"github.com/google/subcommands"
)

type ownersCmd struct {
	tableFlags
}

func (*ownersCmd) Name() string     { return "owners" }
func (*ownersCmd) Synopsis() string { return "list product owners" }
func (*ownersCmd) Usage() string {
	return `wd owners [-sort <column[:desc]>] [-filter <column=value>]...

  Lists product owners. Active owners are shown by default, use
  -filter status= to show them all.
`
}

func (c *ownersCmd) SetFlags(f *flag.FlagSet) { c.tableFlags.SetFlags(f) }

func (c *ownersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}
	owners, ok, err := a.productOwners().List(ctx)
	if !a.fetched("product owners", ok, err) {
		return subcommands.ExitFailure
	}
	tbl := screen.ProductOwners(owners)
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

type ownerCheckCmd struct {
	file string
}

func (*ownerCheckCmd) Name() string     { return "owner-check" }
func (*ownerCheckCmd) Synopsis() string { return "validate a product owner form" }
func (*ownerCheckCmd) Usage() string {
	return `wd owner-check -f <owner.json>

  Validates a product owner, and its address, as the create form would.
  Nothing is sent to the backend. Use -f - to read from standard input.
`
}

func (c *ownerCheckCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "JSON file holding the product owner")
}

// checkOwner decodes a product owner from r and validates it.
func checkOwner(r io.Reader) (wealthdesk.FieldErrors, error) {
	var o wealthdesk.ProductOwner
	if err := json.NewDecoder(r).Decode(&o); err != nil {
		return nil, fmt.Errorf("cannot decode product owner: %w", err)
	}
	return wealthdesk.ValidateProductOwner(o), nil
}

func (c *ownerCheckCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if c.file != "-" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}
	errs, err := checkOwner(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(errs) == 0 {
		fmt.Println("Product owner is valid")
		return subcommands.ExitSuccess
	}
	printMarkdown(screen.FieldErrors("Invalid product owner", errs))
	return subcommands.ExitFailure
}
