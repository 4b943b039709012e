package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/screen"
	"github.com/google/subcommands"
)

type legalDocsCmd struct {
	owner int
	tableFlags
}

func (*legalDocsCmd) Name() string     { return "legal-docs" }
func (*legalDocsCmd) Synopsis() string { return "list the legal documents of a product owner" }
func (*legalDocsCmd) Usage() string {
	return `wd legal-docs -owner <id> [-sort <column[:desc]>] [-filter <column=value>]...

  Lists wills, powers of attorney and other legal documents of a product
  owner, most recent first.
`
}

func (c *legalDocsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.owner, "owner", 0, "id of the product owner")
	c.tableFlags.SetFlags(f)
}

func (c *legalDocsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.owner == 0 {
		fmt.Fprintln(os.Stderr, "missing -owner")
		return subcommands.ExitUsageError
	}
	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}
	docs, ok, err := a.legalDocuments().ByProductOwner(ctx, c.owner)
	if !a.fetched("legal documents", ok, err) {
		return subcommands.ExitFailure
	}
	tbl := screen.LegalDocuments(docs)
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

type legalDocStatusCmd struct {
	id     int
	owner  int
	status string
}

func (*legalDocStatusCmd) Name() string     { return "legal-doc-status" }
func (*legalDocStatusCmd) Synopsis() string { return "change the status of a legal document" }
func (*legalDocStatusCmd) Usage() string {
	return `wd legal-doc-status -id <id> -owner <id> -status <Signed|Lapsed|Registered>

  Changes the status of a legal document. The documents of -owner are
  loaded first and shown once the change is saved.
`
}

func (c *legalDocStatusCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "id of the legal document")
	f.IntVar(&c.owner, "owner", 0, "id of a product owner of the document")
	f.StringVar(&c.status, "status", "", "new status: "+strings.Join(documentStatuses(), ", "))
}

func documentStatuses() []string {
	s := make([]string, len(wealthdesk.DocumentStatuses))
	for i, st := range wealthdesk.DocumentStatuses {
		s[i] = string(st)
	}
	return s
}

// parseStatus matches s against the document statuses, ignoring case.
func parseStatus(s string) (wealthdesk.DocumentStatus, bool) {
	i := slices.IndexFunc(wealthdesk.DocumentStatuses, func(st wealthdesk.DocumentStatus) bool {
		return strings.EqualFold(string(st), s)
	})
	if i < 0 {
		return wealthdesk.DocumentStatus(s), false
	}
	return wealthdesk.DocumentStatuses[i], true
}

func (c *legalDocStatusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 || c.owner == 0 {
		fmt.Fprintln(os.Stderr, "missing -id or -owner")
		return subcommands.ExitUsageError
	}
	// unknown statuses are still sent through the hook, which refuses them
	status, _ := parseStatus(c.status)

	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}
	h := a.legalDocuments()
	if _, ok, err := h.ByProductOwner(ctx, c.owner); !a.fetched("legal documents", ok, err) {
		return subcommands.ExitFailure
	}
	doc, err := h.UpdateStatus(ctx, c.id, status)
	if err != nil {
		return a.fail("updating legal document", err)
	}
	fmt.Printf("Legal document %d is %s\n", doc.ID, doc.Status)

	docs, ok, err := h.ByProductOwner(ctx, c.owner)
	if !a.fetched("legal documents", ok, err) {
		return subcommands.ExitFailure
	}
	if err := renderTable(os.Stdout, screen.LegalDocuments(docs)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
