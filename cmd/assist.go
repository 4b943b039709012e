package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/wealthdesk/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// AssistCmd is the subcommand for the AI assistant.
type AssistCmd struct {
	research bool
}

// Name returns the name of the command.
func (*AssistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*AssistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }

// Usage returns a long-form usage string.
func (*AssistCmd) Usage() string {
	return `wd assist [-research] [<question>]

  Starts an interactive session with the AI assistant. The assistant reads
  client records, the catalog and IRR reports through the same backend as
  the other commands. The question, when given, is asked first.

  The Gemini API key is read from GEMINI_API_KEY and the model from
  GEMINI_MODEL.
`
}

// SetFlags sets the flags for the command.
func (c *AssistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.research, "research", false, "let the assistant search the web")
}

// Execute executes the command.
func (c *AssistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	a, ok := loadApp()
	if !ok {
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	model := a.cfg.Agent.Model
	src := agent.Sources{
		ClientGroups:          a.clientGroups(),
		SpecialRelationships:  a.specialRelationships(),
		ProductOwners:         a.productOwners(),
		LegalDocuments:        a.legalDocuments(),
		ScheduledTransactions: a.scheduled(),
		Catalog:               a.catalog(),
		Reports:               a.reports(),
		Format:                formatOptions(),
	}
	experts := []*agent.Expert{agent.NewAdministrator(model, src), agent.NewAnalyst(model, src)}
	if c.research {
		experts = append(experts, agent.NewResearcher(model))
	}
	assistant := agent.New(os.Stdout, os.Stdin, model, experts...)
	assistant.Print = func(w io.Writer, md string) { fmt.Fprint(w, renderMarkdown(md)) }
	assistant.SetLogger(a.logger)

	a.logger.Debug("starting assistant", "model", model, "experts", len(experts))
	if err := assistant.Run(ctx, client, initialPrompt); err != nil {
		return a.fail("running the assistant", err)
	}
	return subcommands.ExitSuccess
}
