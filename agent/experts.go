package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/wealthdesk/docs"
	"github.com/etnz/wealthdesk/format"
	"github.com/etnz/wealthdesk/hooks"
	"github.com/etnz/wealthdesk/report"
	"github.com/etnz/wealthdesk/screen"
	"github.com/etnz/wealthdesk/table"
	"google.golang.org/genai"
)

// Sources are the services the experts read from.
type Sources struct {
	ClientGroups          *hooks.ClientGroups
	SpecialRelationships  *hooks.SpecialRelationships
	ProductOwners         *hooks.ProductOwners
	LegalDocuments        *hooks.LegalDocuments
	ScheduledTransactions *hooks.ScheduledTransactions
	Catalog               *hooks.Catalog
	Reports               *report.Service
	Format                format.Options
}

var errCanceled = errors.New("the request was canceled")

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// newFacilitator creates the expert talking to the user. It can ask any of
// experts and read the documentation topics.
func newFacilitator(model string, experts ...*Expert) *Expert {
	lib := make([]Function, 0, len(experts)+1)
	for _, e := range experts {
		lib = append(lib, e)
	}
	lib = append(lib, topicFunc())
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You assist the staff of a wealth management office. You are in charge of the
			conversation and of answering the user's request.

			The experts listed in your tools are dedicated to you and keep the context of
			your previous questions. Devise a plan of questions to ask them, then compose
			the best answer to the user's request.

			Read the documentation topics when the user asks how to do something with wd.
			Answer in markdown. Never invent a figure that an expert did not give you.
		`),
		},
		Library: NewLibrary(lib),
	}
}

// NewAdministrator creates the expert on client records: client groups,
// product owners, their legal documents and scheduled transactions.
func NewAdministrator(model string, src Sources) *Expert {
	lib := []Function{
		clientGroupsFunc(src),
		specialRelationshipsFunc(src),
		productOwnersFunc(src),
		legalDocumentsFunc(src),
		scheduledTransactionsFunc(src),
	}
	return &Expert{
		Name: "Administrator",
		Description: `The Administrator knows the client records of the office: client groups,
		product owners, their legal documents (wills, powers of attorney) and the scheduled
		transactions of the portfolio funds.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are the administrator of a wealth management office. Use the tools to read
			the client records. Records are identified by numeric ids: look them up in the
			lists first when you are given names. Quote the tables you get when they answer
			the question.
		`),
		},
		Library: NewLibrary(lib),
	}
}

// NewAnalyst creates the expert on products, funds and their IRR.
func NewAnalyst(model string, src Sources) *Expert {
	lib := []Function{
		catalogFunc(src),
		irrReportFunc(src),
	}
	return &Expert{
		Name: "Analyst",
		Description: `The Analyst knows the catalog of providers, funds and model portfolios,
		and computes the valuation and IRR of client products.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are a financial analyst. Use the tools to read the catalog and to report the
			IRR of client products. An IRR is an annualised rate of return, already expressed
			as a percentage. A '-' means the figure could not be computed.
		`),
		},
		Library: NewLibrary(lib),
	}
}

// NewResearcher creates an expert grounded on Google Search.
func NewResearcher(model string) *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `The Researcher searches the web for recent news about financial
		institutions, fund providers and markets. Ask the Researcher whenever you need
		information that is not in the office records.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are a researcher for a wealth management office. Use Google Search to ground
			your answers, and cite your sources.
		`),
		},
	}
}

// markdown renders t with the office format options.
func markdown(t *table.Table, opts format.Options) (string, error) {
	var b strings.Builder
	if err := t.Markdown(&b, opts, table.Layout{}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// fetched turns a cache read into a single error.
func fetched(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return errCanceled
	}
	return nil
}

func object(properties map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: properties, Required: required}
}

func markdownResponse(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func clientGroupsFunc(src Sources) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "client_groups",
			Description: "Lists the client groups of the office: households, trusts and companies.",
			Response:    markdownResponse("A markdown table of client groups with their type, status, declaration dates and id."),
		},
		Func: func(ctx context.Context, _ map[string]any) (string, error) {
			groups, ok, err := src.ClientGroups.List(ctx)
			if err := fetched(ok, err); err != nil {
				return "", err
			}
			return markdown(screen.ClientGroups(groups), src.Format)
		},
	}
}

func specialRelationshipsFunc(src Sources) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "special_relationships",
			Description: "Lists the relatives and professional contacts of a client group.",
			Parameters: object(map[string]*genai.Schema{
				"client_group_id": {Type: genai.TypeInteger, Description: "The id of the client group."},
			}, "client_group_id"),
			Response: markdownResponse("A markdown table of contacts with their relationship, type, phone and email."),
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			group, err := intArg(args, "client_group_id")
			if err != nil {
				return "", err
			}
			rels, ok, err := src.SpecialRelationships.ByClientGroup(ctx, group)
			if err := fetched(ok, err); err != nil {
				return "", err
			}
			if len(rels) == 0 {
				return fmt.Sprintf("Client group %d has no special relationships.", group), nil
			}
			return markdown(screen.SpecialRelationships(rels), src.Format)
		},
	}
}

func productOwnersFunc(src Sources) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "product_owners",
			Description: "Lists the product owners, the people holding client products.",
			Response:    markdownResponse("A markdown table of product owners with their contact details, AML result, status and id."),
		},
		Func: func(ctx context.Context, _ map[string]any) (string, error) {
			owners, ok, err := src.ProductOwners.List(ctx)
			if err := fetched(ok, err); err != nil {
				return "", err
			}
			return markdown(screen.ProductOwners(owners), src.Format)
		},
	}
}

func legalDocumentsFunc(src Sources) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "legal_documents",
			Description: "Lists the legal documents of a product owner, most recent first.",
			Parameters: object(map[string]*genai.Schema{
				"owner_id": {Type: genai.TypeInteger, Description: "The id of the product owner."},
			}, "owner_id"),
			Response: markdownResponse("A markdown table of legal documents with their type, date, status and notes."),
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			owner, err := intArg(args, "owner_id")
			if err != nil {
				return "", err
			}
			list, ok, err := src.LegalDocuments.ByProductOwner(ctx, owner)
			if err := fetched(ok, err); err != nil {
				return "", err
			}
			if len(list) == 0 {
				return fmt.Sprintf("Product owner %d has no legal documents.", owner), nil
			}
			return markdown(screen.LegalDocuments(list), src.Format)
		},
	}
}

func scheduledTransactionsFunc(src Sources) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "scheduled_transactions",
			Description: "Lists the recurring transactions scheduled on a portfolio fund.",
			Parameters: object(map[string]*genai.Schema{
				"portfolio_fund_id": {Type: genai.TypeInteger, Description: "The id of the portfolio fund."},
			}, "portfolio_fund_id"),
			Response: markdownResponse("A markdown table of scheduled transactions with their amount, next execution date, recurrence and status."),
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			fund, err := intArg(args, "portfolio_fund_id")
			if err != nil {
				return "", err
			}
			txs, ok, err := src.ScheduledTransactions.List(ctx, fund)
			if err := fetched(ok, err); err != nil {
				return "", err
			}
			if len(txs) == 0 {
				return fmt.Sprintf("Portfolio fund %d has no scheduled transactions.", fund), nil
			}
			return markdown(screen.ScheduledTransactions(txs), src.Format)
		},
	}
}

func catalogFunc(src Sources) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "catalog",
			Description: "Lists the providers, the funds or the model portfolios available to clients.",
			Parameters: object(map[string]*genai.Schema{
				"kind": {
					Type:        genai.TypeString,
					Enum:        []string{"providers", "funds", "portfolios"},
					Description: "What to list.",
				},
			}, "kind"),
			Response: markdownResponse("A markdown table of the catalog entries."),
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			kind, err := stringArg(args, "kind", "")
			if err != nil {
				return "", err
			}
			var t *table.Table
			switch kind {
			case "providers":
				v, ok, err := src.Catalog.Providers(ctx)
				if err := fetched(ok, err); err != nil {
					return "", err
				}
				t = screen.Providers(v)
			case "funds":
				v, ok, err := src.Catalog.Funds(ctx)
				if err := fetched(ok, err); err != nil {
					return "", err
				}
				t = screen.Funds(v)
			case "portfolios":
				v, ok, err := src.Catalog.Portfolios(ctx)
				if err := fetched(ok, err); err != nil {
					return "", err
				}
				t = screen.Portfolios(v)
			default:
				return "", fmt.Errorf("unknown catalog %q, use providers, funds or portfolios", kind)
			}
			return markdown(t, src.Format)
		},
	}
}

func irrReportFunc(src Sources) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "irr_report",
			Description: `Reports the valuation and latest IRR of client products, and the IRR of
			all their funds taken together at a date.`,
			Parameters: object(map[string]*genai.Schema{
				"product_ids": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeInteger},
					Description: "The ids of the client products.",
				},
				"irr_date": {
					Type:        genai.TypeString,
					Description: "The date of the total IRR as YYYY-MM or YYYY-MM-DD. The latest when empty.",
				},
			}, "product_ids"),
			Response: markdownResponse("A markdown table with one row per product and a total row."),
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			ids, err := intsArg(args, "product_ids")
			if err != nil {
				return "", err
			}
			irrDate, err := stringArg(args, "irr_date", "")
			if err != nil {
				return "", err
			}
			state := report.NewState()
			if err := src.Reports.Build(ctx, state, ids, irrDate); err != nil {
				return "", err
			}
			var b strings.Builder
			if err := report.NewFormatter(src.Format).WriteSummary(&b, state.Values()); err != nil {
				return "", err
			}
			return b.String(), nil
		},
	}
}

func topicFunc() *Func {
	// the list of topics helps the model pick one
	readme, _ := docs.GetTopic(docs.Readme)
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "topic",
			Description: "Reads a topic of the wd documentation.\n\n" + readme,
			Parameters: object(map[string]*genai.Schema{
				"name": {Type: genai.TypeString, Description: "The name of the topic, '*' for all of them."},
			}, "name"),
			Response: markdownResponse("The markdown content of the topic."),
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			name, err := stringArg(args, "name", docs.Readme)
			if err != nil {
				return "", err
			}
			return docs.GetTopic(name)
		},
	}
}
