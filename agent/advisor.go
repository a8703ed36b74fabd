package agent

import (
	"context"
	"fmt"

	"github.com/etnz/lifeplan"
	"github.com/etnz/lifeplan/docs"
	"github.com/etnz/lifeplan/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

const instruction = `
You are a financial planning advisor reviewing the user's life plan with them.

The plan has already been projected year by year. Use the Tools to read the
projection: account balances, holdings, dividends, net worth and the financial
independence (FIRE) goal, and the breakdown of spending.
Never invent a figure, quote the tools. When a figure looks surprising check the
diagnostics first: missing prices and oversold holdings change valuations.
Answer in a few short paragraphs, and use markdown tables when comparing years.
`

// NewAdvisor returns the expert answering questions about a projected plan.
func NewAdvisor(model string, plan *lifeplan.Plan, p *lifeplan.Projection) *Expert {
	if model == "" {
		model = DefaultModel
	}
	tools := Tools(plan, p)
	return &Expert{
		Name:        "Advisor",
		Description: "A financial planning advisor with access to the projection of the user's life plan.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
		Library: NewLibrary(tools),
	}
}

// Tools returns the functions giving the model read access to a projection.
// They answer with the same markdown the command line prints.
func Tools(plan *lifeplan.Plan, p *lifeplan.Projection) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Accounts",
				Description: "Summary of every cash account and its balance at the end of each plan year.",
			},
			Func: func(context.Context, map[string]any) (string, error) {
				return renderer.Accounts(p.Accounts), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Holding",
				Description: "Quantity, price, valuation, expected dividends and realized gains of one asset holding per plan year.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"asset": {Type: genai.TypeString, Description: "Asset id or symbol."},
					},
					Required: []string{"asset"},
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				id, err := stringArg(args, "asset")
				if err != nil {
					return "", err
				}
				asset, ok := plan.Asset(id)
				if !ok {
					return "", fmt.Errorf("unknown asset %q", id)
				}
				h, _ := p.Holding(asset.ID)
				return renderer.Holding(h), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Fire",
				Description: "Net worth per plan year with the age of the user, and the year the financial independence target is reached.",
			},
			Func: func(context.Context, map[string]any) (string, error) {
				return renderer.Fire(p.NetWorth, p.Goal), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Report",
				Description: "Yearly amounts of one plan year grouped by category or by life event, largest first.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"year": {Type: genai.TypeInteger, Description: "Plan year."},
						"by":   {Type: genai.TypeString, Description: "Grouping: category or event.", Enum: []string{"category", "event"}},
					},
					Required: []string{"year"},
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				year, err := intArg(args, "year")
				if err != nil {
					return "", err
				}
				if !p.Book.Range().Contains(year) {
					return "", fmt.Errorf("year %d is outside of the plan %s", year, p.Book.Range())
				}
				by := lifeplan.ByCategory
				if s, err := stringArg(args, "by"); err == nil {
					if by, err = lifeplan.ParseGroupBy(s); err != nil {
						return "", err
					}
				}
				slices := lifeplan.Aggregate(p.Book.Year(year), lifeplan.ReportOptions{
					GroupBy:    by,
					Categories: plan.Categories,
					Events:     plan.Events,
				})
				return renderer.Report(fmt.Sprintf("%d by %s", year, by), slices), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Diagnostics",
				Description: "Data quality issues met during the projection: malformed records, unavailable years, missing prices, oversold holdings.",
			},
			Func: func(context.Context, map[string]any) (string, error) {
				return renderer.Diagnostics(p.Diagnostics), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Documentation",
				Description: "How the projection computes its figures. Topics: transactions, holdings, fire, config.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"topic": {Type: genai.TypeString, Description: "Documentation topic."},
					},
					Required: []string{"topic"},
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				topic, err := stringArg(args, "topic")
				if err != nil {
					return "", err
				}
				return docs.GetTopic(topic)
			},
		},
	}
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing argument %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return s, nil
}

// intArg accepts JSON numbers, decoded as float64, and ints.
func intArg(args map[string]any, name string) (int, error) {
	v, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("missing argument %q", name)
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
	}
}
