package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/lifeplan"
	"github.com/etnz/lifeplan/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	by    string
	types string
	top   int
	from  int
	to    int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "rank yearly amounts by category or life event" }
func (*reportCmd) Usage() string {
	return `lpc report [-by category|event] [-type <t1,t2>] [-top <n>] [-from <year>] [-to <year>]

  Groups the transactions of the selected years by category or by life event
  and ranks the groups by their yearly amount. Transactions without a known
  group are reported under "Other".

Usage Examples:
# Expenses of 2030 by category, the 5 largest only.
$ lpc report -type expense -from 2030 -to 2030 -top 5
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "category", "Grouping: category or event.")
	f.StringVar(&c.types, "type", "", "Comma separated transaction types (expense, income, transfer, investment). All by default.")
	f.IntVar(&c.top, "top", -1, "Keep only the N largest groups. From configuration by default, 0 keeps all.")
	f.IntVar(&c.from, "from", 0, "First year. Plan start by default.")
	f.IntVar(&c.to, "to", 0, "Last year. Plan end by default.")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	by, err := lifeplan.ParseGroupBy(c.by)
	if err != nil {
		return usage("%v", err)
	}
	var types []lifeplan.TxType
	if c.types != "" {
		for _, s := range strings.Split(c.types, ",") {
			t, err := lifeplan.ParseTxType(strings.TrimSpace(s))
			if err != nil {
				return usage("%v", err)
			}
			types = append(types, t)
		}
	}

	s, err := openSession(ctx)
	if err != nil {
		return fail("%v", err)
	}
	p, err := s.project("")
	if err != nil {
		return fail("%v", err)
	}

	plan := p.Book.Range()
	from, to := c.from, c.to
	if from == 0 {
		from = plan.From
	}
	if to == 0 {
		to = plan.To
	}
	window, ok := lifeplan.NewRange(from, to).Intersect(plan)
	if !ok {
		return usage("years %s are outside of the plan %s", lifeplan.NewRange(from, to), plan)
	}
	top := c.top
	if top < 0 {
		top = s.cfg.TopN
	}

	slices := lifeplan.AggregateYears(p.Book, window, lifeplan.ReportOptions{
		GroupBy:    by,
		Categories: s.plan.Categories,
		Events:     s.plan.Events,
		Types:      types,
		TopN:       top,
	})
	title := fmt.Sprintf("Yearly amounts %s by %s", window, by)
	if len(types) > 0 {
		title = fmt.Sprintf("Yearly amounts of %s %s by %s", strings.Join(strings.Split(c.types, ","), ", "), window, by)
	}
	printMarkdown(renderer.Report(title, slices))
	return subcommands.ExitSuccess
}
