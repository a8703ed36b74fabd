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

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the plan and list projection diagnostics" }
func (*checkCmd) Usage() string {
	return `lpc check

  Validates the plan settings, decodes every transaction record and checks
  that they reference known accounts and assets. Diagnostics of the projection
  (malformed records, missing prices, oversold holdings) are listed.

  Exits with a failure status when a record is malformed, duplicated, or
  references an unknown account or asset.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		return fail("%v", err)
	}
	p, err := s.project("")
	if err != nil {
		return fail("%v", err)
	}

	problems := referenceProblems(s.plan, p.Book)
	problems = append(problems, duplicateIDs(s.feed.Records())...)

	var b strings.Builder
	b.WriteString(renderer.Diagnostics(p.Diagnostics))
	if len(problems) > 0 {
		b.WriteString("\n## Invalid Records\n\n")
		for _, pb := range problems {
			fmt.Fprintf(&b, "- %s\n", pb)
		}
	}
	printMarkdown(b.String())

	if len(problems) > 0 || p.Diagnostics.Count(lifeplan.MalformedRecord) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// referenceProblems lists the transactions referencing unknown entities.
func referenceProblems(plan *lifeplan.Plan, book *lifeplan.Book) []string {
	err := book.CheckReferences(plan.Accounts, plan.Assets)
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var res []string
		for _, e := range joined.Unwrap() {
			res = append(res, e.Error())
		}
		return res
	}
	return []string{err.Error()}
}

// duplicateIDs lists the record ids used more than once.
func duplicateIDs(records []lifeplan.Record) []string {
	count := make(map[string]int)
	var order []string
	for _, r := range records {
		if count[r.ID] == 0 {
			order = append(order, r.ID)
		}
		count[r.ID]++
	}
	var res []string
	for _, id := range order {
		if count[id] > 1 {
			res = append(res, fmt.Sprintf("transaction id %q is used %d times", id, count[id]))
		}
	}
	return res
}
